package main

import (
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "List the employees reporting to a manager",
	RunE:  runTeam,
}

var teamManagerID int

func init() {
	teamCmd.Flags().IntVar(&teamManagerID, "manager-id", 0, "Manager employee id (required)")
	_ = teamCmd.MarkFlagRequired("manager-id")

	rootCmd.AddCommand(teamCmd)
}

func runTeam(cmd *cobra.Command, _ []string) error {
	team, err := newClient().HR().GetTeamByManager(cmd.Context(), teamManagerID)
	if err != nil {
		return err
	}
	return printJSON(team)
}
