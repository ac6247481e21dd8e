package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List active contracts, or contracts expiring soon",
	RunE:  runContracts,
}

var (
	contractsExpiring   bool
	contractsWithinDays int
)

func init() {
	contractsCmd.Flags().BoolVar(&contractsExpiring, "expiring", false, "List expiring instead of active contracts")
	contractsCmd.Flags().IntVar(&contractsWithinDays, "within-days", 30, "Expiry window in days (with --expiring)")

	rootCmd.AddCommand(contractsCmd)
}

func runContracts(cmd *cobra.Command, _ []string) error {
	hr := newClient().HR()

	if contractsExpiring {
		contracts, err := hr.GetExpiringContracts(cmd.Context(), &contractsWithinDays)
		if err != nil {
			return err
		}
		return printJSON(contracts)
	}

	contracts, err := hr.GetActiveContracts(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(contracts)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
