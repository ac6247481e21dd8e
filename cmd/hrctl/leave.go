package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Submit and decide leave requests",
}

var leaveSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a leave request",
	RunE:  runLeaveSubmit,
}

var leaveDecideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Approve or reject a pending leave request",
	RunE:  runLeaveDecide,
}

var (
	leaveEmployeeID int
	leaveTypeID     int
	leaveStart      string
	leaveEnd        string
	leaveReason     string

	leaveRequestID int
	leaveManagerID int
	leaveApprove   bool
	leaveComment   string
)

func init() {
	leaveSubmitCmd.Flags().IntVar(&leaveEmployeeID, "employee-id", 0, "Employee id (required)")
	leaveSubmitCmd.Flags().IntVar(&leaveTypeID, "leave-id", 0, "Leave type id (required)")
	leaveSubmitCmd.Flags().StringVar(&leaveStart, "start", "", "Start date, YYYY-MM-DD (required)")
	leaveSubmitCmd.Flags().StringVar(&leaveEnd, "end", "", "End date, YYYY-MM-DD (required)")
	leaveSubmitCmd.Flags().StringVar(&leaveReason, "reason", "", "Optional reason")
	_ = leaveSubmitCmd.MarkFlagRequired("employee-id")
	_ = leaveSubmitCmd.MarkFlagRequired("leave-id")
	_ = leaveSubmitCmd.MarkFlagRequired("start")
	_ = leaveSubmitCmd.MarkFlagRequired("end")

	leaveDecideCmd.Flags().IntVar(&leaveRequestID, "request-id", 0, "Leave request id (required)")
	leaveDecideCmd.Flags().IntVar(&leaveManagerID, "manager-id", 0, "Deciding manager id (required)")
	leaveDecideCmd.Flags().BoolVar(&leaveApprove, "approve", false, "Approve instead of reject")
	leaveDecideCmd.Flags().StringVar(&leaveComment, "comment", "", "Optional comment")
	_ = leaveDecideCmd.MarkFlagRequired("request-id")
	_ = leaveDecideCmd.MarkFlagRequired("manager-id")

	leaveCmd.AddCommand(leaveSubmitCmd)
	leaveCmd.AddCommand(leaveDecideCmd)
	rootCmd.AddCommand(leaveCmd)
}

func runLeaveSubmit(cmd *cobra.Command, _ []string) error {
	start, err := time.Parse("2006-01-02", leaveStart)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := time.Parse("2006-01-02", leaveEnd)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	var reason *string
	if leaveReason != "" {
		reason = &leaveReason
	}
	if _, err := newClient().Employee().SubmitLeaveRequest(cmd.Context(), leaveEmployeeID, leaveTypeID, start, end, reason); err != nil {
		return err
	}
	fmt.Println("leave request submitted")
	return nil
}

func runLeaveDecide(cmd *cobra.Command, _ []string) error {
	decision := "REJECT"
	if leaveApprove {
		decision = "APPROVE"
	}
	var comment *string
	if leaveComment != "" {
		comment = &leaveComment
	}
	if _, err := newClient().Manager().DecideLeaveRequest(cmd.Context(), leaveRequestID, leaveManagerID, decision, comment); err != nil {
		return err
	}
	fmt.Printf("leave request %d: %s\n", leaveRequestID, decision)
	return nil
}
