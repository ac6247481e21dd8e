package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var payslipCmd = &cobra.Command{
	Use:   "payslip",
	Short: "Download the latest payslip for an employee",
	RunE:  runPayslip,
}

var (
	payslipEmployeeID int
	payslipOut        string
)

func init() {
	payslipCmd.Flags().IntVar(&payslipEmployeeID, "employee-id", 0, "Employee id (required)")
	payslipCmd.Flags().StringVarP(&payslipOut, "out", "o", "", "Output path (defaults to the server-provided filename)")
	_ = payslipCmd.MarkFlagRequired("employee-id")

	rootCmd.AddCommand(payslipCmd)
}

func runPayslip(cmd *cobra.Command, _ []string) error {
	res, err := newClient().Employee().GetPayrollHistory(cmd.Context(), payslipEmployeeID)
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Println("no payslip available")
		return nil
	}

	out := payslipOut
	if out == "" {
		out = res.FileName
	}
	if out == "" {
		out = fmt.Sprintf("payslip-%d.pdf", payslipEmployeeID)
	}
	if err := os.WriteFile(out, res.Data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(res.Data))
	return nil
}
