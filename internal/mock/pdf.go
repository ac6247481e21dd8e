package mock

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrportal/types"
)

// pdfDocument renders a one-page statement with a title and label/value
// rows, the shape every file-wrapped read shares.
func pdfDocument(title string, rows [][2]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	for _, row := range rows {
		pdf.Cell(0, 8, fmt.Sprintf("%s: %s", row[0], row[1]))
		pdf.Ln(7)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func leaveBalancePDF(e types.Employee, entitlements []types.LeaveEntitlement, leaves []types.Leave) ([]byte, error) {
	names := make(map[int]string, len(leaves))
	for _, l := range leaves {
		names[l.LeaveID] = l.Name
	}
	rows := [][2]string{{"Employee", fmt.Sprintf("%s %s", e.FirstName, e.LastName)}}
	for _, ent := range entitlements {
		rows = append(rows, [2]string{
			names[ent.LeaveID],
			fmt.Sprintf("%.1f of %.1f days remaining", ent.Remaining, ent.Entitlement),
		})
	}
	return pdfDocument("Leave Balance", rows)
}

func payslipPDF(e types.Employee, p types.Payroll) ([]byte, error) {
	amount := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%.2f", *v)
	}
	rows := [][2]string{
		{"Employee", fmt.Sprintf("%s %s", e.FirstName, e.LastName)},
		{"Email", e.Email},
		{"Period", fmt.Sprintf("%s to %s", p.PeriodStart.Format("2006-01-02"), p.PeriodEnd.Format("2006-01-02"))},
		{"Base", amount(p.BaseAmount)},
		{"Adjustments", amount(p.Adjustments)},
		{"Contributions", amount(p.Contributions)},
		{"Taxes", amount(p.Taxes)},
		{"Net", amount(p.NetSalary)},
	}
	return pdfDocument("Payslip", rows)
}

func taxStatementPDF(e types.Employee, year int, payrolls []types.Payroll) ([]byte, error) {
	var taxable, withheld float64
	for _, p := range payrolls {
		if p.PeriodStart.Year() != year {
			continue
		}
		if p.BaseAmount != nil {
			taxable += *p.BaseAmount
		}
		if p.Taxes != nil {
			withheld += *p.Taxes
		}
	}
	rows := [][2]string{
		{"Employee", fmt.Sprintf("%s %s", e.FirstName, e.LastName)},
		{"Year", fmt.Sprintf("%d", year)},
		{"Taxable total", fmt.Sprintf("%.2f", taxable)},
		{"Tax withheld", fmt.Sprintf("%.2f", withheld)},
	}
	return pdfDocument("Tax Statement", rows)
}

// receiptPDF acknowledges a write operation; the backend wraps even
// trigger-style operations in a file response.
func receiptPDF(operation string, detail string) ([]byte, error) {
	rows := [][2]string{{"Operation", operation}}
	if detail != "" {
		rows = append(rows, [2]string{"Detail", detail})
	}
	return pdfDocument("Receipt", rows)
}
