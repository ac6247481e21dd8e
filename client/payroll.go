package client

import (
	"context"
	"time"

	"hrportal/types"
)

// PayrollClient covers payroll runs, retroactive adjustment, policy
// configuration, and the read-only summaries.
type PayrollClient struct {
	c *Client
}

func (p *PayrollClient) GeneratePayroll(ctx context.Context, periodStart, periodEnd time.Time, departmentID *int) (*FileResult, error) {
	q := newQuery().
		Date("periodStart", periodStart).
		Date("periodEnd", periodEnd).
		OptInt("departmentId", departmentID)
	return p.c.callFile(ctx, "Payroll.GeneratePayroll", q)
}

func (p *PayrollClient) CalculateNetSalary(ctx context.Context, employeeID int, periodStart, periodEnd time.Time) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Date("periodStart", periodStart).
		Date("periodEnd", periodEnd)
	return p.c.callFile(ctx, "Payroll.CalculateNetSalary", q)
}

func (p *PayrollClient) AdjustPayrollItem(ctx context.Context, payrollID int, itemName string, newAmount float64, reason *string) (*FileResult, error) {
	q := newQuery().
		Int("payrollId", payrollID).
		Str("itemName", itemName).
		Float("newAmount", newAmount).
		OptStr("reason", reason)
	return p.c.callFile(ctx, "Payroll.AdjustPayrollItem", q)
}

// ApplyRetroactiveModification records the before/after values and the
// acting user alongside the change itself.
func (p *PayrollClient) ApplyRetroactiveModification(ctx context.Context, payrollID int, fieldName string, previousValue *string, newValue string, modifiedBy int) (*FileResult, error) {
	q := newQuery().
		Int("payrollId", payrollID).
		Str("fieldName", fieldName).
		OptStr("previousValue", previousValue).
		Str("newValue", newValue).
		Int("modifiedBy", modifiedBy)
	return p.c.callFile(ctx, "Payroll.ApplyRetroactiveModification", q)
}

// SyncAttendance folds recorded attendance into the period's payroll rows.
func (p *PayrollClient) SyncAttendance(ctx context.Context, periodStart, periodEnd time.Time, departmentID *int) (*FileResult, error) {
	q := newQuery().
		Date("periodStart", periodStart).
		Date("periodEnd", periodEnd).
		OptInt("departmentId", departmentID)
	return p.c.callFile(ctx, "Payroll.SyncAttendance", q)
}

func (p *PayrollClient) ConfigureBonusPolicy(ctx context.Context, policyName string, bonusRate float64, appliesTo *string) (*FileResult, error) {
	q := newQuery().
		Str("policyName", policyName).
		Float("bonusRate", bonusRate).
		OptStr("appliesTo", appliesTo)
	return p.c.callFile(ctx, "Payroll.ConfigureBonusPolicy", q)
}

func (p *PayrollClient) ConfigureTerminationRule(ctx context.Context, ruleName string, noticeDays *int, severanceRate *float64) (*FileResult, error) {
	q := newQuery().
		Str("ruleName", ruleName).
		OptInt("noticeDays", noticeDays).
		OptFloat("severanceRate", severanceRate)
	return p.c.callFile(ctx, "Payroll.ConfigureTerminationRule", q)
}

func (p *PayrollClient) ConfigureInsurancePolicy(ctx context.Context, policyName string, employeeRate, employerRate float64) (*FileResult, error) {
	q := newQuery().
		Str("policyName", policyName).
		Float("employeeRate", employeeRate).
		Float("employerRate", employerRate)
	return p.c.callFile(ctx, "Payroll.ConfigureInsurancePolicy", q)
}

func (p *PayrollClient) ConfigureTaxRule(ctx context.Context, ruleName string, lowerBound float64, upperBound *float64, rate float64) (*FileResult, error) {
	q := newQuery().
		Str("ruleName", ruleName).
		Float("lowerBound", lowerBound).
		OptFloat("upperBound", upperBound).
		Float("rate", rate)
	return p.c.callFile(ctx, "Payroll.ConfigureTaxRule", q)
}

func (p *PayrollClient) ConfigurePayGrade(ctx context.Context, gradeName string, minSalary, maxSalary float64) (*FileResult, error) {
	q := newQuery().
		Str("gradeName", gradeName).
		Float("minSalary", minSalary).
		Float("maxSalary", maxSalary)
	return p.c.callFile(ctx, "Payroll.ConfigurePayGrade", q)
}

func (p *PayrollClient) ConfigureOvertimePolicy(ctx context.Context, policyName string, multiplier float64, dailyCapHours *float64) (*FileResult, error) {
	q := newQuery().
		Str("policyName", policyName).
		Float("multiplier", multiplier).
		OptFloat("dailyCapHours", dailyCapHours)
	return p.c.callFile(ctx, "Payroll.ConfigureOvertimePolicy", q)
}

func (p *PayrollClient) ConfigureAllowancePolicy(ctx context.Context, policyName string, amount float64, frequency *string) (*FileResult, error) {
	q := newQuery().
		Str("policyName", policyName).
		Float("amount", amount).
		OptStr("frequency", frequency)
	return p.c.callFile(ctx, "Payroll.ConfigureAllowancePolicy", q)
}

func (p *PayrollClient) EnableMultiCurrency(ctx context.Context, baseCurrency string, enabled *bool) (*FileResult, error) {
	q := newQuery().
		Str("baseCurrency", baseCurrency).
		OptBool("enabled", enabled)
	return p.c.callFile(ctx, "Payroll.EnableMultiCurrency", q)
}

func (p *PayrollClient) GetMonthlySummary(ctx context.Context, year, month int) (*FileResult, error) {
	q := newQuery().
		Int("year", year).
		Int("month", month)
	return p.c.callFile(ctx, "Payroll.GetMonthlySummary", q)
}

func (p *PayrollClient) GetDepartmentSummary(ctx context.Context, departmentID int, periodStart, periodEnd *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("departmentId", departmentID).
		OptDate("periodStart", periodStart).
		OptDate("periodEnd", periodEnd)
	return p.c.callFile(ctx, "Payroll.GetDepartmentSummary", q)
}

func (p *PayrollClient) GetEmployeeSummary(ctx context.Context, employeeID int) (*FileResult, error) {
	return p.c.callFileByID(ctx, "Payroll.GetEmployeeSummary", "employeeId", employeeID)
}

func (p *PayrollClient) GetTaxStatement(ctx context.Context, employeeID, year int) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("year", year)
	return p.c.callFile(ctx, "Payroll.GetTaxStatement", q)
}

func (p *PayrollClient) GetBonusEligibleEmployees(ctx context.Context, periodStart, periodEnd *time.Time) ([]types.Employee, error) {
	q := newQuery().
		OptDate("periodStart", periodStart).
		OptDate("periodEnd", periodEnd)
	var employees []types.Employee
	if err := p.c.callJSON(ctx, "Payroll.GetBonusEligibleEmployees", q, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
