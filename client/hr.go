package client

import (
	"context"
	"time"

	"hrportal/types"
)

// HRClient covers contract lifecycle, leave governance, employee profile
// lifecycle, shift and mission assignment, and payroll-adjacent
// configuration owned by the HR role.
type HRClient struct {
	c *Client
}

func (h *HRClient) CreateContract(ctx context.Context, employeeID int, contractType types.ContractType, startDate time.Time, endDate *time.Time, baseSalary *float64) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Str("contractType", string(contractType)).
		Date("startDate", startDate).
		OptDate("endDate", endDate).
		OptFloat("baseSalary", baseSalary)
	return h.c.callFile(ctx, "HR.CreateContract", q)
}

func (h *HRClient) RenewContract(ctx context.Context, contractID int, newEndDate time.Time, newSalary *float64) (*FileResult, error) {
	q := newQuery().
		Int("contractId", contractID).
		Date("newEndDate", newEndDate).
		OptFloat("newSalary", newSalary)
	return h.c.callFile(ctx, "HR.RenewContract", q)
}

// GetActiveContracts returns the decoded contract list rather than a file
// wrapper; it is one of the handful of JSON-array endpoints.
func (h *HRClient) GetActiveContracts(ctx context.Context) ([]types.Contract, error) {
	var contracts []types.Contract
	if err := h.c.callJSON(ctx, "HR.GetActiveContracts", newQuery(), &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (h *HRClient) GetExpiringContracts(ctx context.Context, withinDays *int) ([]types.Contract, error) {
	q := newQuery().OptInt("withinDays", withinDays)
	var contracts []types.Contract
	if err := h.c.callJSON(ctx, "HR.GetExpiringContracts", q, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (h *HRClient) ApproveLeave(ctx context.Context, leaveRequestID, approverID int, decision, comment *string) (*FileResult, error) {
	q := newQuery().
		Int("leaveRequestId", leaveRequestID).
		Int("approverId", approverID).
		OptStr("decision", decision).
		OptStr("comment", comment)
	return h.c.callFile(ctx, "HR.ApproveLeave", q)
}

func (h *HRClient) ConfigureLeavePolicy(ctx context.Context, leaveID int, entitlement float64, carryOverLimit *float64, requiresApproval *bool) (*FileResult, error) {
	q := newQuery().
		Int("leaveId", leaveID).
		Float("entitlement", entitlement).
		OptFloat("carryOverLimit", carryOverLimit).
		OptBool("requiresApproval", requiresApproval)
	return h.c.callFile(ctx, "HR.ConfigureLeavePolicy", q)
}

func (h *HRClient) ConfigureLeaveEligibility(ctx context.Context, leaveID int, minServiceMonths *int, employmentType *string) (*FileResult, error) {
	q := newQuery().
		Int("leaveId", leaveID).
		OptInt("minServiceMonths", minServiceMonths).
		OptStr("employmentType", employmentType)
	return h.c.callFile(ctx, "HR.ConfigureLeaveEligibility", q)
}

// RecomputeLeaveEntitlements rebuilds balances server-side, optionally
// scoped to a year or department.
func (h *HRClient) RecomputeLeaveEntitlements(ctx context.Context, year, departmentID *int) (*FileResult, error) {
	q := newQuery().
		OptInt("year", year).
		OptInt("departmentId", departmentID)
	return h.c.callFile(ctx, "HR.RecomputeLeaveEntitlements", q)
}

func (h *HRClient) FinalizeLeaveRequests(ctx context.Context, periodStart, periodEnd time.Time) (*FileResult, error) {
	q := newQuery().
		Date("periodStart", periodStart).
		Date("periodEnd", periodEnd)
	return h.c.callFile(ctx, "HR.FinalizeLeaveRequests", q)
}

func (h *HRClient) CreateEmployeeProfile(ctx context.Context, firstName, lastName, email string, departmentID, positionID *int, hireDate *time.Time) (*FileResult, error) {
	q := newQuery().
		Str("firstName", firstName).
		Str("lastName", lastName).
		Str("email", email).
		OptInt("departmentId", departmentID).
		OptInt("positionId", positionID).
		OptDate("hireDate", hireDate)
	return h.c.callFile(ctx, "HR.CreateEmployeeProfile", q)
}

func (h *HRClient) UpdateEmployeeProfile(ctx context.Context, employeeID int, departmentID, positionID *int, employmentStatus *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		OptInt("departmentId", departmentID).
		OptInt("positionId", positionID).
		OptStr("employmentStatus", employmentStatus)
	return h.c.callFile(ctx, "HR.UpdateEmployeeProfile", q)
}

func (h *HRClient) GenerateProfileReport(ctx context.Context, departmentID *int, employmentStatus *string, hiredAfter *time.Time) ([]types.Employee, error) {
	q := newQuery().
		OptInt("departmentId", departmentID).
		OptStr("employmentStatus", employmentStatus).
		OptDate("hiredAfter", hiredAfter)
	var employees []types.Employee
	if err := h.c.callJSON(ctx, "HR.GenerateProfileReport", q, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (h *HRClient) GetTeamByManager(ctx context.Context, managerID int) ([]types.Employee, error) {
	var employees []types.Employee
	if err := h.c.callJSONByID(ctx, "HR.GetTeamByManager", "managerId", managerID, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (h *HRClient) DefineShiftType(ctx context.Context, name, shiftType, startTime, endTime string) (*FileResult, error) {
	q := newQuery().
		Str("name", name).
		Str("shiftType", shiftType).
		Str("startTime", startTime).
		Str("endTime", endTime)
	return h.c.callFile(ctx, "HR.DefineShiftType", q)
}

func (h *HRClient) AssignRotationalShift(ctx context.Context, employeeID, shiftID int, startDate, endDate time.Time, rotationDays *int) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("shiftId", shiftID).
		Date("startDate", startDate).
		Date("endDate", endDate).
		OptInt("rotationDays", rotationDays)
	return h.c.callFile(ctx, "HR.AssignRotationalShift", q)
}

func (h *HRClient) AssignMission(ctx context.Context, employeeID, managerID int, destination string, startDate, endDate time.Time) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("managerId", managerID).
		Str("destination", destination).
		Date("startDate", startDate).
		Date("endDate", endDate)
	return h.c.callFile(ctx, "HR.AssignMission", q)
}

func (h *HRClient) ReviewReimbursement(ctx context.Context, reimbursementID, reviewerID int, decision string, comment *string) (*FileResult, error) {
	q := newQuery().
		Int("reimbursementId", reimbursementID).
		Int("reviewerId", reviewerID).
		Str("decision", decision).
		OptStr("comment", comment)
	return h.c.callFile(ctx, "HR.ReviewReimbursement", q)
}

func (h *HRClient) ConfigureShortTimeRule(ctx context.Context, ruleName string, thresholdMinutes int, penaltyRate *float64) (*FileResult, error) {
	q := newQuery().
		Str("ruleName", ruleName).
		Int("thresholdMinutes", thresholdMinutes).
		OptFloat("penaltyRate", penaltyRate)
	return h.c.callFile(ctx, "HR.ConfigureShortTimeRule", q)
}

func (h *HRClient) ConfigureInsuranceBracket(ctx context.Context, bracketName string, lowerBound float64, upperBound *float64, employeeRate, employerRate float64) (*FileResult, error) {
	q := newQuery().
		Str("bracketName", bracketName).
		Float("lowerBound", lowerBound).
		OptFloat("upperBound", upperBound).
		Float("employeeRate", employeeRate).
		Float("employerRate", employerRate)
	return h.c.callFile(ctx, "HR.ConfigureInsuranceBracket", q)
}
