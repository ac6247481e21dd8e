package client

import (
	"context"
	"time"
)

// ManagerClient covers team-scoped oversight: profiles, notes, shifts,
// attendance, request decisions, and mission completion.
type ManagerClient struct {
	c *Client
}

func (m *ManagerClient) GetTeamProfiles(ctx context.Context, managerID int) (*FileResult, error) {
	return m.c.callFileByID(ctx, "Manager.GetTeamProfiles", "managerId", managerID)
}

func (m *ManagerClient) GetEmployeeCertifications(ctx context.Context, employeeID int) (*FileResult, error) {
	return m.c.callFileByID(ctx, "Manager.GetEmployeeCertifications", "employeeId", employeeID)
}

func (m *ManagerClient) FilterTeamByCertification(ctx context.Context, managerID int, certification string) (*FileResult, error) {
	q := newQuery().
		Int("managerId", managerID).
		Str("certification", certification)
	return m.c.callFile(ctx, "Manager.FilterTeamByCertification", q)
}

func (m *ManagerClient) AddEmployeeNote(ctx context.Context, managerID, employeeID int, note string) (*FileResult, error) {
	q := newQuery().
		Int("managerId", managerID).
		Int("employeeId", employeeID).
		Str("note", note)
	return m.c.callFile(ctx, "Manager.AddEmployeeNote", q)
}

func (m *ManagerClient) AssignShift(ctx context.Context, employeeID, shiftID int, startDate time.Time, endDate *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("shiftId", shiftID).
		Date("startDate", startDate).
		OptDate("endDate", endDate)
	return m.c.callFile(ctx, "Manager.AssignShift", q)
}

func (m *ManagerClient) ReassignShift(ctx context.Context, assignmentID, newShiftID int, effectiveDate *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("assignmentId", assignmentID).
		Int("newShiftId", newShiftID).
		OptDate("effectiveDate", effectiveDate)
	return m.c.callFile(ctx, "Manager.ReassignShift", q)
}

func (m *ManagerClient) GetTeamAttendance(ctx context.Context, managerID int, fromDate, toDate *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("managerId", managerID).
		OptDate("fromDate", fromDate).
		OptDate("toDate", toDate)
	return m.c.callFile(ctx, "Manager.GetTeamAttendance", q)
}

func (m *ManagerClient) RecordAttendanceManually(ctx context.Context, managerID, employeeID int, workDate time.Time, entryTime, exitTime *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("managerId", managerID).
		Int("employeeId", employeeID).
		Date("workDate", workDate).
		OptDate("entryTime", entryTime).
		OptDate("exitTime", exitTime)
	return m.c.callFile(ctx, "Manager.RecordAttendanceManually", q)
}

func (m *ManagerClient) ReviewMissedPunches(ctx context.Context, managerID int, fromDate *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("managerId", managerID).
		OptDate("fromDate", fromDate)
	return m.c.callFile(ctx, "Manager.ReviewMissedPunches", q)
}

// DecideLeaveRequest approves, rejects, or sends back a pending request;
// the backend notifies the employee as a side effect.
func (m *ManagerClient) DecideLeaveRequest(ctx context.Context, leaveRequestID, managerID int, decision string, comment *string) (*FileResult, error) {
	q := newQuery().
		Int("leaveRequestId", leaveRequestID).
		Int("managerId", managerID).
		Str("decision", decision).
		OptStr("comment", comment)
	return m.c.callFile(ctx, "Manager.DecideLeaveRequest", q)
}

func (m *ManagerClient) DelegateApproval(ctx context.Context, managerID, delegateID int, fromDate, toDate time.Time) (*FileResult, error) {
	q := newQuery().
		Int("managerId", managerID).
		Int("delegateId", delegateID).
		Date("fromDate", fromDate).
		Date("toDate", toDate)
	return m.c.callFile(ctx, "Manager.DelegateApproval", q)
}

func (m *ManagerClient) GetTeamStatistics(ctx context.Context, managerID int) (*FileResult, error) {
	return m.c.callFileByID(ctx, "Manager.GetTeamStatistics", "managerId", managerID)
}

func (m *ManagerClient) GetDepartmentSummary(ctx context.Context, departmentID int) (*FileResult, error) {
	return m.c.callFileByID(ctx, "Manager.GetDepartmentSummary", "departmentId", departmentID)
}

func (m *ManagerClient) ApproveMissionCompletion(ctx context.Context, missionID, managerID int, approved *bool, comment *string) (*FileResult, error) {
	q := newQuery().
		Int("missionId", missionID).
		Int("managerId", managerID).
		OptBool("approved", approved).
		OptStr("comment", comment)
	return m.c.callFile(ctx, "Manager.ApproveMissionCompletion", q)
}
