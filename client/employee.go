package client

import (
	"context"
	"time"
)

// EmployeeClient covers self-service operations available to an
// authenticated employee.
type EmployeeClient struct {
	c *Client
}

func (e *EmployeeClient) SubmitLeaveRequest(ctx context.Context, employeeID, leaveID int, startDate, endDate time.Time, reason *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("leaveId", leaveID).
		Date("startDate", startDate).
		Date("endDate", endDate).
		OptStr("reason", reason)
	return e.c.callFile(ctx, "Employee.SubmitLeaveRequest", q)
}

func (e *EmployeeClient) GetLeaveBalance(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetLeaveBalance", "employeeId", employeeID)
}

func (e *EmployeeClient) GetLeaveHistory(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetLeaveHistory", "employeeId", employeeID)
}

func (e *EmployeeClient) AttachLeaveDocuments(ctx context.Context, leaveRequestID int, documentName, documentType *string) (*FileResult, error) {
	q := newQuery().
		Int("leaveRequestId", leaveRequestID).
		OptStr("documentName", documentName).
		OptStr("documentType", documentType)
	return e.c.callFile(ctx, "Employee.AttachLeaveDocuments", q)
}

func (e *EmployeeClient) CancelLeaveRequest(ctx context.Context, leaveRequestID, employeeID int, reason *string) (*FileResult, error) {
	q := newQuery().
		Int("leaveRequestId", leaveRequestID).
		Int("employeeId", employeeID).
		OptStr("reason", reason)
	return e.c.callFile(ctx, "Employee.CancelLeaveRequest", q)
}

// SubmitLeaveAfterAbsence regularizes an absence that was taken before any
// request existed.
func (e *EmployeeClient) SubmitLeaveAfterAbsence(ctx context.Context, employeeID, leaveID int, startDate, endDate time.Time, justification *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("leaveId", leaveID).
		Date("startDate", startDate).
		Date("endDate", endDate).
		OptStr("justification", justification)
	return e.c.callFile(ctx, "Employee.SubmitLeaveAfterAbsence", q)
}

func (e *EmployeeClient) RecordAttendance(ctx context.Context, employeeID int, entryTime, exitTime *time.Time, shiftID *int) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		OptDate("entryTime", entryTime).
		OptDate("exitTime", exitTime).
		OptInt("shiftId", shiftID)
	return e.c.callFile(ctx, "Employee.RecordAttendance", q)
}

func (e *EmployeeClient) GetAssignedShifts(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetAssignedShifts", "employeeId", employeeID)
}

func (e *EmployeeClient) LogFlexiblePunch(ctx context.Context, employeeID int, punchTime time.Time, deviceID *int) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Date("punchTime", punchTime).
		OptInt("deviceId", deviceID)
	return e.c.callFile(ctx, "Employee.LogFlexiblePunch", q)
}

// LogMultiplePunches records a whole day of clock events in one call;
// punches is a comma-joined list of timestamps.
func (e *EmployeeClient) LogMultiplePunches(ctx context.Context, employeeID int, workDate time.Time, punches *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Date("workDate", workDate).
		OptStr("punches", punches)
	return e.c.callFile(ctx, "Employee.LogMultiplePunches", q)
}

func (e *EmployeeClient) RequestAttendanceCorrection(ctx context.Context, attendanceID, employeeID int, correctedEntry, correctedExit *time.Time, reason *string) (*FileResult, error) {
	q := newQuery().
		Int("attendanceId", attendanceID).
		Int("employeeId", employeeID).
		OptDate("correctedEntry", correctedEntry).
		OptDate("correctedExit", correctedExit).
		OptStr("reason", reason)
	return e.c.callFile(ctx, "Employee.RequestAttendanceCorrection", q)
}

func (e *EmployeeClient) ReportMissedPunch(ctx context.Context, employeeID int, workDate time.Time, punchType, reason *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Date("workDate", workDate).
		OptStr("punchType", punchType).
		OptStr("reason", reason)
	return e.c.callFile(ctx, "Employee.ReportMissedPunch", q)
}

func (e *EmployeeClient) GetProfile(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetProfile", "employeeId", employeeID)
}

func (e *EmployeeClient) UpdatePersonalInfo(ctx context.Context, employeeID int, firstName, lastName *string, dateOfBirth *time.Time, maritalStatus *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		OptStr("firstName", firstName).
		OptStr("lastName", lastName).
		OptDate("dateOfBirth", dateOfBirth).
		OptStr("maritalStatus", maritalStatus)
	return e.c.callFile(ctx, "Employee.UpdatePersonalInfo", q)
}

func (e *EmployeeClient) UpdateContactInfo(ctx context.Context, employeeID int, phone, email, address *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		OptStr("phone", phone).
		OptStr("email", email).
		OptStr("address", address)
	return e.c.callFile(ctx, "Employee.UpdateContactInfo", q)
}

func (e *EmployeeClient) UpdateEmergencyContact(ctx context.Context, employeeID int, contactName, contactPhone, relationship *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		OptStr("contactName", contactName).
		OptStr("contactPhone", contactPhone).
		OptStr("relationship", relationship)
	return e.c.callFile(ctx, "Employee.UpdateEmergencyContact", q)
}

func (e *EmployeeClient) AddSkill(ctx context.Context, employeeID int, skillName string, proficiency *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Str("skillName", skillName).
		OptStr("proficiency", proficiency)
	return e.c.callFile(ctx, "Employee.AddSkill", q)
}

func (e *EmployeeClient) GetTimeline(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetTimeline", "employeeId", employeeID)
}

func (e *EmployeeClient) GetContracts(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetContracts", "employeeId", employeeID)
}

func (e *EmployeeClient) GetPayrollHistory(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetPayrollHistory", "employeeId", employeeID)
}

func (e *EmployeeClient) GetMissions(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetMissions", "employeeId", employeeID)
}

func (e *EmployeeClient) RequestReimbursement(ctx context.Context, employeeID int, amount float64, currencyID *int, description *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Float("amount", amount).
		OptInt("currencyId", currencyID).
		OptStr("description", description)
	return e.c.callFile(ctx, "Employee.RequestReimbursement", q)
}

func (e *EmployeeClient) RequestDocument(ctx context.Context, employeeID int, documentType string, notes *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Str("documentType", documentType).
		OptStr("notes", notes)
	return e.c.callFile(ctx, "Employee.RequestDocument", q)
}

// NotifyManager triggers a notification to the employee's manager.
func (e *EmployeeClient) NotifyManager(ctx context.Context, employeeID, managerID int, subject, message *string) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("managerId", managerID).
		OptStr("subject", subject).
		OptStr("message", message)
	return e.c.callFile(ctx, "Employee.NotifyManager", q)
}

func (e *EmployeeClient) GetNotifications(ctx context.Context, employeeID int) (*FileResult, error) {
	return e.c.callFileByID(ctx, "Employee.GetNotifications", "employeeId", employeeID)
}
