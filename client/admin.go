package client

import (
	"context"
	"time"

	"hrportal/types"
)

// AdminClient covers system administration: account and role management,
// hierarchy, shift policy, attendance sources, and audit logging.
type AdminClient struct {
	c *Client
}

// AddEmployee is one of the two endpoints that serialize a full typed
// record as a JSON body. The record is validated locally before send.
func (a *AdminClient) AddEmployee(ctx context.Context, employee *types.Employee) (*FileResult, error) {
	if employee == nil {
		return nil, &RequiredParamError{Param: "employee"}
	}
	return a.c.callBody(ctx, "Admin.AddEmployee", employee)
}

func (a *AdminClient) UpdateEmployeeInfo(ctx context.Context, employee *types.Employee) (*FileResult, error) {
	if employee == nil {
		return nil, &RequiredParamError{Param: "employee"}
	}
	return a.c.callBody(ctx, "Admin.UpdateEmployeeInfo", employee)
}

func (a *AdminClient) AssignRole(ctx context.Context, employeeID, roleID int) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("roleId", roleID)
	return a.c.callFile(ctx, "Admin.AssignRole", q)
}

func (a *AdminClient) ReassignHierarchy(ctx context.Context, employeeID, newManagerID int) (*FileResult, error) {
	q := newQuery().
		Int("employeeId", employeeID).
		Int("newManagerId", newManagerID)
	return a.c.callFile(ctx, "Admin.ReassignHierarchy", q)
}

func (a *AdminClient) GetHierarchy(ctx context.Context, employeeID int) (*FileResult, error) {
	return a.c.callFileByID(ctx, "Admin.GetHierarchy", "employeeId", employeeID)
}

func (a *AdminClient) ConfigureCustomShift(ctx context.Context, shiftName, startTime, endTime string, breakMinutes *int) (*FileResult, error) {
	q := newQuery().
		Str("shiftName", shiftName).
		Str("startTime", startTime).
		Str("endTime", endTime).
		OptInt("breakMinutes", breakMinutes)
	return a.c.callFile(ctx, "Admin.ConfigureCustomShift", q)
}

func (a *AdminClient) ConfigureSplitShift(ctx context.Context, shiftName, firstStart, firstEnd, secondStart, secondEnd string) (*FileResult, error) {
	q := newQuery().
		Str("shiftName", shiftName).
		Str("firstStart", firstStart).
		Str("firstEnd", firstEnd).
		Str("secondStart", secondStart).
		Str("secondEnd", secondEnd)
	return a.c.callFile(ctx, "Admin.ConfigureSplitShift", q)
}

func (a *AdminClient) SetFirstInLastOutRule(ctx context.Context, enabled bool, departmentID *int) (*FileResult, error) {
	q := newQuery().
		Bool("enabled", enabled).
		OptInt("departmentId", departmentID)
	return a.c.callFile(ctx, "Admin.SetFirstInLastOutRule", q)
}

func (a *AdminClient) AssignShiftToDepartment(ctx context.Context, departmentID, shiftID int, effectiveDate *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("departmentId", departmentID).
		Int("shiftId", shiftID).
		OptDate("effectiveDate", effectiveDate)
	return a.c.callFile(ctx, "Admin.AssignShiftToDepartment", q)
}

func (a *AdminClient) TagAttendanceSource(ctx context.Context, deviceID int, sourceName string, location *string) (*FileResult, error) {
	q := newQuery().
		Int("deviceId", deviceID).
		Str("sourceName", sourceName).
		OptStr("location", location)
	return a.c.callFile(ctx, "Admin.TagAttendanceSource", q)
}

// SyncOfflineAttendance pulls buffered punches from a device that was
// disconnected.
func (a *AdminClient) SyncOfflineAttendance(ctx context.Context, deviceID int, fromDate, toDate *time.Time) (*FileResult, error) {
	q := newQuery().
		Int("deviceId", deviceID).
		OptDate("fromDate", fromDate).
		OptDate("toDate", toDate)
	return a.c.callFile(ctx, "Admin.SyncOfflineAttendance", q)
}

func (a *AdminClient) LogAttendanceEdit(ctx context.Context, attendanceID, editorID int, previousValue *string, newValue string, reason *string) (*FileResult, error) {
	q := newQuery().
		Int("attendanceId", attendanceID).
		Int("editorId", editorID).
		OptStr("previousValue", previousValue).
		Str("newValue", newValue).
		OptStr("reason", reason)
	return a.c.callFile(ctx, "Admin.LogAttendanceEdit", q)
}

func (a *AdminClient) ApplyHolidayOverride(ctx context.Context, holidayDate time.Time, name string, departmentID *int) (*FileResult, error) {
	q := newQuery().
		Date("holidayDate", holidayDate).
		Str("name", name).
		OptInt("departmentId", departmentID)
	return a.c.callFile(ctx, "Admin.ApplyHolidayOverride", q)
}

// ManageUserAccount applies an action (lock, unlock, disable, reset) to an
// account under a given role.
func (a *AdminClient) ManageUserAccount(ctx context.Context, accountID int, role, action string) (*FileResult, error) {
	q := newQuery().
		Int("accountId", accountID).
		Str("role", role).
		Str("action", action)
	return a.c.callFile(ctx, "Admin.ManageUserAccount", q)
}
