package client

import (
	"fmt"
	"net/http"
)

// Kind selects the response decoding strategy for an endpoint.
type Kind int

const (
	// KindFile resolves 200/206 into a *FileResult and 204 into nil.
	KindFile Kind = iota
	// KindJSON decodes a 200 body into the declared type.
	KindJSON
)

// Endpoint is one row of the declarative operation table: verb, path,
// optional trailing path parameter, and response kind. Every client method
// is a typed shim over this table, and the mock backend registers its
// routes from the same rows.
type Endpoint struct {
	Name      string
	Method    string
	Path      string
	PathParam string
	Kind      Kind
	JSONBody  bool
}

var table = []Endpoint{
	// Employee self-service.
	{Name: "Employee.SubmitLeaveRequest", Method: http.MethodPost, Path: "/Employee/SubmitLeaveRequest"},
	{Name: "Employee.GetLeaveBalance", Method: http.MethodGet, Path: "/Employee/GetLeaveBalance", PathParam: "employeeId"},
	{Name: "Employee.GetLeaveHistory", Method: http.MethodGet, Path: "/Employee/GetLeaveHistory", PathParam: "employeeId"},
	{Name: "Employee.AttachLeaveDocuments", Method: http.MethodPost, Path: "/Employee/AttachLeaveDocuments"},
	{Name: "Employee.CancelLeaveRequest", Method: http.MethodPut, Path: "/Employee/CancelLeaveRequest"},
	{Name: "Employee.SubmitLeaveAfterAbsence", Method: http.MethodPost, Path: "/Employee/SubmitLeaveAfterAbsence"},
	{Name: "Employee.RecordAttendance", Method: http.MethodPost, Path: "/Employee/RecordAttendance"},
	{Name: "Employee.GetAssignedShifts", Method: http.MethodGet, Path: "/Employee/GetAssignedShifts", PathParam: "employeeId"},
	{Name: "Employee.LogFlexiblePunch", Method: http.MethodPost, Path: "/Employee/LogFlexiblePunch"},
	{Name: "Employee.LogMultiplePunches", Method: http.MethodPost, Path: "/Employee/LogMultiplePunches"},
	{Name: "Employee.RequestAttendanceCorrection", Method: http.MethodPost, Path: "/Employee/RequestAttendanceCorrection"},
	{Name: "Employee.ReportMissedPunch", Method: http.MethodPost, Path: "/Employee/ReportMissedPunch"},
	{Name: "Employee.GetProfile", Method: http.MethodGet, Path: "/Employee/GetProfile", PathParam: "employeeId"},
	{Name: "Employee.UpdatePersonalInfo", Method: http.MethodPut, Path: "/Employee/UpdatePersonalInfo"},
	{Name: "Employee.UpdateContactInfo", Method: http.MethodPut, Path: "/Employee/UpdateContactInfo"},
	{Name: "Employee.UpdateEmergencyContact", Method: http.MethodPut, Path: "/Employee/UpdateEmergencyContact"},
	{Name: "Employee.AddSkill", Method: http.MethodPost, Path: "/Employee/AddSkill"},
	{Name: "Employee.GetTimeline", Method: http.MethodGet, Path: "/Employee/GetTimeline", PathParam: "employeeId"},
	{Name: "Employee.GetContracts", Method: http.MethodGet, Path: "/Employee/GetContracts", PathParam: "employeeId"},
	{Name: "Employee.GetPayrollHistory", Method: http.MethodGet, Path: "/Employee/GetPayrollHistory", PathParam: "employeeId"},
	{Name: "Employee.GetMissions", Method: http.MethodGet, Path: "/Employee/GetMissions", PathParam: "employeeId"},
	{Name: "Employee.RequestReimbursement", Method: http.MethodPost, Path: "/Employee/RequestReimbursement"},
	{Name: "Employee.RequestDocument", Method: http.MethodPost, Path: "/Employee/RequestDocument"},
	{Name: "Employee.NotifyManager", Method: http.MethodPost, Path: "/Employee/NotifyManager"},
	{Name: "Employee.GetNotifications", Method: http.MethodGet, Path: "/Employee/GetNotifications", PathParam: "employeeId"},

	// HR governance.
	{Name: "HR.CreateContract", Method: http.MethodPost, Path: "/HR/CreateContract"},
	{Name: "HR.RenewContract", Method: http.MethodPut, Path: "/HR/RenewContract"},
	{Name: "HR.GetActiveContracts", Method: http.MethodGet, Path: "/HR/GetActiveContracts", Kind: KindJSON},
	{Name: "HR.GetExpiringContracts", Method: http.MethodGet, Path: "/HR/GetExpiringContracts", Kind: KindJSON},
	{Name: "HR.ApproveLeave", Method: http.MethodPut, Path: "/HR/ApproveLeave"},
	{Name: "HR.ConfigureLeavePolicy", Method: http.MethodPost, Path: "/HR/ConfigureLeavePolicy"},
	{Name: "HR.ConfigureLeaveEligibility", Method: http.MethodPost, Path: "/HR/ConfigureLeaveEligibility"},
	{Name: "HR.RecomputeLeaveEntitlements", Method: http.MethodPost, Path: "/HR/RecomputeLeaveEntitlements"},
	{Name: "HR.FinalizeLeaveRequests", Method: http.MethodPost, Path: "/HR/FinalizeLeaveRequests"},
	{Name: "HR.CreateEmployeeProfile", Method: http.MethodPost, Path: "/HR/CreateEmployeeProfile"},
	{Name: "HR.UpdateEmployeeProfile", Method: http.MethodPut, Path: "/HR/UpdateEmployeeProfile"},
	{Name: "HR.GenerateProfileReport", Method: http.MethodGet, Path: "/HR/GenerateProfileReport", Kind: KindJSON},
	{Name: "HR.GetTeamByManager", Method: http.MethodGet, Path: "/HR/GetTeamByManager", PathParam: "managerId", Kind: KindJSON},
	{Name: "HR.DefineShiftType", Method: http.MethodPost, Path: "/HR/DefineShiftType"},
	{Name: "HR.AssignRotationalShift", Method: http.MethodPost, Path: "/HR/AssignRotationalShift"},
	{Name: "HR.AssignMission", Method: http.MethodPost, Path: "/HR/AssignMission"},
	{Name: "HR.ReviewReimbursement", Method: http.MethodPut, Path: "/HR/ReviewReimbursement"},
	{Name: "HR.ConfigureShortTimeRule", Method: http.MethodPost, Path: "/HR/ConfigureShortTimeRule"},
	{Name: "HR.ConfigureInsuranceBracket", Method: http.MethodPost, Path: "/HR/ConfigureInsuranceBracket"},

	// Manager team scope.
	{Name: "Manager.GetTeamProfiles", Method: http.MethodGet, Path: "/Manager/GetTeamProfiles", PathParam: "managerId"},
	{Name: "Manager.GetEmployeeCertifications", Method: http.MethodGet, Path: "/Manager/GetEmployeeCertifications", PathParam: "employeeId"},
	{Name: "Manager.FilterTeamByCertification", Method: http.MethodGet, Path: "/Manager/FilterTeamByCertification"},
	{Name: "Manager.AddEmployeeNote", Method: http.MethodPost, Path: "/Manager/AddEmployeeNote"},
	{Name: "Manager.AssignShift", Method: http.MethodPost, Path: "/Manager/AssignShift"},
	{Name: "Manager.ReassignShift", Method: http.MethodPut, Path: "/Manager/ReassignShift"},
	{Name: "Manager.GetTeamAttendance", Method: http.MethodGet, Path: "/Manager/GetTeamAttendance"},
	{Name: "Manager.RecordAttendanceManually", Method: http.MethodPost, Path: "/Manager/RecordAttendanceManually"},
	{Name: "Manager.ReviewMissedPunches", Method: http.MethodGet, Path: "/Manager/ReviewMissedPunches"},
	{Name: "Manager.DecideLeaveRequest", Method: http.MethodPut, Path: "/Manager/DecideLeaveRequest"},
	{Name: "Manager.DelegateApproval", Method: http.MethodPost, Path: "/Manager/DelegateApproval"},
	{Name: "Manager.GetTeamStatistics", Method: http.MethodGet, Path: "/Manager/GetTeamStatistics", PathParam: "managerId"},
	{Name: "Manager.GetDepartmentSummary", Method: http.MethodGet, Path: "/Manager/GetDepartmentSummary", PathParam: "departmentId"},
	{Name: "Manager.ApproveMissionCompletion", Method: http.MethodPut, Path: "/Manager/ApproveMissionCompletion"},

	// Payroll computation and configuration.
	{Name: "Payroll.GeneratePayroll", Method: http.MethodPost, Path: "/Payroll/GeneratePayroll"},
	{Name: "Payroll.CalculateNetSalary", Method: http.MethodPost, Path: "/Payroll/CalculateNetSalary"},
	{Name: "Payroll.AdjustPayrollItem", Method: http.MethodPut, Path: "/Payroll/AdjustPayrollItem"},
	{Name: "Payroll.ApplyRetroactiveModification", Method: http.MethodPut, Path: "/Payroll/ApplyRetroactiveModification"},
	{Name: "Payroll.SyncAttendance", Method: http.MethodPost, Path: "/Payroll/SyncAttendance"},
	{Name: "Payroll.ConfigureBonusPolicy", Method: http.MethodPost, Path: "/Payroll/ConfigureBonusPolicy"},
	{Name: "Payroll.ConfigureTerminationRule", Method: http.MethodPost, Path: "/Payroll/ConfigureTerminationRule"},
	{Name: "Payroll.ConfigureInsurancePolicy", Method: http.MethodPost, Path: "/Payroll/ConfigureInsurancePolicy"},
	{Name: "Payroll.ConfigureTaxRule", Method: http.MethodPost, Path: "/Payroll/ConfigureTaxRule"},
	{Name: "Payroll.ConfigurePayGrade", Method: http.MethodPost, Path: "/Payroll/ConfigurePayGrade"},
	{Name: "Payroll.ConfigureOvertimePolicy", Method: http.MethodPost, Path: "/Payroll/ConfigureOvertimePolicy"},
	{Name: "Payroll.ConfigureAllowancePolicy", Method: http.MethodPost, Path: "/Payroll/ConfigureAllowancePolicy"},
	{Name: "Payroll.EnableMultiCurrency", Method: http.MethodPost, Path: "/Payroll/EnableMultiCurrency"},
	{Name: "Payroll.GetMonthlySummary", Method: http.MethodGet, Path: "/Payroll/GetMonthlySummary"},
	{Name: "Payroll.GetDepartmentSummary", Method: http.MethodGet, Path: "/Payroll/GetDepartmentSummary"},
	{Name: "Payroll.GetEmployeeSummary", Method: http.MethodGet, Path: "/Payroll/GetEmployeeSummary", PathParam: "employeeId"},
	{Name: "Payroll.GetTaxStatement", Method: http.MethodGet, Path: "/Payroll/GetTaxStatement"},
	{Name: "Payroll.GetBonusEligibleEmployees", Method: http.MethodGet, Path: "/Payroll/GetBonusEligibleEmployees", Kind: KindJSON},

	// Admin system operations.
	{Name: "Admin.AddEmployee", Method: http.MethodPost, Path: "/Admin/AddEmployee", JSONBody: true},
	{Name: "Admin.UpdateEmployeeInfo", Method: http.MethodPut, Path: "/Admin/UpdateEmployeeInfo", JSONBody: true},
	{Name: "Admin.AssignRole", Method: http.MethodPost, Path: "/Admin/AssignRole"},
	{Name: "Admin.ReassignHierarchy", Method: http.MethodPut, Path: "/Admin/ReassignHierarchy"},
	{Name: "Admin.GetHierarchy", Method: http.MethodGet, Path: "/Admin/GetHierarchy", PathParam: "employeeId"},
	{Name: "Admin.ConfigureCustomShift", Method: http.MethodPost, Path: "/Admin/ConfigureCustomShift"},
	{Name: "Admin.ConfigureSplitShift", Method: http.MethodPost, Path: "/Admin/ConfigureSplitShift"},
	{Name: "Admin.SetFirstInLastOutRule", Method: http.MethodPost, Path: "/Admin/SetFirstInLastOutRule"},
	{Name: "Admin.AssignShiftToDepartment", Method: http.MethodPost, Path: "/Admin/AssignShiftToDepartment"},
	{Name: "Admin.TagAttendanceSource", Method: http.MethodPost, Path: "/Admin/TagAttendanceSource"},
	{Name: "Admin.SyncOfflineAttendance", Method: http.MethodPost, Path: "/Admin/SyncOfflineAttendance"},
	{Name: "Admin.LogAttendanceEdit", Method: http.MethodPost, Path: "/Admin/LogAttendanceEdit"},
	{Name: "Admin.ApplyHolidayOverride", Method: http.MethodPost, Path: "/Admin/ApplyHolidayOverride"},
	{Name: "Admin.ManageUserAccount", Method: http.MethodPut, Path: "/Admin/ManageUserAccount"},
}

var byName = func() map[string]Endpoint {
	m := make(map[string]Endpoint, len(table))
	for _, ep := range table {
		if _, dup := m[ep.Name]; dup {
			panic(fmt.Sprintf("duplicate endpoint %s", ep.Name))
		}
		m[ep.Name] = ep
	}
	return m
}()

// Endpoints returns a copy of the operation table, in registration order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(table))
	copy(out, table)
	return out
}

func mustEndpoint(name string) Endpoint {
	ep, ok := byName[name]
	if !ok {
		panic(fmt.Sprintf("unknown endpoint %s", name))
	}
	return ep
}

// RoutePattern is the chi-style pattern for the endpoint, including the
// path parameter segment when one exists.
func (e Endpoint) RoutePattern() string {
	if e.PathParam == "" {
		return e.Path
	}
	return e.Path + "/{" + e.PathParam + "}"
}
