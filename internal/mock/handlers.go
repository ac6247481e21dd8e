package mock

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/types"
)

// handlers maps operation names to behaviors that touch the dataset.
// Anything absent falls through to the generic receipt/ack handler.
func (s *Server) handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"Employee.SubmitLeaveRequest":       s.handleSubmitLeaveRequest,
		"Employee.CancelLeaveRequest":       s.handleCancelLeaveRequest,
		"Employee.GetLeaveBalance":          s.handleGetLeaveBalance,
		"Employee.GetLeaveHistory":          s.handleGetLeaveHistory,
		"Employee.GetAssignedShifts":        s.handleGetAssignedShifts,
		"Employee.GetProfile":               s.handleGetProfile,
		"Employee.GetContracts":             s.handleGetContracts,
		"Employee.GetPayrollHistory":        s.handleGetPayrollHistory,
		"Employee.GetMissions":              s.handleGetMissions,
		"Employee.GetNotifications":         s.handleGetNotifications,
		"Employee.NotifyManager":            s.handleNotifyManager,
		"HR.GetActiveContracts":             s.handleGetActiveContracts,
		"HR.GetExpiringContracts":           s.handleGetExpiringContracts,
		"HR.GenerateProfileReport":          s.handleGenerateProfileReport,
		"HR.GetTeamByManager":               s.handleGetTeamByManager,
		"HR.CreateEmployeeProfile":          s.handleCreateEmployeeProfile,
		"HR.CreateContract":                 s.handleCreateContract,
		"HR.AssignMission":                  s.handleAssignMission,
		"Manager.GetTeamProfiles":           s.handleGetTeamProfiles,
		"Manager.DecideLeaveRequest":        s.handleDecideLeaveRequest,
		"Manager.GetTeamStatistics":         s.handleGetTeamStatistics,
		"Manager.GetDepartmentSummary":      s.handleManagerDepartmentSummary,
		"Payroll.GetTaxStatement":           s.handleGetTaxStatement,
		"Payroll.GetEmployeeSummary":        s.handleGetEmployeeSummary,
		"Payroll.GetBonusEligibleEmployees": s.handleBonusEligible,
		"Admin.AddEmployee":                 s.handleAddEmployee,
		"Admin.UpdateEmployeeInfo":          s.handleUpdateEmployeeInfo,
		"Admin.ReassignHierarchy":           s.handleReassignHierarchy,
		"Admin.GetHierarchy":                s.handleGetHierarchy,
	}
}

func pathID(r *http.Request, key string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, key))
	return id, err == nil && id > 0
}

func (s *Server) employeeFromPath(w http.ResponseWriter, r *http.Request, key string) (types.Employee, bool) {
	id, ok := pathID(r, key)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid "+key)
		return types.Employee{}, false
	}
	e, ok := s.data.EmployeeByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return types.Employee{}, false
	}
	return e, true
}

func (s *Server) handleSubmitLeaveRequest(w http.ResponseWriter, r *http.Request) {
	employeeID := queryInt(r, "employeeId")
	leaveID := queryInt(r, "leaveId")
	if _, ok := s.data.EmployeeByID(employeeID); !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	req := types.LeaveRequest{
		EmployeeID:  employeeID,
		LeaveID:     leaveID,
		StartDate:   queryTime(r, "startDate"),
		EndDate:     queryTime(r, "endDate"),
		Status:      types.LeavePending,
		SubmittedAt: s.now().UTC(),
	}
	if reason := r.URL.Query().Get("reason"); reason != "" {
		req.Reason = &reason
	}
	if !req.EndDate.Before(req.StartDate) {
		req.Duration = req.EndDate.Sub(req.StartDate).Hours()/24 + 1
	}
	s.data.AddLeaveRequest(req)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCancelLeaveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := queryInt(r, "leaveRequestId")
	employeeID := queryInt(r, "employeeId")
	_, err := s.data.DecideLeaveRequest(requestID, types.LeaveCancelled, employeeID, s.now().UTC())
	switch {
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, "leave request not found")
	case errors.Is(err, errInvalidTransition):
		writeError(w, http.StatusConflict, "leave request is no longer cancellable")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "cancel failed")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleGetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	data, err := leaveBalancePDF(e, s.data.EntitlementsOf(e.EmployeeID), s.data.Leaves)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	writeFile(w, "LeaveBalance-"+strconv.Itoa(e.EmployeeID)+".pdf", "application/pdf", data)
}

func (s *Server) handleGetLeaveHistory(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	var history []types.LeaveRequest
	s.data.mu.RLock()
	for _, req := range s.data.LeaveRequests {
		if req.EmployeeID == e.EmployeeID {
			history = append(history, req)
		}
	}
	s.data.mu.RUnlock()
	writeJSONFile(w, "LeaveHistory-"+strconv.Itoa(e.EmployeeID)+".json", history)
}

func (s *Server) handleGetAssignedShifts(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	writeJSONFile(w, "Shifts-"+strconv.Itoa(e.EmployeeID)+".json", s.data.AssignmentsOf(e.EmployeeID))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	writeJSONFile(w, "Profile-"+strconv.Itoa(e.EmployeeID)+".json", e)
}

func (s *Server) handleGetContracts(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	writeJSONFile(w, "Contracts-"+strconv.Itoa(e.EmployeeID)+".json", s.data.ContractsOf(e.EmployeeID))
}

func (s *Server) handleGetPayrollHistory(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	payrolls := s.data.PayrollsOf(e.EmployeeID)
	if len(payrolls) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	data, err := payslipPDF(e, payrolls[len(payrolls)-1])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	writeFile(w, "Payslip-"+strconv.Itoa(e.EmployeeID)+".pdf", "application/pdf", data)
}

func (s *Server) handleGetMissions(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	writeJSONFile(w, "Missions-"+strconv.Itoa(e.EmployeeID)+".json", s.data.MissionsOf(e.EmployeeID))
}

func (s *Server) handleGetNotifications(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	writeJSONFile(w, "Notifications-"+strconv.Itoa(e.EmployeeID)+".json", s.data.NotificationsOf(e.EmployeeID))
}

func (s *Server) handleNotifyManager(w http.ResponseWriter, r *http.Request) {
	employeeID := queryInt(r, "employeeId")
	managerID := queryInt(r, "managerId")
	if _, ok := s.data.EmployeeByID(managerID); !ok {
		writeError(w, http.StatusNotFound, "manager not found")
		return
	}
	n := types.Notification{
		EmployeeID: managerID,
		SenderID:   &employeeID,
		Message:    r.URL.Query().Get("message"),
		CreatedAt:  s.now().UTC(),
	}
	if subject := r.URL.Query().Get("subject"); subject != "" {
		n.Subject = &subject
	}
	s.data.AddNotification(n)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetActiveContracts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.data.ContractsInState(types.ContractActive))
}

func (s *Server) handleGetExpiringContracts(w http.ResponseWriter, r *http.Request) {
	within := 30
	if v := queryInt(r, "withinDays"); v > 0 {
		within = v
	}
	writeJSON(w, http.StatusOK, s.data.ExpiringContracts(time.Duration(within)*24*time.Hour, s.now().UTC()))
}

func (s *Server) handleGenerateProfileReport(w http.ResponseWriter, r *http.Request) {
	departmentID := queryInt(r, "departmentId")
	status := r.URL.Query().Get("employmentStatus")
	hiredAfter := queryTime(r, "hiredAfter")

	s.data.mu.RLock()
	out := make([]types.Employee, 0)
	for _, e := range s.data.Employees {
		if departmentID > 0 && e.DepartmentID != departmentID {
			continue
		}
		if status != "" && string(e.EmploymentStatus) != status {
			continue
		}
		if !hiredAfter.IsZero() && (e.HireDate == nil || e.HireDate.Before(hiredAfter)) {
			continue
		}
		out = append(out, e)
	}
	s.data.mu.RUnlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTeamByManager(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "managerId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid managerId")
		return
	}
	writeJSON(w, http.StatusOK, s.data.Team(id))
}

func (s *Server) handleCreateEmployeeProfile(w http.ResponseWriter, r *http.Request) {
	e := types.Employee{
		FirstName:    r.URL.Query().Get("firstName"),
		LastName:     r.URL.Query().Get("lastName"),
		Email:        r.URL.Query().Get("email"),
		DepartmentID: queryInt(r, "departmentId"),
		PositionID:   queryInt(r, "positionId"),
	}
	if e.FirstName == "" || e.LastName == "" || e.Email == "" {
		writeError(w, http.StatusBadRequest, "firstName, lastName and email are required")
		return
	}
	if hireDate := queryTime(r, "hireDate"); !hireDate.IsZero() {
		e.HireDate = &hireDate
	}
	e.EmploymentStatus = types.EmploymentActive
	s.data.AddEmployee(e)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	employeeID := queryInt(r, "employeeId")
	if _, ok := s.data.EmployeeByID(employeeID); !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	c := types.Contract{
		EmployeeID:   employeeID,
		Type:         types.ContractType(r.URL.Query().Get("contractType")),
		CurrentState: types.ContractDraft,
	}
	if start := queryTime(r, "startDate"); !start.IsZero() {
		c.StartDate = &start
	}
	if end := queryTime(r, "endDate"); !end.IsZero() {
		c.EndDate = &end
	}
	if v := r.URL.Query().Get("baseSalary"); v != "" {
		if salary, err := strconv.ParseFloat(v, 64); err == nil {
			c.BaseSalary = &salary
		}
	}
	s.data.AddContract(c)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAssignMission(w http.ResponseWriter, r *http.Request) {
	employeeID := queryInt(r, "employeeId")
	if _, ok := s.data.EmployeeByID(employeeID); !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	m := types.Mission{
		EmployeeID:  employeeID,
		ManagerID:   queryInt(r, "managerId"),
		Destination: r.URL.Query().Get("destination"),
		StartDate:   queryTime(r, "startDate"),
		EndDate:     queryTime(r, "endDate"),
		Status:      types.MissionPlanned,
	}
	s.data.AddMission(m)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetTeamProfiles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "managerId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid managerId")
		return
	}
	writeJSONFile(w, "Team-"+strconv.Itoa(id)+".json", s.data.Team(id))
}

func (s *Server) handleDecideLeaveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := queryInt(r, "leaveRequestId")
	managerID := queryInt(r, "managerId")
	to := types.LeaveRejected
	if r.URL.Query().Get("decision") == "APPROVE" {
		to = types.LeaveApproved
	}
	_, err := s.data.DecideLeaveRequest(requestID, to, managerID, s.now().UTC())
	switch {
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, "leave request not found")
	case errors.Is(err, errInvalidTransition):
		writeError(w, http.StatusConflict, "leave request already decided")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "decision failed")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleGetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "managerId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid managerId")
		return
	}
	team := s.data.Team(id)
	stats := types.TeamStatistics{ManagerID: id, HeadCount: len(team)}

	today := s.now().UTC().Truncate(24 * time.Hour)
	var workedHours float64
	var workedDays int
	s.data.mu.RLock()
	for _, member := range team {
		for _, a := range s.data.Attendances {
			if a.EmployeeID != member.EmployeeID {
				continue
			}
			if a.WorkDate.Equal(today) {
				stats.PresentToday++
			}
			if a.WorkedHours != nil {
				workedHours += *a.WorkedHours
				workedDays++
			}
		}
		for _, req := range s.data.LeaveRequests {
			if req.EmployeeID != member.EmployeeID {
				continue
			}
			if req.Status == types.LeavePending {
				stats.PendingRequests++
			}
			if req.Status == types.LeaveApproved && !today.Before(req.StartDate) && !today.After(req.EndDate) {
				stats.OnLeaveToday++
			}
		}
	}
	s.data.mu.RUnlock()
	if workedDays > 0 {
		stats.AvgWorkedHours = workedHours / float64(workedDays)
	}
	writeJSONFile(w, "TeamStatistics-"+strconv.Itoa(id)+".json", stats)
}

func (s *Server) handleManagerDepartmentSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "departmentId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid departmentId")
		return
	}
	dept, ok := s.data.DepartmentByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "department not found")
		return
	}
	summary := types.DepartmentSummary{DepartmentID: id, Name: dept.Name}
	s.data.mu.RLock()
	for _, e := range s.data.Employees {
		if e.DepartmentID != id {
			continue
		}
		summary.HeadCount++
		for _, p := range s.data.Payrolls {
			if p.EmployeeID == e.EmployeeID && p.NetSalary != nil {
				summary.TotalCost += *p.NetSalary
			}
		}
		for _, req := range s.data.LeaveRequests {
			if req.EmployeeID == e.EmployeeID && req.Status == types.LeavePending {
				summary.OpenRequests++
			}
		}
	}
	s.data.mu.RUnlock()
	writeJSONFile(w, "DepartmentSummary-"+strconv.Itoa(id)+".json", summary)
}

func (s *Server) handleGetTaxStatement(w http.ResponseWriter, r *http.Request) {
	employeeID := queryInt(r, "employeeId")
	year := queryInt(r, "year")
	e, ok := s.data.EmployeeByID(employeeID)
	if !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	var inYear []types.Payroll
	for _, p := range s.data.PayrollsOf(employeeID) {
		if p.PeriodStart.Year() == year {
			inYear = append(inYear, p)
		}
	}
	data, err := taxStatementPDF(e, year, inYear)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	writeFile(w, "TaxStatement-"+strconv.Itoa(year)+".pdf", "application/pdf", data)
}

func (s *Server) handleGetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	payrolls := s.data.PayrollsOf(e.EmployeeID)
	summary := types.PayrollSummary{Scope: "employee", EmployeeCount: 1}
	for _, p := range payrolls {
		if p.BaseAmount != nil {
			summary.TotalGross += *p.BaseAmount
		}
		if p.Taxes != nil {
			summary.TotalTaxes += *p.Taxes
		}
		if p.NetSalary != nil {
			summary.TotalNet += *p.NetSalary
		}
	}
	writeJSONFile(w, "PayrollSummary-"+strconv.Itoa(e.EmployeeID)+".json", summary)
}

// handleBonusEligible treats everyone with an active contract as eligible;
// real eligibility rules live server-side in production.
func (s *Server) handleBonusEligible(w http.ResponseWriter, r *http.Request) {
	active := s.data.ContractsInState(types.ContractActive)
	eligible := make([]types.Employee, 0, len(active))
	seen := make(map[int]bool, len(active))
	for _, c := range active {
		if seen[c.EmployeeID] {
			continue
		}
		seen[c.EmployeeID] = true
		if e, ok := s.data.EmployeeByID(c.EmployeeID); ok {
			eligible = append(eligible, e)
		}
	}
	writeJSON(w, http.StatusOK, eligible)
}

func (s *Server) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	var e types.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "malformed employee payload")
		return
	}
	if e.FirstName == "" || e.LastName == "" || e.Email == "" {
		writeError(w, http.StatusBadRequest, "first_name, last_name and email are required")
		return
	}
	s.data.AddEmployee(e)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateEmployeeInfo(w http.ResponseWriter, r *http.Request) {
	var e types.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "malformed employee payload")
		return
	}
	if !s.data.UpdateEmployee(e) {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReassignHierarchy(w http.ResponseWriter, r *http.Request) {
	employeeID := queryInt(r, "employeeId")
	newManagerID := queryInt(r, "newManagerId")
	if employeeID == newManagerID {
		writeError(w, http.StatusBadRequest, "an employee cannot manage themselves")
		return
	}
	if !s.data.ReassignManager(employeeID, newManagerID) {
		writeError(w, http.StatusNotFound, "employee or manager not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetHierarchy(w http.ResponseWriter, r *http.Request) {
	e, ok := s.employeeFromPath(w, r, "employeeId")
	if !ok {
		return
	}
	writeJSONFile(w, "Hierarchy-"+strconv.Itoa(e.EmployeeID)+".json", s.data.Hierarchy(e.EmployeeID))
}
