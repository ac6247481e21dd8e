// Package mock is the in-memory backend the UI prototypes against. It
// serves the full operation table with a seeded dataset; nothing is
// persisted and every start rebuilds the same world for a given seed.
package mock

import (
	"sync"
	"time"

	"hrportal/types"
)

// Account pairs a user account with its password hash; the dataset is the
// only credential store.
type Account struct {
	types.UserAccount
	PasswordHash string
}

type Dataset struct {
	mu sync.RWMutex

	Departments    []types.Department
	Positions      []types.Position
	Employees      []types.Employee
	Contracts      []types.Contract
	Leaves         []types.Leave
	LeaveRequests  []types.LeaveRequest
	Entitlements   []types.LeaveEntitlement
	Shifts         []types.ShiftSchedule
	Assignments    []types.ShiftAssignment
	Attendances    []types.Attendance
	Missions       []types.Mission
	Payrolls       []types.Payroll
	Currencies     []types.Currency
	Notifications  []types.Notification
	Reimbursements []types.Reimbursement
	Accounts       []Account

	nextID int
}

// nextIDLocked hands out the next wire id; callers hold mu (or own the
// dataset exclusively, as seeding does).
func (d *Dataset) nextIDLocked() int {
	d.nextID++
	return d.nextID
}

func (d *Dataset) EmployeeByID(id int) (types.Employee, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, e := range d.Employees {
		if e.EmployeeID == id {
			return e, true
		}
	}
	return types.Employee{}, false
}

// Team returns the direct reports of a manager.
func (d *Dataset) Team(managerID int) []types.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var team []types.Employee
	for _, e := range d.Employees {
		if e.ManagerID != nil && *e.ManagerID == managerID {
			team = append(team, e)
		}
	}
	return team
}

func (d *Dataset) ContractsInState(state types.ContractState) []types.Contract {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []types.Contract
	for _, c := range d.Contracts {
		if c.CurrentState == state {
			out = append(out, c)
		}
	}
	return out
}

// ExpiringContracts returns active contracts ending within the window.
func (d *Dataset) ExpiringContracts(within time.Duration, now time.Time) []types.Contract {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cutoff := now.Add(within)
	var out []types.Contract
	for _, c := range d.Contracts {
		if c.CurrentState != types.ContractActive || c.EndDate == nil {
			continue
		}
		if c.EndDate.After(now) && c.EndDate.Before(cutoff) {
			out = append(out, c)
		}
	}
	return out
}

func (d *Dataset) ContractsOf(employeeID int) []types.Contract {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []types.Contract
	for _, c := range d.Contracts {
		if c.EmployeeID == employeeID {
			out = append(out, c)
		}
	}
	return out
}

func (d *Dataset) PayrollsOf(employeeID int) []types.Payroll {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []types.Payroll
	for _, p := range d.Payrolls {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out
}

func (d *Dataset) EntitlementsOf(employeeID int) []types.LeaveEntitlement {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []types.LeaveEntitlement
	for _, e := range d.Entitlements {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out
}

func (d *Dataset) AccountByEmail(email string) (Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.Accounts {
		if a.Email == email {
			return a, true
		}
	}
	return Account{}, false
}

func (d *Dataset) AddEmployee(e types.Employee) types.Employee {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e.EmployeeID == 0 {
		e.EmployeeID = d.nextIDLocked()
	}
	if e.EmploymentStatus == "" {
		e.EmploymentStatus = types.EmploymentActive
	}
	if e.AccountStatus == "" {
		e.AccountStatus = types.AccountActive
	}
	d.Employees = append(d.Employees, e)
	return e
}

// UpdateEmployee replaces the stored record keyed by employee_id.
func (d *Dataset) UpdateEmployee(e types.Employee) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.Employees {
		if d.Employees[i].EmployeeID == e.EmployeeID {
			d.Employees[i] = e
			return true
		}
	}
	return false
}

func (d *Dataset) ReassignManager(employeeID, managerID int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.Employees {
		if d.Employees[i].EmployeeID == employeeID {
			m := managerID
			d.Employees[i].ManagerID = &m
			return true
		}
	}
	return false
}

func (d *Dataset) AddContract(c types.Contract) types.Contract {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c.ContractID == 0 {
		c.ContractID = d.nextIDLocked()
	}
	d.Contracts = append(d.Contracts, c)
	for i := range d.Employees {
		if d.Employees[i].EmployeeID == c.EmployeeID {
			id := c.ContractID
			d.Employees[i].ContractID = &id
		}
	}
	return c
}

func (d *Dataset) AddLeaveRequest(r types.LeaveRequest) types.LeaveRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r.RequestID == 0 {
		r.RequestID = d.nextIDLocked()
	}
	d.LeaveRequests = append(d.LeaveRequests, r)
	return r
}

// DecideLeaveRequest applies a status transition, rejecting moves the
// transition table does not allow.
func (d *Dataset) DecideLeaveRequest(requestID int, to types.LeaveStatus, approverID int, now time.Time) (types.LeaveRequest, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.LeaveRequests {
		if d.LeaveRequests[i].RequestID != requestID {
			continue
		}
		if !d.LeaveRequests[i].Status.CanTransition(to) {
			return types.LeaveRequest{}, errInvalidTransition
		}
		d.LeaveRequests[i].Status = to
		d.LeaveRequests[i].ApproverID = &approverID
		t := now
		d.LeaveRequests[i].DecidedAt = &t
		return d.LeaveRequests[i], nil
	}
	return types.LeaveRequest{}, errNotFound
}

func (d *Dataset) AddMission(m types.Mission) types.Mission {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m.MissionID == 0 {
		m.MissionID = d.nextIDLocked()
	}
	if m.Status == "" {
		m.Status = types.MissionPlanned
	}
	d.Missions = append(d.Missions, m)
	return m
}

func (d *Dataset) MissionsOf(employeeID int) []types.Mission {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []types.Mission
	for _, m := range d.Missions {
		if m.EmployeeID == employeeID {
			out = append(out, m)
		}
	}
	return out
}

func (d *Dataset) AddNotification(n types.Notification) types.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n.NotificationID == 0 {
		n.NotificationID = d.nextIDLocked()
	}
	d.Notifications = append(d.Notifications, n)
	return n
}

func (d *Dataset) NotificationsOf(employeeID int) []types.Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []types.Notification
	for _, n := range d.Notifications {
		if n.EmployeeID == employeeID {
			out = append(out, n)
		}
	}
	return out
}

func (d *Dataset) AssignmentsOf(employeeID int) []types.ShiftAssignment {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []types.ShiftAssignment
	for _, a := range d.Assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out
}

func (d *Dataset) DepartmentByID(id int) (types.Department, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, dep := range d.Departments {
		if dep.DepartmentID == id {
			return dep, true
		}
	}
	return types.Department{}, false
}

// Hierarchy walks the manager chain upward from an employee.
func (d *Dataset) Hierarchy(employeeID int) []types.EmployeeHierarchy {
	d.mu.RLock()
	defer d.mu.RUnlock()
	byID := make(map[int]types.Employee, len(d.Employees))
	for _, e := range d.Employees {
		byID[e.EmployeeID] = e
	}
	var chain []types.EmployeeHierarchy
	depth := 0
	current, ok := byID[employeeID]
	for ok && current.ManagerID != nil && depth < len(byID) {
		chain = append(chain, types.EmployeeHierarchy{
			EmployeeID: current.EmployeeID,
			ManagerID:  *current.ManagerID,
			Depth:      depth,
		})
		current, ok = byID[*current.ManagerID]
		depth++
	}
	return chain
}
