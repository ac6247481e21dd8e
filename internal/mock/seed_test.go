package mock

import (
	"testing"

	"hrportal/internal/auth"
	"hrportal/types"
)

func TestSeedIsDeterministic(t *testing.T) {
	a, err := NewDataset(42, 30, "pw")
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	b, err := NewDataset(42, 30, "pw")
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}

	if len(a.Employees) != len(b.Employees) {
		t.Fatalf("employee counts differ: %d vs %d", len(a.Employees), len(b.Employees))
	}
	for i := range a.Employees {
		if a.Employees[i].Email != b.Employees[i].Email {
			t.Fatalf("employee %d differs: %s vs %s", i, a.Employees[i].Email, b.Employees[i].Email)
		}
	}
	if len(a.Contracts) != len(b.Contracts) || len(a.Payrolls) != len(b.Payrolls) {
		t.Fatal("derived records differ between identical seeds")
	}
}

func TestSeedDifferentSeedsDiffer(t *testing.T) {
	a, _ := NewDataset(1, 30, "pw")
	b, _ := NewDataset(2, 30, "pw")

	same := len(a.Employees) == len(b.Employees)
	if same {
		for i := range a.Employees {
			if a.Employees[i].Email != b.Employees[i].Email {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different seeds produced identical employee rosters")
	}
}

func TestSeedEnforcesMinimumPopulation(t *testing.T) {
	d, err := NewDataset(7, 1, "pw")
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if len(d.Employees) < 5 {
		t.Fatalf("population = %d, want at least 5", len(d.Employees))
	}
}

func TestSeedContractTermsShareKey(t *testing.T) {
	d, err := NewDataset(99, 40, "pw")
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	for _, c := range d.Contracts {
		if c.Terms == nil {
			t.Fatalf("contract %d has no terms", c.ContractID)
		}
		if c.Terms.Kind() != c.Type {
			t.Fatalf("contract %d: terms kind %s under discriminator %s", c.ContractID, c.Terms.Kind(), c.Type)
		}
	}
}

func TestSeedWellKnownAccounts(t *testing.T) {
	// 40 employees yields 4 manager slots, so one remains a Manager after
	// the Admin/HR/Payroll accounts are carved out of the head of the list.
	d, err := NewDataset(5, 40, "pw")
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}

	admin, ok := d.AccountByEmail("admin@hrportal.test")
	if !ok {
		t.Fatal("expected the well-known admin account")
	}
	if admin.Role != auth.RoleAdmin {
		t.Fatalf("admin role = %q", admin.Role)
	}
	if err := auth.CheckPassword(admin.PasswordHash, "pw"); err != nil {
		t.Fatalf("seed password does not verify: %v", err)
	}

	roles := map[string]bool{}
	for _, a := range d.Accounts {
		roles[a.Role] = true
	}
	for _, want := range []string{auth.RoleAdmin, auth.RoleHR, auth.RolePayroll, auth.RoleManager, auth.RoleEmployee} {
		if !roles[want] {
			t.Errorf("no seeded account with role %s", want)
		}
	}
}

func TestDecideLeaveRequestTransitions(t *testing.T) {
	d, err := NewDataset(11, 30, "pw")
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	var pending *types.LeaveRequest
	for i := range d.LeaveRequests {
		if d.LeaveRequests[i].Status == types.LeavePending {
			pending = &d.LeaveRequests[i]
			break
		}
	}
	if pending == nil {
		t.Fatal("seed produced no pending leave requests")
	}

	now := d.Employees[0].HireDate.AddDate(1, 0, 0)
	decided, err := d.DecideLeaveRequest(pending.RequestID, types.LeaveApproved, d.Employees[0].EmployeeID, now)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if decided.Status != types.LeaveApproved || decided.DecidedAt == nil {
		t.Fatalf("decision not recorded: %+v", decided)
	}

	// A decided request cannot be re-decided.
	if _, err := d.DecideLeaveRequest(pending.RequestID, types.LeaveRejected, 1, now); err != errInvalidTransition {
		t.Fatalf("err = %v, want errInvalidTransition", err)
	}

	if _, err := d.DecideLeaveRequest(999999, types.LeaveApproved, 1, now); err != errNotFound {
		t.Fatalf("err = %v, want errNotFound", err)
	}
}
