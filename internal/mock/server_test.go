package mock_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"hrportal/client"
	"hrportal/internal/auth"
	"hrportal/internal/mock"
	"hrportal/internal/platform/config"
	"hrportal/types"
)

func newTestServer(t *testing.T) (*mock.Server, *httptest.Server) {
	t.Helper()
	cfg := config.Config{
		Environment:   "test",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		DatasetSeed:   42,
		SeedEmployees: 50,
		SeedPassword:  "pw",
	}
	dataset, err := mock.NewDataset(cfg.DatasetSeed, cfg.SeedEmployees, cfg.SeedPassword)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	srv := mock.NewServer(cfg, dataset, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func accountWithRole(t *testing.T, srv *mock.Server, role string) mock.Account {
	t.Helper()
	for _, a := range srv.Dataset().Accounts {
		if a.Role == role {
			return a
		}
	}
	t.Fatalf("no seeded account with role %s", role)
	return mock.Account{}
}

func TestLoginAndRoleGuards(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx := context.Background()

	// No token: everything behind the guard is 401.
	c := client.New(ts.URL)
	_, err := c.HR().GetActiveContracts(ctx)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated call: %v", err)
	}

	// Wrong credentials are rejected.
	if _, err := c.Login(ctx, "admin@hrportal.test", "nope"); err == nil {
		t.Fatal("expected login failure")
	}

	res, err := c.Login(ctx, "admin@hrportal.test", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Role != auth.RoleAdmin || res.Token == "" {
		t.Fatalf("login result: %+v", res)
	}

	// The installed token opens the admin surface.
	if _, err := c.HR().GetActiveContracts(ctx); err != nil {
		t.Fatalf("authenticated call failed: %v", err)
	}

	// A plain employee cannot reach the Payroll surface.
	emp := accountWithRole(t, srv, auth.RoleEmployee)
	ec := client.New(ts.URL)
	if _, err := ec.Login(ctx, emp.Email, "pw"); err != nil {
		t.Fatalf("employee login failed: %v", err)
	}
	_, err = ec.Payroll().GetTaxStatement(ctx, *emp.EmployeeID, 2025)
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for employee on payroll surface, got %v", err)
	}
}

// TestEveryOperationIsRouted sweeps the whole operation table against the
// server with realistic identifiers, proving SDK and server register the
// same routes.
func TestEveryOperationIsRouted(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx := context.Background()
	data := srv.Dataset()

	c := client.New(ts.URL)
	res, err := c.Login(ctx, "admin@hrportal.test", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	manager := data.Employees[0]
	employee := data.Employees[len(data.Employees)-1]
	department := data.Departments[0]
	var pendingRequest int
	for _, req := range data.LeaveRequests {
		if req.Status == types.LeavePending {
			pendingRequest = req.RequestID
			break
		}
	}
	if pendingRequest == 0 {
		t.Fatal("seed produced no pending leave request")
	}

	date := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	sink := strings.Join([]string{
		"employeeId=" + strconv.Itoa(employee.EmployeeID),
		"managerId=" + strconv.Itoa(manager.EmployeeID),
		"newManagerId=" + strconv.Itoa(manager.EmployeeID),
		"departmentId=" + strconv.Itoa(department.DepartmentID),
		"positionId=" + strconv.Itoa(employee.PositionID),
		"leaveId=" + strconv.Itoa(data.Leaves[0].LeaveID),
		"leaveRequestId=" + strconv.Itoa(pendingRequest),
		"decision=APPROVE",
		"firstName=Test", "lastName=Person", "email=test.person@example.test",
		"contractType=FULL_TIME",
		"destination=Lisbon",
		"startDate=" + date, "endDate=" + date,
		"year=2025", "month=11",
	}, "&")

	body, err := json.Marshal(employee)
	if err != nil {
		t.Fatalf("marshal employee: %v", err)
	}

	httpc := ts.Client()
	for _, ep := range client.Endpoints() {
		url := ts.URL + ep.Path
		if ep.PathParam != "" {
			switch ep.PathParam {
			case "managerId":
				url += "/" + strconv.Itoa(manager.EmployeeID)
			case "departmentId":
				url += "/" + strconv.Itoa(department.DepartmentID)
			default:
				url += "/" + strconv.Itoa(employee.EmployeeID)
			}
		}
		url += "?" + sink

		var payload io.Reader
		if ep.JSONBody {
			payload = strings.NewReader(string(body))
		}
		req, err := http.NewRequest(ep.Method, url, payload)
		if err != nil {
			t.Fatalf("%s: build request: %v", ep.Name, err)
		}
		req.Header.Set("Authorization", "Bearer "+res.Token)
		if ep.JSONBody {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := httpc.Do(req)
		if err != nil {
			t.Fatalf("%s: %v", ep.Name, err)
		}
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			t.Errorf("%s: not routed (%d): %s", ep.Name, resp.StatusCode, respBody)
		default:
			if resp.StatusCode >= 500 {
				t.Errorf("%s: server error (%d): %s", ep.Name, resp.StatusCode, respBody)
			}
		}
	}
}

func TestLeaveJourney(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx := context.Background()
	data := srv.Dataset()

	c := client.New(ts.URL)
	if _, err := c.Login(ctx, "admin@hrportal.test", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	employee := data.Employees[len(data.Employees)-1]
	manager := data.Employees[0]

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 4)
	reason := "family visit"
	before := len(data.LeaveRequests)
	if _, err := c.Employee().SubmitLeaveRequest(ctx, employee.EmployeeID, data.Leaves[0].LeaveID, start, end, &reason); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(data.LeaveRequests) != before+1 {
		t.Fatalf("request not recorded: %d -> %d", before, len(data.LeaveRequests))
	}
	submitted := data.LeaveRequests[len(data.LeaveRequests)-1]
	if submitted.Status != types.LeavePending || submitted.EmployeeID != employee.EmployeeID {
		t.Fatalf("unexpected stored request: %+v", submitted)
	}

	if _, err := c.Manager().DecideLeaveRequest(ctx, submitted.RequestID, manager.EmployeeID, "APPROVE", nil); err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	decided := data.LeaveRequests[len(data.LeaveRequests)-1]
	if decided.Status != types.LeaveApproved {
		t.Fatalf("status = %s, want APPROVED", decided.Status)
	}

	// A second decision on the same request conflicts.
	_, err := c.Manager().DecideLeaveRequest(ctx, submitted.RequestID, manager.EmployeeID, "REJECT", nil)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on double decision, got %v", err)
	}

	balance, err := c.Employee().GetLeaveBalance(ctx, employee.EmployeeID)
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	wantName := fmt.Sprintf("LeaveBalance-%d.pdf", employee.EmployeeID)
	if balance.FileName != wantName {
		t.Fatalf("FileName = %q, want %q", balance.FileName, wantName)
	}
	if !strings.HasPrefix(string(balance.Data), "%PDF") {
		t.Fatalf("balance payload is not a PDF: %q", balance.Data[:8])
	}
}

func TestPayslipDownloadJourney(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx := context.Background()

	c := client.New(ts.URL)
	if _, err := c.Login(ctx, "admin@hrportal.test", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	employee := srv.Dataset().Employees[3]
	res, err := c.Employee().GetPayrollHistory(ctx, employee.EmployeeID)
	if err != nil {
		t.Fatalf("payroll history failed: %v", err)
	}
	if res == nil {
		t.Fatal("expected a payslip for a seeded employee")
	}
	if !strings.HasPrefix(string(res.Data), "%PDF") {
		t.Fatal("payslip payload is not a PDF")
	}
	if res.Headers.Get("Content-Type") != "application/pdf" {
		t.Fatalf("Content-Type = %q", res.Headers.Get("Content-Type"))
	}
}

func TestAdminEmployeeLifecycle(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx := context.Background()
	data := srv.Dataset()

	c := client.New(ts.URL)
	if _, err := c.Login(ctx, "admin@hrportal.test", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	before := len(data.Employees)
	newcomer := &types.Employee{
		FirstName:    "Noor",
		LastName:     "Fayed",
		Email:        "noor.fayed@example.test",
		DepartmentID: data.Departments[0].DepartmentID,
		PositionID:   data.Positions[0].PositionID,
	}
	if _, err := c.Admin().AddEmployee(ctx, newcomer); err != nil {
		t.Fatalf("add employee failed: %v", err)
	}
	if len(data.Employees) != before+1 {
		t.Fatal("employee not stored")
	}
	stored := data.Employees[len(data.Employees)-1]
	if stored.EmployeeID == 0 || stored.Email != newcomer.Email {
		t.Fatalf("stored record: %+v", stored)
	}

	stored.LastName = "Fayed-Khalil"
	if _, err := c.Admin().UpdateEmployeeInfo(ctx, &stored); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	updated, ok := data.EmployeeByID(stored.EmployeeID)
	if !ok || updated.LastName != "Fayed-Khalil" {
		t.Fatalf("update not applied: %+v", updated)
	}

	manager := data.Employees[0]
	if _, err := c.Admin().ReassignHierarchy(ctx, stored.EmployeeID, manager.EmployeeID); err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	chainRes, err := c.Admin().GetHierarchy(ctx, stored.EmployeeID)
	if err != nil {
		t.Fatalf("hierarchy failed: %v", err)
	}
	var chain []types.EmployeeHierarchy
	if err := json.Unmarshal(chainRes.Data, &chain); err != nil {
		t.Fatalf("decode hierarchy: %v", err)
	}
	if len(chain) == 0 || chain[0].ManagerID != manager.EmployeeID {
		t.Fatalf("chain = %+v", chain)
	}
}

func TestContractQueriesAgainstSeed(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx := context.Background()

	c := client.New(ts.URL)
	if _, err := c.Login(ctx, "admin@hrportal.test", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	active, err := c.HR().GetActiveContracts(ctx)
	if err != nil {
		t.Fatalf("active contracts failed: %v", err)
	}
	if len(active) != len(srv.Dataset().Contracts) {
		t.Fatalf("active = %d, seeded = %d", len(active), len(srv.Dataset().Contracts))
	}
	for _, contract := range active {
		if contract.Terms == nil {
			t.Fatalf("contract %d lost its terms over the wire", contract.ContractID)
		}
		if contract.Terms.Kind() != contract.Type {
			t.Fatalf("contract %d: kind %s under discriminator %s", contract.ContractID, contract.Terms.Kind(), contract.Type)
		}
	}

	within := 3650
	expiring, err := c.HR().GetExpiringContracts(ctx, &within)
	if err != nil {
		t.Fatalf("expiring contracts failed: %v", err)
	}
	if len(expiring) == 0 {
		t.Fatal("a ten-year window should catch every seeded end date")
	}
}
