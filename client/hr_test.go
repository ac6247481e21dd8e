package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrportal/types"
)

func TestGetActiveContractsDecodesWireNames(t *testing.T) {
	body := `[{"contract_id":1,"employee_id":9,"type":"FULL_TIME","current_state":"ACTIVE",` +
		`"full_time":{"contract_id":1,"weekly_hours":40,"annual_leave_days":25}}]`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/HR/GetActiveContracts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer ts.Close()

	contracts, err := New(ts.URL).HR().GetActiveContracts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contracts) != 1 {
		t.Fatalf("len = %d, want 1", len(contracts))
	}
	c := contracts[0]
	if c.ContractID != 1 || c.EmployeeID != 9 {
		t.Fatalf("ids not decoded from snake_case: %+v", c)
	}
	if c.CurrentState != types.ContractActive {
		t.Fatalf("CurrentState = %q", c.CurrentState)
	}
	ft, ok := c.Terms.(types.FullTimeTerms)
	if !ok {
		t.Fatalf("Terms = %T, want types.FullTimeTerms", c.Terms)
	}
	if ft.WeeklyHours != 40 || ft.AnnualLeave != 25 {
		t.Fatalf("terms not decoded: %+v", ft)
	}
}

func TestAssignMissionParameterOrder(t *testing.T) {
	var rawQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	_, err := New(ts.URL).HR().AssignMission(context.Background(), 12, 3, "Nairobi", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "employeeId=12&managerId=3&destination=Nairobi" +
		"&startDate=2026-04-01T00%3A00%3A00.000Z&endDate=2026-04-10T00%3A00%3A00.000Z"
	if rawQuery != want {
		t.Fatalf("raw query = %q, want %q", rawQuery, want)
	}
}

func TestGetTeamByManagerUsesPathParam(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/HR/GetTeamByManager/3" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"employee_id":4,"first_name":"Ana","last_name":"Silva","email":"ana@x.test","department_id":1,"position_id":1}]`))
	}))
	defer ts.Close()

	team, err := New(ts.URL).HR().GetTeamByManager(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(team) != 1 || team[0].FirstName != "Ana" {
		t.Fatalf("team = %+v", team)
	}
}
