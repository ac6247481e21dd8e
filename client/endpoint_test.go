package client

import (
	"net/http"
	"strings"
	"testing"
)

func TestEndpointTableIntegrity(t *testing.T) {
	eps := Endpoints()
	if len(eps) != 90 {
		t.Fatalf("table has %d rows, want 90", len(eps))
	}

	seen := make(map[string]bool, len(eps))
	for _, ep := range eps {
		if seen[ep.Name] {
			t.Errorf("duplicate endpoint name %s", ep.Name)
		}
		seen[ep.Name] = true

		role, op, ok := strings.Cut(ep.Name, ".")
		if !ok {
			t.Errorf("%s: name is not Role.Operation", ep.Name)
			continue
		}
		if want := "/" + role + "/" + op; ep.Path != want {
			t.Errorf("%s: path %q does not match name", ep.Name, ep.Path)
		}
		switch ep.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut:
		default:
			t.Errorf("%s: unexpected method %s", ep.Name, ep.Method)
		}
		if ep.Method == http.MethodGet && ep.JSONBody {
			t.Errorf("%s: GET endpoint cannot carry a JSON body", ep.Name)
		}
	}
}

func TestRoutePattern(t *testing.T) {
	ep := mustEndpoint("Employee.GetProfile")
	if got := ep.RoutePattern(); got != "/Employee/GetProfile/{employeeId}" {
		t.Fatalf("RoutePattern = %q", got)
	}

	ep = mustEndpoint("HR.GetActiveContracts")
	if got := ep.RoutePattern(); got != "/HR/GetActiveContracts" {
		t.Fatalf("RoutePattern = %q", got)
	}
}
