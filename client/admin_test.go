package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"

	"hrportal/types"
)

func TestAddEmployeeNilRecord(t *testing.T) {
	_, err := New("http://example.invalid").Admin().AddEmployee(context.Background(), nil)

	var rpe *RequiredParamError
	if !errors.As(err, &rpe) {
		t.Fatalf("error = %v, want *RequiredParamError", err)
	}
	if rpe.Param != "employee" {
		t.Fatalf("Param = %q, want employee", rpe.Param)
	}
}

func TestAddEmployeeValidatesBeforeSend(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	bad := &types.Employee{FirstName: "Lu", LastName: "Wei", Email: "not-an-email", DepartmentID: 1, PositionID: 1}
	_, err := New(ts.URL).Admin().AddEmployee(context.Background(), bad)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %v, want validator.ValidationErrors", err)
	}
	if requests != 0 {
		t.Fatalf("invalid record must not reach the wire, saw %d requests", requests)
	}
}

func TestAddEmployeeSendsSnakeCaseBody(t *testing.T) {
	var decoded map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&decoded); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	e := &types.Employee{FirstName: "Lu", LastName: "Wei", Email: "lu.wei@corp.test", DepartmentID: 2, PositionID: 5}
	res, err := New(ts.URL).Admin().AddEmployee(context.Background(), e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result for 204, got %+v", res)
	}
	if decoded["first_name"] != "Lu" || decoded["department_id"] != float64(2) {
		t.Fatalf("body not in wire naming: %v", decoded)
	}
}
