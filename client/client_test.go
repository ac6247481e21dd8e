package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFileEndpointNoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL)
	res, err := c.Employee().GetLeaveBalance(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result for 204, got %+v", res)
	}
}

func TestFileEndpointSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="LeaveBalance-7.pdf"`)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.3 fake"))
	}))
	defer ts.Close()

	c := New(ts.URL)
	res, err := c.Employee().GetLeaveBalance(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != http.StatusOK {
		t.Fatalf("Status = %d, want 200", res.Status)
	}
	if res.FileName != "LeaveBalance-7.pdf" {
		t.Fatalf("FileName = %q", res.FileName)
	}
	if string(res.Data) != "%PDF-1.3 fake" {
		t.Fatalf("Data = %q", res.Data)
	}
	if res.Headers.Get("Content-Type") != "application/pdf" {
		t.Fatalf("Headers not captured: %v", res.Headers)
	}
}

func TestFileEndpointServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Trace", "abc123")
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.Employee().GetLeaveBalance(context.Background(), 7)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "boom") {
		t.Fatalf("Body = %q, want captured response text", apiErr.Body)
	}
	if apiErr.Headers.Get("X-Trace") != "abc123" {
		t.Fatalf("Headers not captured: %v", apiErr.Headers)
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listens here
	_, err := c.Employee().GetLeaveBalance(context.Background(), 7)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failures must not be wrapped in *APIError: %v", err)
	}
}

func TestPathParamValidation(t *testing.T) {
	c := New("http://example.invalid")
	_, err := c.Employee().GetLeaveBalance(context.Background(), 0)

	var rpe *RequiredParamError
	if !errors.As(err, &rpe) {
		t.Fatalf("error = %v, want *RequiredParamError", err)
	}
	if rpe.Param != "employeeId" {
		t.Fatalf("Param = %q, want employeeId", rpe.Param)
	}
}

func TestMissingQueryParamShortCircuits(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.Employee().SubmitLeaveRequest(context.Background(), 7, 0, time.Now(), time.Now(), nil)

	var rpe *RequiredParamError
	if !errors.As(err, &rpe) {
		t.Fatalf("error = %v, want *RequiredParamError", err)
	}
	if rpe.Param != "leaveId" {
		t.Fatalf("Param = %q, want leaveId", rpe.Param)
	}
	if requests != 0 {
		t.Fatalf("no request should be issued, saw %d", requests)
	}
}

func TestBearerTokenHeader(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok-1"))
	if _, err := c.Employee().GetLeaveBalance(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bearer tok-1" {
		t.Fatalf("Authorization = %q", got)
	}

	c.SetToken("tok-2")
	if _, err := c.Employee().GetLeaveBalance(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bearer tok-2" {
		t.Fatalf("Authorization after SetToken = %q", got)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	c := New("http://example.invalid///")
	if c.BaseURL() != "http://example.invalid" {
		t.Fatalf("BaseURL = %q", c.BaseURL())
	}
}
