package client

import (
	"fmt"
	"net/http"
)

// RequiredParamError is raised locally, before any network I/O, when a
// required parameter carries no value.
type RequiredParamError struct {
	Param string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("required parameter %q was not provided", e.Param)
}

// APIError is any response outside the endpoint's success codes. Body holds
// the raw response text exactly as received.
type APIError struct {
	Message    string
	StatusCode int
	Body       string
	Headers    http.Header
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Message, e.StatusCode)
}

const unexpectedStatusMessage = "unexpected server response"
