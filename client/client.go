// Package client is a typed SDK for the HR/Payroll backend. Operations are
// grouped by business role (Employee, HR, Manager, Payroll, Admin); every
// method issues exactly one HTTP request and routes the response by status
// code. The SDK keeps no state beyond the base address, transport, and
// bearer token it was built with, and applies no retry or timeout policy of
// its own: cancellation and deadlines come from the caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL matches the backend's development listener.
const DefaultBaseURL = "https://localhost:7140"

type Client struct {
	baseURL  string
	http     *http.Client
	token    string
	validate *validator.Validate
}

type Option func(*Client)

// WithHTTPClient replaces the transport. The client never mutates it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     http.DefaultClient,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, for flows that authenticate after
// construction.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Employee() *EmployeeClient { return &EmployeeClient{c: c} }
func (c *Client) HR() *HRClient             { return &HRClient{c: c} }
func (c *Client) Manager() *ManagerClient   { return &ManagerClient{c: c} }
func (c *Client) Payroll() *PayrollClient   { return &PayrollClient{c: c} }
func (c *Client) Admin() *AdminClient       { return &AdminClient{c: c} }

// FileResult is the uniform success shape of file-wrapped endpoints: the
// raw payload, the status it arrived with, the filename inferred from
// Content-Disposition, and the response headers.
type FileResult struct {
	Data     []byte
	Status   int
	FileName string
	Headers  http.Header
}

func (c *Client) newRequest(ctx context.Context, ep Endpoint, pathSeg, rawQuery, accept string, body io.Reader) (*http.Request, error) {
	u := c.baseURL + ep.Path
	if pathSeg != "" {
		u += "/" + url.PathEscape(pathSeg)
	}
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, ep.Method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// callFile runs a query-parameter endpoint with a file-wrapped response.
func (c *Client) callFile(ctx context.Context, name string, q *query) (*FileResult, error) {
	if err := q.err(); err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, mustEndpoint(name), "", q.encode(), "application/octet-stream", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure with no response: propagate unchanged.
		return nil, err
	}
	defer resp.Body.Close()
	return fileResult(resp)
}

// callFileByID runs a path-parameter endpoint keyed by a single required id.
func (c *Client) callFileByID(ctx context.Context, name, param string, id int) (*FileResult, error) {
	if id <= 0 {
		return nil, &RequiredParamError{Param: param}
	}
	req, err := c.newRequest(ctx, mustEndpoint(name), strconv.Itoa(id), "", "application/octet-stream", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return fileResult(resp)
}

// callJSON runs a JSON-array endpoint and decodes the 200 body into out.
func (c *Client) callJSON(ctx context.Context, name string, q *query, out any) error {
	if err := q.err(); err != nil {
		return err
	}
	req, err := c.newRequest(ctx, mustEndpoint(name), "", q.encode(), "application/json", nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *Client) callJSONByID(ctx context.Context, name, param string, id int, out any) error {
	if id <= 0 {
		return &RequiredParamError{Param: param}
	}
	req, err := c.newRequest(ctx, mustEndpoint(name), strconv.Itoa(id), "", "application/json", nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNoContent:
		return nil
	default:
		return apiError(resp)
	}
}

// callBody runs one of the JSON-body endpoints. The payload is validated
// before serialization so a malformed record fails locally.
func (c *Client) callBody(ctx context.Context, name string, payload any) (*FileResult, error) {
	if payload == nil {
		return nil, &RequiredParamError{Param: "body"}
	}
	if err := c.validate.Struct(payload); err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, mustEndpoint(name), "", "", "application/octet-stream", bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return fileResult(resp)
}

func fileResult(resp *http.Response) (*FileResult, error) {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusPartialContent:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &FileResult{
			Data:     data,
			Status:   resp.StatusCode,
			FileName: fileNameFromDisposition(resp.Header.Get("Content-Disposition")),
			Headers:  resp.Header.Clone(),
		}, nil
	case http.StatusNoContent:
		return nil, nil
	default:
		return nil, apiError(resp)
	}
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		Message:    unexpectedStatusMessage,
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Headers:    resp.Header.Clone(),
	}
}
