package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

type LoginResult struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	AccountID int    `json:"account_id"`
}

// Login exchanges credentials for a bearer token and installs it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, &RequiredParamError{Param: "email"}
	}
	if password == "" {
		return nil, &RequiredParamError{Param: "password"}
	}
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Auth/Login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}
