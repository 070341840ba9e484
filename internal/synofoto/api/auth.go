package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
)

// Login authenticates against DSM and returns the session id. An [AuthError]
// carrying the raw response body is returned if the server does not report
// success or the response lacks a session id.
func (c Client) Login(ctx context.Context, account, password string) (string, error) {
	params := url.Values{}
	params.Set("api", "SYNO.API.Auth")
	params.Set("version", "3")
	params.Set("method", "login")
	params.Set("account", account)
	params.Set("passwd", password)

	resp, err := c.get(ctx, "auth.cgi", params)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if !env.Success {
		return "", &AuthError{Response: string(body)}
	}
	var data struct {
		Sid string `json:"sid"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("decode login data: %w", err)
	}
	if data.Sid == "" {
		return "", &AuthError{Response: string(body)}
	}
	return data.Sid, nil
}
