package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Client provides a raw HTTP client for the Synology Photos web API. Every
// operation is a GET against the "/webapi" prefix of the configured server;
// authentication is carried as a "_sid" query parameter supplied by the
// caller.
//
// Example:
//
// ```
// client := NewClient(conf)
// sid, err := client.Login(ctx, conf.Account, conf.Password)
// ```
type Client struct {
	*http.Client
	base *url.URL
}

// Config holds the connection settings for a Synology Photos server.
//
// It is organized to take advantage of TOML parsing, however this package
// does not handle parsing and has no expectation on how it will be
// initialized.
type Config struct {
	// Host is the NAS hostname or IP address.
	Host string `env:"SYNO_HOST"`
	// Port is the DSM web port, typically 5000 (http) or 5001 (https).
	Port int `env:"SYNO_PORT"`
	// UseHTTPS selects the URL scheme.
	UseHTTPS bool `env:"SYNO_USE_HTTPS"`
	// Account is the DSM account name used to log in.
	Account string `env:"SYNO_ACCOUNT"`
	// Password should ideally not be written to disk un-encrypted,
	// however, for ease of "deployment" I'm going to allow it.
	Password string `env:"SYNO_PASSWORD"`
}

// HydrateFromEnv overwrites any values in Config with their associated
// environment variable value. Environment variables take precedence.
func (c *Config) HydrateFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// BaseURL builds the "/webapi" root URL from the connection settings.
func (c Config) BaseURL() *url.URL {
	scheme := "http"
	if c.UseHTTPS {
		scheme = "https"
	}
	host := c.Host
	if c.Port != 0 {
		host = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	}
	return &url.URL{Scheme: scheme, Host: host, Path: "/webapi"}
}

// NewClient initializes a Client for the configured server. The client does
// not hold a session; see [Client.Login].
func NewClient(conf Config) Client {
	return Client{
		Client: &http.Client{},
		base:   conf.BaseURL(),
	}
}

// get issues a GET for the given endpoint (e.g. "entry.cgi") with the given
// query parameters.
func (c Client) get(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	u := *c.base
	u.Path = u.Path + "/" + endpoint
	u.RawQuery = params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatusCode(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// getEnvelope issues a GET and decodes the standard Synology response
// envelope. A failure envelope is returned as a [QueryError] carrying the
// server's error code.
func (c Client) getEnvelope(ctx context.Context, endpoint, apiName string, params url.Values) (json.RawMessage, error) {
	resp, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", apiName, err)
	}
	if !env.Success {
		return nil, &QueryError{API: apiName, Code: env.Error.Code}
	}
	return env.Data, nil
}

// envelope is the wrapper the Synology web API puts around every JSON
// response. Failures are reported with HTTP 200 and success=false.
type envelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code int `json:"code"`
	} `json:"error"`
	Data json.RawMessage `json:"data"`
}

// Ping performs a sanity check request against the API information endpoint
// to verify the Client is configured correctly and the server is responsive.
// It does not require a session.
func (c Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("api", "SYNO.API.Info")
	params.Set("version", "1")
	params.Set("method", "query")
	params.Set("query", "SYNO.API.Auth")
	_, err := c.getEnvelope(ctx, "query.cgi", "SYNO.API.Info", params)
	return err
}

// checkStatusCode is a helper function to check for a 200 OK status
// code and return a descriptive error if not.
func checkStatusCode(statusCode int) error {
	if statusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", statusCode)
	}
	return nil
}
