package synofoto

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"

	"syno-photo-gallery/internal/synofoto/api"
)

// testConfig builds an api.Config pointing at the test server.
func testConfig(t *testing.T, ts *httptest.Server) api.Config {
	t.Helper()
	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("failed to parse test server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("failed to parse test server port: %v", err)
	}
	return api.Config{
		Host:     u.Hostname(),
		Port:     port,
		Account:  "tester",
		Password: "hunter2",
	}
}

func TestSessionMissingSettings(t *testing.T) {
	var requests atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer ts.Close()

	conf := testConfig(t, ts)
	conf.Password = ""
	session := NewSession(conf)

	_, err := session.Ensure(context.Background())
	if err == nil {
		t.Fatal("expected a ConfigurationError")
	}
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a ConfigurationError, got %T", err)
	}
	if n := requests.Load(); n != 0 {
		t.Fatalf("missing settings must be detected before any network call, saw %d requests", n)
	}
}

func TestSessionEnsureCachesToken(t *testing.T) {
	var logins atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webapi/auth.cgi" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		logins.Add(1)
		fmt.Fprint(w, `{"success": true, "data": {"sid": "token-1"}}`)
	}))
	defer ts.Close()

	session := NewSession(testConfig(t, ts))
	for i := 0; i < 3; i++ {
		sid, err := session.Ensure(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sid != "token-1" {
			t.Fatalf(`expected sid "token-1", got %q`, sid)
		}
	}
	if n := logins.Load(); n != 1 {
		t.Fatalf("expected exactly one login, saw %d", n)
	}
	if got := session.Token(); got != "token-1" {
		t.Fatalf(`expected cached token "token-1", got %q`, got)
	}
}

func TestSessionLoginRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": false, "error": {"code": 400}}`)
	}))
	defer ts.Close()

	session := NewSession(testConfig(t, ts))
	_, err := session.Ensure(context.Background())
	if err == nil {
		t.Fatal("expected an AuthError")
	}
	var ae *api.AuthError
	if !errors.As(err, &ae) {
		t.Fatalf("expected an AuthError, got %T", err)
	}
	if got := session.Token(); got != "" {
		t.Fatalf("no token should be cached after a rejected login, got %q", got)
	}
}
