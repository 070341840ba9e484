package synofoto

import (
	"context"
	"log/slog"
	"sync"

	"syno-photo-gallery/internal/synofoto/api"
)

// Session owns the authentication token for one remote server. It starts
// unauthenticated and logs in on first use; the token is held in memory for
// the process lifetime and never persisted. There is no expiry tracking and
// no proactive refresh: a stale token is only discovered when a downstream
// call fails, and retrying is left to the caller.
//
// Sharing a Session between clients is an explicit choice of the composing
// code; see [WithSession]. The mutex serializes concurrent first uses so
// only one login is issued.
type Session struct {
	conf   api.Config
	remote api.Client

	mu  sync.Mutex
	sid string
}

// NewSession initializes an unauthenticated Session for the configured
// server.
func NewSession(conf api.Config) *Session {
	return &Session{
		conf:   conf,
		remote: api.NewClient(conf),
	}
}

// Ensure returns the session token, logging in first if none is held. A
// [ConfigurationError] is returned before any network call when the host,
// account, or password is unset.
func (s *Session) Ensure(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sid != "" {
		return s.sid, nil
	}
	sid, err := s.login(ctx)
	if err != nil {
		return "", err
	}
	s.sid = sid
	return sid, nil
}

// Token returns the current session token without logging in. It is empty
// until the first successful [Session.Ensure].
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sid
}

func (s *Session) login(ctx context.Context) (string, error) {
	var missing []string
	if s.conf.Host == "" {
		missing = append(missing, "host")
	}
	if s.conf.Account == "" {
		missing = append(missing, "account")
	}
	if s.conf.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return "", &ConfigurationError{Missing: missing}
	}
	sid, err := s.remote.Login(ctx, s.conf.Account, s.conf.Password)
	if err != nil {
		return "", err
	}
	slog.Info("logged in to photo server", "host", s.conf.Host, "account", s.conf.Account)
	return sid, nil
}
