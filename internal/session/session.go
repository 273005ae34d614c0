// Package session holds client-side authentication state: the current
// token, the authenticated flag, and the in-flight/error status of the
// last login attempt. The token can be persisted to a file so sessions
// survive restarts.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Session is the explicit auth-state object injected into the API client.
// Transitions: Begin (logging in), Succeed, Fail, Logout.
type Session struct {
	mu        sync.Mutex
	token     string
	loading   bool
	lastError error
	tokenFile string
}

// New creates an anonymous session. If tokenFile is non-empty, a token
// previously saved there is loaded, restoring the authenticated state.
func New(tokenFile string) *Session {
	s := &Session{tokenFile: tokenFile}

	if tokenFile != "" {
		if data, err := os.ReadFile(tokenFile); err == nil {
			s.token = strings.TrimSpace(string(data))
		}
	}

	return s
}

// Begin marks a login attempt as in flight and clears any previous error.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastError = nil
}

// Succeed stores the issued token, persists it when configured, and marks
// the session authenticated.
func (s *Session) Succeed(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.loading = false
	s.lastError = nil

	if s.tokenFile != "" {
		if err := os.MkdirAll(filepath.Dir(s.tokenFile), 0o700); err == nil {
			os.WriteFile(s.tokenFile, []byte(token), 0o600)
		}
	}
}

// Fail records a failed login attempt; the session stays anonymous.
func (s *Session) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.loading = false
	s.lastError = err
}

// Logout drops the token and removes the persisted copy.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.loading = false
	s.lastError = nil

	if s.tokenFile != "" {
		os.Remove(s.tokenFile)
	}
}

// Token returns the current token, or "" when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether the session holds a token.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Loading reports whether a login attempt is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error from the last failed login attempt, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
