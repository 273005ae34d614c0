package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSessionIsAnonymous(t *testing.T) {
	s := New("")

	if s.IsAuthenticated() {
		t.Error("new session reports authenticated")
	}
	if s.Token() != "" {
		t.Errorf("new session token = %q, want empty", s.Token())
	}
	if s.Loading() || s.Err() != nil {
		t.Error("new session has loading/error state")
	}
}

func TestLoginTransitions(t *testing.T) {
	s := New("")

	s.Begin()
	if !s.Loading() {
		t.Error("Begin() did not mark the session loading")
	}

	s.Succeed("tok-123")
	if s.Loading() {
		t.Error("Succeed() left the session loading")
	}
	if !s.IsAuthenticated() || s.Token() != "tok-123" {
		t.Errorf("Succeed() token = %q, authenticated = %v", s.Token(), s.IsAuthenticated())
	}
}

func TestFailedLoginStaysAnonymous(t *testing.T) {
	s := New("")
	loginErr := errors.New("Credenciais inválidas")

	s.Begin()
	s.Fail(loginErr)

	if s.IsAuthenticated() {
		t.Error("Fail() left the session authenticated")
	}
	if s.Loading() {
		t.Error("Fail() left the session loading")
	}
	if !errors.Is(s.Err(), loginErr) {
		t.Errorf("Err() = %v, want the login error", s.Err())
	}

	// The next attempt clears the surfaced error.
	s.Begin()
	if s.Err() != nil {
		t.Error("Begin() did not clear the previous error")
	}
}

func TestLogout(t *testing.T) {
	s := New("")
	s.Succeed("tok-123")

	s.Logout()
	if s.IsAuthenticated() || s.Token() != "" {
		t.Error("Logout() did not drop the token")
	}
}

func TestTokenPersistsAcrossSessions(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")

	s := New(tokenFile)
	s.Succeed("tok-123")

	restored := New(tokenFile)
	if !restored.IsAuthenticated() || restored.Token() != "tok-123" {
		t.Errorf("restored token = %q, want %q", restored.Token(), "tok-123")
	}
}

func TestLogoutRemovesPersistedToken(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")

	s := New(tokenFile)
	s.Succeed("tok-123")
	s.Logout()

	if _, err := os.Stat(tokenFile); !os.IsNotExist(err) {
		t.Error("Logout() left the token file behind")
	}

	restored := New(tokenFile)
	if restored.IsAuthenticated() {
		t.Error("session restored after logout")
	}
}
