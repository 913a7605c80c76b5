// Package session holds the process-wide authentication state: the
// bearer token and the profile of the user it belongs to. One Store is
// created at application start and shared by the whole UI tree.
package session

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
	"github.com/taskmaster-app/taskmaster-tui/internal/config"
)

// TokenStore persists the bearer token across restarts.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// KeyringStore is the default TokenStore, backed by the system keyring
// with a data-dir file fallback.
type KeyringStore struct{}

func (KeyringStore) Save(token string) error { return config.SaveToken(token) }
func (KeyringStore) Load() (string, error)   { return config.GetToken() }
func (KeyringStore) Clear() error            { return config.ClearToken() }

// Store is the session store. It owns the API client's token: no other
// component sets or clears it.
type Store struct {
	client *api.Client
	tokens TokenStore
	log    *logrus.Entry

	token string
	user  *api.User
}

// New creates a session store around the given client and token store.
func New(client *api.Client, tokens TokenStore, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Store{
		client: client,
		tokens: tokens,
		log:    log.WithField("component", "session"),
	}
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	return s.token != ""
}

// User returns the profile of the current user, or nil while
// unauthenticated.
func (s *Store) User() *api.User {
	return s.user
}

// Login exchanges credentials for a token, persists it, and fetches the
// user profile. On failure the prior session is left untouched.
func (s *Store) Login(email, password string) error {
	token, err := s.client.Login(email, password)
	if err != nil {
		s.log.WithError(err).Warn("login rejected")
		return err
	}

	s.client.SetToken(token)
	user, err := s.client.GetProfile()
	if err != nil {
		// Token was issued but the profile fetch failed; back out so the
		// store still reflects the prior session.
		s.client.SetToken(s.token)
		s.log.WithError(err).Error("profile fetch after login failed")
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if err := s.tokens.Save(token); err != nil {
		// The session is still valid in memory; it just won't survive a
		// restart.
		s.log.WithError(err).Warn("failed to persist token")
	}

	s.token = token
	s.user = user
	s.log.WithField("email", user.Email).Info("logged in")
	return nil
}

// Register creates an account. It does not establish a session.
func (s *Store) Register(email, password string) error {
	if err := s.client.Register(email, password); err != nil {
		s.log.WithError(err).Warn("registration rejected")
		return err
	}
	s.log.WithField("email", email).Info("account registered")
	return nil
}

// Logout clears the token and profile from memory and from durable
// storage. It cannot fail and is idempotent; an in-flight request racing
// with it simply completes against the already-cleared session.
func (s *Store) Logout() {
	s.token = ""
	s.user = nil
	s.client.ClearToken()
	if err := s.tokens.Clear(); err != nil {
		s.log.WithError(err).Warn("failed to clear stored token")
	}
	s.log.Info("logged out")
}

// Restore attempts to resume a session from a previously persisted
// token. A token the server rejects is cleared exactly as Logout does.
// It returns whether an authenticated session resulted.
func (s *Store) Restore() bool {
	token, err := s.tokens.Load()
	if err != nil {
		s.log.WithError(err).Warn("failed to read stored token")
		return false
	}
	if token == "" {
		return false
	}

	s.client.SetToken(token)
	user, err := s.client.GetProfile()
	if err != nil {
		s.log.WithError(err).Info("stored token rejected")
		s.Logout()
		return false
	}

	s.token = token
	s.user = user
	s.log.WithField("email", user.Email).Info("session restored")
	return true
}
