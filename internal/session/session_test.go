package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
)

// memStore is an in-memory TokenStore for tests.
type memStore struct {
	token   string
	loadErr error
}

func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Load() (string, error)   { return m.token, m.loadErr }
func (m *memStore) Clear() error            { m.token = ""; return nil }

// newFakeServer runs a minimal auth backend: one known user, tokens
// issued by login are the only ones /auth/me accepts.
func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	validTokens := map[string]bool{"restored-token": true}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds api.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Email != "user@example.com" || creds.Password != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Invalid credentials"}`))
			return
		}
		validTokens["fresh-token"] = true
		json.NewEncoder(w).Encode(api.LoginResponse{Token: "fresh-token"})
	})
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var creds api.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Email == "taken@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "Email already registered"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if len(auth) < 8 || !validTokens[auth[7:]] {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Unauthorized"}`))
			return
		}
		json.NewEncoder(w).Encode(api.User{ID: "u1", Email: "user@example.com"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestStore(t *testing.T) (*Store, *api.Client, *memStore) {
	t.Helper()
	server := newFakeServer(t)
	client := api.NewClient(server.URL)
	tokens := &memStore{}
	return New(client, tokens, nil), client, tokens
}

func TestLoginSuccess(t *testing.T) {
	store, client, tokens := newTestStore(t)

	require.NoError(t, store.Login("user@example.com", "secret123"))

	assert.True(t, store.Authenticated())
	require.NotNil(t, store.User())
	assert.Equal(t, "user@example.com", store.User().Email)
	assert.True(t, client.HasToken(), "client should carry the token")
	assert.Equal(t, "fresh-token", tokens.token, "token should be persisted")
}

func TestLoginRejected(t *testing.T) {
	store, client, tokens := newTestStore(t)

	err := store.Login("user@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsAuthError(err))

	assert.False(t, store.Authenticated())
	assert.Nil(t, store.User())
	assert.False(t, client.HasToken())
	assert.Empty(t, tokens.token)
}

func TestRegister(t *testing.T) {
	store, _, _ := newTestStore(t)

	require.NoError(t, store.Register("new@example.com", "secret123"))
	assert.False(t, store.Authenticated(), "register must not establish a session")

	err := store.Register("taken@example.com", "secret123")
	require.Error(t, err)
	assert.Equal(t, "Email already registered", api.UserMessage(err, ""))
}

func TestLogout(t *testing.T) {
	store, client, tokens := newTestStore(t)
	require.NoError(t, store.Login("user@example.com", "secret123"))

	store.Logout()

	assert.False(t, store.Authenticated())
	assert.Nil(t, store.User())
	assert.False(t, client.HasToken())
	assert.Empty(t, tokens.token)

	// Idempotent.
	store.Logout()
	assert.False(t, store.Authenticated())
}

func TestRestoreNoToken(t *testing.T) {
	store, client, _ := newTestStore(t)

	assert.False(t, store.Restore())
	assert.False(t, store.Authenticated())
	assert.False(t, client.HasToken())
}

func TestRestoreLoadError(t *testing.T) {
	server := newFakeServer(t)
	client := api.NewClient(server.URL)
	tokens := &memStore{loadErr: errors.New("keyring locked")}
	store := New(client, tokens, nil)

	assert.False(t, store.Restore())
	assert.False(t, store.Authenticated())
}

func TestRestoreValidToken(t *testing.T) {
	store, client, tokens := newTestStore(t)
	tokens.token = "restored-token"

	assert.True(t, store.Restore())
	assert.True(t, store.Authenticated())
	require.NotNil(t, store.User())
	assert.Equal(t, "user@example.com", store.User().Email)
	assert.True(t, client.HasToken())
}

func TestRestoreRejectedTokenIsCleared(t *testing.T) {
	store, client, tokens := newTestStore(t)
	tokens.token = "stale-token"

	assert.False(t, store.Restore())
	assert.False(t, store.Authenticated())
	assert.False(t, client.HasToken(), "rejected token must not stay on the client")
	assert.Empty(t, tokens.token, "rejected token must be cleared from storage")
}
