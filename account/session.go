package account

import (
	"context"
	"errors"
)

// Session is the per-client authentication state. The zero value is
// the Anonymous state.
type Session struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

func (s Session) Authenticated() bool {
	return s.Username != ""
}

// SessionStore persists Session values by opaque token. Get reports
// ok=false for unknown tokens; Delete of an unknown token is a no-op.
type SessionStore interface {
	Get(ctx context.Context, token string) (Session, bool, error)
	Put(ctx context.Context, token string, s Session) error
	Delete(ctx context.Context, token string) error
}

// SessionManager drives the session state machine. Each token belongs
// to exactly one client, so the manager never sees concurrent
// mutations of a single session.
type SessionManager struct {
	store SessionStore
}

func NewSessionManager(store SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

// Current returns the session for token. It never fails: an empty
// token, a missing entry or a store error all read as Anonymous.
func (m *SessionManager) Current(ctx context.Context, token string) Session {
	if token == "" {
		return Session{}
	}
	s, ok, err := m.store.Get(ctx, token)
	if err != nil || !ok {
		return Session{}
	}
	return s
}

// Establish moves the session to Authenticated. Username and admin
// flag are written as one value, so neither is ever observable without
// the other. Any prior state is overwritten.
func (m *SessionManager) Establish(ctx context.Context, token, username string, admin bool) error {
	if token == "" {
		return errors.New("no session token")
	}
	return m.store.Put(ctx, token, Session{Username: username, Admin: admin})
}

// Destroy returns the session to Anonymous. Destroying an already
// anonymous session is not an error.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}
