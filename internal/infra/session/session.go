// Package session holds the signed-in identity: account id, role and the
// bearer token the gateway attaches to remote calls. It is advisory state for
// deciding which actions to offer; the remote API is the final authority.
package session

import (
	"context"
	"errors"
	"sync"

	"thejulge/internal/domain/account"
	"thejulge/internal/infra/kv"
	"thejulge/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const (
	keyAccountID = "session:accountId"
	keyRole      = "session:accountRole"
	keyToken     = "session:accessToken"
)

// Identity is the snapshot of who is signed in, passed into usecases by the
// handler layer. A nil *Identity means anonymous.
type Identity struct {
	AccountID string
	Role      account.Role
}

type Session struct {
	mu    sync.RWMutex
	store kv.Store

	accountID string
	role      account.Role
	token     string
}

func New(store kv.Store) *Session {
	return &Session{store: store}
}

// Init rehydrates the in-memory session from the persistent store. When only
// a token survived, the account id is recovered from the token's claims; the
// token is issued and verified by the remote API, so the claims are read
// without signature verification here.
func (s *Session) Init(ctx context.Context) error {
	token, err := s.store.Get(ctx, keyToken)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil // signed out
		}
		return errs.Wrap(err, "failed to load session token")
	}

	accountID, err := s.store.Get(ctx, keyAccountID)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		return errs.Wrap(err, "failed to load session account id")
	}
	if accountID == "" {
		accountID = accountIDFromToken(token)
	}

	var role account.Role
	if raw, err := s.store.Get(ctx, keyRole); err == nil {
		if parsed, parseErr := account.NewRole(raw); parseErr == nil {
			role = parsed
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.accountID = accountID
	s.role = role
	return nil
}

// SignIn stores the identity in memory and in the persistent store.
func (s *Session) SignIn(ctx context.Context, accountID string, role account.Role, token string) error {
	if err := s.store.Set(ctx, keyToken, token); err != nil {
		return errs.Wrap(err, "failed to persist session token")
	}
	if err := s.store.Set(ctx, keyAccountID, accountID); err != nil {
		return errs.Wrap(err, "failed to persist session account id")
	}
	if err := s.store.Set(ctx, keyRole, role.String()); err != nil {
		return errs.Wrap(err, "failed to persist session role")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountID = accountID
	s.role = role
	s.token = token
	return nil
}

// Logout clears the in-memory identity and the persisted keys together, so a
// later Init cannot resurrect a half-cleared session.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, keyToken, keyAccountID, keyRole); err != nil {
		return errs.Wrap(err, "failed to clear persisted session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountID = ""
	s.role = ""
	s.token = ""
	return nil
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.accountID != ""
}

// Current returns the signed-in identity, or nil when anonymous.
func (s *Session) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.accountID == "" {
		return nil
	}
	return &Identity{AccountID: s.accountID, Role: s.role}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func accountIDFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if id, ok := claims["userId"].(string); ok {
		return id
	}
	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}
