package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sabalabor/internal/modules/session/domain"
	sessionout "sabalabor/internal/modules/session/port/out"
	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/kv"
)

// KVCredentialStore keeps the token raw and the user as JSON under two
// independent keys.
type KVCredentialStore struct {
	kv kv.Store
}

func NewKVCredentialStore(store kv.Store) sessionout.CredentialStore {
	return &KVCredentialStore{kv: store}
}

func (s *KVCredentialStore) LoadSession(ctx context.Context) (domain.Session, error) {
	token, err := s.kv.Get(ctx, domain.TokenKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return domain.Session{}, apperrors.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("read stored token: %w", err)
	}
	rawUser, err := s.kv.Get(ctx, domain.UserKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return domain.Session{}, apperrors.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("read stored user: %w", err)
	}
	if token == "" || rawUser == "" {
		return domain.Session{}, apperrors.ErrNoSession
	}
	user := domain.User{}
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return domain.Session{}, fmt.Errorf("decode stored user (%v): %w", err, apperrors.ErrNoSession)
	}
	return domain.Session{Token: token, User: user}, nil
}

// CommitSession writes the token and then the user. The pair is not atomic:
// a crash in between leaves only the token behind, which LoadSession reads as
// no session. When the user write fails the token is removed again.
func (s *KVCredentialStore) CommitSession(ctx context.Context, session domain.Session) error {
	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(ctx, domain.TokenKey, session.Token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.kv.Set(ctx, domain.UserKey, string(rawUser)); err != nil {
		_ = s.kv.Remove(ctx, domain.TokenKey)
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// ClearSession attempts both removals even when the first fails.
func (s *KVCredentialStore) ClearSession(ctx context.Context) error {
	var errs []error
	if err := s.kv.Remove(ctx, domain.TokenKey); err != nil {
		errs = append(errs, fmt.Errorf("remove token: %w", err))
	}
	if err := s.kv.Remove(ctx, domain.UserKey); err != nil {
		errs = append(errs, fmt.Errorf("remove user: %w", err))
	}
	return errors.Join(errs...)
}
