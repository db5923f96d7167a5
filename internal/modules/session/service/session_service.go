package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"sabalabor/internal/modules/session/domain"
	sessionout "sabalabor/internal/modules/session/port/out"
	apperrors "sabalabor/internal/platform/errors"
)

// SessionService is the only owner of the in-memory session. Login, Register
// and Restore are not serialized against each other: the last one to finish
// wins, and a Login racing a Logout may leave the session established.
type SessionService struct {
	store  sessionout.CredentialStore
	auth   sessionout.AuthGateway
	bearer sessionout.BearerSink
	logger *slog.Logger

	mu       sync.Mutex
	session  domain.Session
	inflight int
	subs     map[int]func(domain.Snapshot)
	nextSub  int
}

func NewSessionService(store sessionout.CredentialStore, auth sessionout.AuthGateway, bearer sessionout.BearerSink, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  store,
		auth:   auth,
		bearer: bearer,
		logger: logger,
		subs:   map[int]func(domain.Snapshot){},
	}
}

func (s *SessionService) Current() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for every state or loading change. fn runs on the
// goroutine that caused the change and must not block.
func (s *SessionService) Subscribe(fn func(domain.Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Restore loads the stored session. Any missing half, decode failure or read
// failure leaves the current state untouched and is not reported. The token
// is trusted until a request proves otherwise. The returned snapshot is taken
// after loading has ended.
func (s *SessionService) Restore(ctx context.Context) domain.Snapshot {
	s.beginLoading()
	s.restore(ctx)
	s.endLoading()
	return s.Current()
}

func (s *SessionService) restore(ctx context.Context) {
	session, err := s.store.LoadSession(ctx)
	if err != nil {
		s.logger.Debug("no session restored", "error", err)
		return
	}
	if err := session.Validate(); err != nil {
		s.logger.Debug("stored session rejected", "error", err)
		return
	}
	s.establish(session)
	s.logger.Info("session restored", "user_id", session.User.ID, "user_type", session.User.UserType)
}

func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	s.beginLoading()
	defer s.endLoading()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("email and password are required: %w", apperrors.ErrInvalidInput)
	}
	session, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.logger.Info("login failed", "email", email, "error", err)
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if err := s.commit(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	s.logger.Info("logged in", "user_id", session.User.ID, "user_type", session.User.UserType)
	return session, nil
}

func (s *SessionService) Register(ctx context.Context, registration domain.Registration) (domain.Session, error) {
	s.beginLoading()
	defer s.endLoading()

	session, err := s.auth.Register(ctx, registration)
	if err != nil {
		s.logger.Info("registration failed", "email", registration.Email, "error", err)
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}
	if err := s.commit(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}
	s.logger.Info("registered", "user_id", session.User.ID, "user_type", session.User.UserType)
	return session, nil
}

// Logout always succeeds from the caller's side. Store failures are logged.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.store.ClearSession(ctx); err != nil {
		s.logger.Warn("clear stored session", "error", err)
	}
	s.clear()
	s.logger.Info("logged out")
}

// RemoteLogout tells the server to end the session before the local logout.
// The remote result never blocks the local transition.
func (s *SessionService) RemoteLogout(ctx context.Context) {
	if s.Current().State == domain.Authenticated {
		if err := s.auth.Logout(ctx); err != nil {
			s.logger.Warn("remote logout", "error", err)
		}
	}
	s.Logout(ctx)
}

// HandleUnauthorized forces the Unauthenticated state after the server
// refused the bearer token rejected. A 401 for a token that is no longer
// current is ignored so it cannot end a newer session.
func (s *SessionService) HandleUnauthorized(rejected string) {
	s.mu.Lock()
	current := s.session.Token
	s.mu.Unlock()
	if current == "" || (rejected != "" && rejected != current) {
		return
	}
	s.logger.Warn("session rejected by server, logging out")
	s.Logout(context.Background())
}

func (s *SessionService) Verify(ctx context.Context) (domain.User, error) {
	if s.Current().State != domain.Authenticated {
		return domain.User{}, apperrors.ErrNoSession
	}
	user, err := s.auth.Verify(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("verify: %w", err)
	}
	return user, nil
}

// commit persists session and then publishes it. Nothing changes in memory
// when the response is malformed or the store write fails.
func (s *SessionService) commit(ctx context.Context, session domain.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("malformed auth response: %w", err)
	}
	if err := s.store.CommitSession(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.establish(session)
	return nil
}

func (s *SessionService) establish(session domain.Session) {
	s.mu.Lock()
	s.session = session
	s.bearer.SetBearer(session.Token)
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *SessionService) clear() {
	s.mu.Lock()
	s.session = domain.Session{}
	s.bearer.ClearBearer()
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *SessionService) beginLoading() {
	s.mu.Lock()
	s.inflight++
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *SessionService) endLoading() {
	s.mu.Lock()
	if s.inflight > 0 {
		s.inflight--
	}
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *SessionService) snapshotLocked() domain.Snapshot {
	state := domain.Unauthenticated
	if s.session.Present() {
		state = domain.Authenticated
	}
	return domain.Snapshot{State: state, Session: s.session, Loading: s.inflight > 0}
}

func (s *SessionService) subscribersLocked() []func(domain.Snapshot) {
	out := make([]func(domain.Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(domain.Snapshot), snap domain.Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
