package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	sessionout "sabalabor/internal/modules/session/adapter/out"
	"sabalabor/internal/modules/session/domain"
	"sabalabor/internal/modules/session/service"
	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/kv"
	"sabalabor/internal/platform/logging"
)

type fakeAuth struct {
	session domain.Session
	err     error
	logouts int
	calls   int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (domain.Session, error) {
	f.calls++
	if f.err != nil {
		return domain.Session{}, f.err
	}
	return f.session, nil
}

func (f *fakeAuth) Register(_ context.Context, _ domain.Registration) (domain.Session, error) {
	f.calls++
	if f.err != nil {
		return domain.Session{}, f.err
	}
	return f.session, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return errors.New("server gone")
}

func (f *fakeAuth) Verify(context.Context) (domain.User, error) {
	return f.session.User, nil
}

type fakeBearer struct {
	mu    sync.Mutex
	token string
}

func (f *fakeBearer) SetBearer(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

func (f *fakeBearer) ClearBearer() { f.SetBearer("") }

func (f *fakeBearer) get() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

// failingKV fails writes of one key.
type failingKV struct {
	*kv.MemoryStore
	failSet    string
	failRemove bool
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if key == f.failSet {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *failingKV) Remove(ctx context.Context, key string) error {
	if f.failRemove {
		return errors.New("read-only")
	}
	return f.MemoryStore.Remove(ctx, key)
}

var clientA = domain.Session{
	Token: "tok-1",
	User:  domain.User{ID: 1, Name: "A", Email: "a@b.com", UserType: domain.UserTypeClient},
}

func newService(store kv.Store, auth *fakeAuth, bearer *fakeBearer) *service.SessionService {
	return service.NewSessionService(sessionout.NewKVCredentialStore(store), auth, bearer, logging.Discard())
}

func assertConsistent(t *testing.T, snap domain.Snapshot) {
	t.Helper()
	hasToken := snap.Session.Token != ""
	hasUser := snap.Session.User != (domain.User{})
	if hasToken != hasUser {
		t.Fatalf("partial session observed: %+v", snap.Session)
	}
	if (snap.State == domain.Authenticated) != hasToken {
		t.Fatalf("state %s disagrees with session %+v", snap.State, snap.Session)
	}
}

func TestLoginThenRestoreAfterRestart(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	bearer := &fakeBearer{}
	svc := newService(store, &fakeAuth{session: clientA}, bearer)

	got, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Token != "tok-1" || bearer.get() != "tok-1" {
		t.Fatalf("expected token tok-1 in session and bearer, got %q / %q", got.Token, bearer.get())
	}
	assertConsistent(t, svc.Current())

	restartedBearer := &fakeBearer{}
	restarted := newService(store, &fakeAuth{}, restartedBearer)
	snap := restarted.Restore(context.Background())
	if snap.State != domain.Authenticated {
		t.Fatalf("expected restored session, got %s", snap.State)
	}
	if snap.Session != clientA {
		t.Fatalf("restored session differs: %+v", snap.Session)
	}
	if restartedBearer.get() != "tok-1" {
		t.Fatalf("restore should attach the bearer credential")
	}
	if snap.Loading {
		t.Fatalf("loading must be cleared after restore")
	}
}

func TestLogoutThenRestoreIsAbsent(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	bearer := &fakeBearer{}
	svc := newService(store, &fakeAuth{session: clientA}, bearer)
	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout(context.Background())
	if svc.Current().State != domain.Unauthenticated || bearer.get() != "" {
		t.Fatalf("logout should clear memory and bearer")
	}
	assertConsistent(t, svc.Current())

	snap := newService(store, &fakeAuth{}, &fakeBearer{}).Restore(context.Background())
	if snap.State != domain.Unauthenticated {
		t.Fatalf("restore after logout should be absent")
	}

	// Logging out while already logged out is harmless.
	svc.Logout(context.Background())
}

func TestRestoreWithOnlyTokenStaysAbsent(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	_ = store.Set(context.Background(), domain.TokenKey, "tok-2")
	bearer := &fakeBearer{}
	snap := newService(store, &fakeAuth{}, bearer).Restore(context.Background())
	if snap.State != domain.Unauthenticated || snap.Session.Present() {
		t.Fatalf("token without user must not restore, got %+v", snap)
	}
	if bearer.get() != "" {
		t.Fatalf("bearer must not be set for a half session")
	}
	if snap.Loading {
		t.Fatalf("loading must be cleared when nothing was restored")
	}
}

func TestRestoreWithCorruptUserStaysAbsent(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	_ = store.Set(context.Background(), domain.TokenKey, "tok-3")
	_ = store.Set(context.Background(), domain.UserKey, "{broken")
	snap := newService(store, &fakeAuth{}, &fakeBearer{}).Restore(context.Background())
	if snap.State != domain.Unauthenticated {
		t.Fatalf("corrupt user must not restore")
	}

	_ = store.Set(context.Background(), domain.UserKey, `{"id":0,"name":""}`)
	snap = newService(store, &fakeAuth{}, &fakeBearer{}).Restore(context.Background())
	if snap.State != domain.Unauthenticated {
		t.Fatalf("invalid user must not restore")
	}
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	auth := &fakeAuth{session: clientA}
	bearer := &fakeBearer{}
	svc := newService(store, auth, bearer)
	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	auth.err = apperrors.ErrInvalidCredentials
	_, err := svc.Login(context.Background(), "other@b.com", "wrong00")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected credential error to propagate, got %v", err)
	}
	if svc.Current().Session != clientA || bearer.get() != "tok-1" {
		t.Fatalf("failed login must keep the previous session")
	}
}

func TestLoginRejectsEmptyCredentialsWithoutCallingServer(t *testing.T) {
	t.Parallel()
	auth := &fakeAuth{session: clientA}
	svc := newService(kv.NewMemoryStore(), auth, &fakeBearer{})
	if _, err := svc.Login(context.Background(), " ", "x"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if auth.calls != 0 {
		t.Fatalf("server must not be called for empty credentials")
	}
}

func TestMalformedAuthResponseIsRejected(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	svc := newService(store, &fakeAuth{session: domain.Session{Token: "tok-x"}}, &fakeBearer{})
	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err == nil {
		t.Fatalf("token without user should be rejected")
	}
	assertConsistent(t, svc.Current())
	if _, err := store.Get(context.Background(), domain.TokenKey); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("nothing should be stored for a malformed response")
	}
}

func TestCommitFailureRollsBackToken(t *testing.T) {
	t.Parallel()
	store := &failingKV{MemoryStore: kv.NewMemoryStore(), failSet: domain.UserKey}
	svc := newService(store, &fakeAuth{session: clientA}, &fakeBearer{})
	if _, err := svc.Register(context.Background(), domain.Registration{Email: "a@b.com"}); err == nil {
		t.Fatalf("expected persist failure")
	}
	if svc.Current().State != domain.Unauthenticated {
		t.Fatalf("failed commit must not authenticate")
	}
	if _, err := store.Get(context.Background(), domain.TokenKey); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("token should be rolled back when the user write fails")
	}
}

func TestLogoutSucceedsWhenStoreRemovalFails(t *testing.T) {
	t.Parallel()
	store := &failingKV{MemoryStore: kv.NewMemoryStore()}
	bearer := &fakeBearer{}
	svc := newService(store, &fakeAuth{session: clientA}, bearer)
	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	store.failRemove = true
	svc.Logout(context.Background())
	if svc.Current().State != domain.Unauthenticated || bearer.get() != "" {
		t.Fatalf("logout must clear memory even when the store fails")
	}
}

func TestHandleUnauthorizedClearsSessionAndStore(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	svc := newService(store, &fakeAuth{session: clientA}, &fakeBearer{})
	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.HandleUnauthorized("stale-token")
	if svc.Current().State != domain.Authenticated {
		t.Fatalf("a 401 for an old credential must not end the current session")
	}

	svc.HandleUnauthorized("tok-1")
	if svc.Current().State != domain.Unauthenticated {
		t.Fatalf("expected forced logout")
	}
	if _, err := store.Get(context.Background(), domain.TokenKey); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("stored token should be removed after 401")
	}
	snap := newService(store, &fakeAuth{}, &fakeBearer{}).Restore(context.Background())
	if snap.State != domain.Unauthenticated {
		t.Fatalf("restore after 401 should be absent")
	}
	svc.HandleUnauthorized("tok-1")
}

func TestRemoteLogoutIgnoresServerFailure(t *testing.T) {
	t.Parallel()
	auth := &fakeAuth{session: clientA}
	svc := newService(kv.NewMemoryStore(), auth, &fakeBearer{})
	svc.RemoteLogout(context.Background())
	if auth.logouts != 0 {
		t.Fatalf("remote logout should not be sent without a session")
	}
	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.RemoteLogout(context.Background())
	if auth.logouts != 1 || svc.Current().State != domain.Unauthenticated {
		t.Fatalf("expected one remote logout and a local logout, got %d", auth.logouts)
	}
}

func TestSubscribersSeeLoadingAndTransitions(t *testing.T) {
	t.Parallel()
	svc := newService(kv.NewMemoryStore(), &fakeAuth{session: clientA}, &fakeBearer{})
	var snaps []domain.Snapshot
	unsubscribe := svc.Subscribe(func(snap domain.Snapshot) {
		snaps = append(snaps, snap)
	})

	if _, err := svc.Login(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("expected loading, established, idle snapshots, got %d", len(snaps))
	}
	if !snaps[0].Loading || snaps[0].State != domain.Unauthenticated {
		t.Fatalf("first snapshot should be loading and unauthenticated: %+v", snaps[0])
	}
	if snaps[2].Loading || snaps[2].State != domain.Authenticated {
		t.Fatalf("last snapshot should be idle and authenticated: %+v", snaps[2])
	}
	for _, snap := range snaps {
		assertConsistent(t, snap)
	}

	unsubscribe()
	svc.Logout(context.Background())
	if len(snaps) != 3 {
		t.Fatalf("unsubscribed listener should not be called")
	}
}

func TestVerifyRequiresSession(t *testing.T) {
	t.Parallel()
	svc := newService(kv.NewMemoryStore(), &fakeAuth{session: clientA}, &fakeBearer{})
	if _, err := svc.Verify(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session error, got %v", err)
	}
}
