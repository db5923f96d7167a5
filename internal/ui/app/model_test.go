package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	accountdto "sabalabor/internal/modules/account/dto"
	jobsdto "sabalabor/internal/modules/jobs/dto"
	navigationdomain "sabalabor/internal/modules/navigation/domain"
	notificationsdto "sabalabor/internal/modules/notifications/dto"
	sessiondto "sabalabor/internal/modules/session/dto"
	"sabalabor/internal/platform/form"
	"sabalabor/internal/ui/views/login"
	"sabalabor/internal/ui/views/welcome"
)

type fakeSession struct {
	current   sessiondto.SessionOutput
	loggedOut bool
}

func (f *fakeSession) Login(context.Context, string, string) (sessiondto.SessionOutput, error) {
	return f.current, nil
}

func (f *fakeSession) Register(context.Context, sessiondto.RegisterInput, string) (sessiondto.SessionOutput, error) {
	return f.current, nil
}

func (f *fakeSession) Restore(context.Context) sessiondto.SessionOutput { return f.current }
func (f *fakeSession) Current(context.Context) sessiondto.SessionOutput { return f.current }
func (f *fakeSession) Logout(context.Context, bool)                     { f.loggedOut = true }

type fakeTree struct{ tree navigationdomain.Tree }

func (f *fakeTree) Tree() navigationdomain.Tree { return f.tree }

type fakeJobs struct{}

func (fakeJobs) ListAvailable(context.Context) ([]jobsdto.JobOutput, error) { return nil, nil }
func (fakeJobs) List(context.Context, string, string, string) ([]jobsdto.JobOutput, error) {
	return nil, nil
}
func (fakeJobs) Get(_ context.Context, id int64) (jobsdto.JobOutput, error) {
	return jobsdto.JobOutput{ID: id}, nil
}
func (fakeJobs) Apply(_ context.Context, id int64) (jobsdto.JobOutput, error) {
	return jobsdto.JobOutput{ID: id}, nil
}
func (fakeJobs) AcceptWorker(_ context.Context, id, _ int64) (jobsdto.JobOutput, error) {
	return jobsdto.JobOutput{ID: id}, nil
}
func (fakeJobs) Complete(_ context.Context, id int64) (jobsdto.JobOutput, error) {
	return jobsdto.JobOutput{ID: id}, nil
}
func (fakeJobs) Delete(context.Context, int64) error { return nil }
func (fakeJobs) Create(context.Context, form.Values) (jobsdto.JobOutput, error) {
	return jobsdto.JobOutput{ID: 1}, nil
}

type fakeAccount struct{}

func (fakeAccount) GetProfile(context.Context) (accountdto.ProfileOutput, error) {
	return accountdto.ProfileOutput{}, nil
}

type fakeNotes struct{}

func (fakeNotes) List(context.Context) (notificationsdto.ListOutput, error) {
	return notificationsdto.ListOutput{}, nil
}

func newTestModel(session *fakeSession, tree *fakeTree) Model {
	return NewModel(session, tree, fakeJobs{}, fakeAccount{}, fakeNotes{})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out
}

func TestRestoreWithoutSessionShowsWelcome(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeSession{}, &fakeTree{tree: navigationdomain.AuthTree})
	if !m.restoring {
		t.Fatalf("model should start in restoring state")
	}
	m = step(t, m, restoredMsg{})
	if m.restoring || m.current != navigationdomain.AuthTree || m.screen != navigationdomain.ScreenWelcome {
		t.Fatalf("expected auth tree welcome, got tree=%s screen=%s", m.current, m.screen)
	}
}

func TestRestoreWithSessionShowsWorkerHome(t *testing.T) {
	t.Parallel()
	session := &fakeSession{current: sessiondto.SessionOutput{
		Authenticated: true,
		Token:         "tok",
		User:          sessiondto.UserOutput{ID: 2, Name: "Ada", UserType: "worker"},
	}}
	m := newTestModel(session, &fakeTree{tree: navigationdomain.MainTree})
	m = step(t, m, restoredMsg{session: session.current})
	if m.current != navigationdomain.MainTree || m.screen != navigationdomain.ScreenHome {
		t.Fatalf("expected main tree home, got tree=%s screen=%s", m.current, m.screen)
	}
	if m.homeView.Variant() != navigationdomain.HomeAvailableJobs {
		t.Fatalf("worker should see available jobs, got %s", m.homeView.Variant())
	}
}

func TestTreeChangeReplacesWholeStack(t *testing.T) {
	t.Parallel()
	session := &fakeSession{current: sessiondto.SessionOutput{
		Authenticated: true,
		User:          sessiondto.UserOutput{ID: 1, Name: "Bo", UserType: "client"},
	}}
	tree := &fakeTree{tree: navigationdomain.MainTree}
	m := newTestModel(session, tree)
	m = step(t, m, restoredMsg{})
	m = step(t, m, TreeChangedMsg{Tree: navigationdomain.MainTree})
	if m.screen != navigationdomain.ScreenHome {
		t.Fatalf("same tree must not reset, got %s", m.screen)
	}
	_ = m.push(navigationdomain.ScreenCreateJob)
	if m.screen != navigationdomain.ScreenCreateJob || len(m.stack) != 1 {
		t.Fatalf("expected create job pushed, got %s stack=%v", m.screen, m.stack)
	}

	session.current = sessiondto.SessionOutput{}
	tree.tree = navigationdomain.AuthTree
	m = step(t, m, TreeChangedMsg{Tree: navigationdomain.AuthTree})
	if m.current != navigationdomain.AuthTree || m.screen != navigationdomain.ScreenWelcome || len(m.stack) != 0 {
		t.Fatalf("expected fresh auth tree, got tree=%s screen=%s stack=%v", m.current, m.screen, m.stack)
	}
	if m.user.ID != 0 {
		t.Fatalf("user should be cleared, got %+v", m.user)
	}
}

func TestScreensOutsideTreeAreRefused(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeSession{}, &fakeTree{tree: navigationdomain.AuthTree})
	m = step(t, m, restoredMsg{})
	_ = m.push(navigationdomain.ScreenHome)
	if m.screen != navigationdomain.ScreenWelcome {
		t.Fatalf("auth tree must not reach home, got %s", m.screen)
	}
	m.switchTab(navigationdomain.ScreenProfile)
	if m.screen != navigationdomain.ScreenWelcome {
		t.Fatalf("auth tree must not reach profile, got %s", m.screen)
	}
}

func TestWelcomeToLoginAndBack(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeSession{}, &fakeTree{tree: navigationdomain.AuthTree})
	m = step(t, m, restoredMsg{})
	m = step(t, m, welcome.ChosenMsg{Choice: welcome.ChooseLogin})
	if m.screen != navigationdomain.ScreenLogin {
		t.Fatalf("expected login screen, got %s", m.screen)
	}
	if !m.capturesText() {
		t.Fatalf("login screen should capture typing")
	}
	m = step(t, m, login.BackMsg{})
	if m.screen != navigationdomain.ScreenWelcome {
		t.Fatalf("expected welcome after back, got %s", m.screen)
	}
}

func TestTreeChangeDuringRestoreIsDeferred(t *testing.T) {
	t.Parallel()
	tree := &fakeTree{tree: navigationdomain.AuthTree}
	m := newTestModel(&fakeSession{}, tree)
	m = step(t, m, TreeChangedMsg{Tree: navigationdomain.MainTree})
	if !m.restoring || m.current != navigationdomain.AuthTree {
		t.Fatalf("tree change must wait for restore to finish")
	}
}

func TestPaletteLogoutCallsSession(t *testing.T) {
	t.Parallel()
	session := &fakeSession{current: sessiondto.SessionOutput{
		Authenticated: true,
		User:          sessiondto.UserOutput{ID: 1, Name: "Bo", UserType: "client"},
	}}
	m := newTestModel(session, &fakeTree{tree: navigationdomain.MainTree})
	m = step(t, m, restoredMsg{})
	_, cmd := m.executePalette("logout", nil)
	if cmd == nil {
		t.Fatalf("logout should return a command")
	}
	if _, ok := cmd().(loggedOutMsg); !ok {
		t.Fatalf("expected loggedOutMsg")
	}
	if !session.loggedOut {
		t.Fatalf("session logout was not called")
	}
}
