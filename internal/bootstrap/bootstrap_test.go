package bootstrap_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"sabalabor/internal/bootstrap"
	"sabalabor/internal/devserver"
	sessiondto "sabalabor/internal/modules/session/dto"
	"sabalabor/internal/platform/config"
	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/form"
	"sabalabor/internal/platform/logging"
)

func newDevServer(t *testing.T) (*devserver.Server, string) {
	t.Helper()
	srv := devserver.New(devserver.Options{Secret: []byte("bootstrap-secret")})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, ts.URL
}

func newApp(t *testing.T, url, dataDir string) *bootstrap.App {
	t.Helper()
	cfg := config.Default()
	cfg.APIBaseURL = url
	cfg.Timeout = 5 * time.Second
	cfg.Store = config.StoreFile
	cfg.DataDir = dataDir
	app, err := bootstrap.New(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func registerClient(t *testing.T, app *bootstrap.App) sessiondto.SessionOutput {
	t.Helper()
	out, err := app.SessionCLI.Register(context.Background(), sessiondto.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "08012345678",
		Password: "secret1",
		UserType: "client",
	}, "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return out
}

func TestSessionSurvivesRestartAndReachesAPI(t *testing.T) {
	t.Parallel()
	_, url := newDevServer(t)
	dataDir := t.TempDir()
	ctx := context.Background()

	first := newApp(t, url, dataDir)
	registered := registerClient(t, first)
	if !registered.Authenticated || registered.User.UserType != "client" {
		t.Fatalf("expected authenticated client, got %+v", registered)
	}

	second := newApp(t, url, dataDir)
	restored := second.SessionCLI.Restore(ctx)
	if !restored.Authenticated || restored.Token != registered.Token {
		t.Fatalf("expected restored session, got %+v", restored)
	}

	job, err := second.JobsCLI.Create(ctx, form.Values{
		"title":           "Fix sink",
		"description":     "Kitchen sink leaks",
		"job_type":        "plumbing",
		"location":        "Lagos",
		"budget":          "15000",
		"estimated_hours": "2",
	})
	if err != nil {
		t.Fatalf("create job with restored bearer: %v", err)
	}
	if job.Status != "available" || job.ClientID != registered.User.ID {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestRejectedTokenForcesLogoutAndClearsStore(t *testing.T) {
	t.Parallel()
	srv, url := newDevServer(t)
	dataDir := t.TempDir()
	ctx := context.Background()

	app := newApp(t, url, dataDir)
	registered := registerClient(t, app)
	srv.Revoke(registered.Token)

	_, err := app.JobsCLI.ListAvailable(ctx)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if app.SessionCLI.Current(ctx).Authenticated {
		t.Fatalf("401 should end the session")
	}
	if app.API.Bearer() != "" {
		t.Fatalf("bearer should be cleared")
	}

	restarted := newApp(t, url, dataDir)
	if restarted.SessionCLI.Restore(ctx).Authenticated {
		t.Fatalf("forced logout should clear the stored session")
	}
}

func TestLogoutThenRestoreStaysUnauthenticated(t *testing.T) {
	t.Parallel()
	_, url := newDevServer(t)
	dataDir := t.TempDir()
	ctx := context.Background()

	app := newApp(t, url, dataDir)
	registerClient(t, app)
	app.SessionCLI.Logout(ctx, true)
	if app.SessionCLI.Current(ctx).Authenticated {
		t.Fatalf("logout should end the session")
	}

	restarted := newApp(t, url, dataDir)
	if restarted.SessionCLI.Restore(ctx).Authenticated {
		t.Fatalf("restore after logout should find nothing")
	}
}

func TestFailedLoginKeepsLiveSession(t *testing.T) {
	t.Parallel()
	_, url := newDevServer(t)
	dataDir := t.TempDir()
	ctx := context.Background()

	app := newApp(t, url, dataDir)
	registered := registerClient(t, app)

	_, err := app.SessionCLI.Login(ctx, "ada@example.com", "wrongpass")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	current := app.SessionCLI.Current(ctx)
	if !current.Authenticated || current.Token != registered.Token {
		t.Fatalf("failed login must keep the session, got %+v", current)
	}
	if app.API.Bearer() != registered.Token {
		t.Fatalf("bearer should survive a failed login, got %q", app.API.Bearer())
	}
	if _, err := app.JobsCLI.ListAvailable(ctx); err != nil {
		t.Fatalf("session should still reach the API: %v", err)
	}

	restarted := newApp(t, url, dataDir)
	if !restarted.SessionCLI.Restore(ctx).Authenticated {
		t.Fatalf("stored session should survive a failed login")
	}
}
