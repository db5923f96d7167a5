package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/httpapi"
	"sabalabor/internal/platform/logging"
)

type fixedID struct{}

func (fixedID) New() string { return "req-1" }

func newClient(url string) *httpapi.Client {
	return httpapi.New(url, time.Second, logging.Discard(), fixedID{})
}

func TestBearerAndRequestIDAttached(t *testing.T) {
	t.Parallel()
	var gotAuth, gotID, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotID = r.Header.Get(httpapi.RequestIDHeader)
		gotQuery = r.URL.Query().Get("status")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	client := newClient(srv.URL + "/")
	client.SetBearer("tok-1")
	out := map[string]string{}
	if err := client.Get(context.Background(), "/api/jobs", map[string][]string{"status": {"available"}}, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotID != "req-1" || gotQuery != "available" {
		t.Fatalf("unexpected request id %q or query %q", gotID, gotQuery)
	}
	if out["ok"] != "yes" {
		t.Fatalf("expected decoded body, got %v", out)
	}

	client.ClearBearer()
	if err := client.Get(context.Background(), "/api/jobs", nil, nil); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("cleared bearer must not be sent, got %q", gotAuth)
	}
}

func TestUnauthorizedTriggersHookOnlyWithBearer(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	calls := 0
	rejected := ""
	client.OnUnauthorized(func(token string) {
		calls++
		rejected = token
	})

	err := client.Get(context.Background(), "/api/user/profile", nil, nil)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("hook must not fire without a bearer credential")
	}

	client.SetBearer("tok-1")
	err = client.Get(context.Background(), "/api/user/profile", nil, nil)
	var apiErr *httpapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected api error, got %v", err)
	}
	if apiErr.Message != "token expired" || string(apiErr.Payload) != `{"detail":"token expired"}` {
		t.Fatalf("payload should pass through, got %+v", apiErr)
	}
	if calls != 1 {
		t.Fatalf("expected hook to fire once, got %d", calls)
	}
	if rejected != "tok-1" {
		t.Fatalf("hook should receive the rejected credential, got %q", rejected)
	}
}

func TestErrorPayloadPassthroughAndPlainText(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/plain" {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":{"budget":"must be positive"}}`))
	}))
	defer srv.Close()
	client := newClient(srv.URL)

	err := client.Post(context.Background(), "/api/jobs", map[string]any{"budget": -1}, nil)
	var apiErr *httpapi.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 api error, got %v", err)
	}
	if string(apiErr.Payload) != `{"errors":{"budget":"must be positive"}}` {
		t.Fatalf("unexpected payload %s", apiErr.Payload)
	}
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("400 should map to invalid input")
	}

	err = client.Get(context.Background(), "/plain", nil, nil)
	if !errors.As(err, &apiErr) || apiErr.Message != "upstream down" || apiErr.Payload != nil {
		t.Fatalf("expected plain text message, got %+v", apiErr)
	}
}

func TestTransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newClient(url).Get(context.Background(), "/api/jobs", nil, nil)
	var transportErr *httpapi.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if transportErr.Method != http.MethodGet || transportErr.Path != "/api/jobs" {
		t.Fatalf("unexpected transport error fields %+v", transportErr)
	}
}

func TestPostAnonymousOmitsBearer(t *testing.T) {
	t.Parallel()
	sawAuth := "unset"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	client.SetBearer("tok-1")
	calls := 0
	client.OnUnauthorized(func(string) { calls++ })

	err := client.PostAnonymous(context.Background(), "/api/auth/login", map[string]string{"email": "a@b.com"}, nil)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if sawAuth != "" {
		t.Fatalf("anonymous post must not send the bearer, got %q", sawAuth)
	}
	if calls != 0 || client.Bearer() != "tok-1" {
		t.Fatalf("anonymous 401 must leave the bearer alone (calls=%d)", calls)
	}
}
