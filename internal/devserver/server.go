// Package devserver is an in-memory implementation of the SabaLabor REST API.
// It backs local development and the end-to-end tests of the client.
package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"sabalabor/internal/platform/clock"
	"sabalabor/internal/platform/id"
	"sabalabor/internal/platform/logging"
)

const (
	Issuer     = "sabalabor-devserver"
	DefaultTTL = 24 * time.Hour
)

type Options struct {
	Secret   []byte
	TokenTTL time.Duration
	Clock    clock.Clock
	IDs      id.Generator
	Logger   *slog.Logger
}

type Server struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
	ids    id.Generator
	logger *slog.Logger
	router *mux.Router

	mu            sync.Mutex
	users         map[int64]*userRecord
	emails        map[string]int64
	jobs          map[int64]*jobRecord
	payments      map[string]*paymentRecord
	notifications map[string]*notificationRecord
	revoked       map[string]struct{}
	nextUserID    int64
	nextJobID     int64
}

func New(opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = DefaultTTL
	}
	if opts.Clock == nil {
		opts.Clock = clock.SystemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = id.UUID{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	s := &Server{
		secret:        opts.Secret,
		ttl:           opts.TokenTTL,
		clock:         opts.Clock,
		ids:           opts.IDs,
		logger:        opts.Logger,
		users:         map[int64]*userRecord{},
		emails:        map[string]int64{},
		jobs:          map[int64]*jobRecord{},
		payments:      map[string]*paymentRecord{},
		notifications: map[string]*notificationRecord{},
		revoked:       map[string]struct{}{},
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.requireAuth)
	authed.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/verify", s.handleVerify).Methods(http.MethodGet)

	authed.HandleFunc("/jobs/available", s.handleAvailableJobs).Methods(http.MethodGet)
	authed.HandleFunc("/jobs", s.handleListJobs).Methods(http.MethodGet)
	authed.HandleFunc("/jobs", s.handleCreateJob).Methods(http.MethodPost)
	authed.HandleFunc("/jobs/{id:[0-9]+}", s.handleGetJob).Methods(http.MethodGet)
	authed.HandleFunc("/jobs/{id:[0-9]+}", s.handleUpdateJob).Methods(http.MethodPut)
	authed.HandleFunc("/jobs/{id:[0-9]+}", s.handleDeleteJob).Methods(http.MethodDelete)
	authed.HandleFunc("/jobs/{id:[0-9]+}/apply", s.handleApply).Methods(http.MethodPost)
	authed.HandleFunc("/jobs/{id:[0-9]+}/accept/{worker:[0-9]+}", s.handleAccept).Methods(http.MethodPost)
	authed.HandleFunc("/jobs/{id:[0-9]+}/complete", s.handleComplete).Methods(http.MethodPost)

	authed.HandleFunc("/user/profile", s.handleGetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/user/profile", s.handleUpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/user/workers", s.handleListWorkers).Methods(http.MethodGet)
	authed.HandleFunc("/user/workers/{id:[0-9]+}", s.handleGetWorker).Methods(http.MethodGet)

	authed.HandleFunc("/payments/create", s.handleCreatePayment).Methods(http.MethodPost)
	authed.HandleFunc("/payments/transactions", s.handleTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{id}/confirm", s.handleConfirmPayment).Methods(http.MethodPost)

	authed.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", s.handleReadNotification).Methods(http.MethodPut)
	authed.HandleFunc("/notifications/{id}", s.handleDeleteNotification).Methods(http.MethodDelete)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"request_id", r.Header.Get("X-Request-ID"),
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Errors use the {"detail": "..."} envelope.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeBody(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func pathID(r *http.Request, name string) int64 {
	v, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return v
}
