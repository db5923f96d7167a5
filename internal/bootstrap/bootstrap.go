package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	accountinadapter "sabalabor/internal/modules/account/adapter/in"
	accountoutadapter "sabalabor/internal/modules/account/adapter/out"
	accountusecase "sabalabor/internal/modules/account/usecase"
	jobsinadapter "sabalabor/internal/modules/jobs/adapter/in"
	jobsoutadapter "sabalabor/internal/modules/jobs/adapter/out"
	jobsservice "sabalabor/internal/modules/jobs/service"
	jobsusecase "sabalabor/internal/modules/jobs/usecase"
	navigationdomain "sabalabor/internal/modules/navigation/domain"
	navigationservice "sabalabor/internal/modules/navigation/service"
	notificationsinadapter "sabalabor/internal/modules/notifications/adapter/in"
	notificationsoutadapter "sabalabor/internal/modules/notifications/adapter/out"
	notificationsusecase "sabalabor/internal/modules/notifications/usecase"
	paymentsinadapter "sabalabor/internal/modules/payments/adapter/in"
	paymentsoutadapter "sabalabor/internal/modules/payments/adapter/out"
	paymentsusecase "sabalabor/internal/modules/payments/usecase"
	sessioninadapter "sabalabor/internal/modules/session/adapter/in"
	sessionoutadapter "sabalabor/internal/modules/session/adapter/out"
	sessionservice "sabalabor/internal/modules/session/service"
	sessionusecase "sabalabor/internal/modules/session/usecase"
	"sabalabor/internal/platform/clock"
	"sabalabor/internal/platform/config"
	"sabalabor/internal/platform/httpapi"
	"sabalabor/internal/platform/id"
	"sabalabor/internal/platform/kv"
	uiapp "sabalabor/internal/ui/app"
)

type App struct {
	Config config.Config
	Logger *slog.Logger
	API    *httpapi.Client

	SessionCLI       sessioninadapter.CLIHandler
	JobsCLI          jobsinadapter.CLIHandler
	AccountCLI       accountinadapter.CLIHandler
	PaymentsCLI      paymentsinadapter.CLIHandler
	NotificationsCLI notificationsinadapter.CLIHandler

	store kv.Store
}

// New wires every module against one API client and one credential store.
// The caller owns the returned App and must Close it.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	store, err := newStore(cfg, clock.SystemClock{})
	if err != nil {
		return nil, err
	}

	api := httpapi.New(cfg.APIBaseURL, cfg.Timeout, logger, id.UUID{})

	sessionSvc := sessionservice.NewSessionService(
		sessionoutadapter.NewKVCredentialStore(store),
		sessionoutadapter.NewHTTPAuthGateway(api),
		api,
		logger,
	)
	api.OnUnauthorized(sessionSvc.HandleUnauthorized)

	jobsUC := jobsusecase.NewInteractor(jobsservice.NewJobService(jobsoutadapter.NewHTTPJobGateway(api)))
	accountUC := accountusecase.NewInteractor(accountoutadapter.NewHTTPAccountGateway(api))
	paymentsUC := paymentsusecase.NewInteractor(paymentsoutadapter.NewHTTPPaymentGateway(api))
	notificationsUC := notificationsusecase.NewInteractor(notificationsoutadapter.NewHTTPNotificationGateway(api))

	return &App{
		Config:           cfg,
		Logger:           logger,
		API:              api,
		SessionCLI:       sessioninadapter.NewCLIHandler(sessionusecase.NewInteractor(sessionSvc)),
		JobsCLI:          jobsinadapter.NewCLIHandler(jobsUC),
		AccountCLI:       accountinadapter.NewCLIHandler(accountUC),
		PaymentsCLI:      paymentsinadapter.NewCLIHandler(paymentsUC),
		NotificationsCLI: notificationsinadapter.NewCLIHandler(notificationsUC),
		store:            store,
	}, nil
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func newStore(cfg config.Config, clk clock.Clock) (kv.Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		return kv.NewFileStore(cfg.StorePath()), nil
	case config.StoreSQLite:
		store, err := kv.NewSQLiteStore(cfg.DBPath(), clk)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return kv.NewRedisStore(rdb, cfg.RedisPrefix), nil
	case config.StoreMemory:
		return kv.NewMemoryStore(), nil
	}
	return nil, errors.New("unsupported store " + cfg.Store)
}

// RunTUI restores the stored session and hands control to the terminal UI.
func RunTUI(app *App) error {
	selector := navigationservice.NewSelector(app.SessionCLI)
	defer selector.Close()

	model := uiapp.NewModel(app.SessionCLI, selector, app.JobsCLI, app.AccountCLI, app.NotificationsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	selector.OnChange(func(tree navigationdomain.Tree) {
		program.Send(uiapp.TreeChangedMsg{Tree: tree})
	})
	_, err := program.Run()
	return err
}
