package cli

import (
	"context"
	"fmt"
	"io"
	"odontocare-client/internal/app/config"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/drivers/database"
	"odontocare-client/internal/app/drivers/logger"
	"odontocare-client/internal/app/services/core/screens"
	"odontocare-client/internal/app/services/core/session"
	"odontocare-client/internal/app/services/odontocare_api/activities"
	"odontocare-client/internal/app/services/odontocare_api/alerts"
	"odontocare-client/internal/app/services/odontocare_api/appointments"
	"odontocare-client/internal/app/services/odontocare_api/auth"
	"odontocare-client/internal/app/services/odontocare_api/patients"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/app/services/shared/sessionstorage"
	"odontocare-client/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// App is everything one command needs: the session store, the API clients
// and a text front end standing in for the mobile screens.
type App struct {
	Bootstrap *config.Bootstrap
	Storage   contracts.SessionStorage
	Session   contracts.SessionStore

	AuthAPIClient        contracts.AuthAPIClient
	PatientAPIClient     contracts.PatientAPIClient
	AppointmentAPIClient contracts.AppointmentAPIClient
	AlertAPIClient       contracts.AlertAPIClient
	ActivityAPIClient    contracts.ActivityAPIClient

	Navigator *TextNavigator
	Notifier  *TextNotifier
	Out       io.Writer
	Log       *zap.Logger
}

// NewApp loads configuration from the environment and wires the app.
func NewApp(ctx context.Context, out io.Writer) (*App, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("error loading location %s: %w", internalConfig.App.Timezone, err)
	}
	time.Local = location

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, fmt.Errorf("error building logger: %w", err)
	}

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	var storage contracts.SessionStorage
	switch internalConfig.Session.StorageDriver {
	case constvars.SessionStorageDriverRedis:
		redisClient, err := database.NewRedisClient(ctx, driverConfig)
		if err != nil {
			log.Error("cli.NewApp redis unavailable", zap.Error(err))
			return nil, err
		}
		bootstrap.Redis = redisClient
		storage = sessionstorage.NewRedisStorage(redisClient, log)
	case constvars.SessionStorageDriverMemory:
		storage = sessionstorage.NewMemoryStorage()
	default:
		storage = sessionstorage.NewFileStorage(internalConfig.Session.FilePath, log)
	}

	log.Debug("cli.NewApp session storage selected",
		zap.String(constvars.LoggingStorageDriverKey, internalConfig.Session.StorageDriver),
	)
	return NewAppWith(bootstrap, storage, out), nil
}

// NewAppWith wires an app around an already chosen storage.
func NewAppWith(bootstrap *config.Bootstrap, storage contracts.SessionStorage, out io.Writer) *App {
	log := bootstrap.Logger
	if log == nil {
		log = zap.NewNop()
		bootstrap.Logger = log
	}
	namespace := bootstrap.InternalConfig.Session.Namespace
	if namespace == "" {
		namespace = constvars.DefaultSessionNamespace
	}

	tokenKey := sessionstorage.Key(namespace, constvars.SessionStorageTokenKey)
	client := httpclient.NewClient(bootstrap.InternalConfig.API.BaseUrl, storage, tokenKey, log)

	authAPIClient := auth.NewAuthAPIClient(client, log)
	patientAPIClient := patients.NewPatientAPIClient(client, log)

	return &App{
		Bootstrap:            bootstrap,
		Storage:              storage,
		Session:              session.NewSessionService(storage, authAPIClient, patientAPIClient, namespace, log),
		AuthAPIClient:        authAPIClient,
		PatientAPIClient:     patientAPIClient,
		AppointmentAPIClient: appointments.NewAppointmentAPIClient(client, log),
		AlertAPIClient:       alerts.NewAlertAPIClient(client, log),
		ActivityAPIClient:    activities.NewActivityAPIClient(client, log),
		Navigator:            &TextNavigator{},
		Notifier:             &TextNotifier{Out: out},
		Out:                  out,
		Log:                  log,
	}
}

func (a *App) Dependencies() screens.Dependencies {
	return screens.Dependencies{
		Session:   a.Session,
		Navigator: a.Navigator,
		Notifier:  a.Notifier,
		Log:       a.Log,
	}
}

// Start restores the stored session. A failed profile refresh keeps the
// restored identity, so it is only logged.
func (a *App) Start(ctx context.Context) {
	if err := a.Session.Initialize(ctx); err != nil {
		a.Log.Warn("cli.App.Start session restored with errors", zap.Error(err))
	}
}

func (a *App) Close(ctx context.Context) {
	if err := a.Bootstrap.Shutdown(ctx); err != nil {
		a.Log.Warn("cli.App.Close shutdown error", zap.Error(err))
	}
}
