package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"contact-back/internal/api/http/handler"
	"contact-back/internal/api/http/route"
	"contact-back/internal/apperrors"
	"contact-back/internal/config"
	"contact-back/internal/repository"
	"contact-back/internal/service"
	"contact-back/pkg/mailer"
	"contact-back/pkg/postgres"
	"contact-back/pkg/redis"
	"contact-back/pkg/server"
)

type App struct {
	Cfg        *config.Config
	Log        *zap.Logger
	Handler    *Handler
	Service    *Service
	DB         postgres.Postgres
	RDB        redis.Redis
	Mailer     mailer.Mailer
	HTTPServer server.HTTPServer
}

type Repository struct {
	InquiryRepository service.InquiryRepository
	HealthRepository  service.HealthRepository
}

type Service struct {
	InquiryService handler.InquiryService
	HealthService  handler.HealthService
}

type Handler struct {
	InquiryHandler route.InquiryHandler
	HealthHandler  route.HealthHandler
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	db, err := initDB(&cfg.Database)
	if err != nil {
		log.Error("Failed to initialize database", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := initRedis(&cfg.Redis)
	if err != nil {
		log.Error("Failed to initialize redis", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	mlr := initMailer(log, &cfg.Mailer)

	repo := initRepository(log, db)

	svc := initService(log, cfg, repo, mlr)

	hdl := initHandler(log, svc)

	httpServer := initHTTPServer(log, cfg, rdb, hdl)

	return &App{
		Cfg:        cfg,
		Log:        log,
		Handler:    hdl,
		Service:    svc,
		DB:         db,
		RDB:        rdb,
		Mailer:     mlr,
		HTTPServer: httpServer,
	}, nil
}

func MustNew(cfg *config.Config, log *zap.Logger) *App {
	app, err := New(cfg, log)
	if err != nil {
		panic(err)
	}
	return app
}

func (a *App) Run(ctx context.Context) error {
	return a.HTTPServer.Run()
}

func (a *App) Shutdown() error {
	err := apperrors.ErrShutdown

	if srvErr := a.HTTPServer.Shutdown(); srvErr != nil {
		err = fmt.Errorf("%w, failed to shutdown http server: %w", err, srvErr)
	}

	a.Log.Debug("Http server shutdown")

	a.DB.Close()
	a.Log.Debug("Database closed")

	if rdbErr := a.RDB.Close(); rdbErr != nil {
		err = fmt.Errorf("%w, failed to close RDB: %w", err, rdbErr)
	}

	a.Log.Debug("Redis closed")

	if !errors.Is(err, apperrors.ErrShutdown) {
		return err
	}

	return nil
}

func initDB(cfg *config.Database) (postgres.Postgres, error) {
	postgresCfg := &postgres.Config{
		Host:           cfg.Host,
		Port:           cfg.Port,
		User:           cfg.User,
		Password:       cfg.Password,
		Name:           cfg.Name,
		SSLMode:        cfg.SSLMode,
		MaxConns:       cfg.MaxConns,
		MinConns:       cfg.MinConns,
		ConnectTimeout: cfg.ConnectTimeout,
		MaxConnIdle:    cfg.MaxConnIdle,
		Migration: postgres.Migration{
			Path:      cfg.Migration.Path,
			AutoApply: cfg.Migration.AutoApply,
		},
	}

	db, err := postgres.New(postgresCfg)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func initRedis(cfg *config.Redis) (redis.Redis, error) {
	redisCfg := &redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	rdb, err := redis.New(redisCfg)
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func initMailer(log *zap.Logger, cfg *config.Mailer) mailer.Mailer {
	mailerCfg := &mailer.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		UseTLS:   cfg.UseTLS,
	}

	mlr := mailer.New(mailerCfg)

	// Startup probe only, delivery failures still surface per request.
	if err := mlr.Ping(); err != nil {
		log.Warn("SMTP server is not reachable", zap.Error(err))
	} else {
		log.Debug("Mailer initialized")
	}

	return mlr
}

func initRepository(log *zap.Logger, db postgres.Postgres) *Repository {
	inquiryRepo := repository.NewInquiryRepository(db.Pool())
	log.Debug("Inquiry repository initialized")

	healthRepo := repository.NewHealthRepository(db.Pool())
	log.Debug("Health repository initialized")

	return &Repository{
		InquiryRepository: inquiryRepo,
		HealthRepository:  healthRepo,
	}
}

func initService(log *zap.Logger, cfg *config.Config, repo *Repository, mlr mailer.Mailer) *Service {
	notifier := service.NewNotifier(mlr, cfg.Mailer.AdminEmail)
	log.Debug("Notifier initialized")

	inquirySvc := service.NewInquiryService(log, repo.InquiryRepository, notifier, service.NotifyPolicy(cfg.Mailer.NotifyPolicy))
	log.Debug("Inquiry service initialized")

	healthSvc := service.NewHealthService(log, repo.HealthRepository)
	log.Debug("Health service initialized")

	return &Service{
		InquiryService: inquirySvc,
		HealthService:  healthSvc,
	}
}

func initHandler(log *zap.Logger, svc *Service) *Handler {
	inquiryHandler := handler.NewInquiryHandler(log, svc.InquiryService)
	log.Debug("Inquiry handler initialized")

	healthHandler := handler.NewHealthHandler(log, svc.HealthService)
	log.Debug("Health handler initialized")

	return &Handler{
		InquiryHandler: inquiryHandler,
		HealthHandler:  healthHandler,
	}
}

func initHTTPServer(log *zap.Logger, cfg *config.Config, rdb redis.Redis, hdl *Handler) server.HTTPServer {
	router := route.SetupRouter(
		log,
		cfg,
		rdb.RDB(),
		hdl.HealthHandler,
		hdl.InquiryHandler,
	)

	httpServer := server.NewHTTPServer(
		server.WithAddr(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		server.WithTimeout(cfg.HTTPServer.Timeout.Read, cfg.HTTPServer.Timeout.Write, cfg.HTTPServer.Timeout.Idle),
		server.WithHandler(router),
	)

	return httpServer
}
