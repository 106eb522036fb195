package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"plantGame/internal/config"
	"plantGame/internal/handler"
	"plantGame/internal/repository"
	"plantGame/internal/server"
	"plantGame/internal/usecase"
)

func newLogger(level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	return log, nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("invalid LOG_LEVEL: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	repo, err := repository.NewRepo(ctx, cfg.DBDriver, cfg.DSN(), repository.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		cancel()
		log.Fatalf("failed to init repository: %v", err)
	}
	if cfg.DBAutoMigrate {
		if err := repo.Migrate(ctx); err != nil {
			cancel()
			log.Fatalf("failed to migrate schema: %v", err)
		}
		log.Info("schema migrated")
	}
	cancel()
	defer repo.Close()
	log.WithField("driver", cfg.DBDriver).Info("connected to database")

	svc := usecase.NewService(repo)
	h := handler.NewHandler(svc, log)
	r := server.NewRouter(h)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := server.StartHTTPServer(srv, log); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
