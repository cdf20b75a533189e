package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/authkit/auth"
	"github.com/kbukum/authkit/config"
	"github.com/kbukum/authkit/database"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/observability"
	"github.com/kbukum/authkit/password"
	"github.com/kbukum/authkit/server"
	"github.com/kbukum/authkit/token"
	"github.com/kbukum/authkit/user"
	"github.com/kbukum/authkit/version"
)

func main() {
	if err := run(); err != nil {
		logger.Error("fatal", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logger, "authkit")
	logger.SetGlobalLogger(log)
	log.Info("starting authkit", logger.Fields("version", version.Short(), "environment", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Observability.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.Observability, "authkit", cfg.Environment)
		if err != nil {
			return err
		}
		defer func() {
			_ = tp.Shutdown(context.Background())
		}()
	}

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()
	if err := db.Migrate(&user.User{}); err != nil {
		return err
	}

	repo := user.NewGormRepository(db.GormDB)
	hasher := password.NewHasher(cfg.Auth.Password)
	codec := token.NewCodec(cfg.Auth.Token)
	svc := auth.NewService(hasher, codec, repo, log)

	srv := server.New(cfg, svc, codec, repo, log)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}
