package main

import (
	"context"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/app"
	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac/infra"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	in, err := app.Connect(cfg, false)
	if err != nil {
		logger.Fatal("connect postgres failed", zap.Error(err))
	}
	defer in.Close()

	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		logger.Fatal("load rbac model failed", zap.Error(err))
	}
	rbacService := rbac.NewService(in.SQLDB, rbac.NewRepository(in.GormDB), enforcer, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Migrate(ctx, in.GormDB, rbacService, logger); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
}
