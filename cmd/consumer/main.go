package main

import (
	"github.com/syrene4545/attendance-tracker-sub001/internal/app"
	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"

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

	apperror.Init()

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
