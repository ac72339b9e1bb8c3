package main

import (
	"github.com/syrene4545/attendance-tracker-sub001/internal/app"
	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/metrics"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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
	metrics.Init()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	in, err := app.Connect(cfg, true)
	if err != nil {
		logger.Fatal("connect infrastructure failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewZapAuditLogger(logger)

	// build dependency + routes
	if err := app.BuildApp(r, in, auditLogger, logger); err != nil {
		in.Close()
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig(cfg.Port), auditLogger, in.Close)
}
