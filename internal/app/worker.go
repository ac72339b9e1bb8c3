package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/assessment"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka/producer"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

// OverdueExpirer closes attempts whose timer ran out.
type OverdueExpirer interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

// RunWorker publishes the outbox and sweeps overdue assessment attempts until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer in.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(in.SQLDB)
	assessmentService := assessment.NewService(
		in.SQLDB,
		assessment.NewRepository(in.GormDB),
		outboxRepo,
		cfg.Assessment,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, 3*time.Second)
	go SweepOverdueAttempts(ctx, assessmentService, 30*time.Second, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("worker shutting down")
	cancel()

	return nil
}

// SweepOverdueAttempts calls ExpireOverdue every interval until ctx is done.
func SweepOverdueAttempts(ctx context.Context, svc OverdueExpirer, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("attempt sweeper stopped")
			return
		case <-ticker.C:
			n, err := svc.ExpireOverdue(ctx, time.Now())
			if err != nil {
				logger.Error("expire overdue attempts failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("overdue attempts expired", zap.Int("count", n))
			}
		}
	}
}
