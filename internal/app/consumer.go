package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employeesalary"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka/consumer"
	"github.com/syrene4545/attendance-tracker-sub001/internal/payroll"

	"go.uber.org/zap"
)

const consumerGroupPrefix = "attendance-tracker-"

// RunConsumer runs one reader per subscribed topic until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer in.Close()

	rules, err := config.LoadPayrollRules(cfg.PayrollRulesFile)
	if err != nil {
		return err
	}

	employeeSalaryService := employeesalary.NewService(in.SQLDB, employeesalary.NewRepository(in.GormDB), logger)
	payrollService := payroll.NewService(
		in.SQLDB,
		payroll.NewRepository(in.GormDB),
		employeeSalaryService,
		rules,
		kafka.NewOutboxRepository(in.SQLDB),
		logger,
	)
	audit := bootstrap.NewZapAuditLogger(logger)

	subscriptions := []struct {
		name   string
		topic  string
		handle consumer.HandlerFunc
	}{
		{"employee-salary", events.EmployeeCreatedTopic, consumer.EmployeeCreated(employeeSalaryService, log)},
		{"payroll-payslip", events.PayrollPayslipRequestedTopic, consumer.PayslipRequested(payrollService, log)},
		{"assessment-audit", events.AssessmentCertifiedTopic, consumer.AssessmentCertified(audit, log)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	for _, sub := range subscriptions {
		reader := consumer.NewReader(cfg.KafkaBroker, consumerGroupPrefix+sub.name, sub.topic)
		wg.Add(1)
		go func(name string, handle consumer.HandlerFunc) {
			defer wg.Done()
			defer reader.Close()
			consumer.Run(ctx, name, reader, handle, log)
		}(sub.name, sub.handle)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
