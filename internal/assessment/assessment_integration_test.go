//go:build integration

package assessment_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/app"
	"github.com/syrene4545/attendance-tracker-sub001/internal/assessment"
	assessmenterrors "github.com/syrene4545/attendance-tracker-sub001/internal/assessment/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/company"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employee"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	itGorm *gorm.DB
	itSQL  *sql.DB
)

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=test",
		"POSTGRES_PASSWORD=test",
		"POSTGRES_DB=testdb",
	})
	if err != nil {
		log.Fatalf("could not start postgres: %s", err)
	}

	cfg := connection.PostgresConfig{
		Host:     "localhost",
		User:     "test",
		Password: "test",
		Name:     "testdb",
		Port:     resource.GetPort("5432/tcp"),
		SSLMode:  "disable",
	}
	err = pool.Retry(func() error {
		itGorm, err = connection.ConnectGORMWithRetry(cfg, 1)
		return err
	})
	if err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("postgres not ready: %s", err)
	}
	itSQL, _ = itGorm.DB()

	if err := app.Migrate(context.Background(), itGorm, nil, zap.NewNop()); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("migrate failed: %s", err)
	}

	code := m.Run()

	_ = itSQL.Close()
	_ = pool.Purge(resource)
	os.Exit(code)
}

// clock bisa dimajukan dari test.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func seedCompany(t *testing.T) (companyID, employeeID string) {
	t.Helper()
	c := company.Company{Name: "Acme", Email: uuid.NewString() + "@acme.test"}
	require.NoError(t, itGorm.Create(&c).Error)

	e := employee.Employee{
		ID:             uuid.New(),
		CompanyID:      c.ID,
		EmployeeNumber: "EMP-" + uuid.NewString()[:8],
		FullName:       "Budi Santoso",
		Email:          uuid.NewString() + "@acme.test",
		HireDate:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, itGorm.Create(&e).Error)
	return c.ID.String(), e.ID.String()
}

func newIntegrationService(clk *clock) assessment.Service {
	return assessment.NewService(
		itSQL,
		assessment.NewRepository(itGorm),
		kafka.NewOutboxRepository(itSQL),
		config.AssessmentConfig{Grace: 30 * time.Second},
		zap.NewNop(),
		assessment.WithClock(clk.Now),
	)
}

// publishedAssessment builds SINGLE (2 poin) + MULTI (3 poin), pass 70.
func publishedAssessment(t *testing.T, svc assessment.Service, companyID, actorID string) (assessment.AssessmentResponse, map[string][]string) {
	t.Helper()
	ctx := context.Background()

	a, err := svc.Create(ctx, companyID, actorID, assessment.CreateAssessmentRequest{
		Title:                     "Fire safety",
		DurationMinutes:           20,
		PassScore:                 70,
		MaxAttempts:               2,
		BadgeName:                 "Fire Warden",
		CertificationValidityDays: 365,
	})
	require.NoError(t, err)

	single, err := svc.AddQuestion(ctx, companyID, a.ID, assessment.AddQuestionRequest{
		Type:   assessment.QuestionSingle,
		Prompt: "Nomor darurat?",
		Points: 2,
		Options: []assessment.OptionInput{
			{Label: "112", IsCorrect: true},
			{Label: "999"},
		},
	})
	require.NoError(t, err)

	multi, err := svc.AddQuestion(ctx, companyID, a.ID, assessment.AddQuestionRequest{
		Type:   assessment.QuestionMulti,
		Prompt: "APAR kelas apa untuk listrik?",
		Points: 3,
		Options: []assessment.OptionInput{
			{Label: "CO2", IsCorrect: true},
			{Label: "Powder", IsCorrect: true},
			{Label: "Air"},
		},
	})
	require.NoError(t, err)

	correct := map[string][]string{
		single.ID: {optionID(t, single, "112")},
		multi.ID:  {optionID(t, multi, "CO2"), optionID(t, multi, "Powder")},
	}

	a, err = svc.Publish(ctx, companyID, a.ID)
	require.NoError(t, err)
	require.Equal(t, assessment.StatusPublished, a.Status)
	return a, correct
}

func optionID(t *testing.T, q assessment.QuestionResponse, label string) string {
	t.Helper()
	for _, o := range q.Options {
		if o.Label == label {
			return o.ID
		}
	}
	t.Fatalf("option %q not found", label)
	return ""
}

func TestIntegration_AttemptLifecycle(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now().UTC().Truncate(time.Second)}
	svc := newIntegrationService(clk)
	companyID, employeeID := seedCompany(t)

	a, correct := publishedAssessment(t, svc, companyID, employeeID)

	view, err := svc.Start(ctx, companyID, employeeID, a.ID)
	require.NoError(t, err)
	assert.False(t, view.Resumed)
	assert.Len(t, view.Questions, 2)
	assert.Equal(t, int64(20*60), view.RemainingSeconds)

	// jawaban disimpan, lalu attempt dilanjutkan
	clk.Advance(2 * time.Minute)
	var singleID string
	for qid, opts := range correct {
		if len(opts) == 1 {
			singleID = qid
		}
	}
	_, err = svc.SaveAnswers(ctx, companyID, employeeID, view.Attempt.ID, assessment.AnswersRequest{
		Answers: map[string][]string{singleID: correct[singleID]},
	})
	require.NoError(t, err)

	resumed, err := svc.Start(ctx, companyID, employeeID, a.ID)
	require.NoError(t, err)
	assert.True(t, resumed.Resumed)
	assert.Equal(t, view.Attempt.ID, resumed.Attempt.ID)
	assert.Equal(t, correct[singleID], resumed.Answers[singleID])

	clk.Advance(5 * time.Minute)
	result, err := svc.Submit(ctx, companyID, employeeID, view.Attempt.ID, assessment.AnswersRequest{Answers: correct})
	require.NoError(t, err)
	assert.Equal(t, assessment.AttemptSubmitted, result.Attempt.Status)
	require.NotNil(t, result.Attempt.Score)
	assert.Equal(t, 100, *result.Attempt.Score)
	assert.True(t, result.BadgeAwarded)
	require.NotNil(t, result.Certification)
	assert.True(t, result.Certification.Valid)

	badges, err := svc.ListBadges(ctx, companyID, employeeID)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "Fire Warden", badges[0].BadgeName)

	var events int
	require.NoError(t, itSQL.QueryRow(
		`SELECT COUNT(*) FROM outbox_events WHERE aggregate_type = 'assessment_attempt' AND aggregate_id = $1`,
		view.Attempt.ID,
	).Scan(&events))
	assert.Equal(t, 1, events)

	_, err = svc.Start(ctx, companyID, employeeID, a.ID)
	assert.ErrorIs(t, err, assessmenterrors.ErrAlreadyCertified)

	_, err = svc.Submit(ctx, companyID, employeeID, view.Attempt.ID, assessment.AnswersRequest{})
	assert.ErrorIs(t, err, assessmenterrors.ErrAttemptFinished)
}

func TestIntegration_ExpireOverdue(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now().UTC().Truncate(time.Second)}
	svc := newIntegrationService(clk)
	companyID, employeeID := seedCompany(t)

	a, _ := publishedAssessment(t, svc, companyID, employeeID)

	view, err := svc.Start(ctx, companyID, employeeID, a.ID)
	require.NoError(t, err)

	// belum lewat grace period
	n, err := svc.ExpireOverdue(ctx, clk.Now().Add(20*time.Minute+10*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	clk.Advance(21 * time.Minute)
	n, err = svc.ExpireOverdue(ctx, clk.Now())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)

	detail, err := svc.GetAttempt(ctx, companyID, employeeID, false, view.Attempt.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Result)
	assert.Equal(t, assessment.AttemptExpired, detail.Result.Attempt.Status)
	assert.False(t, *detail.Result.Attempt.Passed)

	_, err = svc.SaveAnswers(ctx, companyID, employeeID, view.Attempt.ID, assessment.AnswersRequest{Answers: map[string][]string{}})
	assert.ErrorIs(t, err, assessmenterrors.ErrAttemptFinished)
}

func TestIntegration_OneRunningAttemptPerEmployee(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now().UTC().Truncate(time.Second)}
	svc := newIntegrationService(clk)
	companyID, employeeID := seedCompany(t)

	a, _ := publishedAssessment(t, svc, companyID, employeeID)

	var wg sync.WaitGroup
	ids := make([]string, 4)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := svc.Start(ctx, companyID, employeeID, a.ID)
			if err == nil {
				ids[i] = v.Attempt.ID
			}
		}(i)
	}
	wg.Wait()

	var running int
	require.NoError(t, itSQL.QueryRow(
		`SELECT COUNT(*) FROM assessment_attempts WHERE assessment_id = $1 AND employee_id = $2 AND status = 'IN_PROGRESS'`,
		a.ID, employeeID,
	).Scan(&running))
	assert.Equal(t, 1, running)

	for _, id := range ids {
		if id != "" {
			assert.Equal(t, ids[0], id)
		}
	}
}
