package assessment

import (
	"context"
	"database/sql"
	"strings"
	"time"

	assessmenterrors "github.com/syrene4545/attendance-tracker-sub001/internal/assessment/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/metrics"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const overdueBatchSize = 100

// finalized is an attempt closed inside a transaction. Metrics and logs are
// emitted only once that transaction commits.
type finalized struct {
	attempt       Attempt
	result        scoreResult
	certification *Certification
}

func (s *service) Start(ctx context.Context, companyID, employeeID, id string) (AttemptView, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AttemptView{}, assessmenterrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttemptView{}, assessmenterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttemptView{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AttemptView{}, mapRepositoryError(err)
	}
	if a.Status != StatusPublished {
		return AttemptView{}, assessmenterrors.ErrAssessmentNotPublished
	}

	attempts, err := qtx.LockAttempts(ctx, companyID, id, employeeID)
	if err != nil {
		return AttemptView{}, err
	}

	now := s.now().UTC()
	var closed []finalized

	// an expired attempt closed here must stay closed even when Start is refused below
	refuse := func(reason error) (AttemptView, error) {
		if len(closed) == 0 {
			return AttemptView{}, reason
		}
		if err := tx.Commit(); err != nil {
			return AttemptView{}, err
		}
		s.record(ctx, closed...)
		return AttemptView{}, reason
	}

	finished := 0
	for i := range attempts {
		at := &attempts[i]
		if !at.Finished() {
			if now.Before(at.ExpiresAt) {
				if err := tx.Commit(); err != nil {
					return AttemptView{}, err
				}
				metrics.AssessmentAttempts.WithLabelValues("resumed").Inc()
				l.Info("assessment attempt resumed",
					zap.String("attempt_id", at.ID.String()),
					zap.String("employee_id", employeeID),
				)
				return s.view(*a, *at, now, true), nil
			}
			f, err := s.finalize(ctx, tx, qtx, *a, at, AttemptExpired, now)
			if err != nil {
				return AttemptView{}, err
			}
			closed = append(closed, f)
		}
		finished++
	}

	certified, err := qtx.HasValidCertification(ctx, companyID, employeeID, id, now)
	if err != nil {
		return AttemptView{}, err
	}
	if certified {
		return refuse(assessmenterrors.ErrAlreadyCertified)
	}
	if a.MaxAttempts > 0 && finished >= a.MaxAttempts {
		return refuse(assessmenterrors.ErrMaxAttemptsReached)
	}

	total := 0
	for _, q := range a.Questions {
		total += q.Points
	}
	at := &Attempt{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		AssessmentID: a.ID,
		EmployeeID:   employeeUUID,
		Status:       AttemptInProgress,
		StartedAt:    now,
		ExpiresAt:    now.Add(time.Duration(a.DurationMinutes) * time.Minute),
		TotalPoints:  total,
		Answers:      Answers{},
	}
	if err := qtx.CreateAttempt(ctx, at); err != nil {
		return AttemptView{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttemptView{}, err
	}
	s.record(ctx, closed...)
	metrics.AssessmentAttempts.WithLabelValues("started").Inc()

	l.Info("assessment attempt started",
		zap.String("attempt_id", at.ID.String()),
		zap.String("assessment_id", id),
		zap.String("employee_id", employeeID),
		zap.Time("expires_at", at.ExpiresAt),
	)
	return s.view(*a, *at, now, false), nil
}

func (s *service) SaveAnswers(ctx context.Context, companyID, employeeID, attemptID string, req AnswersRequest) (AttemptView, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttemptView{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	at, a, err := s.lockOwnAttempt(ctx, qtx, companyID, employeeID, attemptID)
	if err != nil {
		return AttemptView{}, err
	}

	now := s.now().UTC()
	if s.overdue(*at, now) {
		f, err := s.finalize(ctx, tx, qtx, *a, at, AttemptExpired, now)
		if err != nil {
			return AttemptView{}, err
		}
		if err := tx.Commit(); err != nil {
			return AttemptView{}, err
		}
		s.record(ctx, f)
		return AttemptView{}, assessmenterrors.ErrAttemptExpired
	}

	if err := validateAnswers(*a, req.Answers); err != nil {
		return AttemptView{}, err
	}
	at.Answers = mergeAnswers(at.Answers, req.Answers)

	if err := qtx.UpdateAttempt(ctx, at); err != nil {
		return AttemptView{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttemptView{}, err
	}
	return s.view(*a, *at, now, false), nil
}

func (s *service) Submit(ctx context.Context, companyID, employeeID, attemptID string, req AnswersRequest) (AttemptResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttemptResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	at, a, err := s.lockOwnAttempt(ctx, qtx, companyID, employeeID, attemptID)
	if err != nil {
		return AttemptResult{}, err
	}

	now := s.now().UTC()
	status := AttemptSubmitted
	if s.overdue(*at, now) {
		// terlambat: jawaban kiriman terakhir diabaikan
		status = AttemptExpired
	} else {
		if err := validateAnswers(*a, req.Answers); err != nil {
			return AttemptResult{}, err
		}
		at.Answers = mergeAnswers(at.Answers, req.Answers)
	}

	f, err := s.finalize(ctx, tx, qtx, *a, at, status, now)
	if err != nil {
		return AttemptResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttemptResult{}, err
	}
	s.record(ctx, f)

	return s.result(*a, f.attempt, f.certification), nil
}

func (s *service) GetAttempt(ctx context.Context, companyID, actorID string, canManage bool, attemptID string) (AttemptDetail, error) {
	at, err := s.repo.FindAttempt(ctx, companyID, attemptID)
	if err != nil {
		return AttemptDetail{}, mapAttemptError(err)
	}
	if !canManage && at.EmployeeID.String() != actorID {
		return AttemptDetail{}, assessmenterrors.ErrAttemptNotFound
	}

	a, err := s.repo.FindByIDAndCompany(ctx, companyID, at.AssessmentID.String())
	if err != nil {
		return AttemptDetail{}, mapRepositoryError(err)
	}

	if !at.Finished() {
		v := s.view(*a, *at, s.now().UTC(), false)
		return AttemptDetail{View: &v}, nil
	}

	var cert *Certification
	if at.Passed {
		c, err := s.repo.FindCertificationByAttempt(ctx, companyID, attemptID)
		if err != nil && !isNotFound(err) {
			return AttemptDetail{}, err
		}
		cert = c
	}
	r := s.result(*a, *at, cert)
	return AttemptDetail{Result: &r}, nil
}

// ExpireOverdue closes in-progress attempts whose grace period ended before now.
func (s *service) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now = now.UTC()
	attempts, err := qtx.FindOverdueForUpdate(ctx, now.Add(-s.grace), overdueBatchSize)
	if err != nil {
		return 0, err
	}
	if len(attempts) == 0 {
		return 0, nil
	}

	assessments := make(map[uuid.UUID]*Assessment)
	closed := make([]finalized, 0, len(attempts))
	for i := range attempts {
		at := &attempts[i]
		a, ok := assessments[at.AssessmentID]
		if !ok {
			a, err = qtx.FindByIDAndCompany(ctx, at.CompanyID.String(), at.AssessmentID.String())
			if err != nil {
				return 0, err
			}
			assessments[at.AssessmentID] = a
		}
		f, err := s.finalize(ctx, tx, qtx, *a, at, AttemptExpired, now)
		if err != nil {
			return 0, err
		}
		closed = append(closed, f)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	s.record(ctx, closed...)
	return len(closed), nil
}

func (s *service) lockOwnAttempt(ctx context.Context, qtx Repository, companyID, employeeID, attemptID string) (*Attempt, *Assessment, error) {
	at, err := qtx.FindAttemptForUpdate(ctx, companyID, attemptID)
	if err != nil {
		return nil, nil, mapAttemptError(err)
	}
	if at.EmployeeID.String() != employeeID {
		return nil, nil, assessmenterrors.ErrAttemptNotFound
	}
	if at.Finished() {
		return nil, nil, assessmenterrors.ErrAttemptFinished
	}
	a, err := qtx.FindByIDAndCompany(ctx, companyID, at.AssessmentID.String())
	if err != nil {
		return nil, nil, mapRepositoryError(err)
	}
	return at, a, nil
}

func (s *service) overdue(at Attempt, now time.Time) bool {
	return !now.Before(at.ExpiresAt.Add(s.grace))
}

// finalize scores the attempt on its saved answers and awards the badge and
// certification when it passed. All writes go through tx.
func (s *service) finalize(ctx context.Context, tx *sql.Tx, qtx Repository, a Assessment, at *Attempt, status string, now time.Time) (finalized, error) {
	res := grade(a, at.Answers)

	at.Status = status
	at.SubmittedAt = &now
	at.Score = res.Score
	at.EarnedPoints = res.Earned
	at.TotalPoints = res.Total
	at.Passed = res.Passed

	if err := qtx.UpdateAttempt(ctx, at); err != nil {
		return finalized{}, err
	}

	f := finalized{attempt: *at, result: res}
	if !res.Passed {
		return f, nil
	}

	badge := &Badge{
		ID:           uuid.New(),
		CompanyID:    at.CompanyID,
		EmployeeID:   at.EmployeeID,
		AssessmentID: at.AssessmentID,
		AttemptID:    at.ID,
		BadgeName:    a.BadgeName,
		AwardedAt:    now,
	}
	if err := qtx.CreateBadge(ctx, badge); err != nil {
		return finalized{}, err
	}

	event := events.AssessmentCertifiedEvent{
		EventType:    events.AssessmentCertifiedType,
		CompanyID:    at.CompanyID.String(),
		EmployeeID:   at.EmployeeID.String(),
		AssessmentID: at.AssessmentID.String(),
		AttemptID:    at.ID.String(),
		BadgeName:    a.BadgeName,
		Score:        res.Score,
		OccurredAt:   now,
	}

	if a.CertificationValidityDays > 0 {
		cert := &Certification{
			ID:           uuid.New(),
			CompanyID:    at.CompanyID,
			EmployeeID:   at.EmployeeID,
			AssessmentID: at.AssessmentID,
			AttemptID:    at.ID,
			IssuedAt:     now,
			ExpiresAt:    now.AddDate(0, 0, a.CertificationValidityDays),
		}
		if err := qtx.CreateCertification(ctx, cert); err != nil {
			return finalized{}, err
		}
		f.certification = cert
		event.CertificationID = cert.ID.String()
		event.ExpiresAt = &cert.ExpiresAt
	}

	ev, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"assessment_attempt",
		at.ID.String(),
		event.EventType,
		events.AssessmentCertifiedTopic,
		event,
	)
	if err != nil {
		return finalized{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("certification outbox persist failed", zap.Error(err))
		return finalized{}, err
	}
	return f, nil
}

func (s *service) record(ctx context.Context, closed ...finalized) {
	l := contextutil.GetLogger(ctx, s.logger)
	for _, f := range closed {
		metrics.AssessmentAttempts.WithLabelValues(strings.ToLower(f.attempt.Status)).Inc()
		outcome := "failed"
		if f.result.Passed {
			outcome = "passed"
		}
		metrics.AssessmentAttempts.WithLabelValues(outcome).Inc()

		l.Info("assessment attempt finished",
			zap.String("attempt_id", f.attempt.ID.String()),
			zap.String("employee_id", f.attempt.EmployeeID.String()),
			zap.String("status", f.attempt.Status),
			zap.Int("score", f.result.Score),
			zap.Bool("passed", f.result.Passed),
		)
	}
}

func (s *service) view(a Assessment, at Attempt, now time.Time, resumed bool) AttemptView {
	remaining := int64(at.ExpiresAt.Sub(now) / time.Second)
	if remaining < 0 {
		remaining = 0
	}
	answers := map[string][]string(at.Answers)
	if answers == nil {
		answers = map[string][]string{}
	}
	return AttemptView{
		Attempt:          mapAttempt(at),
		Questions:        mapQuestions(a.Questions, false),
		Answers:          answers,
		RemainingSeconds: remaining,
		Resumed:          resumed,
	}
}

func (s *service) result(a Assessment, at Attempt, cert *Certification) AttemptResult {
	graded := grade(a, at.Answers)
	byID := make(map[string]questionResult, len(graded.Questions))
	for _, qr := range graded.Questions {
		byID[qr.QuestionID] = qr
	}

	results := make([]QuestionResultResponse, len(a.Questions))
	for i, q := range a.Questions {
		qr := byID[q.ID.String()]
		chosen := at.Answers[q.ID.String()]
		if chosen == nil {
			chosen = []string{}
		}
		correct := correctOptions(q)
		if correct == nil {
			correct = []string{}
		}
		results[i] = QuestionResultResponse{
			QuestionID:       q.ID.String(),
			Chosen:           chosen,
			CorrectOptionIDs: correct,
			Correct:          qr.Correct,
			EarnedPoints:     qr.Earned,
		}
	}

	resp := AttemptResult{
		Attempt:      mapAttempt(at),
		Results:      results,
		BadgeAwarded: at.Passed,
	}
	if cert != nil {
		c := mapCertification(*cert, s.now())
		resp.Certification = &c
	}
	return resp
}

// validateAnswers rejects unknown questions and options, and more than one
// choice on single-answer questions.
func validateAnswers(a Assessment, answers map[string][]string) error {
	questions := make(map[string]Question, len(a.Questions))
	for _, q := range a.Questions {
		questions[q.ID.String()] = q
	}

	for qid, chosen := range answers {
		q, ok := questions[qid]
		if !ok {
			return assessmenterrors.ErrInvalidAnswer
		}
		options := make(map[string]struct{}, len(q.Options))
		for _, o := range q.Options {
			options[o.ID.String()] = struct{}{}
		}
		for _, oid := range chosen {
			if _, ok := options[oid]; !ok {
				return assessmenterrors.ErrInvalidAnswer
			}
		}
		if q.Type != QuestionMulti && len(dedupe(chosen)) > 1 {
			return assessmenterrors.ErrInvalidAnswer
		}
	}
	return nil
}

func mergeAnswers(saved Answers, incoming map[string][]string) Answers {
	out := make(Answers, len(saved)+len(incoming))
	for k, v := range saved {
		out[k] = v
	}
	for k, v := range incoming {
		out[k] = dedupe(v)
	}
	return out
}
