package assessment

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	assessmenterrors "github.com/syrene4545/attendance-tracker-sub001/internal/assessment/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=assessment_service.go -destination=mock/assessment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateAssessmentRequest) (AssessmentResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateAssessmentRequest) (AssessmentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	GetAll(ctx context.Context, companyID string, canManage bool, filter ListFilter) ([]AssessmentResponse, error)
	GetByID(ctx context.Context, companyID string, canManage bool, id string) (AssessmentResponse, error)
	AddQuestion(ctx context.Context, companyID, id string, req AddQuestionRequest) (QuestionResponse, error)
	DeleteQuestion(ctx context.Context, companyID, id, questionID string) error
	Publish(ctx context.Context, companyID, id string) (AssessmentResponse, error)
	Archive(ctx context.Context, companyID, id string) (AssessmentResponse, error)
	ListAttempts(ctx context.Context, companyID, id string) ([]AttemptResponse, error)

	Start(ctx context.Context, companyID, employeeID, id string) (AttemptView, error)
	SaveAnswers(ctx context.Context, companyID, employeeID, attemptID string, req AnswersRequest) (AttemptView, error)
	Submit(ctx context.Context, companyID, employeeID, attemptID string, req AnswersRequest) (AttemptResult, error)
	GetAttempt(ctx context.Context, companyID, actorID string, canManage bool, attemptID string) (AttemptDetail, error)
	ListMyAttempts(ctx context.Context, companyID, employeeID string) ([]AttemptResponse, error)
	ListBadges(ctx context.Context, companyID, employeeID string) ([]BadgeResponse, error)
	ListCertifications(ctx context.Context, companyID, employeeID string) ([]CertificationResponse, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

type ServiceOption func(*service)

func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) { s.now = now }
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	grace  time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	cfg config.AssessmentConfig,
	logger *zap.Logger,
	opts ...ServiceOption,
) Service {
	if logger == nil {
		logger = zap.L()
	}
	s := &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		grace:  cfg.Grace,
		now:    time.Now,
		logger: logger.Named("assessment.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateAssessmentRequest) (AssessmentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidActorID
	}

	a := &Assessment{
		ID:                        uuid.New(),
		CompanyID:                 companyUUID,
		Title:                     strings.TrimSpace(req.Title),
		Description:               req.Description,
		DurationMinutes:           req.DurationMinutes,
		PassScore:                 req.PassScore,
		MaxAttempts:               req.MaxAttempts,
		BadgeName:                 strings.TrimSpace(req.BadgeName),
		CertificationValidityDays: req.CertificationValidityDays,
		Status:                    StatusDraft,
		CreatedBy:                 actorUUID,
	}

	if req.SOPID != nil {
		sopUUID, err := uuid.Parse(*req.SOPID)
		if err != nil {
			return AssessmentResponse{}, assessmenterrors.ErrSOPNotFound
		}
		ok, err := s.repo.SOPExists(ctx, companyID, sopUUID.String())
		if err != nil {
			return AssessmentResponse{}, err
		}
		if !ok {
			return AssessmentResponse{}, assessmenterrors.ErrSOPNotFound
		}
		a.SOPID = &sopUUID
	}

	if err := s.repo.CreateAssessment(ctx, a); err != nil {
		return AssessmentResponse{}, mapRepositoryError(err)
	}

	l.Info("assessment created",
		zap.String("assessment_id", a.ID.String()),
		zap.Int("duration_minutes", a.DurationMinutes),
	)
	return mapAssessment(*a, true), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateAssessmentRequest) (AssessmentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	err := s.withDraft(ctx, companyID, id, func(qtx Repository, a *Assessment) error {
		if req.Title != nil {
			a.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			a.Description = *req.Description
		}
		if req.DurationMinutes != nil {
			a.DurationMinutes = *req.DurationMinutes
		}
		if req.PassScore != nil {
			a.PassScore = *req.PassScore
		}
		if req.MaxAttempts != nil {
			a.MaxAttempts = *req.MaxAttempts
		}
		if req.BadgeName != nil {
			a.BadgeName = strings.TrimSpace(*req.BadgeName)
		}
		if req.CertificationValidityDays != nil {
			a.CertificationValidityDays = *req.CertificationValidityDays
		}
		return qtx.UpdateAssessment(ctx, a)
	})
	if err != nil {
		return AssessmentResponse{}, err
	}

	l.Info("assessment updated", zap.String("assessment_id", id))
	return s.GetByID(ctx, companyID, true, id)
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	err := s.withDraft(ctx, companyID, id, func(qtx Repository, a *Assessment) error {
		return qtx.DeleteAssessment(ctx, a)
	})
	if err != nil {
		return err
	}

	l.Info("assessment deleted", zap.String("assessment_id", id))
	return nil
}

func (s *service) GetAll(ctx context.Context, companyID string, canManage bool, filter ListFilter) ([]AssessmentResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, assessmenterrors.ErrInvalidCompanyID
	}
	if !canManage {
		filter.Status = StatusPublished
	}

	list, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]AssessmentResponse, len(list))
	for i, a := range list {
		res[i] = mapAssessment(a, false)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID string, canManage bool, id string) (AssessmentResponse, error) {
	a, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AssessmentResponse{}, mapRepositoryError(err)
	}
	if !canManage && a.Status != StatusPublished {
		return AssessmentResponse{}, assessmenterrors.ErrAssessmentNotFound
	}
	return mapAssessment(*a, canManage), nil
}

func (s *service) AddQuestion(ctx context.Context, companyID, id string, req AddQuestionRequest) (QuestionResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := validateQuestion(req); err != nil {
		return QuestionResponse{}, err
	}

	var q *Question
	err := s.withDraft(ctx, companyID, id, func(qtx Repository, a *Assessment) error {
		count, err := qtx.CountQuestions(ctx, id)
		if err != nil {
			return err
		}

		q = &Question{
			ID:           uuid.New(),
			AssessmentID: a.ID,
			CompanyID:    a.CompanyID,
			Type:         req.Type,
			Prompt:       strings.TrimSpace(req.Prompt),
			Points:       req.Points,
			Position:     int(count),
			Options:      make([]Option, len(req.Options)),
		}
		for i, o := range req.Options {
			q.Options[i] = Option{
				ID:        uuid.New(),
				Label:     strings.TrimSpace(o.Label),
				IsCorrect: o.IsCorrect,
				Position:  i,
			}
		}
		return qtx.CreateQuestion(ctx, q)
	})
	if err != nil {
		return QuestionResponse{}, err
	}

	l.Info("question added",
		zap.String("assessment_id", id),
		zap.String("question_id", q.ID.String()),
		zap.String("type", q.Type),
	)
	return mapQuestion(*q, true), nil
}

func (s *service) DeleteQuestion(ctx context.Context, companyID, id, questionID string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(questionID); err != nil {
		return assessmenterrors.ErrQuestionNotFound
	}

	err := s.withDraft(ctx, companyID, id, func(qtx Repository, a *Assessment) error {
		n, err := qtx.DeleteQuestion(ctx, id, questionID)
		if err != nil {
			return err
		}
		if n == 0 {
			return assessmenterrors.ErrQuestionNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("question deleted", zap.String("assessment_id", id), zap.String("question_id", questionID))
	return nil
}

func (s *service) Publish(ctx context.Context, companyID, id string) (AssessmentResponse, error) {
	return s.transition(ctx, companyID, id, func(qtx Repository, a *Assessment) error {
		if a.Status != StatusDraft {
			return assessmenterrors.ErrInvalidStatusTransition
		}
		count, err := qtx.CountQuestions(ctx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return assessmenterrors.ErrNoQuestions
		}
		now := s.now().UTC()
		a.Status = StatusPublished
		a.PublishedAt = &now
		return nil
	})
}

func (s *service) Archive(ctx context.Context, companyID, id string) (AssessmentResponse, error) {
	return s.transition(ctx, companyID, id, func(_ Repository, a *Assessment) error {
		if a.Status == StatusArchived {
			return assessmenterrors.ErrInvalidStatusTransition
		}
		a.Status = StatusArchived
		return nil
	})
}

func (s *service) transition(ctx context.Context, companyID, id string, apply func(Repository, *Assessment) error) (AssessmentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssessmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return AssessmentResponse{}, mapRepositoryError(err)
	}
	if err := apply(qtx, a); err != nil {
		return AssessmentResponse{}, err
	}
	if err := qtx.UpdateAssessment(ctx, a); err != nil {
		return AssessmentResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AssessmentResponse{}, err
	}

	l.Info("assessment status changed",
		zap.String("assessment_id", id),
		zap.String("status", a.Status),
	)
	return mapAssessment(*a, true), nil
}

// withDraft runs fn on the locked assessment when it is still editable.
func (s *service) withDraft(ctx context.Context, companyID, id string, fn func(Repository, *Assessment) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if a.Status != StatusDraft {
		return assessmenterrors.ErrAssessmentLocked
	}
	if err := fn(qtx, a); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

func (s *service) ListAttempts(ctx context.Context, companyID, id string) ([]AttemptResponse, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return nil, mapRepositoryError(err)
	}
	attempts, err := s.repo.FindAttempts(ctx, companyID, AttemptFilter{AssessmentID: id})
	if err != nil {
		return nil, err
	}
	return mapAttempts(attempts), nil
}

func (s *service) ListMyAttempts(ctx context.Context, companyID, employeeID string) ([]AttemptResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, assessmenterrors.ErrInvalidActorID
	}
	attempts, err := s.repo.FindAttempts(ctx, companyID, AttemptFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, err
	}
	return mapAttempts(attempts), nil
}

func (s *service) ListBadges(ctx context.Context, companyID, employeeID string) ([]BadgeResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, assessmenterrors.ErrInvalidActorID
	}
	badges, err := s.repo.FindBadges(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]BadgeResponse, len(badges))
	for i, b := range badges {
		res[i] = BadgeResponse{
			ID:           b.ID.String(),
			AssessmentID: b.AssessmentID.String(),
			AttemptID:    b.AttemptID.String(),
			BadgeName:    b.BadgeName,
			AwardedAt:    b.AwardedAt.Format(time.RFC3339),
		}
	}
	return res, nil
}

func (s *service) ListCertifications(ctx context.Context, companyID, employeeID string) ([]CertificationResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, assessmenterrors.ErrInvalidActorID
	}
	certs, err := s.repo.FindCertifications(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	res := make([]CertificationResponse, len(certs))
	for i, c := range certs {
		res[i] = mapCertification(c, now)
	}
	return res, nil
}

func validateQuestion(req AddQuestionRequest) error {
	if req.Points <= 0 || len(req.Options) < 2 {
		return assessmenterrors.ErrInvalidQuestion
	}
	correct := 0
	for _, o := range req.Options {
		if strings.TrimSpace(o.Label) == "" {
			return assessmenterrors.ErrInvalidQuestion
		}
		if o.IsCorrect {
			correct++
		}
	}

	switch req.Type {
	case QuestionSingle:
		if correct != 1 {
			return assessmenterrors.ErrInvalidQuestion
		}
	case QuestionTrueFalse:
		if correct != 1 || len(req.Options) != 2 {
			return assessmenterrors.ErrInvalidQuestion
		}
	case QuestionMulti:
		if correct < 1 {
			return assessmenterrors.ErrInvalidQuestion
		}
	default:
		return assessmenterrors.ErrInvalidQuestion
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func mapAssessment(a Assessment, withQuestions bool) AssessmentResponse {
	resp := AssessmentResponse{
		ID:                        a.ID.String(),
		CompanyID:                 a.CompanyID.String(),
		Title:                     a.Title,
		Description:               a.Description,
		DurationMinutes:           a.DurationMinutes,
		PassScore:                 a.PassScore,
		MaxAttempts:               a.MaxAttempts,
		BadgeName:                 a.BadgeName,
		CertificationValidityDays: a.CertificationValidityDays,
		Status:                    a.Status,
		QuestionCount:             len(a.Questions),
	}
	if a.SOPID != nil {
		v := a.SOPID.String()
		resp.SOPID = &v
	}
	if a.PublishedAt != nil {
		v := a.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &v
	}
	if withQuestions {
		resp.Questions = mapQuestions(a.Questions, true)
	}
	return resp
}

// mapQuestions leaves is_correct out unless reveal is set.
func mapQuestions(qs []Question, reveal bool) []QuestionResponse {
	res := make([]QuestionResponse, len(qs))
	for i, q := range qs {
		res[i] = mapQuestion(q, reveal)
	}
	return res
}

func mapQuestion(q Question, reveal bool) QuestionResponse {
	resp := QuestionResponse{
		ID:      q.ID.String(),
		Type:    q.Type,
		Prompt:  q.Prompt,
		Points:  q.Points,
		Options: make([]OptionResponse, len(q.Options)),
	}
	for i, o := range q.Options {
		resp.Options[i] = OptionResponse{ID: o.ID.String(), Label: o.Label}
		if reveal {
			correct := o.IsCorrect
			resp.Options[i].IsCorrect = &correct
		}
	}
	return resp
}

func mapAttempt(at Attempt) AttemptResponse {
	resp := AttemptResponse{
		ID:           at.ID.String(),
		AssessmentID: at.AssessmentID.String(),
		EmployeeID:   at.EmployeeID.String(),
		Status:       at.Status,
		StartedAt:    at.StartedAt.Format(time.RFC3339),
		ExpiresAt:    at.ExpiresAt.Format(time.RFC3339),
		TotalPoints:  at.TotalPoints,
	}
	if at.Employee != nil {
		resp.EmployeeName = at.Employee.FullName
	}
	if at.Finished() {
		score, earned, passed := at.Score, at.EarnedPoints, at.Passed
		resp.Score = &score
		resp.EarnedPoints = &earned
		resp.Passed = &passed
	}
	if at.SubmittedAt != nil {
		v := at.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &v
	}
	return resp
}

func mapAttempts(attempts []Attempt) []AttemptResponse {
	res := make([]AttemptResponse, len(attempts))
	for i, at := range attempts {
		res[i] = mapAttempt(at)
	}
	return res
}

func mapCertification(c Certification, now time.Time) CertificationResponse {
	return CertificationResponse{
		ID:           c.ID.String(),
		AssessmentID: c.AssessmentID.String(),
		AttemptID:    c.AttemptID.String(),
		IssuedAt:     c.IssuedAt.Format(time.RFC3339),
		ExpiresAt:    c.ExpiresAt.Format(time.RFC3339),
		Valid:        now.Before(c.ExpiresAt),
	}
}
