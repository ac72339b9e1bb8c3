package sop

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"
	soperrors "github.com/syrene4545/attendance-tracker-sub001/internal/sop/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const publishedTTL = time.Hour

func PublishedCacheKey(companyID, id string) string {
	return "sop:" + companyID + ":" + id
}

//go:generate mockgen -source=sop_service.go -destination=mock/sop_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateSOPRequest) (SOPResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateSOPRequest) (SOPResponse, error)
	Publish(ctx context.Context, companyID, id string) (SOPResponse, error)
	Archive(ctx context.Context, companyID, id string) (SOPResponse, error)
	GetAll(ctx context.Context, companyID string, canManage bool, filter ListFilter) ([]SOPResponse, error)
	GetByID(ctx context.Context, companyID string, canManage bool, id string) (SOPResponse, error)
	GetPublished(ctx context.Context, companyID, id string) (PublishedSOPResponse, error)
	Acknowledge(ctx context.Context, companyID, employeeID, id string) (AcknowledgementResponse, error)
	Acknowledgements(ctx context.Context, companyID, id string) ([]AcknowledgementResponse, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.L()
	}
	s := &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		now:    time.Now,
		logger: logger.Named("sop.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateSOPRequest) (SOPResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SOPResponse{}, soperrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SOPResponse{}, soperrors.ErrInvalidActorID
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Content) == "" {
		return SOPResponse{}, soperrors.ErrEmptyContent
	}
	category := strings.ToUpper(strings.TrimSpace(req.Category))
	if category == "" {
		category = "GENERAL"
	}

	doc := &SOP{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Title:     title,
		Category:  category,
		Content:   req.Content,
		Version:   1,
		Status:    StatusDraft,
		CreatedBy: actorUUID,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return SOPResponse{}, mapRepositoryError(err)
	}

	l.Info("sop created", zap.String("sop_id", doc.ID.String()))
	return mapToResponse(*doc), nil
}

// mutate runs fn on a locked row and drops the published cache entry after commit.
func (s *service) mutate(ctx context.Context, companyID, id string, fn func(*SOP) error) (*SOP, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	doc, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if doc.Status == StatusArchived {
		return nil, soperrors.ErrSOPArchived
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := qtx.Update(ctx, doc); err != nil {
		return nil, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidate(ctx, companyID, id)
	return doc, nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateSOPRequest) (SOPResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	doc, err := s.mutate(ctx, companyID, id, func(doc *SOP) error {
		if req.Title != nil {
			doc.Title = strings.TrimSpace(*req.Title)
		}
		if req.Category != nil {
			doc.Category = strings.ToUpper(strings.TrimSpace(*req.Category))
		}
		if req.Content != nil {
			doc.Content = *req.Content
		}
		if doc.Title == "" || strings.TrimSpace(doc.Content) == "" {
			return soperrors.ErrEmptyContent
		}
		// revisi dokumen yang sudah terbit jadi draft versi baru
		if doc.Status == StatusPublished {
			doc.Version++
			doc.Status = StatusDraft
			doc.PublishedAt = nil
		}
		return nil
	})
	if err != nil {
		return SOPResponse{}, err
	}

	l.Info("sop updated", zap.String("sop_id", id), zap.Int("version", doc.Version))
	return mapToResponse(*doc), nil
}

func (s *service) Publish(ctx context.Context, companyID, id string) (SOPResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	doc, err := s.mutate(ctx, companyID, id, func(doc *SOP) error {
		if doc.Status == StatusPublished {
			return soperrors.ErrAlreadyPublished
		}
		now := s.now().UTC()
		doc.Status = StatusPublished
		doc.PublishedAt = &now
		return nil
	})
	if err != nil {
		return SOPResponse{}, err
	}

	l.Info("sop published", zap.String("sop_id", id), zap.Int("version", doc.Version))
	return mapToResponse(*doc), nil
}

func (s *service) Archive(ctx context.Context, companyID, id string) (SOPResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	doc, err := s.mutate(ctx, companyID, id, func(doc *SOP) error {
		doc.Status = StatusArchived
		return nil
	})
	if err != nil {
		return SOPResponse{}, err
	}

	l.Info("sop archived", zap.String("sop_id", id))
	return mapToResponse(*doc), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, canManage bool, filter ListFilter) ([]SOPResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, soperrors.ErrInvalidCompanyID
	}
	if !canManage {
		filter.Status = StatusPublished
	}

	docs, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]SOPResponse, len(docs))
	for i, d := range docs {
		res[i] = mapToResponse(d)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID string, canManage bool, id string) (SOPResponse, error) {
	doc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SOPResponse{}, mapRepositoryError(err)
	}
	if !canManage && doc.Status != StatusPublished {
		return SOPResponse{}, soperrors.ErrSOPNotFound
	}
	return mapToResponse(*doc), nil
}

func (s *service) GetPublished(ctx context.Context, companyID, id string) (PublishedSOPResponse, error) {
	cacheKey := PublishedCacheKey(companyID, id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp PublishedSOPResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		doc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if doc.Status != StatusPublished || doc.PublishedAt == nil {
			return nil, soperrors.ErrSOPNotFound
		}

		resp := PublishedSOPResponse{
			ID:          doc.ID.String(),
			Title:       doc.Title,
			Category:    doc.Category,
			Content:     doc.Content,
			Version:     doc.Version,
			PublishedAt: doc.PublishedAt.Format(time.RFC3339),
		}
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(data), publishedTTL).Err(); err != nil {
					s.logger.Warn("cache sop failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return PublishedSOPResponse{}, err
	}

	return v.(PublishedSOPResponse), nil
}

func (s *service) Acknowledge(ctx context.Context, companyID, employeeID, id string) (AcknowledgementResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AcknowledgementResponse{}, soperrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AcknowledgementResponse{}, soperrors.ErrInvalidActorID
	}

	doc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AcknowledgementResponse{}, mapRepositoryError(err)
	}
	if doc.Status != StatusPublished {
		return AcknowledgementResponse{}, soperrors.ErrNotPublished
	}

	ack := &Acknowledgement{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		SOPID:          doc.ID,
		Version:        doc.Version,
		EmployeeID:     employeeUUID,
		AcknowledgedAt: s.now().UTC(),
	}
	created, err := s.repo.CreateAcknowledgement(ctx, ack)
	if err != nil {
		return AcknowledgementResponse{}, err
	}
	if !created {
		existing, err := s.repo.FindAcknowledgement(ctx, id, doc.Version, employeeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return AcknowledgementResponse{}, err
		}
		if existing != nil {
			ack = existing
		}
	} else {
		l.Info("sop acknowledged",
			zap.String("sop_id", id),
			zap.Int("version", doc.Version),
			zap.String("employee_id", employeeID),
		)
	}

	return mapAcknowledgement(*ack), nil
}

func (s *service) Acknowledgements(ctx context.Context, companyID, id string) ([]AcknowledgementResponse, error) {
	doc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	acks, err := s.repo.FindAcknowledgements(ctx, companyID, id, doc.Version)
	if err != nil {
		return nil, err
	}

	res := make([]AcknowledgementResponse, len(acks))
	for i, a := range acks {
		res[i] = mapAcknowledgement(a)
	}
	return res, nil
}

func (s *service) invalidate(ctx context.Context, companyID, id string) {
	if s.rdb == nil {
		return
	}
	key := PublishedCacheKey(companyID, id)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("invalidate sop cache failed", zap.String("key", key), zap.Error(err))
	}
}

func mapToResponse(doc SOP) SOPResponse {
	resp := SOPResponse{
		ID:        doc.ID.String(),
		CompanyID: doc.CompanyID.String(),
		Title:     doc.Title,
		Category:  doc.Category,
		Content:   doc.Content,
		Version:   doc.Version,
		Status:    doc.Status,
		CreatedBy: doc.CreatedBy.String(),
		UpdatedAt: doc.UpdatedAt.Format(time.RFC3339),
	}
	if doc.PublishedAt != nil {
		v := doc.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &v
	}
	return resp
}

func mapAcknowledgement(a Acknowledgement) AcknowledgementResponse {
	resp := AcknowledgementResponse{
		SOPID:          a.SOPID.String(),
		Version:        a.Version,
		EmployeeID:     a.EmployeeID.String(),
		AcknowledgedAt: a.AcknowledgedAt.Format(time.RFC3339),
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}
