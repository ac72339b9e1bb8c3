package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	leaveerrors "github.com/syrene4545/attendance-tracker-sub001/internal/leave/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (LeaveResponse, error)
	Approve(ctx context.Context, companyID, id, approverID string) (LeaveResponse, error)
	Reject(ctx context.Context, companyID, id, approverID string, req RejectLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID, id, employeeID string) (LeaveResponse, error)
	Balance(ctx context.Context, companyID, employeeID string, year int) (BalanceResponse, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	db     *sql.DB
	repo   Repository
	policy config.LeaveConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, policy config.LeaveConfig, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.L()
	}
	s := &service{
		db:     db,
		repo:   repo,
		policy: policy,
		now:    time.Now,
		logger: logger.Named("leave.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, companyID, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	days := WorkingDays(start, end)
	if days == 0 {
		return LeaveResponse{}, leaveerrors.ErrNoWorkingDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.LockEmployee(ctx, companyID, employeeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LeaveResponse{}, leaveerrors.ErrInvalidActorID
		}
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, employeeID, start, end)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	if req.LeaveType == TypeAnnual {
		bal, err := s.balance(ctx, qtx, companyID, employeeID, start.Year())
		if err != nil {
			return LeaveResponse{}, err
		}
		if days > bal.Remaining {
			l.Info("annual quota exceeded",
				zap.String("employee_id", employeeID),
				zap.Int("requested", days),
				zap.Int("remaining", bal.Remaining),
			)
			return LeaveResponse{}, leaveerrors.ErrQuotaExceeded
		}
	}

	leave := &Leave{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  days,
		Reason:     req.Reason,
		Status:     StatusPending,
	}
	if err := qtx.Create(ctx, leave); err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	l.Info("leave requested",
		zap.String("leave_id", leave.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", leave.LeaveType),
		zap.Int("total_days", days),
	)
	return mapToResponse(*leave), nil
}

func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, leaveerrors.ErrInvalidCompanyID
	}
	if !canReadAll {
		filter.EmployeeID = actorID
	}

	leaves, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]LeaveResponse, len(leaves))
	for i, lv := range leaves {
		res[i] = mapToResponse(lv)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, actorID string, canReadAll bool, id string) (LeaveResponse, error) {
	leave, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	// tanpa read_all, cuti orang lain diperlakukan seperti tidak ada
	if !canReadAll && leave.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*leave), nil
}

func (s *service) Approve(ctx context.Context, companyID, id, approverID string) (LeaveResponse, error) {
	return s.decide(ctx, companyID, id, approverID, func(lv *Leave, approver uuid.UUID, at time.Time) {
		lv.Status = StatusApproved
		lv.ApprovedBy = &approver
		lv.ApprovedAt = &at
	})
}

func (s *service) Reject(ctx context.Context, companyID, id, approverID string, req RejectLeaveRequest) (LeaveResponse, error) {
	return s.decide(ctx, companyID, id, approverID, func(lv *Leave, approver uuid.UUID, at time.Time) {
		reason := req.Reason
		lv.Status = StatusRejected
		lv.ApprovedBy = &approver
		lv.ApprovedAt = &at
		lv.RejectionReason = &reason
	})
}

func (s *service) decide(ctx context.Context, companyID, id, approverID string, apply func(*Leave, uuid.UUID, time.Time)) (LeaveResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leave, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if leave.EmployeeID == approverUUID {
		return LeaveResponse{}, leaveerrors.ErrSelfApproval
	}
	if leave.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	apply(leave, approverUUID, s.now().UTC())

	if err := qtx.Update(ctx, leave); err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	l.Info("leave decided",
		zap.String("leave_id", id),
		zap.String("status", leave.Status),
		zap.String("approver_id", approverID),
	)
	return mapToResponse(*leave), nil
}

func (s *service) Cancel(ctx context.Context, companyID, id, employeeID string) (LeaveResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leave, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if leave.EmployeeID.String() != employeeID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}
	if leave.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	leave.Status = StatusCancelled
	if err := qtx.Update(ctx, leave); err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	l.Info("leave cancelled", zap.String("leave_id", id))
	return mapToResponse(*leave), nil
}

func (s *service) Balance(ctx context.Context, companyID, employeeID string, year int) (BalanceResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidActorID
	}
	if year == 0 {
		year = s.now().Year()
	}
	return s.balance(ctx, s.repo, companyID, employeeID, year)
}

// balance reserves pending annual days so two open requests cannot spend the same quota.
func (s *service) balance(ctx context.Context, repo Repository, companyID, employeeID string, year int) (BalanceResponse, error) {
	used, err := repo.SumDays(ctx, companyID, employeeID, TypeAnnual, StatusApproved, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	pending, err := repo.SumDays(ctx, companyID, employeeID, TypeAnnual, StatusPending, year)
	if err != nil {
		return BalanceResponse{}, err
	}

	remaining := s.policy.AnnualQuota - used - pending
	if remaining < 0 {
		remaining = 0
	}
	return BalanceResponse{
		EmployeeID: employeeID,
		Year:       year,
		Quota:      s.policy.AnnualQuota,
		Used:       used,
		Pending:    pending,
		Remaining:  remaining,
	}, nil
}

func mapToResponse(lv Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              lv.ID.String(),
		CompanyID:       lv.CompanyID.String(),
		EmployeeID:      lv.EmployeeID.String(),
		LeaveType:       lv.LeaveType,
		StartDate:       lv.StartDate.Format(dateLayout),
		EndDate:         lv.EndDate.Format(dateLayout),
		TotalDays:       lv.TotalDays,
		Reason:          lv.Reason,
		Status:          lv.Status,
		RejectionReason: lv.RejectionReason,
		CreatedAt:       lv.CreatedAt.Format(time.RFC3339),
	}
	if lv.ApprovedBy != nil {
		v := lv.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if lv.ApprovedAt != nil {
		v := lv.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if lv.Employee != nil {
		resp.EmployeeName = lv.Employee.FullName
	}
	return resp
}
