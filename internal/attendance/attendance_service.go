package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "github.com/syrene4545/attendance-tracker-sub001/internal/attendance/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/metrics"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	GetToday(ctx context.Context, companyID, employeeID string) (*AttendanceResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]AttendanceResponse, error)
	Summary(ctx context.Context, companyID, employeeID, month string) (SummaryResponse, error)
	Correct(ctx context.Context, companyID, id, correctedBy string, req CorrectAttendanceRequest) (AttendanceResponse, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	db     *sql.DB
	repo   Repository
	policy config.AttendanceConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, policy config.AttendanceConfig, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.L()
	}
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	s := &service{
		db:     db,
		repo:   repo,
		policy: policy,
		now:    time.Now,
		logger: logger.Named("attendance.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// workDate is the local calendar date of t, as midnight UTC so it compares cleanly with DATE columns.
func (s *service) workDate(t time.Time) time.Time {
	local := t.In(s.policy.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// statusFor reports LATE when clockIn is past work start plus grace on the given work date.
func (s *service) statusFor(workDate, clockIn time.Time) string {
	loc := s.policy.Location
	deadline := time.Date(workDate.Year(), workDate.Month(), workDate.Day(),
		s.policy.WorkStartHour, s.policy.WorkStartMinute, 0, 0, loc).
		Add(time.Duration(s.policy.GraceMinutes) * time.Minute)
	if clockIn.In(loc).After(deadline) {
		return StatusLate
	}
	return StatusPresent
}

func (s *service) ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err1 := uuid.Parse(companyID)
	employeeUUID, err2 := uuid.Parse(employeeID)
	if err1 != nil || err2 != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidIdentity
	}

	now := s.now().UTC()
	today := s.workDate(now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	source := req.Source
	if source == "" {
		source = SourceWeb
	}

	row := &AttendanceLog{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		EmployeeID:  employeeUUID,
		WorkDate:    today,
		ClockIn:     now,
		ClockInLat:  req.Latitude,
		ClockInLong: req.Longitude,
		Status:      s.statusFor(today, now),
		Source:      source,
		Notes:       req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	metrics.AttendanceClockEvents.WithLabelValues("clock_in").Inc()
	l.Info("clock in",
		zap.String("employee_id", employeeID),
		zap.String("work_date", today.Format(dateLayout)),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	now := s.now().UTC()
	today := s.workDate(now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDateForUpdate(ctx, companyID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotClockedIn
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	row.ClockOutLat = req.Latitude
	row.ClockOutLong = req.Longitude
	row.WorkMinutes = minutesBetween(row.ClockIn, now)
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	metrics.AttendanceClockEvents.WithLabelValues("clock_out").Inc()
	l.Info("clock out", zap.String("employee_id", employeeID), zap.Int("work_minutes", row.WorkMinutes))
	return mapToResponse(*row), nil
}

// GetToday returns nil without error when the employee has not clocked in yet.
func (s *service) GetToday(ctx context.Context, companyID, employeeID string) (*AttendanceResponse, error) {
	row, err := s.repo.FindByEmployeeAndDate(ctx, companyID, employeeID, s.workDate(s.now()))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	resp := mapToResponse(*row)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]AttendanceResponse, error) {
	q, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	if !canReadAll {
		if _, err := uuid.Parse(actorID); err != nil {
			return nil, attendanceerrors.ErrInvalidIdentity
		}
		q.EmployeeID = actorID
	}

	rows, err := s.repo.FindAll(ctx, companyID, q)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Summary(ctx context.Context, companyID, employeeID, month string) (SummaryResponse, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return SummaryResponse{}, attendanceerrors.ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)

	rows, err := s.repo.FindAll(ctx, companyID, Query{From: &start, To: &end, EmployeeID: employeeID})
	if err != nil {
		return SummaryResponse{}, err
	}

	summary := SummaryResponse{EmployeeID: employeeID, Month: month}
	for _, r := range rows {
		summary.DaysPresent++
		if r.Status == StatusLate {
			summary.DaysLate++
		}
		summary.TotalWorkMinutes += r.WorkMinutes
	}
	return summary, nil
}

// Correct overwrites both timestamps of a log and recomputes its status and minutes.
func (s *service) Correct(ctx context.Context, companyID, id, correctedBy string, req CorrectAttendanceRequest) (AttendanceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	clockIn, err1 := time.Parse(time.RFC3339, req.ClockIn)
	clockOut, err2 := time.Parse(time.RFC3339, req.ClockOut)
	if err1 != nil || err2 != nil || !clockOut.After(clockIn) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCorrection
	}
	correctorUUID, err := uuid.Parse(correctedBy)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidIdentity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	clockIn, clockOut = clockIn.UTC(), clockOut.UTC()
	row.ClockIn = clockIn
	row.ClockOut = &clockOut
	row.Status = s.statusFor(row.WorkDate, clockIn)
	row.WorkMinutes = minutesBetween(clockIn, clockOut)
	row.Source = SourceAdmin
	row.CorrectedBy = &correctorUUID
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	l.Info("attendance corrected",
		zap.String("attendance_id", id),
		zap.String("corrected_by", correctedBy),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func parseFilter(f ListFilter) (Query, error) {
	q := Query{EmployeeID: f.EmployeeID, Status: f.Status}
	if f.From != "" {
		t, err := time.Parse(dateLayout, f.From)
		if err != nil {
			return Query{}, attendanceerrors.ErrInvalidDateRange
		}
		q.From = &t
	}
	if f.To != "" {
		t, err := time.Parse(dateLayout, f.To)
		if err != nil {
			return Query{}, attendanceerrors.ErrInvalidDateRange
		}
		q.To = &t
	}
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return Query{}, attendanceerrors.ErrInvalidDateRange
	}
	return q, nil
}

func minutesBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / time.Minute)
}

func mapToResponse(a AttendanceLog) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID.String(),
		CompanyID:    a.CompanyID.String(),
		EmployeeID:   a.EmployeeID.String(),
		WorkDate:     a.WorkDate.Format(dateLayout),
		ClockIn:      a.ClockIn.Format(time.RFC3339),
		ClockInLat:   a.ClockInLat,
		ClockInLong:  a.ClockInLong,
		ClockOutLat:  a.ClockOutLat,
		ClockOutLong: a.ClockOutLong,
		Status:       a.Status,
		Source:       a.Source,
		WorkMinutes:  a.WorkMinutes,
		Notes:        a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if a.CorrectedBy != nil {
		v := a.CorrectedBy.String()
		resp.CorrectedBy = &v
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}
