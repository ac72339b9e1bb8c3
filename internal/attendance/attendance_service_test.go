package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "github.com/syrene4545/attendance-tracker-sub001/internal/attendance/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                func(ctx context.Context, a *AttendanceLog) error
	findByEmployeeAndDateFn func(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error)
	findByIDFn              func(ctx context.Context, companyID, id string) (*AttendanceLog, error)
	findAllFn               func(ctx context.Context, companyID string, q Query) ([]AttendanceLog, error)
	updateFn                func(ctx context.Context, a *AttendanceLog) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, a *AttendanceLog) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error) {
	return f.findByEmployeeAndDateFn(ctx, companyID, employeeID, date)
}
func (f *fakeRepo) FindByEmployeeAndDateForUpdate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error) {
	return f.findByEmployeeAndDateFn(ctx, companyID, employeeID, date)
}
func (f *fakeRepo) FindByIDForUpdate(ctx context.Context, companyID, id string) (*AttendanceLog, error) {
	return f.findByIDFn(ctx, companyID, id)
}
func (f *fakeRepo) FindAll(ctx context.Context, companyID string, q Query) ([]AttendanceLog, error) {
	return f.findAllFn(ctx, companyID, q)
}
func (f *fakeRepo) Update(ctx context.Context, a *AttendanceLog) error { return f.updateFn(ctx, a) }

func jakartaPolicy(t *testing.T) config.AttendanceConfig {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return config.AttendanceConfig{WorkStartHour: 9, WorkStartMinute: 0, GraceMinutes: 15, Location: loc}
}

// memoryRepo menyimpan satu baris supaya clock-in lalu clock-out bisa diuji berurutan.
func memoryRepo() (*fakeRepo, *AttendanceLog) {
	saved := &AttendanceLog{}
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *AttendanceLog) error { *saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *AttendanceLog) error { *saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error) {
		if saved.ID == uuid.Nil || !saved.WorkDate.Equal(date) {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *saved
		return &cp, nil
	}
	return repo, saved
}

func TestService_ClockInAndClockOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 2, 10, 0, 0, time.UTC) // 09:10 WIB
	repo, saved := memoryRepo()
	svc := NewService(db, repo, jakartaPolicy(t), nil, WithClock(func() time.Time { return now }))

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.ClockIn(ctx, companyID, employeeID, ClockInRequest{Source: SourceMobile})
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, inResp.Status)
	assert.Equal(t, "2026-03-02", inResp.WorkDate)
	assert.Equal(t, SourceMobile, saved.Source)

	now = now.Add(8*time.Hour + 30*time.Minute)
	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.ClockOut(ctx, companyID, employeeID, ClockOutRequest{})
	require.NoError(t, err)
	assert.NotNil(t, outResp.ClockOut)
	assert.Equal(t, 510, outResp.WorkMinutes)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.ClockOut(ctx, companyID, employeeID, ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedOut)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_LateAfterGrace(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 3, 2, 2, 16, 0, 0, time.UTC) // 09:16 WIB
	repo, _ := memoryRepo()
	svc := NewService(db, repo, jakartaPolicy(t), nil, WithClock(func() time.Time { return now }))

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockIn(context.Background(), uuid.New().String(), uuid.New().String(), ClockInRequest{})

	require.NoError(t, err)
	assert.Equal(t, StatusLate, resp.Status)
	assert.Equal(t, SourceWeb, resp.Source)
}

func TestService_ClockIn_UsesLocalWorkDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	now := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC) // 01:30 WIB keesokan harinya
	repo, _ := memoryRepo()
	svc := NewService(db, repo, jakartaPolicy(t), nil, WithClock(func() time.Time { return now }))

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockIn(context.Background(), uuid.New().String(), uuid.New().String(), ClockInRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-03", resp.WorkDate)
	assert.Equal(t, StatusPresent, resp.Status)
}

func TestService_ClockIn_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceLog, error) {
		return &AttendanceLog{ID: uuid.New()}, nil
	}

	svc := NewService(db, repo, jakartaPolicy(t), nil)
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(context.Background(), uuid.New().String(), uuid.New().String(), ClockInRequest{})

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockOut_WithoutClockIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := memoryRepo()
	svc := NewService(db, repo, jakartaPolicy(t), nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(context.Background(), uuid.New().String(), uuid.New().String(), ClockOutRequest{})

	assert.ErrorIs(t, err, attendanceerrors.ErrNotClockedIn)
}

func TestService_GetToday(t *testing.T) {
	repo, _ := memoryRepo()
	svc := NewService(nil, repo, jakartaPolicy(t), nil)

	resp, err := svc.GetToday(context.Background(), "c-1", "e-1")

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestService_GetAll_ScopesToActorWithoutReadAll(t *testing.T) {
	actorID := uuid.New().String()
	var got Query
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, companyID string, q Query) ([]AttendanceLog, error) {
			got = q
			return []AttendanceLog{{ID: uuid.New()}}, nil
		},
	}
	svc := NewService(nil, repo, jakartaPolicy(t), nil)

	_, err := svc.GetAll(context.Background(), "c-1", actorID, false, ListFilter{EmployeeID: "someone-else", From: "2026-03-01", To: "2026-03-31"})
	require.NoError(t, err)
	assert.Equal(t, actorID, got.EmployeeID)
	require.NotNil(t, got.From)
	assert.Equal(t, "2026-03-01", got.From.Format(dateLayout))

	_, err = svc.GetAll(context.Background(), "c-1", actorID, true, ListFilter{EmployeeID: "someone-else"})
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got.EmployeeID)

	_, err = svc.GetAll(context.Background(), "c-1", actorID, true, ListFilter{From: "2026-03-31", To: "2026-03-01"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
}

func TestService_Summary(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, companyID string, q Query) ([]AttendanceLog, error) {
			assert.Equal(t, "2026-02-01", q.From.Format(dateLayout))
			assert.Equal(t, "2026-02-28", q.To.Format(dateLayout))
			return []AttendanceLog{
				{Status: StatusPresent, WorkMinutes: 480},
				{Status: StatusLate, WorkMinutes: 450},
				{Status: StatusPresent, WorkMinutes: 0},
			}, nil
		},
	}
	svc := NewService(nil, repo, jakartaPolicy(t), nil)

	summary, err := svc.Summary(context.Background(), "c-1", "e-1", "2026-02")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.DaysPresent)
	assert.Equal(t, 1, summary.DaysLate)
	assert.Equal(t, 930, summary.TotalWorkMinutes)

	_, err = svc.Summary(context.Background(), "c-1", "e-1", "Feb 2026")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonth)
}

func TestService_Correct(t *testing.T) {
	policy := jakartaPolicy(t)
	workDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	adminID := uuid.New().String()

	t.Run("recomputes status and minutes", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		row := &AttendanceLog{ID: uuid.New(), WorkDate: workDate, Status: StatusLate, Source: SourceWeb}
		var updated AttendanceLog
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, companyID, id string) (*AttendanceLog, error) { return row, nil },
			updateFn:   func(ctx context.Context, a *AttendanceLog) error { updated = *a; return nil },
		}
		svc := NewService(db, repo, policy, nil)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Correct(context.Background(), "c-1", row.ID.String(), adminID, CorrectAttendanceRequest{
			ClockIn:  "2026-03-02T08:55:00+07:00",
			ClockOut: "2026-03-02T17:05:00+07:00",
		})

		require.NoError(t, err)
		assert.Equal(t, StatusPresent, resp.Status)
		assert.Equal(t, 490, resp.WorkMinutes)
		assert.Equal(t, SourceAdmin, updated.Source)
		require.NotNil(t, updated.CorrectedBy)
		assert.Equal(t, adminID, updated.CorrectedBy.String())
	})

	t.Run("clock out must be after clock in", func(t *testing.T) {
		svc := NewService(nil, &fakeRepo{}, policy, nil)

		_, err := svc.Correct(context.Background(), "c-1", "a-1", adminID, CorrectAttendanceRequest{
			ClockIn:  "2026-03-02T17:00:00+07:00",
			ClockOut: "2026-03-02T08:00:00+07:00",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidCorrection)
	})

	t.Run("unknown id", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, companyID, id string) (*AttendanceLog, error) { return nil, gorm.ErrRecordNotFound },
		}
		svc := NewService(db, repo, policy, nil)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Correct(context.Background(), "c-1", "a-1", adminID, CorrectAttendanceRequest{
			ClockIn:  "2026-03-02T08:00:00+07:00",
			ClockOut: "2026-03-02T17:00:00+07:00",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}
