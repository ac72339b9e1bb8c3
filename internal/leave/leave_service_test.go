package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/leave"
	leaveerrors "github.com/syrene4545/attendance-tracker-sub001/internal/leave/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/leave/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func newService(t *testing.T) (leave.Service, *mock.MockRepository, sqlmock.Sqlmock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	svc := leave.NewService(db, repo, config.LeaveConfig{AnnualQuota: 12}, nil,
		leave.WithClock(func() time.Time { return fixedNow }))
	return svc, repo, sqlMock
}

func TestWorkingDays(t *testing.T) {
	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, leave.WorkingDays(mon, mon.AddDate(0, 0, 6)))
	assert.Equal(t, 1, leave.WorkingDays(mon, mon))
	assert.Equal(t, 0, leave.WorkingDays(mon.AddDate(0, 0, 5), mon.AddDate(0, 0, 6)))
	assert.Equal(t, 6, leave.WorkingDays(mon.AddDate(0, 0, 4), mon.AddDate(0, 0, 11)))
}

func TestLeaveService_Create(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	t.Run("success annual", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().LockEmployee(ctx, companyID, employeeID).Return(nil)
		repo.EXPECT().HasOverlappingPeriod(ctx, companyID, employeeID, gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().SumDays(ctx, companyID, employeeID, leave.TypeAnnual, leave.StatusApproved, 2026).Return(4, nil)
		repo.EXPECT().SumDays(ctx, companyID, employeeID, leave.TypeAnnual, leave.StatusPending, 2026).Return(2, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, l *leave.Leave) error {
			assert.Equal(t, 5, l.TotalDays)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		})

		resp, err := svc.Create(ctx, companyID, employeeID, leave.CreateLeaveRequest{
			LeaveType: leave.TypeAnnual,
			StartDate: "2026-03-09",
			EndDate:   "2026-03-15",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, "2026-03-09", resp.StartDate)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("quota exceeded", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.EXPECT().LockEmployee(ctx, companyID, employeeID).Return(nil)
		repo.EXPECT().HasOverlappingPeriod(ctx, companyID, employeeID, gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().SumDays(ctx, companyID, employeeID, leave.TypeAnnual, leave.StatusApproved, 2026).Return(8, nil)
		repo.EXPECT().SumDays(ctx, companyID, employeeID, leave.TypeAnnual, leave.StatusPending, 2026).Return(2, nil)

		_, err := svc.Create(ctx, companyID, employeeID, leave.CreateLeaveRequest{
			LeaveType: leave.TypeAnnual,
			StartDate: "2026-03-09",
			EndDate:   "2026-03-11",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrQuotaExceeded)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("sick leave skips quota", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().LockEmployee(ctx, companyID, employeeID).Return(nil)
		repo.EXPECT().HasOverlappingPeriod(ctx, companyID, employeeID, gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := svc.Create(ctx, companyID, employeeID, leave.CreateLeaveRequest{
			LeaveType: leave.TypeSick,
			StartDate: "2026-03-09",
			EndDate:   "2026-03-09",
		})
		assert.NoError(t, err)
	})

	t.Run("overlap", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.EXPECT().LockEmployee(ctx, companyID, employeeID).Return(nil)
		repo.EXPECT().HasOverlappingPeriod(ctx, companyID, employeeID, gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(ctx, companyID, employeeID, leave.CreateLeaveRequest{
			LeaveType: leave.TypeUnpaid,
			StartDate: "2026-03-09",
			EndDate:   "2026-03-10",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Create(ctx, companyID, employeeID, leave.CreateLeaveRequest{
			LeaveType: leave.TypeSick,
			StartDate: "2026-03-10",
			EndDate:   "2026-03-09",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("weekend only", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Create(ctx, companyID, employeeID, leave.CreateLeaveRequest{
			LeaveType: leave.TypeSick,
			StartDate: "2026-03-07",
			EndDate:   "2026-03-08",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrNoWorkingDays)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Create(ctx, companyID, employeeID, leave.CreateLeaveRequest{
			LeaveType: leave.TypeSick,
			StartDate: "09-03-2026",
			EndDate:   "2026-03-09",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})
}

func pendingLeave(companyID, employeeID uuid.UUID) *leave.Leave {
	return &leave.Leave{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		LeaveType:  leave.TypeAnnual,
		StartDate:  time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalDays:  2,
		Status:     leave.StatusPending,
	}
}

func TestLeaveService_Decide(t *testing.T) {
	companyUUID := uuid.New()
	ownerUUID := uuid.New()
	approverID := uuid.New().String()
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		lv := pendingLeave(companyUUID, ownerUUID)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), lv.ID.String()).Return(lv, nil)
		repo.EXPECT().Update(ctx, lv).Return(nil)

		resp, err := svc.Approve(ctx, companyUUID.String(), lv.ID.String(), approverID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		require.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, approverID, *resp.ApprovedBy)
	})

	t.Run("reject keeps reason", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		lv := pendingLeave(companyUUID, ownerUUID)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), lv.ID.String()).Return(lv, nil)
		repo.EXPECT().Update(ctx, lv).Return(nil)

		resp, err := svc.Reject(ctx, companyUUID.String(), lv.ID.String(), approverID, leave.RejectLeaveRequest{Reason: "tutup buku"})
		require.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "tutup buku", *resp.RejectionReason)
	})

	t.Run("self approval", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		lv := pendingLeave(companyUUID, ownerUUID)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), lv.ID.String()).Return(lv, nil)

		_, err := svc.Approve(ctx, companyUUID.String(), lv.ID.String(), ownerUUID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrSelfApproval)
	})

	t.Run("not pending", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		lv := pendingLeave(companyUUID, ownerUUID)
		lv.Status = leave.StatusCancelled
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), lv.ID.String()).Return(lv, nil)

		_, err := svc.Approve(ctx, companyUUID.String(), lv.ID.String(), approverID)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Reject(ctx, companyUUID.String(), "missing", approverID, leave.RejectLeaveRequest{Reason: "x"})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	companyUUID := uuid.New()
	ownerUUID := uuid.New()
	ctx := context.Background()

	t.Run("owner cancels pending", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		lv := pendingLeave(companyUUID, ownerUUID)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), lv.ID.String()).Return(lv, nil)
		repo.EXPECT().Update(ctx, lv).Return(nil)

		resp, err := svc.Cancel(ctx, companyUUID.String(), lv.ID.String(), ownerUUID.String())
		require.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
	})

	t.Run("someone else", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		lv := pendingLeave(companyUUID, ownerUUID)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), lv.ID.String()).Return(lv, nil)

		_, err := svc.Cancel(ctx, companyUUID.String(), lv.ID.String(), uuid.New().String())
		assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
	})

	t.Run("already approved", func(t *testing.T) {
		svc, repo, sqlMock := newService(t)
		lv := pendingLeave(companyUUID, ownerUUID)
		lv.Status = leave.StatusApproved
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.EXPECT().FindByIDForUpdate(ctx, companyUUID.String(), lv.ID.String()).Return(lv, nil)

		_, err := svc.Cancel(ctx, companyUUID.String(), lv.ID.String(), ownerUUID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_GetAllAndBalance(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	ctx := context.Background()

	t.Run("own leaves without read_all", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().FindAll(ctx, companyID, leave.ListFilter{EmployeeID: actorID, Status: leave.StatusPending}).
			Return([]leave.Leave{*pendingLeave(uuid.MustParse(companyID), uuid.MustParse(actorID))}, nil)

		res, err := svc.GetAll(ctx, companyID, actorID, false, leave.ListFilter{EmployeeID: uuid.New().String(), Status: leave.StatusPending})
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("get by id hides other employees", func(t *testing.T) {
		svc, repo, _ := newService(t)
		lv := pendingLeave(uuid.MustParse(companyID), uuid.New())
		repo.EXPECT().FindByIDAndCompany(ctx, companyID, lv.ID.String()).Return(lv, nil)

		_, err := svc.GetByID(ctx, companyID, actorID, false, lv.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("balance defaults to current year", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().SumDays(ctx, companyID, actorID, leave.TypeAnnual, leave.StatusApproved, 2026).Return(10, nil)
		repo.EXPECT().SumDays(ctx, companyID, actorID, leave.TypeAnnual, leave.StatusPending, 2026).Return(5, nil)

		bal, err := svc.Balance(ctx, companyID, actorID, 0)
		require.NoError(t, err)
		assert.Equal(t, 12, bal.Quota)
		assert.Equal(t, 10, bal.Used)
		assert.Equal(t, 5, bal.Pending)
		assert.Equal(t, 0, bal.Remaining)
	})
}
