package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/department"
	departmenterrors "github.com/syrene4545/attendance-tracker-sub001/internal/department/errors"
	departmentMock "github.com/syrene4545/attendance-tracker-sub001/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type deptDeps struct {
	sql   sqlmock.Sqlmock
	repo  *departmentMock.MockRepository
	cache redismock.ClientMock
	svc   department.Service
}

func newDeptDeps(t *testing.T) *deptDeps {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, cache := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	return &deptDeps{sql: sqlMock, repo: repo, cache: cache, svc: department.NewService(db, repo, rdb, nil)}
}

func TestDepartmentService_GetAllCache(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	key := department.GetDepartmentListKey(companyID)

	t.Run("hit tidak menyentuh repo", func(t *testing.T) {
		d := newDeptDeps(t)
		raw, _ := json.Marshal([]department.DepartmentResponse{{ID: "a", Name: "Gudang"}})
		d.cache.ExpectGet(key).SetVal(string(raw))

		got, err := d.svc.GetAll(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, "Gudang", got[0].Name)
	})

	t.Run("miss dibangun ulang dan disimpan", func(t *testing.T) {
		d := newDeptDeps(t)
		d.cache.ExpectGet(key).RedisNil()
		d.repo.EXPECT().FindAllByCompany(ctx, companyID).
			Return([]department.Department{{ID: uuid.New(), Name: "Kasir"}}, nil)
		d.cache.Regexp().ExpectSet(key, `.*Kasir.*`, 30*time.Minute).SetVal("OK")

		got, err := d.svc.GetAll(ctx, companyID)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.NoError(t, d.cache.ExpectationsWereMet())
	})

	t.Run("corrupt cache falls back to db", func(t *testing.T) {
		d := newDeptDeps(t)
		d.cache.ExpectGet(key).SetVal("{not json")
		d.repo.EXPECT().FindAllByCompany(ctx, companyID).Return(nil, errors.New("db down"))

		_, err := d.svc.GetAll(ctx, companyID)

		assert.Error(t, err)
	})
}

func TestDepartmentService_Writes(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	deptID := uuid.New()
	key := department.GetDepartmentListKey(companyID)

	existing := func() *department.Department {
		return &department.Department{ID: deptID, CompanyID: companyUUID, Name: "Gudang"}
	}

	tests := []struct {
		name    string
		commit  bool
		noTx    bool
		setup   func(d *deptDeps)
		run     func(svc department.Service) error
		wantErr error
	}{
		{
			name:   "create trims name and drops the list cache",
			commit: true,
			setup: func(d *deptDeps) {
				d.repo.EXPECT().NameExists(ctx, companyID, "Gudang", "").Return(false, nil)
				d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, dept *department.Department) error {
					assert.Equal(t, "Gudang", dept.Name)
					assert.Equal(t, companyUUID, dept.CompanyID)
					return nil
				})
				d.cache.ExpectDel(key).SetVal(1)
			},
			run: func(svc department.Service) error {
				_, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "  Gudang "})
				return err
			},
		},
		{
			name: "create duplicate name",
			setup: func(d *deptDeps) {
				d.repo.EXPECT().NameExists(ctx, companyID, "Gudang", "").Return(true, nil)
			},
			run: func(svc department.Service) error {
				_, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "Gudang"})
				return err
			},
			wantErr: departmenterrors.ErrDepartmentAlreadyExists,
		},
		{
			name: "create loses insert race",
			setup: func(d *deptDeps) {
				d.repo.EXPECT().NameExists(ctx, companyID, "Gudang", "").Return(false, nil)
				d.repo.EXPECT().Create(ctx, gomock.Any()).
					Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_department_name"})
			},
			run: func(svc department.Service) error {
				_, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "Gudang"})
				return err
			},
			wantErr: departmenterrors.ErrDepartmentAlreadyExists,
		},
		{
			name: "create with bad company id",
			noTx: true,
			run: func(svc department.Service) error {
				_, err := svc.Create(ctx, "bukan-uuid", department.CreateDepartmentRequest{Name: "Gudang"})
				return err
			},
			wantErr: departmenterrors.ErrInvalidCompanyID,
		},
		{
			name:   "update same name skips uniqueness check",
			commit: true,
			setup: func(d *deptDeps) {
				d.repo.EXPECT().FindByIDAndCompany(ctx, companyID, deptID.String()).Return(existing(), nil)
				d.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
				d.cache.ExpectDel(key).SetVal(1)
			},
			run: func(svc department.Service) error {
				resp, err := svc.Update(ctx, companyID, deptID.String(), department.UpdateDepartmentRequest{Name: "GUDANG", Description: "baru"})
				if err == nil {
					assert.Equal(t, "baru", resp.Description)
				}
				return err
			},
		},
		{
			name: "update rename onto existing",
			setup: func(d *deptDeps) {
				d.repo.EXPECT().FindByIDAndCompany(ctx, companyID, deptID.String()).Return(existing(), nil)
				d.repo.EXPECT().NameExists(ctx, companyID, "Kasir", deptID.String()).Return(true, nil)
			},
			run: func(svc department.Service) error {
				_, err := svc.Update(ctx, companyID, deptID.String(), department.UpdateDepartmentRequest{Name: "Kasir"})
				return err
			},
			wantErr: departmenterrors.ErrDepartmentAlreadyExists,
		},
		{
			name: "update missing",
			setup: func(d *deptDeps) {
				d.repo.EXPECT().FindByIDAndCompany(ctx, companyID, deptID.String()).Return(nil, gorm.ErrRecordNotFound)
			},
			run: func(svc department.Service) error {
				_, err := svc.Update(ctx, companyID, deptID.String(), department.UpdateDepartmentRequest{Name: "Kasir"})
				return err
			},
			wantErr: departmenterrors.ErrDepartmentNotFound,
		},
		{
			name:   "delete empty department",
			commit: true,
			setup: func(d *deptDeps) {
				d.repo.EXPECT().FindByIDAndCompany(ctx, companyID, deptID.String()).Return(existing(), nil)
				d.repo.EXPECT().CountEmployees(ctx, companyID, deptID.String()).Return(int64(0), nil)
				d.repo.EXPECT().Delete(ctx, companyID, deptID.String()).Return(nil)
				d.cache.ExpectDel(key).SetVal(1)
			},
			run: func(svc department.Service) error {
				return svc.Delete(ctx, companyID, deptID.String())
			},
		},
		{
			name: "delete refused while employees remain",
			setup: func(d *deptDeps) {
				d.repo.EXPECT().FindByIDAndCompany(ctx, companyID, deptID.String()).Return(existing(), nil)
				d.repo.EXPECT().CountEmployees(ctx, companyID, deptID.String()).Return(int64(4), nil)
			},
			run: func(svc department.Service) error {
				return svc.Delete(ctx, companyID, deptID.String())
			},
			wantErr: departmenterrors.ErrDepartmentHasEmployees,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeptDeps(t)
			if !tt.noTx {
				d.sql.ExpectBegin()
				if tt.commit {
					d.sql.ExpectCommit()
				} else {
					d.sql.ExpectRollback()
				}
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			err := tt.run(d.svc)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, d.sql.ExpectationsWereMet())
			assert.NoError(t, d.cache.ExpectationsWereMet())
		})
	}
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New()

	d := newDeptDeps(t)
	d.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id.String()).
		Return(&department.Department{ID: id, Name: "Gudang"}, nil)
	d.repo.EXPECT().FindByIDAndCompany(ctx, companyID, "x").Return(nil, gorm.ErrRecordNotFound)

	got, err := d.svc.GetByID(ctx, companyID, id.String())
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.ID)

	_, err = d.svc.GetByID(ctx, companyID, "x")
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}
