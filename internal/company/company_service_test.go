package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/company"
	companyerrors "github.com/syrene4545/attendance-tracker-sub001/internal/company/errors"
	companyMock "github.com/syrene4545/attendance-tracker-sub001/internal/company/mock"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employee"
	employeeMock "github.com/syrene4545/attendance-tracker-sub001/internal/employee/mock"
	"github.com/syrene4545/attendance-tracker-sub001/internal/events"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	kafkaMock "github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka/mock"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	counterMock "github.com/syrene4545/attendance-tracker-sub001/internal/shared/counter/mock"
	"github.com/syrene4545/attendance-tracker-sub001/internal/user"
	userMock "github.com/syrene4545/attendance-tracker-sub001/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   company.Service
	repo      *companyMock.MockRepository
	employees *employeeMock.MockRepository
	users     *userMock.MockRepository
	counter   *counterMock.MockRepository
	roles     *companyMock.MockRoleSeeder
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sqlMock:   sqlMock,
		repo:      companyMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockRepository(ctrl),
		users:     userMock.NewMockRepository(ctrl),
		counter:   counterMock.NewMockRepository(ctrl),
		roles:     companyMock.NewMockRoleSeeder(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = company.NewService(db, deps.repo, deps.employees, deps.users, deps.counter, deps.roles, deps.outbox)
	return deps
}

func validRegisterRequest() company.RegisterRequest {
	return company.RegisterRequest{
		CompanyName:  "PT Maju Jaya",
		CompanyEmail: "HR@MajuJaya.co.id",
		AdminName:    "Dewi Lestari",
		AdminEmail:   "dewi@majujaya.co.id",
		Password:     "rahasia123",
	}
}

func TestCompanyService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success - company, admin and roles in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRegisterRequest()

		deps.repo.EXPECT().EmailExists(ctx, "hr@majujaya.co.id").Return(false, nil)
		deps.users.EXPECT().FindByEmail(ctx, "dewi@majujaya.co.id").Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var createdCompany *company.Company
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.Equal(t, "hr@majujaya.co.id", c.Email)
			assert.True(t, c.IsActive)
			createdCompany = c
			return nil
		})

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, gomock.Any(), "employee_number").Return(int64(1), nil)

		var admin *employee.Employee
		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "EMP-000001", e.EmployeeNumber)
			assert.Equal(t, createdCompany.ID, e.CompanyID)
			admin = e
			return nil
		})

		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, admin.ID, u.EmployeeID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("rahasia123")))
			return nil
		})

		deps.roles.EXPECT().SeedDefaultRoles(ctx, gomock.Any(), gomock.Any()).
			Return(map[string]uuid.UUID{rbac.RoleAdmin: uuid.New(), rbac.RoleEmployee: uuid.New()}, nil)
		deps.roles.EXPECT().AssignRole(ctx, gomock.Any(), gomock.Any(), gomock.Any(), rbac.RoleAdmin).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EmployeeCreatedTopic, ev.Topic)
			assert.Equal(t, admin.ID.String(), ev.AggregateID)
			return nil
		})

		resp, err := deps.service.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "PT Maju Jaya", resp.Company.Name)
		assert.Equal(t, "EMP-000001", resp.EmployeeNumber)
		assert.NotEmpty(t, resp.UserID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("company email already registered", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().EmailExists(ctx, "hr@majujaya.co.id").Return(true, nil)

		_, err := deps.service.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, companyerrors.ErrCompanyAlreadyExists)
	})

	t.Run("admin email already used by another tenant", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().EmailExists(ctx, gomock.Any()).Return(false, nil)
		deps.users.EXPECT().FindByEmail(ctx, "dewi@majujaya.co.id").Return(&user.User{ID: uuid.New()}, nil)

		_, err := deps.service.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, companyerrors.ErrAdminEmailTaken)
	})

	t.Run("unique violation on insert rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().EmailExists(ctx, gomock.Any()).Return(false, nil)
		deps.users.EXPECT().FindByEmail(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_company_email"})

		_, err := deps.service.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, companyerrors.ErrCompanyAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("role seeding failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().EmailExists(ctx, gomock.Any()).Return(false, nil)
		deps.users.EXPECT().FindByEmail(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.roles.EXPECT().SeedDefaultRoles(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("permissions missing"))

		_, err := deps.service.Register(ctx, validRegisterRequest())

		assert.EqualError(t, err, "permissions missing")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCompanyService_Profile(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("get profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByID(ctx, companyID.String()).
			Return(&company.Company{ID: companyID, Name: "PT Maju Jaya", Email: "hr@majujaya.co.id", IsActive: true}, nil)

		resp, err := deps.service.GetProfile(ctx, companyID.String())

		require.NoError(t, err)
		assert.Equal(t, companyID.String(), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByID(ctx, companyID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetProfile(ctx, companyID.String())

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("invalid company id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetProfile(ctx, "bukan-uuid")

		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})

	t.Run("update keeps fields that are not sent", func(t *testing.T) {
		deps := setupServiceTest(t)
		phone := "021-555-0101"
		existing := &company.Company{ID: companyID, Name: "PT Maju Jaya", Address: "Jl. Sudirman 1"}
		deps.repo.EXPECT().GetByID(ctx, companyID.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, existing).Return(nil)

		resp, err := deps.service.UpdateProfile(ctx, companyID.String(), company.UpdateCompanyRequest{Phone: &phone})

		require.NoError(t, err)
		assert.Equal(t, "PT Maju Jaya", resp.Name)
		assert.Equal(t, "Jl. Sudirman 1", resp.Address)
		assert.Equal(t, phone, resp.Phone)
	})
}

