package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/employee"
	employeeerrors "github.com/syrene4545/attendance-tracker-sub001/internal/employee/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context, companyID string) ([]employee.EmployeeOption, error)
	GetByIDFn    func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context, companyID string) ([]employee.EmployeeOption, error) {
	return f.GetOptionsFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func newTestContext(method, path, body, companyID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("company_id", companyID)
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, "John Doe", req.FullName)
				return employee.EmployeeResponse{ID: uuid.New().String(), FullName: req.FullName, EmployeeNumber: "EMP-000001"}, nil
			},
		}

		body := `{"full_name":"John Doe","email":"john@example.com","hire_date":"2026-01-01","job_title":"Analyst"}`
		c, w := newTestContext(http.MethodPost, "/api/employees", body, companyID)

		employee.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "EMP-000001")
	})

	t.Run("validation error names the field", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/api/employees", `{"email":"john@example.com","hire_date":"2026-01-01"}`, "c-1")

		employee.NewHandler(&fakeEmployeeService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidationError)
	})

	t.Run("unknown error is masked", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/employees", `{"full_name":"HR","email":"hr@company.com","hire_date":"2026-01-02"}`, "c-1")

		employee.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "database connection failed")
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/employees", `{"full_name":"HR","email":"hr@company.com","hire_date":"2026-01-02"}`, "c-1")

		employee.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: "1", FullName: "Budi", EmployeeNumber: "EMP-000002", Email: "budi@example.com"},
				{ID: "2", FullName: "Ani", EmployeeNumber: "EMP-000001", Email: "ani@example.com"},
				{ID: "3", FullName: "Citra", EmployeeNumber: "EMP-000003", Email: "citra@example.com"},
			}, nil
		},
	}

	t.Run("sort and paginate", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/api/employees?sort_by=employee_number&sort_dir=desc&page=1&page_size=2", "", "c-1")

		employee.NewHandler(svc).GetAll(c)

		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta struct {
				Total      int `json:"total"`
				TotalPages int `json:"totalPages"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 2)
		assert.Equal(t, "EMP-000003", env.Data[0].EmployeeNumber)
		assert.Equal(t, 3, env.Meta.Total)
		assert.Equal(t, 2, env.Meta.TotalPages)
	})

	t.Run("filter by employee number", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/api/employees?q=emp-000001", "", "c-1")

		employee.NewHandler(svc).GetAll(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ani")
		assert.NotContains(t, w.Body.String(), "Budi")
	})
}

func TestEmployeeHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	c, w := newTestContext(http.MethodGet, "/api/employees/x", "", "c-1")
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	employee.NewHandler(svc).GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	var deleted string
	svc := &fakeEmployeeService{
		DeleteFn: func(ctx context.Context, companyID, id string) error {
			deleted = id
			return nil
		},
	}
	c, w := newTestContext(http.MethodDelete, "/api/employees/e-9", "", "c-1")
	c.Params = gin.Params{{Key: "id", Value: "e-9"}}

	employee.NewHandler(svc).Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "e-9", deleted)
}

func TestEmployeeHandler_GetAllFilters(t *testing.T) {
	gudang := "0b6f4c3e-1d2a-4f5b-9c8d-7e6f5a4b3c2d"
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: "1", FullName: "Budi", EmploymentStatus: employee.StatusActive, DepartmentID: gudang},
				{ID: "2", FullName: "Ani", EmploymentStatus: employee.StatusTerminated, DepartmentID: gudang},
				{ID: "3", FullName: "Citra", EmploymentStatus: employee.StatusActive},
			}, nil
		},
	}

	tests := []struct {
		name     string
		query    string
		wantCode int
		want     []string
		notWant  []string
	}{
		{"status", "?status=ACTIVE", http.StatusOK, []string{"Budi", "Citra"}, []string{"Ani"}},
		{"department and status", "?department_id=" + gudang + "&status=TERMINATED", http.StatusOK, []string{"Ani"}, []string{"Budi", "Citra"}},
		{"unknown sort column", "?sort_by=salary", http.StatusBadRequest, nil, nil},
		{"unknown status", "?status=RETIRED", http.StatusBadRequest, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/api/employees"+tt.query, "", "c-1")

			employee.NewHandler(svc).GetAll(c)

			require.Equal(t, tt.wantCode, w.Code)
			for _, s := range tt.want {
				assert.Contains(t, w.Body.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, w.Body.String(), s)
			}
		})
	}
}
