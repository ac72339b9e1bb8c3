package department_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/department"
	departmenterrors "github.com/syrene4545/attendance-tracker-sub001/internal/department/errors"
	departmentMock "github.com/syrene4545/attendance-tracker-sub001/internal/department/mock"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newDepartmentRouter(svc department.Service, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	h := department.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	r.GET("/departments", h.GetAll)
	r.POST("/departments", h.Create)
	r.GET("/departments/:id", h.GetByID)
	r.PUT("/departments/:id", h.Update)
	r.DELETE("/departments/:id", h.Delete)
	return r
}

func TestDepartmentHandler(t *testing.T) {
	companyID := uuid.New().String()
	deptID := uuid.New().String()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(svc *departmentMock.MockService)
		wantCode int
		wantBody string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/departments",
			body:   `{"name":"Gudang","description":"shift pagi"}`,
			setup: func(svc *departmentMock.MockService) {
				svc.EXPECT().
					Create(gomock.Any(), companyID, department.CreateDepartmentRequest{Name: "Gudang", Description: "shift pagi"}).
					Return(department.DepartmentResponse{ID: deptID, Name: "Gudang"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"name":"Gudang"`,
		},
		{
			name:     "create tanpa nama",
			method:   http.MethodPost,
			path:     "/departments",
			body:     `{"description":"x"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"name"`,
		},
		{
			name:   "create duplicate",
			method: http.MethodPost,
			path:   "/departments",
			body:   `{"name":"Gudang"}`,
			setup: func(svc *departmentMock.MockService) {
				svc.EXPECT().Create(gomock.Any(), companyID, gomock.Any()).
					Return(department.DepartmentResponse{}, departmenterrors.ErrDepartmentAlreadyExists)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "list paginated",
			method: http.MethodGet,
			path:   "/departments?page=2&page_size=1",
			setup: func(svc *departmentMock.MockService) {
				svc.EXPECT().GetAll(gomock.Any(), companyID).Return([]department.DepartmentResponse{
					{ID: "1", Name: "Gudang"},
					{ID: "2", Name: "Kasir"},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"data":[{"id":"2"`,
		},
		{
			name:   "get not found",
			method: http.MethodGet,
			path:   "/departments/" + deptID,
			setup: func(svc *departmentMock.MockService) {
				svc.EXPECT().GetByID(gomock.Any(), companyID, deptID).
					Return(department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/departments/" + deptID,
			body:   `{"name":"Kasir"}`,
			setup: func(svc *departmentMock.MockService) {
				svc.EXPECT().Update(gomock.Any(), companyID, deptID, department.UpdateDepartmentRequest{Name: "Kasir"}).
					Return(department.DepartmentResponse{ID: deptID, Name: "Kasir"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "delete refused while staffed",
			method: http.MethodDelete,
			path:   "/departments/" + deptID,
			setup: func(svc *departmentMock.MockService) {
				svc.EXPECT().Delete(gomock.Any(), companyID, deptID).Return(departmenterrors.ErrDepartmentHasEmployees)
			},
			wantCode: http.StatusConflict,
			wantBody: `"code":"INVALID_STATE"`,
		},
		{
			name:   "unknown error is hidden",
			method: http.MethodDelete,
			path:   "/departments/" + deptID,
			setup: func(svc *departmentMock.MockService) {
				svc.EXPECT().Delete(gomock.Any(), companyID, deptID).Return(errors.New("pq: deadlock detected"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := departmentMock.NewMockService(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(svc)
			}

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			newDepartmentRouter(svc, companyID).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			assert.NotContains(t, w.Body.String(), "deadlock")
		})
	}
}
