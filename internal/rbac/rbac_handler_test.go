package rbac_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/domain"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	rbacerrors "github.com/syrene4545/attendance-tracker-sub001/internal/rbac/errors"
	rbacMock "github.com/syrene4545/attendance-tracker-sub001/internal/rbac/mock"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*gin.Engine, *rbacMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := rbacMock.NewMockService(gomock.NewController(t))
	h := rbac.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "company-1")
		c.Set("employee_id", "emp-1")
		c.Next()
	})
	r.POST("/rbac/enforce", h.Enforce)
	r.POST("/rbac/roles", h.CreateRole)
	r.DELETE("/rbac/roles/:id", h.DeleteRole)
	r.PUT("/rbac/employees/:employee_id/roles", h.SetEmployeeRoles)
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Enforce(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().Enforce(domain.EnforceRequest{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		Resource:   "employee",
		Action:     "read",
	}).Return(true, nil)

	rec := doJSON(r, http.MethodPost, "/rbac/enforce", gin.H{"resource": "employee", "action": "read"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Ok   bool                   `json:"ok"`
		Data domain.EnforceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Data.Allowed)
}

func TestHandler_Enforce_Validation(t *testing.T) {
	r, _ := newRouter(t)

	rec := doJSON(r, http.MethodPost, "/rbac/enforce", gin.H{"resource": "employee"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateRole(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().CreateRole(gomock.Any(), "company-1", rbac.CreateRoleRequest{Name: "AUDITOR", Permissions: []string{"payroll:read_all"}}).
		Return(&rbac.RoleResponse{ID: "r-1", Name: "AUDITOR", Permissions: []string{"payroll:read_all"}}, nil)

	rec := doJSON(r, http.MethodPost, "/rbac/roles", rbac.CreateRoleRequest{Name: "AUDITOR", Permissions: []string{"payroll:read_all"}})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_DeleteRole_SystemRole(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().DeleteRole(gomock.Any(), "company-1", "r-1").Return(rbacerrors.ErrSystemRole)

	req := httptest.NewRequest(http.MethodDelete, "/rbac/roles/r-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, rbacerrors.ErrSystemRole.Code, env.Error.Code)
}

func TestHandler_SetEmployeeRoles(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().SetEmployeeRoles(gomock.Any(), "company-1", "emp-9", []string{"EMPLOYEE"}).Return([]string{"EMPLOYEE"}, nil)

	rec := doJSON(r, http.MethodPut, "/rbac/employees/emp-9/roles", rbac.SetEmployeeRolesRequest{Roles: []string{"EMPLOYEE"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodPut, "/rbac/employees/emp-9/roles", gin.H{"roles": []string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
