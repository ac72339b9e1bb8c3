package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/user"
	usererrors "github.com/syrene4545/attendance-tracker-sub001/internal/user/errors"
	userMock "github.com/syrene4545/attendance-tracker-sub001/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*gin.Engine, *userMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := userMock.NewMockService(gomock.NewController(t))
	h := user.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Set("user_id", "u-1")
		c.Next()
	})
	r.GET("/users", h.GetAll)
	r.POST("/users", h.Create)
	r.PATCH("/users/:id/status", h.ToggleStatus)
	r.POST("/users/:id/force-reset-password", h.ForceResetPassword)
	return r, svc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_GetAll_Filter(t *testing.T) {
	r, svc := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any(), "c-1").Return([]user.UserResponse{
		{ID: "1", Email: "ani@example.com", FullName: "Ani"},
		{ID: "2", Email: "budi@example.com", FullName: "Budi"},
	}, nil)

	w := do(r, http.MethodGet, "/users?q=budi", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "budi@example.com")
	assert.NotContains(t, w.Body.String(), "ani@example.com")
}

func TestUserHandler_Create_Validation(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodPost, "/users", `{"employee_id":"not-a-uuid","email":"x@y.z","password":"12345678"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	t.Run("missing is_active", func(t *testing.T) {
		r, _ := newRouter(t)
		w := do(r, http.MethodPatch, "/users/u-2/status", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("self deactivate conflict", func(t *testing.T) {
		r, svc := newRouter(t)
		svc.EXPECT().ToggleStatus(gomock.Any(), "c-1", "u-1", "u-1", false).Return(usererrors.ErrCannotDeactivateSelf)

		w := do(r, http.MethodPatch, "/users/u-1/status", `{"is_active":false}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_ForceResetPassword(t *testing.T) {
	r, svc := newRouter(t)
	svc.EXPECT().ForceResetPassword(gomock.Any(), "c-1", "u-2", "new-password-1").Return(nil)

	w := do(r, http.MethodPost, "/users/u-2/force-reset-password", `{"new_password":"new-password-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
