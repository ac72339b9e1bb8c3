package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/auth"
	autherrors "github.com/syrene4545/attendance-tracker-sub001/internal/auth/errors"
	authMock "github.com/syrene4545/attendance-tracker-sub001/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := authMock.NewMockService(gomock.NewController(t))
	h := auth.NewHandler(svc, auth.CookieConfig{AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour})

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)
	return r, svc
}

func post(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Login(t *testing.T) {
	pair := auth.TokenPair{AccessToken: "acc", RefreshToken: "ref"}
	body := `{"email":"budi@example.com","password":"password123"}`

	t.Run("mobile client receives tokens in body", func(t *testing.T) {
		r, svc := newAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), auth.LoginRequest{Email: "budi@example.com", Password: "password123"}).
			Return(pair, auth.AuthResponse{ID: "u-1"}, nil)

		w := post(r, "/auth/login", body, map[string]string{"X-Client-Type": "mobile"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"acc"`)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("web client receives httpOnly cookies", func(t *testing.T) {
		r, svc := newAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(pair, auth.AuthResponse{ID: "u-1"}, nil)

		w := post(r, "/auth/login", body, map[string]string{"X-Client-Type": "web"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "access_token")
		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 2)
		for _, c := range cookies {
			assert.True(t, c.HttpOnly)
		}
	})

	t.Run("otp required", func(t *testing.T) {
		r, svc := newAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(auth.TokenPair{}, auth.AuthResponse{}, autherrors.ErrOTPRequired)

		w := post(r, "/auth/login", body, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "OTP_REQUIRED")
	})

	t.Run("bad otp format", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		w := post(r, "/auth/login", `{"email":"budi@example.com","password":"x","otp_code":"12"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Refresh_WebWithoutCookie(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := post(r, "/auth/refresh", "", map[string]string{"X-Client-Type": "web"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout_ClearsCookies(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := post(r, "/auth/logout", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Equal(t, "", c.Value)
		assert.True(t, c.MaxAge < 0)
	}
}
