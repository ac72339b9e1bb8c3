package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/syrene4545/attendance-tracker-sub001/internal/domain"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, typ token.Type, ttl time.Duration) string {
	t.Helper()
	raw, err := token.Generate(testSecret, token.Claims{
		UserID:     "user-1",
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		Role:       "ADMIN",
		Type:       typ,
	}, ttl, time.Now())
	require.NoError(t, err)
	return raw
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString("user_id"),
			"employee_id": c.GetString("employee_id"),
			"company_id":  c.GetString("company_id"),
			"role":        c.GetString("role"),
		})
	})

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		wantStatus int
		wantCode   string
	}{
		{
			name: "bearer header",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, token.Access, time.Minute))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signToken(t, token.Access, time.Minute)})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			setup:      func(req *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name: "expired token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, token.Access, -time.Minute))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_EXPIRED",
		},
		{
			name: "refresh token rejected",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, token.Refresh, time.Minute))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				env := decode(t, rec)
				assert.False(t, env.Ok)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "company-1", body["company_id"])
			assert.Equal(t, "emp-1", body["employee_id"])
		})
	}

}

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func withIdentity(c *gin.Context) {
	c.Set("employee_id", "emp-1")
	c.Set("company_id", "company-1")
	c.Next()
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		r := gin.New()
		r.GET("/x", withIdentity, RBACAuthorize(svc, "payroll", "read"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, domain.EnforceRequest{EmployeeID: "emp-1", CompanyID: "company-1", Resource: "payroll", Action: "read"}, svc.got)
	})

	t.Run("denied", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", withIdentity, RBACAuthorize(&fakeRBAC{}, "payroll", "read"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", RBACAuthorize(&fakeRBAC{allowed: true}, "payroll", "read"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", withIdentity, RBACAuthorize(&fakeRBAC{err: errors.New("db down")}, "payroll", "read"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRBACFlag(t *testing.T) {
	for _, allowed := range []bool{true, false} {
		r := gin.New()
		r.GET("/x", withIdentity, RBACFlag(&fakeRBAC{allowed: allowed}, "attendance", "read_all", "has_read_all"), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"flag": c.GetBool("has_read_all")})
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, allowed, body["flag"])
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/x", RateLimitByIP(1, 1), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/x", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestIdempotency(t *testing.T) {
	setup := func() (*gin.Engine, redismock.ClientMock, *int) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.POST("/pay", func(c *gin.Context) { c.Set("user_id", "user-1"); c.Next() }, Idempotency(rdb), func(c *gin.Context) {
			calls++
			response.Success(c, http.StatusCreated, gin.H{"id": "p-1"}, nil)
		})
		return r, mock, &calls
	}
	cacheKey := IdempotencyCacheKey("/pay", "user-1", "key-1")

	t.Run("first request stores response", func(t *testing.T) {
		r, mock, calls := setup()
		body := []byte(`{"ok":true,"data":{"id":"p-1"}}`)
		payload, _ := json.Marshal(CachedResponse{Status: http.StatusCreated, Body: body})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, payload, idempotencyCacheTTL).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/pay", nil)
		req.Header.Set(IdempotencyHeader, "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay", func(t *testing.T) {
		r, mock, calls := setup()
		payload, _ := json.Marshal(CachedResponse{Status: http.StatusCreated, Body: []byte(`{"ok":true}`)})
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		req := httptest.NewRequest(http.MethodPost, "/pay", nil)
		req.Header.Set(IdempotencyHeader, "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
		assert.Equal(t, 0, *calls)
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		r, mock, calls := setup()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/pay", nil)
		req.Header.Set(IdempotencyHeader, "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PROCESSING", decode(t, rec).Error.Code)
		assert.Equal(t, 0, *calls)
	})

	t.Run("no key skips redis", func(t *testing.T) {
		r, mock, calls := setup()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pay", nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
