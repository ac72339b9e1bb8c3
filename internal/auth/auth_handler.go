package auth

import (
	"net/http"
	"time"

	autherrors "github.com/syrene4545/attendance-tracker-sub001/internal/auth/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/middleware"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
	platform "github.com/syrene4545/attendance-tracker-sub001/internal/shared/request"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const RefreshTokenCookie = "refresh_token"

type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
	logger  *zap.Logger
}

func NewHandler(s Service, cookies CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, cookies: cookies, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isWeb(c *gin.Context) bool {
	return platform.IsWebClient(platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// writeTokens sets httpOnly cookies for browsers. Other clients get the pair in the body.
func (h *Handler) writeTokens(c *gin.Context, pair TokenPair, user AuthResponse) {
	if isWeb(c) {
		h.setCookie(c, middleware.AccessTokenCookie, pair.AccessToken, int(h.cookies.AccessTTL.Seconds()))
		h.setCookie(c, RefreshTokenCookie, pair.RefreshToken, int(h.cookies.RefreshTTL.Seconds()))
		response.Success(c, http.StatusOK, gin.H{"user": user}, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeTokens(c, pair, user)
}

func (h *Handler) Refresh(c *gin.Context) {
	var refreshToken string

	if isWeb(c) {
		cookie, err := c.Cookie(RefreshTokenCookie)
		if err != nil {
			h.writeServiceError(c, autherrors.ErrTokenNotFound)
			return
		}
		refreshToken = cookie
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, user, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeTokens(c, pair, user)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, RefreshTokenCookie, "", -1)

	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"changed": true}, nil)
}

func (h *Handler) SetupTOTP(c *gin.Context) {
	resp, err := h.service.SetupTOTP(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EnableTOTP(c *gin.Context) {
	var req TOTPCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.EnableTOTP(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"), req.Code); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"totp_enabled": true}, nil)
}

func (h *Handler) DisableTOTP(c *gin.Context) {
	var req TOTPCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.DisableTOTP(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"), req.Code); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"totp_enabled": false}, nil)
}
