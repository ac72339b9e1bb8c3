package attendance

import (
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/pagination"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/request"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReadAllKey is the gin context key set by RBACFlag for attendance:read_all.
const ReadAllKey = "attendance_read_all"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func sourceFromClient(c *gin.Context) string {
	if request.ResolveClientType(c.GetHeader("X-Client-Type"), c.Request.UserAgent()) == request.ClientMobile {
		return SourceMobile
	}
	return SourceWeb
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if req.Source == "" {
		req.Source = sourceFromClient(c)
	}

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetToday(c *gin.Context) {
	resp, err := h.service.GetToday(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	// belum clock-in hari ini: data null, bukan 404
	if resp == nil {
		response.Success(c, http.StatusOK, nil, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		c.GetBool(ReadAllKey),
		filter,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	p := pagination.Parse(c)
	meta := response.NewPaginationMeta(int64(len(resp)), p.Page, p.PageSize)
	response.Success(c, http.StatusOK, pagination.Slice(resp, p), &meta)
}

func (h *Handler) Summary(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if target := c.Query("employee_id"); target != "" && c.GetBool(ReadAllKey) {
		employeeID = target
	}

	resp, err := h.service.Summary(c.Request.Context(), c.GetString("company_id"), employeeID, c.Query("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Correct(c *gin.Context) {
	var req CorrectAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Correct(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("id"),
		c.GetString("employee_id"),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
