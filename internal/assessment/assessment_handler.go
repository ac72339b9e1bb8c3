package assessment

import (
	"errors"
	"io"
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/pagination"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ManageKey is the gin context key set by RBACFlag for assessment:manage.
const ManageKey = "assessment_manage"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assessment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("assessment request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), c.GetBool(ManageKey), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	p := pagination.Parse(c)
	meta := response.NewPaginationMeta(int64(len(resp)), p.Page, p.PageSize)
	response.Success(c, http.StatusOK, pagination.Slice(resp, p), &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.GetBool(ManageKey), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddQuestion(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddQuestion(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	err := h.service.DeleteQuestion(c.Request.Context(), c.GetString("company_id"), c.Param("id"), c.Param("question_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Publish(c *gin.Context) {
	resp, err := h.service.Publish(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Archive(c *gin.Context) {
	resp, err := h.service.Archive(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAttempts(c *gin.Context) {
	resp, err := h.service.ListAttempts(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	p := pagination.Parse(c)
	meta := response.NewPaginationMeta(int64(len(resp)), p.Page, p.PageSize)
	response.Success(c, http.StatusOK, pagination.Slice(resp, p), &meta)
}

func (h *Handler) Start(c *gin.Context) {
	resp, err := h.service.Start(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	status := http.StatusCreated
	if resp.Resumed {
		status = http.StatusOK
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) SaveAnswers(c *gin.Context) {
	var req AnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SaveAnswers(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("attempt_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	var body SubmitRequest
	// body boleh kosong: jawaban yang sudah tersimpan tetap dinilai
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	req := AnswersRequest{Answers: body.Answers}
	resp, err := h.service.Submit(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("attempt_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAttempt(c *gin.Context) {
	resp, err := h.service.GetAttempt(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		c.GetBool(ManageKey),
		c.Param("attempt_id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyAttempts(c *gin.Context) {
	resp, err := h.service.ListMyAttempts(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	p := pagination.Parse(c)
	meta := response.NewPaginationMeta(int64(len(resp)), p.Page, p.PageSize)
	response.Success(c, http.StatusOK, pagination.Slice(resp, p), &meta)
}

func (h *Handler) MyBadges(c *gin.Context) {
	resp, err := h.service.ListBadges(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyCertifications(c *gin.Context) {
	resp, err := h.service.ListCertifications(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
