package employee

import (
	"net/http"
	"sort"
	"strings"

	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/pagination"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp = filterEmployees(resp, q)
	sortEmployees(resp, q.SortBy, q.SortDir)

	p := pagination.Parse(c)
	meta := response.NewPaginationMeta(int64(len(resp)), p.Page, p.PageSize)
	response.Success(c, http.StatusOK, pagination.Slice(resp, p), &meta)
}

func filterEmployees(list []EmployeeResponse, q ListQuery) []EmployeeResponse {
	term := strings.ToLower(strings.TrimSpace(q.Q))
	if term == "" && q.Status == "" && q.DepartmentID == "" {
		return list
	}

	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		if q.Status != "" && e.EmploymentStatus != q.Status {
			continue
		}
		if q.DepartmentID != "" && e.DepartmentID != q.DepartmentID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.FullName), term) &&
			!strings.Contains(strings.ToLower(e.EmployeeNumber), term) &&
			!strings.Contains(strings.ToLower(e.Email), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// sortEmployees defaults to name ascending.
func sortEmployees(list []EmployeeResponse, sortBy, sortDir string) {
	key := func(e EmployeeResponse) string {
		switch sortBy {
		case "email":
			return strings.ToLower(e.Email)
		case "employee_number":
			return e.EmployeeNumber
		case "hire_date":
			return e.HireDate
		default:
			return strings.ToLower(e.FullName)
		}
	}
	desc := sortDir == "desc"
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return key(list[i]) > key(list[j])
		}
		return key(list[i]) < key(list[j])
	})
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
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
