package sop_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/sop"
	soperrors "github.com/syrene4545/attendance-tracker-sub001/internal/sop/errors"
	sopMock "github.com/syrene4545/attendance-tracker-sub001/internal/sop/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(h *sop.Handler, companyID, employeeID string, canManage bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("employee_id", employeeID)
		c.Set(sop.ManageKey, canManage)
		c.Next()
	})
	r.GET("/sops", h.GetAll)
	r.POST("/sops", h.Create)
	r.GET("/sops/:id", h.GetByID)
	r.PUT("/sops/:id", h.Update)
	r.GET("/sops/:id/content", h.GetPublished)
	r.POST("/sops/:id/publish", h.Publish)
	r.POST("/sops/:id/archive", h.Archive)
	r.POST("/sops/:id/acknowledge", h.Acknowledge)
	r.GET("/sops/:id/acknowledgements", h.Acknowledgements)
	return r
}

func TestSOPHandler(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	sopID := uuid.New().String()

	t.Run("create requires title", func(t *testing.T) {
		svc := sopMock.NewMockService(gomock.NewController(t))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sops", strings.NewReader(`{"content":"isi"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(sop.NewHandler(svc), companyID, employeeID, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		svc := sopMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Create(gomock.Any(), companyID, employeeID, sop.CreateSOPRequest{Title: "K3", Content: "isi"}).
			Return(sop.SOPResponse{ID: sopID, Status: sop.StatusDraft}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sops", strings.NewReader(`{"title":"K3","content":"isi"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(sop.NewHandler(svc), companyID, employeeID, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("list passes manage flag", func(t *testing.T) {
		svc := sopMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetAll(gomock.Any(), companyID, false, sop.ListFilter{}).Return([]sop.SOPResponse{{ID: sopID}}, nil)

		w := httptest.NewRecorder()
		newRouter(sop.NewHandler(svc), companyID, employeeID, false).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sops", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), sopID)
	})

	t.Run("archived edit conflict", func(t *testing.T) {
		svc := sopMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Update(gomock.Any(), companyID, sopID, gomock.Any()).Return(sop.SOPResponse{}, soperrors.ErrSOPArchived)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/sops/"+sopID, strings.NewReader(`{"title":"baru"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(sop.NewHandler(svc), companyID, employeeID, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("acknowledge", func(t *testing.T) {
		svc := sopMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Acknowledge(gomock.Any(), companyID, employeeID, sopID).
			Return(sop.AcknowledgementResponse{SOPID: sopID, Version: 1, EmployeeID: employeeID}, nil)

		w := httptest.NewRecorder()
		newRouter(sop.NewHandler(svc), companyID, employeeID, false).
			ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sops/"+sopID+"/acknowledge", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("content not found", func(t *testing.T) {
		svc := sopMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetPublished(gomock.Any(), companyID, sopID).Return(sop.PublishedSOPResponse{}, soperrors.ErrSOPNotFound)

		w := httptest.NewRecorder()
		newRouter(sop.NewHandler(svc), companyID, employeeID, false).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sops/"+sopID+"/content", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
