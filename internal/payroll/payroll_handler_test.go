package payroll_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/payroll"
	payrollerrors "github.com/syrene4545/attendance-tracker-sub001/internal/payroll/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newRouter(h *payroll.Handler, companyID, employeeID string, readAll bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("employee_id", employeeID)
		c.Set(payroll.ReadAllKey, readAll)
		c.Next()
	})
	r.POST("/payrolls", h.Generate)
	r.GET("/payrolls", h.GetAll)
	r.GET("/payrolls/:id", h.GetByID)
	r.GET("/payrolls/:id/breakdown", h.GetBreakdown)
	r.POST("/payrolls/:id/approve", h.Approve)
	r.POST("/payrolls/:id/mark-paid", h.MarkPaid)
	r.POST("/payrolls/:id/cancel", h.Cancel)
	r.POST("/payrolls/:id/payslip", h.RequestPayslip)
	r.GET("/payrolls/:id/payslip", h.DownloadPayslip)
	return r
}

func TestPayrollHandler_Generate(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("created", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Generate(gomock.Any(), companyID, actorID, payroll.GeneratePayrollRequest{
			EmployeeID: employeeID,
			Period:     "2026-03",
			Allowances: []payroll.ComponentInput{{Name: "Makan", Amount: 500000}},
		}).Return(payroll.PayrollResponse{ID: uuid.New().String(), Status: payroll.StatusDraft}, nil)

		body := `{"employee_id":"` + employeeID + `","period":"2026-03","allowances":[{"name":"Makan","amount":500000}]}`
		req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(payroll.NewHandler(svc), companyID, actorID, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Ok)
	})

	t.Run("negative allowance rejected", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))

		body := `{"employee_id":"` + employeeID + `","period":"2026-03","allowances":[{"name":"Makan","amount":-1}]}`
		req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(payroll.NewHandler(svc), companyID, actorID, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("locked", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Generate(gomock.Any(), companyID, actorID, gomock.Any()).Return(payroll.PayrollResponse{}, payrollerrors.ErrPayrollLocked)

		body := `{"employee_id":"` + employeeID + `","period":"2026-03"}`
		req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(payroll.NewHandler(svc), companyID, actorID, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}

func TestPayrollHandler_GetAllPaginates(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	svc := mock.NewMockService(gomock.NewController(t))
	svc.EXPECT().GetAll(gomock.Any(), companyID, actorID, false, payroll.ListFilter{Period: "2026-03"}).
		Return([]payroll.PayrollResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil)

	w := httptest.NewRecorder()
	newRouter(payroll.NewHandler(svc), companyID, actorID, false).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls?period=2026-03&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var items []payroll.PayrollResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &items))
	assert.Len(t, items, 2)
}

func TestPayrollHandler_Payslip(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	payrollID := uuid.New().String()

	t.Run("request accepted", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().RequestPayslip(gomock.Any(), companyID, actorID, false, payrollID).
			Return(payroll.PayslipRequestResponse{PayrollID: payrollID}, nil)

		w := httptest.NewRecorder()
		newRouter(payroll.NewHandler(svc), companyID, actorID, false).
			ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/payslip", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("download pdf", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().DownloadPayslip(gomock.Any(), companyID, actorID, false, payrollID).
			Return(payroll.PayslipFile{FileName: "payslip-2026-03-abc.pdf", Content: []byte("%PDF-1.4 test")}, nil)

		w := httptest.NewRecorder()
		newRouter(payroll.NewHandler(svc), companyID, actorID, false).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls/"+payrollID+"/payslip", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-2026-03-abc.pdf")
		assert.Equal(t, "%PDF-1.4 test", w.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().DownloadPayslip(gomock.Any(), companyID, actorID, false, payrollID).
			Return(payroll.PayslipFile{}, payrollerrors.ErrPayslipNotReady)

		w := httptest.NewRecorder()
		newRouter(payroll.NewHandler(svc), companyID, actorID, false).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls/"+payrollID+"/payslip", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_Transitions(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	payrollID := uuid.New().String()
	svc := mock.NewMockService(gomock.NewController(t))
	svc.EXPECT().Approve(gomock.Any(), companyID, actorID, payrollID).Return(payroll.PayrollResponse{Status: payroll.StatusApproved}, nil)
	svc.EXPECT().MarkPaid(gomock.Any(), companyID, actorID, payrollID).Return(payroll.PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition)
	svc.EXPECT().Cancel(gomock.Any(), companyID, actorID, payrollID).Return(payroll.PayrollResponse{Status: payroll.StatusCancelled}, nil)

	r := newRouter(payroll.NewHandler(svc), companyID, actorID, true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/approve", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/mark-paid", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/"+payrollID+"/cancel", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
