package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/syrene4545/attendance-tracker-sub001/internal/attendance"
	attendanceerrors "github.com/syrene4545/attendance-tracker-sub001/internal/attendance/errors"
	attendanceMock "github.com/syrene4545/attendance-tracker-sub001/internal/attendance/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeService struct {
	clockInFn  func(ctx context.Context, companyID, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error)
	clockOutFn func(ctx context.Context, companyID, employeeID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error)
	getTodayFn func(ctx context.Context, companyID, employeeID string) (*attendance.AttendanceResponse, error)
	getAllFn   func(ctx context.Context, companyID, actorID string, canReadAll bool, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error)
	summaryFn  func(ctx context.Context, companyID, employeeID, month string) (attendance.SummaryResponse, error)
	correctFn  func(ctx context.Context, companyID, id, correctedBy string, req attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error)
}

func (f *fakeService) ClockIn(ctx context.Context, companyID, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return f.clockInFn(ctx, companyID, employeeID, req)
}
func (f *fakeService) ClockOut(ctx context.Context, companyID, employeeID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return f.clockOutFn(ctx, companyID, employeeID, req)
}
func (f *fakeService) GetToday(ctx context.Context, companyID, employeeID string) (*attendance.AttendanceResponse, error) {
	return f.getTodayFn(ctx, companyID, employeeID)
}
func (f *fakeService) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx, companyID, actorID, canReadAll, filter)
}
func (f *fakeService) Summary(ctx context.Context, companyID, employeeID, month string) (attendance.SummaryResponse, error) {
	return f.summaryFn(ctx, companyID, employeeID, month)
}
func (f *fakeService) Correct(ctx context.Context, companyID, id, correctedBy string, req attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.correctFn(ctx, companyID, id, correctedBy, req)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
		c.Request = httptest.NewRequest(method, target, reader)
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c, w
}

func TestHandler_ClockInAndGetAll(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeService{
		clockInFn: func(ctx context.Context, cid, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, attendance.SourceMobile, req.Source)
			return attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: eid, CompanyID: cid}, nil
		},
		getAllFn: func(ctx context.Context, cid, actorID string, canReadAll bool, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
			assert.True(t, canReadAll)
			assert.Equal(t, "LATE", filter.Status)
			return []attendance.AttendanceResponse{{ID: uuid.New().String()}, {ID: uuid.New().String()}}, nil
		},
	}

	h := attendance.NewHandler(svc)

	c, w := newContext(http.MethodPost, "/api/attendance/clock-in", `{}`)
	c.Request.Header.Set("X-Client-Type", "android")
	c.Set("company_id", companyID)
	c.Set("employee_id", employeeID)
	h.ClockIn(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c2, w2 := newContext(http.MethodGet, "/api/attendance?page=1&page_size=1&status=LATE", "")
	c2.Set("company_id", companyID)
	c2.Set(attendance.ReadAllKey, true)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"meta\"")
}

func TestHandler_ClockInTwice(t *testing.T) {
	svc := &fakeService{
		clockInFn: func(ctx context.Context, cid, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
		},
	}
	c, w := newContext(http.MethodPost, "/api/attendance/clock-in", `{}`)

	attendance.NewHandler(svc).ClockIn(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetToday_Empty(t *testing.T) {
	svc := &fakeService{
		getTodayFn: func(ctx context.Context, cid, eid string) (*attendance.AttendanceResponse, error) { return nil, nil },
	}
	c, w := newContext(http.MethodGet, "/api/attendance/today", "")

	attendance.NewHandler(svc).GetToday(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Summary_TargetRequiresReadAll(t *testing.T) {
	var target string
	svc := &fakeService{
		summaryFn: func(ctx context.Context, cid, eid, month string) (attendance.SummaryResponse, error) {
			target = eid
			return attendance.SummaryResponse{EmployeeID: eid, Month: month}, nil
		},
	}
	h := attendance.NewHandler(svc)

	c, _ := newContext(http.MethodGet, "/api/attendance/summary?month=2026-02&employee_id=other", "")
	c.Set("employee_id", "self")
	h.Summary(c)
	assert.Equal(t, "self", target)

	c, _ = newContext(http.MethodGet, "/api/attendance/summary?month=2026-02&employee_id=other", "")
	c.Set("employee_id", "self")
	c.Set(attendance.ReadAllKey, true)
	h.Summary(c)
	assert.Equal(t, "other", target)
}

func TestHandler_Correct(t *testing.T) {
	companyID := uuid.New().String()
	adminID := uuid.New().String()
	logID := uuid.New().String()

	tests := []struct {
		name     string
		body     string
		setup    func(svc *attendanceMock.MockService)
		wantCode int
	}{
		{
			name: "koreksi oleh admin",
			body: `{"clock_in":"2026-03-02T08:55:00+07:00","clock_out":"2026-03-02T17:05:00+07:00","notes":"lupa absen"}`,
			setup: func(svc *attendanceMock.MockService) {
				svc.EXPECT().
					Correct(gomock.Any(), companyID, logID, adminID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _ string, req attendance.CorrectAttendanceRequest) (attendance.AttendanceResponse, error) {
						assert.Equal(t, "lupa absen", *req.Notes)
						return attendance.AttendanceResponse{ID: logID, Status: "PRESENT"}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "clock_out wajib",
			body:     `{"clock_in":"2026-03-02T08:55:00+07:00"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "clock out before clock in",
			body: `{"clock_in":"2026-03-02T18:00:00+07:00","clock_out":"2026-03-02T08:00:00+07:00"}`,
			setup: func(svc *attendanceMock.MockService) {
				svc.EXPECT().Correct(gomock.Any(), companyID, logID, adminID, gomock.Any()).
					Return(attendance.AttendanceResponse{}, attendanceerrors.ErrInvalidCorrection)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := attendanceMock.NewMockService(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(svc)
			}

			c, w := newContext(http.MethodPut, "/attendances/"+logID+"/correct", tt.body)
			c.Params = gin.Params{{Key: "id", Value: logID}}
			c.Set("company_id", companyID)
			c.Set("employee_id", adminID)

			attendance.NewHandler(svc).Correct(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
