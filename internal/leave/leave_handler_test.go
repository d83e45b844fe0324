package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/leave"
	leaveerrors "gtb-hrms/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveService struct {
	CreateFn      func(ctx context.Context, actor domain.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	GetAllFn      func(ctx context.Context, actor domain.Actor, filter leave.Filter) ([]leave.LeaveResponse, error)
	GetByIDFn     func(ctx context.Context, actor domain.Actor, id string) (leave.LeaveResponse, error)
	SetStatusFn   func(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (leave.LeaveResponse, error)
	BalancesFn    func(ctx context.Context, actor domain.Actor) ([]leave.BalanceResponse, error)
	ComputeDaysFn func(start, end string) (leave.DaysResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, actor domain.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.CreateFn(ctx, actor, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, actor domain.Actor, filter leave.Filter) ([]leave.LeaveResponse, error) {
	return f.GetAllFn(ctx, actor, filter)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, actor domain.Actor, id string) (leave.LeaveResponse, error) {
	return f.GetByIDFn(ctx, actor, id)
}
func (f *fakeLeaveService) Approve(ctx context.Context, actor domain.Actor, id string) (leave.LeaveResponse, error) {
	return f.SetStatusFn(ctx, actor, id, domain.LeaveStatusApproved)
}
func (f *fakeLeaveService) Reject(ctx context.Context, actor domain.Actor, id string) (leave.LeaveResponse, error) {
	return f.SetStatusFn(ctx, actor, id, domain.LeaveStatusRejected)
}
func (f *fakeLeaveService) SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (leave.LeaveResponse, error) {
	return f.SetStatusFn(ctx, actor, id, status)
}
func (f *fakeLeaveService) Balances(ctx context.Context, actor domain.Actor) ([]leave.BalanceResponse, error) {
	return f.BalancesFn(ctx, actor)
}
func (f *fakeLeaveService) ComputeDays(start, end string) (leave.DaysResponse, error) {
	return f.ComputeDaysFn(start, end)
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newRouter(svc leave.Service, actor domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("employee_id", actor.ID)
		c.Set("role", string(actor.Role))
		c.Next()
	})
	h := leave.NewHandler(svc)
	r.GET("/leaves", h.GetAll)
	r.GET("/leaves/balances", h.Balances)
	r.GET("/leaves/days", h.Days)
	r.GET("/leaves/:id", h.GetById)
	r.POST("/leaves", h.Create)
	r.POST("/leaves/:id/approve", h.Approve)
	r.POST("/leaves/:id/reject", h.Reject)
	r.PATCH("/leaves/:id/status", h.SetStatus)
	return r
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			CreateFn: func(ctx context.Context, actor domain.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, staff, actor)
				assert.Equal(t, "Sick Leave", req.LeaveType)
				return leave.LeaveResponse{ID: "LR-006", Days: 3, Status: "Pending"}, nil
			},
		}
		r := newRouter(svc, staff)

		w := httptest.NewRecorder()
		body := `{"leave_type":"Sick Leave","start_date":"2023-11-10","end_date":"2023-11-12","reason":"Fever"}`
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var data leave.LeaveResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &data))
		assert.Equal(t, "LR-006", data.ID)
		assert.Equal(t, 3, data.Days)
	})

	t.Run("negative - missing fields", func(t *testing.T) {
		r := newRouter(&fakeLeaveService{}, staff)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"leave_type":"Sick Leave"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, leaveerrors.ErrInvalidRequest.Message, env.Error.Message)
	})

	t.Run("negative - overlap", func(t *testing.T) {
		svc := &fakeLeaveService{
			CreateFn: func(ctx context.Context, actor domain.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
			},
		}
		r := newRouter(svc, manager)

		w := httptest.NewRecorder()
		body := `{"leave_type":"Casual Leave","start_date":"2023-11-11","end_date":"2023-11-11","reason":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	svc := &fakeLeaveService{
		GetAllFn: func(ctx context.Context, actor domain.Actor, filter leave.Filter) ([]leave.LeaveResponse, error) {
			assert.Equal(t, "Pending", filter.Status)
			assert.Equal(t, "GTBI-002", filter.EmployeeID)
			return []leave.LeaveResponse{{ID: "LR-005"}, {ID: "LR-002"}}, nil
		},
	}
	r := newRouter(svc, hr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves?status=Pending&employee_id=GTBI-002&page_size=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var data []leave.LeaveResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "LR-005", data[0].ID)
	assert.Contains(t, string(env.Meta), `"total":2`)
}

func TestLeaveHandler_GetById_NotFound(t *testing.T) {
	svc := &fakeLeaveService{
		GetByIDFn: func(ctx context.Context, actor domain.Actor, id string) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		},
	}
	r := newRouter(svc, staff)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/LR-001", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
}

func TestLeaveHandler_Decide(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		svc := &fakeLeaveService{
			SetStatusFn: func(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (leave.LeaveResponse, error) {
				assert.Equal(t, "LR-002", id)
				assert.Equal(t, domain.LeaveStatusApproved, status)
				return leave.LeaveResponse{ID: id, Status: string(status)}, nil
			},
		}
		r := newRouter(svc, hr)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/LR-002/approve", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Approved"`)
	})

	t.Run("approve with insufficient balance", func(t *testing.T) {
		msg := "Insufficient balance for Rohan Kumar for Casual Leave. Approval failed."
		svc := &fakeLeaveService{
			SetStatusFn: func(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInsufficientBalance.WithMessage(msg)
			},
		}
		r := newRouter(svc, hr)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/LR-006/approve", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, msg, decodeEnvelope(t, w.Body.Bytes()).Error.Message)
	})

	t.Run("reject", func(t *testing.T) {
		svc := &fakeLeaveService{
			SetStatusFn: func(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (leave.LeaveResponse, error) {
				assert.Equal(t, domain.LeaveStatusRejected, status)
				return leave.LeaveResponse{ID: id, Status: string(status)}, nil
			},
		}
		r := newRouter(svc, manager)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/LR-005/reject", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("set status - invalid body", func(t *testing.T) {
		r := newRouter(&fakeLeaveService{}, hr)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/leaves/LR-005/status", strings.NewReader(`{"status":"Pending"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("set status - terminal", func(t *testing.T) {
		svc := &fakeLeaveService{
			SetStatusFn: func(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
			},
		}
		r := newRouter(svc, hr)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/leaves/LR-001/status", strings.NewReader(`{"status":"Rejected"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_STATE", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestLeaveHandler_Balances(t *testing.T) {
	svc := &fakeLeaveService{
		BalancesFn: func(ctx context.Context, actor domain.Actor) ([]leave.BalanceResponse, error) {
			return []leave.BalanceResponse{{EmployeeID: actor.ID, Balances: map[string]int{"Casual Leave": 5}}}, nil
		},
	}
	r := newRouter(svc, staff)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/balances", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Casual Leave":5`)
}

func TestLeaveHandler_Days(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			ComputeDaysFn: func(start, end string) (leave.DaysResponse, error) {
				return leave.DaysResponse{StartDate: start, EndDate: end, Days: 3}, nil
			},
		}
		r := newRouter(svc, staff)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/days?start=2023-11-10&end=2023-11-12", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"days":3`)
	})

	t.Run("negative - missing end", func(t *testing.T) {
		r := newRouter(&fakeLeaveService{}, staff)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/days?start=2023-11-10", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
