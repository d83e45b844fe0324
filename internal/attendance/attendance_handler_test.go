package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	attendanceerrors "gtb-hrms/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	getAllFn func(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
}

func (f *fakeService) GetAll(ctx context.Context, filter Filter) ([]AttendanceResponse, error) {
	return f.getAllFn(ctx, filter)
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters through", func(t *testing.T) {
		svc := &fakeService{getAllFn: func(ctx context.Context, filter Filter) ([]AttendanceResponse, error) {
			assert.Equal(t, Filter{Date: "2023-10-27", Status: "Late", EmployeeID: "GTBI-002"}, filter)
			return []AttendanceResponse{{EmployeeID: "GTBI-002", Status: "Late"}}, nil
		}}
		r := gin.New()
		r.GET("/attendances", NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendances?date=2023-10-27&status=Late&employee_id=GTBI-002", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Late"`)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := &fakeService{getAllFn: func(ctx context.Context, filter Filter) ([]AttendanceResponse, error) {
			return nil, attendanceerrors.ErrInvalidDate
		}}
		r := gin.New()
		r.GET("/attendances", NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendances?date=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}
