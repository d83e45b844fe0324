package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	res SummaryResponse
	err error
}

func (s stubService) Summary(ctx context.Context) (SummaryResponse, error) { return s.res, s.err }

func TestHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/dashboard", NewHandler(stubService{res: SummaryResponse{TotalEmployees: 7, Quarter: "Q4 2023"}}).Summary)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_employees":7`)
	assert.Contains(t, w.Body.String(), `"quarter":"Q4 2023"`)

	r = gin.New()
	r.GET("/dashboard", NewHandler(stubService{err: errors.New("boom")}).Summary)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
