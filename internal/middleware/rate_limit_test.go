package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gtb-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByUser(t *testing.T) {
	r := setupRouter()
	r.POST("/assistant/messages",
		func(c *gin.Context) {
			c.Set("employee_id", c.GetHeader("X-Employee"))
			c.Next()
		},
		middleware.RateLimitByUser(0.001, 2),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	send := func(employee string) int {
		req := httptest.NewRequest(http.MethodPost, "/assistant/messages", nil)
		req.Header.Set("X-Employee", employee)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("GTBI-002"))
	assert.Equal(t, http.StatusOK, send("GTBI-002"))
	assert.Equal(t, http.StatusTooManyRequests, send("GTBI-002"))

	// buckets are per user
	assert.Equal(t, http.StatusOK, send("GTBI-006"))

	// anonymous requests are not limited here
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, send(""))
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.POST("/auth/session", middleware.RateLimitByIP(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
