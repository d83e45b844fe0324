package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func TestRBACAuthorize(t *testing.T) {
	svc := &fakeRBAC{enforceFn: func(req domain.EnforceRequest) (bool, error) {
		assert.Equal(t, "leave", req.Resource)
		assert.Equal(t, "manage", req.Action)
		switch req.Role {
		case "Manager":
			return true, nil
		case "Admin":
			return false, errors.New("enforcer down")
		default:
			return false, nil
		}
	}}

	cases := []struct {
		name   string
		role   string
		status int
	}{
		{"allowed", "Manager", http.StatusOK},
		{"forbidden", "Employee", http.StatusForbidden},
		{"no auth context", "", http.StatusUnauthorized},
		{"enforcer error", "Admin", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter()
			r.POST("/leaves/:id/approve",
				func(c *gin.Context) {
					if tc.role != "" {
						c.Set("role", tc.role)
					}
					c.Next()
				},
				middleware.RBACAuthorize(svc, "leave", "manage"),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/LR-002/approve", nil))
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
