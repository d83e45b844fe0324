package app

import (
	"context"
	"encoding/json"
	"iter"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gtb-hrms/internal/assistant"
	"gtb-hrms/internal/config"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLLM struct{}

func (stubLLM) StartChat(ctx context.Context, cfg assistant.ChatConfig) (assistant.Chat, error) {
	return stubChat{}, nil
}

type stubChat struct{}

func (stubChat) SendMessageStream(ctx context.Context, text string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		yield("Namaste", nil)
	}
}

func newTestApp(t *testing.T) (*App, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		SessionSecret:      "test-secret",
		SessionTTL:         time.Hour,
		AssistantTimeout:   time.Second,
		AssistantRateLimit: 10,
		AssistantRateBurst: 10,
		IdempotencyTTL:     time.Minute,
	}
	st := store.NewSeeded()
	a := &App{
		cfg:    cfg,
		store:  st,
		outbox: kafka.NewOutboxRepository(st),
		base:   zap.NewNop(),
		logger: zap.NewNop(),
	}

	r := gin.New()
	require.NoError(t, registerModules(r, a, nil, stubLLM{}))
	return a, r
}

func login(t *testing.T, r http.Handler, role string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/session", strings.NewReader(`{"role":"`+role+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEmpty(t, env.Data.AccessToken)
	return env.Data.AccessToken
}

func call(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_Healthz(t *testing.T) {
	_, r := newTestApp(t)

	w := call(r, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_RequireSession(t *testing.T) {
	_, r := newTestApp(t)

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/employees", "/api/v1/assistant/messages"} {
		w := call(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoutes_EmployeeCapabilities(t *testing.T) {
	_, r := newTestApp(t)
	token := login(t, r, "Employee")

	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/api/v1/dashboard", token, "").Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/api/v1/employees", token, "").Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/api/v1/payrolls", token, "").Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/api/v1/attendances", token, "").Code)
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodPost, "/api/v1/leaves/LR-002/approve", token, "").Code)
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodPost, "/api/v1/employees", token, `{}`).Code)
}

func TestRoutes_ManagerApprovesLeave(t *testing.T) {
	a, r := newTestApp(t)
	token := login(t, r, "Manager")

	w := call(r, http.MethodPost, "/api/v1/leaves/LR-002/approve", token, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	lr, err := a.store.LeaveRequest("LR-002")
	require.NoError(t, err)
	assert.Equal(t, "Approved", string(lr.Status))
}

func TestRoutes_AssistantStreams(t *testing.T) {
	_, r := newTestApp(t)
	token := login(t, r, "Intern")

	w := call(r, http.MethodPost, "/api/v1/assistant/messages", token, `{"message":"What is PF?"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "event:fragment")
	assert.Contains(t, w.Body.String(), "event:done")

	w = call(r, http.MethodGet, "/api/v1/assistant/messages", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Namaste")
}

func TestStartOutboxRelay_DisabledWithoutBroker(t *testing.T) {
	a, _ := newTestApp(t)

	assert.NoError(t, a.StartOutboxRelay(context.Background()))
	assert.Nil(t, a.writer)
}
