package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gtb-hrms/internal/assistant"
	assistanterrors "gtb-hrms/internal/assistant/errors"
	assistantMock "gtb-hrms/internal/assistant/mock"
	"gtb-hrms/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newRouter(svc assistant.Service, actor domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("employee_id", actor.ID)
		c.Set("role", string(actor.Role))
		c.Next()
	})
	h := assistant.NewHandler(svc)
	r.GET("/assistant/messages", h.Transcript)
	r.POST("/assistant/messages", h.Send)
	r.DELETE("/assistant/messages", h.Reset)
	return r
}

func doRequest(r http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/assistant/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAssistantHandler_Transcript(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := assistantMock.NewMockService(ctrl)
	svc.EXPECT().Transcript(gomock.Any(), staff).
		Return([]assistant.MessageResponse{{Role: assistant.RoleModel, Text: assistant.Greeting}})

	w := doRequest(newRouter(svc, staff), http.MethodGet, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.OK)
	var msgs []assistant.MessageResponse
	require.NoError(t, json.Unmarshal(env.Data, &msgs))
	require.Len(t, msgs, 1)
	assert.Equal(t, assistant.Greeting, msgs[0].Text)
}

func TestAssistantHandler_Send_Streams(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := assistantMock.NewMockService(ctrl)
	svc.EXPECT().Send(gomock.Any(), staff, "hi", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ string, onFragment func(string)) (assistant.MessageResponse, error) {
			onFragment("Hello")
			onFragment(" there")
			return assistant.MessageResponse{Role: assistant.RoleModel, Text: "Hello there"}, nil
		})

	w := doRequest(newRouter(svc, staff), http.MethodPost, `{"message":"hi"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	body := w.Body.String()
	assert.Contains(t, body, "event:fragment\ndata:{\"text\":\"Hello\"}")
	assert.Contains(t, body, "event:fragment\ndata:{\"text\":\" there\"}")
	assert.Contains(t, body, "event:done\ndata:{\"role\":\"model\",\"text\":\"Hello there\"}")
	assert.Less(t, strings.Index(body, "event:fragment"), strings.Index(body, "event:done"))
}

func TestAssistantHandler_Send_FailureEmitsErrorEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := assistantMock.NewMockService(ctrl)
	svc.EXPECT().Send(gomock.Any(), staff, "hi", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ string, onFragment func(string)) (assistant.MessageResponse, error) {
			onFragment("Par")
			return assistant.MessageResponse{Role: assistant.RoleModel, Text: assistant.Apology}, assistanterrors.ErrUnavailable
		})

	w := doRequest(newRouter(svc, staff), http.MethodPost, `{"message":"hi"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "event:error")
	assert.Contains(t, body, assistant.Apology)
	assert.Contains(t, body, "SERVICE_UNAVAILABLE")
	assert.NotContains(t, body, "event:done")
}

func TestAssistantHandler_Send_FailureBeforeFirstFragment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := assistantMock.NewMockService(ctrl)
	svc.EXPECT().Send(gomock.Any(), staff, "hi", gomock.Any()).
		Return(assistant.MessageResponse{Role: assistant.RoleModel, Text: assistant.Apology}, assistanterrors.ErrUnavailable)

	w := doRequest(newRouter(svc, staff), http.MethodPost, `{"message":"hi"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, w.Body.String(), "event:error")
}

func TestAssistantHandler_Send_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"busy", assistanterrors.ErrBusy, http.StatusConflict, "CONFLICT"},
		{"blank", assistanterrors.ErrEmptyMessage, http.StatusBadRequest, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := assistantMock.NewMockService(ctrl)
			svc.EXPECT().Send(gomock.Any(), staff, gomock.Any(), gomock.Any()).
				Return(assistant.MessageResponse{}, tt.err)

			w := doRequest(newRouter(svc, staff), http.MethodPost, `{"message":"  "}`)

			assert.Equal(t, tt.status, w.Code)
			var env apiEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.False(t, env.OK)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestAssistantHandler_Send_MissingMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := assistantMock.NewMockService(ctrl)

	w := doRequest(newRouter(svc, staff), http.MethodPost, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, assistanterrors.ErrEmptyMessage.Message, env.Error.Message)
}

func TestAssistantHandler_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := assistantMock.NewMockService(ctrl)
	svc.EXPECT().Reset(gomock.Any(), manager).
		Return([]assistant.MessageResponse{{Role: assistant.RoleModel, Text: assistant.Greeting}})

	w := doRequest(newRouter(svc, manager), http.MethodDelete, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), assistant.Greeting)
}

func TestAssistantHandler_Send_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"message":`},
		{"wrong type", `{"message":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := assistantMock.NewMockService(ctrl)

			w := doRequest(newRouter(svc, staff), http.MethodPost, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var env apiEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
			assert.Equal(t, "Invalid input", env.Error.Message)
		})
	}
}
