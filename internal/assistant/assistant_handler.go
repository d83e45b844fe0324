package assistant

import (
	"errors"
	"net/http"

	assistanterrors "gtb-hrms/internal/assistant/errors"
	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/shared/apperror"
	"gtb-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assistant.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.handler")
	}
	return &Handler{service: service, logger: l}
}

func getActor(c *gin.Context) domain.Actor {
	return domain.Actor{ID: c.GetString("employee_id"), Role: domain.Role(c.GetString("role"))}
}

func (h *Handler) Transcript(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Transcript(c.Request.Context(), getActor(c)), nil)
}

func (h *Handler) Reset(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Reset(c.Request.Context(), getActor(c)), nil)
}

// Send replies with server-sent events: zero or more "fragment" events, then
// either "done" carrying the full reply or "error" carrying the apology.
// Input errors are rejected with the JSON envelope before the stream opens.
func (h *Handler) Send(c *gin.Context) {
	actor := getActor(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http assistant send bind failed", zap.Error(err))
		writeBindError(c, err)
		return
	}

	opened := false
	open := func() {
		if opened {
			return
		}
		opened = true
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)
	}
	emit := func(event string, data any) {
		open()
		c.SSEvent(event, data)
		c.Writer.Flush()
	}

	reply, err := h.service.Send(c.Request.Context(), actor, req.Message, func(fragment string) {
		emit("fragment", FragmentEvent{Text: fragment})
	})
	if err != nil {
		if !errors.Is(err, assistanterrors.ErrUnavailable) {
			httpErr := apperror.ToHTTP(err)
			h.logger.Warn("assistant send rejected",
				zap.String("employee_id", actor.ID),
				zap.String("code", httpErr.Code),
			)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		emit("error", ErrorEvent{Code: assistanterrors.ErrUnavailable.Code, Message: reply})
		return
	}
	emit("done", reply)
}

// writeBindError keeps the empty-message text for a missing message and maps
// malformed bodies the same way the other handlers do.
func writeBindError(c *gin.Context, err error) {
	msg := apperror.ToHTTP(apperror.MapValidationError(err)).Message
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msg = assistanterrors.ErrEmptyMessage.Message
	}
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, msg, nil)
}
