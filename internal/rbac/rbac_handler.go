package rbac

import (
	"net/http"
	"strings"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/shared/apperror"
	"gtb-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, appErr.Message, nil)
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, err.Error(), nil)
		return
	}
	req.Role = string(role)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.logger.Error("http enforce failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

// Capabilities returns the table row for ?role=, or for the caller's own role.
func (h *Handler) Capabilities(c *gin.Context) {
	raw := c.Query("role")
	if raw == "" {
		raw = c.GetString("role")
	}

	role, err := domain.ParseRole(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, err.Error(), nil)
		return
	}

	resp, err := h.service.RoleCapabilities(role)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
