package payroll

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func getActor(c *gin.Context) domain.Actor {
	return domain.Actor{ID: c.GetString("employee_id"), Role: domain.Role(c.GetString("role"))}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	var q ListPayrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid query", nil)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), getActor(c), Filter{Department: q.Department, Query: q.Query})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	var q PayslipQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := h.service.GetPayslip(c.Request.Context(), getActor(c), c.Param("employee_id"), q.Period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	var q PayslipQuery
	_ = c.ShouldBindQuery(&q)

	file, err := h.service.DownloadPayslip(c.Request.Context(), getActor(c), c.Param("employee_id"), q.Period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(file.Content)))
	c.Data(http.StatusOK, "application/pdf", file.Content)
}
