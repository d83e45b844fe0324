package attendance

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
	"gtb-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetAll: ?date=YYYY-MM-DD&status=Present|Late|Absent&employee_id=
func (h *Handler) GetAll(c *gin.Context) {
	var q ListAttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid query", nil)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), Filter{Date: q.Date, Status: q.Status, EmployeeID: q.EmployeeID})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}
