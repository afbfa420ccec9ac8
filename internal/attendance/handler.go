package attendance

import (
	"net/http"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService *AttendanceService
}

func NewAttendanceHandler(attendanceService *AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

func (h *AttendanceHandler) GetByDate(c *gin.Context) {
	response, err := h.attendanceService.GetByDate(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AttendanceHandler) Upsert(c *gin.Context) {
	var request UpsertRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	record, err := h.attendanceService.Upsert(c.Request.Context(), c.Param("id"), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, record)
}
