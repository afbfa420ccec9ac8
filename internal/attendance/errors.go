package attendance

import (
	"net/http"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
)

const (
	invalidStatus = "ATTENDANCE_INVALID_STATUS" // errInfo
	invalidDate   = "ATTENDANCE_INVALID_DATE"   // errInfo
)

var (
	ErrInvalidStatus = sharedError.NewDomainError(invalidStatus)
	ErrInvalidDate   = sharedError.NewDomainError(invalidDate)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidStatus, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ATT-001",
		Message: "유효하지 않은 출석 상태입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidDate, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ATT-002",
		Message: "날짜 형식이 올바르지 않습니다. (yyyy-MM-dd)",
	})
}
