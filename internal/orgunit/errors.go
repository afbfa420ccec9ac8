package orgunit

import (
	"net/http"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
)

const (
	orgUnitNotFound    = "ORG_UNIT_NOT_FOUND"    // errInfo
	orgUnitInvalidType = "ORG_UNIT_INVALID_TYPE" // errInfo
)

var (
	ErrOrgUnitNotFound    = sharedError.NewDomainError(orgUnitNotFound)
	ErrOrgUnitInvalidType = sharedError.NewDomainError(orgUnitInvalidType)
)

func init() {
	sharedError.RegisterDomainErrorResponse(orgUnitNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ORG-001",
		Message: "조직을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(orgUnitInvalidType, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ORG-002",
		Message: "유효하지 않은 조직 유형입니다.",
	})
}
