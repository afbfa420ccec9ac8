package roster

import (
	"net/http"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
)

const (
	memberNotFound     = "ROSTER_MEMBER_NOT_FOUND"     // errInfo
	membershipNotFound = "ROSTER_MEMBERSHIP_NOT_FOUND" // errInfo
)

var (
	ErrMemberNotFound     = sharedError.NewDomainError(memberNotFound)
	ErrMembershipNotFound = sharedError.NewDomainError(membershipNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ROSTER-001",
		Message: "성도 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(membershipNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ROSTER-002",
		Message: "소속 정보를 찾을 수 없습니다.",
	})
}
