package account

import (
	"net/http"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
)

const (
	accountAlreadyExists = "ACCOUNT_ALREADY_EXISTS" // errInfo
	accountNotFound      = "ACCOUNT_NOT_FOUND"      // errInfo
)

var (
	ErrAccountAlreadyExists = sharedError.NewDomainError(accountAlreadyExists)
	ErrAccountNotFound      = sharedError.NewDomainError(accountNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(accountNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ACCOUNT-001",
		Message: "계정 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(accountAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "ACCOUNT-002",
		Message: "이미 가입된 계정입니다.",
	})
}
