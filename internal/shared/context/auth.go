package context

import (
	"net/http"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/logger"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for storing authenticated account information
const (
	AccountIDKey    = "account_id"
	AccountEmailKey = "account_email"
)

func GetAccountID(c *gin.Context) (string, bool) {
	accountID, exists := c.Get(AccountIDKey)
	if !exists {
		return "", false
	}

	id, ok := accountID.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// RequireAccountID retrieves the authenticated account's ID from the Gin context.
// If the account ID is not found, automatically sends an authentication error response.
// Returns the account ID and true if found, empty string and false if not found (error already sent).
// Use this in most handlers to reduce boilerplate.
func RequireAccountID(c *gin.Context) (string, bool) {
	accountID, ok := GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 계정 ID가 존재하지 않습니다.")
		return "", false
	}
	return accountID, true
}
