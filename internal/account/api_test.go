package account_test

import (
	"net/http"
	"testing"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/account"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	sharedContext "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/context"
	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for account handler tests.
// authenticatedAs stands in for the JWT middleware by injecting the account id.
func setupTestEnvironment(t *testing.T) (*account.AccountHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	accountRepo := account.NewAccountRepository()
	accountService := account.NewAccountService(db, accountRepo)
	accountHandler := account.NewAccountHandler(accountService)

	return accountHandler, db
}

func authenticatedAs(accountID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sharedContext.AccountIDKey, accountID)
		c.Set(sharedContext.AccountEmailKey, email)
		c.Next()
	}
}

func TestGetProfile_Success(t *testing.T) {
	// Given: A stored account and an authenticated request
	accountHandler, db := setupTestEnvironment(t)

	acc := model.NewAccount("관리자", "admin@example.com", "hashed-password")
	require.NoError(t, db.Create(acc).Error)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/accounts/me", authenticatedAs(acc.ID, acc.Email), accountHandler.GetProfile)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/accounts/me",
	})

	// Then: The profile comes back without the password
	require.Equal(t, http.StatusOK, recorder.Code)

	var response account.GetProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, acc.ID, response.ID)
	assert.Equal(t, "관리자", response.Name)
	assert.Equal(t, "admin@example.com", response.Email)
}

func TestGetProfile_AccountNotFound(t *testing.T) {
	// Given: An authenticated request for an account that no longer exists
	accountHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/accounts/me", authenticatedAs("no-such-account", "ghost@example.com"), accountHandler.GetProfile)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/accounts/me",
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ACCOUNT-001", errorResponse.Code)
}
