package auth_test

import (
	"net/http"
	"testing"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/account"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/auth"
	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*auth.AuthHandler, *testutil.MockTokenManager) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	accountRepo := account.NewAccountRepository()
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(db, accountRepo, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	return authHandler, mockTokenManager
}

func TestSignup_Success(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)

	// Given: Valid signup request
	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			Name:     "관리자",
			Email:    "admin@example.com",
			Password: "password123",
		},
	}

	// When: Execute signup request
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verify response
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)

	// Given: Create first account
	firstRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			Name:     "관리자",
			Email:    "duplicate@example.com",
			Password: "password123",
		},
	}

	firstRecorder := testutil.ExecuteRequest(t, router, firstRequest)
	require.Equal(t, http.StatusCreated, firstRecorder.Code)

	// When: Try to create another account with same email
	duplicateRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			Name:     "다른 관리자",
			Email:    "duplicate@example.com", // Same email
			Password: "password456",
		},
	}

	duplicateRecorder := testutil.ExecuteRequest(t, router, duplicateRequest)

	// Then: Verify error response
	assert.Equal(t, http.StatusConflict, duplicateRecorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, duplicateRecorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Status)
	assert.NotEmpty(t, errorResponse.Message)
	assert.Equal(t, "ACCOUNT-002", errorResponse.Code)
}

func TestSignup_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)

	testCases := []struct {
		name        string
		requestBody map[string]string
		description string
	}{
		{
			name: "Missing name",
			requestBody: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
			description: "Should fail when name is missing",
		},
		{
			name: "Missing email",
			requestBody: map[string]string{
				"name":     "관리자",
				"password": "password123",
			},
			description: "Should fail when email is missing",
		},
		{
			name: "Missing password",
			requestBody: map[string]string{
				"name":  "관리자",
				"email": "test@example.com",
			},
			description: "Should fail when password is missing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Execute request with missing field
			request := testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/signup",
				Body:   tc.requestBody,
			}

			recorder := testutil.ExecuteRequest(t, router, request)

			// Then: Verify validation error
			assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.description)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Status, tc.description)
			assert.NotEmpty(t, errorResponse.Message, tc.description)
			assert.NotEmpty(t, errorResponse.Code, tc.description)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	// Given: A signed-up account
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)
	router.POST("/api/v1/auth/login", authHandler.Login)

	signupRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			Name:     "관리자",
			Email:    "admin@example.com",
			Password: "password123",
		},
	})
	require.Equal(t, http.StatusCreated, signupRecorder.Code)

	// When: Login with the right credentials
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "password123",
		},
	})

	// Then: Both tokens come back
	require.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "mock-access-token", response.AccessToken)
	assert.Equal(t, "mock-refresh-token", response.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Given: A signed-up account
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)
	router.POST("/api/v1/auth/login", authHandler.Login)

	signupRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			Name:     "관리자",
			Email:    "admin@example.com",
			Password: "password123",
		},
	})
	require.Equal(t, http.StatusCreated, signupRecorder.Code)

	// When: Login with a wrong password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrongpassword",
		},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-001", errorResponse.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	// When: Login with an email that was never registered
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "ghost@example.com",
			Password: "password123",
		},
	})

	// Then: Same response as a wrong password, so the email is not revealed
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-001", errorResponse.Code)
}
