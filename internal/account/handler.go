package account

import (
	sharedContext "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/context"
	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService *AccountService
}

func NewAccountHandler(accountService *AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	accountID, ok := sharedContext.RequireAccountID(c)
	if !ok {
		return
	}

	response, err := h.accountService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
