package roster

import (
	"net/http"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	rosterService *RosterService
}

func NewRosterHandler(rosterService *RosterService) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

func (h *RosterHandler) ListMembers(c *gin.Context) {
	response, err := h.rosterService.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *RosterHandler) CreateMember(c *gin.Context) {
	var request CreateMemberRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	member, err := h.rosterService.CreateInUnit(c.Request.Context(), c.Param("id"), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *RosterHandler) UpdateMember(c *gin.Context) {
	var request UpdateMemberRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	err := h.rosterService.UpdateInUnit(c.Request.Context(), c.Param("id"), c.Param("memberId"), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *RosterHandler) RemoveMember(c *gin.Context) {
	err := h.rosterService.RemoveFromUnit(c.Request.Context(), c.Param("id"), c.Param("memberId"))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *RosterHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, SearchResponse{Members: []SearchHit{}})
		return
	}

	response, err := h.rosterService.Search(c.Request.Context(), query)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}
