package orgunit

import (
	"net/http"

	sharedError "github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/error"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type OrgUnitHandler struct {
	orgUnitService *OrgUnitService
}

func NewOrgUnitHandler(orgUnitService *OrgUnitService) *OrgUnitHandler {
	return &OrgUnitHandler{
		orgUnitService: orgUnitService,
	}
}

// GetTree returns the full forest. ?unitId= deep-links a node to select.
func (h *OrgUnitHandler) GetTree(c *gin.Context) {
	response, err := h.orgUnitService.LoadTree(c.Request.Context(), c.Query("unitId"))
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListByType returns a flat list, e.g. ?type=choir for the attendance view.
func (h *OrgUnitHandler) ListByType(c *gin.Context) {
	units, err := h.orgUnitService.ListByType(c.Request.Context(), c.Query("type"))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"units": units})
}

func (h *OrgUnitHandler) Create(c *gin.Context) {
	var request CreateOrgUnitRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.orgUnitService.Create(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *OrgUnitHandler) Update(c *gin.Context) {
	var request UpdateOrgUnitRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.orgUnitService.Update(c.Request.Context(), c.Param("id"), &request)
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

func (h *OrgUnitHandler) Delete(c *gin.Context) {
	response, err := h.orgUnitService.Delete(c.Request.Context(), c.Param("id"))
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
