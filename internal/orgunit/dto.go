package orgunit

type CreateOrgUnitRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Type      string  `json:"type" binding:"required"`
	ParentID  *string `json:"parentId"`
	SortOrder *int    `json:"sortOrder"`
}

type UpdateOrgUnitRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Type *string `json:"type"`
}

// TreeResponse carries the full forest after every load or structural write,
// plus the node resolved from an optional deep-link id.
type TreeResponse struct {
	Tree     []*Node `json:"tree"`
	Selected *Node   `json:"selected,omitempty"`
}
