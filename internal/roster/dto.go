package roster

import (
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/position"
)

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Position string `json:"position" binding:"omitempty,max=100"`
	Birthday string `json:"birthday" binding:"omitempty,max=30"`
}

type UpdateMemberRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Position string `json:"position" binding:"omitempty,max=100"`
	Birthday string `json:"birthday" binding:"omitempty,max=30"`
}

// MemberSummary is one roster row of a unit's detail view.
// Parsed는 position 문자열에서 매번 다시 계산되는 파생값이다.
type MemberSummary struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone,omitempty"`
	Role     string          `json:"role"`
	Position string          `json:"position,omitempty"`
	Parsed   position.Parsed `json:"parsed"`
}

type MemberListResponse struct {
	Members []MemberSummary `json:"members"`
	Total   int             `json:"total"`
}

type Affiliation struct {
	OrgUnitID   string `json:"unitId"`
	OrgUnitName string `json:"unitName"`
	Position    string `json:"position,omitempty"`
}

type SearchHit struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone,omitempty"`
	Role         string        `json:"role"`
	Affiliations []Affiliation `json:"affiliations"`
}

type SearchResponse struct {
	Members []SearchHit `json:"members"`
}
