package attendance

import (
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
)

type UpsertRequest struct {
	MemberID string `json:"memberId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Note     string `json:"note" binding:"omitempty,max=200"`
}

// DaySummary mirrors the attendance view's status cards.
type DaySummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

type DayResponse struct {
	Records []model.AttendanceRecord `json:"records"`
	Summary DaySummary               `json:"summary"`
}
