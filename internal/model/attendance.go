package model

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// AttendanceRecord is keyed by (org unit, member, date).
// date는 yyyy-MM-dd 문자열로 저장한다.
type AttendanceRecord struct {
	UUIDBase

	OrgUnitID string `gorm:"column:org_unit_id;type:varchar(36);not null;index:idx_attendance_unit_date,priority:1" json:"orgUnitId"`
	MemberID  string `gorm:"column:member_id;type:varchar(36);not null" json:"memberId"`
	Date      string `gorm:"column:date;type:varchar(10);not null;index:idx_attendance_unit_date,priority:2" json:"date"`
	Status    string `gorm:"column:status;type:varchar(10);not null" json:"status"`
	Note      string `gorm:"column:note;type:varchar(200)" json:"note"`

	BaseEntity
}

func (*AttendanceRecord) TableName() string {
	return "attendance"
}

// IsValidAttendanceStatus reports whether s is a known status.
func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}
