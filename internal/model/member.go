package model

// Member roles.
const (
	RoleMember = "member"
	RoleLeader = "leader"
	RoleAdmin  = "admin"
)

// Member is a person record independent of any org unit.
// 소속은 Membership으로만 연결된다.
type Member struct {
	UUIDBase

	Name     string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Phone    *string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Role     string  `gorm:"column:role;type:varchar(20);not null;default:member" json:"role"`
	Birthday *string `gorm:"column:birthday;type:varchar(30)" json:"birthday"` // 자유 형식, 날짜 검증 없음

	Memberships []Membership `gorm:"foreignKey:MemberID" json:"-"`

	BaseEntity
}

func (*Member) TableName() string {
	return "members"
}

// Membership links a Member to an OrgUnit with a free-text position label.
// (member, org unit) 당 활성 멤버십은 하나만 두는 것이 의도된 규칙이다.
type Membership struct {
	UUIDBase

	MemberID  string `gorm:"column:member_id;type:varchar(36);not null;index:idx_membership_member" json:"memberId"`
	OrgUnitID string `gorm:"column:org_unit_id;type:varchar(36);not null;index:idx_membership_org_unit" json:"orgUnitId"`
	Position  string `gorm:"column:position;type:varchar(100)" json:"position"`
	IsActive  bool   `gorm:"column:is_active;not null;default:true" json:"isActive"`

	OrgUnit OrgUnit `gorm:"foreignKey:OrgUnitID" json:"-"`

	BaseEntity
}

func (*Membership) TableName() string {
	return "memberships"
}
