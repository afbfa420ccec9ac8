package model

// Org unit types. 조직도 노드 유형.
const (
	OrgTypeRoot       = "root"
	OrgTypeCommittee  = "committee"
	OrgTypeDepartment = "department"
	OrgTypeTeam       = "team"
	OrgTypeChoir      = "choir"
)

// OrgUnit is a node in the organization hierarchy.
// ParentID가 nil이면 최상위 조직이다. 형제 순서는 sort_order 오름차순.
type OrgUnit struct {
	UUIDBase

	Name      string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Type      string  `gorm:"column:type;type:varchar(20);not null" json:"type"`
	ParentID  *string `gorm:"column:parent_id;type:varchar(36);index:idx_org_unit_parent" json:"parentId"`
	SortOrder int     `gorm:"column:sort_order;not null;default:0" json:"sortOrder"`

	BaseEntity
}

func (*OrgUnit) TableName() string {
	return "org_units"
}

// IsValidOrgType reports whether t is a known unit type.
func IsValidOrgType(t string) bool {
	switch t {
	case OrgTypeRoot, OrgTypeCommittee, OrgTypeDepartment, OrgTypeTeam, OrgTypeChoir:
		return true
	}
	return false
}
