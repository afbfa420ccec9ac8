package roster

import (
	"context"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type RosterRepository struct{}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{}
}

// ListActiveMemberships returns a unit's active memberships with member rows
// preloaded. 이름 정렬은 로케일 비교가 필요해서 서비스 계층에서 수행한다.
func (r *RosterRepository) ListActiveMemberships(ctx context.Context, db *gorm.DB, orgUnitID string) ([]model.Membership, []model.Member, error) {
	var memberships []model.Membership
	err := db.WithContext(ctx).
		Where("org_unit_id = ? AND is_active = ?", orgUnitID, true).
		Find(&memberships).Error
	if err != nil {
		return nil, nil, err
	}

	if len(memberships) == 0 {
		return memberships, nil, nil
	}

	memberIDs := make([]string, 0, len(memberships))
	for _, ms := range memberships {
		memberIDs = append(memberIDs, ms.MemberID)
	}

	var members []model.Member
	err = db.WithContext(ctx).Where("id IN ?", memberIDs).Find(&members).Error
	if err != nil {
		return nil, nil, err
	}

	return memberships, members, nil
}

func (r *RosterRepository) CreateMember(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *RosterRepository) CreateMembership(ctx context.Context, db *gorm.DB, membership *model.Membership) error {
	return db.WithContext(ctx).Create(membership).Error
}

func (r *RosterRepository) UpdateMember(ctx context.Context, db *gorm.DB, memberID string, fields map[string]interface{}) error {
	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", memberID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RosterRepository) UpdateMembershipPosition(ctx context.Context, db *gorm.DB, orgUnitID, memberID, pos string) error {
	result := db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("org_unit_id = ? AND member_id = ?", orgUnitID, memberID).
		Update("position", pos)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteMembership removes the join row only; the member record survives.
func (r *RosterRepository) DeleteMembership(ctx context.Context, db *gorm.DB, orgUnitID, memberID string) error {
	result := db.WithContext(ctx).
		Where("org_unit_id = ? AND member_id = ?", orgUnitID, memberID).
		Delete(&model.Membership{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

const searchLimit = 10

// SearchMembersByName returns members whose name contains the query,
// with memberships and their org units preloaded for affiliation mapping.
func (r *RosterRepository) SearchMembersByName(ctx context.Context, db *gorm.DB, query string) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Limit(searchLimit).
		Preload("Memberships").
		Preload("Memberships.OrgUnit").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
