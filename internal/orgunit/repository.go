package orgunit

import (
	"context"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type OrgUnitRepository struct{}

func NewOrgUnitRepository() *OrgUnitRepository {
	return &OrgUnitRepository{}
}

// ListAll returns every org unit sorted by sort_order ascending.
// 동순위는 도착(생성) 순서로 정렬된다.
func (r *OrgUnitRepository) ListAll(ctx context.Context, db *gorm.DB) ([]model.OrgUnit, error) {
	var units []model.OrgUnit
	err := db.WithContext(ctx).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (r *OrgUnitRepository) ListByType(ctx context.Context, db *gorm.DB, unitType string) ([]model.OrgUnit, error) {
	var units []model.OrgUnit
	err := db.WithContext(ctx).
		Where("type = ?", unitType).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (r *OrgUnitRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.OrgUnit, error) {
	var unit model.OrgUnit
	err := db.WithContext(ctx).Where("id = ?", id).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *OrgUnitRepository) Create(ctx context.Context, db *gorm.DB, unit *model.OrgUnit) error {
	return db.WithContext(ctx).Create(unit).Error
}

func (r *OrgUnitRepository) UpdateFields(ctx context.Context, db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.WithContext(ctx).
		Model(&model.OrgUnit{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a single unit. Children are not cascaded here; they get
// demoted to roots on the next tree build.
func (r *OrgUnitRepository) Delete(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrgUnit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
