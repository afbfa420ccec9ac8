package attendance

import (
	"context"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type AttendanceRepository struct{}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

func (r *AttendanceRepository) ListByUnitAndDate(ctx context.Context, db *gorm.DB, orgUnitID, date string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := db.WithContext(ctx).
		Where("org_unit_id = ? AND date = ?", orgUnitID, date).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceRepository) FindByKey(ctx context.Context, db *gorm.DB, orgUnitID, memberID, date string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := db.WithContext(ctx).
		Where("org_unit_id = ? AND member_id = ? AND date = ?", orgUnitID, memberID, date).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, db *gorm.DB, record *model.AttendanceRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *AttendanceRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id, status, note string) error {
	return db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "note": note}).Error
}
