package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// UUIDBase provides an opaque string primary key assigned on insert.
// 호스팅 DB와 동일하게 UUID 문자열을 식별자로 사용한다.
type UUIDBase struct {
	ID string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (b *UUIDBase) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
