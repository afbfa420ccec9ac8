package account

import (
	"context"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type AccountRepository struct{}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Account{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AccountRepository) Create(ctx context.Context, db *gorm.DB, account *model.Account) error {
	return db.WithContext(ctx).Create(account).Error
}

func (r *AccountRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Account, error) {
	var account model.Account
	err := db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.Account, error) {
	var account model.Account
	err := db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}
