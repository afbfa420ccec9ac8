package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/database"
	"gorm.io/gorm"
)

type AccountService struct {
	db                *gorm.DB
	accountRepository *AccountRepository
}

func NewAccountService(db *gorm.DB, accountRepository *AccountRepository) *AccountService {
	return &AccountService{
		db:                db,
		accountRepository: accountRepository,
	}
}

func (s *AccountService) GetProfile(ctx context.Context, accountID string) (*GetProfileResponse, error) {
	var response *GetProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		account, err := s.accountRepository.FindByID(ctx, tx, accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("계정을 찾을 수 없습니다 accountID=%s %w", accountID, ErrAccountNotFound)
			}
			return fmt.Errorf("계정 조회 실패: %w", err)
		}

		response = &GetProfileResponse{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}
