package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"plantlog/entities"
	"plantlog/pkg/auth/repository"
)

type accountRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AccountRepository { return &accountRepo{db} }

func (r *accountRepo) Create(a *entities.Account) error {
	if err := r.db.Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username or email taken: %w", entities.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *accountRepo) FindByUsername(username string) (*entities.Account, error) {
	var a entities.Account
	if err := r.db.Where("username = ?", username).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
