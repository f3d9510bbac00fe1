package postgres

import (
	"errors"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/auth"
	"gorm.io/gorm"
)

// AccountRepository implements auth.RepositoryAPI using GORM
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByEmail(email string) (*auth.Account, error) {
	var account auth.Account
	err := r.db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrAccountNotFound
		}
		return nil, internal.NewPersistenceError("failed to read account", err)
	}
	return &account, nil
}

func (r *AccountRepository) GetByID(id string) (*auth.Account, error) {
	var account auth.Account
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrAccountNotFound
		}
		return nil, internal.NewPersistenceError("failed to read account", err)
	}
	return &account, nil
}

func (r *AccountRepository) Create(account *auth.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return internal.NewPersistenceError("failed to persist account", err)
	}
	return nil
}
