package localstore

import (
	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/auth"
	"github.com/adrianlim/onboarding-tracker/pkg/localstore"
)

// AccountRepository implements auth.RepositoryAPI on the JSON document store.
type AccountRepository struct {
	store *localstore.Store
}

func NewAccountRepository(store *localstore.Store) auth.RepositoryAPI {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) GetByEmail(email string) (*auth.Account, error) {
	return r.findOne(func(rec localstore.AccountRecord) bool {
		return rec.Email == email
	})
}

func (r *AccountRepository) GetByID(id string) (*auth.Account, error) {
	return r.findOne(func(rec localstore.AccountRecord) bool {
		return rec.ID == id
	})
}

func (r *AccountRepository) Create(account *auth.Account) error {
	err := r.store.Mutate(func(doc *localstore.Document) error {
		doc.Accounts = append(doc.Accounts, localstore.AccountRecord{
			ID:           account.ID,
			Email:        account.Email,
			PasswordHash: account.PasswordHash,
			Role:         account.Role,
			CreatedAt:    account.CreatedAt,
			UpdatedAt:    account.UpdatedAt,
		})
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to persist account", err)
	}
	return nil
}

func (r *AccountRepository) findOne(match func(localstore.AccountRecord) bool) (*auth.Account, error) {
	var account *auth.Account
	err := r.store.View(func(doc *localstore.Document) error {
		for _, rec := range doc.Accounts {
			if match(rec) {
				account = &auth.Account{
					ID:           rec.ID,
					Email:        rec.Email,
					PasswordHash: rec.PasswordHash,
					Role:         rec.Role,
					CreatedAt:    rec.CreatedAt,
					UpdatedAt:    rec.UpdatedAt,
				}
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, internal.NewPersistenceError("failed to read account", err)
	}
	if account == nil {
		return nil, internal.ErrAccountNotFound
	}
	return account, nil
}
