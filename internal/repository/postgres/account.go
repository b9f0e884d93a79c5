package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/account-api/internal/domain"
	"github.com/kingrain94/account-api/internal/repository"
)

type AccountRepository struct {
	writerDB *gorm.DB
}

func NewAccountRepository(writerDB *gorm.DB) *AccountRepository {
	return &AccountRepository{
		writerDB: writerDB,
	}
}

// Insert relies on ON CONFLICT DO NOTHING: a conflicting key leaves the
// existing row untouched and reports zero affected rows.
func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	result := r.writerDB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoNothing: true,
		}).
		Create(account)
	if result.Error != nil {
		return fmt.Errorf("failed to insert account %s: %w", account.AccountID, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrConditionFailed
	}
	return nil
}
