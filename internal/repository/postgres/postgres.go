package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/account-api/internal/domain"
)

// Migrate creates the accounts table when it does not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Account{}); err != nil {
		return fmt.Errorf("failed to migrate accounts table: %w", err)
	}
	return nil
}
