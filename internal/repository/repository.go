package repository

import (
	"context"
	"errors"

	"github.com/kingrain94/account-api/internal/domain"
)

// ErrConditionFailed is returned by Insert when a record with the same key
// already exists. The check is made by the store as part of the write.
var ErrConditionFailed = errors.New("conditional insert failed: key already exists")

type AccountRepository interface {
	// Insert stores the account only if no record with its AccountID exists.
	Insert(ctx context.Context, account *domain.Account) error
}
