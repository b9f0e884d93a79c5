package dto

import (
	"github.com/kingrain94/account-api/internal/domain"
)

// AccountResponse represents the account returned after creation
type AccountResponse struct {
	AccountID string  `json:"accountId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string  `json:"name" example:"test-account"`
	Website   string  `json:"website" example:"www.example.com"`
	Comment   *string `json:"comment,omitempty" example:"first customer"`
	CreatedAt string  `json:"createdAt" example:"2025-07-17T21:20:48Z"`
	UpdatedAt string  `json:"updatedAt" example:"2025-07-17T21:20:48Z"`
}

func FromAccount(account *domain.Account) *AccountResponse {
	return &AccountResponse{
		AccountID: account.AccountID,
		Name:      account.Name,
		Website:   account.Website,
		Comment:   account.Comment,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
