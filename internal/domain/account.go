package domain

import (
	"time"
)

// APIPath is the collection path new accounts are located under.
const APIPath = "/api/v1/accounts"

// Account is the persisted tenant record. Timestamps are stored as RFC 3339
// strings so every attribute in the table is a string.
type Account struct {
	AccountID string  `dynamodbav:"accountId" gorm:"column:account_id;primaryKey;type:text" json:"accountId"`
	Name      string  `dynamodbav:"name" gorm:"column:name;type:varchar(255);not null" json:"name"`
	Website   string  `dynamodbav:"website" gorm:"column:website;type:varchar(255);not null" json:"website"`
	Comment   *string `dynamodbav:"comment,omitempty" gorm:"column:comment;type:text" json:"comment,omitempty"`
	CreatedAt string  `dynamodbav:"createdAt" gorm:"column:created_at;type:text;not null" json:"createdAt"`
	UpdatedAt string  `dynamodbav:"updatedAt" gorm:"column:updated_at;type:text;not null" json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}

// NewAccount builds the record for a validated request. createdAt and
// updatedAt are always equal on a new record.
func NewAccount(id string, req *AccountRequest, now time.Time) *Account {
	ts := now.UTC().Format(time.RFC3339)

	account := &Account{
		AccountID: id,
		Name:      req.Name(),
		Website:   req.Website(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if comment, ok := req.Comment(); ok {
		account.Comment = &comment
	}
	return account
}

// Location returns the resource path of the account.
func (a *Account) Location() string {
	return APIPath + "/" + a.AccountID
}
