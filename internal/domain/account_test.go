package domain

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	now := time.Date(2025, 7, 17, 23, 20, 48, 0, time.FixedZone("CEST", 2*3600))
	comment := "test-comment"
	req := NewAccountRequest("test-account", "www.example.com", &comment)
	comment = "changed"

	account := NewAccount("acc-1", req, now)

	assert.Equal(t, "acc-1", account.AccountID)
	assert.Equal(t, "test-account", account.Name)
	assert.Equal(t, "www.example.com", account.Website)
	require.NotNil(t, account.Comment)
	assert.Equal(t, "test-comment", *account.Comment)
	assert.Equal(t, "2025-07-17T21:20:48Z", account.CreatedAt)
	assert.Equal(t, account.CreatedAt, account.UpdatedAt)
	assert.Equal(t, "/api/v1/accounts/acc-1", account.Location())
}

func TestNewAccount_WithoutComment(t *testing.T) {
	account := NewAccount("acc-1", NewAccountRequest("n", "www.example.com", nil), time.Now())

	assert.Nil(t, account.Comment)
}

func TestResultStatus(t *testing.T) {
	var results = []Result{
		&Success{},
		NewValidationFailure("name may not be null"),
		NewConflictFailure(),
	}

	assert.Equal(t, http.StatusCreated, results[0].Status())
	assert.Equal(t, http.StatusBadRequest, results[1].Status())
	assert.Equal(t, http.StatusConflict, results[2].Status())
	assert.Equal(t, "Conflict with item", results[2].(*Failure).Message)
}
