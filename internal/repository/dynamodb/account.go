package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kingrain94/account-api/internal/domain"
	"github.com/kingrain94/account-api/internal/repository"
)

const (
	// KeyAttribute is the hash key of the accounts table.
	KeyAttribute = "accountId"

	notExistsCondition = "attribute_not_exists(#pk)"
)

// PutItemAPI is the part of *dynamodb.Client the repository needs.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type AccountRepository struct {
	client    PutItemAPI
	tableName string
}

func NewAccountRepository(client PutItemAPI, tableName string) *AccountRepository {
	return &AccountRepository{
		client:    client,
		tableName: tableName,
	}
}

// Insert writes the account with a condition on the key not existing, so
// duplicates are rejected by DynamoDB without reading the table first.
func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	item, err := attributevalue.MarshalMap(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String(notExistsCondition),
		ExpressionAttributeNames: map[string]string{
			"#pk": KeyAttribute,
		},
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return repository.ErrConditionFailed
		}
		return fmt.Errorf("failed to put account %s: %w", account.AccountID, err)
	}

	return nil
}
