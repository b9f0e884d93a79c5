package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/account-api/internal/domain"
	"github.com/kingrain94/account-api/internal/repository"
	"github.com/kingrain94/account-api/pkg/logger"
)

type EventPublisher interface {
	PublishAccountCreated(ctx context.Context, account *domain.Account) error
}

type AccountService struct {
	repo      repository.AccountRepository
	validator *AccountValidator
	publisher EventPublisher
	logger    *logger.Logger

	newID func() string
	now   func() time.Time
}

func NewAccountService(repo repository.AccountRepository, logger *logger.Logger) *AccountService {
	return &AccountService{
		repo:      repo,
		validator: NewAccountValidator(),
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// SetEventPublisher enables account-created notifications
func (s *AccountService) SetEventPublisher(publisher EventPublisher) {
	s.publisher = publisher
}

// Create validates the body and inserts a new account under a generated ID.
// A nil body reads as an empty one and fails validation.
// Validation problems and key conflicts come back as *domain.Failure; any
// other store error is logged and returned as is.
func (s *AccountService) Create(ctx context.Context, body map[string]*string) (domain.Result, error) {
	req, failure := s.validator.Validate(body)
	if failure != nil {
		s.logger.Warn("Account request rejected", zap.String("reason", failure.Message))
		return failure, nil
	}

	return s.insert(ctx, req)
}

func (s *AccountService) insert(ctx context.Context, req *domain.AccountRequest) (domain.Result, error) {
	account := domain.NewAccount(s.newID(), req, s.now())

	if err := s.repo.Insert(ctx, account); err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			s.logger.Warn("Account already exists", zap.String("account_id", account.AccountID))
			return domain.NewConflictFailure(), nil
		}
		s.logger.Error("Failed to store account", err, zap.String("account_id", account.AccountID))
		return nil, err
	}

	s.logger.Info("Account created", zap.String("account_id", account.AccountID))

	if s.publisher != nil {
		if err := s.publisher.PublishAccountCreated(ctx, account); err != nil {
			s.logger.Error("Failed to publish account created event", err, zap.String("account_id", account.AccountID))
		}
	}

	return &domain.Success{
		Account:  account,
		Location: account.Location(),
	}, nil
}
