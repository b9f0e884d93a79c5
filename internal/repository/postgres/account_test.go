package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kingrain94/account-api/internal/domain"
	"github.com/kingrain94/account-api/internal/repository"
	"github.com/kingrain94/account-api/internal/testutil"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *AccountRepository
}

func (s *AccountRepositoryTestSuite) SetupSuite() {
	testutil.SkipIfNoDocker(s.T())

	db, err := gorm.Open(gormpostgres.Open(testutil.NewPostgresDSN(s.T())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(Migrate(db))

	s.db = db
	s.repo = NewAccountRepository(db)
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE accounts").Error)
}

func TestAccountRepository(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func newAccount(id, name string) *domain.Account {
	return &domain.Account{
		AccountID: id,
		Name:      name,
		Website:   "www.example.com",
		CreatedAt: "2025-07-17T21:20:48Z",
		UpdatedAt: "2025-07-17T21:20:48Z",
	}
}

func (s *AccountRepositoryTestSuite) TestInsert_Success() {
	comment := "first tenant"
	account := newAccount("1", "test-account")
	account.Comment = &comment

	s.Require().NoError(s.repo.Insert(context.Background(), account))

	var stored domain.Account
	s.Require().NoError(s.db.First(&stored, "account_id = ?", "1").Error)
	s.Equal(*account, stored)
}

func (s *AccountRepositoryTestSuite) TestInsert_WithoutComment() {
	s.Require().NoError(s.repo.Insert(context.Background(), newAccount("1", "test-account")))

	var stored domain.Account
	s.Require().NoError(s.db.First(&stored, "account_id = ?", "1").Error)
	s.Nil(stored.Comment)
}

func (s *AccountRepositoryTestSuite) TestInsert_ConflictKeepsOriginal() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, newAccount("1", "original")))

	err := s.repo.Insert(ctx, newAccount("1", "replacement"))

	s.ErrorIs(err, repository.ErrConditionFailed)

	var count int64
	s.Require().NoError(s.db.Model(&domain.Account{}).Where("account_id = ?", "1").Count(&count).Error)
	s.Equal(int64(1), count)

	var stored domain.Account
	s.Require().NoError(s.db.First(&stored, "account_id = ?", "1").Error)
	s.Equal("original", stored.Name)
}

func (s *AccountRepositoryTestSuite) TestInsert_ConcurrentSameKey() {
	const writers = 8
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.repo.Insert(context.Background(), newAccount("1", "writer"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			s.True(errors.Is(err, repository.ErrConditionFailed), err)
		}
	}
	s.Equal(1, succeeded)
}

func (s *AccountRepositoryTestSuite) TestMigrate_Idempotent() {
	s.NoError(Migrate(s.db))
	s.True(s.db.Migrator().HasTable(&domain.Account{}))
}
