package uow

import (
	"context"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/db"
	dbaccount "swapcloset/internal/db/account"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const EMAIL = c.Email("member@test.test")

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	assert := s.Require()

	u, err := s.uow.Begin(ctx)
	assert.Nil(err)

	_, err = u.Accounts().Create(ctx, account.CreateAccountInput{
		Name:         "Member",
		Email:        EMAIL,
		PasswordHash: account.PasswordHash("test"),
		CreatedAt:    time.Now().UTC(),
	})
	assert.Nil(err)
	assert.Nil(u.Rollback(ctx))

	_, err = s.accountsOutsideTx().GetByEmail(ctx, EMAIL)
	assert.ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (s *testSuite) TestCommitAppliesPasswordAndTokenChangesTogether() {
	ctx := context.Background()
	assert := s.Require()

	created := s.createAccount()
	assert.Nil(s.resetTokensOutsideTx().Create(ctx, account.CreateResetTokenInput{
		Email:     EMAIL,
		TokenHash: account.HashResetTokenSecret(account.ResetTokenSecret("secret")),
		CreatedAt: time.Now().UTC(),
	}))

	u, err := s.uow.Begin(ctx)
	assert.Nil(err)
	defer u.Rollback(ctx)

	consumed, err := u.ResetTokens().Consume(ctx, EMAIL, time.Now().UTC())
	assert.Nil(err)
	assert.True(consumed)
	assert.Nil(u.Accounts().SetPassword(ctx, account.SetPasswordInput{
		ID:           created.ID,
		PasswordHash: account.PasswordHash("new-hash"),
	}))
	assert.Nil(u.Commit(ctx))

	stored, err := s.accountsOutsideTx().GetByID(ctx, created.ID)
	assert.Nil(err)
	assert.Equal(account.PasswordHash("new-hash"), stored.PasswordHash)

	token, err := s.resetTokensOutsideTx().GetByEmail(ctx, EMAIL)
	assert.Nil(err)
	assert.True(token.IsConsumed())
}

func (s *testSuite) createAccount() account.Account {
	s.T().Helper()

	a, err := s.accountsOutsideTx().Create(context.Background(), account.CreateAccountInput{
		Name:         "Member",
		Email:        EMAIL,
		PasswordHash: account.PasswordHash("test"),
		CreatedAt:    time.Now().UTC(),
	})
	s.Require().Nil(err)
	return a
}

func (s *testSuite) accountsOutsideTx() account.AccountRepository {
	return dbaccount.NewPgxRepository(s.pool)
}

func (s *testSuite) resetTokensOutsideTx() account.ResetTokenRepository {
	return dbaccount.NewPgxResetTokenRepository(s.pool)
}
