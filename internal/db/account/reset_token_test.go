package account

import (
	"context"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type resetTokenTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxResetTokenRepository
}

func (suite *resetTokenTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxResetTokenRepository(suite.pool)
}

func (suite *resetTokenTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *resetTokenTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxResetTokenRepository(t *testing.T) {
	suite.Run(t, new(resetTokenTestSuite))
}

func (suite *resetTokenTestSuite) TestCreateAndGet() {
	hash := account.HashResetTokenSecret(account.ResetTokenSecret("secret"))
	err := suite.repo.Create(context.Background(), account.CreateResetTokenInput{
		Email:     c.Email(EMAIL),
		TokenHash: hash,
		CreatedAt: NOW,
	})

	assert := suite.Require()
	assert.Nil(err)

	token, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.Nil(err)
	assert.Equal(hash, token.TokenHash)
	assert.True(NOW.Equal(token.CreatedAt))
	assert.False(token.IsConsumed())

	_, err = suite.repo.GetByEmail(context.Background(), c.Email("missing@test.test"))
	assert.ErrorIs(err, account.ErrResetTokenDoesNotExist)
}

func (suite *resetTokenTestSuite) TestCreateSupersedesPreviousToken() {
	assert := suite.Require()

	firstHash := account.HashResetTokenSecret(account.ResetTokenSecret("first"))
	assert.Nil(suite.repo.Create(context.Background(), account.CreateResetTokenInput{
		Email:     c.Email(EMAIL),
		TokenHash: firstHash,
		CreatedAt: NOW,
	}))
	consumed, err := suite.repo.Consume(context.Background(), c.Email(EMAIL), NOW)
	assert.Nil(err)
	assert.True(consumed)

	secondHash := account.HashResetTokenSecret(account.ResetTokenSecret("second"))
	assert.Nil(suite.repo.Create(context.Background(), account.CreateResetTokenInput{
		Email:     c.Email(EMAIL),
		TokenHash: secondHash,
		CreatedAt: NOW.Add(time.Minute),
	}))

	token, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.Nil(err)
	assert.Equal(secondHash, token.TokenHash)
	assert.False(token.IsConsumed())
}

func (suite *resetTokenTestSuite) TestConsumeExactlyOnce() {
	assert := suite.Require()
	assert.Nil(suite.repo.Create(context.Background(), account.CreateResetTokenInput{
		Email:     c.Email(EMAIL),
		TokenHash: account.HashResetTokenSecret(account.ResetTokenSecret("secret")),
		CreatedAt: NOW,
	}))

	consumed, err := suite.repo.Consume(context.Background(), c.Email(EMAIL), NOW)
	assert.Nil(err)
	assert.True(consumed)

	consumed, err = suite.repo.Consume(context.Background(), c.Email(EMAIL), NOW)
	assert.Nil(err)
	assert.False(consumed)

	token, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.Nil(err)
	assert.True(token.IsConsumed())
}

func (suite *resetTokenTestSuite) TestDeleteByEmail() {
	assert := suite.Require()
	assert.Nil(suite.repo.Create(context.Background(), account.CreateResetTokenInput{
		Email:     c.Email(EMAIL),
		TokenHash: account.HashResetTokenSecret(account.ResetTokenSecret("secret")),
		CreatedAt: NOW,
	}))

	assert.Nil(suite.repo.DeleteByEmail(context.Background(), c.Email(EMAIL)))
	_, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.ErrorIs(err, account.ErrResetTokenDoesNotExist)

	assert.Nil(suite.repo.DeleteByEmail(context.Background(), c.Email(EMAIL)))
}
