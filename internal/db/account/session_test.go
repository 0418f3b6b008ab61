package account

import (
	"context"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/db"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = "test-session-token"

type sessionTestSuite struct {
	suite.Suite
	pool        *pgxpool.Pool
	accountRepo *PgxAccountRepository
	repo        *PgxSessionRepository
}

func (suite *sessionTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.accountRepo = NewPgxRepository(suite.pool)
	suite.repo = NewPgxSessionRepository(suite.pool)
}

func (suite *sessionTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *sessionTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func (suite *sessionTestSuite) TestCreateGetDelete() {
	assert := suite.Require()
	a, err := suite.accountRepo.Create(context.Background(), memberInput(EMAIL))
	assert.Nil(err)

	err = suite.repo.Create(context.Background(), account.CreateSessionInput{
		AccountID: a.ID,
		Token:     account.SessionToken(SESSION_TOKEN),
		CreatedAt: NOW,
	})
	assert.Nil(err)

	got, err := suite.repo.GetAccountByToken(context.Background(), account.SessionToken(SESSION_TOKEN))
	assert.Nil(err)
	assert.Equal(a.ID, got.ID)
	assert.Equal(c.Email(EMAIL), got.Email)

	accountID, err := suite.repo.Delete(context.Background(), account.SessionToken(SESSION_TOKEN))
	assert.Nil(err)
	assert.Equal(a.ID, accountID)

	_, err = suite.repo.GetAccountByToken(context.Background(), account.SessionToken(SESSION_TOKEN))
	assert.ErrorIs(err, account.ErrSessionDoesNotExist)

	_, err = suite.repo.Delete(context.Background(), account.SessionToken(SESSION_TOKEN))
	assert.ErrorIs(err, account.ErrSessionDoesNotExist)
}
