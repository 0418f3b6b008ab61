package listaccounts

import (
	"context"
	"fmt"
	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/core/domain/logging"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ADMIN_ID = account.ID(100)

func setupAccountRepo(memberCount int) *account.FakeAccountRepository {
	repo := account.NewFakeAccountRepository()
	repo.Accounts = append(repo.Accounts, account.Account{
		ID:      ADMIN_ID,
		Email:   c.Email("admin@test.example"),
		IsAdmin: true,
	})
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < memberCount; i++ {
		repo.Accounts = append(repo.Accounts, account.Account{
			ID:        account.ID(i + 1),
			Email:     c.Email(fmt.Sprintf("member-%d@test.example", i+1)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return repo
}

func TestMembersListedNewestFirst(t *testing.T) {
	repo := setupAccountRepo(3)
	service := New(logging.NewFakeLogger(), repo)

	result, err := service.Run(context.Background(), Input{
		Caller: account.Account{ID: ADMIN_ID, IsAdmin: true},
	})

	require.NoError(t, err)
	require.Len(t, result.Accounts, 3)
	require.Equal(t, account.ID(3), result.Accounts[0].ID)
	require.Equal(t, account.ID(2), result.Accounts[1].ID)
	require.Equal(t, account.ID(1), result.Accounts[2].ID)
}

func TestAdministratorsAreExcluded(t *testing.T) {
	repo := setupAccountRepo(2)
	service := New(logging.NewFakeLogger(), repo)

	result, err := service.Run(context.Background(), Input{
		Caller: account.Account{ID: ADMIN_ID, IsAdmin: true},
	})

	require.NoError(t, err)
	for _, a := range result.Accounts {
		require.False(t, a.IsAdmin)
	}
}

func TestPagination(t *testing.T) {
	repo := setupAccountRepo(25)
	service := New(logging.NewFakeLogger(), repo)

	cases := []struct {
		id          string
		limit       uint
		offset      uint
		wantCount   int
		wantFirstID account.ID
	}{
		{id: "default limit", wantCount: DefaultLimit, wantFirstID: account.ID(25)},
		{id: "second page", limit: 10, offset: 10, wantCount: 10, wantFirstID: account.ID(15)},
		{id: "last partial page", limit: 10, offset: 20, wantCount: 5, wantFirstID: account.ID(5)},
		{id: "offset past the end", limit: 10, offset: 100, wantCount: 0},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			result, err := service.Run(context.Background(), Input{
				Caller: account.Account{ID: ADMIN_ID, IsAdmin: true},
				Limit:  testcase.limit,
				Offset: testcase.offset,
			})

			require.NoError(t, err)
			require.Len(t, result.Accounts, testcase.wantCount)
			if testcase.wantCount > 0 {
				require.Equal(t, testcase.wantFirstID, result.Accounts[0].ID)
			}
		})
	}
}

func TestNonAdminCallerDenied(t *testing.T) {
	repo := setupAccountRepo(1)
	service := New(logging.NewFakeLogger(), repo)

	_, err := service.Run(context.Background(), Input{
		Caller: account.Account{ID: account.ID(1)},
	})

	require.ErrorIs(t, err, account.ErrPermissionDenied)
}
