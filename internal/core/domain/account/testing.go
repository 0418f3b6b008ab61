package account

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sort"
	c "swapcloset/internal/core/domain/common"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeResetTokenSecretGenerator struct {
	Secret ResetTokenSecret
}

func NewFakeResetTokenSecretGenerator(secret string) *FakeResetTokenSecretGenerator {
	return &FakeResetTokenSecretGenerator{Secret: ResetTokenSecret(secret)}
}

func (g *FakeResetTokenSecretGenerator) GenerateResetTokenSecret() ResetTokenSecret {
	return g.Secret
}

type FakeRememberTokenGenerator struct {
	Token RememberToken
}

func NewFakeRememberTokenGenerator(token string) *FakeRememberTokenGenerator {
	return &FakeRememberTokenGenerator{Token: RememberToken(token)}
}

func (g *FakeRememberTokenGenerator) GenerateRememberToken() RememberToken {
	return g.Token
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakeResetTokenSender struct {
	SentTo      []c.Email
	SentSecrets []ResetTokenSecret
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenSender() *FakeResetTokenSender {
	return &FakeResetTokenSender{}
}

func (s *FakeResetTokenSender) SendResetToken(
	ctx context.Context,
	email c.Email,
	secret ResetTokenSecret,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset token to %s", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SentTo = append(s.SentTo, email)
	s.SentSecrets = append(s.SentSecrets, secret)
	return nil
}

func (s *FakeResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.SentTo)
}

type FakeAccountRepository struct {
	Accounts    []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeAccountRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Accounts {
		if existing.Email == input.Email {
			return a, ErrEmailAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	a = Account{
		ID:              maxID + 1,
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    input.PasswordHash,
		IsAdmin:         input.IsAdmin,
		EmailVerifiedAt: input.EmailVerifiedAt,
		Payout:          input.Payout,
		CreatedAt:       input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeAccountRepository) GetByID(ctx context.Context, id ID) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) ListMembers(
	ctx context.Context,
	options ListMembersOptions,
) ([]Account, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list accounts")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	members := make([]Account, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		if !a.IsAdmin {
			members = append(members, a)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].CreatedAt.After(members[j].CreatedAt)
	})
	if options.Offset >= uint(len(members)) {
		return []Account{}, nil
	}
	members = members[options.Offset:]
	if options.Limit > 0 && options.Limit < uint(len(members)) {
		members = members[:options.Limit]
	}
	return members, nil
}

func (r *FakeAccountRepository) Update(ctx context.Context, input UpdateAccountInput) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.ID != input.ID && existing.Email == input.Email {
			return a, ErrEmailAlreadyExists
		}
	}
	for ix, existing := range r.Accounts {
		if existing.ID == input.ID {
			r.Accounts[ix].Name = input.Name
			r.Accounts[ix].Email = input.Email
			r.Accounts[ix].Payout = input.Payout
			return r.Accounts[ix], nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == id {
			r.Accounts = append(r.Accounts[:ix], r.Accounts[ix+1:]...)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) SetPassword(ctx context.Context, input SetPasswordInput) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == input.ID {
			r.Accounts[ix].PasswordHash = input.PasswordHash
			if input.RememberToken.IsPresent {
				r.Accounts[ix].RememberToken = input.RememberToken
			}
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) ExistsByEmailExcludingID(
	ctx context.Context,
	email c.Email,
	excludeID ID,
) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Email == email && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type FakeSessionRepository struct {
	AccountIDByToken  map[SessionToken]ID
	AccountRepository AccountRepository
	ReturnError       bool
	lock              sync.Mutex
}

func NewFakeSessionRepository(accountRepository AccountRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		AccountIDByToken:  make(map[SessionToken]ID),
		AccountRepository: accountRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.AccountIDByToken[input.Token] = input.AccountID
	return nil
}

func (r *FakeSessionRepository) GetAccountByToken(ctx context.Context, token SessionToken) (a Account, err error) {
	r.lock.Lock()
	accountID, ok := r.AccountIDByToken[token]
	r.lock.Unlock()
	if !ok {
		return a, ErrSessionDoesNotExist
	}
	return r.AccountRepository.GetByID(ctx, accountID)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	accountID, ok := r.AccountIDByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.AccountIDByToken, token)
	return accountID, nil
}

type FakeResetTokenRepository struct {
	Tokens      map[c.Email]ResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenRepository() *FakeResetTokenRepository {
	return &FakeResetTokenRepository{Tokens: make(map[c.Email]ResetToken)}
}

func (r *FakeResetTokenRepository) Create(ctx context.Context, input CreateResetTokenInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not store reset token for %s", input.Email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Tokens[input.Email] = ResetToken{
		Email:     input.Email,
		TokenHash: input.TokenHash,
		CreatedAt: input.CreatedAt,
	}
	return nil
}

func (r *FakeResetTokenRepository) GetByEmail(ctx context.Context, email c.Email) (t ResetToken, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	t, ok := r.Tokens[email]
	if !ok {
		return t, ErrResetTokenDoesNotExist
	}
	return t, nil
}

func (r *FakeResetTokenRepository) Consume(ctx context.Context, email c.Email, at time.Time) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	t, ok := r.Tokens[email]
	if !ok || t.IsConsumed() {
		return false, nil
	}
	t.ConsumedAt = c.NewOptional(at, true)
	r.Tokens[email] = t
	return true, nil
}

func (r *FakeResetTokenRepository) DeleteByEmail(ctx context.Context, email c.Email) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.Tokens, email)
	return nil
}
