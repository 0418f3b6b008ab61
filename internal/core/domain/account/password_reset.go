package account

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	c "swapcloset/internal/core/domain/common"
	"time"
)

// ResetTokenSecret is the plaintext single-use secret mailed to the account
// holder. It is never persisted; only its digest is.
type ResetTokenSecret string

func (t ResetTokenSecret) String() string {
	return "***"
}

type ResetTokenHash string

func HashResetTokenSecret(secret ResetTokenSecret) ResetTokenHash {
	sum := sha256.Sum256([]byte(secret))
	return ResetTokenHash(hex.EncodeToString(sum[:]))
}

func (h ResetTokenHash) Matches(secret ResetTokenSecret) bool {
	expected := HashResetTokenSecret(secret)
	return subtle.ConstantTimeCompare([]byte(h), []byte(expected)) == 1
}

// ResetToken is the one-time credential-reset grant. At most one row exists
// per email: issuing a new token replaces the previous one, so an old link
// stops validating the moment a new one is requested.
type ResetToken struct {
	Email      c.Email
	TokenHash  ResetTokenHash
	CreatedAt  time.Time
	ConsumedAt c.Optional[time.Time]
}

func (t *ResetToken) IsConsumed() bool {
	return t.ConsumedAt.IsPresent
}

func (t *ResetToken) IsExpired(now time.Time, validDuration time.Duration) bool {
	return now.Sub(t.CreatedAt) > validDuration
}

type CreateResetTokenInput struct {
	Email     c.Email
	TokenHash ResetTokenHash
	CreatedAt time.Time
}

type ResetTokenRepository interface {
	// Create stores the token, superseding any previous token for the email.
	Create(ctx context.Context, input CreateResetTokenInput) error
	GetByEmail(ctx context.Context, email c.Email) (ResetToken, error)
	// Consume flips the token for the email from unconsumed to consumed and
	// reports whether this call won the transition. Exactly one of any number
	// of concurrent calls gets true.
	Consume(ctx context.Context, email c.Email, at time.Time) (bool, error)
	DeleteByEmail(ctx context.Context, email c.Email) error
}

type ResetTokenSecretGenerator interface {
	GenerateResetTokenSecret() ResetTokenSecret
}

type RememberTokenGenerator interface {
	GenerateRememberToken() RememberToken
}

type ResetTokenSender interface {
	SendResetToken(ctx context.Context, email c.Email, secret ResetTokenSecret) error
}
