package account

import (
	c "swapcloset/internal/core/domain/common"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokenHashMatches(t *testing.T) {
	secret := ResetTokenSecret("s3cret-token")
	hash := HashResetTokenSecret(secret)

	assert.True(t, hash.Matches(secret))
	assert.False(t, hash.Matches(ResetTokenSecret("another-token")))
	assert.NotContains(t, string(hash), "s3cret")
}

func TestResetTokenExpiry(t *testing.T) {
	issuedAt := time.Now().UTC()
	token := ResetToken{Email: c.Email("a@x.com"), CreatedAt: issuedAt}

	assert.False(t, token.IsExpired(issuedAt.Add(59*time.Minute), time.Hour))
	assert.False(t, token.IsExpired(issuedAt.Add(time.Hour), time.Hour))
	assert.True(t, token.IsExpired(issuedAt.Add(time.Hour+time.Second), time.Hour))
}

func TestSecretsAreMaskedWhenFormatted(t *testing.T) {
	assert.Equal(t, "***", RawPassword("hunter22").String())
	assert.Equal(t, "***", PasswordHash("$2a$10$abc").String())
	assert.Equal(t, "***", ResetTokenSecret("tok").String())
	assert.Equal(t, "***", RememberToken("rt").String())
}
