package tokengenerator

import (
	"crypto/rand"
	"encoding/base64"
	"swapcloset/internal/core/domain/account"
)

// Generator produces unguessable account secrets from crypto/rand.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetTokenSecret() account.ResetTokenSecret {
	return account.ResetTokenSecret(randomToken(32))
}

func (g *Generator) GenerateRememberToken() account.RememberToken {
	return account.RememberToken(randomToken(32))
}

func randomToken(byteCount int) string {
	b := make([]byte, byteCount)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
