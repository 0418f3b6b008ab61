package tokengenerator

import (
	"swapcloset/internal/core/domain/account"
	"testing"
)

func TestResetTokenSecretsAreUnique(t *testing.T) {
	generator := NewGenerator()
	secrets := make(map[account.ResetTokenSecret]struct{})
	for i := 0; i < 100; i++ {
		secret := generator.GenerateResetTokenSecret()
		if string(secret) == "" {
			t.Fatal("secret must not be empty")
		}
		if _, ok := secrets[secret]; ok {
			t.Fatalf("secret %v already exists", secret)
		}
		secrets[secret] = struct{}{}
	}
}

func TestRememberTokensAreUnique(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[account.RememberToken]struct{})
	for i := 0; i < 100; i++ {
		token := generator.GenerateRememberToken()
		if string(token) == "" {
			t.Fatal("token must not be empty")
		}
		if _, ok := tokens[token]; ok {
			t.Fatalf("token already exists")
		}
		tokens[token] = struct{}{}
	}
}
