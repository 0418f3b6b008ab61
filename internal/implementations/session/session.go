package session

import (
	"swapcloset/internal/core/domain/account"

	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateSessionToken() account.SessionToken {
	return account.SessionToken(uuid.New().String())
}
