package account

import (
	"errors"
)

var (
	ErrAccountDoesNotExist   = errors.New("account does not exist")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrSessionDoesNotExist   = errors.New("session does not exist")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrAdminAccountProtected = errors.New("administrative accounts are protected")

	// ErrResetTokenDoesNotExist is internal only; the reset service folds it
	// into ErrInvalidResetToken before it reaches a caller.
	ErrResetTokenDoesNotExist = errors.New("reset token does not exist")

	// ErrInvalidResetToken deliberately folds "no such account", "unknown
	// token", "expired" and "already consumed" into one outward error so the
	// reset endpoint cannot be used to enumerate accounts. Logs keep the
	// distinction.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
