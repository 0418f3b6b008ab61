package schema

import (
	"encoding/json"
)

// PasswordResetEmail is the delivery job handed off to the notifier worker.
// The raw secret travels only on this internal queue, never in storage.
type PasswordResetEmail struct {
	Email string
	Token string
}

func (m *PasswordResetEmail) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *PasswordResetEmail) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
