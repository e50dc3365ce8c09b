package primary

import (
	"context"
	"errors"
)

// ErrPassphraseTooShort is returned when a passphrase change is
// rejected for being under the minimum length. No state changes.
var ErrPassphraseTooShort = errors.New("passphrase must be at least 4 characters")

// PassphraseService is the primary port for the edit-mode gate.
//
// This is a soft deterrent, not a security boundary: comparison is
// plaintext equality with no hashing, no rate limiting, and no
// lockout. That weakness is intentional scope, not an oversight.
type PassphraseService interface {
	// EnsureDefault establishes the fixed default secret on first run
	// if none is stored.
	EnsureDefault(ctx context.Context)

	// Verify reports whether input exactly matches the stored secret.
	Verify(ctx context.Context, input string) bool

	// Change overwrites the stored secret. Returns
	// ErrPassphraseTooShort for values under 4 characters.
	Change(ctx context.Context, newValue string) error
}
