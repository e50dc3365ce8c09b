package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/example/waymark/internal/ports/primary"
	"github.com/example/waymark/internal/ports/secondary"
)

// DefaultPassphrase is the secret established on first run.
const DefaultPassphrase = "admin123"

const minPassphraseLength = 4

// PassphraseServiceImpl implements the PassphraseService interface.
// Plaintext storage and comparison are deliberate: this gate is a UX
// deterrent for accidental edits, not a security control.
type PassphraseServiceImpl struct {
	store secondary.StateStore
	diag  io.Writer
}

// NewPassphraseService creates a new PassphraseService with injected
// dependencies.
func NewPassphraseService(store secondary.StateStore, diag io.Writer) *PassphraseServiceImpl {
	return &PassphraseServiceImpl{
		store: store,
		diag:  diag,
	}
}

// EnsureDefault persists the default secret if none is stored yet.
func (s *PassphraseServiceImpl) EnsureDefault(ctx context.Context) {
	_, err := s.store.Get(ctx, secondary.KeyPassphrase)
	if err == nil {
		return
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		fmt.Fprintf(s.diag, "error loading passphrase: %v\n", err)
		return
	}

	if err := s.store.Set(ctx, secondary.KeyPassphrase, DefaultPassphrase); err != nil {
		fmt.Fprintf(s.diag, "error saving default passphrase: %v\n", err)
	}
}

// Verify compares input against the stored secret. Exact string
// equality; no rate limiting, unlimited attempts.
func (s *PassphraseServiceImpl) Verify(ctx context.Context, input string) bool {
	stored, err := s.store.Get(ctx, secondary.KeyPassphrase)
	if err != nil {
		if !errors.Is(err, secondary.ErrNotFound) {
			fmt.Fprintf(s.diag, "error loading passphrase: %v\n", err)
		}
		return false
	}
	return input == stored
}

// Change overwrites the stored secret. Values under 4 characters are
// rejected with no state change.
func (s *PassphraseServiceImpl) Change(ctx context.Context, newValue string) error {
	if len(newValue) < minPassphraseLength {
		return primary.ErrPassphraseTooShort
	}

	if err := s.store.Set(ctx, secondary.KeyPassphrase, newValue); err != nil {
		// Durability-only failure; the old secret stays effective.
		fmt.Fprintf(s.diag, "error saving passphrase: %v\n", err)
	}
	return nil
}

// Ensure PassphraseServiceImpl implements the interface.
var _ primary.PassphraseService = (*PassphraseServiceImpl)(nil)
