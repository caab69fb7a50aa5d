// Package ledger manages the append-only per-account order history.
package ledger

import (
	"context"

	"github.com/spec-kit/storefront-service/internal/directory"
	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// Ledger appends orders to account histories and reads them back.
// Histories keep insertion order; entries are never reordered or removed.
type Ledger struct {
	directory *directory.Directory
}

// New builds a ledger over the account directory.
func New(dir *directory.Directory) *Ledger {
	return &Ledger{directory: dir}
}

// Append adds order to the history of the account for email. The account
// must exist; the full directory is rewritten after the append.
func (l *Ledger) Append(ctx context.Context, email string, order domain.Order) error {
	return l.directory.UpdateAccount(ctx, email, func(account *domain.Account) error {
		account.History = append(account.History, order)
		return nil
	})
}

// ListFor returns the account's history in insertion order. A missing
// account or absent history yields an empty slice, not an error.
func (l *Ledger) ListFor(ctx context.Context, email string) ([]domain.Order, error) {
	account, err := l.directory.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return []domain.Order{}, nil
		}
		return nil, err
	}

	history := make([]domain.Order, len(account.History))
	copy(history, account.History)
	return history, nil
}
