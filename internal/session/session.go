// Package session tracks the single active login: one email at a time, or
// none. It also keeps the last-selected-service marker used by checkout
// pre-fill. Both live as plain strings in the key-value store.
package session

import (
	"context"

	"github.com/spec-kit/storefront-service/internal/store"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// Manager reads and writes the active-email pointer.
type Manager struct {
	store store.Store
}

// NewManager builds a session manager over the given store.
func NewManager(st store.Store) *Manager {
	return &Manager{store: st}
}

// Start records email as the active session. Callers are expected to have
// validated the account already; no existence check happens here.
func (m *Manager) Start(ctx context.Context, email string) error {
	if err := m.store.Set(ctx, store.SessionKey, email); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Current returns the active email, or empty string when nobody is logged in.
func (m *Manager) Current(ctx context.Context) (string, error) {
	email, _, err := m.store.Get(ctx, store.SessionKey)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return email, nil
}

// End clears the active session.
func (m *Manager) End(ctx context.Context) error {
	if err := m.store.Remove(ctx, store.SessionKey); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// SelectService stores the last service chosen before checkout. Each
// selection overwrites the previous one.
func (m *Manager) SelectService(ctx context.Context, name string) error {
	if err := m.store.Set(ctx, store.SelectedServiceKey, name); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// SelectedService returns the stored marker, or empty string when none is set.
func (m *Manager) SelectedService(ctx context.Context) (string, error) {
	name, _, err := m.store.Get(ctx, store.SelectedServiceKey)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return name, nil
}
