// Package directory maintains the account directory: the full collection of
// customer accounts keyed by normalized email, serialized as one JSON blob
// in the key-value store. Every mutation rewrites the whole blob.
//
// Credentials are compared as exact plaintext strings. That matches the
// persisted data contract this service inherits, but it is not suitable for
// real authentication: anyone with store access can read every password.
package directory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/store"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// Directory provides register, lookup and credential checks over the
// store-backed account mapping.
type Directory struct {
	store store.Store
}

// New builds a directory over the given store.
func New(st store.Store) *Directory {
	return &Directory{store: st}
}

// Normalize trims surrounding whitespace and lower-cases an email so it can
// serve as the unique directory key.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with an empty history. It fails with
// ALREADY_EXISTS when the normalized email is already a key, leaving the
// existing account untouched.
func (d *Directory) Register(ctx context.Context, name, email, password string) (*domain.Account, error) {
	key := Normalize(email)
	accounts, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := accounts[key]; exists {
		return nil, apperrors.NewAlreadyExists("email", map[string]any{"email": key})
	}

	account := &domain.Account{
		Name:     strings.TrimSpace(name),
		Email:    key,
		Password: strings.TrimSpace(password),
		History:  []domain.Order{},
	}
	accounts[key] = account
	if err := d.save(ctx, accounts); err != nil {
		return nil, err
	}
	return account, nil
}

// FindByEmail looks up an account by normalized email.
func (d *Directory) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	accounts, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	account, ok := accounts[Normalize(email)]
	if !ok {
		return nil, apperrors.NewNotFound("account", map[string]any{"email": Normalize(email)})
	}
	return account, nil
}

// VerifyCredentials checks the supplied password against the stored one.
// The comparison is case-sensitive exact string equality.
func (d *Directory) VerifyCredentials(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := d.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account.Password != password {
		return nil, apperrors.NewWrongPassword()
	}
	return account, nil
}

// UpdateAccount applies fn to the stored account for email and rewrites the
// directory. The rewrite only happens after fn returns without error.
func (d *Directory) UpdateAccount(ctx context.Context, email string, fn func(*domain.Account) error) error {
	key := Normalize(email)
	accounts, err := d.load(ctx)
	if err != nil {
		return err
	}
	account, ok := accounts[key]
	if !ok {
		return apperrors.NewNotFound("account", map[string]any{"email": key})
	}
	if err := fn(account); err != nil {
		return err
	}
	return d.save(ctx, accounts)
}

func (d *Directory) load(ctx context.Context) (map[string]*domain.Account, error) {
	raw, ok, err := d.store.Get(ctx, store.DirectoryKey)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if !ok || raw == "" {
		return map[string]*domain.Account{}, nil
	}

	accounts := map[string]*domain.Account{}
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return accounts, nil
}

func (d *Directory) save(ctx context.Context, accounts map[string]*domain.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := d.store.Set(ctx, store.DirectoryKey, string(raw)); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}
