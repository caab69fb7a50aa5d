package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/directory"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/session"
)

// AccountService coordinates registration and login flows.
type AccountService struct {
	directory  *directory.Directory
	sessions   *session.Manager
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// AccountDependencies encapsulates requirements for the account service.
type AccountDependencies struct {
	Directory  *directory.Directory
	Sessions   *session.Manager
	Dispatcher events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		directory:  deps.Directory,
		sessions:   deps.Sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new account. Registration does not start a session;
// the customer logs in separately.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.Account, error) {
	account, err := s.directory.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventUserRegistered, account.Email, events.UserRegisteredPayload{Name: account.Name})
	return account, nil
}

// Login verifies credentials, records the session and issues a token.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.directory.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.sessions.Start(ctx, account.Email); err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(account.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.publish(ctx, events.EventUserLoggedIn, account.Email, nil)
	return account, token, exp, nil
}

// Logout clears the active session, invalidating outstanding tokens.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.sessions.End(ctx)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, email string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Email:     email,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
