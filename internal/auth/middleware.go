package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/session"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

const emailKey = "session_email"

// SessionMiddleware guards protected routes. A request passes only when it
// carries a valid bearer token AND the token's email equals the active
// session pointer, so logout invalidates outstanding tokens immediately.
type SessionMiddleware struct {
	tokens   *TokenManager
	sessions *session.Manager
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces an active session for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewNotLoggedIn()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewNotLoggedIn()
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewNotLoggedIn()
	}

	active, err := m.sessions.Current(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	if active == "" || active != claims.Email {
		return apperrors.NewNotLoggedIn()
	}

	c.Locals(emailKey, claims.Email)
	return c.Next()
}

// EmailFromContext retrieves the authenticated session email.
func EmailFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(emailKey)
	if val == nil {
		return "", false
	}
	email, ok := val.(string)
	return email, ok
}
