package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"shareofmodel/internal/config"
	"shareofmodel/internal/models"
)

// AuthMiddleware handles operator authentication via sessions.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth ensures the request carries an authenticated session,
// redirecting to the OIDC login flow if not. When OIDC is not configured
// the check is skipped and admin endpoints run in open mode.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.cfg.AuthEnabled() {
		return c.Next()
	}

	user := userFromSession(c)
	if user == nil {
		return c.Redirect().To("/auth/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := userFromSession(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

func userFromSession(c fiber.Ctx) *models.User {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}

	sub, _ := sess.Get("user_sub").(string)
	if sub == "" {
		return nil
	}

	email, _ := sess.Get("user_email").(string)
	name, _ := sess.Get("user_name").(string)
	return &models.User{Sub: sub, Email: email, Name: name}
}
