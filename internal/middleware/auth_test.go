package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"shareofmodel/internal/config"
)

func TestRequireAuthOpenMode(t *testing.T) {
	// With no OIDC issuer configured the admin endpoints run open.
	app := fiber.New()
	auth := NewAuthMiddleware(&config.Config{})
	app.Post("/admin/reload", auth.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("reloaded")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/admin/reload", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireAuthRedirectsWithoutSession(t *testing.T) {
	app := fiber.New()
	auth := NewAuthMiddleware(&config.Config{OIDCIssuer: "https://auth.example.com"})
	app.Post("/admin/reload", auth.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("reloaded")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/admin/reload", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/auth/login" {
		t.Errorf("Location = %q, want /auth/login", loc)
	}
}

func TestOptionalAuthWithoutSession(t *testing.T) {
	app := fiber.New()
	auth := NewAuthMiddleware(&config.Config{})
	app.Get("/", auth.OptionalAuth, func(c fiber.Ctx) error {
		if c.Locals("user") != nil {
			return c.SendString("user")
		}
		return c.SendString("anonymous")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
