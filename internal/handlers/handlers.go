package handlers

import (
	"github.com/gofiber/fiber/v3"

	"shareofmodel/internal/config"
)

// MergeBranding adds the configured site branding keys to template data.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}
