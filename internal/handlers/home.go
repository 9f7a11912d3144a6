package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jjenkins/narou-reader/internal/templates"
)

func HomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, templates.Index())
	}
}

func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString("ok")
	}
}
