package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jjenkins/narou-reader/internal/service"
	"github.com/jjenkins/narou-reader/internal/templates"
)

func SearchHandler(reader NovelReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			return c.Redirect("/")
		}
		page := service.ParsePage(c.Query("page"))

		result, err := reader.Search(c.UserContext(), query, page)
		if err != nil {
			return renderError(c, statusFor(err), msgSearchFailed)
		}

		return render(c, templates.SearchResults(result))
	}
}
