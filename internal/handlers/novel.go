package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jjenkins/narou-reader/internal/service"
	"github.com/jjenkins/narou-reader/internal/templates"
)

func TableOfContentsHandler(reader NovelReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := service.ParsePage(c.Query("p"))

		novel, pagination, err := reader.TableOfContents(c.UserContext(), c.Params("ncode"), page)
		if err != nil {
			return renderError(c, statusFor(err), msgTocFailed)
		}

		return render(c, templates.TableOfContents(novel, pagination, page))
	}
}

func ChapterHandler(reader NovelReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ch, nav, err := reader.Chapter(c.UserContext(), c.Params("ncode"), c.Params("chapter"))
		if err != nil {
			return renderError(c, statusFor(err), msgChapterFailed)
		}

		return render(c, templates.Viewer(ch, nav))
	}
}
