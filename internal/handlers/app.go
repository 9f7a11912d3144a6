package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jjenkins/narou-reader/internal/model"
)

// NovelReader is what the routes need from the scraping layer
type NovelReader interface {
	Search(ctx context.Context, query string, page int) (*model.SearchPage, error)
	TableOfContents(ctx context.Context, ncode string, page int) (*model.Novel, model.Pagination, error)
	Chapter(ctx context.Context, ncode, chapter string) (*model.Chapter, model.ChapterNav, error)
}

type AppOptions struct {
	Logger    *slog.Logger
	AccessLog io.Writer // defaults to stdout
}

// NewApp builds the fiber app with middleware and all routes registered
func NewApp(reader NovelReader, opts AppOptions) *fiber.App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName:               "Narou Reader",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(opts.Logger),
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${locals:requestid} | ${method} | ${path}\n",
		Output: opts.AccessLog,
	}))

	// Routes
	app.Get("/", HomeHandler())
	app.Get("/healthz", HealthHandler())
	app.Get("/search", SearchHandler(reader))

	// Novel routes
	app.Get("/novel/:ncode", TableOfContentsHandler(reader))
	app.Get("/novel/:ncode/:chapter", ChapterHandler(reader))

	return app
}

// errorHandler renders fiber errors and recovered panics as the error page
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := msgInternal

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			if code == fiber.StatusNotFound {
				message = msgNotFound
			}
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}

		return renderError(c, code, message)
	}
}
