package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jjenkins/narou-reader/internal/service"
	"github.com/jjenkins/narou-reader/internal/templates"
)

const (
	msgSearchFailed  = "検索結果の取得に失敗しました。時間をおいて再試行してください。"
	msgTocFailed     = "目次ページの取得に失敗しました。Nコードが正しいか確認してください。"
	msgChapterFailed = "本文ページの取得に失敗しました。"
	msgNotFound      = "ページが見つかりません。"
	msgInternal      = "予期しないエラーが発生しました。"
)

func render(c *fiber.Ctx, page templ.Component, opts ...func(*templ.ComponentHandler)) error {
	handler := adaptor.HTTPHandler(templ.Handler(page, opts...))
	return handler(c)
}

func renderError(c *fiber.Ctx, status int, message string) error {
	return render(c, templates.Error(message), templ.WithStatus(status))
}

// statusFor maps reader errors onto the status of the error page
func statusFor(err error) int {
	if errors.Is(err, service.ErrInvalidID) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
