package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Error renders the generic error page with a user-facing message
func Error(message string) templ.Component {
	return Layout("エラー", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw(`<h2>エラーが発生しました</h2><p class="error">`)
		p.text(message)
		p.raw(`</p><a href="/">トップに戻る</a>`)
		return p.err
	}))
}
