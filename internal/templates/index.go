package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Index renders the search form
func Index() templ.Component {
	return Layout("", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw(`<h2>小説検索</h2><form action="/search" method="get"><div class="form-group">`)
		p.raw(`<input type="text" name="q" placeholder="作品名、作者名など" required> `)
		p.raw(`<input type="submit" value="検索"></div></form>`)
		return p.err
	}))
}
