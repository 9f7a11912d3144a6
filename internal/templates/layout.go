package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const siteName = "軽量なろうリーダー"

const styles = `body { font-family: sans-serif; line-height: 1.6; margin: 8px; }
h1, h2, h3 { margin: 1em 0 0.5em 0; padding-bottom: 0.2em; border-bottom: 1px solid #ccc; }
a { color: #007bff; text-decoration: none; }
.container { max-width: 800px; margin: 0 auto; }
.nav { margin: 1em 0; padding: 0.5em 0; border-top: 1px solid #ccc; border-bottom: 1px solid #ccc; }
.nav a { margin-right: 1em; }
.summary { background: #f4f4f4; padding: 0.8em; border-left: 4px solid #ccc; margin: 1em 0; font-size: 0.9em; }
.pagination { margin: 1em 0; text-align: center; }
.pagination a { margin: 0 0.5em; }
.error { color: red; font-weight: bold; }
ul, ol { padding-left: 20px; }
li { margin-bottom: 0.5em; }
.form-group { margin-bottom: 1em; }
input[type="text"] { width: 70%; padding: 5px; }
input[type="submit"] { padding: 5px 10px; }
.chapter-title { background-color: #eee; padding: 0.3em 0.5em; font-weight: bold; margin-top: 1.5em; }
.episodes { list-style-type: none; padding-left: 10px; }
.preface, .afterword { color: #555; font-size: 0.9em; }
.footer-note { font-size: 0.8em; color: #666; text-align: center; margin-top: 2em; }`

// pageWriter accumulates the first write error so markup can be emitted without
// checking every call.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *pageWriter) text(s string) {
	p.raw(templ.EscapeString(s))
}

// multiline escapes s and renders its newlines as <br>
func (p *pageWriter) multiline(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			p.raw("<br>")
		}
		p.text(line)
	}
}

func (p *pageWriter) link(href, label string) {
	p.raw(`<a href="`)
	p.text(href)
	p.raw(`">`)
	p.text(label)
	p.raw(`</a>`)
}

func (p *pageWriter) component(ctx context.Context, c templ.Component) {
	if p.err != nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

// Layout wraps content in the shared page chrome. An empty title uses the site name.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if title == "" {
			title = siteName
		}
		p := &pageWriter{w: w}
		p.raw(`<!DOCTYPE html><html lang="ja"><head><meta charset="UTF-8"><title>`)
		p.text(title)
		p.raw(`</title><meta name="viewport" content="width=device-width, initial-scale=1.0"><style>`)
		p.raw(styles)
		p.raw(`</style></head><body><div class="container"><header><h1><a href="/">`)
		p.text(siteName)
		p.raw(`</a></h1></header><main>`)
		p.component(ctx, content)
		p.raw(`</main><footer><hr><p class="footer-note">`)
		p.raw(`このサイトは「小説家になろう」のコンテンツをスクレイピングし、軽量化して表示しています。<br>個人利用の範囲でご利用ください。`)
		p.raw(`</p></footer></div></body></html>`)
		return p.err
	})
}
