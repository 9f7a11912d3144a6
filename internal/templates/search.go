package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/jjenkins/narou-reader/internal/model"
)

// SearchResults renders one page of search hits
func SearchResults(page *model.SearchPage) templ.Component {
	return Layout(page.Query+" の検索結果", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw(`<h2>「`)
		p.text(page.Query)
		p.raw(`」の検索結果 (`)
		p.text(page.Total)
		p.raw(`件)</h2>`)

		if len(page.Results) == 0 {
			p.raw(`<p>作品が見つかりませんでした。</p>`)
		} else {
			p.raw(`<ol>`)
			for _, r := range page.Results {
				p.raw(`<li><strong>`)
				p.link(NovelURL(r.Ncode, 1), r.Title)
				p.raw(`</strong><br>作者: `)
				p.text(r.Author)
				p.raw(`<br><div class="summary">`)
				p.text(r.Summary)
				p.raw(`</div></li>`)
			}
			p.raw(`</ol>`)
		}

		p.pager(page.Pagination, page.Page, func(n int) string {
			return SearchURL(page.Query, n)
		})
		return p.err
	}))
}
