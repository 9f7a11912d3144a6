package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/jjenkins/narou-reader/internal/model"
)

// TableOfContents renders novel metadata and one page of its episode list
func TableOfContents(novel *model.Novel, pagination model.Pagination, current int) templ.Component {
	return Layout(novel.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw(`<h2>`)
		p.text(novel.Title)
		p.raw(`</h2><p>作者: `)
		p.text(novel.Author)
		p.raw(`</p><h3>あらすじ</h3><div class="summary">`)
		p.multiline(novel.Summary)
		p.raw(`</div><h3>目次</h3>`)

		if !novel.HasEpisodes() {
			p.raw(`<p>目次が取得できませんでした。</p>`)
		} else {
			p.raw(`<div>`)
			for _, e := range novel.Episodes {
				if e.IsChapter {
					p.raw(`<div class="chapter-title">`)
					p.text(e.Title)
					p.raw(`</div>`)
					continue
				}
				p.raw(`<ul class="episodes"><li>`)
				p.link(ChapterURL(novel.Ncode, e.Chapter), e.Title)
				p.raw(`</li></ul>`)
			}
			p.raw(`</div>`)
		}

		p.pager(pagination, current, func(n int) string {
			return NovelURL(novel.Ncode, n)
		})
		return p.err
	}))
}
