package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/jjenkins/narou-reader/internal/model"
)

// Viewer renders a chapter body with prev/toc/next navigation above and below
func Viewer(ch *model.Chapter, nav model.ChapterNav) templ.Component {
	return Layout(ch.NovelTitle+" - "+ch.Subtitle, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw(`<h2>`)
		p.link(NovelURL(ch.Ncode, 1), ch.NovelTitle)
		p.raw(`</h2><h3>`)
		p.text(ch.Subtitle)
		p.raw(`</h3>`)

		p.chapterNav(ch.Ncode, nav)
		p.textBlock("preface", ch.Preface)
		p.textBlock("novel_body", ch.Body)
		p.textBlock("afterword", ch.Afterword)
		p.chapterNav(ch.Ncode, nav)
		return p.err
	}))
}

func (p *pageWriter) chapterNav(ncode string, nav model.ChapterNav) {
	p.raw(`<div class="nav">`)
	if nav.Prev != "" {
		p.link(ChapterURL(ncode, nav.Prev), "＜ 前の話")
	}
	p.link(NovelURL(ncode, 1), "目次")
	if nav.Next != "" {
		p.link(ChapterURL(ncode, nav.Next), "次の話 ＞")
	}
	p.raw(`</div>`)
}

// textBlock renders one <p> per line; blank lines keep their vertical space
func (p *pageWriter) textBlock(id string, lines []string) {
	if len(lines) == 0 {
		return
	}
	p.raw(`<div id="`)
	p.text(id)
	p.raw(`" class="`)
	p.text(id)
	p.raw(`">`)
	for _, line := range lines {
		p.raw(`<p>`)
		if line == "" {
			p.raw(`<br>`)
		} else {
			p.multiline(line)
		}
		p.raw(`</p>`)
	}
	p.raw(`</div>`)
}
