package templates

import (
	"strconv"

	"github.com/jjenkins/narou-reader/internal/model"
)

// pager renders "< 前のページ - n - 次のページ >" using pageURL to build links
func (p *pageWriter) pager(pg model.Pagination, current int, pageURL func(int) string) {
	p.raw(`<div class="pagination">`)
	if pg.HasPrev() {
		p.link(pageURL(pg.Prev), "< 前のページ")
	}
	p.raw(`<span>- `)
	p.text(strconv.Itoa(current))
	p.raw(` -</span>`)
	if pg.HasNext() {
		p.link(pageURL(pg.Next), "次のページ >")
	}
	p.raw(`</div>`)
}
