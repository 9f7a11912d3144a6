package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jjenkins/narou-reader/internal/model"
	"golang.org/x/net/html"
)

const (
	UnknownAuthor     = "作者不明"
	NoSummary         = "あらすじなし"
	UnknownNovelTitle = "作品タイトル不明"
	UnknownSubtitle   = "サブタイトル不明"
	MissingBody       = "本文が取得できませんでした。"
	UnknownTotal      = "多数"

	nextLabel = "次へ"
	prevLabel = "前へ"
)

var (
	ncodeRe      = regexp.MustCompile(`/(n[a-zA-Z0-9]{5,})/?`)
	authorLinkRe = regexp.MustCompile(`https://mypage\.syosetu\.com/\d+/`)
	totalRe      = regexp.MustCompile(`([\d,]+)作品`)
)

// Parser extracts domain records from upstream pages. Both the legacy
// layout and the current p-novel/p-eplist layout are understood.
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ExtractNcode returns the ncode embedded in a novel URL, or "" if there is none
func ExtractNcode(href string) string {
	m := ncodeRe.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}

// lastSegment returns the last non-empty path segment of href
func lastSegment(href string) string {
	parts := strings.Split(strings.Trim(href, "/"), "/")
	return parts[len(parts)-1]
}

// firstOf returns the first match of the first selector that matches anything
func firstOf(doc *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, s := range selectors {
		if sel := doc.Find(s).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

func textOr(sel *goquery.Selection, fallback string) string {
	if sel == nil {
		return fallback
	}
	if t := strings.TrimSpace(sel.Text()); t != "" {
		return t
	}
	return fallback
}

// linkContaining finds the first <a href> under sel whose text contains label
func linkContaining(sel *goquery.Selection, label string) (string, bool) {
	var href string
	var found bool
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if !strings.Contains(a.Text(), label) {
			return true
		}
		href, _ = a.Attr("href")
		found = href != ""
		return !found
	})
	return href, found
}

// paginate derives prev/next from a pager block. Without a pager there is nothing to page through.
func paginate(pager *goquery.Selection, page int) model.Pagination {
	var p model.Pagination
	if pager == nil {
		return p
	}
	if _, ok := linkContaining(pager, nextLabel); ok {
		p.Next = page + 1
	}
	if page > 1 {
		p.Prev = page - 1
	}
	return p
}

// ParseSearchPage extracts results, pagination and the hit count from a search page
func (p *Parser) ParseSearchPage(doc *goquery.Document, query string, page int) *model.SearchPage {
	result := &model.SearchPage{
		Query:   query,
		Page:    page,
		Results: []model.SearchResult{},
	}

	doc.Find("div.searchkekka_box").Each(func(_ int, item *goquery.Selection) {
		titleTag := item.Find("a.tl").First()
		href, ok := titleTag.Attr("href")
		if !ok || href == "" {
			return
		}
		ncode := ExtractNcode(href)
		if ncode == "" {
			return
		}

		var authorTag *goquery.Selection
		item.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if h, _ := a.Attr("href"); authorLinkRe.MatchString(h) {
				authorTag = a
				return false
			}
			return true
		})

		result.Results = append(result.Results, model.SearchResult{
			Title:   strings.TrimSpace(titleTag.Text()),
			Ncode:   ncode,
			Author:  textOr(authorTag, UnknownAuthor),
			Summary: textOr(firstOf(item, "div.ex"), NoSummary),
		})
	})

	result.Pagination = paginate(firstOf(doc.Selection, "div.pager"), page)
	result.Total = searchTotal(doc)

	return result
}

// searchTotal reads the "<n>作品" text that follows the emphasised count label
func searchTotal(doc *goquery.Document) string {
	label := doc.Find(`span[style="font-size:150%; font-weight:bold;"]`).First()
	if label.Length() == 0 {
		return UnknownTotal
	}
	for n := label.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.TextNode || strings.TrimSpace(n.Data) == "" {
			continue
		}
		if m := totalRe.FindStringSubmatch(n.Data); m != nil {
			return strings.ReplaceAll(m[1], ",", "")
		}
		break
	}
	return UnknownTotal
}

// ParseTocPage extracts novel metadata and one page of the table of contents
func (p *Parser) ParseTocPage(doc *goquery.Document, ncode string, page int) (*model.Novel, model.Pagination, error) {
	titleTag := firstOf(doc.Selection, "p.novel_title", "h1.p-novel__title")
	if titleTag == nil {
		return nil, model.Pagination{}, fmt.Errorf("%w: no title on toc page for %s", ErrParse, ncode)
	}

	author := textOr(firstOf(doc.Selection, "div.novel_writername", "div.p-novel__author"), UnknownAuthor)
	author = strings.TrimSpace(strings.ReplaceAll(author, "作者：", ""))
	if author == "" {
		author = UnknownAuthor
	}

	novel := &model.Novel{
		Title:    strings.TrimSpace(titleTag.Text()),
		Ncode:    ncode,
		Author:   author,
		Summary:  ConvertRuby(firstOf(doc.Selection, "div#novel_ex", "div.p-novel__summary")),
		Episodes: []model.TocEntry{},
	}

	if box := firstOf(doc.Selection, "div.index_box", "div.p-eplist"); box != nil {
		box.Find(".chapter_title, .novel_sublist2, .p-eplist__chapter-title, .p-eplist__sublist").
			FilterFunction(func(_ int, s *goquery.Selection) bool {
				return s.Is("div") || s.Is("dl")
			}).
			Each(func(_ int, item *goquery.Selection) {
				if class, _ := item.Attr("class"); strings.Contains(class, "chapter") {
					novel.Episodes = append(novel.Episodes, model.TocEntry{
						IsChapter: true,
						Title:     strings.TrimSpace(item.Text()),
					})
					return
				}

				link := item.Find("a").First()
				href, ok := link.Attr("href")
				if !ok || href == "" {
					return
				}
				novel.Episodes = append(novel.Episodes, model.TocEntry{
					Title:   strings.TrimSpace(link.Text()),
					Chapter: lastSegment(href),
				})
			})
	}

	return novel, paginate(firstOf(doc.Selection, `div[class*="pager"]`), page), nil
}

// ParseChapterPage extracts a chapter's text and its neighbouring episodes
func (p *Parser) ParseChapterPage(doc *goquery.Document, ncode, chapter string) (*model.Chapter, model.ChapterNav) {
	novelLink := firstOf(doc.Selection, "div.contents1 a", fmt.Sprintf(`div.c-announce-box a[href*="/%s/"]`, ncode))

	ch := &model.Chapter{
		Ncode:      ncode,
		Number:     chapter,
		NovelTitle: textOr(novelLink, UnknownNovelTitle),
		Subtitle:   textOr(firstOf(doc.Selection, "p.novel_subtitle", "h1.p-novel__title"), UnknownSubtitle),
		Preface:    lines(firstOf(doc.Selection, "div#novel_p", "div.p-novel__text--preface")),
		Afterword:  lines(firstOf(doc.Selection, "div#novel_a", "div.p-novel__text--afterword")),
	}

	body := firstOf(doc.Selection,
		"div#novel_honbun",
		"div.js-novel-text:not(.p-novel__text--preface):not(.p-novel__text--afterword)",
	)
	if body == nil {
		ch.Body = []string{MissingBody}
	} else {
		ch.Body = lines(body)
	}

	var nav model.ChapterNav
	if pager := firstOf(doc.Selection, "div.novel_bn", "div.c-pager"); pager != nil {
		if href, ok := linkContaining(pager, prevLabel); ok {
			nav.Prev = lastSegment(href)
		}
		if href, ok := linkContaining(pager, nextLabel); ok {
			nav.Next = lastSegment(href)
		}
	}

	return ch, nav
}

// lines converts each <p> of a text block into one plain-text line
func lines(block *goquery.Selection) []string {
	if block == nil {
		return nil
	}
	out := []string{}
	block.Find("p").Each(func(_ int, para *goquery.Selection) {
		out = append(out, ConvertRuby(para))
	})
	return out
}

// ParsePage parses a page number query value; anything unusable becomes 1
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
