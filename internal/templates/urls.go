package templates

import (
	"net/url"
	"strconv"
)

func SearchURL(query string, page int) string {
	v := url.Values{}
	v.Set("q", query)
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return "/search?" + v.Encode()
}

func NovelURL(ncode string, page int) string {
	u := "/novel/" + url.PathEscape(ncode)
	if page > 1 {
		u += "?p=" + strconv.Itoa(page)
	}
	return u
}

func ChapterURL(ncode, chapter string) string {
	return "/novel/" + url.PathEscape(ncode) + "/" + url.PathEscape(chapter)
}
