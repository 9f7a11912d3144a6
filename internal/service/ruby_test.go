package service

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selection(t *testing.T, body string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><div id="x">` + body + `</div></body></html>`))
	require.NoError(t, err)
	return doc.Find("#x")
}

func TestConvertRuby(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "ruby with rp",
			html: `今日は<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>です`,
			want: "今日は漢字(かんじ)です",
		},
		{
			name: "ruby with rb",
			html: `<ruby><rb>魔法</rb><rp>（</rp><rt>まほう</rt><rp>）</rp></ruby>`,
			want: "魔法(まほう)",
		},
		{
			name: "ruby without rp",
			html: `<ruby>剣<rt>けん</rt></ruby>と<ruby>盾<rt>たて</rt></ruby>`,
			want: "剣(けん)と盾(たて)",
		},
		{
			name: "ruby without rt is untouched",
			html: `<ruby>漢字</ruby>`,
			want: "漢字",
		},
		{
			name: "br becomes newline",
			html: `一行目<br>二行目<br><br>四行目`,
			want: "一行目\n二行目\n\n四行目",
		},
		{
			name: "source newlines are not line breaks",
			html: "一行目<br />\n二行目\n続き",
			want: "一行目\n二行目続き",
		},
		{
			name: "blocks are separated",
			html: `<p>段落一</p><p>段落二</p>`,
			want: "段落一\n段落二",
		},
		{
			name: "markup in reading stays text",
			html: `<ruby>記号<rt>&lt;b&gt;</rt></ruby>`,
			want: "記号(<b>)",
		},
		{
			name: "surrounding whitespace trimmed",
			html: "  <br>本文<br>  ",
			want: "本文",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertRuby(selection(t, tt.html)))
		})
	}
}

func TestConvertRuby_BaseAndReading(t *testing.T) {
	pairs := [][2]string{
		{"異世界", "いせかい"},
		{"勇者", "ゆうしゃ"},
		{"Ａ", "エー"},
		{"本気", "マジ"},
	}

	for _, p := range pairs {
		sel := selection(t, "<ruby>"+p[0]+"<rp>(</rp><rt>"+p[1]+"</rt><rp>)</rp></ruby>")
		assert.Equal(t, p[0]+"("+p[1]+")", ConvertRuby(sel))
	}
}

func TestConvertRuby_LineBreakCount(t *testing.T) {
	for n := 0; n < 5; n++ {
		body := "a" + strings.Repeat("<br>", n) + "b"
		got := ConvertRuby(selection(t, body))
		assert.Equal(t, n, strings.Count(got, "\n"), "breaks=%d", n)
	}
}

func TestConvertRuby_Empty(t *testing.T) {
	assert.Equal(t, "", ConvertRuby(nil))
	assert.Equal(t, "", ConvertRuby(selection(t, "").Find(".missing")))
}

func TestConvertRuby_RewritesTree(t *testing.T) {
	sel := selection(t, `<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>`)
	ConvertRuby(sel)

	assert.Equal(t, 0, sel.Find("ruby").Length())
	assert.Equal(t, "漢字(かんじ)", sel.Text())
}
