package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	url    string
	params url.Values
}

type fakeFetcher struct {
	html  string
	err   error
	calls []fetchCall
}

func (f *fakeFetcher) FetchDocument(ctx context.Context, rawURL string, params url.Values) (*goquery.Document, error) {
	f.calls = append(f.calls, fetchCall{url: rawURL, params: params})
	if f.err != nil {
		return nil, f.err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(f.html))
}

func newTestReader(f *fakeFetcher) *Reader {
	return NewReader(f, NewParser(), "https://upstream.test", "https://search.test/search.php", discardLogger())
}

func TestReader_Search(t *testing.T) {
	f := &fakeFetcher{html: searchPageHTML}
	r := newTestReader(f)

	result, err := r.Search(context.Background(), "異世界 転生", 2)
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "https://search.test/search.php", f.calls[0].url)
	assert.Equal(t, "異世界 転生", f.calls[0].params.Get("word"))
	assert.Equal(t, "2", f.calls[0].params.Get("p"))
	assert.Len(t, result.Results, 2)
}

func TestReader_TableOfContents(t *testing.T) {
	f := &fakeFetcher{html: currentTocHTML}
	r := newTestReader(f)

	novel, pagination, err := r.TableOfContents(context.Background(), "N5678CD", 2)
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "https://upstream.test/n5678cd/", f.calls[0].url)
	assert.Equal(t, "2", f.calls[0].params.Get("p"))
	assert.Equal(t, "n5678cd", novel.Ncode)
	assert.True(t, pagination.HasNext())
}

func TestReader_TableOfContents_ParseFailure(t *testing.T) {
	r := newTestReader(&fakeFetcher{html: `<html><body></body></html>`})

	_, _, err := r.TableOfContents(context.Background(), "n5678cd", 1)

	assert.ErrorIs(t, err, ErrParse)
}

func TestReader_Chapter(t *testing.T) {
	f := &fakeFetcher{html: legacyChapterHTML}
	r := newTestReader(f)

	ch, nav, err := r.Chapter(context.Background(), "n1234ab", "2")
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "https://upstream.test/n1234ab/2/", f.calls[0].url)
	assert.Empty(t, f.calls[0].params)
	assert.Equal(t, "第二話", ch.Subtitle)
	assert.Equal(t, "3", nav.Next)
}

func TestReader_InvalidIdentifiers(t *testing.T) {
	f := &fakeFetcher{html: legacyChapterHTML}
	r := newTestReader(f)
	ctx := context.Background()

	_, _, err := r.TableOfContents(ctx, "../etc", 1)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, _, err = r.Chapter(ctx, "n1234ab", "1;drop")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, _, err = r.Chapter(ctx, "x1234ab", "1")
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.Empty(t, f.calls)
}

func TestReader_UpstreamFailure(t *testing.T) {
	upstream := fmt.Errorf("%w: connection refused", ErrUpstream)
	r := newTestReader(&fakeFetcher{err: upstream})
	ctx := context.Background()

	_, err := r.Search(ctx, "x", 1)
	assert.True(t, errors.Is(err, ErrUpstream))

	_, _, err = r.TableOfContents(ctx, "n1234ab", 1)
	assert.True(t, errors.Is(err, ErrUpstream))

	_, _, err = r.Chapter(ctx, "n1234ab", "1")
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestNormalizeNcode(t *testing.T) {
	n, err := NormalizeNcode(" N9669BK ")
	require.NoError(t, err)
	assert.Equal(t, "n9669bk", n)

	_, err = NormalizeNcode("")
	assert.ErrorIs(t, err, ErrInvalidID)
}
