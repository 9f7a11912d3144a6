package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jjenkins/narou-reader/internal/model"
)

var (
	ncodeIDRe   = regexp.MustCompile(`^n[0-9a-z]{4,}$`)
	chapterIDRe = regexp.MustCompile(`^[0-9]+$`)
)

// Fetcher retrieves and parses a single upstream page
type Fetcher interface {
	FetchDocument(ctx context.Context, rawURL string, params url.Values) (*goquery.Document, error)
}

// Reader orchestrates fetch-and-parse for each kind of page
type Reader struct {
	fetcher   Fetcher
	parser    *Parser
	baseURL   string
	searchURL string
	logger    *slog.Logger
}

// NewReader creates a new Reader. baseURL is the novel host, searchURL the search endpoint.
func NewReader(fetcher Fetcher, parser *Parser, baseURL, searchURL string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		fetcher:   fetcher,
		parser:    parser,
		baseURL:   strings.TrimSuffix(baseURL, "/") + "/",
		searchURL: searchURL,
		logger:    logger,
	}
}

// NormalizeNcode lower-cases an ncode and checks its shape
func NormalizeNcode(ncode string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(ncode))
	if !ncodeIDRe.MatchString(n) {
		return "", fmt.Errorf("%w: ncode %q", ErrInvalidID, ncode)
	}
	return n, nil
}

// NormalizeChapter checks that a chapter identifier is numeric
func NormalizeChapter(chapter string) (string, error) {
	c := strings.TrimSpace(chapter)
	if !chapterIDRe.MatchString(c) {
		return "", fmt.Errorf("%w: chapter %q", ErrInvalidID, chapter)
	}
	return c, nil
}

// Search fetches one page of search results for query
func (r *Reader) Search(ctx context.Context, query string, page int) (*model.SearchPage, error) {
	params := url.Values{}
	params.Set("word", query)
	params.Set("p", strconv.Itoa(page))

	doc, err := r.fetcher.FetchDocument(ctx, r.searchURL, params)
	if err != nil {
		r.logger.Warn("search fetch failed", "query", query, "page", page, "error", err)
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}

	result := r.parser.ParseSearchPage(doc, query, page)
	r.logger.Debug("parsed search page", "query", query, "page", page, "results", len(result.Results))
	return result, nil
}

// TableOfContents fetches a novel's metadata and one page of its table of contents
func (r *Reader) TableOfContents(ctx context.Context, ncode string, page int) (*model.Novel, model.Pagination, error) {
	ncode, err := NormalizeNcode(ncode)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	params := url.Values{}
	params.Set("p", strconv.Itoa(page))

	doc, err := r.fetcher.FetchDocument(ctx, r.baseURL+ncode+"/", params)
	if err != nil {
		r.logger.Warn("toc fetch failed", "ncode", ncode, "page", page, "error", err)
		return nil, model.Pagination{}, fmt.Errorf("failed to fetch toc page: %w", err)
	}

	novel, pagination, err := r.parser.ParseTocPage(doc, ncode, page)
	if err != nil {
		r.logger.Warn("toc parse failed", "ncode", ncode, "page", page, "error", err)
		return nil, model.Pagination{}, err
	}

	r.logger.Debug("parsed toc page", "ncode", ncode, "page", page, "entries", len(novel.Episodes))
	return novel, pagination, nil
}

// Chapter fetches the body of a single episode
func (r *Reader) Chapter(ctx context.Context, ncode, chapter string) (*model.Chapter, model.ChapterNav, error) {
	ncode, err := NormalizeNcode(ncode)
	if err != nil {
		return nil, model.ChapterNav{}, err
	}
	chapter, err = NormalizeChapter(chapter)
	if err != nil {
		return nil, model.ChapterNav{}, err
	}

	doc, err := r.fetcher.FetchDocument(ctx, r.baseURL+ncode+"/"+chapter+"/", nil)
	if err != nil {
		r.logger.Warn("chapter fetch failed", "ncode", ncode, "chapter", chapter, "error", err)
		return nil, model.ChapterNav{}, fmt.Errorf("failed to fetch chapter page: %w", err)
	}

	ch, nav := r.parser.ParseChapterPage(doc, ncode, chapter)
	return ch, nav, nil
}
