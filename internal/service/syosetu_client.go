package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://ncode.syosetu.com/"
	DefaultSearchURL = "https://yomou.syosetu.com/search.php"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultTimeout = 15 * time.Second
	requestDelay   = 1 * time.Second
)

// ClientOptions configures a SyosetuClient. Zero values fall back to defaults,
// except RequestDelay where zero disables throttling.
type ClientOptions struct {
	UserAgent    string
	Timeout      time.Duration
	RequestDelay time.Duration
	Transport    http.RoundTripper
	Logger       *slog.Logger
}

// DefaultClientOptions returns the options used against the live site
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		UserAgent:    DefaultUserAgent,
		Timeout:      defaultTimeout,
		RequestDelay: requestDelay,
	}
}

// SyosetuClient fetches upstream pages and hands them back as parsed documents
type SyosetuClient struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
	delay     time.Duration
	logger    *slog.Logger
}

// NewSyosetuClient creates a new upstream client
func NewSyosetuClient(opts ClientOptions) *SyosetuClient {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	// One token per delay, burst 1: every fetch waits out the fixed delay
	// since the previous one, shared across all in-flight requests.
	limit := rate.Inf
	if opts.RequestDelay > 0 {
		limit = rate.Every(opts.RequestDelay)
	}

	return &SyosetuClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: opts.UserAgent,
		limiter:   rate.NewLimiter(limit, 1),
		delay:     opts.RequestDelay,
		logger:    opts.Logger,
	}
}

// FetchDocument GETs rawURL with the given query parameters and parses the body
func (c *SyosetuClient) FetchDocument(ctx context.Context, rawURL string, params url.Values) (*goquery.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid url %q: %v", ErrUpstream, rawURL, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	target := u.String()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting to fetch %s: %v", ErrUpstream, target, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("fetching upstream page", "url", target)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstream, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: unexpected status code: %d", ErrUpstream, target, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrUpstream, target, err)
	}

	c.logger.Debug("fetched upstream page", "url", target, "duration", time.Since(start))
	return doc, nil
}

// Delay returns the configured delay between upstream requests
func (c *SyosetuClient) Delay() time.Duration {
	return c.delay
}
