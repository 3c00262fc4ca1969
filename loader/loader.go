// CLAUDE:SUMMARY Resource-loader contract (streaming Load, one-shot LoadWhole) and the HTTP implementation.
// Package loader acquires the byte streams the parser consumes.
//
// The parse driver only depends on the Loader interface; the HTTP
// implementation here covers network documents and external scripts. A
// mid-stream read error from Response.Body is the stream's error
// terminator: no more data will arrive after it.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"
)

// Metadata describes a completed top-level resource load. Immutable after
// creation.
type Metadata struct {
	// FinalURL is the URL after all redirects.
	FinalURL *url.URL
	// ContentType is the declared media type ("text/html", "image/png"),
	// without parameters. Empty if the server sent none.
	ContentType string
	// Header is the full response header set.
	Header http.Header
}

// Response is a resource load in progress: metadata is available
// immediately, the body streams.
type Response struct {
	Metadata Metadata
	Body     io.ReadCloser
}

// Loader fetches resources for the parser.
type Loader interface {
	// Load starts a streaming fetch and blocks until response metadata
	// is available.
	Load(ctx context.Context, u *url.URL) (*Response, error)
	// LoadWhole fetches a resource to completion in one call.
	LoadWhole(ctx context.Context, u *url.URL) (Metadata, []byte, error)
}

// HTTP is the network-backed Loader.
type HTTP struct {
	client  *http.Client
	ua      string
	maxBody int64
	logger  *slog.Logger
}

// Option configures an HTTP loader.
type Option func(*HTTP)

// WithClient sets a custom HTTP client.
func WithClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) { h.ua = ua }
}

// WithMaxBodySize caps the number of body bytes read per resource.
func WithMaxBodySize(n int64) Option {
	return func(h *HTTP) { h.maxBody = n }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *HTTP) { h.logger = l }
}

// NewHTTP creates an HTTP loader with sensible defaults.
func NewHTTP(opts ...Option) *HTTP {
	h := &HTTP{
		client:  &http.Client{Timeout: 30 * time.Second},
		ua:      "Mozilla/5.0 (compatible; Servo/1.0)",
		maxBody: 10 << 20,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Load GETs a URL and returns metadata plus the streaming body.
func (h *HTTP) Load(ctx context.Context, u *url.URL) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("loader: new request: %w", err)
	}
	req.Header.Set("User-Agent", h.ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loader: do: %w", err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("loader: %s: status %d", u, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mt
	}

	h.logger.Debug("loader: fetched",
		"url", u.String(), "final_url", resp.Request.URL.String(),
		"status", resp.StatusCode, "content_type", contentType)

	return &Response{
		Metadata: Metadata{
			FinalURL:    resp.Request.URL,
			ContentType: contentType,
			Header:      resp.Header,
		},
		Body: &cappedBody{rc: resp.Body, remaining: h.maxBody},
	}, nil
}

// LoadWhole fetches a resource to completion.
func (h *HTTP) LoadWhole(ctx context.Context, u *url.URL) (Metadata, []byte, error) {
	resp, err := h.Load(ctx, u)
	if err != nil {
		return Metadata{}, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("loader: read body: %w", err)
	}
	return resp.Metadata, body, nil
}

// cappedBody limits reads to a byte budget to prevent runaway downloads.
type cappedBody struct {
	rc        io.ReadCloser
	remaining int64
}

func (b *cappedBody) Read(p []byte) (int, error) {
	if b.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > b.remaining {
		p = p[:b.remaining]
	}
	n, err := b.rc.Read(p)
	b.remaining -= int64(n)
	return n, err
}

func (b *cappedBody) Close() error { return b.rc.Close() }
