// CLAUDE:SUMMARY Parse driver: input acquisition, chunk feeding, encoding detection, and script pipeline shutdown.
// Package htmlparse bridges HTML tree construction and the document tree,
// and resolves scripts discovered during parsing.
//
// Tree construction itself is external (the engine package); htmlparse owns
// the translation of construction events into tree mutations, the handle
// discipline between engine and tree, and the concurrent pipeline that
// fetches external scripts without blocking construction. The pipeline:
//
//	input (string | URL) → engine → bridge → htmldoc tree
//	                                  └→ script discovery → ordered []Script
//
// Usage:
//
//	p := htmlparse.New(htmlparse.Config{})
//	doc := htmldoc.NewDocument()
//	res, err := p.Parse(ctx, doc, htmlparse.URLInput(pageURL))
//	scripts, err := res.Await(ctx)
package htmlparse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/andrewguertin/servo/engine"
	"github.com/andrewguertin/servo/htmldoc"
	"github.com/andrewguertin/servo/loader"
)

// Parser is the parse driver.
type Parser struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Parser with the given configuration.
func New(cfg Config) *Parser {
	cfg.defaults()
	return &Parser{cfg: cfg, logger: cfg.Logger}
}

// Input is the document source: a literal markup string or a URL to load.
type Input struct {
	literal string
	url     *url.URL
	isURL   bool
}

// StringInput parses a literal markup string. The base URL for relative
// resolution is the document's current URL, if any.
func StringInput(s string) Input { return Input{literal: s} }

// URLInput loads and parses a network resource. The final post-redirect
// URL becomes both the base URL and the document's navigation URL.
func URLInput(u *url.URL) Input { return Input{url: u, isURL: true} }

// Parse runs a full construction pass over the input and returns a Result
// for awaiting the ordered script set. The document tree is mutated
// exclusively by this call's goroutine until Parse returns; script fetches
// continue in the background and are bounded by ctx.
//
// A failed top-level load, a mid-stream read error, or an engine contract
// violation is fatal: the error is returned and the document never
// completes. Individual script failures are not fatal (see Script).
func (p *Parser) Parse(ctx context.Context, doc *htmldoc.Document, input Input) (*Result, error) {
	scripts := startScriptPipeline(ctx, p.cfg.Loader, p.logger)

	var baseURL *url.URL
	var resp *loader.Response
	if input.isURL {
		var err error
		resp, err = p.cfg.Loader.Load(ctx, input.url)
		if err != nil {
			scripts.finish()
			return nil, fmt.Errorf("htmlparse: load %s: %w", input.url, err)
		}
		defer resp.Body.Close()

		if lm := resp.Metadata.Header.Get("Last-Modified"); lm != "" {
			doc.SetLastModified(parseLastModified(lm))
		}
		// Record the final URL before construction starts, so relative
		// URL resolution observes the post-redirect location.
		baseURL = resp.Metadata.FinalURL
		doc.SetURL(baseURL)
	} else {
		baseURL = doc.URL()
	}

	builder := newTreeBuilder(doc, baseURL, scripts, p.logger)
	eng := engine.NewParser("UTF-8")
	eng.SetTreeHandler(builder)
	eng.SetDocumentNode(builder.DocumentNode())
	eng.EnableScripting(true)
	eng.EnableStyling(true)

	var err error
	switch {
	case !input.isURL:
		err = eng.ParseChunk([]byte(input.literal))
	case strings.HasPrefix(resp.Metadata.ContentType, "image/"):
		// A top-level image load becomes a single-element wrapper page.
		page := fmt.Sprintf("<html><body><img src='%s' /></body></html>", baseURL.String())
		err = eng.ParseChunk([]byte(page))
	default:
		err = p.feedBody(eng, doc, resp)
	}
	if err == nil {
		err = eng.Finish()
	}

	scripts.finish()
	if err != nil {
		return nil, err
	}
	return &Result{scripts: scripts.results}, nil
}

// feedBody streams response chunks into the engine. The first chunk plus
// the Content-Type header drive encoding detection; non-UTF-8 bodies are
// routed through the matching decoder and the detected name is recorded on
// the document.
func (p *Parser) feedBody(eng *engine.Parser, doc *htmldoc.Document, resp *loader.Response) error {
	buf := make([]byte, 32<<10)
	n, err := resp.Body.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("htmlparse: read document: %w", err)
	}
	first := append([]byte(nil), buf[:n]...)

	enc, name, _ := charset.DetermineEncoding(first, resp.Metadata.Header.Get("Content-Type"))
	var body io.Reader
	if strings.EqualFold(name, "utf-8") {
		if err := eng.ParseChunk(first); err != nil {
			return err
		}
		body = resp.Body
	} else {
		doc.SetEncoding(name)
		// Decode the full stream, first chunk included, so multibyte
		// sequences spanning the chunk boundary survive.
		body = transform.NewReader(io.MultiReader(bytes.NewReader(first), resp.Body), enc.NewDecoder())
	}

	for {
		n, err := body.Read(buf)
		if n > 0 {
			if perr := eng.ParseChunk(buf[:n]); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			// No more data will arrive: fatal to this document.
			return fmt.Errorf("htmlparse: read document: %w", err)
		}
	}
}
