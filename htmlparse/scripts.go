// CLAUDE:SUMMARY Script discovery pipeline: single worker resolving external and inline scripts strictly in arrival order.
package htmlparse

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/andrewguertin/servo/loader"
)

// Script is one discovered script body, ready for downstream execution.
type Script struct {
	// Text is the script source, decoded as UTF-8 with lossy replacement
	// of invalid sequences.
	Text string
	// URL is the final post-redirect URL for external scripts, or the
	// page base URL for inline scripts (nil if the page has none).
	URL *url.URL
}

type scriptRequest struct {
	external bool
	url      *url.URL // fetch target for external, base URL for inline
	text     string   // inline only
}

// scriptPipeline resolves discovered scripts concurrently with parsing.
//
// The bridge enqueues requests synchronously in document order; the worker
// drains them strictly in arrival order, performing each external load to
// completion before the next. The published sequence is therefore exactly
// document discovery order, including interleaving of inline and external
// scripts. Real engines apply per-script timing rules (async, defer,
// parser blocking); serializing here is a deliberate simplification.
type scriptPipeline struct {
	in      chan scriptRequest
	results chan []Script
}

// startScriptPipeline launches the buffer stage and the worker. ctx bounds
// the external fetches; the pipeline itself only terminates via finish.
func startScriptPipeline(ctx context.Context, ld loader.Loader, logger *slog.Logger) *scriptPipeline {
	p := &scriptPipeline{
		in:      make(chan scriptRequest),
		results: make(chan []Script, 1),
	}
	queued := make(chan scriptRequest)
	go bufferRequests(p.in, queued)
	go p.run(ctx, ld, queued, logger)
	return p
}

// enqueueExternal requests a fetch of an external script. Never blocks on
// pipeline progress.
func (p *scriptPipeline) enqueueExternal(u *url.URL) {
	p.in <- scriptRequest{external: true, url: u}
}

// enqueueInline hands over an inline script body. Never blocks on pipeline
// progress.
func (p *scriptPipeline) enqueueInline(text string, base *url.URL) {
	p.in <- scriptRequest{text: text, url: base}
}

// finish signals that no more scripts will arrive. The accumulated result
// set is published exactly once after the queue drains.
func (p *scriptPipeline) finish() {
	close(p.in)
}

// bufferRequests is an unbounded buffer stage between the bridge and the
// worker, so enqueueing never waits for an in-flight fetch.
func bufferRequests(in <-chan scriptRequest, out chan<- scriptRequest) {
	var queue []scriptRequest
	for in != nil || len(queue) > 0 {
		var send chan<- scriptRequest
		var head scriptRequest
		if len(queue) > 0 {
			send = out
			head = queue[0]
		}
		select {
		case req, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, req)
		case send <- head:
			queue = queue[1:]
		}
	}
	close(out)
}

func (p *scriptPipeline) run(ctx context.Context, ld loader.Loader, queued <-chan scriptRequest, logger *slog.Logger) {
	var results []Script
	for req := range queued {
		if !req.external {
			results = append(results, Script{Text: req.text, URL: req.url})
			continue
		}
		md, body, err := ld.LoadWhole(ctx, req.url)
		if err != nil {
			// A single failed fetch is skipped; parsing and the rest
			// of the result set are unaffected.
			logger.Error("script load failed", "url", req.url.String(), "error", err)
			continue
		}
		results = append(results, Script{
			Text: strings.ToValidUTF8(string(body), "�"),
			URL:  md.FinalURL,
		})
	}
	p.results <- results
}

// Result is the handle a caller uses to await the ordered script set once
// parsing has finished. Single-consumer; not safe for concurrent Await.
type Result struct {
	scripts <-chan []Script
	cached  []Script
	done    bool
}

// Await blocks until the pipeline publishes the result set, which happens
// after the last chunk has been parsed and the queue has drained.
func (r *Result) Await(ctx context.Context) ([]Script, error) {
	if r.done {
		return r.cached, nil
	}
	select {
	case s := <-r.scripts:
		r.cached = s
		r.done = true
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
