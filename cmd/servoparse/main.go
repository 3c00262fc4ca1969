// CLAUDE:SUMMARY CLI entry point for servoparse — one-shot page parsing or an MCP stdio server.
// Command servoparse parses HTML documents and reports the scripts they
// would execute.
//
// Usage:
//
//	servoparse -url https://example.com          # fetch, parse, print JSON
//	servoparse < page.html                       # parse stdin markup
//	servoparse -base https://example.com/ < page.html
//	servoparse -mcp                              # serve MCP tools over stdio
//	servoparse -config servoparse.yaml -mcp      # with a config file
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/andrewguertin/servo/htmldoc"
	"github.com/andrewguertin/servo/htmlparse"
)

func main() {
	configPath := flag.String("config", "", "path to servoparse.yaml config file")
	pageURL := flag.String("url", "", "page URL to fetch and parse")
	baseURL := flag.String("base", "", "base URL for stdin markup")
	serveMCP := flag.Bool("mcp", false, "serve MCP tools over stdio")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *configPath, *pageURL, *baseURL, *serveMCP); err != nil {
		logger.Error("servoparse: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath, pageURL, baseURL string, serveMCP bool) error {
	cfg := &htmlparse.Config{}
	if configPath != "" {
		var err error
		cfg, err = htmlparse.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	cfg.Logger = logger
	parser := htmlparse.New(*cfg)

	if serveMCP {
		srv := mcp.NewServer(&mcp.Implementation{
			Name:    "servoparse",
			Version: "1.0.0",
		}, nil)
		parser.RegisterMCP(srv)
		logger.Info("servoparse: MCP serving on stdio")
		return srv.Run(ctx, &mcp.StdioTransport{})
	}

	doc := htmldoc.NewDocument()
	var input htmlparse.Input
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return fmt.Errorf("parse url: %w", err)
		}
		input = htmlparse.URLInput(u)
	} else {
		if baseURL != "" {
			u, err := url.Parse(baseURL)
			if err != nil {
				return fmt.Errorf("parse base url: %w", err)
			}
			doc.SetURL(u)
		}
		markup, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = htmlparse.StringInput(string(markup))
	}

	res, err := parser.Parse(ctx, doc, input)
	if err != nil {
		return err
	}
	scripts, err := res.Await(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report(doc, scripts))
}

type scriptReport struct {
	URL   string `json:"url,omitempty"`
	Bytes int    `json:"bytes"`
}

type parseReport struct {
	URL          string         `json:"url,omitempty"`
	QuirksMode   string         `json:"quirks_mode"`
	Encoding     string         `json:"encoding"`
	LastModified string         `json:"last_modified,omitempty"`
	Scripts      []scriptReport `json:"scripts"`
}

func report(doc *htmldoc.Document, scripts []htmlparse.Script) parseReport {
	out := parseReport{
		QuirksMode:   doc.QuirksMode().String(),
		Encoding:     doc.Encoding(),
		LastModified: doc.LastModified(),
		Scripts:      make([]scriptReport, 0, len(scripts)),
	}
	if doc.URL() != nil {
		out.URL = doc.URL().String()
	}
	for _, s := range scripts {
		r := scriptReport{Bytes: len(s.Text)}
		if s.URL != nil {
			r.URL = s.URL.String()
		}
		out.Scripts = append(out.Scripts, r)
	}
	return out
}
