// CLAUDE:SUMMARY MCP tools: fetch-and-parse a page or parse literal markup, returning scripts and a markdown rendition.
package htmlparse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/andrewguertin/servo/htmldoc"
	"github.com/andrewguertin/servo/kit"
)

// mcpRenderer converts a parsed document into LLM-friendly markdown.
type mcpRenderer struct {
	sanitizer *bluemonday.Policy
	converter *converter.Converter
}

func newMCPRenderer() *mcpRenderer {
	return &mcpRenderer{
		sanitizer: bluemonday.UGCPolicy(),
		converter: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

func (r *mcpRenderer) markdown(doc *htmldoc.Document, sourceURL string) string {
	clean := r.sanitizer.Sanitize(htmldoc.OuterHTML(doc.Root))
	md, err := r.converter.ConvertString(clean, converter.WithDomain(sourceURL))
	if err != nil {
		return ""
	}
	return md
}

// RegisterMCP registers htmlparse tools on an MCP server.
func (p *Parser) RegisterMCP(srv *mcp.Server) {
	r := newMCPRenderer()
	p.registerFetchTool(srv, r)
	p.registerParseTool(srv, r)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// mcpLogging reports tool failures without altering the response.
func (p *Parser) mcpLogging(tool string) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			resp, err := next(ctx, req)
			if err != nil {
				p.logger.Error("mcp tool failed", "tool", tool, "error", err)
			}
			return resp, err
		}
	}
}

type scriptInfo struct {
	URL   string `json:"url,omitempty"`
	Bytes int    `json:"bytes"`
	Text  string `json:"text"`
}

func scriptInfos(scripts []Script) []scriptInfo {
	out := make([]scriptInfo, 0, len(scripts))
	for _, s := range scripts {
		info := scriptInfo{Bytes: len(s.Text), Text: s.Text}
		if s.URL != nil {
			info.URL = s.URL.String()
		}
		out = append(out, info)
	}
	return out
}

type parseResponse struct {
	URL          string       `json:"url,omitempty"`
	QuirksMode   string       `json:"quirks_mode"`
	Encoding     string       `json:"encoding"`
	LastModified string       `json:"last_modified,omitempty"`
	Markdown     string       `json:"markdown"`
	Scripts      []scriptInfo `json:"scripts"`
}

func (p *Parser) buildResponse(ctx context.Context, doc *htmldoc.Document, res *Result, r *mcpRenderer) (*parseResponse, error) {
	scripts, err := res.Await(ctx)
	if err != nil {
		return nil, err
	}
	out := &parseResponse{
		QuirksMode:   doc.QuirksMode().String(),
		Encoding:     doc.Encoding(),
		LastModified: doc.LastModified(),
		Scripts:      scriptInfos(scripts),
	}
	source := ""
	if doc.URL() != nil {
		source = doc.URL().String()
		out.URL = source
	}
	out.Markdown = r.markdown(doc, source)
	return out, nil
}

// --- fetch ---

type fetchReq struct {
	URL string `json:"url"`
}

func (p *Parser) registerFetchTool(srv *mcp.Server, r *mcpRenderer) {
	tool := &mcp.Tool{
		Name:        "htmlparse_fetch",
		Description: "Fetch a page over HTTP, parse it, and return quirks mode, encoding, discovered scripts, and a markdown rendition.",
		InputSchema: inputSchema(map[string]any{
			"url": map[string]any{"type": "string", "description": "Page URL to fetch"},
		}, []string{"url"}),
	}

	endpoint := kit.Chain(p.mcpLogging(tool.Name))(func(ctx context.Context, req any) (any, error) {
		in := req.(*fetchReq)
		u, err := url.Parse(in.URL)
		if err != nil {
			return nil, fmt.Errorf("parse url: %w", err)
		}
		doc := htmldoc.NewDocument()
		res, err := p.Parse(ctx, doc, URLInput(u))
		if err != nil {
			return nil, err
		}
		return p.buildResponse(ctx, doc, res, r)
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var in fetchReq
		if err := json.Unmarshal(req.Params.Arguments, &in); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &in}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- parse ---

type parseReq struct {
	HTML    string `json:"html"`
	BaseURL string `json:"base_url"`
}

func (p *Parser) registerParseTool(srv *mcp.Server, r *mcpRenderer) {
	tool := &mcp.Tool{
		Name:        "htmlparse_parse",
		Description: "Parse a literal HTML string and return discovered scripts and a markdown rendition.",
		InputSchema: inputSchema(map[string]any{
			"html":     map[string]any{"type": "string", "description": "Markup to parse"},
			"base_url": map[string]any{"type": "string", "description": "Base URL for resolving relative script sources"},
		}, []string{"html"}),
	}

	endpoint := kit.Chain(p.mcpLogging(tool.Name))(func(ctx context.Context, req any) (any, error) {
		in := req.(*parseReq)
		doc := htmldoc.NewDocument()
		if in.BaseURL != "" {
			u, err := url.Parse(in.BaseURL)
			if err != nil {
				return nil, fmt.Errorf("parse base_url: %w", err)
			}
			doc.SetURL(u)
		}
		res, err := p.Parse(ctx, doc, StringInput(in.HTML))
		if err != nil {
			return nil, err
		}
		return p.buildResponse(ctx, doc, res, r)
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var in parseReq
		if err := json.Unmarshal(req.Params.Arguments, &in); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &in}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
