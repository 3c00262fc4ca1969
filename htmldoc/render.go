// CLAUDE:SUMMARY HTML serialization of the node tree (Render to a writer, OuterHTML convenience).
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never carry children and serialize without an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements serialize their text children without escaping.
var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "xmp": true,
}

// Render writes the standard HTML serialization of n and its subtree to w.
func Render(w io.Writer, n *Node) error {
	switch n.Type {
	case DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := Render(w, c); err != nil {
				return err
			}
		}
		return nil
	case DoctypeNode:
		_, err := fmt.Fprintf(w, "<!DOCTYPE %s>", n.Data)
		return err
	case TextNode:
		if p := n.Parent; p != nil && p.Type == ElementNode && rawTextElements[p.Data] {
			_, err := io.WriteString(w, n.Data)
			return err
		}
		_, err := io.WriteString(w, html.EscapeString(n.Data))
		return err
	case CommentNode:
		_, err := fmt.Fprintf(w, "<!--%s-->", n.Data)
		return err
	case ElementNode:
		return renderElement(w, n)
	}
	return fmt.Errorf("htmldoc: cannot render node type %d", n.Type)
}

func renderElement(w io.Writer, n *Node) error {
	if _, err := io.WriteString(w, "<"+n.Data); err != nil {
		return err
	}
	for _, a := range n.Attrs {
		key := a.Key
		if a.Prefix != "" {
			key = a.Prefix + ":" + key
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, html.EscapeString(a.Value)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if n.Namespace == NamespaceHTML && voidElements[n.Data] {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := Render(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Data+">")
	return err
}

// OuterHTML returns the HTML serialization of n and its subtree.
func OuterHTML(n *Node) string {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}
