package htmldoc

import "testing"

func TestOuterHTML(t *testing.T) {
	doc := NewDocument()

	div := NewElement(doc, "div", NamespaceHTML)
	div.SetAttributeFromParser(Attr{Key: "class", Value: "main"})
	p := NewElement(doc, "p", NamespaceHTML)
	p.AppendChild(NewText(doc, "a < b"))
	div.AppendChild(p)
	div.AppendChild(NewElement(doc, "br", NamespaceHTML))

	want := `<div class="main"><p>a &lt; b</p><br></div>`
	if got := OuterHTML(div); got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}

func TestRenderDocument(t *testing.T) {
	doc := NewDocument()
	doc.Root.AppendChild(NewDoctype(doc, "html", "", ""))
	htmlEl := NewElement(doc, "html", NamespaceHTML)
	body := NewElement(doc, "body", NamespaceHTML)
	body.AppendChild(NewComment(doc, "note"))
	htmlEl.AppendChild(body)
	doc.Root.AppendChild(htmlEl)

	want := "<!DOCTYPE html><html><body><!--note--></body></html>"
	if got := OuterHTML(doc.Root); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRenderScriptNotEscaped(t *testing.T) {
	doc := NewDocument()
	script := NewElement(doc, "script", NamespaceHTML)
	script.AppendChild(NewText(doc, "if (a < b) { f(); }"))

	want := "<script>if (a < b) { f(); }</script>"
	if got := OuterHTML(script); got != want {
		t.Errorf("script render = %q, want %q", got, want)
	}
}

func TestRenderPrefixedAttr(t *testing.T) {
	doc := NewDocument()
	use := NewElement(doc, "use", NamespaceSVG)
	use.SetAttributeFromParser(Attr{Namespace: NamespaceXLink, Prefix: "xlink", Key: "href", Value: "#icon"})

	want := `<use xlink:href="#icon"></use>`
	if got := OuterHTML(use); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}
