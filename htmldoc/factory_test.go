package htmldoc

import "testing"

func TestNewElementKnownTags(t *testing.T) {
	doc := NewDocument()

	for tag, want := range tagKinds {
		n := NewElement(doc, tag, NamespaceHTML)
		if n.Type != ElementNode {
			t.Errorf("NewElement(%q): type = %d, want ElementNode", tag, n.Type)
		}
		if n.Data != tag {
			t.Errorf("NewElement(%q): tag name = %q", tag, n.Data)
		}
		if n.Kind != want.kind {
			t.Errorf("NewElement(%q): kind = %d, want %d", tag, n.Kind, want.kind)
		}
		if n.HeadingLevel != want.level {
			t.Errorf("NewElement(%q): heading level = %d, want %d", tag, n.HeadingLevel, want.level)
		}
		if n.Owner != doc {
			t.Errorf("NewElement(%q): wrong owner document", tag)
		}
	}
}

func TestNewElementHeadingLevels(t *testing.T) {
	doc := NewDocument()

	tests := []struct {
		tag   string
		level int
	}{
		{"h1", 1}, {"h2", 2}, {"h3", 3}, {"h4", 4}, {"h5", 5}, {"h6", 6},
	}
	for _, tt := range tests {
		n := NewElement(doc, tt.tag, NamespaceHTML)
		if n.Kind != KindHeading {
			t.Errorf("NewElement(%q): kind = %d, want KindHeading", tt.tag, n.Kind)
		}
		if n.HeadingLevel != tt.level {
			t.Errorf("NewElement(%q): level = %d, want %d", tt.tag, n.HeadingLevel, tt.level)
		}
	}
}

func TestNewElementUnknownTag(t *testing.T) {
	doc := NewDocument()

	for _, tag := range []string{"foobar", "tfoot", "thead", "x-widget", "DIV"} {
		n := NewElement(doc, tag, NamespaceHTML)
		if n.Kind != KindUnknown {
			t.Errorf("NewElement(%q): kind = %d, want KindUnknown", tag, n.Kind)
		}
		if n.Data != tag {
			t.Errorf("NewElement(%q): tag name not preserved, got %q", tag, n.Data)
		}
	}
}

func TestNewElementForeignNamespace(t *testing.T) {
	doc := NewDocument()

	// Foreign elements get no tag-specific dispatch, even for names that
	// exist in the HTML table.
	svg := NewElement(doc, "svg", NamespaceSVG)
	if svg.Kind != KindForeign {
		t.Errorf("svg kind = %d, want KindForeign", svg.Kind)
	}
	script := NewElement(doc, "script", NamespaceSVG)
	if script.Kind != KindForeign {
		t.Errorf("svg script kind = %d, want KindForeign", script.Kind)
	}
	mrow := NewElement(doc, "mrow", NamespaceMathML)
	if mrow.Kind != KindForeign || mrow.Namespace != NamespaceMathML {
		t.Errorf("mrow = kind %d ns %q", mrow.Kind, mrow.Namespace)
	}
}

func TestKnownTagsCount(t *testing.T) {
	tags := KnownTags()
	if len(tags) != len(tagKinds) {
		t.Fatalf("KnownTags() returned %d tags, table has %d", len(tags), len(tagKinds))
	}
	if len(tags) < 100 {
		t.Fatalf("dispatch table has %d tags, expected at least 100", len(tags))
	}
}
