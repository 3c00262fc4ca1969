package engine

import (
	"fmt"
	"strings"
	"testing"
)

// recorder is a TreeHandler that logs every event for inspection.
type recorder struct {
	nextID NodeID
	names  map[NodeID]string
	events []string
}

func newRecorder() *recorder {
	return &recorder{names: map[NodeID]string{}}
}

func (r *recorder) alloc(name string) NodeID {
	r.nextID++
	r.names[r.nextID] = name
	return r.nextID
}

func (r *recorder) log(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) CreateComment(data string) (NodeID, error) {
	id := r.alloc("#comment")
	r.log("create comment %q", data)
	return id, nil
}

func (r *recorder) CreateDoctype(dt Doctype) (NodeID, error) {
	id := r.alloc("#doctype")
	r.log("create doctype %s", dt.Name)
	return id, nil
}

func (r *recorder) CreateElement(tag Tag) (NodeID, error) {
	id := r.alloc(tag.Name)
	r.log("create element %s ns=%s", tag.Name, tag.Namespace)
	return id, nil
}

func (r *recorder) CreateText(data string) (NodeID, error) {
	id := r.alloc("#text")
	r.log("create text %q", data)
	return id, nil
}

func (r *recorder) RefNode(NodeID)   {}
func (r *recorder) UnrefNode(NodeID) {}

func (r *recorder) AppendChild(parent, child NodeID) (NodeID, error) {
	r.log("append %s < %s", r.names[parent], r.names[child])
	return child, nil
}

func (r *recorder) InsertBefore(parent, child, before NodeID) (NodeID, error) {
	return child, nil
}
func (r *recorder) RemoveChild(parent, child NodeID) (NodeID, error) { return child, nil }
func (r *recorder) CloneNode(id NodeID, deep bool) (NodeID, error)   { return id, nil }
func (r *recorder) ReparentChildren(id, newParent NodeID) error      { return nil }
func (r *recorder) GetParent(id NodeID, elementOnly bool) (NodeID, error) {
	return 0, nil
}
func (r *recorder) HasChildren(id NodeID) (bool, error)     { return false, nil }
func (r *recorder) FormAssociate(form, node NodeID) error   { return nil }
func (r *recorder) AddAttributes(id NodeID, a []Attr) error { return nil }

func (r *recorder) SetQuirksMode(mode QuirksMode) error {
	r.log("quirks %d", mode)
	return nil
}

func (r *recorder) EncodingChange(name string) error {
	r.log("encoding %s", name)
	return nil
}

func (r *recorder) CompleteScript(id NodeID) error {
	r.log("complete script %d", id)
	return nil
}

func (r *recorder) CompleteStyle(id NodeID) error {
	r.log("complete style %d", id)
	return nil
}

func parseAll(t *testing.T, markup string, scripting bool) *recorder {
	t.Helper()
	rec := newRecorder()
	doc := rec.alloc("#document")

	p := NewParser("UTF-8")
	p.SetTreeHandler(rec)
	p.SetDocumentNode(doc)
	p.EnableScripting(scripting)
	p.EnableStyling(true)

	if err := p.ParseChunk([]byte(markup)); err != nil {
		t.Fatal(err)
	}
	if err := p.Finish(); err != nil {
		t.Fatal(err)
	}
	return rec
}

func eventsContainInOrder(events []string, want ...string) bool {
	i := 0
	for _, ev := range events {
		if i < len(want) && strings.Contains(ev, want[i]) {
			i++
		}
	}
	return i == len(want)
}

func TestEventOrder(t *testing.T) {
	rec := parseAll(t, "<!DOCTYPE html><html><head><title>t</title></head><body><p>hi</p></body></html>", false)

	if !eventsContainInOrder(rec.events,
		"create doctype html",
		"quirks 0",
		"create element html",
		"create element head",
		"create element title",
		"create text \"t\"",
		"create element body",
		"create element p",
		"create text \"hi\"",
	) {
		t.Fatalf("unexpected event order:\n%s", strings.Join(rec.events, "\n"))
	}
}

func TestAppendBeforeChildren(t *testing.T) {
	rec := parseAll(t, "<!DOCTYPE html><body><div><span>x</span></div></body>", false)

	// Parents are appended before their children are created.
	if !eventsContainInOrder(rec.events,
		"append body < div",
		"create element span",
		"append div < span",
	) {
		t.Fatalf("expected pre-order attachment:\n%s", strings.Join(rec.events, "\n"))
	}
}

func TestMissingDoctypeIsFullQuirks(t *testing.T) {
	rec := parseAll(t, "<html><body></body></html>", false)

	if !eventsContainInOrder(rec.events, "quirks 2", "create element html") {
		t.Fatalf("expected full quirks before construction:\n%s", strings.Join(rec.events, "\n"))
	}
}

func TestCompleteScriptOrder(t *testing.T) {
	rec := parseAll(t, `<!DOCTYPE html><body><script>A</script><script src="x.js"></script><p></p><script>B</script></body>`, true)

	var completions []string
	for _, ev := range rec.events {
		if strings.HasPrefix(ev, "complete script") {
			completions = append(completions, ev)
		}
	}
	if len(completions) != 3 {
		t.Fatalf("got %d script completions, want 3:\n%s", len(completions), strings.Join(rec.events, "\n"))
	}
	// Each completion fires after the element's subtree.
	if !eventsContainInOrder(rec.events,
		"create text \"A\"",
		"complete script",
		"create element script",
		"complete script",
		"create element p",
		"create text \"B\"",
		"complete script",
	) {
		t.Fatalf("completions out of document order:\n%s", strings.Join(rec.events, "\n"))
	}
}

func TestScriptingDisabledSuppressesCompletion(t *testing.T) {
	rec := parseAll(t, `<!DOCTYPE html><body><script>A</script></body>`, false)

	for _, ev := range rec.events {
		if strings.HasPrefix(ev, "complete script") {
			t.Fatalf("script completion fired with scripting disabled")
		}
	}
}

func TestCompleteStyle(t *testing.T) {
	rec := parseAll(t, `<!DOCTYPE html><head><style>p{}</style></head>`, false)

	if !eventsContainInOrder(rec.events, "create element style", "complete style") {
		t.Fatalf("missing style completion:\n%s", strings.Join(rec.events, "\n"))
	}
}

func TestMetaEncodingChange(t *testing.T) {
	rec := parseAll(t, `<!DOCTYPE html><head><meta charset="windows-1252"></head>`, false)

	if !eventsContainInOrder(rec.events, "encoding windows-1252") {
		t.Fatalf("missing encoding event:\n%s", strings.Join(rec.events, "\n"))
	}

	// Matching the default charset emits nothing.
	rec = parseAll(t, `<!DOCTYPE html><head><meta charset="utf-8"></head>`, false)
	for _, ev := range rec.events {
		if strings.HasPrefix(ev, "encoding") {
			t.Fatal("encoding event for default charset")
		}
	}
}

func TestMetaHTTPEquivEncoding(t *testing.T) {
	rec := parseAll(t, `<!DOCTYPE html><head><meta http-equiv="Content-Type" content="text/html; charset=ISO-8859-2"></head>`, false)

	if !eventsContainInOrder(rec.events, "encoding ISO-8859-2") {
		t.Fatalf("missing http-equiv encoding event:\n%s", strings.Join(rec.events, "\n"))
	}
}

func TestQuirksModeFor(t *testing.T) {
	tests := []struct {
		dt   *Doctype
		want QuirksMode
	}{
		{nil, FullQuirks},
		{&Doctype{Name: "html"}, NoQuirks},
		{&Doctype{Name: "svg"}, FullQuirks},
		{&Doctype{Name: "html", PublicID: "-//W3C//DTD HTML 4.01 Transitional//EN"}, FullQuirks},
		{&Doctype{Name: "html", PublicID: "-//W3C//DTD HTML 4.01 Transitional//EN", SystemID: "http://www.w3.org/TR/html4/loose.dtd"}, LimitedQuirks},
		{&Doctype{Name: "html", PublicID: "-//W3C//DTD XHTML 1.0 Transitional//EN"}, LimitedQuirks},
		{&Doctype{Name: "html", PublicID: "-//IETF//DTD HTML 2.0//EN"}, FullQuirks},
		{&Doctype{Name: "html", SystemID: "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"}, FullQuirks},
	}
	for _, tt := range tests {
		if got := quirksModeFor(tt.dt); got != tt.want {
			t.Errorf("quirksModeFor(%+v) = %d, want %d", tt.dt, got, tt.want)
		}
	}
}

func TestParseChunkAfterFinish(t *testing.T) {
	rec := newRecorder()
	doc := rec.alloc("#document")
	p := NewParser("")
	p.SetTreeHandler(rec)
	p.SetDocumentNode(doc)
	if err := p.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := p.ParseChunk([]byte("x")); err == nil {
		t.Fatal("expected error for chunk after finish")
	}
	if err := p.Finish(); err == nil {
		t.Fatal("expected error for double finish")
	}
}

func TestForeignContent(t *testing.T) {
	rec := parseAll(t, `<!DOCTYPE html><body><svg><use xlink:href="#i"/></svg></body>`, false)

	if !eventsContainInOrder(rec.events, "create element svg ns=svg", "create element use ns=svg") {
		t.Fatalf("missing foreign elements:\n%s", strings.Join(rec.events, "\n"))
	}
}
