// CLAUDE:SUMMARY Element factory: static tag-name-to-kind dispatch table for the HTML namespace with unknown-element fallback.
package htmldoc

// ElementKind identifies the concrete element type produced by the factory.
// Kinds are data variants, not subclasses; kind-specific state (heading
// level) lives in dedicated Node fields.
type ElementKind int

const (
	// KindGeneric is a known HTML element with no specialized type.
	KindGeneric ElementKind = iota
	// KindUnknown is an HTML element whose tag is not in the dispatch
	// table. The original tag name is preserved on the node.
	KindUnknown
	// KindForeign is a non-HTML (MathML, SVG) element.
	KindForeign

	KindAnchor
	KindApplet
	KindArea
	KindAudio
	KindBase
	KindBody
	KindBR
	KindButton
	KindCanvas
	KindData
	KindDataList
	KindDirectory
	KindDiv
	KindDList
	KindEmbed
	KindFieldSet
	KindFont
	KindForm
	KindFrame
	KindFrameSet
	KindHead
	KindHeading
	KindHR
	KindHTML
	KindIFrame
	KindImage
	KindInput
	KindLabel
	KindLegend
	KindLI
	KindLink
	KindMap
	KindMeta
	KindMeter
	KindMod
	KindObject
	KindOList
	KindOptGroup
	KindOption
	KindOutput
	KindParagraph
	KindParam
	KindPre
	KindProgress
	KindQuote
	KindScript
	KindSelect
	KindSource
	KindSpan
	KindStyle
	KindTable
	KindTableCaption
	KindTableCol
	KindTableDataCell
	KindTableHeaderCell
	KindTableRow
	KindTableSection
	KindTemplate
	KindTextArea
	KindTime
	KindTitle
	KindTrack
	KindUList
	KindVideo
)

type tagEntry struct {
	kind  ElementKind
	level int // heading level, 0 for non-headings
}

// tagKinds is the closed, case-sensitive dispatch table for HTML-namespace
// tags. Tags absent from the table produce KindUnknown.
var tagKinds = map[string]tagEntry{
	"a":          {kind: KindAnchor},
	"abbr":       {kind: KindGeneric},
	"acronym":    {kind: KindGeneric},
	"address":    {kind: KindGeneric},
	"applet":     {kind: KindApplet},
	"area":       {kind: KindArea},
	"article":    {kind: KindGeneric},
	"aside":      {kind: KindGeneric},
	"audio":      {kind: KindAudio},
	"b":          {kind: KindGeneric},
	"base":       {kind: KindBase},
	"bdi":        {kind: KindGeneric},
	"bdo":        {kind: KindGeneric},
	"bgsound":    {kind: KindGeneric},
	"big":        {kind: KindGeneric},
	"blockquote": {kind: KindGeneric},
	"body":       {kind: KindBody},
	"br":         {kind: KindBR},
	"button":     {kind: KindButton},
	"canvas":     {kind: KindCanvas},
	"caption":    {kind: KindTableCaption},
	"center":     {kind: KindGeneric},
	"cite":       {kind: KindGeneric},
	"code":       {kind: KindGeneric},
	"col":        {kind: KindTableCol},
	"colgroup":   {kind: KindTableCol},
	"data":       {kind: KindData},
	"datalist":   {kind: KindDataList},
	"dd":         {kind: KindGeneric},
	"del":        {kind: KindMod},
	"details":    {kind: KindGeneric},
	"dfn":        {kind: KindGeneric},
	"dir":        {kind: KindDirectory},
	"div":        {kind: KindDiv},
	"dl":         {kind: KindDList},
	"dt":         {kind: KindGeneric},
	"em":         {kind: KindGeneric},
	"embed":      {kind: KindEmbed},
	"fieldset":   {kind: KindFieldSet},
	"figcaption": {kind: KindGeneric},
	"figure":     {kind: KindGeneric},
	"font":       {kind: KindFont},
	"footer":     {kind: KindGeneric},
	"form":       {kind: KindForm},
	"frame":      {kind: KindFrame},
	"frameset":   {kind: KindFrameSet},
	"h1":         {kind: KindHeading, level: 1},
	"h2":         {kind: KindHeading, level: 2},
	"h3":         {kind: KindHeading, level: 3},
	"h4":         {kind: KindHeading, level: 4},
	"h5":         {kind: KindHeading, level: 5},
	"h6":         {kind: KindHeading, level: 6},
	"head":       {kind: KindHead},
	"header":     {kind: KindGeneric},
	"hgroup":     {kind: KindGeneric},
	"hr":         {kind: KindHR},
	"html":       {kind: KindHTML},
	"i":          {kind: KindGeneric},
	"iframe":     {kind: KindIFrame},
	"img":        {kind: KindImage},
	"input":      {kind: KindInput},
	"ins":        {kind: KindMod},
	"isindex":    {kind: KindGeneric},
	"kbd":        {kind: KindGeneric},
	"label":      {kind: KindLabel},
	"legend":     {kind: KindLegend},
	"li":         {kind: KindLI},
	"link":       {kind: KindLink},
	"main":       {kind: KindGeneric},
	"map":        {kind: KindMap},
	"mark":       {kind: KindGeneric},
	"marquee":    {kind: KindGeneric},
	"meta":       {kind: KindMeta},
	"meter":      {kind: KindMeter},
	"nav":        {kind: KindGeneric},
	"nobr":       {kind: KindGeneric},
	"noframes":   {kind: KindGeneric},
	"noscript":   {kind: KindGeneric},
	"object":     {kind: KindObject},
	"ol":         {kind: KindOList},
	"optgroup":   {kind: KindOptGroup},
	"option":     {kind: KindOption},
	"output":     {kind: KindOutput},
	"p":          {kind: KindParagraph},
	"param":      {kind: KindParam},
	"pre":        {kind: KindPre},
	"progress":   {kind: KindProgress},
	"q":          {kind: KindQuote},
	"rp":         {kind: KindGeneric},
	"rt":         {kind: KindGeneric},
	"ruby":       {kind: KindGeneric},
	"s":          {kind: KindGeneric},
	"samp":       {kind: KindGeneric},
	"script":     {kind: KindScript},
	"section":    {kind: KindGeneric},
	"select":     {kind: KindSelect},
	"small":      {kind: KindGeneric},
	"source":     {kind: KindSource},
	"spacer":     {kind: KindGeneric},
	"span":       {kind: KindSpan},
	"strike":     {kind: KindGeneric},
	"strong":     {kind: KindGeneric},
	"style":      {kind: KindStyle},
	"sub":        {kind: KindGeneric},
	"summary":    {kind: KindGeneric},
	"sup":        {kind: KindGeneric},
	"table":      {kind: KindTable},
	"tbody":      {kind: KindTableSection},
	"td":         {kind: KindTableDataCell},
	"template":   {kind: KindTemplate},
	"textarea":   {kind: KindTextArea},
	"th":         {kind: KindTableHeaderCell},
	"time":       {kind: KindTime},
	"title":      {kind: KindTitle},
	"tr":         {kind: KindTableRow},
	"tt":         {kind: KindGeneric},
	"track":      {kind: KindTrack},
	"u":          {kind: KindGeneric},
	"ul":         {kind: KindUList},
	"var":        {kind: KindGeneric},
	"video":      {kind: KindVideo},
	"wbr":        {kind: KindGeneric},
}

// KnownTags returns the tag names in the HTML dispatch table.
func KnownTags() []string {
	tags := make([]string, 0, len(tagKinds))
	for t := range tagKinds {
		tags = append(tags, t)
	}
	return tags
}

// NewElement creates an unattached element node owned by doc. HTML-namespace
// tags dispatch through the static table; every other namespace yields a
// generic foreign element carrying the tag name. There is no error path:
// every input has a defined output.
func NewElement(doc *Document, tag, namespace string) *Node {
	n := &Node{
		Type:      ElementNode,
		Owner:     doc,
		Data:      tag,
		Namespace: namespace,
	}
	if namespace != NamespaceHTML {
		n.Kind = KindForeign
		return n
	}
	entry, ok := tagKinds[tag]
	if !ok {
		n.Kind = KindUnknown
		return n
	}
	n.Kind = entry.kind
	n.HeadingLevel = entry.level
	return n
}
