package markdown

// Kind is the highlight class of a span.
type Kind uint8

const (
	Other Kind = iota
	Heading
	Emphasis
	Strong
	Code
	Link
	Punctuation
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Emphasis:
		return "emphasis"
	case Strong:
		return "strong"
	case Code:
		return "code"
	case Link:
		return "link"
	case Punctuation:
		return "punctuation"
	default:
		return "other"
	}
}

// Span is a classified byte range of the source: [Start, End).
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// nodeKinds maps tree-sitter Markdown node types to highlight kinds.
// Unlisted node types produce no span.
var nodeKinds = map[string]Kind{
	// block grammar
	"atx_heading":                 Heading,
	"setext_heading":              Heading,
	"atx_h1_marker":               Punctuation,
	"atx_h2_marker":               Punctuation,
	"atx_h3_marker":               Punctuation,
	"atx_h4_marker":               Punctuation,
	"atx_h5_marker":               Punctuation,
	"atx_h6_marker":               Punctuation,
	"setext_h1_underline":         Punctuation,
	"setext_h2_underline":         Punctuation,
	"fenced_code_block":           Code,
	"indented_code_block":         Code,
	"fenced_code_block_delimiter": Punctuation,
	"info_string":                 Other,
	"link_reference_definition":   Link,
	"block_quote_marker":          Punctuation,
	"list_marker_minus":           Punctuation,
	"list_marker_plus":            Punctuation,
	"list_marker_star":            Punctuation,
	"list_marker_dot":             Punctuation,
	"list_marker_parenthesis":     Punctuation,
	"thematic_break":              Punctuation,
	"task_list_marker_checked":    Punctuation,
	"task_list_marker_unchecked":  Punctuation,
	"pipe_table_delimiter_row":    Punctuation,

	// inline grammar
	"emphasis":                 Emphasis,
	"strong_emphasis":          Strong,
	"emphasis_delimiter":       Punctuation,
	"code_span":                Code,
	"code_span_delimiter":      Punctuation,
	"inline_link":              Link,
	"full_reference_link":      Link,
	"collapsed_reference_link": Link,
	"shortcut_link":            Link,
	"uri_autolink":             Link,
	"email_autolink":           Link,
	"image":                    Link,
	"link_destination":         Link,
	"link_label":               Link,
	"link_title":               Link,
	"backslash_escape":         Other,
	"html_tag":                 Other,
	"strikethrough":            Other,
}

// KindForNode returns the highlight kind for a tree-sitter node type.
func KindForNode(nodeType string) (Kind, bool) {
	k, ok := nodeKinds[nodeType]
	return k, ok
}
