package dom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Attrs, *Node, []*Node, string.
// Nil arguments and empty attributes are ignored, which allows
// conditional attributes and children.
func El(tag string, args ...any) *Node {
	node := &Node{
		Kind:  KindElement,
		Tag:   tag,
		Attrs: make(Attrs),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			if !v.IsEmpty() {
				node.Attrs[v.Key] = v.Value
			}

		case []Attr:
			for _, attr := range v {
				if !attr.IsEmpty() {
					node.Attrs[attr.Key] = attr.Value
				}
			}

		case Attrs:
			for key, value := range v {
				node.Attrs[key] = value
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for a text node
			node.Children = append(node.Children, &Node{
				Kind: KindText,
				Text: v,
			})
		}
	}

	return node
}

// Grouping and sectioning elements

func Div(args ...any) *Node     { return El("div", args...) }
func Section(args ...any) *Node { return El("section", args...) }
func Article(args ...any) *Node { return El("article", args...) }
func Aside(args ...any) *Node   { return El("aside", args...) }
func Header(args ...any) *Node  { return El("header", args...) }
func Footer(args ...any) *Node  { return El("footer", args...) }
func Nav(args ...any) *Node     { return El("nav", args...) }
func Main(args ...any) *Node    { return El("main", args...) }

// Heading and text content elements

func H1(args ...any) *Node         { return El("h1", args...) }
func H2(args ...any) *Node         { return El("h2", args...) }
func H3(args ...any) *Node         { return El("h3", args...) }
func H4(args ...any) *Node         { return El("h4", args...) }
func H5(args ...any) *Node         { return El("h5", args...) }
func H6(args ...any) *Node         { return El("h6", args...) }
func P(args ...any) *Node          { return El("p", args...) }
func Span(args ...any) *Node       { return El("span", args...) }
func Blockquote(args ...any) *Node { return El("blockquote", args...) }
func Pre(args ...any) *Node        { return El("pre", args...) }

// List elements

func Ul(args ...any) *Node { return El("ul", args...) }
func Ol(args ...any) *Node { return El("ol", args...) }
func Li(args ...any) *Node { return El("li", args...) }
func Dl(args ...any) *Node { return El("dl", args...) }
func Dt(args ...any) *Node { return El("dt", args...) }
func Dd(args ...any) *Node { return El("dd", args...) }

// Inline and media elements

func A(args ...any) *Node          { return El("a", args...) }
func Strong(args ...any) *Node     { return El("strong", args...) }
func Em(args ...any) *Node         { return El("em", args...) }
func Img(args ...any) *Node        { return El("img", args...) }
func Figure(args ...any) *Node     { return El("figure", args...) }
func Figcaption(args ...any) *Node { return El("figcaption", args...) }
func Time(args ...any) *Node       { return El("time", args...) }
func Br(args ...any) *Node         { return El("br", args...) }
func Hr(args ...any) *Node         { return El("hr", args...) }
