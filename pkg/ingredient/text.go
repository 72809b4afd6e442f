package ingredient

import (
	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
)

// Text is a plain inline text ingredient. Its content is escaped on
// render.
type Text struct {
	role  string
	value string
}

// NewText creates a text ingredient.
func NewText(role, value string) Text {
	return Text{role: role, value: value}
}

// Role implements element.Ingredient.
func (t Text) Role() string { return t.role }

// Value implements element.Ingredient.
func (t Text) Value() any {
	if t.value == "" {
		return nil
	}
	return t.value
}

// ViewComponent renders the text. Without view options the bare text
// node is returned; a class or extra attributes wrap it in a span.
func (t Text) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)
	if class == "" && len(attrs) == 0 {
		return dom.Text(t.value)
	}
	return dom.Span(dom.Class(class), attrs, dom.Text(t.value))
}

// Headline is a heading ingredient rendered as h1 through h6.
type Headline struct {
	role  string
	value string
	level int
}

// NewHeadline creates a headline ingredient. Levels outside 1..6 are
// clamped.
func NewHeadline(role, value string, level int) Headline {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return Headline{role: role, value: value, level: level}
}

// Role implements element.Ingredient.
func (h Headline) Role() string { return h.role }

// Value implements element.Ingredient.
func (h Headline) Value() any {
	if h.value == "" {
		return nil
	}
	return h.value
}

// Level returns the heading level.
func (h Headline) Level() int { return h.level }

// ViewComponent renders the heading element for the configured level.
func (h Headline) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)
	tags := [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}
	return dom.El(tags[h.level-1], dom.Class(class), attrs, dom.Text(h.value))
}
