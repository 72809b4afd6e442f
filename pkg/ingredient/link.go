package ingredient

import (
	"time"

	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
)

// Link is an anchor ingredient.
type Link struct {
	role   string
	url    string
	label  string
	target string
	rel    string
}

// LinkOption configures a link ingredient.
type LinkOption func(*Link)

// LinkTarget sets the anchor target.
func LinkTarget(target string) LinkOption {
	return func(l *Link) { l.target = target }
}

// LinkRel sets the anchor rel.
func LinkRel(rel string) LinkOption {
	return func(l *Link) { l.rel = rel }
}

// NewLink creates a link ingredient. An empty label falls back to the
// URL.
func NewLink(role, url, label string, opts ...LinkOption) Link {
	l := Link{role: role, url: url, label: label}
	for _, opt := range opts {
		opt(&l)
	}
	if l.label == "" {
		l.label = url
	}
	return l
}

// Role implements element.Ingredient.
func (l Link) Role() string { return l.role }

// Value implements element.Ingredient.
func (l Link) Value() any {
	if l.url == "" {
		return nil
	}
	return l.url
}

// ViewComponent renders the anchor.
func (l Link) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)
	return dom.A(
		dom.Href(l.url),
		dom.AttrIf(l.target != "", dom.Target(l.target)),
		dom.AttrIf(l.rel != "", dom.Rel(l.rel)),
		dom.Class(class),
		attrs,
		dom.Text(l.label),
	)
}

// Boolean is a true/false ingredient rendered as one of two labels.
type Boolean struct {
	role       string
	value      bool
	trueLabel  string
	falseLabel string
}

// BooleanOption configures a boolean ingredient.
type BooleanOption func(*Boolean)

// BooleanLabels sets the labels rendered for true and false. Empty
// labels keep the defaults "yes" and "no".
func BooleanLabels(trueLabel, falseLabel string) BooleanOption {
	return func(b *Boolean) {
		if trueLabel != "" {
			b.trueLabel = trueLabel
		}
		if falseLabel != "" {
			b.falseLabel = falseLabel
		}
	}
}

// NewBoolean creates a boolean ingredient.
func NewBoolean(role string, value bool, opts ...BooleanOption) Boolean {
	b := Boolean{role: role, value: value, trueLabel: "yes", falseLabel: "no"}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Role implements element.Ingredient.
func (b Boolean) Role() string { return b.role }

// Value implements element.Ingredient.
func (b Boolean) Value() any { return b.value }

// ViewComponent renders the label matching the value.
func (b Boolean) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)
	label := b.falseLabel
	if b.value {
		label = b.trueLabel
	}
	return dom.Span(dom.Class(class), attrs, dom.Text(label))
}

// Datetime is a timestamp ingredient rendered as a time element with a
// machine-readable datetime attribute.
type Datetime struct {
	role   string
	value  time.Time
	format string
}

// DatetimeOption configures a datetime ingredient.
type DatetimeOption func(*Datetime)

// DatetimeFormat sets the display format (time.Format layout). An
// empty format keeps the default "January 2, 2006".
func DatetimeFormat(format string) DatetimeOption {
	return func(d *Datetime) {
		if format != "" {
			d.format = format
		}
	}
}

// NewDatetime creates a datetime ingredient.
func NewDatetime(role string, value time.Time, opts ...DatetimeOption) Datetime {
	d := Datetime{role: role, value: value, format: "January 2, 2006"}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Role implements element.Ingredient.
func (d Datetime) Role() string { return d.role }

// Value implements element.Ingredient.
func (d Datetime) Value() any {
	if d.value.IsZero() {
		return nil
	}
	return d.value
}

// ViewComponent renders the time element.
func (d Datetime) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)
	return dom.Time(
		dom.Datetime(d.value.Format(time.RFC3339)),
		dom.Class(class),
		attrs,
		dom.Text(d.value.Format(d.format)),
	)
}
