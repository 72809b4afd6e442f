package ingredient

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
)

// defaultPolicy sanitizes richtext content. UGC covers the formatting
// tags content editors produce while stripping scripts and event
// handler attributes.
var defaultPolicy = bluemonday.UGCPolicy()

// Richtext is formatted HTML content sanitized before rendering.
type Richtext struct {
	role   string
	html   string
	policy *bluemonday.Policy
}

// RichtextOption configures a richtext ingredient.
type RichtextOption func(*Richtext)

// RichtextPolicy overrides the sanitization policy.
func RichtextPolicy(policy *bluemonday.Policy) RichtextOption {
	return func(r *Richtext) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// NewRichtext creates a richtext ingredient.
func NewRichtext(role, html string, opts ...RichtextOption) Richtext {
	r := Richtext{role: role, html: html, policy: defaultPolicy}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Role implements element.Ingredient.
func (r Richtext) Role() string { return r.role }

// Value implements element.Ingredient.
func (r Richtext) Value() any {
	if r.html == "" {
		return nil
	}
	return r.html
}

// Sanitized returns the content after applying the policy.
func (r Richtext) Sanitized() string {
	return r.policy.Sanitize(r.html)
}

// ViewComponent renders the sanitized content. Without view options the
// raw node is returned directly; a class or extra attributes wrap it in
// a div.
func (r Richtext) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)
	body := dom.Raw(r.Sanitized())
	if class == "" && len(attrs) == 0 {
		return body
	}
	return dom.Div(dom.Class(class), attrs, body)
}

// HTML is an unsanitized raw HTML embed. Only use it for trusted
// content; untrusted input belongs in Richtext.
type HTML struct {
	role string
	html string
}

// NewHTML creates a raw html ingredient.
func NewHTML(role, html string) HTML {
	return HTML{role: role, html: html}
}

// Role implements element.Ingredient.
func (h HTML) Role() string { return h.role }

// Value implements element.Ingredient.
func (h HTML) Value() any {
	if h.html == "" {
		return nil
	}
	return h.html
}

// ViewComponent renders the content without escaping or sanitizing.
func (h HTML) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)
	body := dom.Raw(h.html)
	if class == "" && len(attrs) == 0 {
		return body
	}
	return dom.Div(dom.Class(class), attrs, body)
}
