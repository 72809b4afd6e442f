package element

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stele-cms/stele/pkg/dom"
)

// tracerName identifies render spans emitted by this package.
const tracerName = "stele/element"

// Renderer renders content elements into wrapped markup nodes.
//
// A Renderer is stateless per call and safe for concurrent use. Each
// RenderElement call resolves its options, invokes the caller's block
// with a Scope bound to the element, and wraps the block's output in a
// container node carrying computed attributes.
type Renderer struct {
	logger  *slog.Logger
	preview PreviewAttributer
	tags    TagAttributer
	tracer  trace.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for deprecation warnings.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPreviewAttributer sets the preview attributes provider.
// Defaults to NopPreview().
func WithPreviewAttributer(p PreviewAttributer) Option {
	return func(r *Renderer) {
		if p != nil {
			r.preview = p
		}
	}
}

// WithTagAttributer sets the tag attributes provider.
// Defaults to DataTagAttributer().
func WithTagAttributer(t TagAttributer) Option {
	return func(r *Renderer) {
		if t != nil {
			r.tags = t
		}
	}
}

// NewRenderer creates an element renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger:  slog.Default(),
		preview: NopPreview(),
		tags:    DataTagAttributer(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Block produces the inner content of an element from a per-call Scope.
type Block func(s *Scope) *dom.Node

// RenderElement renders el by invoking block with a Scope bound to it
// and wrapping the result in a container node.
//
// Option resolution:
//   - id: WithID wins; otherwise the element's DomID is used and a
//     deprecation warning naming the element is logged. WithoutID
//     omits the attribute silently.
//   - class: WithClass wins; otherwise the element's name is used with
//     a deprecation warning. WithoutClass omits silently.
//   - tag: defaults to a div; WithoutWrapper returns the block output
//     unmodified with no attribute computation at all.
//   - tag attributes: the formatter (default: join with a single
//     space) is applied to the element's tag list unless
//     WithoutTagAttributes is given.
//
// Caller-supplied attributes are merged last and win over computed
// preview and tag attributes. A nil el yields nil. Missing ingredients
// inside the block resolve to absent output, never an error.
func (r *Renderer) RenderElement(ctx context.Context, el Element, block Block, opts ...RenderOption) *dom.Node {
	if el == nil {
		return nil
	}

	_, span := r.tracer.Start(ctx, "element.render",
		trace.WithAttributes(attribute.String("element.name", el.Name())))
	defer span.End()

	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var body *dom.Node
	if block != nil {
		body = block(&Scope{element: el})
	}

	if cfg.noWrapper {
		return body
	}
	span.SetAttributes(attribute.String("element.tag", cfg.tag))

	attrs := r.preview.Attributes(el).Merge(nil)
	if !cfg.noTagAttrs {
		attrs = attrs.Merge(r.tags.Attributes(el, cfg.formatter))
	}

	id, class := r.resolveIdentity(el, &cfg)
	if id != "" {
		attrs["id"] = id
	}
	if class != "" {
		attrs["class"] = class
	}

	// Explicit caller attributes merge last and win.
	attrs = attrs.Merge(cfg.attrs)

	return dom.El(cfg.tag, attrs, body)
}

// resolveIdentity applies the id/class fallback rules, emitting one
// deprecation warning per omitted option.
func (r *Renderer) resolveIdentity(el Element, cfg *renderConfig) (id, class string) {
	switch {
	case cfg.noID:
	case cfg.idSet:
		id = cfg.id
	default:
		r.logger.Warn("rendering an element without an explicit id is deprecated, falling back to its dom id",
			"element", el.Name())
		id = el.DomID()
	}

	switch {
	case cfg.noClass:
	case cfg.classSet:
		class = cfg.class
	default:
		r.logger.Warn("rendering an element without an explicit class is deprecated, falling back to its name",
			"element", el.Name())
		class = el.Name()
	}

	return id, class
}

// Scope is the per-call helper facade handed to render blocks. It is
// stateless beyond its bound element and carries no lifecycle beyond a
// single RenderElement call.
type Scope struct {
	element Element
}

// Element returns the element this scope is bound to.
func (s *Scope) Element() Element {
	return s.element
}

// Render looks up the ingredient bound to role and renders its view
// component. A missing ingredient yields nil: no output, no error.
func (s *Scope) Render(role string, opts ...ViewOption) *dom.Node {
	ing, ok := s.element.IngredientByRole(role)
	if !ok {
		return nil
	}
	return ing.ViewComponent(opts...)
}

// Value returns the element's value for role.
func (s *Scope) Value(role string) (any, bool) {
	return s.element.ValueFor(role)
}

// Has reports whether the element has a value for role.
func (s *Scope) Has(role string) bool {
	return s.element.HasValueFor(role)
}

// IngredientByRole returns the raw ingredient for role, bypassing
// rendering.
func (s *Scope) IngredientByRole(role string) (Ingredient, bool) {
	return s.element.IngredientByRole(role)
}
