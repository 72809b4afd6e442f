package element

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stele-cms/stele/pkg/dom"
)

// recordingHandler captures slog records so tests can assert on
// deprecation warnings without touching global output.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) warningsNaming(element string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	count := 0
	for _, r := range h.records {
		if r.Level != slog.LevelWarn {
			continue
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "element" && a.Value.String() == element {
				count++
				return false
			}
			return true
		})
	}
	return count
}

type fakeIngredient struct {
	role  string
	value any
}

func (f fakeIngredient) Role() string { return f.role }
func (f fakeIngredient) Value() any   { return f.value }

func (f fakeIngredient) ViewComponent(opts ...ViewOption) *dom.Node {
	class, attrs := ResolveView(opts...)
	return dom.Span(dom.Class(class), attrs, dom.Textf("%v", f.value))
}

type fakeElement struct {
	name        string
	domID       string
	tags        []string
	ingredients map[string]Ingredient
}

func (f *fakeElement) Name() string      { return f.name }
func (f *fakeElement) DomID() string     { return f.domID }
func (f *fakeElement) TagList() []string { return f.tags }

func (f *fakeElement) IngredientByRole(role string) (Ingredient, bool) {
	ing, ok := f.ingredients[role]
	return ing, ok
}

func (f *fakeElement) ValueFor(role string) (any, bool) {
	ing, ok := f.ingredients[role]
	if !ok || ing.Value() == nil {
		return nil, false
	}
	return ing.Value(), true
}

func (f *fakeElement) HasValueFor(role string) bool {
	_, ok := f.ValueFor(role)
	return ok
}

func newTeaser() *fakeElement {
	return &fakeElement{
		name:  "article_teaser",
		domID: "article-teaser-1",
		tags:  []string{"news", "featured"},
		ingredients: map[string]Ingredient{
			"title": fakeIngredient{role: "title", value: "Hello"},
		},
	}
}

func titleBlock(s *Scope) *dom.Node {
	return s.Render("title")
}

func TestRenderElementExplicitIDAndClass(t *testing.T) {
	h := &recordingHandler{}
	r := NewRenderer(WithLogger(slog.New(h)))
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithID("teaser-7"), WithClass("teaser--wide"))

	if got := h.warningsNaming(el.name); got != 0 {
		t.Fatalf("expected no deprecation warnings, got %d", got)
	}
	if node.Tag != "div" {
		t.Fatalf("wrapper tag = %q, want div", node.Tag)
	}
	if node.Attrs["id"] != "teaser-7" {
		t.Fatalf("id = %#v, want teaser-7", node.Attrs["id"])
	}
	if node.Attrs["class"] != "teaser--wide" {
		t.Fatalf("class = %#v, want teaser--wide", node.Attrs["class"])
	}
}

func TestRenderElementOmittedIDFallsBackToDomID(t *testing.T) {
	h := &recordingHandler{}
	r := NewRenderer(WithLogger(slog.New(h)))
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithClass("teaser"))

	if got := h.warningsNaming(el.name); got != 1 {
		t.Fatalf("expected exactly one warning naming %q, got %d", el.name, got)
	}
	if node.Attrs["id"] != el.domID {
		t.Fatalf("id = %#v, want %q", node.Attrs["id"], el.domID)
	}
}

func TestRenderElementOmittedClassFallsBackToName(t *testing.T) {
	h := &recordingHandler{}
	r := NewRenderer(WithLogger(slog.New(h)))
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithID("teaser-7"))

	if got := h.warningsNaming(el.name); got != 1 {
		t.Fatalf("expected exactly one warning naming %q, got %d", el.name, got)
	}
	if node.Attrs["class"] != el.name {
		t.Fatalf("class = %#v, want %q", node.Attrs["class"], el.name)
	}
}

func TestRenderElementWithoutIDAndClassSuppressesWarnings(t *testing.T) {
	h := &recordingHandler{}
	r := NewRenderer(WithLogger(slog.New(h)))
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithoutID(), WithoutClass())

	if got := h.warningsNaming(el.name); got != 0 {
		t.Fatalf("expected no warnings, got %d", got)
	}
	if _, ok := node.Attrs["id"]; ok {
		t.Fatalf("id attribute should be absent, got %#v", node.Attrs["id"])
	}
	if _, ok := node.Attrs["class"]; ok {
		t.Fatalf("class attribute should be absent, got %#v", node.Attrs["class"])
	}
}

func TestRenderElementWithoutWrapperReturnsBlockOutputUnmodified(t *testing.T) {
	previewCalled := false
	tagsCalled := false
	r := NewRenderer(
		WithPreviewAttributer(PreviewAttributerFunc(func(Element) dom.Attrs {
			previewCalled = true
			return dom.Attrs{"data-stele-element": "x"}
		})),
		WithTagAttributer(TagAttributerFunc(func(Element, func([]string) string) dom.Attrs {
			tagsCalled = true
			return dom.Attrs{"data-element-tags": "x"}
		})),
	)
	el := newTeaser()

	want := dom.P("inner")
	got := r.RenderElement(context.Background(), el, func(*Scope) *dom.Node {
		return want
	}, WithoutWrapper())

	if got != want {
		t.Fatalf("output = %#v, want the block output unmodified", got)
	}
	if previewCalled || tagsCalled {
		t.Fatalf("attribute providers must not run without a wrapper (preview=%v tags=%v)",
			previewCalled, tagsCalled)
	}
}

func TestRenderElementTagAttributes(t *testing.T) {
	r := NewRenderer(WithPreviewAttributer(EditorPreview()))
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithID("t"), WithClass("t"))
	if node.Attrs["data-element-tags"] != "news featured" {
		t.Fatalf("data-element-tags = %#v, want %q", node.Attrs["data-element-tags"], "news featured")
	}

	// Suppressing tag attributes keeps preview attributes.
	node = r.RenderElement(context.Background(), el, titleBlock,
		WithID("t"), WithClass("t"), WithoutTagAttributes())
	if _, ok := node.Attrs["data-element-tags"]; ok {
		t.Fatalf("tag attributes should be suppressed, got %#v", node.Attrs["data-element-tags"])
	}
	if node.Attrs["data-stele-element"] != el.domID {
		t.Fatalf("preview attribute = %#v, want %q", node.Attrs["data-stele-element"], el.domID)
	}
}

func TestRenderElementCustomTagsFormatter(t *testing.T) {
	r := NewRenderer()
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithID("t"), WithClass("t"),
		WithTagsFormatter(func(tags []string) string {
			out := ""
			for i, tag := range tags {
				if i > 0 {
					out += ","
				}
				out += tag
			}
			return out
		}))

	if node.Attrs["data-element-tags"] != "news,featured" {
		t.Fatalf("data-element-tags = %#v, want %q", node.Attrs["data-element-tags"], "news,featured")
	}
}

func TestRenderElementCallerAttributesWin(t *testing.T) {
	r := NewRenderer(WithPreviewAttributer(EditorPreview()))
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithID("t"), WithClass("t"),
		WithAttr("data-element-tags", "overridden"),
		WithAttr("data-track", "impression"))

	if node.Attrs["data-element-tags"] != "overridden" {
		t.Fatalf("caller attr lost: %#v", node.Attrs["data-element-tags"])
	}
	if node.Attrs["data-track"] != "impression" {
		t.Fatalf("passthrough attr missing: %#v", node.Attrs["data-track"])
	}
}

func TestRenderElementCustomWrapperTag(t *testing.T) {
	r := NewRenderer()
	el := newTeaser()

	node := r.RenderElement(context.Background(), el, titleBlock,
		WithID("t"), WithClass("t"), WithTag("article"))

	if node.Tag != "article" {
		t.Fatalf("wrapper tag = %q, want article", node.Tag)
	}
}

func TestRenderElementNilElement(t *testing.T) {
	r := NewRenderer()
	if node := r.RenderElement(context.Background(), nil, titleBlock); node != nil {
		t.Fatalf("nil element should render nothing, got %#v", node)
	}
}

func TestScopeRender(t *testing.T) {
	el := newTeaser()
	s := &Scope{element: el}

	node := s.Render("title")
	if node == nil {
		t.Fatal("Render(title) returned nil for a present ingredient")
	}
	want := dom.Span(dom.Text("Hello"))
	if diff := cmp.Diff(want, node); diff != "" {
		t.Fatalf("Render(title) mismatch (-want +got):\n%s", diff)
	}

	if node := s.Render("missing"); node != nil {
		t.Fatalf("Render(missing) = %#v, want nil", node)
	}
}

func TestScopeValueHasConsistency(t *testing.T) {
	el := newTeaser()
	s := &Scope{element: el}

	for _, role := range []string{"title", "missing"} {
		value, ok := s.Value(role)
		if s.Has(role) != ok {
			t.Fatalf("Has(%q)=%v inconsistent with Value ok=%v", role, s.Has(role), ok)
		}
		if ok && value == nil {
			t.Fatalf("Value(%q) present but nil", role)
		}
	}
}

func TestScopeIngredientByRole(t *testing.T) {
	el := newTeaser()
	s := &Scope{element: el}

	ing, ok := s.IngredientByRole("title")
	if !ok {
		t.Fatal("IngredientByRole(title) not found")
	}
	if ing.Role() != "title" || ing.Value() != "Hello" {
		t.Fatalf("unexpected ingredient: role=%q value=%#v", ing.Role(), ing.Value())
	}
	if _, ok := s.IngredientByRole("missing"); ok {
		t.Fatal("IngredientByRole(missing) should not be found")
	}
}

func TestJoinTags(t *testing.T) {
	if got := JoinTags([]string{"news", "featured"}); got != "news featured" {
		t.Fatalf("JoinTags = %q, want %q", got, "news featured")
	}
	if got := JoinTags(nil); got != "" {
		t.Fatalf("JoinTags(nil) = %q, want empty", got)
	}
}
