package ingredient

import (
	"strings"
	"testing"
	"time"

	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
	"github.com/stele-cms/stele/pkg/render"
)

func renderHTML(t *testing.T, node *dom.Node) string {
	t.Helper()
	html, err := render.NewRenderer(render.Config{}).ToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestTextBareAndWrapped(t *testing.T) {
	text := NewText("title", "Breaking news")

	if got := renderHTML(t, text.ViewComponent()); got != "Breaking news" {
		t.Errorf("bare text = %q", got)
	}

	got := renderHTML(t, text.ViewComponent(element.WithViewClass("teaser-title")))
	want := `<span class="teaser-title">Breaking news</span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextEscapesOnRender(t *testing.T) {
	text := NewText("title", "<b>bold</b>")
	got := renderHTML(t, text.ViewComponent())
	if strings.Contains(got, "<b>") {
		t.Errorf("text not escaped: %q", got)
	}
}

func TestHeadlineLevels(t *testing.T) {
	tests := []struct {
		level int
		tag   string
	}{
		{1, "h1"},
		{3, "h3"},
		{6, "h6"},
		{0, "h1"},  // clamped up
		{99, "h6"}, // clamped down
	}

	for _, tt := range tests {
		h := NewHeadline("headline", "Title", tt.level)
		node := h.ViewComponent()
		if node.Tag != tt.tag {
			t.Errorf("level %d: tag = %q, want %q", tt.level, node.Tag, tt.tag)
		}
	}
}

func TestRichtextSanitizes(t *testing.T) {
	r := NewRichtext("body", `<p>ok</p><script>alert("x")</script><img src=x onerror=alert(1)>`)

	got := r.Sanitized()
	if strings.Contains(got, "<script>") {
		t.Errorf("script survived sanitization: %q", got)
	}
	if strings.Contains(got, "onerror") {
		t.Errorf("event handler survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<p>ok</p>") {
		t.Errorf("formatting stripped: %q", got)
	}
}

func TestRichtextWrappedWithClass(t *testing.T) {
	r := NewRichtext("body", "<p>hi</p>")
	got := renderHTML(t, r.ViewComponent(element.WithViewClass("prose")))
	want := `<div class="prose"><p>hi</p></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHTMLUnsanitized(t *testing.T) {
	h := NewHTML("embed", `<iframe src="https://example.com"></iframe>`)
	got := renderHTML(t, h.ViewComponent())
	if !strings.Contains(got, "<iframe") {
		t.Errorf("trusted html was altered: %q", got)
	}
}

func TestPicturePlain(t *testing.T) {
	p := NewPicture("image", "/a.png", PictureAlt("a"), PictureSize(640, 480))
	got := renderHTML(t, p.ViewComponent())
	want := `<img alt="a" height="480" src="/a.png" width="640">`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPictureWithCaption(t *testing.T) {
	p := NewPicture("image", "/a.png", PictureCaption("A caption"))
	got := renderHTML(t, p.ViewComponent())
	if !strings.HasPrefix(got, "<figure>") {
		t.Errorf("expected figure wrapper: %q", got)
	}
	if !strings.Contains(got, "<figcaption>A caption</figcaption>") {
		t.Errorf("missing caption: %q", got)
	}
}

func TestPictureLazy(t *testing.T) {
	p := NewPicture("image", "/a.png", PictureLazy())
	got := renderHTML(t, p.ViewComponent())
	if !strings.Contains(got, `loading="lazy"`) {
		t.Errorf("missing lazy loading attr: %q", got)
	}
}

func TestLinkLabelFallsBackToURL(t *testing.T) {
	l := NewLink("more", "https://example.com", "")
	got := renderHTML(t, l.ViewComponent())
	want := `<a href="https://example.com">https://example.com</a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLinkTargetAndRel(t *testing.T) {
	l := NewLink("more", "/x", "More", LinkTarget("_blank"), LinkRel("noopener"))
	got := renderHTML(t, l.ViewComponent())
	want := `<a href="/x" rel="noopener" target="_blank">More</a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBooleanLabels(t *testing.T) {
	yes := NewBoolean("published", true)
	if got := renderHTML(t, yes.ViewComponent()); got != "<span>yes</span>" {
		t.Errorf("default true label: %q", got)
	}

	no := NewBoolean("published", false, BooleanLabels("live", "draft"))
	if got := renderHTML(t, no.ViewComponent()); got != "<span>draft</span>" {
		t.Errorf("custom false label: %q", got)
	}
}

func TestDatetimeRendersTimeElement(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	d := NewDatetime("published_at", ts)
	got := renderHTML(t, d.ViewComponent())
	want := `<time datetime="2025-03-14T09:30:00Z">March 14, 2025</time>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDatetimeCustomFormat(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	d := NewDatetime("published_at", ts, DatetimeFormat("2006-01-02"))
	got := renderHTML(t, d.ViewComponent())
	if !strings.Contains(got, ">2025-03-14<") {
		t.Errorf("custom format not applied: %q", got)
	}
}

func TestBuildKnownTypes(t *testing.T) {
	tests := []struct {
		typ   string
		value any
	}{
		{TypeText, "hi"},
		{TypeHeadline, "hi"},
		{TypeRichtext, "<p>hi</p>"},
		{TypePicture, "/a.png"},
		{TypeLink, "/x"},
		{TypeBoolean, true},
		{TypeDatetime, "2025-03-14T09:30:00Z"},
		{TypeHTML, "<hr>"},
	}

	for _, tt := range tests {
		ing, err := Build(tt.typ, "role", tt.value, nil)
		if err != nil {
			t.Errorf("Build(%s): %v", tt.typ, err)
			continue
		}
		if ing.Role() != "role" {
			t.Errorf("Build(%s): role = %q", tt.typ, ing.Role())
		}
	}
}

func TestBuildUnknownType(t *testing.T) {
	if _, err := Build("video", "clip", nil, nil); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestBuildHeadlineLevelSetting(t *testing.T) {
	ing, err := Build(TypeHeadline, "headline", "Title", Settings{"level": 3})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h, ok := ing.(Headline)
	if !ok {
		t.Fatalf("Build returned %T, want Headline", ing)
	}
	if h.Level() != 3 {
		t.Errorf("level = %d, want 3", h.Level())
	}
}

func TestBuildDatetimeBadValue(t *testing.T) {
	if _, err := Build(TypeDatetime, "at", "yesterday", nil); err == nil {
		t.Fatal("expected parse error")
	}
}
