package element

import "github.com/stele-cms/stele/pkg/dom"

// PreviewAttributer computes the attributes a wrapper carries to
// support in-place editing in preview mode. Opaque to the renderer.
type PreviewAttributer interface {
	Attributes(el Element) dom.Attrs
}

// PreviewAttributerFunc adapts a function to the PreviewAttributer
// interface.
type PreviewAttributerFunc func(el Element) dom.Attrs

// Attributes implements PreviewAttributer.
func (f PreviewAttributerFunc) Attributes(el Element) dom.Attrs {
	return f(el)
}

// NopPreview emits no preview attributes. This is the default for
// production rendering.
func NopPreview() PreviewAttributer {
	return PreviewAttributerFunc(func(Element) dom.Attrs {
		return nil
	})
}

// EditorPreview marks wrappers for the in-place content editor with a
// data attribute carrying the element's dom id.
func EditorPreview() PreviewAttributer {
	return PreviewAttributerFunc(func(el Element) dom.Attrs {
		return dom.Attrs{"data-stele-element": el.DomID()}
	})
}

// TagAttributer computes tag-derived wrapper attributes from an
// element's tag list using the supplied formatter. Opaque to the
// renderer.
type TagAttributer interface {
	Attributes(el Element, format func(tags []string) string) dom.Attrs
}

// TagAttributerFunc adapts a function to the TagAttributer interface.
type TagAttributerFunc func(el Element, format func(tags []string) string) dom.Attrs

// Attributes implements TagAttributer.
func (f TagAttributerFunc) Attributes(el Element, format func(tags []string) string) dom.Attrs {
	return f(el, format)
}

// DataTagAttributer emits the formatted tag list as a data attribute.
// Elements without tags get no attribute.
func DataTagAttributer() TagAttributer {
	return TagAttributerFunc(func(el Element, format func(tags []string) string) dom.Attrs {
		tags := el.TagList()
		if len(tags) == 0 {
			return nil
		}
		return dom.Attrs{"data-element-tags": format(tags)}
	})
}
