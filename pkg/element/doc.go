// Package element renders CMS content elements.
//
// An element is a content block instance carrying typed ingredients
// under named roles. The Renderer invokes a caller-supplied block with
// a per-call Scope facade and wraps the produced content in a container
// node with computed attributes: id, class, preview metadata, and the
// element's formatted tag list.
//
//	node := renderer.RenderElement(ctx, teaser, func(s *element.Scope) *dom.Node {
//	    return dom.Fragment(
//	        s.Render("title"),
//	        s.Render("body"),
//	    )
//	}, element.WithClass("teaser"), element.WithID("teaser-1"))
//
// Missing content is absence, not failure: a block asking for a role
// the element does not carry renders nothing.
package element
