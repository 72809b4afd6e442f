// Package dom provides the content markup node model used throughout
// stele: a small tree of elements, text, raw HTML, and fragments, with
// constructors for the tags content rendering needs.
//
// Nodes are plain values with no lifecycle. Constructors accept a mixed
// argument list of attributes, children, and strings, and ignore nil
// arguments so callers can build trees conditionally:
//
//	dom.Div(dom.Class("teaser"),
//	    dom.H2("Hello"),
//	    dom.If(showDate, dom.Time(dom.Datetime("2026-08-31"), "today")),
//	)
package dom
