// Package ingredient provides the built-in content ingredient types:
// text, headline, richtext, picture, link, boolean, datetime, and raw
// html. Each implements element.Ingredient and renders itself to a
// dom.Node via ViewComponent.
//
// Richtext content is sanitized with bluemonday before rendering; the
// html type bypasses sanitization and is only suitable for trusted
// input.
package ingredient
