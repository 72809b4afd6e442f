// Package render serializes dom.Node trees to HTML.
//
// Output is deterministic: attributes are written in sorted key order,
// text nodes are HTML-escaped, and raw nodes pass through untouched.
// Pretty printing is available for development output.
package render
