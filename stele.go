// Package stele is an element rendering toolkit for content sites.
//
// A content page is composed of elements: structured blocks such as a
// teaser, a hero, or a quote. Each element carries typed ingredients
// (text, headline, richtext, picture, link, ...). Stele loads element
// definitions from a YAML manifest, builds ingredient view components,
// and renders elements to HTML with stable, escaped output.
//
// The packages compose bottom-up:
//
//   - pkg/dom: HTML node model and element constructors
//   - pkg/render: deterministic HTML serialization
//   - pkg/element: element rendering with wrapper resolution
//   - pkg/ingredient: typed content slot view components
//   - pkg/manifest: YAML element definitions and instances
//   - pkg/preview: live-reloading development server
//
// Most applications only need the Site facade:
//
//	site, err := stele.New(stele.WithManifest("elements.yml"))
//	if err != nil { ... }
//	html, err := site.RenderHTML(ctx, "article_teaser", nil)
package stele

import "log/slog"

// Version is the stele library version.
const Version = "0.1.0"

// Config holds site-level settings.
type Config struct {
	// Logger receives render warnings and reload logs. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// ManifestPath locates the element manifest.
	ManifestPath string

	// PreviewMode attaches editor preview attributes to rendered
	// elements so in-place editors can locate them.
	PreviewMode bool

	// Pretty enables indented HTML output.
	Pretty bool
}

// Option configures a Site.
type Option func(*Config)

// WithLogger sets the site logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithManifest sets the element manifest path.
func WithManifest(path string) Option {
	return func(c *Config) {
		c.ManifestPath = path
	}
}

// WithPreviewMode enables editor preview attributes.
func WithPreviewMode() Option {
	return func(c *Config) {
		c.PreviewMode = true
	}
}

// WithPretty enables indented HTML output.
func WithPretty() Option {
	return func(c *Config) {
		c.Pretty = true
	}
}
