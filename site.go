package stele

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
	"github.com/stele-cms/stele/pkg/manifest"
	"github.com/stele-cms/stele/pkg/render"
)

// Site ties a manifest to the element and HTML renderers. It is safe
// for concurrent use.
type Site struct {
	config   Config
	logger   *slog.Logger
	manifest *manifest.Manifest
	elements *element.Renderer
	html     *render.Renderer
}

// New creates a Site, loading the manifest eagerly.
func New(opts ...Option) (*Site, error) {
	config := Config{ManifestPath: "elements.yml"}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	m, err := manifest.Load(config.ManifestPath)
	if err != nil {
		return nil, err
	}

	elementOpts := []element.Option{element.WithLogger(config.Logger)}
	if config.PreviewMode {
		elementOpts = append(elementOpts, element.WithPreviewAttributer(element.EditorPreview()))
	}

	return &Site{
		config:   config,
		logger:   config.Logger,
		manifest: m,
		elements: element.NewRenderer(elementOpts...),
		html:     render.NewRenderer(render.Config{Pretty: config.Pretty}),
	}, nil
}

// Manifest returns the loaded element manifest.
func (s *Site) Manifest() *manifest.Manifest {
	return s.manifest
}

// RenderNode instantiates the named element with the given ingredient
// values (nil uses manifest defaults) and renders it to a node tree,
// rendering every ingredient in declaration order.
func (s *Site) RenderNode(ctx context.Context, name string, values map[string]any, opts ...element.RenderOption) (*dom.Node, error) {
	def, ok := s.manifest.Definition(name)
	if !ok {
		return nil, fmt.Errorf("stele: element %q not defined", name)
	}

	inst, err := def.NewInstance(values)
	if err != nil {
		return nil, err
	}

	resolved := []element.RenderOption{
		element.WithID(inst.DomID()),
		element.WithClass(inst.Name()),
	}
	if def.Tag != "" {
		resolved = append(resolved, element.WithTag(def.Tag))
	}
	resolved = append(resolved, opts...)

	node := s.elements.RenderElement(ctx, inst, func(sc *element.Scope) *dom.Node {
		return dom.Fragment(dom.Range(inst.Roles(), func(role string, _ int) *dom.Node {
			return sc.Render(role)
		})...)
	}, resolved...)

	return node, nil
}

// RenderHTML renders the named element straight to HTML.
func (s *Site) RenderHTML(ctx context.Context, name string, values map[string]any, opts ...element.RenderOption) (string, error) {
	node, err := s.RenderNode(ctx, name, values, opts...)
	if err != nil {
		return "", err
	}
	return s.html.ToString(node)
}
