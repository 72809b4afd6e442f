package ingredient

import (
	"context"
	"fmt"

	"github.com/stele-cms/stele/pkg/assets"
	"github.com/stele-cms/stele/pkg/dom"
	"github.com/stele-cms/stele/pkg/element"
)

// Picture is an image ingredient rendering an img element, optionally
// wrapped in a figure with a caption.
type Picture struct {
	role    string
	src     string
	alt     string
	width   int
	height  int
	caption string
	lazy    bool
}

// PictureOption configures a picture ingredient.
type PictureOption func(*Picture)

// PictureAlt sets the image alt text.
func PictureAlt(alt string) PictureOption {
	return func(p *Picture) { p.alt = alt }
}

// PictureSize sets the rendered dimensions. Zero values are omitted
// from the markup.
func PictureSize(width, height int) PictureOption {
	return func(p *Picture) {
		p.width = width
		p.height = height
	}
}

// PictureCaption wraps the image in a figure with a figcaption.
func PictureCaption(caption string) PictureOption {
	return func(p *Picture) { p.caption = caption }
}

// PictureLazy enables lazy loading.
func PictureLazy() PictureOption {
	return func(p *Picture) { p.lazy = true }
}

// NewPicture creates a picture ingredient from a resolved source URL.
func NewPicture(role, src string, opts ...PictureOption) Picture {
	p := Picture{role: role, src: src}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewPictureFromStore creates a picture ingredient resolving its source
// URL from an asset store key.
func NewPictureFromStore(ctx context.Context, store assets.Store, role, key string, opts ...PictureOption) (Picture, error) {
	url, err := store.URL(ctx, key)
	if err != nil {
		return Picture{}, fmt.Errorf("resolve picture asset %q: %w", key, err)
	}
	return NewPicture(role, url, opts...), nil
}

// Role implements element.Ingredient.
func (p Picture) Role() string { return p.role }

// Value implements element.Ingredient.
func (p Picture) Value() any {
	if p.src == "" {
		return nil
	}
	return p.src
}

// ViewComponent renders the img element, wrapped in a figure when a
// caption is set.
func (p Picture) ViewComponent(opts ...element.ViewOption) *dom.Node {
	class, attrs := element.ResolveView(opts...)

	img := dom.Img(
		dom.Src(p.src),
		dom.Alt(p.alt),
		dom.AttrIf(p.width > 0, dom.Width(p.width)),
		dom.AttrIf(p.height > 0, dom.Height(p.height)),
		dom.AttrIf(p.lazy, dom.Loading("lazy")),
	)

	if p.caption != "" {
		return dom.Figure(dom.Class(class), attrs,
			img,
			dom.Figcaption(dom.Text(p.caption)),
		)
	}

	img.Attrs = img.Attrs.Merge(attrs)
	if class != "" {
		img.Attrs["class"] = class
	}
	return img
}
