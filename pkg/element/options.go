package element

import (
	"strings"

	"github.com/stele-cms/stele/pkg/dom"
)

// defaultWrapperTag is the generic block container used when the caller
// does not choose a wrapper tag.
const defaultWrapperTag = "div"

// JoinTags is the default tags formatter: it joins tags with a single
// space.
func JoinTags(tags []string) string {
	return strings.Join(tags, " ")
}

// renderConfig holds the resolved options for one RenderElement call.
type renderConfig struct {
	tag        string
	noWrapper  bool
	id         string
	idSet      bool
	noID       bool
	class      string
	classSet   bool
	noClass    bool
	formatter  func([]string) string
	noTagAttrs bool
	attrs      dom.Attrs
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		tag:       defaultWrapperTag,
		formatter: JoinTags,
	}
}

// RenderOption configures a single RenderElement call.
type RenderOption func(*renderConfig)

// WithTag sets the wrapper element tag. The default is a div.
func WithTag(tag string) RenderOption {
	return func(c *renderConfig) {
		if tag != "" {
			c.tag = tag
		}
	}
}

// WithoutWrapper suppresses the wrapper element entirely. The block's
// output is returned unmodified and no preview or tag attributes are
// computed.
func WithoutWrapper() RenderOption {
	return func(c *renderConfig) {
		c.noWrapper = true
	}
}

// WithID sets the wrapper's id attribute. When no id option is given
// the renderer falls back to the element's DomID and emits a
// deprecation warning.
func WithID(id string) RenderOption {
	return func(c *renderConfig) {
		c.id = id
		c.idSet = true
		c.noID = false
	}
}

// WithoutID omits the id attribute without triggering the fallback
// warning.
func WithoutID() RenderOption {
	return func(c *renderConfig) {
		c.noID = true
		c.idSet = false
	}
}

// WithClass sets the wrapper's class attribute. When no class option is
// given the renderer falls back to the element's name and emits a
// deprecation warning.
func WithClass(class string) RenderOption {
	return func(c *renderConfig) {
		c.class = class
		c.classSet = true
		c.noClass = false
	}
}

// WithoutClass omits the class attribute without triggering the
// fallback warning.
func WithoutClass() RenderOption {
	return func(c *renderConfig) {
		c.noClass = true
		c.classSet = false
	}
}

// WithTagsFormatter overrides how the element's tag list is formatted
// into the tag attribute value. The default joins tags with a single
// space.
func WithTagsFormatter(format func(tags []string) string) RenderOption {
	return func(c *renderConfig) {
		if format != nil {
			c.formatter = format
			c.noTagAttrs = false
		}
	}
}

// WithoutTagAttributes omits tag-derived attributes from the wrapper
// entirely. Preview attributes are unaffected.
func WithoutTagAttributes() RenderOption {
	return func(c *renderConfig) {
		c.noTagAttrs = true
	}
}

// WithAttr passes an additional attribute through to the wrapper.
// Caller-supplied attributes always win over computed ones.
func WithAttr(key string, value any) RenderOption {
	return func(c *renderConfig) {
		if c.attrs == nil {
			c.attrs = dom.Attrs{}
		}
		c.attrs[key] = value
	}
}

// WithAttrs passes additional attributes through to the wrapper.
func WithAttrs(attrs dom.Attrs) RenderOption {
	return func(c *renderConfig) {
		if len(attrs) == 0 {
			return
		}
		if c.attrs == nil {
			c.attrs = dom.Attrs{}
		}
		for k, v := range attrs {
			c.attrs[k] = v
		}
	}
}

// viewConfig holds the resolved options for one ingredient view render.
type viewConfig struct {
	class string
	attrs dom.Attrs
}

// ViewOption configures how an ingredient renders its view component.
type ViewOption func(*viewConfig)

// WithViewClass adds a css class to the ingredient's view component.
func WithViewClass(class string) ViewOption {
	return func(c *viewConfig) {
		c.class = class
	}
}

// WithViewAttr adds an attribute to the ingredient's view component.
func WithViewAttr(key string, value any) ViewOption {
	return func(c *viewConfig) {
		if c.attrs == nil {
			c.attrs = dom.Attrs{}
		}
		c.attrs[key] = value
	}
}

// ResolveView applies view options and returns the class and extra
// attributes an ingredient should apply to its component. Intended for
// Ingredient implementations.
func ResolveView(opts ...ViewOption) (class string, attrs dom.Attrs) {
	cfg := viewConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.class, cfg.attrs
}
