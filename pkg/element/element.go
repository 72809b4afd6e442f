package element

import "github.com/stele-cms/stele/pkg/dom"

// Element is a content block instance carrying zero or more ingredients
// under named roles. Implementations live outside this package; the
// renderer only relies on this capability set.
type Element interface {
	// Name is the element's definition name, e.g. "article_teaser".
	Name() string

	// DomID is a stable identifier string for anchor/DOM purposes.
	DomID() string

	// TagList returns the tags attached to this element instance.
	TagList() []string

	// IngredientByRole looks up the ingredient bound to a role.
	IngredientByRole(role string) (Ingredient, bool)

	// ValueFor returns the element's value for a role, reporting
	// whether a value is present.
	ValueFor(role string) (any, bool)

	// HasValueFor reports whether the element has a value for a role.
	// Consistent with ValueFor: true iff ValueFor returns ok.
	HasValueFor(role string) bool
}

// Ingredient is a renderable unit of typed content attached to an
// element under a named role.
type Ingredient interface {
	// Role is the name the ingredient is bound under, e.g. "title".
	Role() string

	// Value returns the ingredient's raw content value.
	Value() any

	// ViewComponent renders the ingredient to a markup node.
	ViewComponent(opts ...ViewOption) *dom.Node
}
