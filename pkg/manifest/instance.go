package manifest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stele-cms/stele/pkg/element"
	"github.com/stele-cms/stele/pkg/ingredient"
)

// Instance is an in-memory element built from a Definition. It
// implements element.Element.
type Instance struct {
	name  string
	domID string
	tags  []string

	roles       []string
	ingredients map[string]element.Ingredient
}

// NewInstance builds an element instance from the definition. Values
// override ingredient defaults by role; roles without a value or
// default still get an (empty) ingredient so templates can probe them
// with Has.
func (d Definition) NewInstance(values map[string]any) (*Instance, error) {
	inst := &Instance{
		name:        d.Name,
		domID:       domID(d.Name),
		tags:        append([]string(nil), d.Tags...),
		ingredients: make(map[string]element.Ingredient, len(d.Ingredients)),
	}

	for _, def := range d.Ingredients {
		value := def.Default
		if v, ok := values[def.Role]; ok {
			value = v
		}
		ing, err := ingredient.Build(def.Type, def.Role, value, def.Settings)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", d.Name, err)
		}
		inst.roles = append(inst.roles, def.Role)
		inst.ingredients[def.Role] = ing
	}

	return inst, nil
}

// domID derives a stable-enough page-unique identifier from the
// element name: underscores become hyphens and a short uuid suffix
// disambiguates repeated instances.
func domID(name string) string {
	return fmt.Sprintf("%s-%s", strings.ReplaceAll(name, "_", "-"), uuid.NewString()[:8])
}

// Name implements element.Element.
func (i *Instance) Name() string { return i.name }

// DomID implements element.Element.
func (i *Instance) DomID() string { return i.domID }

// TagList implements element.Element.
func (i *Instance) TagList() []string { return i.tags }

// Roles returns the instance's ingredient roles in definition order.
func (i *Instance) Roles() []string { return i.roles }

// IngredientByRole implements element.Element.
func (i *Instance) IngredientByRole(role string) (element.Ingredient, bool) {
	ing, ok := i.ingredients[role]
	return ing, ok
}

// ValueFor implements element.Element.
func (i *Instance) ValueFor(role string) (any, bool) {
	ing, ok := i.ingredients[role]
	if !ok {
		return nil, false
	}
	value := ing.Value()
	if value == nil {
		return nil, false
	}
	return value, true
}

// HasValueFor implements element.Element.
func (i *Instance) HasValueFor(role string) bool {
	_, ok := i.ValueFor(role)
	return ok
}
