package manifest

import (
	"strings"
	"testing"

	"github.com/stele-cms/stele/pkg/ingredient"
)

func teaserDefinition(t *testing.T) Definition {
	t.Helper()
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def, ok := m.Definition("article_teaser")
	if !ok {
		t.Fatal("article_teaser not found")
	}
	return def
}

func TestNewInstanceUsesDefaults(t *testing.T) {
	inst, err := teaserDefinition(t).NewInstance(nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	value, ok := inst.ValueFor("headline")
	if !ok {
		t.Fatal("headline should have its default value")
	}
	if value != "Untitled" {
		t.Errorf("headline = %v, want Untitled", value)
	}
}

func TestNewInstanceValuesOverrideDefaults(t *testing.T) {
	inst, err := teaserDefinition(t).NewInstance(map[string]any{
		"headline": "Hot off the press",
	})
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	value, _ := inst.ValueFor("headline")
	if value != "Hot off the press" {
		t.Errorf("headline = %v", value)
	}
}

func TestNewInstanceEveryRoleGetsAnIngredient(t *testing.T) {
	inst, err := teaserDefinition(t).NewInstance(nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	// body has no default and no value, but templates must still be
	// able to probe it.
	if _, ok := inst.IngredientByRole("body"); !ok {
		t.Error("body ingredient missing")
	}
	if inst.HasValueFor("body") {
		t.Error("empty body should report no value")
	}
	if _, ok := inst.ValueFor("body"); ok {
		t.Error("empty body should report no value")
	}
}

func TestNewInstanceRolesInDefinitionOrder(t *testing.T) {
	inst, err := teaserDefinition(t).NewInstance(nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	want := []string{"headline", "body", "published_at"}
	got := inst.Roles()
	if len(got) != len(want) {
		t.Fatalf("roles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("roles[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewInstanceDomID(t *testing.T) {
	def := teaserDefinition(t)

	a, err := def.NewInstance(nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	b, err := def.NewInstance(nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	if !strings.HasPrefix(a.DomID(), "article-teaser-") {
		t.Errorf("dom id = %q, want article-teaser- prefix", a.DomID())
	}
	if a.DomID() == b.DomID() {
		t.Errorf("two instances share dom id %q", a.DomID())
	}
}

func TestNewInstanceBadValue(t *testing.T) {
	_, err := teaserDefinition(t).NewInstance(map[string]any{
		"published_at": "not-a-timestamp",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "article_teaser") {
		t.Errorf("error %q does not name the element", err)
	}
}

func TestInstanceHeadlineLevelFromSettings(t *testing.T) {
	inst, err := teaserDefinition(t).NewInstance(nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	ing, ok := inst.IngredientByRole("headline")
	if !ok {
		t.Fatal("headline ingredient missing")
	}
	h, ok := ing.(ingredient.Headline)
	if !ok {
		t.Fatalf("headline is %T, want ingredient.Headline", ing)
	}
	if h.Level() != 2 {
		t.Errorf("level = %d, want 2", h.Level())
	}
}

func TestInstanceTagList(t *testing.T) {
	inst, err := teaserDefinition(t).NewInstance(nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	tags := inst.TagList()
	if len(tags) != 2 || tags[0] != "news" || tags[1] != "featured" {
		t.Errorf("tags = %v", tags)
	}
}
