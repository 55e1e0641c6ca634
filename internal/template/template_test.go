package template_test

import (
	"testing"

	"slides/internal/template"
)

func TestLookup(t *testing.T) {
	tpl, ok := template.Lookup("business-pitch")
	if !ok {
		t.Fatal("business-pitch should exist")
	}
	if tpl.Name != "Business Pitch" || len(tpl.Slides) != 3 {
		t.Errorf("unexpected template: %s with %d slides", tpl.Name, len(tpl.Slides))
	}
	if _, ok := template.Lookup("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestInstantiate_FreshIDs(t *testing.T) {
	tpl, _ := template.Lookup("business-pitch")
	slides := template.Instantiate(tpl)

	if len(slides) != len(tpl.Slides) {
		t.Fatalf("expected %d slides, got %d", len(tpl.Slides), len(slides))
	}
	for i, s := range slides {
		if s.ID == tpl.Slides[i].ID {
			t.Errorf("slide %d kept the template id", i)
		}
		for j, el := range s.Elements {
			if el.ID == tpl.Slides[i].Elements[j].ID {
				t.Errorf("slide %d element %d kept the template id", i, j)
			}
		}
	}
}

func TestInstantiate_TwiceNeverAliases(t *testing.T) {
	tpl, _ := template.Lookup("creative-portfolio")
	first := template.Instantiate(tpl)
	second := template.Instantiate(tpl)

	ids := map[string]bool{}
	for _, s := range first {
		ids[s.ID] = true
		for _, el := range s.Elements {
			ids[el.ID] = true
		}
	}
	for _, s := range second {
		if ids[s.ID] {
			t.Error("two instantiations share a slide id")
		}
		for _, el := range s.Elements {
			if ids[el.ID] {
				t.Error("two instantiations share an element id")
			}
		}
	}
}

func TestInstantiate_DoesNotMutateTemplate(t *testing.T) {
	tpl, _ := template.Lookup("business-pitch")
	before := tpl.Slides[0].Elements[0].ID

	slides := template.Instantiate(tpl)
	slides[0].Elements[0].Text.Text = "mutated"
	slides[0].Elements[0].Style["fontSize"] = 99

	if tpl.Slides[0].Elements[0].ID != before {
		t.Error("template ids must be untouched")
	}
	if tpl.Slides[0].Elements[0].Text.Text == "mutated" {
		t.Error("instantiation must deep-copy payloads")
	}
	if tpl.Slides[0].Elements[0].Style["fontSize"] == 99 {
		t.Error("instantiation must deep-copy styles")
	}
}
