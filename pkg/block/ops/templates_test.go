package ops

import (
	"testing"

	"github.com/pagesmith/pagesmith/pkg/block"
)

func TestTemplatesAllValid(t *testing.T) {
	for _, tmpl := range Templates() {
		t.Run(string(tmpl), func(t *testing.T) {
			if !tmpl.Valid() {
				t.Fatalf("template %q should report valid", tmpl)
			}
			section := NewSectionFromTemplate(tmpl)
			if section == nil {
				t.Fatal("NewSectionFromTemplate returned nil")
			}
			if err := block.Validate([]*block.Node{section}); err != nil {
				t.Errorf("template section invalid: %v", err)
			}
		})
	}
}

func TestTemplateUnknown(t *testing.T) {
	if Template("gallery").Valid() {
		t.Error("unknown template should report invalid")
	}
	if got := NewSectionFromTemplate(Template("gallery")); got != nil {
		t.Errorf("NewSectionFromTemplate(unknown) = %v, want nil", got)
	}
}

func TestTemplateShapes(t *testing.T) {
	t.Run("Blank", func(t *testing.T) {
		s := NewSectionFromTemplate(TemplateBlank)
		if len(s.Children) != 1 || len(s.Children[0].Columns) != 1 {
			t.Error("blank should hold one row with one column")
		}
		if len(s.Children[0].Columns[0].Children) != 0 {
			t.Error("blank column should be empty")
		}
	})

	t.Run("Hero", func(t *testing.T) {
		s := NewSectionFromTemplate(TemplateHero)
		if s.OverlayClassName == "" {
			t.Error("hero should carry an overlay class")
		}
		leaves := s.Children[0].Columns[0].Children
		if len(leaves) != 3 || leaves[0].Kind != block.KindHeading1 || leaves[2].Kind != block.KindCallToAction {
			t.Errorf("hero leaves = %v", leaves)
		}
	})

	t.Run("Services", func(t *testing.T) {
		s := NewSectionFromTemplate(TemplateServices)
		if len(s.Children) != 2 {
			t.Fatalf("services rows = %d, want 2", len(s.Children))
		}
		cards := s.Children[1].Columns
		if len(cards) != 3 {
			t.Fatalf("card columns = %d, want 3", len(cards))
		}
		for _, c := range cards {
			if c.Width != block.WidthThird {
				t.Errorf("card column width = %q, want 1/3", c.Width)
			}
		}
	})
}

func TestTemplateMintsFreshIDsPerCall(t *testing.T) {
	a := NewSectionFromTemplate(TemplateFooter)
	b := NewSectionFromTemplate(TemplateFooter)
	tree := []*block.Node{a, b}
	if err := block.Validate(tree); err != nil {
		t.Errorf("two sections from one template should coexist: %v", err)
	}
}
