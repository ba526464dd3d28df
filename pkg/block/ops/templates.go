package ops

import (
	"github.com/pagesmith/pagesmith/pkg/block"
)

// Template selects a pre-populated section skeleton for [InsertSection].
type Template string

// Section templates.
const (
	TemplateBlank    Template = "blank"
	TemplateHeader   Template = "header"
	TemplateHero     Template = "hero"
	TemplateAbout    Template = "about"
	TemplateServices Template = "services"
	TemplateFooter   Template = "footer"
)

// Valid reports whether t names a known template.
func (t Template) Valid() bool {
	switch t {
	case TemplateBlank, TemplateHeader, TemplateHero, TemplateAbout, TemplateServices, TemplateFooter:
		return true
	}
	return false
}

// Templates returns every template name in a stable order, suitable for
// command-line help and palettes.
func Templates() []Template {
	return []Template{
		TemplateBlank, TemplateHeader, TemplateHero,
		TemplateAbout, TemplateServices, TemplateFooter,
	}
}

// NewSectionFromTemplate builds a detached section from a template. Every
// call mints fresh identifiers throughout, so the result can be inserted
// into any tree. Returns nil for an unknown template.
func NewSectionFromTemplate(t Template) *block.Node {
	switch t {
	case TemplateBlank:
		return sectionWith("", row(col(block.WidthFull)))
	case TemplateHeader:
		nav := leaf(block.KindNavLinks, `{"links":[{"label":"Home","href":"#"},{"label":"About","href":"#about"},{"label":"Contact","href":"#contact"}]}`)
		brand := leaf(block.KindHeading3, "Your brand")
		return sectionWith("Header",
			row(colWith(block.WidthHalf, brand), colWith(block.WidthHalf, nav)))
	case TemplateHero:
		s := sectionWith("Hero",
			row(colWith(block.WidthFull,
				leaf(block.KindHeading1, "Build pages people remember"),
				leaf(block.KindParagraph, "Compose sections, rows, and columns into a page in minutes."),
				leaf(block.KindCallToAction, "Get started"),
			)))
		s.OverlayClassName = "bg-black/40"
		return s
	case TemplateAbout:
		return sectionWith("About",
			row(
				colWith(block.WidthHalf, leaf(block.KindImage, "")),
				colWith(block.WidthHalf,
					leaf(block.KindHeading2, "About us"),
					leaf(block.KindParagraph, "Tell your story here."),
				),
			))
	case TemplateServices:
		return sectionWith("Services",
			row(colWith(block.WidthFull, leaf(block.KindHeading2, "What we do"))),
			row(
				colWith(block.WidthThird, leaf(block.KindCard, `{"title":"Service one","body":""}`)),
				colWith(block.WidthThird, leaf(block.KindCard, `{"title":"Service two","body":""}`)),
				colWith(block.WidthThird, leaf(block.KindCard, `{"title":"Service three","body":""}`)),
			))
	case TemplateFooter:
		return sectionWith("Footer",
			row(
				colWith(block.WidthHalf, leaf(block.KindParagraph, "© Your company")),
				colWith(block.WidthHalf, leaf(block.KindNavLinks, `{"links":[{"label":"Privacy","href":"#"},{"label":"Terms","href":"#"}]}`)),
			))
	default:
		return nil
	}
}

// Template construction helpers. These exist so the skeletons above read
// like the layouts they produce.

func sectionWith(title string, rows ...*block.Node) *block.Node {
	s := block.NewSection(title)
	s.Children = rows
	return s
}

func row(columns ...*block.Node) *block.Node {
	r := block.NewRow()
	r.Columns = columns
	return r
}

func col(width block.ColumnWidth) *block.Node {
	return block.NewColumn(width)
}

func colWith(width block.ColumnWidth, leaves ...*block.Node) *block.Node {
	c := block.NewColumn(width)
	c.Children = leaves
	return c
}

func leaf(kind block.Kind, text string) *block.Node {
	l := block.NewLeaf(kind)
	l.Text = text
	return l
}
