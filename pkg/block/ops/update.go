package ops

import (
	"github.com/pagesmith/pagesmith/pkg/block"
)

// UpdateText replaces a content leaf's text. For navLinks and card leaves
// the text is the serialized structured payload. No-op if the ID does not
// resolve to a leaf.
func UpdateText(tree []*block.Node, id, text string) []*block.Node {
	if n := block.Find(tree, id); n == nil || !n.IsLeaf() {
		return tree
	}
	return patch(tree, id, func(n *block.Node) { n.Text = text })
}

// UpdateAltText replaces a content leaf's alternative text. No-op if the ID
// does not resolve to a leaf.
func UpdateAltText(tree []*block.Node, id, alt string) []*block.Node {
	if n := block.Find(tree, id); n == nil || !n.IsLeaf() {
		return tree
	}
	return patch(tree, id, func(n *block.Node) { n.AltText = alt })
}

// UpdateClassName replaces a node's legacy single-string class. No-op if the
// ID does not resolve.
func UpdateClassName(tree []*block.Node, id, className string) []*block.Node {
	return patch(tree, id, func(n *block.Node) { n.ClassName = className })
}

// UpdateResponsive replaces a node's whole responsive class triple. A zero
// triple clears it. No-op if the ID does not resolve.
func UpdateResponsive(tree []*block.Node, id string, rc block.ResponsiveClass) []*block.Node {
	return patch(tree, id, func(n *block.Node) {
		if rc.IsZero() {
			n.Responsive = nil
			return
		}
		c := rc
		n.Responsive = &c
	})
}

// SetColumnWidth changes a column's width. No-op if the ID does not resolve
// to a column or the width is invalid.
func SetColumnWidth(tree []*block.Node, id string, width block.ColumnWidth) []*block.Node {
	if !width.Valid() {
		return tree
	}
	if n := block.Find(tree, id); n == nil || !n.IsColumn() {
		return tree
	}
	return patch(tree, id, func(n *block.Node) { n.Width = width })
}

// SectionAttrs carries a section's editable header attributes.
type SectionAttrs struct {
	Title              string `json:"title"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
	OverlayClassName   string `json:"overlayClassName"`
}

// UpdateSection replaces a section's title, background image, and overlay
// class in one commit. No-op if the ID does not resolve to a section.
func UpdateSection(tree []*block.Node, id string, attrs SectionAttrs) []*block.Node {
	if n := block.Find(tree, id); n == nil || !n.IsSection() {
		return tree
	}
	return patch(tree, id, func(n *block.Node) {
		n.Title = attrs.Title
		n.BackgroundImageURL = attrs.BackgroundImageURL
		n.OverlayClassName = attrs.OverlayClassName
	})
}
