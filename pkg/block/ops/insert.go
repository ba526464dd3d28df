package ops

import (
	"github.com/pagesmith/pagesmith/pkg/block"
)

// InsertLeaf appends a new content leaf of the given kind, with its default
// placeholder text, to the column's children. No-op if kind is not a leaf
// kind or columnID does not resolve to a column.
func InsertLeaf(tree []*block.Node, columnID string, kind block.Kind) []*block.Node {
	if !kind.IsLeaf() {
		return tree
	}
	column := block.Find(tree, columnID)
	if column == nil || !column.IsColumn() {
		return tree
	}
	loc := block.Location{Collection: block.CollectionColumnChildren, ParentID: columnID}
	return block.WithCollection(tree, loc, append(copyNodes(column.Children), block.NewLeaf(kind)))
}

// InsertRow builds a row with one column per width and appends it to the
// section's children. With no widths the row gets a single full-width
// column. No-op if sectionID does not resolve to a section or any width is
// invalid.
func InsertRow(tree []*block.Node, sectionID string, widths ...block.ColumnWidth) []*block.Node {
	section := block.Find(tree, sectionID)
	if section == nil || !section.IsSection() {
		return tree
	}
	for _, w := range widths {
		if !w.Valid() {
			return tree
		}
	}
	loc := block.Location{Collection: block.CollectionSectionChildren, ParentID: sectionID}
	return block.WithCollection(tree, loc, append(copyNodes(section.Children), block.NewRow(widths...)))
}

// InsertSection appends a new section built from the given template to the
// root. No-op if the template is unknown.
func InsertSection(tree []*block.Node, template Template) []*block.Node {
	section := NewSectionFromTemplate(template)
	if section == nil {
		return tree
	}
	return append(copyNodes(tree), section)
}

// copyNodes returns a fresh slice sharing the same node pointers, so an
// append never mutates a collection an older tree snapshot still references.
func copyNodes(nodes []*block.Node) []*block.Node {
	out := make([]*block.Node, len(nodes))
	copy(out, nodes)
	return out
}
