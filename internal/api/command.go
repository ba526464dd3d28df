package api

import (
	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/block/ops"
	"github.com/pagesmith/pagesmith/pkg/errors"
)

// Command is one editing operation applied to a stored document. Op selects
// the operation; the remaining fields parameterize it and are ignored by
// operations that do not use them.
type Command struct {
	Op string `json:"op"`

	// Node addressed by most operations.
	NodeID string `json:"nodeId,omitempty"`

	// Move target.
	TargetID string `json:"targetId,omitempty"`

	// Drop destination.
	Collection string `json:"collection,omitempty"`
	ParentID   string `json:"parentId,omitempty"`
	Index      int    `json:"index,omitempty"`

	// Insert parameters.
	Kind     string   `json:"kind,omitempty"`
	Template string   `json:"template,omitempty"`
	Widths   []string `json:"widths,omitempty"`

	// Reorder direction, +1 or -1.
	Delta int `json:"delta,omitempty"`

	// Content and style updates. Pointers distinguish "unset" from "clear".
	Text       *string                `json:"text,omitempty"`
	AltText    *string                `json:"altText,omitempty"`
	ClassName  *string                `json:"className,omitempty"`
	Width      string                 `json:"width,omitempty"`
	Responsive *block.ResponsiveClass `json:"responsive,omitempty"`
	Section    *ops.SectionAttrs      `json:"section,omitempty"`

	// Bulk style parameters.
	IDs     []string `json:"ids,omitempty"`
	Classes string   `json:"classes,omitempty"`
}

// Operation names accepted by [Command.Apply].
const (
	OpInsertLeaf    = "insertLeaf"
	OpInsertRow     = "insertRow"
	OpInsertSection = "insertSection"
	OpRemove        = "remove"
	OpDuplicate     = "duplicate"
	OpMove          = "move"
	OpDrop          = "drop"
	OpReorder       = "reorder"
	OpSetText       = "setText"
	OpSetAltText    = "setAltText"
	OpSetClass      = "setClass"
	OpSetResponsive = "setResponsive"
	OpSetWidth      = "setWidth"
	OpSetSection    = "setSection"
	OpBulkStyle     = "bulkStyle"
)

// Apply runs the command against tree and returns the resulting tree.
// Parameter shapes are validated here; structurally valid commands that
// cannot apply (missing node, containment mismatch) return the tree
// unchanged, matching the engine's no-op behavior.
func (c Command) Apply(tree []*block.Node) ([]*block.Node, error) {
	switch c.Op {
	case OpInsertLeaf:
		kind := block.Kind(c.Kind)
		if !kind.IsLeaf() {
			return nil, errors.New(errors.ErrCodeInvalidKind, "%q is not a content kind", c.Kind)
		}
		return ops.InsertLeaf(tree, c.NodeID, kind), nil

	case OpInsertRow:
		widths := make([]block.ColumnWidth, 0, len(c.Widths))
		for _, w := range c.Widths {
			width := block.ColumnWidth(w)
			if !width.Valid() {
				return nil, errors.New(errors.ErrCodeInvalidInput, "invalid column width %q", w)
			}
			widths = append(widths, width)
		}
		return ops.InsertRow(tree, c.NodeID, widths...), nil

	case OpInsertSection:
		t := ops.Template(c.Template)
		if c.Template == "" {
			t = ops.TemplateBlank
		}
		if !t.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidTemplate, "unknown template %q", c.Template)
		}
		return ops.InsertSection(tree, t), nil

	case OpRemove:
		return ops.Remove(tree, c.NodeID), nil

	case OpDuplicate:
		return ops.Duplicate(tree, c.NodeID), nil

	case OpMove:
		return ops.Move(tree, c.NodeID, c.TargetID), nil

	case OpDrop:
		coll, err := parseCollection(c.Collection)
		if err != nil {
			return nil, err
		}
		dest := block.Location{Collection: coll, ParentID: c.ParentID}
		return ops.DropInto(tree, c.NodeID, dest, c.Index), nil

	case OpReorder:
		if c.Delta != 1 && c.Delta != -1 {
			return nil, errors.New(errors.ErrCodeInvalidCommand, "reorder delta must be 1 or -1, got %d", c.Delta)
		}
		return ops.Reorder(tree, c.NodeID, c.Delta), nil

	case OpSetText:
		if c.Text == nil {
			return nil, errors.New(errors.ErrCodeInvalidCommand, "setText requires a text field")
		}
		return ops.UpdateText(tree, c.NodeID, *c.Text), nil

	case OpSetAltText:
		if c.AltText == nil {
			return nil, errors.New(errors.ErrCodeInvalidCommand, "setAltText requires an altText field")
		}
		return ops.UpdateAltText(tree, c.NodeID, *c.AltText), nil

	case OpSetClass:
		if c.ClassName == nil {
			return nil, errors.New(errors.ErrCodeInvalidCommand, "setClass requires a className field")
		}
		return ops.UpdateClassName(tree, c.NodeID, *c.ClassName), nil

	case OpSetResponsive:
		if c.Responsive == nil {
			return nil, errors.New(errors.ErrCodeInvalidCommand, "setResponsive requires a responsive field")
		}
		return ops.UpdateResponsive(tree, c.NodeID, *c.Responsive), nil

	case OpSetWidth:
		width := block.ColumnWidth(c.Width)
		if !width.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid column width %q", c.Width)
		}
		return ops.SetColumnWidth(tree, c.NodeID, width), nil

	case OpSetSection:
		if c.Section == nil {
			return nil, errors.New(errors.ErrCodeInvalidCommand, "setSection requires a section field")
		}
		return ops.UpdateSection(tree, c.NodeID, *c.Section), nil

	case OpBulkStyle:
		return ops.ApplyBulkStyle(tree, c.IDs, c.Classes), nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidCommand, "unknown operation %q", c.Op)
	}
}

// parseCollection maps a wire token to a collection kind.
func parseCollection(s string) (block.CollectionKind, error) {
	switch s {
	case "root":
		return block.CollectionRoot, nil
	case "sectionChildren":
		return block.CollectionSectionChildren, nil
	case "rowColumns":
		return block.CollectionRowColumns, nil
	case "columnChildren":
		return block.CollectionColumnChildren, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidCommand, "unknown collection %q", s)
	}
}
