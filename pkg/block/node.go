package block

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidNodeID is returned by [Validate] when a node has an empty ID.
	// All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Validate] when two nodes in the same
	// tree share an identifier. Identifiers must be unique across the whole
	// tree, including after duplication and clipboard paste.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidKind is returned by [Validate] when a node carries a kind
	// outside the closed set of section, row, column, and the content leaf
	// kinds.
	ErrInvalidKind = errors.New("invalid node kind")

	// ErrInvalidWidth is returned by [Validate] when a column carries a width
	// outside {1/1, 1/2, 1/3, 2/3}.
	ErrInvalidWidth = errors.New("invalid column width")

	// ErrBadContainment is returned by [Validate] when a node sits in a
	// collection whose member kind does not match its own: only sections at
	// the root, only rows inside a section, only columns inside a row, only
	// content leaves inside a column.
	ErrBadContainment = errors.New("node kind not allowed in this collection")
)

// Kind identifies the shape of a node. The set is closed: three structural
// kinds (section, row, column) and the content leaf kinds. Traversal code
// switches on Kind exhaustively rather than using an open type hierarchy.
type Kind string

// Structural kinds.
const (
	KindSection Kind = "section"
	KindRow     Kind = "row"
	KindColumn  Kind = "column"
)

// Content leaf kinds. A leaf's Kind doubles as its content type; for
// KindNavLinks and KindCard the Text field holds a serialized structured
// payload rather than prose.
const (
	KindHeading1     Kind = "heading1"
	KindHeading2     Kind = "heading2"
	KindHeading3     Kind = "heading3"
	KindParagraph    Kind = "paragraph"
	KindFAQ          Kind = "faq"
	KindImage        Kind = "image"
	KindCallToAction Kind = "callToAction"
	KindNavLinks     Kind = "navLinks"
	KindCard         Kind = "card"
)

// leafKinds is the closed set of content leaf kinds.
var leafKinds = map[Kind]bool{
	KindHeading1:     true,
	KindHeading2:     true,
	KindHeading3:     true,
	KindParagraph:    true,
	KindFAQ:          true,
	KindImage:        true,
	KindCallToAction: true,
	KindNavLinks:     true,
	KindCard:         true,
}

// IsLeaf reports whether k is a content leaf kind.
func (k Kind) IsLeaf() bool { return leafKinds[k] }

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	return k == KindSection || k == KindRow || k == KindColumn || k.IsLeaf()
}

// LeafKinds returns every content leaf kind in a stable order, suitable for
// palettes and validation messages.
func LeafKinds() []Kind {
	return []Kind{
		KindHeading1, KindHeading2, KindHeading3, KindParagraph,
		KindFAQ, KindImage, KindCallToAction, KindNavLinks, KindCard,
	}
}

// ColumnWidth is a column's fraction of its row.
type ColumnWidth string

// Allowed column widths.
const (
	WidthFull      ColumnWidth = "1/1"
	WidthHalf      ColumnWidth = "1/2"
	WidthThird     ColumnWidth = "1/3"
	WidthTwoThirds ColumnWidth = "2/3"
)

// Valid reports whether w is one of the allowed column widths.
func (w ColumnWidth) Valid() bool {
	switch w {
	case WidthFull, WidthHalf, WidthThird, WidthTwoThirds:
		return true
	}
	return false
}

// ResponsiveClass holds one style-token string per breakpoint. The mobile
// slot is the unprefixed default; tablet and desktop tokens are scoped to
// their breakpoints at resolution time (see package block/style).
type ResponsiveClass struct {
	Mobile  string `json:"mobile,omitempty"`
	Tablet  string `json:"tablet,omitempty"`
	Desktop string `json:"desktop,omitempty"`
}

// IsZero reports whether all three slots are empty.
func (r ResponsiveClass) IsZero() bool {
	return r.Mobile == "" && r.Tablet == "" && r.Desktop == ""
}

// Node is the unified tree node used for all four shapes. Kind selects which
// fields are meaningful:
//
//   - section: Title, BackgroundImageURL, OverlayClassName, Children (rows)
//   - row:     Columns
//   - column:  Width, Children (content leaves)
//   - leaves:  Text, AltText
//
// ClassName and Responsive apply to every shape. Unused fields stay at their
// zero value and are omitted from JSON, so the persisted document shape
// matches the canonical model exactly.
//
// Nodes are treated as immutable once part of a tree: mutation operations
// build new nodes from the root down to the affected collection and share
// untouched subtrees by pointer. Nothing in this package mutates a node that
// is already reachable from a tree the caller holds.
type Node struct {
	ID         string           `json:"id"`
	Kind       Kind             `json:"kind"`
	ClassName  string           `json:"className,omitempty"`
	Responsive *ResponsiveClass `json:"responsiveClassName,omitempty"`

	// Section fields.
	Title              string `json:"title,omitempty"`
	BackgroundImageURL string `json:"backgroundImageUrl,omitempty"`
	OverlayClassName   string `json:"overlayClassName,omitempty"`

	// Column field.
	Width ColumnWidth `json:"width,omitempty"`

	// Leaf fields. For navLinks and card leaves, Text is a serialized
	// structured payload.
	Text    string `json:"text,omitempty"`
	AltText string `json:"altText,omitempty"`

	// Children holds a section's rows or a column's content leaves.
	Children []*Node `json:"children,omitempty"`

	// Columns holds a row's columns.
	Columns []*Node `json:"columns,omitempty"`
}

// IsSection reports whether the node is a section.
func (n *Node) IsSection() bool { return n.Kind == KindSection }

// IsRow reports whether the node is a row.
func (n *Node) IsRow() bool { return n.Kind == KindRow }

// IsColumn reports whether the node is a column.
func (n *Node) IsColumn() bool { return n.Kind == KindColumn }

// IsLeaf reports whether the node is a content leaf.
func (n *Node) IsLeaf() bool { return n.Kind.IsLeaf() }

// newID mints a process-unique identifier for a freshly created node.
func newID() string { return uuid.NewString() }

// defaultText maps each leaf kind to the placeholder content a freshly
// inserted leaf starts with.
var defaultText = map[Kind]string{
	KindHeading1:     "Heading",
	KindHeading2:     "Heading",
	KindHeading3:     "Heading",
	KindParagraph:    "Write something here.",
	KindFAQ:          "Question?\nAnswer.",
	KindImage:        "",
	KindCallToAction: "Get started",
	KindNavLinks:     `{"links":[]}`,
	KindCard:         `{"title":"Card","body":""}`,
}

// NewSection creates an empty section with a fresh identifier.
func NewSection(title string) *Node {
	return &Node{ID: newID(), Kind: KindSection, Title: title}
}

// NewRow creates a row containing one column per width. With no widths, the
// row gets a single full-width column.
func NewRow(widths ...ColumnWidth) *Node {
	if len(widths) == 0 {
		widths = []ColumnWidth{WidthFull}
	}
	cols := make([]*Node, len(widths))
	for i, w := range widths {
		cols[i] = NewColumn(w)
	}
	return &Node{ID: newID(), Kind: KindRow, Columns: cols}
}

// NewColumn creates an empty column with the given width.
func NewColumn(width ColumnWidth) *Node {
	return &Node{ID: newID(), Kind: KindColumn, Width: width}
}

// NewLeaf creates a content leaf of the given kind with its default
// placeholder text. Returns nil if kind is not a leaf kind.
func NewLeaf(kind Kind) *Node {
	if !kind.IsLeaf() {
		return nil
	}
	return &Node{ID: newID(), Kind: kind, Text: defaultText[kind]}
}

// Clone returns a deep copy of the node and its subtree with identifiers
// preserved. Used for clipboard capture, where fresh identifiers are minted
// at paste time instead so repeated pastes never collide.
func (n *Node) Clone() *Node {
	return n.clone(false)
}

// CloneFresh returns a deep copy of the node and its subtree with a fresh
// identifier minted at every level. Used by duplicate and paste to uphold
// tree-wide identifier uniqueness.
func (n *Node) CloneFresh() *Node {
	return n.clone(true)
}

func (n *Node) clone(fresh bool) *Node {
	if n == nil {
		return nil
	}
	c := *n
	if fresh {
		c.ID = newID()
	}
	if n.Responsive != nil {
		rc := *n.Responsive
		c.Responsive = &rc
	}
	c.Children = cloneAll(n.Children, fresh)
	c.Columns = cloneAll(n.Columns, fresh)
	return &c
}

func cloneAll(nodes []*Node, fresh bool) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.clone(fresh)
	}
	return out
}

// Walk visits every node in the tree in depth-first document order, crossing
// both Children and Columns collections.
func Walk(tree []*Node, fn func(n *Node)) {
	for _, n := range tree {
		walkNode(n, fn)
	}
}

func walkNode(n *Node, fn func(n *Node)) {
	fn(n)
	for _, c := range n.Children {
		walkNode(c, fn)
	}
	for _, c := range n.Columns {
		walkNode(c, fn)
	}
}

// Count returns the number of nodes in the tree, including every descendant.
func Count(tree []*Node) int {
	total := 0
	Walk(tree, func(*Node) { total++ })
	return total
}

// IDs returns the set of every identifier present in the tree.
func IDs(tree []*Node) map[string]bool {
	ids := make(map[string]bool)
	Walk(tree, func(n *Node) { ids[n.ID] = true })
	return ids
}

// Validate checks the tree against the structural grammar
//
//	root    := section*
//	section := row*
//	row     := column+
//	column  := leaf*
//
// and verifies kind membership, column widths, and tree-wide identifier
// uniqueness. Returns the first violation found, wrapped with the offending
// node's position. Legacy flat documents (bare leaves at the root) fail
// validation; run [Migrate] first.
func Validate(tree []*Node) error {
	seen := make(map[string]bool)
	for i, n := range tree {
		if !n.IsSection() {
			return fmt.Errorf("root[%d] %q: %w", i, n.Kind, ErrBadContainment)
		}
		if err := validateNode(n, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n *Node, seen map[string]bool) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("node %s kind %q: %w", n.ID, n.Kind, ErrInvalidKind)
	}
	if seen[n.ID] {
		return fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNodeID)
	}
	seen[n.ID] = true

	switch {
	case n.IsSection():
		for _, c := range n.Children {
			if !c.IsRow() {
				return fmt.Errorf("section %s child %q: %w", n.ID, c.Kind, ErrBadContainment)
			}
			if err := validateNode(c, seen); err != nil {
				return err
			}
		}
	case n.IsRow():
		for _, c := range n.Columns {
			if !c.IsColumn() {
				return fmt.Errorf("row %s column slot %q: %w", n.ID, c.Kind, ErrBadContainment)
			}
			if err := validateNode(c, seen); err != nil {
				return err
			}
		}
	case n.IsColumn():
		if !n.Width.Valid() {
			return fmt.Errorf("column %s width %q: %w", n.ID, n.Width, ErrInvalidWidth)
		}
		for _, c := range n.Children {
			if !c.IsLeaf() {
				return fmt.Errorf("column %s child %q: %w", n.ID, c.Kind, ErrBadContainment)
			}
			if err := validateNode(c, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
