package block

// CollectionKind identifies which of the four collection shapes contains a
// node. Together with the owning parent's ID it addresses one live []*Node
// slice inside a tree.
type CollectionKind int

const (
	// CollectionRoot is the ordered sequence of sections at the tree root.
	CollectionRoot CollectionKind = iota
	// CollectionSectionChildren is a section's rows.
	CollectionSectionChildren
	// CollectionRowColumns is a row's columns.
	CollectionRowColumns
	// CollectionColumnChildren is a column's content leaves.
	CollectionColumnChildren
)

// String returns a short name for the collection kind.
func (k CollectionKind) String() string {
	switch k {
	case CollectionRoot:
		return "root"
	case CollectionSectionChildren:
		return "section children"
	case CollectionRowColumns:
		return "row columns"
	case CollectionColumnChildren:
		return "column children"
	default:
		return "unknown"
	}
}

// Accepts reports whether a node of the given kind may live in this
// collection. This is the containment grammar every insert, move, and drop
// checks before touching the tree.
func (k CollectionKind) Accepts(kind Kind) bool {
	switch k {
	case CollectionRoot:
		return kind == KindSection
	case CollectionSectionChildren:
		return kind == KindRow
	case CollectionRowColumns:
		return kind == KindColumn
	case CollectionColumnChildren:
		return kind.IsLeaf()
	default:
		return false
	}
}

// Location addresses a node's position in a tree: the kind of collection
// holding it, the owning parent's ID (empty for the root), and its index
// within that collection. Two nodes in different branches never share a
// location even when their indices coincide, because ParentID differs.
type Location struct {
	Collection CollectionKind
	ParentID   string
	Index      int
}

// Find returns the node with the given ID, searching the whole tree depth
// first across all four collection kinds. Returns nil when the ID is absent.
func Find(tree []*Node, id string) *Node {
	for _, n := range tree {
		if found := findNode(n, id); found != nil {
			return found
		}
	}
	return nil
}

func findNode(n *Node, id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := findNode(c, id); found != nil {
			return found
		}
	}
	for _, c := range n.Columns {
		if found := findNode(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Locate returns the location of the node with the given ID. The boolean is
// false when the ID is absent from the tree; callers treat that as a silent
// no-op, never an error.
func Locate(tree []*Node, id string) (Location, bool) {
	for i, n := range tree {
		if n.ID == id {
			return Location{Collection: CollectionRoot, Index: i}, true
		}
		if loc, ok := locateIn(n, id); ok {
			return loc, true
		}
	}
	return Location{}, false
}

func locateIn(parent *Node, id string) (Location, bool) {
	childKind, columnKind := childCollections(parent)
	for i, c := range parent.Children {
		if c.ID == id {
			return Location{Collection: childKind, ParentID: parent.ID, Index: i}, true
		}
		if loc, ok := locateIn(c, id); ok {
			return loc, true
		}
	}
	for i, c := range parent.Columns {
		if c.ID == id {
			return Location{Collection: columnKind, ParentID: parent.ID, Index: i}, true
		}
		if loc, ok := locateIn(c, id); ok {
			return loc, true
		}
	}
	return Location{}, false
}

// childCollections returns the collection kinds a parent's Children and
// Columns slices represent.
func childCollections(parent *Node) (children, columns CollectionKind) {
	if parent.IsColumn() {
		return CollectionColumnChildren, CollectionRowColumns
	}
	return CollectionSectionChildren, CollectionRowColumns
}

// CollectionAt returns the live slice the location addresses, freshly
// resolved against the given tree. It must be re-resolved after every
// mutation: ancestors are rebuilt on each update, so a slice captured from an
// older tree version addresses stale nodes. The location's Index is ignored.
// Returns nil when the parent is absent.
func CollectionAt(tree []*Node, loc Location) []*Node {
	if loc.Collection == CollectionRoot {
		return tree
	}
	parent := Find(tree, loc.ParentID)
	if parent == nil {
		return nil
	}
	if loc.Collection == CollectionRowColumns {
		return parent.Columns
	}
	return parent.Children
}

// WithCollection returns a new tree in which the addressed collection is
// replaced by repl. Every ancestor from the collection up to the root is
// freshly reconstructed; untouched siblings and subtrees are shared by
// pointer. The input tree is never modified. If the parent is absent the
// input tree is returned unchanged.
func WithCollection(tree []*Node, loc Location, repl []*Node) []*Node {
	if loc.Collection == CollectionRoot {
		return repl
	}
	out := make([]*Node, len(tree))
	changed := false
	for i, n := range tree {
		rebuilt, ok := withCollectionNode(n, loc, repl)
		out[i] = rebuilt
		changed = changed || ok
	}
	if !changed {
		return tree
	}
	return out
}

// withCollectionNode rebuilds n if the addressed parent lives in its subtree.
// Returns the (possibly shared) node and whether a rebuild happened.
func withCollectionNode(n *Node, loc Location, repl []*Node) (*Node, bool) {
	if n.ID == loc.ParentID {
		c := *n
		if loc.Collection == CollectionRowColumns {
			c.Columns = repl
		} else {
			c.Children = repl
		}
		return &c, true
	}
	for i, child := range n.Children {
		if rebuilt, ok := withCollectionNode(child, loc, repl); ok {
			c := *n
			c.Children = replaceAt(n.Children, i, rebuilt)
			return &c, true
		}
	}
	for i, child := range n.Columns {
		if rebuilt, ok := withCollectionNode(child, loc, repl); ok {
			c := *n
			c.Columns = replaceAt(n.Columns, i, rebuilt)
			return &c, true
		}
	}
	return n, false
}

// replaceAt returns a copy of nodes with index i swapped for n.
func replaceAt(nodes []*Node, i int, n *Node) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	out[i] = n
	return out
}
