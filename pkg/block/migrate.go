package block

// Migrate normalizes a legacy flat document into the canonical container
// hierarchy. Early documents stored a bare list of content leaves at the
// root; Migrate wraps all of them, in order, into a single full-width column
// inside one row inside one section.
//
// Migration is a one-shot, load-time transformation. It runs only when the
// tree contains no section, row, or column at all and at least one root
// leaf: an empty tree or any tree that already contains a structural node is
// returned unchanged, which makes Migrate idempotent. It is not part of the
// mutation surface and is not undoable.
func Migrate(tree []*Node) []*Node {
	if len(tree) == 0 || !needsMigration(tree) {
		return tree
	}

	leaves := make([]*Node, len(tree))
	copy(leaves, tree)

	column := NewColumn(WidthFull)
	column.Children = leaves
	row := &Node{ID: newID(), Kind: KindRow, Columns: []*Node{column}}
	section := NewSection("")
	section.Children = []*Node{row}
	return []*Node{section}
}

// needsMigration reports whether the tree is a legacy flat leaf list: no
// structural node anywhere, at least one content leaf at the root.
func needsMigration(tree []*Node) bool {
	hasLeaf := false
	structural := false
	Walk(tree, func(n *Node) {
		switch {
		case n.IsSection() || n.IsRow() || n.IsColumn():
			structural = true
		case n.IsLeaf():
			hasLeaf = true
		}
	})
	return hasLeaf && !structural
}
