package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/editor"
)

// editCommand opens a document in the interactive outline editor.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a document in an interactive outline",
		Long: `Open a document in an interactive terminal outline.

Keys: arrows or j/k move the cursor, J/K reorder the node within its
collection, space toggles multi-select, d deletes, y duplicates, c/p copy
and paste the node, u/r undo and redo, s saves, q quits.`,
		Example: `  pagesmith edit page.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := block.ReadFile(args[0])
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("no such document: %s (create one with pagesmith new)", args[0])
				}
				return err
			}

			e := editor.New()
			e.Load(tree)

			m := newEditModel(e, args[0])
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(editModel); ok && fm.dirty {
				printError("quit with unsaved changes (last save wins)")
			}
			return nil
		},
	}
	return cmd
}

// editModel is the bubbletea model for the outline editor. It owns an
// [editor.Editor] and translates key presses into editor commands; the
// outline is re-flattened after every change so the view always reflects
// the current tree.
type editModel struct {
	editor *editor.Editor
	path   string

	items  []outlineItem
	cursor int
	height int
	offset int

	status string
	dirty  bool
}

func newEditModel(e *editor.Editor, path string) editModel {
	return editModel{
		editor: e,
		path:   path,
		items:  flattenOutline(e.Tree()),
		height: 20,
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 7
		if m.height < 5 {
			m.height = 5
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case "K":
			m.apply(func(id string) { m.editor.Reorder(id, -1) })
		case "J":
			m.apply(func(id string) { m.editor.Reorder(id, 1) })

		case " ":
			if id, ok := m.cursorID(); ok {
				m.editor.Select(id, true)
			}
		case "enter":
			if id, ok := m.cursorID(); ok {
				m.editor.Select(id, false)
			}

		case "d":
			m.apply(func(id string) { m.editor.Remove(id) })
		case "y":
			m.apply(func(id string) { m.editor.Duplicate(id) })

		case "c":
			if id, ok := m.cursorID(); ok {
				m.editor.Select(id, false)
				if m.editor.CopyNode() {
					m.status = "copied"
				}
			}
		case "p":
			m.apply(func(id string) {
				m.editor.Select(id, false)
				m.editor.PasteNode()
			})

		case "u":
			if m.editor.CanUndo() {
				m.editor.Undo()
				m.afterChange("undo")
			}
		case "r":
			if m.editor.CanRedo() {
				m.editor.Redo()
				m.afterChange("redo")
			}

		case "s":
			if err := block.WriteFile(m.editor.Tree(), m.path); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "saved " + m.path
				m.dirty = false
			}
		}

		m.clampScroll()
	}
	return m, nil
}

// apply runs op against the node under the cursor, then refreshes the
// outline. A tree that did not change leaves dirty alone.
func (m *editModel) apply(op func(id string)) {
	id, ok := m.cursorID()
	if !ok {
		return
	}
	before := m.editor.Tree()
	op(id)
	if !sameRoot(before, m.editor.Tree()) {
		m.afterChange("")
	}
}

func (m *editModel) afterChange(status string) {
	m.items = flattenOutline(m.editor.Tree())
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.dirty = true
	m.status = status
}

func (m *editModel) cursorID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return "", false
	}
	return m.items[m.cursor].node.ID, true
}

func (m *editModel) clampScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func sameRoot(a, b []*block.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m editModel) View() string {
	var b strings.Builder

	title := m.path
	if m.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("j/k move  J/K reorder  space select  d delete  y duplicate  c/p copy/paste  u/r undo/redo  s save  q quit"))
	b.WriteString("\n\n")

	selected := make(map[string]bool, len(m.editor.Selection()))
	for _, id := range m.editor.Selection() {
		selected[id] = true
	}

	end := m.offset + m.height
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		item := m.items[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		mark := " "
		if selected[item.node.ID] {
			mark = styleSelected.Render("●")
		}

		line := cursor + mark + " " + strings.Repeat("  ", item.depth) + outlineLabel(item.node)
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(StyleDim.Render("  (empty document)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("[%d/%d]", m.cursor+1, len(m.items))
	if m.status != "" {
		footer += "  " + m.status
	}
	b.WriteString(StyleDim.Render(footer))

	return b.String()
}
