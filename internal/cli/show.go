package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/block/style"
)

// showCommand prints a document file as an indented outline.
func (c *CLI) showCommand() *cobra.Command {
	var (
		classes bool
		ids     bool
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a document as an indented outline",
		Example: `  pagesmith show page.json
  pagesmith show page.json --classes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := block.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(args[0]))
			for _, item := range flattenOutline(tree) {
				line := strings.Repeat("  ", item.depth) + outlineLabel(item.node)
				if ids {
					line += " " + StyleDim.Render(item.node.ID)
				}
				if classes {
					if cls := style.NodeClass(item.node); cls != "" {
						line += " " + styleClass.Render(cls)
					}
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "\n%s\n", StyleDim.Render(fmt.Sprintf("%d nodes", block.Count(tree))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&classes, "classes", false, "append resolved responsive classes to each line")
	cmd.Flags().BoolVar(&ids, "ids", false, "append node identifiers to each line")
	return cmd
}
