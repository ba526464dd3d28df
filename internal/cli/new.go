package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/block/ops"
)

// newCommand creates a fresh document file from section templates.
func (c *CLI) newCommand() *cobra.Command {
	var (
		templates []string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new document from section templates",
		Long: `Create a new document file populated from one or more section templates.

Available templates: ` + templateNames() + `.`,
		Example: `  pagesmith new -o page.json
  pagesmith new -o page.json -t header -t hero -t footer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if len(templates) == 0 {
				templates = []string{string(ops.TemplateBlank)}
			}

			var tree []*block.Node
			for _, name := range templates {
				t := ops.Template(name)
				if !t.Valid() {
					return fmt.Errorf("unknown template %q (available: %s)", name, templateNames())
				}
				tree = ops.InsertSection(tree, t)
			}
			if err := block.Validate(tree); err != nil {
				return err
			}

			logger.Debug("writing document", "path", output, "sections", len(tree))
			if err := block.WriteFile(tree, output); err != nil {
				return err
			}
			printSuccess("created %s (%d sections, %d nodes)", output, len(tree), block.Count(tree))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&templates, "template", "t", nil, "section template to append (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "document.json", "output file path")
	return cmd
}

func templateNames() string {
	names := make([]string, 0, len(ops.Templates()))
	for _, t := range ops.Templates() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
