package cli

import (
	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/pkg/block"
)

// migrateCommand normalizes a legacy document file in place.
func (c *CLI) migrateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "migrate <file>",
		Short: "Normalize a legacy document into the nested layout",
		Long: `Normalize a legacy flat document into the nested section/row/column layout.

Documents that already use the nested layout are left untouched.`,
		Example: `  pagesmith migrate old.json
  pagesmith migrate old.json -o new.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			tree, err := block.ReadFile(args[0])
			if err != nil {
				return err
			}

			migrated := block.Migrate(tree)
			if err := block.Validate(migrated); err != nil {
				return err
			}
			changed := len(migrated) != len(tree) || (len(tree) > 0 && migrated[0] != tree[0])

			dest := output
			if dest == "" {
				dest = args[0]
			}
			if !changed && dest == args[0] {
				printSuccess("%s is already up to date", args[0])
				return nil
			}

			logger.Debug("writing migrated document", "path", dest, "changed", changed)
			if err := block.WriteFile(migrated, dest); err != nil {
				return err
			}
			if changed {
				printSuccess("migrated %s (%d nodes)", dest, block.Count(migrated))
			} else {
				printSuccess("copied %s (already up to date)", dest)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this path instead of rewriting the input")
	return cmd
}
