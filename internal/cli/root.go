package cli

import (
	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/pkg/buildinfo"
)

// RootCommand builds the pagesmith root command with all subcommands.
// The caller is responsible for executing it (see cmd/pagesmith).
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pagesmith edits block-tree page documents",
		Long:         `Pagesmith is a visual page builder engine: documents are trees of sections, rows, columns, and content blocks. The CLI creates, inspects, migrates, edits, and serves them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.newCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.migrateCommand())
	root.AddCommand(c.vizCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())

	return root
}
