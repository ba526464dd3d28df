// Package cli implements the pagesmith command-line interface.
//
// This package provides commands for creating documents from section
// templates, inspecting and visualizing document trees, migrating legacy
// documents, editing a document interactively, and serving documents over
// HTTP. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - new: Create a document from section templates
//   - show: Print a document's tree outline
//   - migrate: Normalize a legacy flat document
//   - viz: Render a document tree as DOT, SVG, or PNG
//   - edit: Open a document in the interactive outline editor
//   - serve: Serve documents over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so subcommands share one configuration.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// appName is the application name used for directories and display.
const appName = "pagesmith"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}
