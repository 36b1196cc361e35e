// Package cli wires the cobra command tree for markdown-doc. Commands
// talk to the core exclusively through the driving ports, so tests can
// swap the services for fakes.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/markdown-doc/internal/adapters/driven/config/file"
	"github.com/custodia-labs/markdown-doc/internal/adapters/driven/ignore"
	storagefile "github.com/custodia-labs/markdown-doc/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driving"
	"github.com/custodia-labs/markdown-doc/internal/core/services"
	"github.com/custodia-labs/markdown-doc/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

// Services used by the commands. Populated by initServices on first run;
// tests inject fakes before executing a command.
var (
	extractService driving.Extractor
	editService    driving.Editor
	tocService     driving.TocManager
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "markdown-doc",
	Short: "Heading-aware markdown section tooling",
	Long: `markdown-doc edits markdown documents by section instead of by line.

A section is an ATX heading plus everything underneath it up to the next
heading of equal or shallower depth. Sections are selected by a substring
of their heading text, so scripts and editor integrations never need to
know line numbers.

Reads project configuration from ` + configfile.ConfigFileName + ` in the
working directory when present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging to stderr")
}

// initServices builds the default adapter stack. It is a no-op when every
// service is already populated (tests, or a second command in-process).
func initServices() error {
	if extractService != nil && editService != nil && tocService != nil {
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	cfg, err := configfile.Load(cwd)
	if err != nil {
		return err
	}
	logger.Debug("config: toc markers %q..%q, ignore file %q",
		cfg.Toc.StartMarker, cfg.Toc.EndMarker, cfg.Ignore.File)

	files := storagefile.NewStore()
	ignoreList := ignore.NewStore(filepath.Join(cwd, cfg.Ignore.File))

	extractService = services.NewExtractService(files)
	editService = services.NewEditService(files)
	tocService = services.NewTocService(files, ignoreList, services.TocMarkers{
		Start: cfg.Toc.StartMarker,
		End:   cfg.Toc.EndMarker,
	})
	return nil
}

// Execute runs the root command under ctx. It is the single entry point
// used by main; cancelling ctx stops long-running commands such as
// `toc --watch` and `mcp serve`.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
