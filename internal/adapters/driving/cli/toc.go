package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
	"github.com/custodia-labs/markdown-doc/internal/logger"
)

// errTocStale makes `toc --mode check|diff` exit nonzero when the block
// needs regeneration, so CI can gate on it.
var errTocStale = errors.New("table of contents is out of date")

var tocCmd = &cobra.Command{
	Use:   "toc <file>",
	Short: "Keep a table-of-contents block in sync with the headings",
	Long: `Manage the table-of-contents block between the configured markers
(<!-- toc --> and <!-- tocstop --> by default). Files without markers are
left untouched and report clean.

Modes:
  check   exit 1 when the block is stale, print nothing else (default)
  diff    like check, but print the unified diff of the rewrite
  update  rewrite the block in place (atomic write)

Files matched by the ignore list report clean; --no-ignore bypasses it.
With --watch the file is re-synced on every change until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runToc,
}

func init() {
	tocCmd.Flags().String("mode", "check", "One of check, diff or update")
	tocCmd.Flags().Bool("no-ignore", false, "Bypass the ignore list")
	tocCmd.Flags().Bool("watch", false, "Keep watching the file and re-sync on change")
	rootCmd.AddCommand(tocCmd)
}

func runToc(cmd *cobra.Command, args []string) error {
	modeStr, err := cmd.Flags().GetString("mode")
	if err != nil {
		return err
	}
	mode, err := domain.ParseTocMode(modeStr)
	if err != nil {
		return err
	}
	noIgnore, err := cmd.Flags().GetBool("no-ignore")
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}

	path := args[0]
	opts := domain.TocOptions{Mode: mode, NoIgnore: noIgnore}

	if !watch {
		return tocOnce(cmd, path, opts)
	}
	return tocWatch(cmd, path, opts)
}

// tocOnce runs one sync and reports the result.
func tocOnce(cmd *cobra.Command, path string, opts domain.TocOptions) error {
	result, err := tocService.Sync(cmd.Context(), path, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if result.Status == domain.TocStatusClean {
		fmt.Fprintf(out, "%s: up to date\n", path)
		return nil
	}

	switch opts.Mode {
	case domain.TocModeCheck:
		fmt.Fprintf(out, "%s: stale\n", path)
		return errTocStale
	case domain.TocModeDiff:
		fmt.Fprint(out, colorizeDiff(result.Diff, out))
		return errTocStale
	default:
		fmt.Fprintf(out, "Updated %s\n", path)
		return nil
	}
}

// tocWatch re-syncs on every filesystem event touching the file until the
// command context is cancelled. The parent directory is watched rather
// than the file itself because atomic writes replace the inode.
func tocWatch(cmd *cobra.Command, path string, opts domain.TocOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	// Sync once up front so a stale file is fixed before the first event.
	if err := tocOnce(cmd, path, opts); err != nil && !errors.Is(err, errTocStale) {
		return err
	}

	target := filepath.Clean(path)
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (interrupt to stop)\n", path)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Section(fmt.Sprintf("resync %s", path))
			logger.Debug("toc watch: %s", event)
			if err := tocOnce(cmd, path, opts); err != nil && !errors.Is(err, errTocStale) {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("toc watch: %v", err)
		}
	}
}
