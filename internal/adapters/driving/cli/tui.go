package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/markdown-doc/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Browse a document's sections interactively",
	Long: `Open an interactive browser over the document's sections. The left
pane lists the heading outline; the right pane shows the selected
section's text.

Controls:
  ↑/k, ↓/j - Move through the outline
  /         - Filter headings
  Enter     - Focus the section view
  Esc       - Back / clear filter
  q         - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Panic recovery keeps a stack trace visible after the alt screen
	// is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	path := args[0]
	sections, err := extractService.OutlineFromFile(cmd.Context(), path)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		return fmt.Errorf("%s has no headings to browse", path)
	}

	app := tui.NewApp(path, sections)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
