package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// editRunner adapts one Editor method so the six commands share a single
// run function.
type editRunner func(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error)

var replaceCmd = &cobra.Command{
	Use:   "replace <file> <pattern> [content]",
	Short: "Replace a matched section",
	Long: `Replace each matched section with new content. By default the whole
section including its heading is replaced; --keep-heading preserves the
heading line and swaps only the body.

The payload comes from the content argument, from --with-path, or from
stdin when neither is given.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args, true, editService.Replace)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <file> <pattern>",
	Short: "Delete a matched section",
	Long: `Delete each matched section, heading and body included. Nested
subsections are part of the section and are deleted with it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args, false, func(ctx context.Context, path, pattern, _ string, opts domain.EditOptions) (*domain.EditResult, error) {
			return editService.Delete(ctx, path, pattern, opts)
		})
	},
}

var appendToCmd = &cobra.Command{
	Use:   "append-to <file> <pattern> [content]",
	Short: "Append a block to a matched section's body",
	Long: `Append a block to the end of each matched section's body. When the
body already ends with the block the section is skipped, so repeated runs
are safe; --allow-duplicate disables the guard.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args, true, editService.AppendTo)
	},
}

var prependToCmd = &cobra.Command{
	Use:   "prepend-to <file> <pattern> [content]",
	Short: "Prepend a block to a matched section's body",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args, true, editService.PrependTo)
	},
}

var insertAfterCmd = &cobra.Command{
	Use:   "insert-after <file> <pattern> [content]",
	Short: "Insert a block after a matched section",
	Long: `Insert a block immediately after each matched section, past any
nested subsections, as a sibling rather than inside the body.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args, true, editService.InsertAfter)
	},
}

var insertBeforeCmd = &cobra.Command{
	Use:   "insert-before <file> <pattern> [content]",
	Short: "Insert a block before a matched section",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args, true, editService.InsertBefore)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{replaceCmd, deleteCmd, appendToCmd, prependToCmd, insertAfterCmd, insertBeforeCmd} {
		cmd.Flags().Bool("dry-run", false, "Print the diff without writing the file")
		cmd.Flags().Bool("all", false, "Allow the pattern to match more than one section")
		cmd.Flags().Bool("case-sensitive", false, "Match the pattern case-sensitively")
		cmd.Flags().Int("max-matches", 0, "Fail when the pattern matches more than N sections (0 = no limit)")
		if cmd != deleteCmd {
			cmd.Flags().String("with-path", "", "Read the payload from a file instead of an argument")
			cmd.Flags().Bool("allow-duplicate", false, "Apply the payload even when already present")
		}
		if cmd == replaceCmd {
			cmd.Flags().Bool("keep-heading", false, "Preserve the heading line and replace only the body")
		}
		rootCmd.AddCommand(cmd)
	}
}

// editOptionsFromFlags reads the shared edit flags.
func editOptionsFromFlags(cmd *cobra.Command) (domain.EditOptions, error) {
	var opts domain.EditOptions
	var err error
	if opts.Match, err = matchOptionsFromFlags(cmd); err != nil {
		return opts, err
	}
	if opts.DryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return opts, err
	}
	if f := cmd.Flags().Lookup("with-path"); f != nil {
		opts.WithPath = f.Value.String()
	}
	if f := cmd.Flags().Lookup("allow-duplicate"); f != nil {
		if opts.AllowDuplicate, err = cmd.Flags().GetBool("allow-duplicate"); err != nil {
			return opts, err
		}
	}
	if f := cmd.Flags().Lookup("keep-heading"); f != nil {
		if opts.KeepHeading, err = cmd.Flags().GetBool("keep-heading"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func runEdit(cmd *cobra.Command, args []string, takesPayload bool, run editRunner) error {
	opts, err := editOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	path, pattern := args[0], args[1]
	var content string
	if takesPayload {
		switch {
		case len(args) == 3:
			content = args[2]
		case opts.WithPath != "":
			// Payload resolved by the service.
		default:
			content, err = readStdin(cmd)
			if err != nil {
				return err
			}
		}
	}

	result, err := run(cmd.Context(), path, pattern, content, opts)
	if err != nil {
		return err
	}
	return reportEditResult(cmd, result, opts.DryRun)
}

// reportEditResult prints the outcome of a mutating command.
func reportEditResult(cmd *cobra.Command, result *domain.EditResult, dryRun bool) error {
	out := cmd.OutOrStdout()

	for _, heading := range result.Skipped {
		fmt.Fprintf(out, "Skipped %q: content already present\n", heading)
	}

	if !result.Applied {
		fmt.Fprintln(out, "No changes.")
		return nil
	}
	if dryRun {
		fmt.Fprint(out, colorizeDiff(result.Diff, out))
		return nil
	}
	fmt.Fprintf(out, "Updated %s\n", result.WrittenPath)
	return nil
}
