package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pattern> [file]",
	Short: "Print sections whose heading matches a pattern",
	Long: `Print every matched section to stdout. The pattern is a plain
substring of the heading text, case-insensitive unless --case-sensitive
is set. When no file is given the document is read from stdin.

Examples:
  markdown-doc extract Installation README.md
  markdown-doc extract "API" --all docs/reference.md
  cat notes.md | markdown-doc extract Roadmap --no-heading`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExtract,
}

var sectionsCmd = &cobra.Command{
	Use:   "sections [file]",
	Short: "List the document's heading outline",
	Long: `List every section of the document with its heading level and byte
range. When no file is given the document is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSections,
}

func init() {
	extractCmd.Flags().Bool("all", false, "Allow the pattern to match more than one section")
	extractCmd.Flags().Bool("case-sensitive", false, "Match the pattern case-sensitively")
	extractCmd.Flags().Int("max-matches", 0, "Fail when the pattern matches more than N sections (0 = no limit)")
	extractCmd.Flags().Bool("no-heading", false, "Print section bodies without their heading lines")
	rootCmd.AddCommand(extractCmd)

	sectionsCmd.Flags().Bool("json", false, "Emit the outline as JSON")
	rootCmd.AddCommand(sectionsCmd)
}

// matchOptionsFromFlags reads the shared matching flags.
func matchOptionsFromFlags(cmd *cobra.Command) (domain.MatchOptions, error) {
	var opts domain.MatchOptions
	var err error
	if opts.AllMatches, err = cmd.Flags().GetBool("all"); err != nil {
		return opts, err
	}
	if opts.CaseSensitive, err = cmd.Flags().GetBool("case-sensitive"); err != nil {
		return opts, err
	}
	if opts.MaxMatches, err = cmd.Flags().GetInt("max-matches"); err != nil {
		return opts, err
	}
	return opts, nil
}

// readStdin slurps the piped document when no file argument was given.
func readStdin(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts, err := matchOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	noHeading, err := cmd.Flags().GetBool("no-heading")
	if err != nil {
		return err
	}

	pattern := args[0]
	var blocks []string
	if len(args) == 2 {
		blocks, err = extractService.ExtractFromFile(cmd.Context(), pattern, args[1], opts, noHeading)
	} else {
		var content string
		content, err = readStdin(cmd)
		if err != nil {
			return err
		}
		blocks, err = extractService.Extract(cmd.Context(), pattern, content, opts, noHeading)
	}
	if err != nil {
		return err
	}

	for i, block := range blocks {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), block)
	}
	return nil
}

func runSections(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	var sections []domain.Section
	if len(args) == 1 {
		sections, err = extractService.OutlineFromFile(cmd.Context(), args[0])
	} else {
		var content string
		content, err = readStdin(cmd)
		if err != nil {
			return err
		}
		sections, err = extractService.Outline(cmd.Context(), content)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return printOutlineJSON(cmd.OutOrStdout(), sections)
	}
	for _, sec := range sections {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%d:%d]\n",
			levelMarker(sec.Level), sec.HeadingText, sec.Start, sec.End)
	}
	return nil
}

// outlineEntry is the JSON shape of one section in `sections --json`.
type outlineEntry struct {
	Level   int    `json:"level"`
	Heading string `json:"heading"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

func printOutlineJSON(w io.Writer, sections []domain.Section) error {
	entries := make([]outlineEntry, 0, len(sections))
	for _, sec := range sections {
		entries = append(entries, outlineEntry{
			Level:   sec.Level,
			Heading: sec.HeadingText,
			Start:   sec.Start,
			End:     sec.End,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func levelMarker(level int) string {
	markers := [...]string{"#", "##", "###", "####", "#####", "######"}
	if level < 1 || level > len(markers) {
		return "#"
	}
	return markers[level-1]
}
