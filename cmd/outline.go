package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itsmostafa/docnav/internal/outline"
	"github.com/spf13/cobra"
)

var outlineJSON bool
var outlineStats bool

var outlineCmd = &cobra.Command{
	Use:     "outline",
	Aliases: []string{"toc"},
	Short:   "Print the document's table of contents",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		headings := doc.Headings()
		out := cmd.OutOrStdout()

		if outlineJSON {
			var v any = headings
			if outlineStats {
				v = outline.Measure(doc)
			} else if headings == nil {
				v = []outline.Heading{}
			}
			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode outline: %w", err)
			}
			fmt.Fprintln(out, string(b))
			return nil
		}

		if len(headings) == 0 {
			writeNotice(out, "No headings were found in the document.")
			return nil
		}
		if outlineStats {
			for _, st := range outline.Measure(doc) {
				fmt.Fprintf(out, "%s%s (line %d, %d lines, %d words)\n",
					strings.Repeat("  ", st.Level-1), st.Title, st.Position+1, st.Lines, st.Words)
			}
			return nil
		}
		fmt.Fprint(out, outline.FormatTOC(outline.BuildTree(headings), 0))
		return nil
	},
}

func init() {
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "Print the heading index as JSON")
	outlineCmd.Flags().BoolVar(&outlineStats, "stats", false, "Include line and word counts for each section")
	rootCmd.AddCommand(outlineCmd)
}
