package cmd

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/docnav/internal/outline"
	"github.com/spf13/cobra"
)

var paragraphsSection string
var paragraphsIndex int

var paragraphsCmd = &cobra.Command{
	Use:   "paragraphs",
	Short: "Print the document's paragraphs",
	Long: `Print the paragraphs of the document, or of one section with --section.
Headings are skipped and blank lines separate paragraphs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		paragraphs := doc.Paragraphs()
		if paragraphsSection != "" {
			r, err := outline.FindSection(doc, paragraphsSection)
			if err != nil {
				return describeMiss(err, paragraphsSection)
			}
			paragraphs = outline.AllParagraphs(doc.Slice(r))
		}

		out := cmd.OutOrStdout()
		if paragraphsIndex > 0 {
			p, err := outline.ParagraphAt(paragraphs, paragraphsIndex-1)
			if err != nil {
				return describeMiss(err, fmt.Sprintf("paragraph %d of %d", paragraphsIndex, len(paragraphs)))
			}
			fmt.Fprintln(out, p)
			return nil
		}

		if len(paragraphs) == 0 {
			writeNotice(cmd.ErrOrStderr(), "No paragraphs found.")
			return nil
		}
		fmt.Fprintln(out, strings.Join(paragraphs, "\n\n"))
		return nil
	},
}

func init() {
	paragraphsCmd.Flags().StringVarP(&paragraphsSection, "section", "s", "", "Only paragraphs of the section whose title contains this text")
	paragraphsCmd.Flags().IntVarP(&paragraphsIndex, "index", "i", 0, "Print only the n-th paragraph (1-based)")
	rootCmd.AddCommand(paragraphsCmd)
}
