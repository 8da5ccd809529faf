package cmd

import (
	"fmt"

	"github.com/itsmostafa/docnav/internal/outline"
	"github.com/spf13/cobra"
)

var sectionWithHeading bool
var sectionSubsections bool
var sectionLevels []int
var sectionIndex int

var sectionCmd = &cobra.Command{
	Use:   "section [title]",
	Short: "Print the section whose title contains the given text",
	Long: `Print the content of the first section whose heading contains [title]
(case-insensitive), or of the n-th heading of the outline with --index. The
section ends at the next heading of the same or a higher level, so nested
subsections are included.`,
	Example: `  docnav section "Información general"
  docnav section --index 3 --with-heading`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (sectionIndex > 0) == (len(args) == 1) {
			return fmt.Errorf("give either a title or --index")
		}

		doc, err := loadDocument()
		if err != nil {
			return err
		}

		r, err := resolveSection(doc, args)
		if err != nil {
			return err
		}

		ranges := []outline.Range{r}
		if sectionSubsections {
			ranges = outline.PartitionSubsections(doc, r, sectionLevels...)
		}
		writeRanges(cmd.OutOrStdout(), doc, ranges)
		return nil
	},
}

func init() {
	sectionCmd.Flags().BoolVar(&sectionWithHeading, "with-heading", false, "Include the section's heading line")
	sectionCmd.Flags().BoolVar(&sectionSubsections, "subsections", false, "Split the section into its subsections")
	sectionCmd.Flags().IntSliceVar(&sectionLevels, "levels", []int{2, 3}, "Heading levels used by --subsections")
	sectionCmd.Flags().IntVarP(&sectionIndex, "index", "n", 0, "Resolve the n-th heading in outline order (1-based)")
	rootCmd.AddCommand(sectionCmd)
}

func resolveSection(doc *outline.Document, args []string) (outline.Range, error) {
	if sectionIndex > 0 {
		r, err := outline.SectionAt(doc, sectionIndex-1, sectionWithHeading)
		if err != nil {
			return r, describeMiss(err, fmt.Sprintf("heading %d of %d", sectionIndex, len(doc.Headings())))
		}
		return r, nil
	}

	r, err := outline.FindSection(doc, args[0])
	if err != nil {
		logger.Debug("section not found", "query", args[0], "reason", outline.ReasonOf(err))
		return r, describeMiss(err, args[0])
	}
	if sectionWithHeading {
		r.Start--
	}
	return r, nil
}
