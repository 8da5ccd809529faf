package cmd

import (
	"github.com/itsmostafa/docnav/internal/outline"
	"github.com/spf13/cobra"
)

var findLevel int

var findCmd = &cobra.Command{
	Use:   "find <term>...",
	Short: "Print every section whose title contains any of the terms",
	Long: `Print every section, heading included, whose title contains at least one
of the terms, ignoring case and accents. Each section runs to the next heading
of the same or a higher level.`,
	Example: `  docnav find --level 3 pseudocodigo diagrama`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		ranges := outline.FindAllSections(doc, findLevel, outline.AnyTerm(args...))
		if len(ranges) == 0 {
			writeNotice(cmd.ErrOrStderr(), "No sections matched.")
			return nil
		}
		writeRanges(cmd.OutOrStdout(), doc, ranges)
		return nil
	},
}

func init() {
	findCmd.Flags().IntVarP(&findLevel, "level", "l", 0, "Only match headings at this level (0 = any)")
	rootCmd.AddCommand(findCmd)
}
