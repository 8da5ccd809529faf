package cmd

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/docnav/internal/outline"
	"github.com/spf13/cobra"
)

var rangeFrom []string
var rangeTo []string
var rangeFromLevel int
var rangeToLevel int
var rangeWithHeading bool
var rangeToEnd bool

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Print the lines between two headings",
	Long: `Print from the first heading whose title contains every --from term up to
the first later heading whose title contains every --to term. Terms match
without regard to case or accents. A level of 0 matches any heading level.`,
	Example: `  docnav range --from dataset,referencia --from-level 2 --to tabla,clientes --to-level 3 --with-heading
  docnav range --from tabla,clientes --to programa --to-end`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(rangeFrom) == 0 || len(rangeTo) == 0 {
			return fmt.Errorf("--from and --to are required")
		}

		doc, err := loadDocument()
		if err != nil {
			return err
		}

		opts := outline.RangeOptions{IncludeStartHeading: rangeWithHeading, EndFallback: outline.FallbackFail}
		if rangeToEnd {
			opts.EndFallback = outline.FallbackToEnd
		}

		r, err := outline.FindRange(doc, headingPredicate(rangeFromLevel, rangeFrom), headingPredicate(rangeToLevel, rangeTo), opts)
		if err != nil {
			logger.Debug("range not resolved", "from", rangeFrom, "to", rangeTo, "fallback", opts.EndFallback.String(), "reason", outline.ReasonOf(err))
			return describeMiss(err, fmt.Sprintf("%q..%q", strings.Join(rangeFrom, " "), strings.Join(rangeTo, " ")))
		}

		writeRanges(cmd.OutOrStdout(), doc, []outline.Range{r})
		return nil
	},
}

func init() {
	rangeCmd.Flags().StringSliceVar(&rangeFrom, "from", nil, "Terms the start heading must contain")
	rangeCmd.Flags().StringSliceVar(&rangeTo, "to", nil, "Terms the end heading must contain")
	rangeCmd.Flags().IntVar(&rangeFromLevel, "from-level", 0, "Level of the start heading (0 = any)")
	rangeCmd.Flags().IntVar(&rangeToLevel, "to-level", 0, "Level of the end heading (0 = any)")
	rangeCmd.Flags().BoolVar(&rangeWithHeading, "with-heading", false, "Include the start heading line")
	rangeCmd.Flags().BoolVar(&rangeToEnd, "to-end", false, "Read to the end of the document when no end heading follows")
	rootCmd.AddCommand(rangeCmd)
}

func headingPredicate(level int, terms []string) outline.Predicate {
	if level == 0 {
		return outline.AllTerms(terms...)
	}
	return outline.AtLevel(level, terms...)
}
