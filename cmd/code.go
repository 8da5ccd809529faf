package cmd

import (
	"fmt"

	"github.com/itsmostafa/docnav/internal/outline"
	"github.com/spf13/cobra"
)

var codeAll bool

var codeCmd = &cobra.Command{
	Use:   "code <title>",
	Short: "Print the fenced code inside a section",
	Long: `Print the text between triple-backtick fences in the first section whose
heading contains <title>. An unterminated fence yields what follows it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		r, err := outline.FindSection(doc, args[0])
		if err != nil {
			return describeMiss(err, args[0])
		}
		lines := doc.Slice(r)
		out := cmd.OutOrStdout()

		if !codeAll {
			code := outline.ExtractCodeBlock(lines)
			if code == "" {
				writeNotice(cmd.ErrOrStderr(), "No code found in the section.")
				return nil
			}
			fmt.Fprintln(out, code)
			return nil
		}

		blocks := outline.ExtractCodeBlocks(lines)
		if len(blocks) == 0 {
			writeNotice(cmd.ErrOrStderr(), "No code found in the section.")
			return nil
		}
		for i, b := range blocks {
			label := fmt.Sprintf("#%d line %d", i+1, r.Start+b.StartLine+1)
			if b.Lang != "" {
				label += " " + b.Lang
			}
			if !b.Terminated {
				label += " (unterminated)"
			}
			fmt.Fprintln(out, labelStyle.Render(label))
			fmt.Fprintln(out, b.Code)
		}
		return nil
	},
}

func init() {
	codeCmd.Flags().BoolVar(&codeAll, "all", false, "List each fenced block separately with its language")
	rootCmd.AddCommand(codeCmd)
}
