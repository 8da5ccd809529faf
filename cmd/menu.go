package cmd

import (
	"os"
	"os/signal"

	"github.com/itsmostafa/docnav/internal/navigator"
	"github.com/spf13/cobra"
)

var menuNoClear bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse the document with the interactive menu",
	Long: `Show a numbered menu of the document's topics. Ctrl+C while a section is
displayed returns to the menu; Ctrl+C at the main prompt exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func init() {
	defaultNoClear := cfg.NoClear
	menuCmd.Flags().BoolVar(&menuNoClear, "no-clear", defaultNoClear, "Do not clear the screen between pages (env DOCNAV_NO_CLEAR)")
	rootCmd.Flags().BoolVar(&menuNoClear, "no-clear", defaultNoClear, "Do not clear the screen between pages (env DOCNAV_NO_CLEAR)")

	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command) error {
	session, err := loadSession()
	if err != nil {
		return err
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	nav := navigator.New(session, navigator.Options{
		Input:      cmd.InOrStdin(),
		Output:     cmd.OutOrStdout(),
		Interrupts: interrupts,
		NoClear:    menuNoClear,
	})
	return nav.Run(cmd.Context())
}
