package navigator

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options configures a Navigator.
type Options struct {
	Input  io.Reader
	Output io.Writer

	// Interrupts delivers user aborts (usually SIGINT). A nil channel never
	// fires.
	Interrupts <-chan os.Signal

	// NoClear keeps previous pages on screen. Clearing only ever happens
	// when Output is a terminal.
	NoClear bool
}

// Navigator runs the interactive menu over a Session.
type Navigator struct {
	session    *Session
	in         *lineReader
	out        io.Writer
	interrupts <-chan os.Signal
	clear      bool
}

// New returns a Navigator reading choices from opts.Input.
func New(session *Session, opts Options) *Navigator {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Navigator{
		session:    session,
		in:         newLineReader(opts.Input),
		out:        opts.Output,
		interrupts: opts.Interrupts,
		clear:      !opts.NoClear && IsTerminal(opts.Output),
	}
}

// Run shows the main menu until the user quits, input ends, or the user
// interrupts the main prompt. Lookup misses are shown and never end the
// loop. Each menu pass refreshes the session's document.
func (n *Navigator) Run(ctx context.Context) error {
	defer n.in.Close()

	n.session.logger().Info("navigator started", "doc", n.session.Doc.Path, "headings", len(n.session.Doc.Headings()))

	for {
		n.session.Refresh()
		n.showMenu()

		raw, err := n.prompt(ctx, "Select an option: ")
		if errors.Is(err, ErrInterrupted) {
			FormatHint(n.out, "Interrupted. Exiting...")
			return nil
		}
		if err != nil {
			return n.finish(err)
		}

		cmd, err := ParseCommand(raw)
		if err != nil {
			if err := n.pause(ctx, inputErrorMessage(err)); err != nil {
				return n.finish(err)
			}
			continue
		}

		if cmd == CmdQuit {
			n.clearScreen()
			FormatHint(n.out, "Exiting...")
			return nil
		}

		if err := n.dispatch(ctx, cmd); err != nil {
			return n.finish(err)
		}
	}
}

// finish turns the end of input into a clean exit.
func (n *Navigator) finish(err error) error {
	if errors.Is(err, io.EOF) {
		if readErr := n.in.Err(); readErr != nil {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		return nil
	}
	return err
}

func (n *Navigator) dispatch(ctx context.Context, cmd Command) error {
	n.session.logger().Debug("command selected", "command", cmd.String())

	if cmd == CmdDataset {
		return n.datasetMenu(ctx)
	}
	return n.show(ctx, n.session.Resolve(cmd))
}

// datasetMenu loops over the a/b submenu until the user enters an empty line
// or interrupts.
func (n *Navigator) datasetMenu(ctx context.Context) error {
	for {
		n.clearScreen()
		FormatMenu(n.out, n.session.Topics.Dataset.Label, []menuEntry{
			{key: "a", label: "Summary"},
			{key: "b", label: "Detail"},
		})
		FormatHint(n.out, "Press Enter to return to the main menu.")

		choice, err := n.prompt(ctx, "Choose a/b: ")
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "a":
			err = n.show(ctx, n.session.DatasetSummary())
		case "b":
			err = n.show(ctx, n.session.DatasetDetail())
		case "":
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// show renders r and waits for Enter. An empty result shows nothing.
func (n *Navigator) show(ctx context.Context, r Result) error {
	if r.Text == "" && r.Notice == "" {
		return nil
	}
	n.clearScreen()
	FormatResult(n.out, r)
	return n.pause(ctx, "Press Enter to return to the menu...")
}

// pause waits for Enter. An interrupt only ends the pause.
func (n *Navigator) pause(ctx context.Context, msg string) error {
	_, err := n.prompt(ctx, dimStyle.Render(msg))
	if errors.Is(err, ErrInterrupted) {
		FormatHint(n.out, "Interrupted by user. Returning to the menu...")
		return nil
	}
	return err
}

func (n *Navigator) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(n.out, label)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-n.interrupts:
		fmt.Fprintln(n.out)
		return "", ErrInterrupted
	case line, ok := <-n.in.lines:
		if !ok {
			fmt.Fprintln(n.out)
			return "", io.EOF
		}
		return line, nil
	}
}

func (n *Navigator) showMenu() {
	n.clearScreen()

	topics := n.session.Topics
	title := "Documentation"
	if name := cmp.Or(topics.Title, n.session.Doc.Title()); name != "" {
		title = name + " documentation"
	}

	FormatMenu(n.out, title, []menuEntry{
		{key: "1", label: topics.General},
		{key: "2", label: topics.Dataset.Label},
		{key: "3", label: topics.Steps},
		{key: "4", label: topics.Diagrams.Label},
		{key: "5", label: topics.Suggestions},
		{key: "6", label: "Table of contents"},
		{key: "7", label: "Quit"},
	})
}

func (n *Navigator) clearScreen() {
	if n.clear {
		fmt.Fprint(n.out, clearSequence)
	}
}

func inputErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "Empty option. Press Enter to continue..."
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input. Press Enter to continue..."
	default:
		return "Invalid option. Press Enter to continue..."
	}
}
