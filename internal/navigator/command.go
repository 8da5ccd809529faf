package navigator

import (
	"errors"
	"strconv"
	"strings"
)

// Command is a main menu entry.
type Command int

const (
	CmdGeneral Command = iota + 1
	CmdDataset
	CmdSteps
	CmdDiagrams
	CmdSuggestions
	CmdOutline
	CmdQuit
)

var (
	ErrEmptyInput    = errors.New("empty option")
	ErrInvalidInput  = errors.New("option is not a number")
	ErrUnknownOption = errors.New("unknown option")
)

// Commands lists the menu entries in display order.
var Commands = []Command{CmdGeneral, CmdDataset, CmdSteps, CmdDiagrams, CmdSuggestions, CmdOutline, CmdQuit}

// ParseCommand maps raw menu input to a Command. "q" and "quit" are accepted
// as CmdQuit.
func ParseCommand(raw string) (Command, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return 0, ErrEmptyInput
	case "q", "quit":
		return CmdQuit, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidInput
	}
	cmd := Command(n)
	if cmd < CmdGeneral || cmd > CmdQuit {
		return 0, ErrUnknownOption
	}
	return cmd, nil
}

func (c Command) String() string {
	switch c {
	case CmdGeneral:
		return "general"
	case CmdDataset:
		return "dataset"
	case CmdSteps:
		return "steps"
	case CmdDiagrams:
		return "diagrams"
	case CmdSuggestions:
		return "suggestions"
	case CmdOutline:
		return "outline"
	case CmdQuit:
		return "quit"
	default:
		return "Command(" + strconv.Itoa(int(c)) + ")"
	}
}
