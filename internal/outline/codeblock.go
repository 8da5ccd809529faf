package outline

import (
	"regexp"
	"strings"
)

var codeBlockPattern = regexp.MustCompile("^\x60\x60\x60")

// CodeBlock is one fenced block found by ExtractCodeBlocks.
type CodeBlock struct {
	Lang       string // info string after the opening fence
	Code       string // block content, fences excluded
	StartLine  int    // offset of the opening fence within the input
	EndLine    int    // offset of the closing fence, or len(lines) when unterminated
	Terminated bool
}

// ExtractCodeBlock returns the text enclosed by triple-backtick fences in
// lines. Every fenced block contributes, joined by newlines and trimmed. An
// unterminated fence yields what was collected so far.
func ExtractCodeBlock(lines []string) string {
	inside := false
	var code []string

	for _, line := range lines {
		if isFence(line) {
			inside = !inside
			continue
		}
		if inside {
			code = append(code, line)
		}
	}

	return strings.TrimSpace(strings.Join(code, "\n"))
}

// ExtractCodeBlocks returns each fenced block in lines separately, with its
// info string. Content is not trimmed beyond removing the fences.
func ExtractCodeBlocks(lines []string) []CodeBlock {
	var blocks []CodeBlock
	var current *CodeBlock
	var code []string

	for i, line := range lines {
		if !isFence(line) {
			if current != nil {
				code = append(code, line)
			}
			continue
		}
		if current == nil {
			current = &CodeBlock{
				Lang:      strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "`")),
				StartLine: i,
			}
			code = code[:0]
			continue
		}
		current.Code = strings.Join(code, "\n")
		current.EndLine = i
		current.Terminated = true
		blocks = append(blocks, *current)
		current = nil
	}

	if current != nil {
		current.Code = strings.Join(code, "\n")
		current.EndLine = len(lines)
		blocks = append(blocks, *current)
	}

	return blocks
}

func isFence(line string) bool {
	return codeBlockPattern.MatchString(strings.TrimSpace(line))
}
