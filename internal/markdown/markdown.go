// Package markdown converts generated lesson text into typed display nodes.
// It supports the subset the lesson generator emits: ATX headings up to
// level 3, fenced code blocks, dash lists, bold and inline code spans.
package markdown

import "strings"

type Node interface {
	node()
}

type Heading struct {
	Level int // 1, 2 or 3
	Text  string
}

type CodeBlock struct {
	Language string // "code" when the fence has no tag
	Lines    []string
}

type ListItem struct {
	Spans []Span
}

type Paragraph struct {
	Spans []Span
}

// Blank preserves an empty line as a line break in output.
type Blank struct{}

func (Heading) node()   {}
func (CodeBlock) node() {}
func (ListItem) node()  {}
func (Paragraph) node() {}
func (Blank) node()     {}

// Scanner walks lesson text line by line and yields one node per Scan call.
// It is single-pass: a consumed closing fence is never revisited as an
// opening fence.
type Scanner struct {
	lines []string
	pos   int
	cur   Node
}

func NewScanner(text string) *Scanner {
	return &Scanner{lines: strings.Split(text, "\n")}
}

// Scan advances to the next node. It returns false at end of input.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.lines) {
		return false
	}

	trimmed := strings.TrimSpace(s.lines[s.pos])
	s.pos++

	switch {
	case trimmed == "":
		s.cur = Blank{}

	case strings.HasPrefix(trimmed, "```"):
		s.cur = s.scanCodeBlock(trimmed)

	case strings.HasPrefix(trimmed, "# "):
		s.cur = Heading{Level: 1, Text: strings.TrimPrefix(trimmed, "# ")}

	case strings.HasPrefix(trimmed, "## "):
		s.cur = Heading{Level: 2, Text: strings.TrimPrefix(trimmed, "## ")}

	case strings.HasPrefix(trimmed, "### "):
		s.cur = Heading{Level: 3, Text: strings.TrimPrefix(trimmed, "### ")}

	case strings.HasPrefix(trimmed, "- "):
		s.cur = ListItem{Spans: ParseSpans(strings.TrimPrefix(trimmed, "- "))}

	default:
		s.cur = Paragraph{Spans: ParseSpans(trimmed)}
	}
	return true
}

// Node returns the node produced by the last successful Scan.
func (s *Scanner) Node() Node {
	return s.cur
}

// scanCodeBlock consumes lines after an opening fence up to the closing
// fence, which is itself consumed but not emitted. A block with no closing
// fence extends to end of input.
func (s *Scanner) scanCodeBlock(opening string) CodeBlock {
	lang := strings.TrimSpace(strings.TrimPrefix(opening, "```"))
	if lang == "" {
		lang = "code"
	}

	var body []string
	for s.pos < len(s.lines) {
		if strings.TrimSpace(s.lines[s.pos]) == "```" {
			s.pos++
			break
		}
		body = append(body, s.lines[s.pos])
		s.pos++
	}
	return CodeBlock{Language: lang, Lines: body}
}

// Render returns all nodes of the given text in order.
func Render(text string) []Node {
	var nodes []Node
	sc := NewScanner(text)
	for sc.Scan() {
		nodes = append(nodes, sc.Node())
	}
	return nodes
}
