package markdown

import "strings"

type SpanKind int

const (
	SpanText SpanKind = iota
	SpanStrong
	SpanCode
)

// Span is a piece of inline content. Text is set for SpanText and SpanCode;
// a SpanStrong carries its un-starred content as Children (text and code
// spans only).
type Span struct {
	Kind     SpanKind
	Text     string
	Children []Span
}

// ParseSpans splits heading-free line content into text, strong and inline
// code spans. Code spans are matched before bold so a `**` inside backticks
// never opens a bold run, and bold content is scanned for embedded inline
// code. Unmatched delimiters fall through as literal text.
func ParseSpans(text string) []Span {
	var spans []Span
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "**") {
			if inner, rest, ok := cutBold(text[i+2:]); ok {
				flush()
				spans = append(spans, Span{Kind: SpanStrong, Children: parseCodeSpans(inner)})
				i = len(text) - len(rest)
				continue
			}
		}
		if text[i] == '`' {
			if inner, rest, ok := cutCode(text[i+1:]); ok {
				flush()
				spans = append(spans, Span{Kind: SpanCode, Text: inner})
				i = len(text) - len(rest)
				continue
			}
		}
		lit.WriteByte(text[i])
		i++
	}
	flush()
	return spans
}

// cutBold finds the closing "**" for an already-consumed opener. The content
// must be non-empty and star-free, matching the original `**[^*]+**` rule.
func cutBold(s string) (inner, rest string, ok bool) {
	end := strings.Index(s, "**")
	if end <= 0 {
		return "", "", false
	}
	inner = s[:end]
	if strings.Contains(inner, "*") {
		return "", "", false
	}
	return inner, s[end+2:], true
}

// cutCode finds the closing backtick for an already-consumed opener. The
// content must be non-empty.
func cutCode(s string) (inner, rest string, ok bool) {
	end := strings.IndexByte(s, '`')
	if end <= 0 {
		return "", "", false
	}
	return s[:end], s[end+1:], true
}

// parseCodeSpans handles the inside of a bold run, where only inline code is
// recognized.
func parseCodeSpans(text string) []Span {
	var spans []Span
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		if text[i] == '`' {
			if inner, rest, ok := cutCode(text[i+1:]); ok {
				flush()
				spans = append(spans, Span{Kind: SpanCode, Text: inner})
				i = len(text) - len(rest)
				continue
			}
		}
		lit.WriteByte(text[i])
		i++
	}
	flush()
	return spans
}
