package markdown

import (
	"reflect"
	"testing"
)

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Node
	}{
		{"level 1", "# Introduction", Heading{Level: 1, Text: "Introduction"}},
		{"level 2", "## Core Concepts", Heading{Level: 2, Text: "Core Concepts"}},
		{"level 3", "### Example", Heading{Level: 3, Text: "Example"}},
		{"indented heading", "   # Trimmed", Heading{Level: 1, Text: "Trimmed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := Render(tt.input)
			if len(nodes) != 1 {
				t.Fatalf("Render(%q) produced %d nodes, want 1", tt.input, len(nodes))
			}
			if !reflect.DeepEqual(nodes[0], tt.want) {
				t.Errorf("Render(%q) = %#v, want %#v", tt.input, nodes[0], tt.want)
			}
		})
	}
}

func TestRenderHashWithoutSpaceIsParagraph(t *testing.T) {
	nodes := Render("#NoSpace")
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	if _, ok := nodes[0].(Paragraph); !ok {
		t.Errorf("got %#v, want Paragraph", nodes[0])
	}
}

func TestRenderCodeBlock(t *testing.T) {
	input := "```javascript\nconst x = 1;\nconsole.log(x);\n```\nafter"
	nodes := Render(input)

	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2: %#v", len(nodes), nodes)
	}

	block, ok := nodes[0].(CodeBlock)
	if !ok {
		t.Fatalf("first node is %#v, want CodeBlock", nodes[0])
	}
	if block.Language != "javascript" {
		t.Errorf("language = %q, want %q", block.Language, "javascript")
	}
	want := []string{"const x = 1;", "console.log(x);"}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Errorf("lines = %v, want %v", block.Lines, want)
	}

	// The closing fence is consumed, not emitted as a new block.
	if _, ok := nodes[1].(Paragraph); !ok {
		t.Errorf("second node is %#v, want Paragraph", nodes[1])
	}
}

func TestRenderCodeBlockDefaultLanguage(t *testing.T) {
	nodes := Render("```\nx\n```")
	block := nodes[0].(CodeBlock)
	if block.Language != "code" {
		t.Errorf("language = %q, want %q", block.Language, "code")
	}
}

func TestRenderUnterminatedCodeBlock(t *testing.T) {
	nodes := Render("```go\nfmt.Println(1)\nfmt.Println(2)")
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1: %#v", len(nodes), nodes)
	}
	block := nodes[0].(CodeBlock)
	want := []string{"fmt.Println(1)", "fmt.Println(2)"}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Errorf("lines = %v, want %v", block.Lines, want)
	}
}

func TestRenderAdjacentCodeBlocks(t *testing.T) {
	nodes := Render("```\na\n```\n```\nb\n```")
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2: %#v", len(nodes), nodes)
	}
	first := nodes[0].(CodeBlock)
	second := nodes[1].(CodeBlock)
	if !reflect.DeepEqual(first.Lines, []string{"a"}) || !reflect.DeepEqual(second.Lines, []string{"b"}) {
		t.Errorf("blocks = %v / %v", first.Lines, second.Lines)
	}
}

func TestRenderListAndBlank(t *testing.T) {
	nodes := Render("- first item\n\n- second item")
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	if _, ok := nodes[0].(ListItem); !ok {
		t.Errorf("node 0 is %#v, want ListItem", nodes[0])
	}
	if _, ok := nodes[1].(Blank); !ok {
		t.Errorf("node 1 is %#v, want Blank", nodes[1])
	}
	if _, ok := nodes[2].(ListItem); !ok {
		t.Errorf("node 2 is %#v, want ListItem", nodes[2])
	}
}

func TestScannerSinglePass(t *testing.T) {
	sc := NewScanner("# Title\ntext")
	var count int
	for sc.Scan() {
		count++
	}
	if count != 2 {
		t.Errorf("scanned %d nodes, want 2", count)
	}
	// Exhausted scanner stays exhausted.
	if sc.Scan() {
		t.Error("Scan returned true after end of input")
	}
}

func TestParseSpansPlain(t *testing.T) {
	spans := ParseSpans("just text")
	want := []Span{{Kind: SpanText, Text: "just text"}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %#v, want %#v", spans, want)
	}
}

func TestParseSpansBoldAndCode(t *testing.T) {
	spans := ParseSpans("Use **bold** and `code` here")
	want := []Span{
		{Kind: SpanText, Text: "Use "},
		{Kind: SpanStrong, Children: []Span{{Kind: SpanText, Text: "bold"}}},
		{Kind: SpanText, Text: " and "},
		{Kind: SpanCode, Text: "code"},
		{Kind: SpanText, Text: " here"},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %#v, want %#v", spans, want)
	}
}

func TestParseSpansCodeWinsInsideBackticks(t *testing.T) {
	// The ** inside a code span must not open a bold run.
	spans := ParseSpans("`a ** b` tail")
	want := []Span{
		{Kind: SpanCode, Text: "a ** b"},
		{Kind: SpanText, Text: " tail"},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %#v, want %#v", spans, want)
	}
}

func TestParseSpansCodeInsideBold(t *testing.T) {
	spans := ParseSpans("**call `len` often**")
	want := []Span{
		{Kind: SpanStrong, Children: []Span{
			{Kind: SpanText, Text: "call "},
			{Kind: SpanCode, Text: "len"},
			{Kind: SpanText, Text: " often"},
		}},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %#v, want %#v", spans, want)
	}
}

func TestParseSpansUnmatchedDelimiters(t *testing.T) {
	tests := []struct {
		input string
		want  []Span
	}{
		{"**never closed", []Span{{Kind: SpanText, Text: "**never closed"}}},
		{"`never closed", []Span{{Kind: SpanText, Text: "`never closed"}}},
		{"****", []Span{{Kind: SpanText, Text: "****"}}},
		{"``", []Span{{Kind: SpanText, Text: "``"}}},
	}
	for _, tt := range tests {
		spans := ParseSpans(tt.input)
		if !reflect.DeepEqual(spans, tt.want) {
			t.Errorf("ParseSpans(%q) = %#v, want %#v", tt.input, spans, tt.want)
		}
	}
}

func TestParseSpansEmpty(t *testing.T) {
	if spans := ParseSpans(""); len(spans) != 0 {
		t.Errorf("ParseSpans(\"\") = %#v, want none", spans)
	}
}
