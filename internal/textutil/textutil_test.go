package textutil

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain passes through", in: "hello world", want: "hello world"},
		{name: "smart quotes folded", in: "“quoted” and ‘single’", want: `"quoted" and 'single'`},
		{name: "dashes folded", in: "a – b — c", want: "a - b - c"},
		{name: "symbols expanded", in: "Acme® Widget™ ©2026", want: "Acme(R) Widget(TM) (c)2026"},
		{name: "bullet folded", in: "• item", want: "* item"},
		{name: "whitespace collapsed", in: "a \t b\n\nc", want: "a b c"},
		{name: "nonbreaking space", in: "a b", want: "a b"},
		{name: "control chars stripped", in: "a\x00b\x07c", want: "abc"},
		{name: "surrounding space trimmed", in: "  padded  ", want: "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChunkShortText(t *testing.T) {
	t.Parallel()

	chunks := Chunk("short text")
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Errorf("Chunk = %+v, want single untouched piece", chunks)
	}
}

func TestChunkLongText(t *testing.T) {
	t.Parallel()

	word := strings.Repeat("x", 10)
	long := strings.TrimSpace(strings.Repeat(word+" ", 500)) // ~5500 chars

	chunks := Chunk(long)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want text split over MaxChunk", len(chunks))
	}

	var total int
	for i, c := range chunks {
		if len(c) > MaxChunk {
			t.Errorf("chunk %d length %d exceeds MaxChunk", i, len(c))
		}
		if strings.HasPrefix(c, " ") || strings.HasSuffix(c, " ") {
			t.Errorf("chunk %d has leading or trailing space: %q", i, c[:10])
		}
		total += len(strings.Fields(c))
	}
	if want := len(strings.Fields(long)); total != want {
		t.Errorf("chunks hold %d words, want %d (no words dropped)", total, want)
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	got := Lines("first\n\n  second  \n\t\nthird")
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("Lines = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesEmpty(t *testing.T) {
	t.Parallel()

	if got := Lines("\n\n  \n"); got != nil {
		t.Errorf("Lines on blank input = %+v, want nil", got)
	}
}
