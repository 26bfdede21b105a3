package analysis

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"it's a so-so day...", "it's a so-so day"},
		{"  spaced\t\tout\n\nlines  ", "spaced out lines"},
		{"", ""},
		{"CAPS AND lower", "caps and lower"},
	}
	for _, tc := range cases {
		if got := NormalizeText(tc.in); got != tc.want {
			t.Fatalf("NormalizeText(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSnippet_TruncatesOnWordBoundary(t *testing.T) {
	t.Parallel()

	in := "a fairly long sentence that should be cut somewhere sensible"
	got := Snippet(in, 20)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("Snippet=%q, want ellipsis suffix", got)
	}
	if len(got) > 25 {
		t.Fatalf("Snippet=%q too long", got)
	}
	if got := Snippet("short", 20); got != "short" {
		t.Fatalf("Snippet(short)=%q, want unchanged", got)
	}
}

func TestPushFront(t *testing.T) {
	t.Parallel()

	list := []string{"b", "c"}
	list = pushFront(list, "a", 3)
	if list[0] != "a" || len(list) != 3 {
		t.Fatalf("list=%v, want a first, len 3", list)
	}
	// Case-insensitive dedupe moves the item to the head.
	list = pushFront(list, "C", 3)
	if list[0] != "C" || len(list) != 3 {
		t.Fatalf("list=%v, want C moved to head without growth", list)
	}
	// Cap trims the oldest.
	list = pushFront(list, "d", 3)
	if len(list) != 3 || list[0] != "d" {
		t.Fatalf("list=%v, want capped at 3 with d first", list)
	}
}

func TestCountOccurrences_WordBoundaries(t *testing.T) {
	t.Parallel()

	norm := "no time today and no time tomorrow but overtime pay"
	if got := countOccurrences(norm, "no time"); got != 2 {
		t.Fatalf("countOccurrences=%d, want 2", got)
	}
	// "overtime" must not count as "time".
	if got := countOccurrences(norm, "time"); got != 2 {
		t.Fatalf("countOccurrences(time)=%d, want 2", got)
	}
}

func TestSentenceSimilarity(t *testing.T) {
	t.Parallel()

	if got := sentenceSimilarity("the same words here", "the same words here"); got != 1 {
		t.Fatalf("identical sentences similarity=%v, want 1", got)
	}
	if got := sentenceSimilarity("alpha beta gamma", "delta epsilon zeta"); got != 0 {
		t.Fatalf("disjoint sentences similarity=%v, want 0", got)
	}
}
