package analysis

import (
	"strings"
	"testing"
	"time"
)

func entryAt(t *testing.T, daysAgo int, text string) Entry {
	t.Helper()
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	return Entry{ID: "e", CreatedAt: created.Format(time.RFC3339), Text: text}
}

func TestExtractThemes_WorkPressure(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		entryAt(t, 0, "back to back meetings and a deadline, no time"),
		entryAt(t, 1, "client pressure is stressing me out"),
	}
	themes := ExtractThemes(entries, 3)
	if len(themes) == 0 {
		t.Fatalf("ExtractThemes returned no themes")
	}
	found := false
	for _, th := range themes {
		if th.ID == "work" {
			found = true
			if th.Score <= 0 {
				t.Fatalf("work theme score=%d, want > 0", th.Score)
			}
			if len(th.Examples) == 0 || len(th.Examples) > 2 {
				t.Fatalf("len(Examples)=%d, want 1..2", len(th.Examples))
			}
		}
	}
	if !found {
		t.Fatalf("themes=%v, want one with id \"work\"", themeIDs(themes))
	}
}

func TestExtractThemes_SummaryIsTwoSentences(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		entryAt(t, 0, "my manager moved the deadline again and I am exhausted"),
	}
	themes := ExtractThemes(entries, 2)
	for _, th := range themes {
		n := strings.Count(th.Summary, ".")
		if n != 2 {
			t.Fatalf("theme %s summary has %d sentences: %q", th.ID, n, th.Summary)
		}
		// Summaries paraphrase, never quote the user.
		if strings.Contains(strings.ToLower(th.Summary), "moved the deadline again") {
			t.Fatalf("theme %s summary quotes entry text: %q", th.ID, th.Summary)
		}
	}
}

func TestExtractThemes_IdiomExclusions(t *testing.T) {
	t.Parallel()

	// "work things out" is a relationship idiom, not the work topic; a
	// client call is work, not a relationships call.
	entries := []Entry{
		entryAt(t, 0, "trying to work things out with my sister"),
		entryAt(t, 1, "the client call ran long today"),
	}
	themes := ExtractThemes(entries, len(themeCatalog))

	scores := map[string]int{}
	for _, th := range themes {
		scores[th.ID] = th.Score
	}
	// The relationships bucket should see "sister" but not "client call".
	if scores["relationships"] != 1 {
		t.Fatalf("relationships score=%d, want 1 (sister only)", scores["relationships"])
	}
	// The work bucket should see "client" but not "work things out".
	if scores["work"] != 1 {
		t.Fatalf("work score=%d, want 1 (client only)", scores["work"])
	}
}

func TestExtractThemes_TopKAndOrdering(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		entryAt(t, 0, "meetings meetings meetings deadline boss office"),
		entryAt(t, 1, "rent is due and the bills piled up"),
		entryAt(t, 2, "slept badly, tired all day"),
	}
	themes := ExtractThemes(entries, 2)
	if len(themes) != 2 {
		t.Fatalf("len(themes)=%d, want 2", len(themes))
	}
	if themes[0].Score < themes[1].Score {
		t.Fatalf("themes not sorted by score: %d < %d", themes[0].Score, themes[1].Score)
	}
	if themes[0].ID != "work" {
		t.Fatalf("top theme=%s, want work", themes[0].ID)
	}
}

func TestExtractThemes_NoEntries(t *testing.T) {
	t.Parallel()

	if got := ExtractThemes(nil, 3); got != nil {
		t.Fatalf("ExtractThemes(nil)=%v, want nil", got)
	}
}

func themeIDs(themes []Theme) []string {
	ids := make([]string, len(themes))
	for i, th := range themes {
		ids[i] = th.ID
	}
	return ids
}
