package analysis

import "time"

// Entry is one journal entry. CreatedAt is kept as the persisted RFC 3339
// string; entries with dates we cannot parse are skipped by the time-based
// builders rather than rejected.
type Entry struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Text      string `json:"text"`
}

// Time parses the entry's creation time. ok is false when the stored
// date is missing or malformed.
func (e Entry) Time() (t time.Time, ok bool) {
	if e.CreatedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, e.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UserMemory is the derived profile folded out of entry text. It is a cache:
// it can always be rebuilt from the entries via BuildMemoryFromEntries.
// Each list holds unique short phrases, most-recent-first, capped at MemoryListCap.
type UserMemory struct {
	Coping    []string  `json:"coping"`
	Likes     []string  `json:"likes"`
	Stressors []string  `json:"stressors"`
	Wins      []string  `json:"wins"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether the memory carries no extracted phrases at all.
func (m UserMemory) IsEmpty() bool {
	return len(m.Coping) == 0 && len(m.Likes) == 0 && len(m.Stressors) == 0 && len(m.Wins) == 0
}

// DayPoint is one calendar day in a mood timeline.
type DayPoint struct {
	DateKey string  `json:"date"`
	Day     string  `json:"day"`
	Avg     float64 `json:"avg"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
}

// Theme is one ranked topic bucket with a short generated summary.
// Themes are recomputed from scratch on every call; they carry no
// persisted identity.
type Theme struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Score    int      `json:"score"`
	Examples []string `json:"examples,omitempty"`

	// Summary is exactly two sentences: a general description of the
	// theme, then a personalized line built from matched signals and the
	// bucket's tone average. It paraphrases, never quotes.
	Summary string `json:"summary"`
}

// WeeklySummary is a short narrative over the last seven days of entries.
type WeeklySummary struct {
	Headline  string   `json:"headline"`
	Summary   string   `json:"summary"`
	ToneLabel string   `json:"tone_label"`
	Bullets   []string `json:"bullets,omitempty"`
}

// HelpItem is one "what helped" recommendation.
type HelpItem struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}
