package analysis

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"
)

var weeklyHeadlines = map[string][]string{
	LabelVeryLow: {
		"A heavy week, held anyway",
		"This week asked a lot of you",
	},
	LabelLow: {
		"A rough stretch, written down",
		"This week ran uphill",
	},
	LabelMixed: {
		"A week of both",
		"Ups and downs, on the record",
	},
	LabelSteady: {
		"A steady week",
		"An even-keeled stretch",
	},
	LabelGood: {
		"A week with wind at your back",
		"More good days than not",
	},
	LabelVeryGood: {
		"A genuinely good week",
		"A week worth re-reading",
	},
}

var weeklyToneFrames = map[string][]string{
	LabelVeryLow: {
		"The overall tone ran very low, and getting the days onto the page at all counts for something.",
		"Taken together the week reads as very heavy, which makes the act of writing it down its own small steadiness.",
	},
	LabelLow: {
		"The overall tone leaned low this week.",
		"Taken together the days tilted toward the hard side.",
	},
	LabelMixed: {
		"The tone swung between harder and lighter days without settling.",
		"The week reads as genuinely mixed, neither weight nor lift winning out.",
	},
	LabelSteady: {
		"The tone held fairly steady across the week.",
		"Day to day the week reads even, without big swings either way.",
	},
	LabelGood: {
		"The overall tone leaned warm this week.",
		"More entries landed on the lighter side than not.",
	},
	LabelVeryGood: {
		"The tone ran notably bright across the week.",
		"The week reads as strong nearly everywhere you wrote.",
	},
}

// BuildWeeklySummary combines the last seven days of entries with ranked
// themes and the mood timeline into a short deduplicated narrative.
// Headline and phrasing choices are hash-stable: identical inputs always
// produce identical output.
func BuildWeeklySummary(entries []Entry, themes []Theme, timeline []DayPoint, now time.Time) WeeklySummary {
	week := entriesWithin(entries, now, 7*24*time.Hour)

	var mean float64
	if len(week) > 0 {
		for _, e := range week {
			mean += ScoreSentiment(e.Text)
		}
		mean /= float64(len(week))
	}
	toneLabel := SentimentLabel(mean)

	topTheme := ""
	if len(themes) > 0 {
		topTheme = themes[0].ID
	}
	seed := stableSeed(topTheme, toneLabel, len(week))

	headline := pickStable(weeklyHeadlines[toneLabel], seed)
	if headline == "" {
		headline = "Your week, in review"
	}

	var sentences []string
	switch {
	case len(themes) >= 2:
		sentences = append(sentences, fmt.Sprintf(
			"%s and %s carried most of the week's weight in your writing.",
			themes[0].Label, strings.ToLower(themes[1].Label)))
	case len(themes) == 1:
		sentences = append(sentences, fmt.Sprintf(
			"%s was the clearest thread running through the week.", themes[0].Label))
	case len(week) > 0:
		sentences = append(sentences, "No single theme dominated the week's entries.")
	default:
		sentences = append(sentences, "No entries landed this week, so there's not much to read back yet.")
	}

	if signals := weekSignals(week); len(signals) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Phrases like %s kept surfacing, which usually points at schedule pressure more than mood.",
			quoteList(signals, 3)))
	}

	if len(week) > 0 {
		sentences = append(sentences, pickStable(weeklyToneFrames[toneLabel], seed))
	}

	sentences = dedupeSentences(sentences)

	bullets := []string{
		fmt.Sprintf("You wrote on %d of the last 7 days.", distinctDays(week)),
	}
	if len(themes) >= 3 {
		bullets = append(bullets, fmt.Sprintf("%s also showed up, further down the list.", themes[2].Label))
	}

	return WeeklySummary{
		Headline:  headline,
		Summary:   strings.Join(sentences, " "),
		ToneLabel: toneLabel,
		Bullets:   bullets,
	}
}

func stableSeed(topTheme, toneLabel string, entryCount int) uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%d", topTheme, toneLabel, entryCount)
	return h.Sum32()
}

func pickStable(options []string, seed uint32) string {
	if len(options) == 0 {
		return ""
	}
	return options[int(seed)%len(options)]
}

func entriesWithin(entries []Entry, now time.Time, window time.Duration) []Entry {
	cutoff := now.Add(-window)
	var out []Entry
	for _, e := range entries {
		t, ok := e.Time()
		if !ok {
			continue
		}
		if t.After(cutoff) && !t.After(now) {
			out = append(out, e)
		}
	}
	return out
}

func distinctDays(entries []Entry) int {
	days := make(map[string]struct{})
	for _, e := range entries {
		t, ok := e.Time()
		if !ok {
			continue
		}
		days[t.Format(dateKeyLayout)] = struct{}{}
	}
	return len(days)
}

// weekSignals gathers the distinct load-signal phrases across a week of
// entries.
func weekSignals(entries []Entry) []string {
	var all []string
	for _, e := range entries {
		phrases, _ := LoadSignalMatches(e.Text)
		all = append(all, phrases...)
	}
	return dedupeStrings(all)
}

func quoteList(items []string, max int) string {
	if max > 0 && len(items) > max {
		items = items[:max]
	}
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "“" + s + "”"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
	}
}
