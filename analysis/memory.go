package analysis

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// MemoryListCap bounds each memory list: unique phrases, most-recent-first.
const MemoryListCap = 12

// memoryEntryWindow bounds the replay in BuildMemoryFromEntries to the
// most recent entries.
const memoryEntryWindow = 40

// copingPattern maps a canonical phrase to the free-text forms that count
// as a mention of it.
type copingPattern struct {
	canonical string
	pattern   *regexp.Regexp
}

var copingPatterns = []copingPattern{
	{"a walk", regexp.MustCompile(`\b(went for a walk|go(?:ing)? for a walk|took a walk|walked (?:around|outside|to))\b`)},
	{"exercise", regexp.MustCompile(`\b(work(?:ed|ing)? out|exercis\w+|gym|yoga|a run|went running|jogging|lifted)\b`)},
	{"music", regexp.MustCompile(`\b(listen\w* to music|put on (?:some )?music|a playlist|my headphones)\b`)},
	{"a bath or shower", regexp.MustCompile(`\b(took a (?:bath|shower)|long (?:bath|shower)|hot (?:bath|shower))\b`)},
	{"sleep", regexp.MustCompile(`\b(a nap|napped|slept (?:it off|early|in)|went to bed early|early night)\b`)},
	{"breathing or meditation", regexp.MustCompile(`\b(breath(?:ing)? exercis\w+|deep breaths?|meditat\w+|mindfulness)\b`)},
	{"reading", regexp.MustCompile(`\b(read(?:ing)? (?:a|my) book|curled up with a book|read for a (?:bit|while))\b`)},
	{"talking to someone", regexp.MustCompile(`\b(called (?:a|my) friend|talked (?:to|with) \w+|texted \w+|vented to)\b`)},
	{"coffee/tea", regexp.MustCompile(`\b(a cup of (?:coffee|tea)|made (?:some )?(?:coffee|tea)|warm drink)\b`)},
}

var likeRe = regexp.MustCompile(`\bi (?:really )?(?:enjoy|like|love)\s+([a-z0-9][a-z0-9' -]{2,40})`)

var stressorRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:stressed|worried|anxious)\s+about\s+([a-z0-9][a-z0-9' -]{2,40})`),
	regexp.MustCompile(`\bit stresses me out when\s+([a-z0-9][a-z0-9' -]{2,40})`),
}

var winRes = []*regexp.Regexp{
	regexp.MustCompile(`\bproud of\s+([a-z0-9][a-z0-9' -]{2,40})`),
	regexp.MustCompile(`\b([a-z0-9][a-z0-9' -]{2,40}?)\s+went (?:really |surprisingly )?well\b`),
	regexp.MustCompile(`\bsmall win\s+([a-z0-9][a-z0-9' -]{2,40})`),
	regexp.MustCompile(`\bi managed to\s+([a-z0-9][a-z0-9' -]{2,40})`),
	regexp.MustCompile(`\bi did\s+([a-z0-9][a-z0-9' -]{2,40})`),
}

// ExtractMemoryFromText scans one entry's text and folds any coping, like,
// stressor, or win mentions into a copy of prev. Guided-session
// transcripts are reduced to the user's own answers first.
func ExtractMemoryFromText(text string, prev UserMemory, now time.Time) UserMemory {
	if IsGuidedTranscript(text) {
		text = GuidedAnswersText(text)
	}
	// Lowercase but keep punctuation: the capture groups rely on commas
	// and periods to stop at clause boundaries.
	lower := strings.ToLower(text)

	next := UserMemory{
		Coping:    append([]string(nil), prev.Coping...),
		Likes:     append([]string(nil), prev.Likes...),
		Stressors: append([]string(nil), prev.Stressors...),
		Wins:      append([]string(nil), prev.Wins...),
		UpdatedAt: now,
	}

	for _, cp := range copingPatterns {
		if cp.pattern.MatchString(lower) {
			next.Coping = pushFront(next.Coping, cp.canonical, MemoryListCap)
		}
	}

	if m := likeRe.FindStringSubmatch(lower); m != nil {
		next.Likes = pushFront(next.Likes, trimCapture(m[1]), MemoryListCap)
	}
	for _, re := range stressorRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			next.Stressors = pushFront(next.Stressors, trimCapture(m[1]), MemoryListCap)
			break
		}
	}
	for _, re := range winRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			win := trimCapture(m[1])
			if negatedCapture(win) {
				continue
			}
			next.Wins = pushFront(next.Wins, win, MemoryListCap)
			break
		}
	}
	return next
}

// negatedCapture reports whether a win capture is actually a negation,
// as in "i did not sleep" or "i did nothing all day".
func negatedCapture(s string) bool {
	if s == "not" || s == "nothing" || s == "no" {
		return true
	}
	return strings.HasPrefix(s, "not ") || strings.HasPrefix(s, "nothing ") || strings.HasPrefix(s, "no ")
}

// BuildMemoryFromEntries rebuilds the memory from scratch by replaying the
// most recent entries through ExtractMemoryFromText, oldest first within
// the window so the newest mentions end up at the head of each list. The
// result is deterministic for a given entry list and clock.
func BuildMemoryFromEntries(entries []Entry, now time.Time) UserMemory {
	recent := recentEntries(entries, memoryEntryWindow)

	// recentEntries is newest-first; replay oldest-first.
	sort.SliceStable(recent, func(i, j int) bool {
		ti, iok := recent[i].Time()
		tj, jok := recent[j].Time()
		if iok != jok {
			return !iok
		}
		if !iok {
			return false
		}
		return ti.Before(tj)
	})

	memory := UserMemory{UpdatedAt: now}
	for _, e := range recent {
		memory = ExtractMemoryFromText(e.Text, memory, now)
	}
	return memory
}

// trimCapture tidies a regex capture: trims filler tails like trailing
// conjunctions and stray hyphens.
func trimCapture(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "-' ")
	for _, tail := range []string{" and", " but", " so", " because", " the", " a", " my"} {
		s = strings.TrimSuffix(s, tail)
	}
	return strings.TrimSpace(s)
}
