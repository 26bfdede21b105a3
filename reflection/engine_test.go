package reflection

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/thelanternworks/inklight/analysis"
)

func newTestEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

func TestLocalNeverReturnsEmptyMirror(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"ok",
		"asdf!!",
		"Work was brutal today and I can't switch off.",
		"Had a lovely dinner with my partner, feeling grateful.",
		"I don't know where to start with any of this.",
		"whatever",
		"Guided Session — unwind\nQ: What's still on your mind?\nA: The deadline tomorrow, mostly.",
	}
	e := newTestEngine(7)
	for _, in := range inputs {
		out := e.Local(in, analysis.UserMemory{})
		if strings.TrimSpace(out.Mirror) == "" {
			t.Fatalf("empty mirror for input %q", in)
		}
		if out.Mode != ModeLocal {
			t.Fatalf("mode got=%v, want %v for input %q", out.Mode, ModeLocal, in)
		}
	}
}

func TestLocalIsDeterministicForFixedSeed(t *testing.T) {
	t.Parallel()

	text := "Work was brutal today and I can't switch off, the deadline is eating me alive."
	memory := analysis.UserMemory{Coping: []string{"a walk", "music"}}

	a := newTestEngine(99).Local(text, memory)
	b := newTestEngine(99).Local(text, memory)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed diverged:\n a=%+v\n b=%+v", a, b)
	}
}

func TestLocalFragmentGetsNeedMoreDetail(t *testing.T) {
	t.Parallel()

	out := newTestEngine(3).Local("ok", analysis.UserMemory{})
	if !containsString(needMoreDetail.openers, out.Mirror) {
		t.Fatalf("mirror %q not drawn from the need-more-detail pool", out.Mirror)
	}
	if out.Question == "" {
		t.Fatalf("expected a follow-up question for a thin entry")
	}
	if len(out.Nudges) != 0 {
		t.Fatalf("thin entries should not get nudges, got %v", out.Nudges)
	}
}

func TestLocalIntentBeatsTopicDispatch(t *testing.T) {
	t.Parallel()

	// Mentions work, but the where-to-start intent should win.
	text := "So much happened at work this week, I don't know where to start."
	var rule intentRule
	for _, r := range intentRules {
		if r.id == "where_to_start" {
			rule = r
			break
		}
	}
	if rule.id == "" {
		t.Fatalf("where_to_start rule missing")
	}
	out := newTestEngine(11).Local(text, analysis.UserMemory{})
	if !containsString(rule.pool.openers, out.Mirror) {
		t.Fatalf("mirror %q not drawn from the where_to_start pool", out.Mirror)
	}
}

func TestLocalDismissiveShutdownMatchesWholeLineOnly(t *testing.T) {
	t.Parallel()

	var rule intentRule
	for _, r := range intentRules {
		if r.id == "dismissive_shutdown" {
			rule = r
			break
		}
	}
	if !rule.re.MatchString("whatever") {
		t.Fatalf("bare dismissal should match")
	}
	if rule.re.MatchString("whatever happens tomorrow, I'm ready for it") {
		t.Fatalf("dismissal inside a sentence should not match")
	}
}

func TestLocalCrisisLanguageGetsSafetyNoteExactlyOnce(t *testing.T) {
	t.Parallel()

	text := "Everything is awful and some days I don't want to be here."
	for seed := int64(0); seed < 20; seed++ {
		out := newTestEngine(seed).Local(text, analysis.UserMemory{})
		if got := strings.Count(out.Mirror, crisisMarker); got != 1 {
			t.Fatalf("seed %d: marker count got=%v, want 1 in %q", seed, got, out.Mirror)
		}
	}
}

func TestLocalGuidedSessionUsesModePool(t *testing.T) {
	t.Parallel()

	transcript := strings.Join([]string{
		"Guided Session — small-win",
		"Q: What went right today?",
		"A: I finally sent the application I'd been sitting on.",
		"Q: What did it take?",
		"A: Mostly just deciding to stop polishing it.",
	}, "\n")

	out := newTestEngine(5).Local(transcript, analysis.UserMemory{})
	if !containsString(guidedPools["small-win"].openers, out.Mirror) {
		t.Fatalf("mirror %q not drawn from the small-win pool", out.Mirror)
	}
}

func TestLocalGuidedSessionAllPlaceholdersAsksForMore(t *testing.T) {
	t.Parallel()

	transcript := strings.Join([]string{
		"Guided Session — check-in",
		"Q: How are you doing today?",
		"A: .",
		"Q: Anything on your mind?",
		"A: a",
	}, "\n")

	out := newTestEngine(5).Local(transcript, analysis.UserMemory{})
	if !containsString(needMoreDetail.openers, out.Mirror) {
		t.Fatalf("mirror %q not drawn from the need-more-detail pool", out.Mirror)
	}
}

func TestLocalGuidedUnknownModeFallsBackToDefaultPool(t *testing.T) {
	t.Parallel()

	transcript := strings.Join([]string{
		"Guided Session — evening-review",
		"Q: How did the evening go?",
		"A: Quiet, made soup, read for an hour.",
	}, "\n")

	out := newTestEngine(8).Local(transcript, analysis.UserMemory{})
	if !containsString(guidedDefault.openers, out.Mirror) {
		t.Fatalf("mirror %q not drawn from the default guided pool", out.Mirror)
	}
}

func TestMemoryCallbackRespectsProbabilityWindow(t *testing.T) {
	t.Parallel()

	memory := analysis.UserMemory{Coping: []string{"a walk"}}
	text := "Too wound up tonight, might take a walk before bed."
	fires := 0
	const trials = 200
	for seed := int64(0); seed < trials; seed++ {
		e := newTestEngine(seed)
		if line := e.memoryCallback(callbackCoping, text, memory); line != "" {
			fires++
			if !strings.Contains(line, "a walk") {
				t.Fatalf("callback %q does not mention the remembered item", line)
			}
		}
	}
	if fires == 0 {
		t.Fatalf("callback never fired across %d seeds", trials)
	}
	if fires == trials {
		t.Fatalf("callback fired on every seed; expected it to stay occasional")
	}
}

func TestMemoryCallbackEmptyListIsSilent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(1)
	if line := e.memoryCallback(callbackWins, "any text", analysis.UserMemory{}); line != "" {
		t.Fatalf("got=%q, want empty", line)
	}
	if line := e.memoryCallback("", "any text", analysis.UserMemory{Wins: []string{"ran a 5k"}}); line != "" {
		t.Fatalf("got=%q, want empty for blank kind", line)
	}
}

func TestExtractAnchorIsShortAndRecased(t *testing.T) {
	t.Parallel()

	anchor := extractAnchor("Fine, I guess. I Had A Long Argument With My Mother About Money, And It Ruined The Whole Evening!")
	if anchor == "" {
		t.Fatalf("expected an anchor")
	}
	if words := strings.Fields(anchor); len(words) > 7 {
		t.Fatalf("anchor too long: %q", anchor)
	}
	if anchor != strings.ToLower(anchor) {
		t.Fatalf("anchor not re-cased: %q", anchor)
	}
	if strings.ContainsAny(anchor, ",.!?") {
		t.Fatalf("anchor carries punctuation: %q", anchor)
	}
}

func TestExtractAnchorEmptyForShortText(t *testing.T) {
	t.Parallel()

	if got := extractAnchor("hi."); got != "" {
		t.Fatalf("got=%q, want empty", got)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if strings.HasPrefix(s, v) {
			return true
		}
	}
	return false
}
