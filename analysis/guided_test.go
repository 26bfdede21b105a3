package analysis

import (
	"testing"
)

func TestGuidedTranscript_RoundTrip(t *testing.T) {
	t.Parallel()

	pairs := []GuidedQA{
		{Question: "What's sitting with you right now?", Answer: "mostly the meeting tomorrow"},
		{Question: "What would make tonight feel lighter?", Answer: "an early night and some tea"},
	}
	transcript := BuildGuidedTranscript("Unwind", pairs)

	session, ok := ParseGuidedTranscript(transcript)
	if !ok {
		t.Fatalf("ParseGuidedTranscript did not recognize built transcript:\n%s", transcript)
	}
	if session.Mode != "Unwind" {
		t.Fatalf("mode=%q, want Unwind", session.Mode)
	}
	if len(session.Pairs) != len(pairs) {
		t.Fatalf("len(pairs)=%d, want %d", len(session.Pairs), len(pairs))
	}
	for i := range pairs {
		if session.Pairs[i].Question != pairs[i].Question {
			t.Fatalf("pair %d question=%q, want %q", i, session.Pairs[i].Question, pairs[i].Question)
		}
		if session.Pairs[i].Answer != pairs[i].Answer {
			t.Fatalf("pair %d answer=%q, want %q", i, session.Pairs[i].Answer, pairs[i].Answer)
		}
	}
}

func TestParseGuidedTranscript_MultilineAnswer(t *testing.T) {
	t.Parallel()

	text := "Guided Session — Check-in\n\nQ: How was today?\nA: long day\nbut it ended fine\n"
	session, ok := ParseGuidedTranscript(text)
	if !ok {
		t.Fatalf("transcript not recognized")
	}
	if got := session.Pairs[0].Answer; got != "long day but it ended fine" {
		t.Fatalf("answer=%q, want folded continuation", got)
	}
}

func TestIsGuidedTranscript(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want bool
	}{
		{"Guided Session — Unwind\nQ: x\nA: y", true},
		{"guided session - small win\nQ: x\nA: y", true},
		{"Today was a guided session at the gym", false},
		{"just a normal entry", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsGuidedTranscript(tc.text); got != tc.want {
			t.Fatalf("IsGuidedTranscript(%q)=%v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestGuidedAnswersText_NonTranscriptPassthrough(t *testing.T) {
	t.Parallel()

	in := "an ordinary entry about the day"
	if got := GuidedAnswersText(in); got != in {
		t.Fatalf("GuidedAnswersText(%q)=%q, want passthrough", in, got)
	}
}
