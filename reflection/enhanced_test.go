package reflection

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thelanternworks/inklight/analysis"
)

type stubReflector struct {
	out     RemoteReflection
	err     error
	prompts []string
}

func (s *stubReflector) Reflect(_ context.Context, prompt string) (RemoteReflection, error) {
	s.prompts = append(s.prompts, prompt)
	return s.out, s.err
}

func TestEnhancedUsesRemoteOutput(t *testing.T) {
	t.Parallel()

	stub := &stubReflector{out: RemoteReflection{
		Mirror:   "It sounds like the deadline has been running your week.",
		Question: "What would finishing actually change for you?",
		Nudges:   []string{"Step away for ten minutes.", "Write the next step down.", "Tell someone how close you are.", "A fourth one that should be dropped."},
	}}

	out := newTestEngine(1).Enhanced(context.Background(), stub, "The deadline is consuming everything this week.", analysis.UserMemory{})
	if out.Mode != ModeEnhanced {
		t.Fatalf("mode got=%v, want %v", out.Mode, ModeEnhanced)
	}
	if out.Mirror != stub.out.Mirror {
		t.Fatalf("mirror got=%q, want remote mirror", out.Mirror)
	}
	if len(out.Nudges) != 3 {
		t.Fatalf("nudges got=%d, want capped at 3", len(out.Nudges))
	}
	if len(stub.prompts) != 1 {
		t.Fatalf("remote called %d times, want 1", len(stub.prompts))
	}
}

func TestEnhancedFallsBackOnError(t *testing.T) {
	t.Parallel()

	stub := &stubReflector{err: errors.New("upstream unavailable")}
	out := newTestEngine(1).Enhanced(context.Background(), stub, "Work was brutal today and I can't switch off.", analysis.UserMemory{})
	if out.Mode != ModeLocal {
		t.Fatalf("mode got=%v, want %v after remote failure", out.Mode, ModeLocal)
	}
	if strings.TrimSpace(out.Mirror) == "" {
		t.Fatalf("fallback produced empty mirror")
	}
}

func TestEnhancedFallsBackOnEmptyMirror(t *testing.T) {
	t.Parallel()

	stub := &stubReflector{out: RemoteReflection{Mirror: "   "}}
	out := newTestEngine(1).Enhanced(context.Background(), stub, "Work was brutal today and I can't switch off.", analysis.UserMemory{})
	if out.Mode != ModeLocal {
		t.Fatalf("mode got=%v, want %v for blank remote mirror", out.Mode, ModeLocal)
	}
}

func TestEnhancedNilReflectorGoesLocal(t *testing.T) {
	t.Parallel()

	out := newTestEngine(1).Enhanced(context.Background(), nil, "Work was brutal today and I can't switch off.", analysis.UserMemory{})
	if out.Mode != ModeLocal {
		t.Fatalf("mode got=%v, want %v with nil reflector", out.Mode, ModeLocal)
	}
}

func TestEnhancedSkipsRemoteForFragmentsAndGuided(t *testing.T) {
	t.Parallel()

	stub := &stubReflector{out: RemoteReflection{Mirror: "should never be used"}}
	e := newTestEngine(1)

	e.Enhanced(context.Background(), stub, "ok", analysis.UserMemory{})
	e.Enhanced(context.Background(), stub, "Guided Session — unwind\nQ: Still on your mind?\nA: The deadline, mostly.", analysis.UserMemory{})

	if len(stub.prompts) != 0 {
		t.Fatalf("remote called %d times for inputs it should never see", len(stub.prompts))
	}
}

func TestEnhancedAppendsSafetyNoteToRemoteMirror(t *testing.T) {
	t.Parallel()

	stub := &stubReflector{out: RemoteReflection{Mirror: "That sounds like a very dark place to be writing from."}}
	text := "Everything is awful and some days I don't want to be here."
	out := newTestEngine(1).Enhanced(context.Background(), stub, text, analysis.UserMemory{})
	if out.Mode != ModeEnhanced {
		t.Fatalf("mode got=%v, want %v", out.Mode, ModeEnhanced)
	}
	if got := strings.Count(out.Mirror, crisisMarker); got != 1 {
		t.Fatalf("marker count got=%v, want 1 in %q", got, out.Mirror)
	}
}

func TestBuildReflectionPromptIncludesMemory(t *testing.T) {
	t.Parallel()

	memory := analysis.UserMemory{
		Coping: []string{"a walk", "music"},
		Wins:   []string{"finished the application"},
	}
	prompt := buildReflectionPrompt("Long day.", memory)
	if !strings.Contains(prompt, "Long day.") {
		t.Fatalf("prompt missing entry text: %q", prompt)
	}
	if !strings.Contains(prompt, "a walk; music") {
		t.Fatalf("prompt missing coping items: %q", prompt)
	}
	if !strings.Contains(prompt, "finished the application") {
		t.Fatalf("prompt missing wins: %q", prompt)
	}

	bare := buildReflectionPrompt("Long day.", analysis.UserMemory{})
	if strings.Contains(bare, "Remembered about the writer") {
		t.Fatalf("empty memory should not add a memory section: %q", bare)
	}
}

func TestBuildReflectionPromptIncludesDetectedContext(t *testing.T) {
	t.Parallel()

	text := "Work was awful today and I'm too tired to write much about it."
	prompt := buildReflectionPrompt(text, analysis.UserMemory{})
	if !strings.Contains(prompt, "- Tone: "+ToneNegative+"\n") {
		t.Fatalf("prompt missing tone line: %q", prompt)
	}
	if !strings.Contains(prompt, "- Topic: "+TopicWork+"\n") {
		t.Fatalf("prompt missing topic line: %q", prompt)
	}
	if !strings.Contains(prompt, "- Intent: too_tired_to_journal\n") {
		t.Fatalf("prompt missing intent line: %q", prompt)
	}

	plain := buildReflectionPrompt("Watered the plants and reorganized the garage shelves today.", analysis.UserMemory{})
	if !strings.Contains(plain, "- Tone: "+ToneNeutral+"\n") {
		t.Fatalf("prompt missing tone line: %q", plain)
	}
	if !strings.Contains(plain, "- Topic: "+TopicGeneral+"\n") {
		t.Fatalf("prompt missing topic line: %q", plain)
	}
	if strings.Contains(plain, "- Intent:") {
		t.Fatalf("no intent should be reported for plain prose: %q", plain)
	}
}
