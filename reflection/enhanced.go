package reflection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thelanternworks/inklight/analysis"
)

const enhancedTimeout = 12 * time.Second

// Enhanced asks the remote reflector for a richer reflection and falls
// back to the local engine on any failure: nil reflector, timeout,
// transport error, or an unusable payload. The caller always gets a
// reflection; Mode records which path produced it.
func (e *Engine) Enhanced(ctx context.Context, remote RemoteReflector, text string, memory analysis.UserMemory) Output {
	trimmed := strings.TrimSpace(text)
	if remote == nil || LooksLikeFragment(trimmed) || analysis.IsGuidedTranscript(trimmed) {
		return e.Local(text, memory)
	}

	callCtx, cancel := context.WithTimeout(ctx, enhancedTimeout)
	defer cancel()

	ref, err := remote.Reflect(callCtx, buildReflectionPrompt(trimmed, memory))
	if err != nil || strings.TrimSpace(ref.Mirror) == "" {
		return e.Local(text, memory)
	}

	mirror := strings.TrimSpace(ref.Mirror)
	if HasCrisisLanguage(trimmed) {
		mirror = EnsureSafetyNote(mirror)
	}

	nudges := ref.Nudges
	if len(nudges) > 3 {
		nudges = nudges[:3]
	}
	return Output{
		Mirror:   mirror,
		Question: strings.TrimSpace(ref.Question),
		Nudges:   nudges,
		Mode:     ModeEnhanced,
	}
}

func buildReflectionPrompt(text string, memory analysis.UserMemory) string {
	var b strings.Builder
	b.WriteString("Journal entry:\n")
	b.WriteString(text)
	b.WriteString("\n")

	// The local classifiers run anyway for fallback, so their read of
	// the entry rides along to steer the remote model.
	b.WriteString("\nDetected context:\n")
	fmt.Fprintf(&b, "- Tone: %s\n", DetectTone(text))
	fmt.Fprintf(&b, "- Topic: %s\n", DetectTopic(text))
	if rule, ok := matchIntent(text); ok {
		fmt.Fprintf(&b, "- Intent: %s\n", rule.id)
	}

	if !memory.IsEmpty() {
		b.WriteString("\nRemembered about the writer:\n")
		writeMemoryLine(&b, "Things that help them", memory.Coping)
		writeMemoryLine(&b, "Things they enjoy", memory.Likes)
		writeMemoryLine(&b, "Recurring stressors", memory.Stressors)
		writeMemoryLine(&b, "Recent wins", memory.Wins)
	}
	return b.String()
}

func writeMemoryLine(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	// Keep the prompt small; the freshest few carry the signal.
	if len(items) > 4 {
		items = items[:4]
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(items, "; "))
}
