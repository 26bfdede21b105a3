package reflection

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/thelanternworks/inklight/analysis"
)

// Engine produces reflections on journal entries. All phrasing choices
// draw from the injected source, so a fixed seed yields fixed output.
// The mutex serializes draws; rand.Rand is not safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{rng: rng}
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func (e *Engine) float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) perm(n int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Perm(n)
}

// Local produces a reflection without any network dependency. It never
// returns an error and never rejects an entry.
func (e *Engine) Local(text string, memory analysis.UserMemory) Output {
	trimmed := strings.TrimSpace(text)

	if analysis.IsGuidedTranscript(trimmed) {
		return e.reflectGuided(trimmed, memory)
	}

	if LooksLikeFragment(trimmed) {
		out := e.compose(needMoreDetail, trimmed, analysis.UserMemory{})
		out.Mode = ModeLocal
		return out
	}

	var chosen pool
	rule, matched := matchIntent(trimmed)
	if matched {
		chosen = rule.pool
	} else {
		topic := DetectTopic(trimmed)
		tone := DetectTone(trimmed)
		var ok bool
		chosen, ok = topicPools[poolKey{topic, tone}]
		if !ok {
			chosen = topicPools[poolKey{TopicGeneral, tone}]
		}
	}

	out := e.compose(chosen, trimmed, memory)
	out.Mode = ModeLocal
	return out
}

// matchIntent returns the first intent rule the text triggers, in the
// same priority order the local dispatch uses.
func matchIntent(text string) (intentRule, bool) {
	for _, rule := range intentRules {
		if rule.re.MatchString(text) {
			return rule, true
		}
	}
	return intentRule{}, false
}

func (e *Engine) reflectGuided(text string, memory analysis.UserMemory) Output {
	session, ok := analysis.ParseGuidedTranscript(text)
	if !ok {
		// Header matched but the body didn't parse; treat as prose.
		return e.Local(analysis.GuidedAnswersText(text), memory)
	}
	answered := 0
	for _, qa := range session.Pairs {
		if !looksLikePlaceholder(qa.Answer) {
			answered++
		}
	}
	if answered == 0 {
		out := e.compose(needMoreDetail, "", analysis.UserMemory{})
		out.Mode = ModeLocal
		return out
	}

	p, found := guidedPools[strings.ToLower(session.Mode)]
	if !found {
		p = guidedDefault
	}
	answers := analysis.GuidedAnswersText(text)
	out := e.compose(p, answers, memory)
	out.Mode = ModeLocal
	return out
}

func (e *Engine) compose(p pool, text string, memory analysis.UserMemory) Output {
	parts := []string{e.pick(p.openers)}

	if p.useAnchor {
		if anchor := extractAnchor(text); anchor != "" {
			parts = append(parts, fmt.Sprintf(e.pick(anchorTemplates), anchor))
		}
	}

	if line := e.memoryCallback(p.callback, text, memory); line != "" {
		parts = append(parts, line)
	}

	mirror := strings.Join(parts, " ")
	if HasCrisisLanguage(text) {
		mirror = EnsureSafetyNote(mirror)
	}

	out := Output{Mirror: mirror}
	if len(p.followups) > 0 {
		out.Question = e.pick(p.followups)
	}
	if len(p.nudges) > 0 {
		n := 1
		if len(p.nudges) > 1 && e.intn(2) == 0 {
			n = 2
		}
		idx := e.perm(len(p.nudges))[:n]
		for _, i := range idx {
			out.Nudges = append(out.Nudges, p.nudges[i])
		}
	}
	return out
}

func (e *Engine) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[e.intn(len(options))]
}

var anchorTemplates = []string{
	"The part about %q sounds like it's carrying most of the weight here.",
	"It's the bit about %q that seems to be at the center of this.",
	"Reading this back, %q is the phrase doing the heavy lifting.",
}

var anchorStripRe = regexp.MustCompile(`[^a-z0-9' ]+`)

// extractAnchor pulls a short, re-cased fragment from the entry so the
// reflection can point back at the writer's own words without echoing
// a whole sentence.
func extractAnchor(text string) string {
	sentences := splitSentences(text)
	best := ""
	for _, s := range sentences {
		words := strings.Fields(s)
		if len(words) < 4 {
			continue
		}
		if len(words) > len(strings.Fields(best)) {
			best = s
		}
	}
	if best == "" {
		return ""
	}
	words := strings.Fields(strings.ToLower(best))
	if len(words) > 7 {
		words = words[len(words)-7:]
	}
	anchor := anchorStripRe.ReplaceAllString(strings.Join(words, " "), "")
	anchor = strings.TrimSpace(anchor)
	if anchor == "" || len(strings.Fields(anchor)) < 3 {
		return ""
	}
	return anchor
}

func splitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			s := strings.TrimSpace(text[start:i])
			if s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

var callbackTemplates = map[string][]string{
	callbackCoping: {
		"Last time things felt like this, %s seemed to help — might be worth reaching for again.",
		"You've mentioned before that %s helps you reset. Tonight could be one of those nights.",
	},
	callbackWins: {
		"Worth remembering: not long ago you wrote about %s. That's still true about you.",
		"For the record, the person who managed %s is the same one writing this entry.",
	},
	callbackLikes: {
		"You've written before about how much you enjoy %s — maybe there's room for a little of that soon.",
	},
}

// memoryCallback occasionally weaves a remembered detail into the
// mirror. A remembered item whose words appear in the entry is offered
// more often; unrelated items surface rarely so the voice stays fresh.
func (e *Engine) memoryCallback(kind, text string, memory analysis.UserMemory) string {
	if kind == "" {
		return ""
	}
	var items []string
	switch kind {
	case callbackCoping:
		items = memory.Coping
	case callbackWins:
		items = memory.Wins
	case callbackLikes:
		items = memory.Likes
	}
	if len(items) == 0 {
		return ""
	}

	item := items[e.intn(len(items))]
	chance := 0.15
	if sharesWord(item, text) {
		chance = 0.35
	}
	if e.float64() >= chance {
		return ""
	}
	templates := callbackTemplates[kind]
	return fmt.Sprintf(e.pick(templates), item)
}

func sharesWord(item, text string) bool {
	lower := strings.ToLower(text)
	for _, w := range strings.Fields(strings.ToLower(item)) {
		if len(w) < 4 {
			continue
		}
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
