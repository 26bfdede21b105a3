package analysis

import (
	"strings"
)

// NormalizeText lowercases, strips punctuation except apostrophes and
// hyphens, and collapses runs of whitespace to single spaces.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'', r == '-':
			b.WriteRune(r)
			lastSpace = false
		case r > 127 && !isSpaceRune(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' '
}

// Tokenize splits normalized text on whitespace.
func Tokenize(s string) []string {
	return strings.Fields(NormalizeText(s))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snippet collapses whitespace in the original-case text and truncates to
// max characters with an ellipsis.
func Snippet(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut-1] != ' ' {
		cut--
	}
	if cut == 0 {
		cut = max
	}
	return strings.TrimSpace(s[:cut]) + "…"
}

func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// pushFront inserts v at the head of list, removing any case-insensitive
// duplicate, and caps the result at max.
func pushFront(list []string, v string, max int) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	key := strings.ToLower(v)
	out := make([]string, 0, len(list)+1)
	out = append(out, v)
	for _, s := range list {
		if strings.ToLower(strings.TrimSpace(s)) == key {
			continue
		}
		out = append(out, s)
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// sentenceSimilarity is token-set Jaccard overlap between two sentences.
func sentenceSimilarity(a, b string) float64 {
	ta := Tokenize(a)
	tb := Tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(ta))
	for _, t := range ta {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tb))
	for _, t := range tb {
		setB[t] = struct{}{}
	}
	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// dedupeSentences drops sentences that near-duplicate an earlier one:
// Jaccard >= 0.78, or containment when lengths are within a third of each
// other.
func dedupeSentences(sentences []string) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		dup := false
		for _, kept := range out {
			if sentenceSimilarity(s, kept) >= 0.78 {
				dup = true
				break
			}
			ls, lk := strings.ToLower(s), strings.ToLower(kept)
			shorter, longer := ls, lk
			if len(shorter) > len(longer) {
				shorter, longer = longer, shorter
			}
			if strings.Contains(longer, shorter) && len(longer)-len(shorter) <= len(longer)/3 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// countOccurrences counts non-overlapping occurrences of phrase in
// normalized text, on word boundaries.
func countOccurrences(norm, phrase string) int {
	if phrase == "" {
		return 0
	}
	n := 0
	idx := 0
	for {
		i := strings.Index(norm[idx:], phrase)
		if i < 0 {
			return n
		}
		start := idx + i
		end := start + len(phrase)
		beforeOK := start == 0 || norm[start-1] == ' '
		afterOK := end == len(norm) || norm[end] == ' '
		if beforeOK && afterOK {
			n++
		}
		idx = end
	}
}
