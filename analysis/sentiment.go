package analysis

import "math"

// Sentiment labels, ordered from lowest to highest.
const (
	LabelVeryLow  = "very_low"
	LabelLow      = "low"
	LabelMixed    = "mixed"
	LabelSteady   = "steady"
	LabelGood     = "good"
	LabelVeryGood = "very_good"
)

const (
	intensifierBoost = 1.35
	downplayerFactor = 0.82
	phraseWeight     = 1.2
	loadPenalty      = 0.9
	loadPenaltyExtra = 0.6
)

// ScoreSentiment converts free text into a bounded score in [-3, 3].
// Lexicon hits are weighted by intensifiers/downplayers and flipped by
// negations found within ±2 tokens, the weighted sum is normalized by
// √token-count, and a load-signal penalty is applied for time/pressure
// phrasing. The result is clamped.
func ScoreSentiment(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	norm := NormalizeText(text)

	var sum float64
	for i, tok := range tokens {
		var w float64
		if _, ok := positiveWords[tok]; ok {
			w = 1.0
		} else if _, ok := negativeWords[tok]; ok {
			w = -1.0
		} else {
			continue
		}

		negated, boosted, softened := false, false, false
		lo, hi := i-2, i+2
		if lo < 0 {
			lo = 0
		}
		if hi > len(tokens)-1 {
			hi = len(tokens) - 1
		}
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			t := tokens[j]
			if _, ok := negationWords[t]; ok {
				negated = true
			}
			if _, ok := intensifierWords[t]; ok && j < i {
				boosted = true
			}
			if _, ok := downplayerWords[t]; ok && j < i {
				softened = true
			}
		}
		if boosted {
			w *= intensifierBoost
		}
		if softened {
			w *= downplayerFactor
		}
		if negated {
			w = -w
		}
		sum += w
	}

	for _, p := range positivePhrases {
		sum += phraseWeight * float64(countOccurrences(norm, p))
	}
	for _, p := range negativePhrases {
		sum -= phraseWeight * float64(countOccurrences(norm, p))
	}

	score := sum / math.Sqrt(float64(len(tokens)))

	_, load := LoadSignalMatches(text)
	if load >= 2 && score > -2 {
		score -= loadPenalty
	}
	if load >= 4 {
		score -= loadPenaltyExtra
	}

	return clamp(score, -3, 3)
}

// SentimentLabel maps a score to the six-way label scheme. Zero is always
// steady and the extremes map to the extreme labels.
func SentimentLabel(score float64) string {
	switch {
	case score <= -2.0:
		return LabelVeryLow
	case score <= -0.9:
		return LabelLow
	case score >= 2.0:
		return LabelVeryGood
	case score >= 0.9:
		return LabelGood
	case score > -0.18 && score < 0.18:
		return LabelSteady
	default:
		return LabelMixed
	}
}
