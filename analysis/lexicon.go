package analysis

// The sentiment lexicons. Single words are matched per token with a ±2
// context window; fixed multi-word phrases are matched against the whole
// normalized text on word boundaries.

var positiveWords = wordSet(
	"good", "great", "happy", "glad", "calm", "calmer", "hopeful", "proud",
	"excited", "grateful", "thankful", "relieved", "relief", "rested",
	"peaceful", "content", "better", "lighter", "energized", "motivated",
	"accomplished", "joy", "joyful", "fun", "laughed", "love", "loved",
	"warm", "cozy", "steady", "grounded", "okay", "fine", "wins", "win",
	"progress", "easier", "refreshed", "optimistic", "confident",
)

var negativeWords = wordSet(
	"bad", "sad", "angry", "mad", "upset", "anxious", "anxiety", "worried",
	"worry", "stressed", "stress", "stressing", "overwhelmed", "exhausted",
	"tired", "drained", "lonely", "alone", "scared", "afraid", "hopeless",
	"worthless", "guilty", "ashamed", "frustrated", "frustrating", "stuck",
	"numb", "empty", "miserable", "awful", "terrible", "horrible", "dread",
	"crying", "cried", "hurt", "hurting", "pressure", "panicking", "panic",
	"irritated", "annoyed", "resent", "failure", "failing", "worse",
)

var positivePhrases = []string{
	"went well", "small win", "at peace", "looking forward", "a good day",
	"really helped", "felt seen", "on top of things", "proud of myself",
}

var negativePhrases = []string{
	"fell apart", "too much", "on edge", "burned out", "burnt out",
	"can't cope", "cant cope", "fed up", "breaking down", "at my limit",
	"falling behind", "let down", "wiped out",
}

var intensifierWords = wordSet(
	"very", "really", "so", "extremely", "totally", "completely",
	"absolutely", "incredibly", "deeply",
)

var downplayerWords = wordSet(
	"slightly", "somewhat", "kinda", "kind-of", "sorta", "bit", "little",
	"maybe", "perhaps", "mildly",
)

var negationWords = wordSet(
	"not", "no", "never", "don't", "dont", "doesn't", "doesnt", "didn't",
	"didnt", "can't", "cant", "won't", "wont", "isn't", "isnt", "wasn't",
	"wasnt", "aren't", "arent", "hardly", "barely", "without",
)

// loadSignals are time/pressure phrases that imply stress by circumstance
// even without explicit negative-affect words.
var loadSignals = []string{
	"deadline", "deadlines", "back to back", "back-to-back", "no time",
	"so much to do", "too many meetings", "double shift", "overtime",
	"no break", "no breaks", "ran out of time", "behind on everything",
	"catch up", "catching up", "slammed", "swamped", "nonstop", "non-stop",
}

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// LoadSignalMatches returns the distinct load-signal phrases present in the
// text, and the total occurrence count.
func LoadSignalMatches(text string) (phrases []string, count int) {
	norm := NormalizeText(text)
	for _, p := range loadSignals {
		n := countOccurrences(norm, p)
		if n > 0 {
			phrases = append(phrases, p)
			count += n
		}
	}
	return dedupeStrings(phrases), count
}
