package reflection

import (
	"regexp"
	"strings"
)

var crisisRe = regexp.MustCompile(`(?i)\b(kill(?:ing)? myself|end(?:ing)? it all|su[i1]cid\w*|self[- ]?harm|hurt(?:ing)? myself|cutting myself|don'?t want to (?:be here|live|wake up)|no reason to live|better off without me|want(?:ed)? to disappear forever)\b`)

// crisisMarker identifies the safety note so it is never duplicated.
const crisisMarker = "988"

const safetyNote = "One more thing, and it matters more than anything above: if any part of you is thinking about hurting yourself, please don't carry that alone. You can call or text 988 (Suicide & Crisis Lifeline) any time, day or night."

// HasCrisisLanguage reports whether the entry contains self-harm
// indicators.
func HasCrisisLanguage(text string) bool {
	return crisisRe.MatchString(text)
}

// EnsureSafetyNote guarantees the crisis-resource note appears exactly
// once in the mirror. It appends the note unless the marker is already
// present.
func EnsureSafetyNote(mirror string) string {
	if strings.Contains(mirror, crisisMarker) {
		return mirror
	}
	mirror = strings.TrimRight(mirror, "\n ")
	if mirror == "" {
		return safetyNote
	}
	return mirror + "\n\n" + safetyNote
}
