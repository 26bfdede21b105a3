package reflection

import (
	"strings"
	"unicode"
)

// LooksLikeFragment reports whether the text is too thin to reflect on:
// very short input, mostly non-letters, or (for longer input) a vowel
// ratio low enough to suggest keysmash.
func LooksLikeFragment(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 6 {
		return true
	}
	letters, vowels, total := 0, 0, 0
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
			if isVowel(r) {
				vowels++
			}
		}
	}
	if total == 0 {
		return true
	}
	if float64(letters)/float64(total) < 0.5 {
		return true
	}
	if len(trimmed) >= 25 && letters > 0 && float64(vowels)/float64(letters) < 0.18 {
		return true
	}
	return false
}

// looksLikePlaceholder flags guided-session answers that carry no real
// content: empty, one or two characters, a single repeated character, or
// keysmash.
func looksLikePlaceholder(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) <= 2 {
		return true
	}
	if allSameRune(trimmed) {
		return true
	}
	if len(trimmed) >= 8 {
		letters, vowels := 0, 0
		for _, r := range trimmed {
			if unicode.IsLetter(r) {
				letters++
				if isVowel(r) {
					vowels++
				}
			}
		}
		if letters > 0 && float64(vowels)/float64(letters) < 0.2 {
			return true
		}
	}
	return false
}

func allSameRune(s string) bool {
	var first rune
	for i, r := range s {
		if i == 0 {
			first = r
			continue
		}
		if r != first {
			return false
		}
	}
	return true
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
