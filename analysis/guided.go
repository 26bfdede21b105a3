package analysis

import (
	"regexp"
	"strings"
)

// GuidedQA is one prompt/answer pair from a guided-session transcript.
type GuidedQA struct {
	Question string
	Answer   string
}

// GuidedSession is a parsed "Guided Session — <mode>" transcript.
type GuidedSession struct {
	Mode  string
	Pairs []GuidedQA
}

var guidedHeaderRe = regexp.MustCompile(`(?i)^guided session\s*[—–-]+\s*(.+)$`)

// IsGuidedTranscript reports whether the text starts with a guided-session
// header line.
func IsGuidedTranscript(text string) bool {
	_, ok := firstGuidedHeader(text)
	return ok
}

func firstGuidedHeader(text string) (mode string, ok bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := guidedHeaderRe.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// ParseGuidedTranscript recovers the mode title and the ordered Q/A pairs
// from a transcript. Continuation lines fold into the open question or
// answer with whitespace normalized.
func ParseGuidedTranscript(text string) (GuidedSession, bool) {
	mode, ok := firstGuidedHeader(text)
	if !ok {
		return GuidedSession{}, false
	}

	session := GuidedSession{Mode: mode}
	var cur *GuidedQA
	appendTo := "" // "q" or "a"

	flush := func() {
		if cur != nil {
			cur.Question = strings.TrimSpace(cur.Question)
			cur.Answer = strings.TrimSpace(cur.Answer)
			session.Pairs = append(session.Pairs, *cur)
			cur = nil
		}
	}

	headerSeen := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !headerSeen {
			if guidedHeaderRe.MatchString(line) {
				headerSeen = true
			}
			continue
		}
		switch {
		case strings.HasPrefix(line, "Q:"):
			flush()
			cur = &GuidedQA{Question: strings.TrimSpace(line[2:])}
			appendTo = "q"
		case strings.HasPrefix(line, "A:"):
			if cur == nil {
				cur = &GuidedQA{}
			}
			cur.Answer = strings.TrimSpace(line[2:])
			appendTo = "a"
		default:
			if cur == nil {
				continue
			}
			if appendTo == "a" {
				cur.Answer = strings.TrimSpace(cur.Answer + " " + line)
			} else {
				cur.Question = strings.TrimSpace(cur.Question + " " + line)
			}
		}
	}
	flush()
	return session, true
}

// BuildGuidedTranscript renders a session back into the transcript form
// that ParseGuidedTranscript reads.
func BuildGuidedTranscript(mode string, pairs []GuidedQA) string {
	var b strings.Builder
	b.WriteString("Guided Session — ")
	b.WriteString(strings.TrimSpace(mode))
	b.WriteString("\n")
	for _, p := range pairs {
		b.WriteString("\nQ: ")
		b.WriteString(strings.Join(strings.Fields(p.Question), " "))
		b.WriteString("\nA: ")
		b.WriteString(strings.Join(strings.Fields(p.Answer), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// GuidedAnswersText joins only the user's answer lines, which is what the
// analyzers should read instead of the prompt text.
func GuidedAnswersText(text string) string {
	session, ok := ParseGuidedTranscript(text)
	if !ok {
		return text
	}
	var answers []string
	for _, p := range session.Pairs {
		if p.Answer != "" {
			answers = append(answers, p.Answer)
		}
	}
	return strings.Join(answers, "\n")
}
