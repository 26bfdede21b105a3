package reflection

import (
	"regexp"
)

// Tone is a coarser classification than the numeric sentiment scorer:
// it decides which family of responses fits, not magnitude.
type Tone = string

const (
	ToneNegative Tone = "negative"
	TonePositive Tone = "positive"
	ToneMixed    Tone = "mixed"
	ToneNeutral  Tone = "neutral"
)

var toneNegativeRe = regexp.MustCompile(`(?i)\b(sad|angry|mad|upset|anxious|anxiety|worried|worry|stress\w*|overwhelm\w*|exhaust\w*|tired|drained|lonely|scared|afraid|hopeless|frustrat\w*|stuck|awful|terrible|horrible|miserable|crying|cried|hurt|dread\w*|guilt\w*|ashamed|numb|empty)\b`)

var tonePositiveRe = regexp.MustCompile(`(?i)\b(happy|glad|great|good|calm\w*|hopeful|proud|excited|grateful|thankful|relieved|relief|rested|peaceful|content|better|lighter|fun|laughed|joy\w*|energized|accomplish\w*)\b`)

// DetectTone classifies the entry as positive, negative, mixed, or
// neutral.
func DetectTone(text string) Tone {
	neg := toneNegativeRe.MatchString(text)
	pos := tonePositiveRe.MatchString(text)
	switch {
	case neg && pos:
		return ToneMixed
	case neg:
		return ToneNegative
	case pos:
		return TonePositive
	default:
		return ToneNeutral
	}
}

// Topic identifies which subject family an entry belongs to. Every
// topic a rule can return has a response pool for all four tones.
type Topic = string

const (
	TopicWork          Topic = "work"
	TopicNewJournaling Topic = "new_to_journaling"
	TopicWellness      Topic = "mental_wellness"
	TopicRelationships Topic = "relationships"
	TopicSelfWorth     Topic = "self_worth"
	TopicFinances      Topic = "finances"
	TopicDecisions     Topic = "decisions"
	TopicRumination    Topic = "anxiety_rumination"
	TopicSleep         Topic = "sleep"
	TopicWins          Topic = "wins_gratitude"
	TopicFood          Topic = "food"
	TopicSchool        Topic = "school"
	TopicHealth        Topic = "health"
	TopicGeneral       Topic = "general"
)

type topicRule struct {
	topic Topic
	re    *regexp.Regexp
}

// topicRules are evaluated in order: the more specific topics sit above
// generic ones, so explicit mental-health language wins over a stray
// work word.
var topicRules = []topicRule{
	{TopicWellness, regexp.MustCompile(`(?i)\b(mental health|therap\w*|medication|meds\b|depress\w*|panic attack\w*|burnout|burned out|burnt out)\b`)},
	{TopicNewJournaling, regexp.MustCompile(`(?i)\b(first (entry|time journaling)|new to journaling|never journaled|starting (a|this) journal|trying out journaling)\b`)},
	{TopicRumination, regexp.MustCompile(`(?i)\b(overthink\w*|ruminati\w*|spiral\w*|racing thoughts|can'?t stop thinking|what if\b|keep replaying)\b`)},
	{TopicSleep, regexp.MustCompile(`(?i)\b(can'?t sleep|couldn'?t sleep|insomnia|tossing and turning|slept (?:badly|poorly|terribly)|barely slept|up all night|lying awake|sleep schedule)\b`)},
	{TopicSelfWorth, regexp.MustCompile(`(?i)\b(not (good|smart|strong) enough|worthless|failure|hate myself|impostor|imposter|doubt\w* myself|what'?s wrong with me)\b`)},
	{TopicDecisions, regexp.MustCompile(`(?i)\b(can'?t decide|torn between|should i\b|big decision|crossroads|weighing (options|whether))\b`)},
	{TopicWins, regexp.MustCompile(`(?i)\b(proud|grateful|thankful|small win|went well|finally\b|celebrat\w*|good news|milestone)\b`)},
	{TopicFinances, regexp.MustCompile(`(?i)\b(money|rent|bills?\b|debt\w*|budget\w*|paycheck|afford\w*|savings?\b|broke\b)\b`)},
	{TopicRelationships, regexp.MustCompile(`(?i)\b(friend\w*|partner|boyfriend|girlfriend|husband|wife|family|mom\b|dad\b|mother|father|sister|brother|dating|breakup|relationship)\b`)},
	{TopicSchool, regexp.MustCompile(`(?i)\b(class(es)?\b|exams?\b|homework|assignment\w*|professor\w*|semester|studying|grades?\b|thesis|finals)\b`)},
	{TopicHealth, regexp.MustCompile(`(?i)\b(doctor|appointment\w*|sick\b|pain\b|headache\w*|migraine\w*|symptom\w*|diagnos\w*|injur\w*)\b`)},
	{TopicFood, regexp.MustCompile(`(?i)\b(appetite|skipp(ed|ing) (meals?|lunch|dinner|breakfast)|overeat\w*|comfort food|cooking|meals?\b|eating)\b`)},
	{TopicWork, regexp.MustCompile(`(?i)\b(work\b|job\b|boss|manager|meetings?\b|deadlines?\b|clients?\b|coworker\w*|colleague\w*|office|shifts?\b)\b`)},
}

// DetectTopic returns the first matching topic, or general.
func DetectTopic(text string) Topic {
	for _, rule := range topicRules {
		if rule.re.MatchString(text) {
			return rule.topic
		}
	}
	return TopicGeneral
}
