package analysis

import (
	"regexp"
	"sort"
	"strings"
)

const whatHelpedCap = 4

// helpCategory canonicalizes free-text coping mentions into a named
// stabilizer with an explanatory detail.
type helpCategory struct {
	id      string
	label   string
	pattern *regexp.Regexp
	detail  string

	// likePattern, when set, searches memory likes for a specific item to
	// fold into the detail.
	likePattern *regexp.Regexp
}

var helpCatalog = []helpCategory{
	{
		id: "movement", label: "Moving your body",
		pattern: regexp.MustCompile(`\b(walk\w*|run\w*|jog\w*|gym|exercis\w*|yoga|stretch\w*|workout|bike|biking|hike|hiking|swim\w*|danc\w*)\b`),
		detail:  "Even a short walk tends to show up before your better days.",
	},
	{
		id: "music", label: "Music",
		pattern:     regexp.MustCompile(`\b(music|song\w*|playlist\w*|album\w*|listen\w*)\b`),
		detail:      "Putting music on keeps coming up on the days that turned around.",
		likePattern: regexp.MustCompile(`\b(band|album|song|artist|playlist)\b`),
	},
	{
		id: "rest", label: "Rest",
		pattern: regexp.MustCompile(`\b(nap\w*|sleep\w*|rest\w*|bath|shower|lie down|lying down|early night)\b`),
		detail:  "Actual rest, not just stopping, seems to reset things for you.",
	},
	{
		id: "connection", label: "Reaching out",
		pattern: regexp.MustCompile(`\b(friend\w*|call\w*|talk\w*|text\w*|coffee with|dinner with|hang\w* out|visit\w*)\b`),
		detail:  "Talking to someone, even briefly, reliably shifts your entries.",
	},
	{
		id: "writing", label: "Writing it out",
		pattern: regexp.MustCompile(`\b(journal\w*|writ\w*|notes?|brain ?dump)\b`),
		detail:  "Getting it onto the page is already one of your steadier tools.",
	},
	{
		id: "reading", label: "Reading",
		pattern:     regexp.MustCompile(`\b(read\w*|book\w*|novel\w*|library)\b`),
		detail:      "Reading shows up as a way you step out of the loop.",
		likePattern: regexp.MustCompile(`\b(book|novel|author|series)\b`),
	},
	{
		id: "shows", label: "Shows & movies",
		pattern:     regexp.MustCompile(`\b(show\w*|series|movie\w*|film\w*|episode\w*|watch\w*|tv)\b`),
		detail:      "A familiar show seems to work as a soft landing for you.",
		likePattern: regexp.MustCompile(`\b(show|series|movie|film|watch)\b`),
	},
	{
		id: "food", label: "A warm drink or a good meal",
		pattern: regexp.MustCompile(`\b(coffee|tea|cocoa|cook\w*|bak\w*|meal\w*|warm drink|coffee\/tea)\b`),
		detail:  "Small rituals around food and warm drinks steady you more than they sound like they should.",
	},
	{
		id: "cleaning", label: "Tidying up",
		pattern: regexp.MustCompile(`\b(clean\w*|tidy\w*|organiz\w*|declutter\w*|laundry|dishes)\b`),
		detail:  "Putting the room in order seems to put the day in order too.",
	},
	{
		id: "faith", label: "Faith & practice",
		pattern: regexp.MustCompile(`\b(pray\w*|church|temple|mosque|faith|scripture|meditat\w*|breath\w*)\b`),
		detail:  "Practice and quiet attention show up around your calmer stretches.",
	},
	{
		id: "therapy", label: "Therapy",
		pattern: regexp.MustCompile(`\b(therap\w*|counsel\w*|session\w*)\b`),
		detail:  "Sessions keep appearing right before clearer-headed entries.",
	},
	{
		id: "animals", label: "Time with animals",
		pattern: regexp.MustCompile(`\b(dog\w*|cat\w*|pet\w*|puppy|kitten)\b`),
		detail:  "Time with an animal is one of the few things that never reads as mixed in your writing.",
	},
	{
		id: "outdoors", label: "Getting outside",
		pattern: regexp.MustCompile(`\b(outside|outdoors?|fresh air|sun\w*|park|nature|garden\w*|beach|trail\w*)\b`),
		detail:  "Daylight and open air track with your lighter entries.",
	},
	{
		id: "play", label: "Play",
		pattern: regexp.MustCompile(`\b(game\w*|gaming|play\w*|puzzle\w*|hobby|hobbies|paint\w*|draw\w*|craft\w*)\b`),
		detail:  "Doing something purely for fun gives the serious stuff less gravity.",
	},
	{
		id: "photography", label: "Photography",
		pattern: regexp.MustCompile(`\b(photo\w*|camera|pictures?)\b`),
		detail:  "Looking for a shot gets you looking outward, which seems to help.",
	},
	{
		id: "exploring", label: "Exploring",
		pattern: regexp.MustCompile(`\b(explor\w*|wander\w*|trip\w*|drive\w*|new place\w*|travel\w*)\b`),
		detail:  "Breaking the usual route shows up around your better days.",
	},
}

var helpFallback = []HelpItem{
	{Label: "A short walk", Detail: "Ten minutes outside is the lowest-cost reset there is."},
	{Label: "Writing one more line", Detail: "You don't need a full entry; one honest sentence counts."},
	{Label: "A warm drink", Detail: "A small ritual can mark the end of the hard part of the day."},
}

// sharpDrop is how far the last timeline point must fall below the
// previous one to count as a sharply negative trend.
const sharpDrop = -1.0

// WhatHelped canonicalizes the memory's coping mentions into named
// categories, ranked by frequency, capped at four. An empty memory yields
// a small fixed fallback list; a sharp recent mood drop appends a gentle
// extra suggestion.
func WhatHelped(memory UserMemory, timeline []DayPoint) []HelpItem {
	if memory.IsEmpty() {
		return append([]HelpItem(nil), helpFallback...)
	}

	type tally struct {
		item  HelpItem
		count int
		order int
	}
	byLabel := make(map[string]*tally)
	next := 0

	for _, mention := range memory.Coping {
		norm := NormalizeText(mention)
		cat, ok := canonicalHelpCategory(norm)
		label, detail := "", ""
		if ok {
			label = cat.label
			detail = personalizeDetail(cat, memory)
		} else {
			label = strings.TrimSpace(mention)
			detail = "This is something you reached for in your own words."
		}
		t := byLabel[strings.ToLower(label)]
		if t == nil {
			t = &tally{item: HelpItem{Label: label, Detail: detail}, order: next}
			next++
			byLabel[strings.ToLower(label)] = t
		}
		t.count++
	}

	ranked := make([]*tally, 0, len(byLabel))
	for _, t := range byLabel {
		ranked = append(ranked, t)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].order < ranked[j].order
	})

	out := make([]HelpItem, 0, whatHelpedCap)
	for _, t := range ranked {
		out = append(out, t.item)
		if len(out) == whatHelpedCap {
			break
		}
	}

	if len(out) < whatHelpedCap && recentTrendSharplyDown(timeline) {
		out = append(out, HelpItem{
			Label:  "One gentle thing",
			Detail: "The last couple of days trended down. Pick one small kind thing for yourself today and let that be enough.",
		})
	}
	return out
}

func canonicalHelpCategory(norm string) (helpCategory, bool) {
	for _, cat := range helpCatalog {
		if cat.pattern.MatchString(norm) {
			return cat, true
		}
	}
	return helpCategory{}, false
}

// personalizeDetail swaps in a specific liked item when one matches the
// category, e.g. naming a favorite show.
func personalizeDetail(cat helpCategory, memory UserMemory) string {
	if cat.likePattern == nil {
		return cat.detail
	}
	for _, like := range memory.Likes {
		if cat.likePattern.MatchString(NormalizeText(like)) {
			return cat.detail + " You've mentioned enjoying " + strings.TrimSpace(like) + " — that's an easy place to start."
		}
	}
	return cat.detail
}

func recentTrendSharplyDown(timeline []DayPoint) bool {
	if len(timeline) < 2 {
		return false
	}
	last := timeline[len(timeline)-1]
	prev := timeline[len(timeline)-2]
	return last.Avg-prev.Avg <= sharpDrop && last.Avg < 0
}
