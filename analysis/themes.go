package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// themeEntryCap bounds theme extraction to the most recent entries so the
// ranked themes stay current.
const themeEntryCap = 35

const exampleSnippetMax = 90

// bucket is one topic in the fixed catalog. Triggers are counted against
// normalized text after exclusion idioms have been blanked out, so phrases
// like "work things out" never score the work bucket and "client call"
// never scores relationships.
type bucket struct {
	id       string
	label    string
	triggers []*regexp.Regexp
	excludes []*regexp.Regexp

	// describe is the general, non-personalized first summary sentence.
	describe string

	// signals name what the triggers represent, used in the personalized
	// second sentence. Never quotes the user.
	signals []string

	heavy string // second-sentence tail when the bucket tone runs low
	light string // second-sentence tail when the bucket tone runs high
	level string // neutral tail
}

func rx(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

var themeCatalog = []bucket{
	{
		id:    "work",
		label: "Work",
		triggers: rx(
			`\bwork(?:ing|ed|load|place)?\b`, `\bjob\b`, `\bboss\b`, `\bmanager\b`,
			`\bmeetings?\b`, `\bdeadlines?\b`, `\bclients?\b`, `\bshifts?\b`,
			`\bcoworkers?\b`, `\bcolleagues?\b`, `\boffice\b`, `\bprojects?\b`,
			`\bemails?\b`, `\bpresentations?\b`, `\bovertime\b`,
		),
		excludes: rx(
			`\bwork(?:ing)? (?:things|it|this|stuff) out\b`,
			`\bwork(?:ing|ed)? out\b`, // exercise, not employment
		),
		describe: "Work has been showing up a lot in your writing lately.",
		signals:  []string{"deadlines", "meetings", "workload"},
		heavy:    "the pressure there seems to be weighing on you",
		light:    "and it sounds like things there have mostly been going your way",
		level:    "and the tone around it has been fairly even",
	},
	{
		id:    "relationships",
		label: "Relationships",
		triggers: rx(
			`\bfriends?\b`, `\bpartner\b`, `\bboyfriend\b`, `\bgirlfriend\b`,
			`\bhusband\b`, `\bwife\b`, `\bfamily\b`, `\bmom\b`, `\bdad\b`,
			`\bmother\b`, `\bfather\b`, `\bsister\b`, `\bbrother\b`,
			`\bdate(?:s|d)?\b`, `\bdating\b`, `\bcalls?\b`, `\btexts?\b`,
			`\bargu(?:ed|ment|ing)\b`, `\bfight\b`, `\bbreakup\b`, `\brelationship\b`,
		),
		excludes: rx(
			`\b(?:client|business|work|sales|conference|zoom) calls?\b`,
			`\bcall(?:ed|s)? (?:it|this) (?:off|quits)\b`,
		),
		describe: "People close to you have been on your mind.",
		signals:  []string{"conversations", "family", "friendships"},
		heavy:    "and some of those connections sound strained right now",
		light:    "and those connections mostly sound like they're feeding you",
		level:    "with a mix of closeness and friction in how you describe them",
	},
	{
		id:    "finances",
		label: "Money",
		triggers: rx(
			`\bmoney\b`, `\brent\b`, `\bbills?\b`, `\bdebts?\b`, `\bbudget(?:ing)?\b`,
			`\bpaycheck\b`, `\bsalary\b`, `\bafford(?:ing)?\b`, `\bsavings?\b`,
			`\bexpenses?\b`, `\bbroke\b`, `\bloans?\b`, `\bspending\b`,
		),
		excludes: rx(
			`\bbroke (?:up|down|out)\b`, `\bbroke my\b`,
		),
		describe: "Money questions keep coming up in these entries.",
		signals:  []string{"bills", "budgeting", "what things cost"},
		heavy:    "and the uncertainty there sounds like it's taking a real toll",
		light:    "and it sounds like you're feeling more on top of it than not",
		level:    "mostly in a practical, keeping-track kind of way",
	},
	{
		id:    "self_worth",
		label: "Self-worth",
		triggers: rx(
			`\bnot (?:good|smart|strong) enough\b`, `\bworthless\b`, `\bfailure\b`,
			`\bcompar(?:e|ing|ison)\b`, `\bbehind (?:everyone|in life)\b`,
			`\bhate myself\b`, `\bimpostor\b`, `\bimposter\b`, `\bself-doubt\b`,
			`\bdoubt(?:ing)? myself\b`, `\bwhat(?:'s| is) wrong with me\b`,
			`\bdisappoint(?:ed|ing) (?:in )?myself\b`,
		),
		describe: "Some entries turn inward, questioning your own worth.",
		signals:  []string{"self-comparison", "harsh self-talk"},
		heavy:    "and that inner voice has been unusually hard on you",
		light:    "though lately you seem to be meeting yourself with more patience",
		level:    "and you seem to be watching that voice rather than believing it outright",
	},
	{
		id:    "health",
		label: "Health",
		triggers: rx(
			`\bdoctor\b`, `\bappointments?\b`, `\bsick\b`, `\bill\b`, `\bpain\b`,
			`\bheadaches?\b`, `\bmigraines?\b`, `\bsymptoms?\b`, `\bmedication\b`,
			`\bmeds\b`, `\btherap(?:y|ist)\b`, `\bdiagnos\w+\b`, `\binjur\w+\b`,
		),
		excludes: rx(
			`\bsick of\b`, `\bpain in the neck\b`,
		),
		describe: "Your body and health have been part of the story lately.",
		signals:  []string{"symptoms", "appointments", "how your body feels"},
		heavy:    "and dealing with it sounds draining on top of everything else",
		light:    "and the trend in how you describe it sounds encouraging",
		level:    "mostly in a monitoring, matter-of-fact way",
	},
	{
		id:    "sleep",
		label: "Sleep & rest",
		triggers: rx(
			`\bsleep(?:ing|less)?\b`, `\binsomnia\b`, `\bawake at\b`, `\bup all night\b`,
			`\bnaps?\b`, `\bexhausted\b`, `\btired\b`, `\bcan'?t sleep\b`,
			`\btossing and turning\b`, `\brest(?:ed|less)?\b`,
		),
		excludes: rx(
			`\brest of\b`, `\bthe rest\b`,
		),
		describe: "Rest, or the lack of it, threads through these entries.",
		signals:  []string{"short nights", "tiredness"},
		heavy:    "and running on empty seems to be coloring everything else",
		light:    "and it sounds like you've been getting more real rest lately",
		level:    "and it reads as something you're keeping an eye on",
	},
	{
		id:    "anxiety",
		label: "Worry & rumination",
		triggers: rx(
			`\banxious\b`, `\banxiety\b`, `\bworr(?:y|ied|ying)\b`, `\boverthink(?:ing)?\b`,
			`\bspiral(?:ing)?\b`, `\bruminati\w+\b`, `\bwhat if\b`, `\bpanick?\w*\b`,
			`\bon edge\b`, `\bcan'?t stop thinking\b`, `\bracing thoughts\b`,
		),
		describe: "A current of worry runs through your recent writing.",
		signals:  []string{"what-if loops", "racing thoughts"},
		heavy:    "and the loops sound loud and hard to put down",
		light:    "though you've also been catching the loops earlier than before",
		level:    "and you seem to be naming it, which is its own kind of handle",
	},
	{
		id:    "school",
		label: "School",
		triggers: rx(
			`\bclass(?:es)?\b`, `\bexams?\b`, `\bhomework\b`, `\bassignments?\b`,
			`\bprofessors?\b`, `\bsemester\b`, `\bstudy(?:ing)?\b`, `\blectures?\b`,
			`\bgrades?\b`, `\bthesis\b`, `\bfinals\b`, `\bcampus\b`,
		),
		excludes: rx(
			`\bworld-?class\b`, `\bclass act\b`,
		),
		describe: "School and studying take up real space in these entries.",
		signals:  []string{"coursework", "exams"},
		heavy:    "and the academic load sounds heavier than usual right now",
		light:    "and it sounds like the effort has been paying off",
		level:    "in a steady, grinding-through-it register",
	},
	{
		id:    "food",
		label: "Food & appetite",
		triggers: rx(
			`\bappetite\b`, `\bskipp(?:ed|ing) (?:meals?|lunch|dinner|breakfast)\b`,
			`\bovereat(?:ing)?\b`, `\bcomfort food\b`, `\bcook(?:ed|ing)?\b`,
			`\bmeals?\b`, `\bsnack(?:ed|ing|s)?\b`, `\beating\b`,
		),
		describe: "Food and appetite have been part of how your days register.",
		signals:  []string{"meals", "appetite shifts"},
		heavy:    "and eating seems tangled up with how hard the days have felt",
		light:    "and cooking or eating well seems to be one of the things helping",
		level:    "mostly as texture rather than trouble",
	},
	{
		id:    "wins",
		label: "Wins & gratitude",
		triggers: rx(
			`\bproud\b`, `\bgrateful\b`, `\bthankful\b`, `\bsmall win\b`, `\bwent well\b`,
			`\bmanaged to\b`, `\bfinally\b`, `\baccomplish\w*\b`, `\bcelebrat\w+\b`,
			`\bgood news\b`, `\bmilestone\b`,
		),
		describe: "You've been noting wins and moments of gratitude.",
		signals:  []string{"small wins", "things going right"},
		heavy:    "even while the surrounding weeks have felt heavy",
		light:    "and letting them land instead of brushing past them",
		level:    "and keeping score of the good is clearly deliberate",
	},
}

type bucketMatch struct {
	entryIdx int
	score    int
}

// ExtractThemes scores the most recent entries against the bucket catalog
// and returns the topK themes, highest total score first. Ties are broken
// by catalog order.
func ExtractThemes(entries []Entry, topK int) []Theme {
	if topK <= 0 {
		topK = 3
	}
	recent := recentEntries(entries, themeEntryCap)
	if len(recent) == 0 {
		return nil
	}

	type bucketState struct {
		total   int
		matches []bucketMatch
		toneSum float64
	}
	states := make([]bucketState, len(themeCatalog))

	for ei, e := range recent {
		norm := NormalizeText(e.Text)
		var tone float64
		toneComputed := false
		for bi := range themeCatalog {
			score := themeCatalog[bi].scoreText(norm)
			if score <= 0 {
				continue
			}
			if !toneComputed {
				tone = ScoreSentiment(e.Text)
				toneComputed = true
			}
			st := &states[bi]
			st.total += score
			st.matches = append(st.matches, bucketMatch{entryIdx: ei, score: score})
			st.toneSum += tone
		}
	}

	order := make([]int, 0, len(themeCatalog))
	for bi := range themeCatalog {
		if states[bi].total > 0 {
			order = append(order, bi)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return states[order[i]].total > states[order[j]].total
	})
	if len(order) > topK {
		order = order[:topK]
	}

	themes := make([]Theme, 0, len(order))
	for _, bi := range order {
		b := themeCatalog[bi]
		st := states[bi]
		avgTone := st.toneSum / float64(len(st.matches))

		examples := bucketExamples(recent, st.matches)
		themes = append(themes, Theme{
			ID:       b.id,
			Label:    b.label,
			Score:    st.total,
			Examples: examples,
			Summary:  b.summarize(avgTone),
		})
	}
	return themes
}

// scoreText counts trigger hits after blanking exclusion idioms.
func (b bucket) scoreText(norm string) int {
	for _, ex := range b.excludes {
		norm = ex.ReplaceAllString(norm, " ")
	}
	score := 0
	for _, t := range b.triggers {
		score += len(t.FindAllString(norm, -1))
	}
	return score
}

func (b bucket) summarize(avgTone float64) string {
	tail := b.level
	switch {
	case avgTone <= -0.9:
		tail = b.heavy
	case avgTone >= 0.9:
		tail = b.light
	}
	signals := strings.Join(b.signals, " and ")
	second := fmt.Sprintf("It shows up through %s, %s.", signals, tail)
	return b.describe + " " + second
}

// bucketExamples picks up to two snippets from the highest-scoring matches.
func bucketExamples(recent []Entry, matches []bucketMatch) []string {
	sorted := append([]bucketMatch(nil), matches...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })
	var out []string
	for _, m := range sorted {
		snip := Snippet(recent[m.entryIdx].Text, exampleSnippetMax)
		if snip == "" {
			continue
		}
		out = append(out, snip)
		if len(out) == 2 {
			break
		}
	}
	return out
}

// recentEntries returns up to max entries ordered most-recent-first.
// Entries without a parseable date sort last but are not dropped.
func recentEntries(entries []Entry, max int) []Entry {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iok := sorted[i].Time()
		tj, jok := sorted[j].Time()
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
	if max > 0 && len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted
}
