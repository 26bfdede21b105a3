package reflection

import "regexp"

// Intents are narrow, high-signal patterns checked in fixed priority
// order before the generic topic/tone dispatch. The first match wins.
type intentRule struct {
	id   string
	re   *regexp.Regexp
	pool pool
}

var intentRules = []intentRule{
	{
		id: "too_tired_to_journal",
		re: regexp.MustCompile(`(?i)\b(too tired to (journal|write)|no energy to (journal|write)|can barely keep my eyes open to write)\b`),
		pool: pool{
			openers: []string{
				"You showed up tired, and you still showed up. That's the whole assignment tonight.",
				"Being too tired to write and writing that down anyway is more than it sounds like.",
			},
			followups: []string{
				"Want to leave it at one sentence about today and stop there?",
			},
			nudges: []string{"One sentence counts as an entry.", "Sleep is allowed to win tonight."},
		},
	},
	{
		id: "where_to_start",
		re: regexp.MustCompile(`(?i)\b((don'?t|do not) know (where|how) to (start|begin)|not sure (where|how) to (start|begin)|where do i (even )?(start|begin))\b`),
		pool: pool{
			openers: []string{
				"There's no wrong door into this. The middle of the thing is a fine place to start.",
				"Starting is the only hard part of journaling, and you're already past it — this counts.",
			},
			followups: []string{
				"What's the one thing from today that's still taking up space?",
				"If today had a headline, what would it be?",
			},
		},
	},
	{
		id: "social_avoidance",
		re: regexp.MustCompile(`(?i)\b(cancell?ed on (everyone|plans|my friends)|bailed on plans|avoiding (people|everyone)|didn'?t want to see anyone|keep turning down invites)\b`),
		pool: pool{
			openers: []string{
				"Pulling away from people usually isn't about the people. It sounds like your tank is empty, not your heart.",
				"Avoiding plans can be restful or it can be a slow slide. Only you can tell which this is, and it's worth telling.",
			},
			followups: []string{
				"If a friend texted right now with zero expectations, would that feel like a relief or a demand?",
			},
			nudges: []string{"A two-line reply keeps a door open without costing an evening."},
			callback: callbackCoping,
		},
	},
	{
		id: "family_tension",
		re: regexp.MustCompile(`(?i)\b(mom|dad|mother|father|parents?|family)\b.{0,80}\b(argu\w*|fight\w*|tension|yell\w*|guilt(?:ing|ed)?|silent treatment)\b`),
		pool: pool{
			openers: []string{
				"Family friction hits different because you can't exactly clock out of it. No wonder it's still buzzing.",
				"Old roles have a way of reasserting themselves around family. You're allowed to notice that without fixing it tonight.",
			},
			followups: []string{
				"What did you need in that moment that you didn't get?",
			},
			useAnchor: true,
		},
	},
	{
		id: "friend_low_bandwidth",
		re: regexp.MustCompile(`(?i)\b(always me (reaching out|texting first)|never texts? (me )?back|takes days to reply|didn'?t even ask how i)\b`),
		pool: pool{
			openers: []string{
				"Being the one who always reaches out gets heavy quietly. The math of a friendship shouldn't need a spreadsheet, but you've clearly been keeping one anyway.",
				"It stings when the effort only flows one way. That sting is information, not pettiness.",
			},
			followups: []string{
				"Is this a friend going through their own low stretch, or a pattern that predates it?",
			},
		},
	},
	{
		id: "romantic_uncertainty",
		re: regexp.MustCompile(`(?i)\b(mixed signals|don'?t know where (we|i) stand|are we (even )?(together|dating)|can'?t read (him|her|them))\b`),
		pool: pool{
			openers: []string{
				"Not knowing where you stand is its own kind of tired. Ambiguity makes you do the emotional work for two.",
				"You're holding a question the other person could answer in a sentence. That imbalance is worth naming.",
			},
			followups: []string{
				"What would you want the answer to be, if you got to pick?",
			},
		},
	},
	{
		id: "dating_fatigue",
		re: regexp.MustCompile(`(?i)\b(tired of dating|dating apps? (are|feel)|swiping\b.{0,40}(exhaust\w*|pointless|numb)|another first date)\b`),
		pool: pool{
			openers: []string{
				"Dating fatigue is real fatigue. Performing your own highlight reel for strangers costs something every time.",
				"It makes sense that the search feels like a second job lately. Wanting connection and being worn out by the hunt can both be true.",
			},
			followups: []string{
				"What would a week off from the apps actually feel like — relief, or fear of missing the one?",
			},
			nudges: []string{"Pausing the search is not abandoning it."},
		},
	},
	{
		id: "lonely_despite_company",
		re: regexp.MustCompile(`(?i)\b(lonely (even )?(when|around|with) (people|others|friends|everyone)|surrounded by people\b.{0,40}(lonely|alone)|alone in a (crowded )?room)\b`),
		pool: pool{
			openers: []string{
				"Lonely-in-a-crowd is the loneliest version there is, because company was supposed to be the cure.",
				"Being seen and being around people are different things. It sounds like you got the second one without the first.",
			},
			followups: []string{
				"Who was the last person you felt actually met by, not just next to?",
			},
		},
	},
	{
		id: "solitude_vs_isolation",
		re: regexp.MustCompile(`(?i)\b(am i isolating|isolating (myself|again)|too much alone time|alone time\b.{0,40}(healthy|too much)|solitude or isolation)\b`),
		pool: pool{
			openers: []string{
				"Good question to be asking. Solitude refills you; isolation quietly drains you. Same room, different physics.",
				"The fact that you're checking the difference suggests part of you already suspects which side of the line this week landed on.",
			},
			followups: []string{
				"After a day alone lately, do you feel restored or more inert?",
			},
		},
	},
	{
		id: "comparison_falling_behind",
		re: regexp.MustCompile(`(?i)\b(falling behind\b|everyone (else )?(is|seems) (ahead|further|so far ahead)|behind in life|comparing myself)\b`),
		pool: pool{
			openers: []string{
				"Comparison always measures your inside against someone else's outside. The race you feel behind in has a course no two people run.",
				"Falling behind implies a shared schedule, and there isn't one. But knowing that rarely makes the feeling quieter, so let's sit with the feeling instead.",
			},
			followups: []string{
				"Whose timeline are you measuring against, specifically? Naming them usually shrinks it.",
			},
		},
	},
	{
		id: "conflict_avoidance",
		re: regexp.MustCompile(`(?i)\b(bit my tongue|didn'?t bring it up|keep(ing)? the peace|avoid(ed|ing)? the (conflict|argument|conversation)|swallowed (it|my (words|feelings)))\b`),
		pool: pool{
			openers: []string{
				"Keeping the peace has a cost, and you're the one paying it. The unsaid thing doesn't dissolve; it compounds.",
				"You chose quiet over conflict today. Sometimes that's wisdom, sometimes it's a tax. Worth knowing which.",
			},
			followups: []string{
				"If saying the thing had zero consequences, what would you have said?",
			},
			useAnchor: true,
		},
	},
	{
		id: "relationship_as_escape",
		re: regexp.MustCompile(`(?i)\b(jump(ing)? into (a|another) relationship|distract myself with (dating|someone)|fill the (gap|hole|silence) with (someone|a person)|rebound\b)\b`),
		pool: pool{
			openers: []string{
				"Wanting someone and wanting an exit can wear the same outfit. You've spotted the difference, which most people don't.",
				"A new person is the most absorbing distraction there is. It works right up until it doesn't.",
			},
			followups: []string{
				"If the loneliness were already handled, would you still want this particular person?",
			},
		},
	},
	{
		id: "money_relationship_strain",
		re: regexp.MustCompile(`(?i)\b(money|rent|bills?|debt|finances)\b.{0,60}\b(fight\w*|argu\w*|tension|resent\w*|snapp?ed at|between us)\b`),
		pool: pool{
			openers: []string{
				"Money stress rarely stays in the spreadsheet — it leaks into tone, timing, and who emptied the account of patience first.",
				"When money gets tight, it starts speaking for people. The argument sounds like dollars but it's usually about safety.",
			},
			followups: []string{
				"Underneath the numbers, what's the fear — running out, or not being on the same team?",
			},
		},
	},
	{
		id: "unwind_intent",
		re: regexp.MustCompile(`(?i)\b(need to (unwind|decompress|vent)|just (need|want) to (vent|get this out)|clear my head|dump(ing)? this here)\b`),
		pool: pool{
			openers: []string{
				"Venting is a legitimate use of this page. No structure required — the container can just hold it.",
				"Consider it dumped. You don't owe this entry a lesson or a silver lining.",
			},
			followups: []string{
				"Anything still rattling around that didn't make it onto the page?",
			},
			callback: callbackCoping,
		},
	},
	{
		id: "pattern_seeking",
		re: regexp.MustCompile(`(?i)\b(why do i (always|keep)|same (pattern|mistake) again|keep ending up|notice a pattern|this keeps happening)\b`),
		pool: pool{
			openers: []string{
				"You're doing the rare thing: looking at the loop instead of just riding it. Patterns only survive while they're invisible.",
				"Asking “why do I keep doing this” is the first step out of doing it. The honest answer is usually older than the situation.",
			},
			followups: []string{
				"When was the earliest time you remember this same shape playing out?",
			},
			useAnchor: true,
		},
	},
	{
		id: "good_day_nothing_new",
		re: regexp.MustCompile(`(?i)\b(good day,? (nothing|not much) (new|else|special)|nothing (much )?to report|same as yesterday,? (but )?(fine|good)|quiet day,? no complaints)\b`),
		pool: pool{
			openers: []string{
				"An unremarkable good day is still a good day. They don't make headlines, but they make a life.",
				"Nothing new and nothing wrong is a combination worth logging — steady is a result, not an absence.",
			},
			followups: []string{
				"What's one small thing that quietly worked today?",
			},
			callback: callbackWins,
		},
	},
	{
		id: "dismissive_shutdown",
		re: regexp.MustCompile(`(?i)^\s*(whatever\.?|fine\.?|doesn'?t matter\.?|forget it\.?|this is (stupid|pointless)\.?|never ?mind\.?)\s*$`),
		pool: pool{
			openers: []string{
				"“Whatever” usually means the opposite. You opened this page for a reason, even if the reason is tired of itself.",
				"That reads like a door closing mid-sentence. You don't have to open it, but I'd rather you didn't slam it on your own hand.",
			},
			followups: []string{
				"One more sentence — what almost got written instead?",
			},
		},
	},
}
