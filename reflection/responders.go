package reflection

// A pool holds the interchangeable pieces a local reflection is
// composed from. The engine picks one opener and at most one followup,
// so variants must each stand alone.
type pool struct {
	openers   []string
	followups []string
	nudges    []string
	useAnchor bool
	callback  string
}

// Memory lists a pool may draw a callback line from.
const (
	callbackCoping = "coping"
	callbackWins   = "wins"
	callbackLikes  = "likes"
)

type poolKey struct {
	topic Topic
	tone  Tone
}

var topicPools = map[poolKey]pool{
	{TopicWork, ToneNegative}: {
		openers: []string{
			"Work took more than its share of you today. That heaviness you're carrying home wasn't in the job description.",
			"That sounds like a draining stretch at work. The fact that it's spilling into your evening says how much it's asking of you.",
		},
		followups: []string{
			"What part of it is actually yours to carry, and what part belongs to the job?",
			"If tomorrow went ten percent better, what would be different?",
		},
		nudges:    []string{"A hard stop tonight is allowed.", "Write the worry down and let the page hold it until morning."},
		useAnchor: true,
		callback:  callbackCoping,
	},
	{TopicWork, TonePositive}: {
		openers: []string{
			"A good day at work is worth banking, not just passing through. Something clicked today and you noticed.",
			"You sound genuinely pleased with how work went, and that satisfaction is earned.",
		},
		followups: []string{
			"What did you do that made today go right? Naming it makes it repeatable.",
		},
		callback: callbackWins,
	},
	{TopicWork, ToneMixed}: {
		openers: []string{
			"Work gave with one hand and took with the other today. Both halves are real; neither cancels the other.",
		},
		followups: []string{
			"If you had to weigh it, which half of the day is still sitting with you?",
		},
		useAnchor: true,
	},
	{TopicWork, ToneNeutral}: {
		openers: []string{
			"A plain work day, faithfully logged. The unremarkable ones are still part of the record.",
		},
		followups: []string{
			"Anything at work quietly building up that hasn't made it into words yet?",
		},
	},
	{TopicRelationships, ToneNegative}: {
		openers: []string{
			"People we care about have the shortest route to the soft parts. This one found it.",
			"Friction with someone close lingers longer than it deserves to. No wonder it followed you here.",
		},
		followups: []string{
			"What would you want them to understand, if they could read this entry?",
		},
		useAnchor: true,
		callback:  callbackCoping,
	},
	{TopicRelationships, TonePositive}: {
		openers: []string{
			"Connection showed up for you today. Those moments are worth writing down precisely because they feel ordinary while they're happening.",
		},
		followups: []string{
			"What made that time together land the way it did?",
		},
		callback: callbackWins,
	},
	{TopicRelationships, ToneMixed}: {
		openers: []string{
			"Caring about someone and being frustrated with them at the same time is the normal condition of closeness, not a failure of it.",
		},
		followups: []string{
			"Which feeling do you trust more right now — the warmth or the frustration?",
		},
		useAnchor: true,
	},
	{TopicRelationships, ToneNeutral}: {
		openers: []string{
			"You're turning this relationship over carefully, without rushing to a verdict. That patience is doing quiet work.",
		},
		followups: []string{
			"What would need to happen for this to feel settled?",
		},
	},
	{TopicFinances, ToneNegative}: {
		openers: []string{
			"Money worry has a way of humming under everything else. It's not just numbers; it's the feeling of the floor.",
		},
		followups: []string{
			"Which part of the money picture, if it were handled, would let you breathe?",
		},
		nudges:   []string{"One small concrete step — checking one balance, making one call — shrinks it more than an evening of dread."},
		callback: callbackCoping,
	},
	{TopicFinances, TonePositive}: {
		openers: []string{
			"Progress with money deserves a moment. That kind of win compounds in confidence as much as in dollars.",
		},
		followups: []string{
			"What did you do differently that made this possible?",
		},
		callback: callbackWins,
	},
	{TopicFinances, ToneMixed}: {
		openers: []string{
			"Relief and worry about money can share a page. Getting one thing handled doesn't erase the rest, but it's still handled.",
		},
		followups: []string{
			"What's the next smallest piece worth looking at?",
		},
	},
	{TopicFinances, ToneNeutral}: {
		openers: []string{
			"You're thinking about money with a clear head, which is the best state to think about it in.",
		},
		followups: []string{
			"Is there a decision hiding in here, or just an inventory?",
		},
	},
	{TopicSelfWorth, ToneNegative}: {
		openers: []string{
			"That inner voice got loud today. For what it's worth, it's a critic, not a reporter — it editorializes.",
			"Being hard on yourself feels like honesty from the inside. From out here it reads as someone kicking a person who's already tired.",
		},
		followups: []string{
			"What would you say to a friend who wrote this exact entry about themselves?",
		},
		useAnchor: true,
		callback:  callbackWins,
	},
	{TopicSelfWorth, TonePositive}: {
		openers: []string{
			"You gave yourself some credit today, and it reads like you meant it. Keep that on file.",
		},
		followups: []string{
			"What helped you see yourself a little more fairly today?",
		},
		callback: callbackWins,
	},
	{TopicSelfWorth, ToneMixed}: {
		openers: []string{
			"Proud and doubtful in the same breath — that's what growth usually sounds like from the inside.",
		},
		followups: []string{
			"Which voice had more evidence today, honestly?",
		},
	},
	{TopicSelfWorth, ToneNeutral}: {
		openers: []string{
			"You're taking stock of yourself without the usual thumb on the scale. That neutrality is rarer than it sounds.",
		},
		followups: []string{
			"What are you in the middle of becoming, as far as you can tell?",
		},
	},
	{TopicHealth, ToneNegative}: {
		openers: []string{
			"When the body struggles, everything else gets harder to hold. You're not imagining the extra weight of an ordinary day.",
		},
		followups: []string{
			"What does your body seem to be asking for that it hasn't gotten lately?",
		},
		nudges:   []string{"Tonight, the bar is rest, water, and nothing heroic."},
		callback: callbackCoping,
	},
	{TopicHealth, TonePositive}: {
		openers: []string{
			"Feeling good in your body changes the color of everything else. Glad today had some of that.",
		},
		followups: []string{
			"What did you do for yourself that your body is thanking you for?",
		},
		callback: callbackWins,
	},
	{TopicHealth, ToneMixed}: {
		openers: []string{
			"Some systems online, some still catching up. Recovery is rarely a straight line and today fits that shape.",
		},
		followups: []string{
			"What's one thing that reliably helps, that's still on the table tonight?",
		},
		callback: callbackCoping,
	},
	{TopicHealth, ToneNeutral}: {
		openers: []string{
			"You're keeping an eye on how you're doing physically, which is the unglamorous work that pays off later.",
		},
		followups: []string{
			"Anything your body's been hinting at that deserves a closer look?",
		},
	},
	{TopicSleep, ToneNegative}: {
		openers: []string{
			"Running on bad sleep makes every problem look twenty percent bigger. Some of today's weight is just the tiredness talking.",
		},
		followups: []string{
			"What usually gets between you and sleep — the schedule, the screen, or the thoughts?",
		},
		nudges:   []string{"An earlier night tonight beats a perfect plan for next week."},
		callback: callbackCoping,
	},
	{TopicSleep, TonePositive}: {
		openers: []string{
			"Real rest finally. You can hear the difference in how you wrote today.",
		},
		followups: []string{
			"What lined up to make last night work?",
		},
	},
	{TopicSleep, ToneMixed}: {
		openers: []string{
			"Tired but pushing through. That works for a while; it's worth noticing how long the while has been.",
		},
		followups: []string{
			"If rest were non-negotiable this week, where would it fit?",
		},
	},
	{TopicSleep, ToneNeutral}: {
		openers: []string{
			"Tracking your sleep on the page is half the battle; the pattern shows up in the entries before it shows up anywhere else.",
		},
		followups: []string{
			"How many decent nights have you strung together lately?",
		},
	},
	{TopicNewJournaling, ToneNegative}: {
		openers: []string{
			"Starting a journal on a hard day takes more nerve than starting on an easy one. You showed up anyway, and that's the whole assignment.",
			"First entries don't have to be graceful. You put the hard stuff into words on day one, which is further than most people get.",
		},
		followups: []string{
			"What made today the day you decided to start writing?",
		},
		nudges: []string{"There's no wrong way to do this. Short and honest beats long and polished."},
	},
	{TopicNewJournaling, TonePositive}: {
		openers: []string{
			"Welcome to the habit. Starting on a good day means your first data point is a bright one — a nice way to open the record.",
		},
		followups: []string{
			"What are you hoping to get out of keeping a journal?",
		},
	},
	{TopicNewJournaling, ToneMixed}: {
		openers: []string{
			"A first entry with both light and shadow in it — that's a journal doing its job from page one.",
		},
		followups: []string{
			"Which side of today would you want to write more about next time?",
		},
	},
	{TopicNewJournaling, ToneNeutral}: {
		openers: []string{
			"First entry down. Nothing dramatic needs to happen here — the value shows up in the entries stacking behind this one.",
		},
		followups: []string{
			"Is there anything you've been carrying around that you'd want this journal to hold?",
		},
		nudges: []string{"A few lines most days beats a perfect essay once a month."},
	},
	{TopicRumination, ToneNegative}: {
		openers: []string{
			"That spinning, everything-at-once feeling is exhausting to carry and hard to explain. Writing it down is exactly the right move — it gives the spiral an edge to stop against.",
			"Anxiety narrates worst cases with total confidence and no sources. What you wrote sounds loud, and you got it onto the page anyway.",
		},
		followups: []string{
			"Of everything circling, which worry is actually actionable today?",
		},
		nudges:    []string{"Five slow breaths before the next task. Not a cure, just a clutch pedal.", "Name three things in the room. It interrupts the loop."},
		useAnchor: true,
		callback:  callbackCoping,
	},
	{TopicRumination, TonePositive}: {
		openers: []string{
			"You went through something that usually rattles you and came out steadier. That's not luck; that's capacity you've built.",
		},
		followups: []string{
			"What did you do differently this time that kept it manageable?",
		},
		callback: callbackWins,
	},
	{TopicRumination, ToneMixed}: {
		openers: []string{
			"Managing and struggling at the same time — that's what coping actually looks like, not the calm poster version.",
		},
		followups: []string{
			"When did the worry peak today, and what was happening right before?",
		},
		callback: callbackCoping,
	},
	{TopicRumination, ToneNeutral}: {
		openers: []string{
			"You're observing the worry instead of being inside it, at least on the page. That distance is a skill.",
		},
		followups: []string{
			"Does the worry have a schedule — certain times, certain places?",
		},
	},
	{TopicSchool, ToneNegative}: {
		openers: []string{
			"School piles deadlines on top of identity in a way jobs rarely do — it grades you and it grades your future at the same time. Heavy is the correct reading.",
		},
		followups: []string{
			"Which assignment or exam is generating most of the dread, and is its size accurate?",
		},
		nudges:   []string{"Twenty-five focused minutes on the worst one tonight, then stop. Starting shrinks it."},
		callback: callbackCoping,
	},
	{TopicSchool, TonePositive}: {
		openers: []string{
			"That's the payoff for work nobody saw you do. Let the grade land; you earned the whole of it.",
		},
		followups: []string{
			"What study habit actually moved the needle this time?",
		},
		callback: callbackWins,
	},
	{TopicSchool, ToneMixed}: {
		openers: []string{
			"One class up, another down — a normal semester shape, even when it doesn't feel like one.",
		},
		followups: []string{
			"Where would one reallocated hour a week do the most good?",
		},
	},
	{TopicSchool, ToneNeutral}: {
		openers: []string{
			"A steady stretch of the semester, duly noted. These are the weeks the panicked ones borrow from.",
		},
		followups: []string{
			"Anything coming up on the syllabus worth getting ahead of?",
		},
	},
	{TopicFood, ToneNegative}: {
		openers: []string{
			"The relationship with food gets complicated fastest on hard days. Be gentle with yourself about whatever today looked like.",
		},
		followups: []string{
			"Was the food the issue, or was it standing in for something else?",
		},
		callback: callbackCoping,
	},
	{TopicFood, TonePositive}: {
		openers: []string{
			"A good meal pulls more weight than it gets credit for. Glad today had one in it.",
		},
		followups: []string{
			"Was it the food itself, or the moment around it?",
		},
		callback: callbackLikes,
	},
	{TopicFood, ToneMixed}: {
		openers: []string{
			"Food carried some of today's mood in both directions. It tends to do that — comfort and complication in the same bite.",
		},
		followups: []string{
			"What would taking care of yourself look like at the next meal?",
		},
	},
	{TopicFood, ToneNeutral}: {
		openers: []string{
			"Cooking and eating showed up in today's entry as ordinary life, which is the best way for them to show up.",
		},
		followups: []string{
			"Anything you've been meaning to cook that would be worth the trouble?",
		},
		callback: callbackLikes,
	},
	{TopicWins, ToneNegative}: {
		openers: []string{
			"Something went right today and you're still finding it hard to feel. That gap between the fact and the feeling is worth a line of its own.",
		},
		followups: []string{
			"What's making it hard to let the win count?",
		},
		callback: callbackWins,
	},
	{TopicWins, TonePositive}: {
		openers: []string{
			"That's a real win and you wrote it down, which means future-you gets to find it on a worse day. Good investment.",
			"You did the thing. Take the full lap before the next item on the list.",
		},
		followups: []string{
			"What did it take to pull this off that nobody else saw?",
		},
		callback: callbackWins,
	},
	{TopicWins, ToneMixed}: {
		openers: []string{
			"A win with an asterisk is still a win. The asterisk can have its own entry some other day.",
		},
		followups: []string{
			"If you strip out the 'but', what's left that you're proud of?",
		},
		callback: callbackWins,
	},
	{TopicWins, ToneNeutral}: {
		openers: []string{
			"Logged: a thing accomplished. The flat tone doesn't reduce the fact of it.",
		},
		followups: []string{
			"Did finishing it feel like anything, or did the next task swallow the moment?",
		},
		callback: callbackWins,
	},
	{TopicDecisions, ToneNegative}: {
		openers: []string{
			"Standing at a fork is tiring in a way that looks like nothing from the outside. The indecision is work, even when no choice gets made.",
		},
		followups: []string{
			"Which option are you secretly hoping someone will talk you out of?",
		},
		useAnchor: true,
	},
	{TopicDecisions, TonePositive}: {
		openers: []string{
			"You made the call, and you sound lighter for it. Deciding is its own relief, separate from being right.",
		},
		followups: []string{
			"What finally tipped it?",
		},
		callback: callbackWins,
	},
	{TopicDecisions, ToneMixed}: {
		openers: []string{
			"Eighty percent sure and twenty percent queasy is about as confident as big decisions ever get. You're in the normal range.",
		},
		followups: []string{
			"Is the doubt new information, or just the cost of choosing?",
		},
	},
	{TopicDecisions, ToneNeutral}: {
		openers: []string{
			"You're laying the options out on the page, which beats letting them orbit your head at 2am.",
		},
		followups: []string{
			"What would you need to know to make this choice easy?",
		},
	},
	{TopicWellness, ToneNegative}: {
		openers: []string{
			"Even the things meant to restore you can feel like chores on a heavy day. That's a sign of the load, not a failure of the practice.",
		},
		followups: []string{
			"What's the smallest version of taking care of yourself that still feels doable tonight?",
		},
		callback: callbackCoping,
	},
	{TopicWellness, TonePositive}: {
		openers: []string{
			"You did something kind for yourself and it worked. Worth underlining, since those are the habits that quietly hold everything else up.",
		},
		followups: []string{
			"How could you make that easier to repeat this week?",
		},
		callback: callbackCoping,
	},
	{TopicWellness, ToneMixed}: {
		openers: []string{
			"Showing up for the practice even when it half-works still counts. Consistency is built mostly out of mediocre sessions.",
		},
		followups: []string{
			"What gets in the way on the days it doesn't happen?",
		},
	},
	{TopicWellness, ToneNeutral}: {
		openers: []string{
			"Maintenance mode: unremarkable, essential. The entries where nothing dramatic happens are the ones keeping the graph steady.",
		},
		followups: []string{
			"Anything you'd like to add to the routine, or is it earning its keep as is?",
		},
	},
	{TopicGeneral, ToneNegative}: {
		openers: []string{
			"Today asked a lot of you. Whatever else is true, you put it into words instead of carrying it silently, and that matters.",
			"That sounds like a heavy one. You don't have to sort it all out tonight — getting it onto the page is enough.",
		},
		followups: []string{
			"If one piece of this could be lighter by tomorrow, which would you pick?",
		},
		nudges:    []string{"Be as kind to yourself tonight as you'd be to a friend who had this exact day."},
		useAnchor: true,
		callback:  callbackCoping,
	},
	{TopicGeneral, TonePositive}: {
		openers: []string{
			"A good day, written down while it's still warm. Future-you will be glad this one's on record.",
			"There's real brightness in this entry. Days like this are worth more than a passing mention.",
		},
		followups: []string{
			"What's one detail from today you want to remember in a month?",
		},
		callback: callbackWins,
	},
	{TopicGeneral, ToneMixed}: {
		openers: []string{
			"Today held both weather systems at once. You don't have to average them out — the page can hold contradictions.",
		},
		followups: []string{
			"Which part of today deserves the next paragraph, the hard part or the good part?",
		},
		useAnchor: true,
	},
	{TopicGeneral, ToneNeutral}: {
		openers: []string{
			"An ordinary day, faithfully recorded. Most of a life is made of these, and they're the baseline everything else is measured against.",
			"Thanks for checking in even when there's no headline. The steady entries make the patterns visible later.",
		},
		followups: []string{
			"Is there anything under the surface of today that didn't make it into words?",
		},
	},
}

// needMoreDetail is used when the entry is too thin to reflect on.
var needMoreDetail = pool{
	openers: []string{
		"There's not quite enough here for me to reflect back yet.",
		"I'd love to say something useful, but this entry is a little too brief to read much from.",
	},
	followups: []string{
		"Could you say a bit more about what's going on today?",
		"What's one thing from today you'd want to get down, even roughly?",
	},
}

// Guided-session pools keyed by the mode recorded in the transcript
// header. Unknown modes fall back to guidedDefault.
var guidedPools = map[string]pool{
	"unwind": {
		openers: []string{
			"You took the time to unwind on purpose, which is more deliberate than most days allow. Whatever came out in those answers has been set down now.",
			"Good session. Unwinding isn't avoiding the day — it's ending it on your own terms.",
		},
		followups: []string{
			"Is there anything still holding tension that the questions didn't reach?",
		},
		callback: callbackCoping,
	},
	"untangle": {
		openers: []string{
			"You walked the knot through question by question instead of yanking at it. Even if it's not fully loose, it's mapped now.",
			"Untangling on paper beats untangling at 2am. The shape of the problem is clearer in your answers than it was in your head.",
		},
		followups: []string{
			"Looking back over your answers, what stands out that you didn't expect?",
		},
		useAnchor: true,
	},
	"check-in": {
		openers: []string{
			"A clean check-in. Taking your own temperature regularly is how the small drifts get caught before they become weather.",
			"Checked in and accounted for. The honest middle-of-the-road answers are just as valuable as the dramatic ones.",
		},
		followups: []string{
			"Anything from this check-in you want to keep an eye on over the next few days?",
		},
	},
	"small-win": {
		openers: []string{
			"You took a moment to mark a win instead of letting it evaporate. That's how confidence gets built — one recorded data point at a time.",
			"Win logged. The habit of noticing what went right is quietly one of the strongest ones in this whole practice.",
		},
		followups: []string{
			"What does this win tell you about what you're capable of lately?",
		},
		callback: callbackWins,
	},
}

var guidedDefault = pool{
	openers: []string{
		"You gave the guided questions real answers, and that attention shows.",
		"Session complete. Working through prompts like this leaves a better record than a blank page ever would.",
	},
	followups: []string{
		"Anything the questions missed that you'd want to add in your own words?",
	},
}
