package reflection

import "testing"

func TestDetectTone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"plainly negative", "I am so stressed and exhausted by everything.", ToneNegative},
		{"plainly positive", "Today was great, I feel hopeful and rested.", TonePositive},
		{"both registers", "Work was awful but dinner with friends made me happy.", ToneMixed},
		{"no markers", "I went to the store and bought supplies for the week.", ToneNeutral},
		{"empty", "", ToneNeutral},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectTone(tc.text); got != tc.want {
				t.Fatalf("DetectTone(%q) got=%v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestDetectTopic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"work words", "My boss moved the deadline again and the meetings ran long.", TopicWork},
		{"wellness outranks work", "The burnout from work is getting serious, I talked to my therapist.", TopicWellness},
		{"rumination", "I can't stop thinking about what I said, just keep replaying it.", TopicRumination},
		{"self worth", "I feel like a failure, like I'm not good enough for any of this.", TopicSelfWorth},
		{"decision", "Should I take the offer or stay where I am? I'm torn between them.", TopicDecisions},
		{"finances", "Rent is due and the bills keep stacking up faster than the paycheck.", TopicFinances},
		{"relationships", "Had a long talk with my sister about the holidays.", TopicRelationships},
		{"school", "Two exams this week and the professor added another assignment.", TopicSchool},
		{"health", "The headache is back and the doctor wants more tests.", TopicHealth},
		{"food below relationships", "Made dinner with my partner tonight.", TopicRelationships},
		{"sleep", "Tossing and turning again last night, I barely slept.", TopicSleep},
		{"new journaling", "This is my first entry, never journaled before.", TopicNewJournaling},
		{"nothing matches", "Watered the plants and reorganized the garage shelves.", TopicGeneral},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectTopic(tc.text); got != tc.want {
				t.Fatalf("DetectTopic(%q) got=%v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestTopicPoolsCoverEveryDetectableTopicAndTone(t *testing.T) {
	t.Parallel()

	// Every topic the classifier can return must have a pool for every
	// tone, or composition would produce an empty mirror.
	topics := []Topic{TopicGeneral}
	for _, rule := range topicRules {
		topics = append(topics, rule.topic)
	}
	for _, topic := range topics {
		for _, tone := range []Tone{ToneNegative, TonePositive, ToneMixed, ToneNeutral} {
			if _, ok := topicPools[poolKey{topic, tone}]; !ok {
				t.Fatalf("missing pool for topic %q tone %q", topic, tone)
			}
		}
	}
}
