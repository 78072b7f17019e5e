package enhance

import (
	"strings"

	"penai-be/pkg/family"
	"penai-be/pkg/qa/tracker"
)

const defaultHandoffEvery = 5

// childNamePlaceholder marks where a follow-up question personalizes.
const childNamePlaceholder = "{child_name}"

var acknowledgments = []string{
	"That's a great question.",
	"I'm glad you asked about that.",
	"Let me tell you about that.",
	"Excellent question.",
	"Many families ask about this.",
}

var reassurancePhrases = []string{
	"That's a very common concern, and I'm happy to address it...",
	"Many parents ask about this, and it's important to get it right...",
	"I completely understand why you'd want to know about this...",
	"That's an excellent question, and I'm glad you asked...",
}

var followUpQuestions = map[string][]string{
	"fees": {
		"Are you also interested in our scholarship opportunities?",
		"Would you like to know about our payment plans?",
		"Shall I explain our bursary programme?",
	},
	"sports": {
		"What sports does {child_name} enjoy currently?",
		"Is {child_name} interested in competitive teams or recreational activities?",
		"Would you like to know about our sports facilities?",
	},
	"academic": {
		"What subjects does {child_name} particularly enjoy?",
		"Are you interested in our academic enrichment programmes?",
		"Would you like to see our recent exam results?",
	},
	"admissions": {
		"Which year group are you considering for entry?",
		"Would you like to book a personal tour?",
		"Shall I explain our application timeline?",
	},
	"pastoral": {
		"Is there anything specific about {child_name}'s needs I should know?",
		"Would you like to speak with our pastoral team?",
		"Are you interested in our wellbeing programmes?",
	},
	"general": {
		"What else would you like to know?",
	},
}

// followUpCategories maps a matched topic onto a follow-up pool. First
// group with a keyword hit wins; anything unmatched falls to "general".
var followUpCategories = []struct {
	name     string
	keywords []string
}{
	{"fees", []string{"fee", "cost", "price", "burs", "scholar"}},
	{"sports", []string{"sport", "athletic", "team", "football", "netball"}},
	{"academic", []string{"academic", "subject", "curriculum", "exam", "result"}},
	{"admissions", []string{"admission", "apply", "join", "entry", "register"}},
	{"pastoral", []string{"pastoral", "care", "wellbeing", "support", "help"}},
}

const handoffOffer = " By the way, would you like me to arrange for someone from our admissions team to call you directly?"

// Enhancer turns a raw factual answer into the warm, personalized
// utterance a voice session speaks. Enhance is a pure transformation of
// the tracker's current state, so duplicate deliveries of the same turn
// produce identical text, while the interaction count rotates phrasing
// across the conversation.
type Enhancer struct {
	// HandoffEvery throttles the human-handoff offer to interaction
	// counts that are multiples of it.
	HandoffEvery int
}

func NewEnhancer() *Enhancer {
	return &Enhancer{HandoffEvery: defaultHandoffEvery}
}

// Enhance wraps the raw answer with an acknowledgment, personalization,
// reassurance, a follow-up question and (throttled) a handoff offer.
// familyCtx may be nil.
func (e *Enhancer) Enhance(rawAnswer string, t *tracker.Tracker, familyCtx *family.Context) string {
	count := t.InteractionCount()

	enhanced := e.acknowledgment(t, count) + " " + rawAnswer

	if familyCtx != nil && familyCtx.ChildName != "" {
		enhanced = strings.ReplaceAll(enhanced, "your child", familyCtx.ChildName)
		enhanced = strings.ReplaceAll(enhanced, "your daughter", familyCtx.ChildName)
	}

	if t.EmotionalState() == tracker.StateConcerned {
		enhanced = reassurancePhrases[t.ConcernCount()%len(reassurancePhrases)] + " " + enhanced
	}

	if followUp := e.followUpQuestion(t, count, familyCtx); followUp != "" {
		enhanced += " " + followUp
	}

	every := e.HandoffEvery
	if every <= 0 {
		every = defaultHandoffEvery
	}
	if t.ShouldOfferHumanHandoff() && count%every == 0 {
		enhanced += handoffOffer
	}

	return enhanced
}

func (e *Enhancer) acknowledgment(t *tracker.Tracker, count int) string {
	switch {
	case count <= 1:
		return "Hello! What a lovely question to start with."
	case t.TopicRevisited():
		return "Following on from what we discussed..."
	case t.EmotionalState() == tracker.StateConcerned:
		return "I can hear this is important to you."
	default:
		return acknowledgments[count%len(acknowledgments)]
	}
}

func (e *Enhancer) followUpQuestion(t *tracker.Tracker, count int, familyCtx *family.Context) string {
	lastTopic := t.LastTopic()
	if lastTopic == "" {
		return "Is there anything specific you'd like to know about Cheltenham College?"
	}

	pool := followUpQuestions[categorizeTopic(lastTopic)]
	question := pool[count%len(pool)]

	childName := "your daughter"
	if familyCtx != nil && familyCtx.ChildName != "" {
		childName = familyCtx.ChildName
	}
	return strings.ReplaceAll(question, childNamePlaceholder, childName)
}

func categorizeTopic(topic string) string {
	topicLower := strings.ToLower(topic)
	for _, c := range followUpCategories {
		for _, kw := range c.keywords {
			if strings.Contains(topicLower, kw) {
				return c.name
			}
		}
	}
	return "general"
}
