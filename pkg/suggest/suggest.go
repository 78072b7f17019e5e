package suggest

import (
	"penai-be/pkg/qa/topic"
)

// Suggestion is a tappable follow-up chip: the query sent back when
// tapped, and the short label shown on the button.
type Suggestion struct {
	Query string `json:"query"`
	Label string `json:"label"`
}

var byTopic = map[string][]Suggestion{
	"fees": {
		{Query: "What scholarships are available?", Label: "Scholarships"},
		{Query: "Do you offer bursaries?", Label: "Bursaries"},
		{Query: "When are the next open events?", Label: "Open Events"},
	},
	"admissions": {
		{Query: "How do I apply?", Label: "How to Apply"},
		{Query: "When are the next open events?", Label: "Open Events"},
		{Query: "What are the school fees?", Label: "Fees"},
	},
	"subjects": {
		{Query: "What are your exam results?", Label: "Results"},
		{Query: "What subjects are offered in Sixth Form?", Label: "Sixth Form"},
		{Query: "What sports do you offer?", Label: "Sport"},
	},
	"boarding": {
		{Query: "What is pastoral care like?", Label: "Pastoral Care"},
		{Query: "What are the school fees?", Label: "Fees"},
		{Query: "Can we visit the school?", Label: "Visit Us"},
	},
	"scholarships": {
		{Query: "Do you offer bursaries?", Label: "Bursaries"},
		{Query: "What are the school fees?", Label: "Fees"},
		{Query: "How do I apply?", Label: "How to Apply"},
	},
	"open_events": {
		{Query: "How do I apply?", Label: "How to Apply"},
		{Query: "What are the school fees?", Label: "Fees"},
		{Query: "What is boarding like?", Label: "Boarding"},
	},
	"sixth_form": {
		{Query: "What subjects are offered in Sixth Form?", Label: "Subjects"},
		{Query: "What are your exam results?", Label: "Results"},
		{Query: "What scholarships are available?", Label: "Scholarships"},
	},
	"sport": {
		{Query: "What sports facilities do you have?", Label: "Facilities"},
		{Query: "What co-curricular activities are offered?", Label: "Co-curricular"},
		{Query: "Can we visit the school?", Label: "Visit Us"},
	},
}

var defaults = []Suggestion{
	{Query: "When are the next open events?", Label: "Open Events"},
	{Query: "How do I apply?", Label: "How to Apply"},
	{Query: "What are the school fees?", Label: "Fees"},
}

// For returns chips contextual to the matched key or, failing that, to
// the topic detected from the raw question. Language is accepted for
// parity with localized tables but only English chips ship today.
func For(keyOrQuestion, language string) []Suggestion {
	if s, ok := byTopic[keyOrQuestion]; ok {
		return s
	}
	if s, ok := byTopic[topic.Detect(keyOrQuestion)]; ok {
		return s
	}
	return defaults
}
