package prompt

import (
	"fmt"
	"strings"
)

// SystemPersona is the standing instruction given to the chat model
// when summarising retrieved passages.
const SystemPersona = "You are a warm, helpful British school assistant. Be conversational."

// Grounded builds a retrieval prompt that restricts the model to the
// given passages. recentQuestions carries up to the last few user
// questions, already truncated, for conversation awareness.
func Grounded(question string, passages []string, recentQuestions []string) string {
	var b strings.Builder

	if len(recentQuestions) > 0 {
		b.WriteString("Previous context: Q: ")
		b.WriteString(strings.Join(recentQuestions, " | Q: "))
		b.WriteString("\n\n")
	}

	b.WriteString("Use ONLY the passages below to answer.\n\n")
	b.WriteString(strings.Join(passages, "\n---\n"))
	fmt.Fprintf(&b, "\n\nQuestion: %s\nAnswer:", question)

	return b.String()
}
