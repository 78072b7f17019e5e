package prompt

import (
	"strings"
	"testing"
)

func TestGrounded(t *testing.T) {
	got := Grounded("What sports do you offer?",
		[]string{"passage one", "passage two"},
		nil)

	if !strings.HasPrefix(got, "Use ONLY the passages below to answer.") {
		t.Errorf("missing grounding instruction: %q", got)
	}
	if !strings.Contains(got, "passage one\n---\npassage two") {
		t.Errorf("passages not joined with separator: %q", got)
	}
	if !strings.HasSuffix(got, "Question: What sports do you offer?\nAnswer:") {
		t.Errorf("missing question/answer frame: %q", got)
	}
}

func TestGroundedWithConversationContext(t *testing.T) {
	got := Grounded("And the fees?",
		[]string{"p"},
		[]string{"What sports do you offer", "Do you have boarding"})

	if !strings.HasPrefix(got, "Previous context: Q: What sports do you offer | Q: Do you have boarding\n\n") {
		t.Errorf("context block malformed: %q", got)
	}
}
