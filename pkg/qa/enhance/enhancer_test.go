package enhance

import (
	"strings"
	"testing"

	"penai-be/pkg/family"
	"penai-be/pkg/qa/tracker"
)

func TestEnhanceFirstInteractionGreeting(t *testing.T) {
	e := NewEnhancer()
	trk := tracker.New("s1", "")
	trk.RecordInteraction("What are the fees?", "Fees are X.", "fees")

	got := e.Enhance("Fees are X.", trk, nil)
	if !strings.HasPrefix(got, "Hello! What a lovely question to start with.") {
		t.Errorf("first interaction should open with the greeting, got %q", got)
	}
	if !strings.Contains(got, "Fees are X.") {
		t.Errorf("raw answer missing from %q", got)
	}
}

func TestEnhanceTopicRevisited(t *testing.T) {
	e := NewEnhancer()
	trk := tracker.New("s1", "")
	trk.RecordInteraction("Tell me about boarding", "a", "boarding")
	trk.RecordInteraction("What sports do you offer?", "a", "sport")
	trk.RecordInteraction("Back to boarding", "a", "boarding")

	got := e.Enhance("Boarding is great.", trk, nil)
	if !strings.HasPrefix(got, "Following on from what we discussed...") {
		t.Errorf("revisited topic should use the follow-on acknowledgment, got %q", got)
	}
}

func TestEnhanceChildNameSubstitution(t *testing.T) {
	e := NewEnhancer()
	trk := tracker.New("s1", "fam-1")
	trk.RecordInteraction("q1", "a", "general")
	trk.RecordInteraction("q2", "a", "general")

	fam := &family.Context{FamilyID: "fam-1", ChildName: "Emily"}
	got := e.Enhance("We would love to welcome your daughter here.", trk, fam)

	if strings.Contains(got, "your daughter here") {
		t.Errorf("child name not substituted: %q", got)
	}
	if !strings.Contains(got, "Emily") {
		t.Errorf("expected child name in %q", got)
	}
}

func TestEnhanceReassuranceWhenConcerned(t *testing.T) {
	e := NewEnhancer()
	trk := tracker.New("s1", "")
	trk.RecordInteraction("q1", "a", "general")
	trk.RecordInteraction("I'm worried about homesickness", "a", "pastoral")

	got := e.Enhance("Our houseparents are wonderful.", trk, nil)

	var hasReassurance bool
	for _, phrase := range reassurancePhrases {
		if strings.HasPrefix(got, phrase) {
			hasReassurance = true
			break
		}
	}
	if !hasReassurance {
		t.Errorf("concerned state should prefix reassurance, got %q", got)
	}
}

func TestEnhanceFollowUpByTopic(t *testing.T) {
	tests := []struct {
		name      string
		topic     string
		wantInAny []string
	}{
		{"fees topic", "fees", followUpQuestions["fees"]},
		{"admissions topic", "admissions", followUpQuestions["admissions"]},
		{"unmapped topic", "weather", followUpQuestions["general"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnhancer()
			trk := tracker.New("s1", "")
			trk.RecordInteraction("q1", "a", tt.topic)
			trk.RecordInteraction("q2", "a", tt.topic)

			got := e.Enhance("Answer.", trk, nil)
			var found bool
			for _, q := range tt.wantInAny {
				rendered := strings.ReplaceAll(q, "{child_name}", "your daughter")
				if strings.Contains(got, rendered) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no follow-up from pool %v in %q", tt.wantInAny, got)
			}
		})
	}
}

func TestEnhanceNoTopicFallbackQuestion(t *testing.T) {
	e := NewEnhancer()
	trk := tracker.New("s1", "")
	trk.RecordInteraction("q1", "a", "")
	trk.RecordInteraction("q2", "a", "")

	got := e.Enhance("Answer.", trk, nil)
	if !strings.Contains(got, "Is there anything specific you'd like to know about Cheltenham College?") {
		t.Errorf("expected the generic prompt in %q", got)
	}
}

func TestEnhanceHandoffCadence(t *testing.T) {
	e := NewEnhancer()
	trk := tracker.New("s1", "")
	// Three high-intent questions arm the handoff offer.
	trk.RecordInteraction("How do I apply?", "a", "admissions")
	trk.RecordInteraction("Can we visit soon?", "a", "open_events")
	trk.RecordInteraction("What is the fee?", "a", "fees")
	trk.RecordInteraction("q4", "a", "general")
	trk.RecordInteraction("q5", "a", "general")

	got := e.Enhance("Answer.", trk, nil)
	if !strings.Contains(got, "arrange for someone from our admissions team") {
		t.Errorf("handoff offer expected at a multiple of five, got %q", got)
	}

	trk.RecordInteraction("q6", "a", "general")
	got = e.Enhance("Answer.", trk, nil)
	if strings.Contains(got, "arrange for someone from our admissions team") {
		t.Errorf("handoff offer should be throttled off-cadence, got %q", got)
	}
}

func TestEnhanceIsDeterministicForSameState(t *testing.T) {
	e := NewEnhancer()
	trk := tracker.New("s1", "")
	trk.RecordInteraction("q1", "a", "fees")
	trk.RecordInteraction("q2", "a", "fees")

	first := e.Enhance("Answer.", trk, nil)
	second := e.Enhance("Answer.", trk, nil)
	if first != second {
		t.Errorf("repeated enhancement diverged:\n%q\n%q", first, second)
	}
}
