package suggest

import (
	"testing"
)

func TestForMatchedKey(t *testing.T) {
	got := For("fees", "en")
	if len(got) == 0 {
		t.Fatal("no suggestions for fees")
	}
	for _, s := range got {
		if s.Query == "" || s.Label == "" {
			t.Errorf("empty chip: %+v", s)
		}
	}
}

func TestForDetectsTopicFromQuestion(t *testing.T) {
	got := For("how much does boarding cost", "en")
	if len(got) == 0 || got[0].Label != "Scholarships" {
		t.Errorf("expected fees chips for a cost question, got %+v", got)
	}
}

func TestForFallsBackToDefaults(t *testing.T) {
	got := For("what is the weather like", "en")
	if len(got) != len(defaults) {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if got[0].Label != "Open Events" {
		t.Errorf("first default chip = %+v", got[0])
	}
}
