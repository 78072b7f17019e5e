package topic

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"How much does it cost per term?", "fees"},
		{"What is the tuition?", "fees"},
		{"How do I apply for entry?", "admissions"},
		{"Which subjects can my son study?", "subjects"},
		{"Do you have full boarding?", "boarding"},
		{"Are music scholarships available?", "scholarships"},
		{"When is the next open morning?", "open_events"},
		{"Tell me about the sixth form", "sixth_form"},
		{"What sports do you play?", "sport"},
		{"What is the weather like?", ""},
	}

	for _, tt := range tests {
		if got := Detect(tt.question); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.question, got, tt.want)
		}
	}
}

func TestDetectFirstGroupWins(t *testing.T) {
	// Mentions both fees and boarding; fees is listed first.
	if got := Detect("What are the boarding fees?"); got != "fees" {
		t.Errorf("Detect = %q, want fees", got)
	}
}

func TestLinkFor(t *testing.T) {
	url, label := LinkFor("fees", "")
	if url != SiteRoot+"/admissions/fees/" || label == "" {
		t.Errorf("LinkFor(fees) = %q, %q", url, label)
	}

	url, label = LinkFor("general", "https://example.org/passage")
	if url != "https://example.org/passage" || label != "Visit website" {
		t.Errorf("LinkFor fallback = %q, %q", url, label)
	}

	url, _ = LinkFor("general", "")
	if url != SiteRoot+"/" {
		t.Errorf("LinkFor site root fallback = %q", url)
	}
}
