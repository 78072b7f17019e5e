package textmatch

import (
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "school fees",
			b:    "school fees",
			want: 1.0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 1.0,
		},
		{
			name: "one empty",
			a:    "fees",
			b:    "",
			want: 0.0,
		},
		{
			name: "no overlap",
			a:    "abc",
			b:    "xyz",
			want: 0.0,
		},
		{
			name: "half overlap",
			a:    "abcd",
			b:    "bcde",
			// Longest block "bcd" => 2*3/8
			want: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioSymmetricAndBounded(t *testing.T) {
	pairs := [][2]string{
		{"open day", "open morning"},
		{"fees", "tuition fees"},
		{"how do i apply", "how to apply"},
		{"scholarship", "scholarships and bursaries"},
		{"boarding", "day"},
	}

	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])

		if ab != ba {
			t.Errorf("Ratio(%q, %q) = %v but Ratio(%q, %q) = %v, want symmetric",
				p[0], p[1], ab, p[1], p[0], ba)
		}
		if ab < 0 || ab > 1 {
			t.Errorf("Ratio(%q, %q) = %v, want within [0, 1]", p[0], p[1], ab)
		}
	}
}

func TestRatioNearMiss(t *testing.T) {
	// Close phrasings should clear the 0.8 fuzzy-match bar, distant ones should not.
	if got := Ratio("school fees", "school fee"); got <= 0.8 {
		t.Errorf("Ratio close phrasing = %v, want > 0.8", got)
	}
	if got := Ratio("school fees", "sports teams"); got > 0.8 {
		t.Errorf("Ratio distant phrasing = %v, want <= 0.8", got)
	}
}
