package topic

import "strings"

// SiteRoot is the default link target when nothing better is known.
const SiteRoot = "https://www.cheltenhamcollege.org"

// group pairs a topic tag with the question substrings that signal it.
// Order matters: the first group with a hit wins, matching the priority
// the answer templates were tuned against.
type group struct {
	name     string
	keywords []string
}

var groups = []group{
	{"fees", []string{"fee", "cost", "price", "tuition", "charges"}},
	{"admissions", []string{"admission", "apply", "join", "register"}},
	{"subjects", []string{"subject", "curriculum", "academic"}},
	{"boarding", []string{"boarding", "boarder", "house"}},
	{"scholarships", []string{"scholarship", "bursary", "award"}},
	{"open_events", []string{"open", "visit", "tour"}},
	{"sixth_form", []string{"sixth form", "a level", "upper college"}},
	{"sport", []string{"sport", "athletics", "rugby", "netball"}},
}

// Detect returns the coarse topic tag for a question, or "" when no
// keyword group matches.
func Detect(question string) string {
	q := strings.ToLower(question)
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(q, kw) {
				return g.name
			}
		}
	}
	return ""
}

// Link is a website destination with a call-to-action label.
type Link struct {
	URL   string
	Label string
}

var links = map[string]Link{
	"fees":         {SiteRoot + "/admissions/fees/", "View fees page"},
	"admissions":   {SiteRoot + "/admissions/", "Visit admissions page"},
	"subjects":     {SiteRoot + "/college/curriculum/", "Explore curriculum"},
	"boarding":     {SiteRoot + "/college/boarding/", "Discover boarding life"},
	"scholarships": {SiteRoot + "/admissions/scholarships-awards/", "View scholarships"},
	"open_events":  {SiteRoot + "/admissions/visit-us/open-events/", "Book open event"},
	"sixth_form":   {SiteRoot + "/college/upper-college-16-18/", "Learn about Sixth Form"},
	"sport":        {SiteRoot + "/college/co-curricular/sport/", "Explore sports"},
}

// LinkFor resolves the best link for a detected topic, falling back to
// the source passage's own URL and finally the site root.
func LinkFor(detected, passageURL string) (string, string) {
	if l, ok := links[detected]; ok {
		return l.URL, l.Label
	}
	if passageURL != "" {
		return passageURL, "Visit website"
	}
	return SiteRoot + "/", "Visit website"
}
