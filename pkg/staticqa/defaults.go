package staticqa

const siteRoot = "https://www.cheltenhamcollege.org"

// Default returns the built-in curated English table, used when no
// generated table file is configured. The generator job produces a much
// larger file covering policies and PDFs; this subset keeps the service
// useful without it.
func Default() Table {
	return Table{
		{
			Key:      "admissions",
			Language: "en",
			Answer:   "Cheltenham College admissions information, entry process and who to contact.",
			URL:      siteRoot + "/admissions/",
			Label:    "Admissions",
			Variants: []string{"admissions", "apply", "join", "application", "registration", "how to apply", "entry process"},
		},
		{
			Key:      "enquiry",
			Language: "en",
			Answer:   "Send an enquiry to our Admissions team and we'll be in touch with next steps.",
			URL:      siteRoot + "/contact-us/",
			Label:    "Send an enquiry",
			Variants: []string{"enquiry", "enquire", "contact admissions", "ask a question", "request information"},
		},
		{
			Key:      "open events",
			Language: "en",
			Answer:   "We host open mornings and visit opportunities throughout the year. Choose a date and register online.",
			URL:      siteRoot + "/admissions/visit-us/",
			Label:    "Open events",
			Variants: []string{"open morning", "open day", "visit", "tour", "open evening"},
		},
		{
			Key:      "fees",
			Language: "en",
			Answer:   "Details of current school fees, what they include and how to pay.",
			URL:      siteRoot + "/admissions/fees/",
			Label:    "Fees",
			Variants: []string{"fees", "school fees", "tuition", "cost", "how much"},
		},
		{
			Key:      "scholarships",
			Language: "en",
			Answer:   "We offer a range of scholarships and bursaries. Guidance and criteria are available online.",
			URL:      siteRoot + "/scholarships-key-dates/",
			Label:    "Scholarships & bursaries",
			Variants: []string{"scholarships", "bursaries", "financial aid", "awards"},
		},
		{
			Key:      "term dates",
			Language: "en",
			Answer:   "Term dates and the school calendar are available online.",
			URL:      siteRoot + "/key-information-for-parents/term-dates/",
			Label:    "Term dates",
			Variants: []string{"term dates", "calendar", "half term", "holiday dates"},
		},
		{
			Key:      "sixth form",
			Language: "en",
			Answer:   "Explore Sixth Form life, subjects and opportunities.",
			URL:      siteRoot + "/college/sixth-form/",
			Label:    "Sixth Form",
			Variants: []string{"sixth form", "a level", "a-level"},
		},
		{
			Key:      "subjects",
			Language: "en",
			Answer:   "Find details of subjects and the academic programme.",
			URL:      siteRoot + "/college/lower-college-curriculum/",
			Label:    "Subjects & curriculum",
			Variants: []string{"subjects", "curriculum", "departments", "academic"},
		},
		{
			Key:      "pastoral",
			Language: "en",
			Answer:   "Pastoral care and wellbeing information.",
			URL:      siteRoot + "/college/health-wellbeing/",
			Label:    "Pastoral care",
			Variants: []string{"pastoral", "wellbeing", "support"},
		},
		{
			Key:      "boarding",
			Language: "en",
			Answer:   "Cheltenham College offers boarding and day places. Read about our boarding information and principles.",
			URL:      siteRoot + "/college/houses/",
			Label:    "Boarding",
			Variants: []string{"boarding", "houses", "boarder", "boarding principles"},
		},
		{
			Key:      "sport",
			Language: "en",
			Answer:   "Sport at school, including fixtures and programmes.",
			URL:      siteRoot + "/college/sport/",
			Label:    "Sport",
			Variants: []string{"sport", "games", "pe", "fixtures"},
		},
		{
			Key:      "results",
			Language: "en",
			Answer:   "Recent academic results and headline outcomes.",
			URL:      siteRoot + "/college/2025-results/",
			Label:    "Results",
			Variants: []string{"results", "exam results", "academic results", "grades"},
		},
		{
			Key:      "transport",
			Language: "en",
			Answer:   "Transport routes and travel information.",
			URL:      siteRoot + "/key-information-for-parents/bus-service/",
			Label:    "Transport",
			Variants: []string{"transport", "bus", "coach", "minibus"},
		},
		{
			Key:      "contact",
			Language: "en",
			Answer:   "Contact details for the school and admissions team.",
			URL:      siteRoot + "/contact-us/",
			Label:    "Contact us",
			Variants: []string{"contact", "phone", "email", "address"},
		},
	}
}
