package format

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	bulletPrefixRe   = regexp.MustCompile(`(?m)^[\s]*([•\-\*\d]+\s*)+`)
	blankRunRe       = regexp.MustCompile(`\n{2,}`)
	tripleBlankRe    = regexp.MustCompile(`\n{3,}`)
	boldHeadingRe    = regexp.MustCompile(`\*\*([^*]+)\*\*:`)
	boldRe           = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	headingSpacingRe = regexp.MustCompile(`(\w)\s*([A-Z][^:]*:)`)
	currencyRe       = regexp.MustCompile(`£[\d,]+`)
	eventDateRe      = regexp.MustCompile(`(\w+day),?\s*(\d{1,2})[a-z]*\s*(\w+)\s*(\d{4})`)
)

// Clean strips leading bullet markers and collapses blank-line runs.
// Applied to every model answer before topic formatting.
func Clean(text string) string {
	text = bulletPrefixRe.ReplaceAllString(text, "")
	return blankRunRe.ReplaceAllString(strings.TrimSpace(text), "\n\n")
}

// Apply reshapes a cleaned answer for display, keyed on the detected
// topic. Fees and open-event answers get structured templates; a head
// of school answer gets the leadership block; everything else just has
// markdown emphasis stripped and heading spacing repaired.
func Apply(topic, text string) string {
	switch {
	case topic == "fees":
		return formatFees(text)
	case topic == "open_events" || strings.Contains(strings.ToLower(text), "open morning"):
		return formatOpenEvents(text)
	case isHeadAnswer(text):
		return leadershipAnswer
	default:
		return stripMarkdown(text)
	}
}

func stripMarkdown(text string) string {
	text = boldHeadingRe.ReplaceAllString(text, "$1:")
	text = boldRe.ReplaceAllString(text, "$1")
	text = headingSpacingRe.ReplaceAllString(text, "$1\n\n$2")
	return strings.TrimSpace(tripleBlankRe.ReplaceAllString(text, "\n\n"))
}

func formatFees(text string) string {
	text = boldHeadingRe.ReplaceAllString(text, "$1:")
	text = boldRe.ReplaceAllString(text, "$1")
	text = headingSpacingRe.ReplaceAllString(text, "$1\n\n$2")
	text = tripleBlankRe.ReplaceAllString(text, "\n\n")

	if currencyRe.MatchString(text) {
		return fmt.Sprintf(`SCHOOL FEES 2025-26

%s

IMPORTANT INFORMATION:

• All fees exclude VAT (20%% will be added to final amount)
• Bursaries and scholarships available for eligible families
• Flexible payment plans can be arranged

For complete fee schedules and additional cost breakdowns, please visit our fees page.`, strings.TrimSpace(text))
	}
	return fmt.Sprintf(`FEES & FINANCIAL INFORMATION

%s

IMPORTANT INFORMATION:

• All fees exclude VAT (20%% will be added to final amount)
• Bursaries and scholarships available for eligible families
• Flexible payment plans can be arranged

For detailed fee schedules, payment options, and financial support information, please visit our fees page.`, strings.TrimSpace(text))
}

func formatOpenEvents(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")

	matches := eventDateRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text
	}

	var lines []string
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("• %s %s %s %s from 9:30 AM - 12:30 PM", m[1], m[2], m[3], m[4]))
	}

	return fmt.Sprintf(`OPEN MORNING EVENTS

Join us for an Open Morning to explore our facilities, meet staff and students, and experience school life firsthand.

UPCOMING DATES:

%s

HOW TO BOOK:

Email: visits@cheltenhamcollege.org
Phone: 01242 265600

These events fill up quickly, so we recommend booking early to secure your place.`, strings.Join(lines, "\n"))
}

func isHeadAnswer(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "head") &&
		(strings.Contains(lower, "nicola") || strings.Contains(lower, "huggett"))
}

const leadershipAnswer = `SCHOOL LEADERSHIP

Head: Mrs Nicola Huggett

Mrs Huggett leads Cheltenham College with extensive experience in independent education. She is committed to academic excellence, pastoral care, and developing well-rounded students who are prepared for future success.

For more information about our leadership team and staff, please visit our website.`
