package opendays

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var eventPattern = regexp.MustCompile(
	`(?i)(Open (?:Morning|Evening|Day|Event|Sixth Form Open (?:Morning|Evening)))` +
		`\s*[–-]\s*([A-Za-z]+ \d{1,2} [A-Za-z]+ \d{4})`)

const eventDateLayout = "Monday 2 January 2006"

// Refresher scrapes the admissions visit page and rewrites the events
// cache the feed reads from. Runs on a schedule or via the refresh
// endpoint.
type Refresher struct {
	SourceURL string
	CachePath string
	client    *http.Client
	logger    *log.Logger
}

func NewRefresher(sourceURL, cachePath string, logger *log.Logger) *Refresher {
	return &Refresher{
		SourceURL: sourceURL,
		CachePath: cachePath,
		client:    &http.Client{Timeout: 20 * time.Second},
		logger:    logger,
	}
}

// Refresh fetches the page, extracts upcoming events and writes the
// cache. Returns the number of events written.
func (r *Refresher) Refresh(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.SourceURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch open days page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch open days page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parse open days page: %w", err)
	}

	events := r.extractEvents(doc.Text())

	payload := cachePayload{
		SourceURL:   r.SourceURL,
		LastChecked: time.Now().UTC().Format(time.RFC3339),
		Events:      events,
	}
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(r.CachePath, raw, 0o644); err != nil {
		return 0, fmt.Errorf("write open days cache: %w", err)
	}

	r.logger.Printf("[INFO] Open days cache refreshed: %d events", len(events))
	return len(events), nil
}

func (r *Refresher) extractEvents(pageText string) []Event {
	text := strings.Join(strings.Fields(pageText), " ")
	today := time.Now().Truncate(24 * time.Hour)

	seen := map[string]bool{}
	var events []Event
	for _, m := range eventPattern.FindAllStringSubmatch(text, -1) {
		dt, err := time.Parse(eventDateLayout, m[2])
		if err != nil {
			r.logger.Printf("[WARN] Skipping unparseable event date %q: %v", m[2], err)
			continue
		}
		if dt.Before(today) {
			continue
		}

		name := cases.Title(language.BritishEnglish).String(strings.TrimSpace(m[1]))
		dateISO := dt.Format("2006-01-02")
		key := name + "|" + dateISO
		if seen[key] {
			continue
		}
		seen[key] = true

		events = append(events, Event{
			Name:        name,
			DateISO:     dateISO,
			DateHuman:   dt.Format("Monday 02 January 2006"),
			BookingLink: r.SourceURL,
		})
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].DateISO != events[j].DateISO {
			return events[i].DateISO < events[j].DateISO
		}
		return events[i].Name < events[j].Name
	})
	return events
}
