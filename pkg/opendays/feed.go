package opendays

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is one upcoming open-day entry from the admissions site.
type Event struct {
	Name        string `json:"event_name"`
	DateISO     string `json:"date_iso"`
	DateHuman   string `json:"date_human"`
	BookingLink string `json:"booking_link"`
}

// Feed lists upcoming open-day events. The cache file behind the default
// implementation is refreshed by an external scraper job.
type Feed interface {
	ListEvents() ([]Event, error)
}

// Next returns the chronologically first event by ISO date, nil when the
// list is empty. ISO dates compare correctly as strings.
func Next(events []Event) *Event {
	var next *Event
	for i := range events {
		if next == nil || events[i].DateISO < next.DateISO {
			next = &events[i]
		}
	}
	return next
}

// cachePayload mirrors the JSON document the refresher job writes.
type cachePayload struct {
	SourceURL   string  `json:"source_url"`
	LastChecked string  `json:"last_checked"`
	Events      []Event `json:"events"`
}

// FileFeed reads events from the refresher's JSON cache file.
type FileFeed struct {
	Path string
}

func NewFileFeed(path string) *FileFeed {
	return &FileFeed{Path: path}
}

func (f *FileFeed) ListEvents() ([]Event, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read open days cache: %w", err)
	}

	var payload cachePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse open days cache: %w", err)
	}
	return payload.Events, nil
}
