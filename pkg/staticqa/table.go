package staticqa

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry is one curated question/answer pair. Key is the canonical topic
// identifier, unique per language, and is propagated downstream as the
// matched topic.
type Entry struct {
	Key      string   `json:"key"`
	Language string   `json:"language"`
	Answer   string   `json:"answer"`
	Variants []string `json:"variants,omitempty"`
	URL      string   `json:"url,omitempty"`
	Label    string   `json:"label,omitempty"`
}

// MatchVariants returns every phrasing the entry matches on, always
// including the key itself.
func (e Entry) MatchVariants() []string {
	for _, v := range e.Variants {
		if strings.EqualFold(v, e.Key) {
			return e.Variants
		}
	}
	out := make([]string, 0, len(e.Variants)+1)
	out = append(out, e.Key)
	out = append(out, e.Variants...)
	return out
}

// Table is an ordered list of entries. Order matters: the matcher breaks
// ties by table position.
type Table []Entry

// ForLanguage returns the entries for one language, preserving order.
func (t Table) ForLanguage(language string) []Entry {
	var out []Entry
	for _, e := range t {
		if e.Language == language {
			out = append(out, e)
		}
	}
	return out
}

// LoadFile reads a generated static-QA JSON file (an array of entries).
func LoadFile(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open static QA table: %w", err)
	}

	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse static QA table: %w", err)
	}
	return table, nil
}
