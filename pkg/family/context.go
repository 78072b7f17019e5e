package family

import "context"

// Context is the profile an enquiry form captured for one family. It is
// read-only to the assistant: only the enquiry pipeline writes it.
type Context struct {
	FamilyID       string   `json:"family_id"`
	ChildName      string   `json:"child_name,omitempty"`
	YearGroup      string   `json:"year_group,omitempty"`
	BoardingStatus string   `json:"boarding_status,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	Country        string   `json:"country,omitempty"`
	LanguagePref   string   `json:"language_pref,omitempty"`
	ParentName     string   `json:"parent_name,omitempty"`
	ParentEmail    string   `json:"parent_email,omitempty"`
}

// Lookup fetches a family profile by id. Implementations return
// (nil, nil) when the family is unknown.
type Lookup interface {
	GetFamily(ctx context.Context, familyID string) (*Context, error)
}
