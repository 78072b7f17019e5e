package dto

import (
	"time"
)

type AskRequest struct {
	Question  string `json:"question" validate:"required"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	FamilyID  string `json:"family_id,omitempty"`
}

type AskResponse struct {
	Answer     string            `json:"answer"`
	URL        string            `json:"url,omitempty"`
	LinkLabel  string            `json:"link_label,omitempty"`
	Queries    []string          `json:"queries"`
	QueryMap   map[string]string `json:"query_map"`
	Source     string            `json:"source"`
	FamilyUsed bool              `json:"family_used"`
	SessionID  string            `json:"session_id,omitempty"`
}

type CreateSessionRequest struct {
	FamilyID string `json:"family_id,omitempty"`
	Language string `json:"language,omitempty"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type ConversationSummaryResponse struct {
	SessionID       string   `json:"session_id"`
	FamilyID        string   `json:"family_id,omitempty"`
	Interactions    int      `json:"interactions"`
	TopicsDiscussed []string `json:"topics_discussed"`
	Concerns        []string `json:"concerns"`
	EmotionalState  string   `json:"emotional_state"`
	HighIntent      bool     `json:"high_intent"`
	OfferHandoff    bool     `json:"offer_handoff"`
}

type OpenDayEventResponse struct {
	EventName   string `json:"event_name"`
	DateISO     string `json:"date_iso"`
	DateHuman   string `json:"date_human"`
	BookingLink string `json:"booking_link"`
}

type FamilyResponse struct {
	FamilyID       string   `json:"family_id"`
	ParentName     string   `json:"parent_name,omitempty"`
	ChildName      string   `json:"child_name,omitempty"`
	YearGroup      string   `json:"year_group,omitempty"`
	BoardingStatus string   `json:"boarding_status,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	Country        string   `json:"country,omitempty"`
	LanguagePref   string   `json:"language_pref,omitempty"`

	RecentInteractions []InteractionResponse `json:"recent_interactions,omitempty"`
}

type InteractionResponse struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Topic     string    `json:"topic,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
