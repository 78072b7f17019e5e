package dto

import (
	"time"
)

// LogInteractionMessage is the payload published after each resolved
// question so the dashboard log is written off the request path.
type LogInteractionMessage struct {
	FamilyID   string    `json:"family_id"`
	SessionID  string    `json:"session_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Topic      string    `json:"topic"`
	Sentiment  string    `json:"sentiment"`
	Source     string    `json:"source"`
	HighIntent bool      `json:"high_intent"`
	AskedAt    time.Time `json:"asked_at"`
}
