package tracker

import (
	"strings"
	"sync"
	"time"
)

// EmotionalState is the coarse read on how the conversation feels.
type EmotionalState string

const (
	StateNeutral   EmotionalState = "neutral"
	StateConcerned EmotionalState = "concerned"
)

// answerExcerptLimit bounds how much answer text an interaction retains.
const answerExcerptLimit = 200

// signalKeywords drive intent and concern detection. Matching is plain
// case-insensitive substring containment.
var signalKeywords = map[string][]string{
	"high_intent": {"apply", "visit", "fee", "scholarship", "when can", "how do i", "register"},
	"concern":     {"worried", "concern", "anxiety", "difficult", "struggle", "help", "support", "nervous"},
}

// Interaction is one question/answer turn in a session.
type Interaction struct {
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Topic     string    `json:"topic,omitempty"`
}

// Tracker accumulates per-session conversational state. All mutation
// goes through RecordInteraction, which also recomputes every derived
// field; duplicate concurrent requests on the same session are safe.
type Tracker struct {
	mu sync.Mutex

	sessionID string
	familyID  string
	startedAt time.Time

	interactions    []Interaction
	topicsDiscussed map[string]bool
	concerns        []string
	lastTopic       string
	// lastTopic was already in topicsDiscussed before the most recent
	// interaction. The enhancer uses this for "following on" phrasing.
	topicRevisited bool

	emotionalState    EmotionalState
	highIntentSignals int
}

// New creates a tracker for a session. familyID may be empty.
func New(sessionID, familyID string) *Tracker {
	return &Tracker{
		sessionID:       sessionID,
		familyID:        familyID,
		startedAt:       time.Now(),
		topicsDiscussed: make(map[string]bool),
		emotionalState:  StateNeutral,
	}
}

// RecordInteraction appends one turn and updates the derived state:
// discussed topics, high-intent signals, concerns and emotional state.
// Stored answers are truncated to answerExcerptLimit. There is no
// transition back from concerned to neutral.
func (t *Tracker) RecordInteraction(question, answer, topic string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.interactions = append(t.interactions, Interaction{
		Timestamp: time.Now(),
		Question:  question,
		Answer:    truncate(answer, answerExcerptLimit),
		Topic:     topic,
	})

	if topic != "" {
		t.topicRevisited = t.topicsDiscussed[topic]
		t.topicsDiscussed[topic] = true
		t.lastTopic = topic
	}

	qLower := strings.ToLower(question)
	if containsAny(qLower, signalKeywords["high_intent"]) {
		t.highIntentSignals++
	}
	if containsAny(qLower, signalKeywords["concern"]) {
		t.concerns = append(t.concerns, question)
		t.emotionalState = StateConcerned
	}
}

// ShouldOfferHumanHandoff reports whether the session has reached a
// point where a real admissions contact beats another bot answer.
// Monotonic in every input for a fixed emotional state.
func (t *Tracker) ShouldOfferHumanHandoff() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.highIntentSignals >= 3 ||
		len(t.concerns) >= 2 ||
		len(t.interactions) >= 10 ||
		t.emotionalState == StateConcerned
}

// Summary is the dashboard view of a session.
type Summary struct {
	SessionDurationSeconds int            `json:"session_duration_seconds"`
	InteractionCount       int            `json:"interaction_count"`
	Topics                 []string       `json:"topics"`
	HighIntent             bool           `json:"high_intent"`
	EmotionalState         EmotionalState `json:"emotional_state"`
	Concerns               []string       `json:"concerns"`
	LastTopic              string         `json:"last_topic,omitempty"`
}

// Summary snapshots the session for the admissions dashboard. The
// high-intent flag trips earlier (>= 2 signals) than the handoff offer.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	topics := make([]string, 0, len(t.topicsDiscussed))
	for topic := range t.topicsDiscussed {
		topics = append(topics, topic)
	}

	concerns := t.concerns
	if len(concerns) > 3 {
		concerns = concerns[:3]
	}

	return Summary{
		SessionDurationSeconds: int(time.Since(t.startedAt).Seconds()),
		InteractionCount:       len(t.interactions),
		Topics:                 topics,
		HighIntent:             t.highIntentSignals >= 2,
		EmotionalState:         t.emotionalState,
		Concerns:               append([]string(nil), concerns...),
		LastTopic:              t.lastTopic,
	}
}

// --- Read accessors used by the enhancer and pipeline ---

func (t *Tracker) SessionID() string {
	return t.sessionID
}

func (t *Tracker) FamilyID() string {
	return t.familyID
}

func (t *Tracker) InteractionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.interactions)
}

func (t *Tracker) LastTopic() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastTopic
}

func (t *Tracker) TopicRevisited() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.topicRevisited
}

func (t *Tracker) EmotionalState() EmotionalState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.emotionalState
}

func (t *Tracker) ConcernCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.concerns)
}

// RecentQuestions returns the questions of up to n most recent
// interactions in chronological order, each clipped to maxLen runes.
func (t *Tracker) RecentQuestions(n, maxLen int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	start := len(t.interactions) - n
	if start < 0 {
		start = 0
	}

	var out []string
	for _, in := range t.interactions[start:] {
		out = append(out, truncate(in.Question, maxLen))
	}
	return out
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
