package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"penai-be/pkg/family"
	"penai-be/pkg/knowledge"
	"penai-be/pkg/llm"
	"penai-be/pkg/opendays"
	"penai-be/pkg/qa/enhance"
	"penai-be/pkg/qa/format"
	"penai-be/pkg/qa/prompt"
	"penai-be/pkg/qa/session"
	"penai-be/pkg/qa/topic"
	"penai-be/pkg/qa/tracker"
	"penai-be/pkg/staticqa"
	"penai-be/pkg/textmatch"
	"penai-be/pkg/translate"
)

// Source identifies which resolution tier produced an answer.
type Source string

const (
	SourceOpenDays Source = "open_days"
	SourceStatic   Source = "static"
	SourceFuzzy    Source = "fuzzy"
	SourceRAG      Source = "rag"
	SourceNone     Source = "none"
)

const (
	pivotLanguage  = "en"
	ragTopK        = 10
	fuzzyThreshold = 0.8
	ragTemperature = 0.3

	recentContextTurns  = 3
	recentContextMaxLen = 50

	openDaysPageURL = "https://www.cheltenhamcollege.org/admissions/visit-us/open-events/"

	noMatchAnswer = "I'm sorry, I don't have that specific information to hand. Would you like me to connect you with our admissions team who can help?"
)

var openDayKeywords = []string{"open day", "open morning", "open evening", "visit", "tour"}

// Searcher is the slice of the knowledge retriever the resolver needs.
type Searcher interface {
	Search(query string, k int) ([]float64, []int)
}

// Request carries one user question through the resolution pipeline.
type Request struct {
	Question  string
	Language  string
	SessionID string
	FamilyID  string
}

// Result is the resolved answer plus its provenance.
type Result struct {
	Answer   string
	URL      string
	Label    string
	MatchKey string
	Source   Source
}

// Resolver runs a question through the answer tiers in order: open day
// lookup, exact static match, fuzzy static match, retrieval with model
// summarisation, and finally the no-match fallback. The first tier to
// produce an answer wins.
type Resolver struct {
	table      staticqa.Table
	searcher   Searcher
	store      *knowledge.Store
	llm        llm.LLMProvider
	translator translate.Translator
	feed       opendays.Feed
	families   family.Lookup
	sessions   *session.Registry
	enhancer   *enhance.Enhancer
	logger     *log.Logger
}

func NewResolver(
	table staticqa.Table,
	searcher Searcher,
	store *knowledge.Store,
	llmProvider llm.LLMProvider,
	translator translate.Translator,
	feed opendays.Feed,
	families family.Lookup,
	sessions *session.Registry,
	enhancer *enhance.Enhancer,
	logger *log.Logger,
) *Resolver {
	return &Resolver{
		table:      table,
		searcher:   searcher,
		store:      store,
		llm:        llmProvider,
		translator: translator,
		feed:       feed,
		families:   families,
		sessions:   sessions,
		enhancer:   enhancer,
		logger:     logger,
	}
}

// Resolve answers a single question. Every tier records the interaction
// on the session's tracker; personalization only applies when the
// request carries a session ID.
func (r *Resolver) Resolve(ctx context.Context, req Request) Result {
	qLower := strings.ToLower(strings.TrimSpace(req.Question))

	// Static entries are keyed in each language, but matching is most
	// reliable against the English pivot.
	qForMatch := qLower
	if req.Language != pivotLanguage {
		if translated, err := r.translator.Translate(ctx, req.Question, pivotLanguage); err != nil {
			r.logger.Printf("[WARN] Translate-to-%s failed, matching raw text: %v", pivotLanguage, err)
		} else {
			qForMatch = strings.ToLower(strings.TrimSpace(translated))
		}
	}

	r.logger.Printf("[INFO] Processing: %q | lang=%s | session=%s", qLower, req.Language, req.SessionID)

	trk := r.trackerFor(req)

	if res, ok := r.resolveOpenDays(qForMatch, req, trk); ok {
		return res
	}
	if res, ok := r.resolveStatic(ctx, qForMatch, req, trk); ok {
		return res
	}
	if res, ok := r.resolveFuzzy(ctx, qForMatch, req, trk); ok {
		return res
	}
	if res, ok := r.resolveRAG(ctx, req, trk); ok {
		return res
	}

	r.logger.Printf("[INFO] No suitable match found for %q", qLower)
	answer := noMatchAnswer
	trk.RecordInteraction(req.Question, answer, "unknown")
	if req.SessionID != "" {
		answer = r.enhancer.Enhance(answer, trk, r.familyContext(ctx, req.FamilyID))
	}
	return Result{Answer: answer, Source: SourceNone}
}

// trackerFor returns the session's tracker, or a throwaway one for
// sessionless requests so every tier can record uniformly.
func (r *Resolver) trackerFor(req Request) *tracker.Tracker {
	if req.SessionID != "" {
		return r.sessions.GetOrCreate(req.SessionID, req.FamilyID)
	}
	return tracker.New(uuid.NewString(), req.FamilyID)
}

func (r *Resolver) familyContext(ctx context.Context, familyID string) *family.Context {
	if familyID == "" || r.families == nil {
		return nil
	}
	fam, err := r.families.GetFamily(ctx, familyID)
	if err != nil {
		r.logger.Printf("[WARN] Family lookup failed for %s: %v", familyID, err)
		return nil
	}
	return fam
}

func (r *Resolver) resolveOpenDays(qForMatch string, req Request, trk *tracker.Tracker) (Result, bool) {
	var hit bool
	for _, kw := range openDayKeywords {
		if strings.Contains(qForMatch, kw) {
			hit = true
			break
		}
	}
	if !hit {
		return Result{}, false
	}

	var events []opendays.Event
	if r.feed != nil {
		var err error
		events, err = r.feed.ListEvents()
		if err != nil {
			r.logger.Printf("[WARN] Could not read open day events: %v", err)
		}
	}

	next := opendays.Next(events)
	if next == nil {
		answer := fmt.Sprintf(
			"We don't currently have any upcoming Open Days listed. "+
				"You can check back soon on our [Admissions page](%s).", openDaysPageURL)
		trk.RecordInteraction(req.Question, answer, "open_days")
		return Result{
			Answer:   answer,
			URL:      openDaysPageURL,
			Label:    "Admissions",
			MatchKey: "open_days",
			Source:   SourceOpenDays,
		}, true
	}

	answer := fmt.Sprintf(
		"Our next %s is on %s. You can find more details and register here: %s",
		next.Name, next.DateHuman, next.BookingLink)
	trk.RecordInteraction(req.Question, answer, "open_days")
	return Result{
		Answer:   answer,
		URL:      next.BookingLink,
		Label:    "Open Days",
		MatchKey: "open_days",
		Source:   SourceOpenDays,
	}, true
}

// entriesFor prefers entries localized to the request language and
// falls back to the English table, which qForMatch was translated for.
func (r *Resolver) entriesFor(language string) []staticqa.Entry {
	entries := r.table.ForLanguage(language)
	if len(entries) == 0 && language != pivotLanguage {
		entries = r.table.ForLanguage(pivotLanguage)
	}
	return entries
}

func (r *Resolver) resolveStatic(ctx context.Context, qForMatch string, req Request, trk *tracker.Tracker) (Result, bool) {
	for _, entry := range r.entriesFor(req.Language) {
		for _, variant := range entry.MatchVariants() {
			if qForMatch != strings.ToLower(variant) {
				continue
			}
			r.logger.Printf("[INFO] Exact match on: %s", entry.Key)
			answer := entry.Answer
			trk.RecordInteraction(req.Question, answer, entry.Key)
			if req.SessionID != "" {
				answer = r.enhancer.Enhance(answer, trk, r.familyContext(ctx, req.FamilyID))
			}
			return Result{
				Answer:   answer,
				URL:      entry.URL,
				Label:    entry.Label,
				MatchKey: entry.Key,
				Source:   SourceStatic,
			}, true
		}
	}
	return Result{}, false
}

func (r *Resolver) resolveFuzzy(ctx context.Context, qForMatch string, req Request, trk *tracker.Tracker) (Result, bool) {
	var (
		bestScore float64
		bestEntry *staticqa.Entry
	)
	entries := r.entriesFor(req.Language)
	for i := range entries {
		for _, variant := range entries[i].MatchVariants() {
			score := textmatch.Ratio(qForMatch, strings.ToLower(variant))
			if score > bestScore {
				bestScore = score
				bestEntry = &entries[i]
			}
		}
	}
	if bestEntry == nil || bestScore <= fuzzyThreshold {
		return Result{}, false
	}

	r.logger.Printf("[INFO] Fuzzy match on: %s (score %.2f)", bestEntry.Key, bestScore)
	answer := bestEntry.Answer
	trk.RecordInteraction(req.Question, answer, bestEntry.Key)
	if req.SessionID != "" {
		answer = r.enhancer.Enhance(answer, trk, r.familyContext(ctx, req.FamilyID))
	}
	return Result{
		Answer:   answer,
		URL:      bestEntry.URL,
		Label:    bestEntry.Label,
		MatchKey: bestEntry.Key,
		Source:   SourceFuzzy,
	}, true
}

func (r *Resolver) resolveRAG(ctx context.Context, req Request, trk *tracker.Tracker) (Result, bool) {
	if r.searcher == nil || r.store == nil {
		return Result{}, false
	}

	sims, idxs := r.searcher.Search(req.Question, ragTopK)
	if len(idxs) == 0 {
		return Result{}, false
	}
	r.logger.Printf("[INFO] Vector match (cos=%.2f)", sims[0])

	passages := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		passages = append(passages, r.store.Passage(idx).Text)
	}

	groundedPrompt := prompt.Grounded(
		req.Question, passages,
		trk.RecentQuestions(recentContextTurns, recentContextMaxLen))

	raw, err := r.llm.Chat(ctx, []llm.Message{
		{Role: "system", Content: prompt.SystemPersona},
		{Role: "user", Content: groundedPrompt},
	}, llm.WithTemperature(ragTemperature))
	if err != nil {
		r.logger.Printf("[WARN] Summarisation failed, falling through: %v", err)
		return Result{}, false
	}

	detected := topic.Detect(req.Question)
	answer := format.Apply(detected, format.Clean(raw))
	url, label := topic.LinkFor(detected, r.store.Passage(idxs[0]).URL)

	trk.RecordInteraction(req.Question, answer, "general")
	if req.SessionID != "" {
		answer = r.enhancer.Enhance(answer, trk, r.familyContext(ctx, req.FamilyID))
	}

	if req.Language != pivotLanguage {
		if translated, err := r.translator.Translate(ctx, answer, req.Language); err != nil {
			r.logger.Printf("[WARN] Translate error: %v", err)
		} else {
			answer = translated
		}
	}

	return Result{
		Answer: answer,
		URL:    url,
		Label:  label,
		Source: SourceRAG,
	}, true
}
