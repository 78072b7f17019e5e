package pipeline

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penai-be/pkg/family"
	"penai-be/pkg/knowledge"
	"penai-be/pkg/llm"
	"penai-be/pkg/opendays"
	"penai-be/pkg/qa/enhance"
	"penai-be/pkg/qa/session"
	"penai-be/pkg/staticqa"
)

type fakeFeed struct {
	events []opendays.Event
	err    error
}

func (f *fakeFeed) ListEvents() ([]opendays.Event, error) {
	return f.events, f.err
}

type fakeSearcher struct {
	sims []float64
	idxs []int
}

func (f *fakeSearcher) Search(query string, k int) ([]float64, []int) {
	return f.sims, f.idxs
}

type fakeLLM struct {
	reply string
	err   error
	// last prompt seen, for assertions
	lastUser string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	for _, m := range history {
		if m.Role == "user" {
			f.lastUser = m.Content
		}
	}
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type fakeTranslator struct {
	out string
	err error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.out != "" {
		return f.out, nil
	}
	return text, nil
}

type fakeFamilies struct {
	ctx *family.Context
}

func (f *fakeFamilies) GetFamily(ctx context.Context, familyID string) (*family.Context, error) {
	return f.ctx, nil
}

func testTable() staticqa.Table {
	return staticqa.Table{
		{
			Key:      "how do i apply",
			Language: "en",
			Answer:   "You can apply through our admissions team.",
			Variants: []string{"how to apply", "application process"},
			URL:      "https://www.cheltenhamcollege.org/admissions/",
			Label:    "Admissions",
		},
		{
			Key:      "what are the school fees",
			Language: "en",
			Answer:   "Fees are published on our website.",
			Variants: []string{"school fees", "how much does it cost"},
			URL:      "https://www.cheltenhamcollege.org/admissions/fees/",
			Label:    "Fees",
		},
	}
}

func testResolver(t *testing.T, mutate func(*fixtures)) *Resolver {
	t.Helper()

	store, err := knowledge.NewStore([]knowledge.Passage{
		{Text: "Cheltenham College offers over 30 sports.", Embedding: []float32{1, 0}, URL: "https://www.cheltenhamcollege.org/sport-page/"},
		{Text: "The college was founded in 1841.", Embedding: []float32{0, 1}, URL: ""},
	})
	require.NoError(t, err)

	f := &fixtures{
		table:      testTable(),
		searcher:   &fakeSearcher{},
		store:      store,
		llm:        &fakeLLM{reply: "A fine answer."},
		translator: &fakeTranslator{},
		feed:       &fakeFeed{},
		families:   &fakeFamilies{},
	}
	if mutate != nil {
		mutate(f)
	}

	return NewResolver(
		f.table,
		f.searcher,
		f.store,
		f.llm,
		f.translator,
		f.feed,
		f.families,
		session.NewRegistry(),
		enhance.NewEnhancer(),
		log.New(io.Discard, "", 0),
	)
}

type fixtures struct {
	table      staticqa.Table
	searcher   *fakeSearcher
	store      *knowledge.Store
	llm        *fakeLLM
	translator *fakeTranslator
	feed       *fakeFeed
	families   *fakeFamilies
}

func TestResolveOpenDaysTier(t *testing.T) {
	r := testResolver(t, func(f *fixtures) {
		f.feed.events = []opendays.Event{
			{Name: "Open Evening", DateISO: "2026-11-02", DateHuman: "Monday 02 November 2026", BookingLink: "https://example.org/book2"},
			{Name: "Open Morning", DateISO: "2026-10-03", DateHuman: "Saturday 03 October 2026", BookingLink: "https://example.org/book1"},
		}
	})

	res := r.Resolve(context.Background(), Request{Question: "When is your next open day?", Language: "en"})

	assert.Equal(t, SourceOpenDays, res.Source)
	assert.Contains(t, res.Answer, "Open Morning")
	assert.Contains(t, res.Answer, "Saturday 03 October 2026")
	assert.Equal(t, "https://example.org/book1", res.URL)
	assert.Equal(t, "Open Days", res.Label)
	assert.Equal(t, "open_days", res.MatchKey)
}

func TestResolveOpenDaysTierNoEvents(t *testing.T) {
	r := testResolver(t, nil)

	res := r.Resolve(context.Background(), Request{Question: "Can we visit the school?", Language: "en"})

	assert.Equal(t, SourceOpenDays, res.Source)
	assert.Contains(t, res.Answer, "We don't currently have any upcoming Open Days listed.")
	assert.Equal(t, "Admissions", res.Label)
}

func TestResolveOpenDaysTranslatedIntent(t *testing.T) {
	r := testResolver(t, func(f *fixtures) {
		f.translator.out = "when is the next open day"
		f.feed.events = []opendays.Event{
			{Name: "Open Morning", DateISO: "2026-10-03", DateHuman: "Saturday 03 October 2026", BookingLink: "https://example.org/book1"},
		}
	})

	res := r.Resolve(context.Background(), Request{Question: "quand est la prochaine journée portes ouvertes", Language: "fr"})

	assert.Equal(t, SourceOpenDays, res.Source)
	assert.Equal(t, "open_days", res.MatchKey)
}

func TestResolveStaticExactMatch(t *testing.T) {
	r := testResolver(t, nil)

	res := r.Resolve(context.Background(), Request{Question: "How to apply", Language: "en"})

	assert.Equal(t, SourceStatic, res.Source)
	assert.Equal(t, "You can apply through our admissions team.", res.Answer)
	assert.Equal(t, "how do i apply", res.MatchKey)
	assert.Equal(t, "Admissions", res.Label)
}

func TestResolveStaticMatchEnhancedForSession(t *testing.T) {
	r := testResolver(t, nil)

	res := r.Resolve(context.Background(), Request{
		Question:  "How to apply",
		Language:  "en",
		SessionID: "sess-1",
	})

	assert.Equal(t, SourceStatic, res.Source)
	assert.Contains(t, res.Answer, "You can apply through our admissions team.")
	assert.True(t, strings.HasPrefix(res.Answer, "Hello! What a lovely question to start with."),
		"session answers open with the greeting, got %q", res.Answer)
}

func TestResolveFuzzyMatch(t *testing.T) {
	r := testResolver(t, nil)

	// One character off an exact variant, well above the 0.8 ratio.
	res := r.Resolve(context.Background(), Request{Question: "what are the school fees?", Language: "en"})

	assert.Equal(t, SourceFuzzy, res.Source)
	assert.Equal(t, "Fees are published on our website.", res.Answer)
	assert.Equal(t, "what are the school fees", res.MatchKey)
}

func TestResolveRAGTier(t *testing.T) {
	var captured *fakeLLM
	r := testResolver(t, func(f *fixtures) {
		f.searcher.sims = []float64{0.92, 0.40}
		f.searcher.idxs = []int{0, 1}
		f.llm.reply = "We offer rugby, netball and rowing."
		captured = f.llm
	})

	res := r.Resolve(context.Background(), Request{Question: "Which sports can pupils do?", Language: "en"})

	assert.Equal(t, SourceRAG, res.Source)
	assert.Contains(t, res.Answer, "rugby, netball and rowing")
	assert.Contains(t, captured.lastUser, "Use ONLY the passages below to answer.")
	assert.Contains(t, captured.lastUser, "Cheltenham College offers over 30 sports.")
	assert.Contains(t, captured.lastUser, "Question: Which sports can pupils do?")
	// sport topic resolves its canonical link, not the passage URL
	assert.Equal(t, "https://www.cheltenhamcollege.org/college/co-curricular/sport/", res.URL)
}

func TestResolveRAGLLMErrorFallsThrough(t *testing.T) {
	r := testResolver(t, func(f *fixtures) {
		f.searcher.sims = []float64{0.9}
		f.searcher.idxs = []int{0}
		f.llm.err = errors.New("model offline")
	})

	res := r.Resolve(context.Background(), Request{Question: "Which sports can pupils do?", Language: "en"})

	assert.Equal(t, SourceNone, res.Source)
	assert.Contains(t, res.Answer, "I'm sorry, I don't have that specific information to hand.")
}

func TestResolveNoMatch(t *testing.T) {
	r := testResolver(t, nil)

	res := r.Resolve(context.Background(), Request{Question: "What is the meaning of life?", Language: "en"})

	assert.Equal(t, SourceNone, res.Source)
	assert.Empty(t, res.URL)
	assert.Empty(t, res.MatchKey)
	assert.Contains(t, res.Answer, "connect you with our admissions team")
}

func TestResolveSessionMemoryAccumulates(t *testing.T) {
	registry := session.NewRegistry()
	store, err := knowledge.NewStore([]knowledge.Passage{
		{Text: "p", Embedding: []float32{1}},
	})
	require.NoError(t, err)

	r := NewResolver(
		testTable(),
		&fakeSearcher{},
		store,
		&fakeLLM{},
		&fakeTranslator{},
		&fakeFeed{},
		&fakeFamilies{},
		registry,
		enhance.NewEnhancer(),
		log.New(io.Discard, "", 0),
	)

	r.Resolve(context.Background(), Request{Question: "How to apply", Language: "en", SessionID: "s-9"})
	r.Resolve(context.Background(), Request{Question: "school fees", Language: "en", SessionID: "s-9"})

	trk, ok := registry.Get("s-9")
	require.True(t, ok)
	assert.Equal(t, 2, trk.InteractionCount())
	assert.Equal(t, "what are the school fees", trk.LastTopic())
}

func TestResolveTranslatedMatching(t *testing.T) {
	r := testResolver(t, func(f *fixtures) {
		f.translator.out = "how to apply"
	})

	res := r.Resolve(context.Background(), Request{Question: "comment postuler", Language: "fr"})

	assert.Equal(t, SourceStatic, res.Source)
	assert.Equal(t, "how do i apply", res.MatchKey)
}
