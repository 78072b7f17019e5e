package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penai-be/internal/dto"
	"penai-be/pkg/family"
	"penai-be/pkg/opendays"
	"penai-be/pkg/qa/pipeline"
	"penai-be/pkg/qa/session"
)

type fakeResolver struct {
	lastReq pipeline.Request
	result  pipeline.Result
}

func (f *fakeResolver) Resolve(ctx context.Context, req pipeline.Request) pipeline.Result {
	f.lastReq = req
	return f.result
}

type fakePublisher struct {
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeFeed struct {
	events []opendays.Event
	err    error
}

func (f *fakeFeed) ListEvents() ([]opendays.Event, error) {
	return f.events, f.err
}

type fakeFamilies struct {
	ctx *family.Context
}

func (f *fakeFamilies) GetFamily(ctx context.Context, familyID string) (*family.Context, error) {
	return f.ctx, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestService(resolver *fakeResolver, publisher *fakePublisher, sessions *session.Registry) IAssistantService {
	return NewAssistantService(
		resolver,
		sessions,
		&fakeFamilies{},
		&fakeFeed{},
		nil,
		publisher,
		nil,
		"admissions@example.org",
		5,
		nopLogger{},
	)
}

func TestAskDefaultsLanguageAndBuildsSuggestions(t *testing.T) {
	resolver := &fakeResolver{result: pipeline.Result{
		Answer:   "Fees are X.",
		URL:      "https://example.org/fees",
		Label:    "Fees",
		MatchKey: "fees",
		Source:   pipeline.SourceStatic,
	}}
	svc := newTestService(resolver, &fakePublisher{}, session.NewRegistry())

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "What are the fees?"})
	require.NoError(t, err)

	assert.Equal(t, "en", resolver.lastReq.Language)
	assert.Equal(t, "Fees are X.", res.Answer)
	assert.Equal(t, "static", res.Source)
	assert.NotEmpty(t, res.Queries)
	assert.Len(t, res.QueryMap, len(res.Queries))
	for _, q := range res.Queries {
		assert.NotEmpty(t, res.QueryMap[q])
	}
}

func TestAskPublishesInteractionForKnownFamily(t *testing.T) {
	resolver := &fakeResolver{result: pipeline.Result{
		Answer:   "Answer.",
		MatchKey: "fees",
		Source:   pipeline.SourceStatic,
	}}
	publisher := &fakePublisher{}
	svc := newTestService(resolver, publisher, session.NewRegistry())

	_, err := svc.Ask(context.Background(), &dto.AskRequest{
		Question: "What are the fees?",
		FamilyID: "fam-1",
	})
	require.NoError(t, err)

	require.Len(t, publisher.payloads, 1)
	var msg dto.LogInteractionMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, "fam-1", msg.FamilyID)
	assert.Equal(t, "What are the fees?", msg.Question)
	assert.Equal(t, "static", msg.Source)
	assert.Equal(t, "neutral", msg.Sentiment)
}

func TestAskDoesNotPublishWithoutFamily(t *testing.T) {
	resolver := &fakeResolver{result: pipeline.Result{Answer: "a", Source: pipeline.SourceNone}}
	publisher := &fakePublisher{}
	svc := newTestService(resolver, publisher, session.NewRegistry())

	_, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "hello"})
	require.NoError(t, err)
	assert.Empty(t, publisher.payloads)
}

func TestCreateSessionAndGetConversation(t *testing.T) {
	sessions := session.NewRegistry()
	svc := newTestService(&fakeResolver{}, &fakePublisher{}, sessions)

	created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{FamilyID: "fam-2"})
	require.NoError(t, err)
	require.NotEmpty(t, created.SessionID)

	trk, ok := sessions.Get(created.SessionID)
	require.True(t, ok)
	trk.RecordInteraction("How do I apply?", "a", "admissions")

	summary, err := svc.GetConversation(context.Background(), created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "fam-2", summary.FamilyID)
	assert.Equal(t, 1, summary.Interactions)
	assert.Contains(t, summary.TopicsDiscussed, "admissions")
}

func TestGetFamilyMapsProfile(t *testing.T) {
	svc := NewAssistantService(
		&fakeResolver{},
		session.NewRegistry(),
		&fakeFamilies{ctx: &family.Context{
			FamilyID:       "fam-3",
			ParentName:     "Mrs Chen",
			ChildName:      "Emma",
			YearGroup:      "Year 9",
			BoardingStatus: "boarding",
			Interests:      []string{"music", "hockey"},
			Country:        "Singapore",
			LanguagePref:   "en",
		}},
		&fakeFeed{},
		nil,
		&fakePublisher{},
		nil,
		"admissions@example.org",
		5,
		nopLogger{},
	)

	res, err := svc.GetFamily(context.Background(), "fam-3")
	require.NoError(t, err)
	assert.Equal(t, "fam-3", res.FamilyID)
	assert.Equal(t, "Emma", res.ChildName)
	assert.Equal(t, []string{"music", "hockey"}, res.Interests)
}

func TestGetConversationUnknownSession(t *testing.T) {
	svc := newTestService(&fakeResolver{}, &fakePublisher{}, session.NewRegistry())

	_, err := svc.GetConversation(context.Background(), "missing")
	assert.Error(t, err)
}
