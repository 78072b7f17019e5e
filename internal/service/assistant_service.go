package service

import (
	"context"
	"encoding/json"
	"time"

	"penai-be/internal/dto"
	"penai-be/internal/pkg/logger"
	"penai-be/internal/pkg/mailer"
	"penai-be/internal/repository/contract"
	"penai-be/pkg/family"
	"penai-be/pkg/opendays"
	"penai-be/pkg/qa/pipeline"
	"penai-be/pkg/qa/session"
	"penai-be/pkg/suggest"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultLanguage = "en"

// questionResolver is the slice of the pipeline the service drives.
type questionResolver interface {
	Resolve(ctx context.Context, req pipeline.Request) pipeline.Result
}

type IAssistantService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetConversation(ctx context.Context, sessionID string) (*dto.ConversationSummaryResponse, error)
	GetConversationHistory(ctx context.Context, sessionID string) ([]dto.InteractionResponse, error)
	ListOpenDays(ctx context.Context) ([]dto.OpenDayEventResponse, error)
	GetFamily(ctx context.Context, familyID string) (*dto.FamilyResponse, error)
}

type assistantService struct {
	resolver        questionResolver
	sessions        *session.Registry
	families        family.Lookup
	feed            opendays.Feed
	interactions    contract.ChatInteractionRepository
	publisher       IPublisherService
	mailer          mailer.IEmailService
	admissionsEmail string
	handoffEvery    int
	log             logger.ILogger
}

func NewAssistantService(
	resolver questionResolver,
	sessions *session.Registry,
	families family.Lookup,
	feed opendays.Feed,
	interactions contract.ChatInteractionRepository,
	publisher IPublisherService,
	emailService mailer.IEmailService,
	admissionsEmail string,
	handoffEvery int,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		resolver:        resolver,
		sessions:        sessions,
		families:        families,
		feed:            feed,
		interactions:    interactions,
		publisher:       publisher,
		mailer:          emailService,
		admissionsEmail: admissionsEmail,
		handoffEvery:    handoffEvery,
		log:             log,
	}
}

func (s *assistantService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	if req.Language == "" {
		req.Language = defaultLanguage
	}

	result := s.resolver.Resolve(ctx, pipeline.Request{
		Question:  req.Question,
		Language:  req.Language,
		SessionID: req.SessionID,
		FamilyID:  req.FamilyID,
	})

	if req.FamilyID != "" {
		s.publishInteraction(ctx, req, result)
	}
	s.maybeAlertAdmissions(ctx, req)

	matched := result.MatchKey
	if matched == "" {
		matched = req.Question
	}
	suggestions := suggest.For(matched, req.Language)
	queries := make([]string, 0, len(suggestions))
	queryMap := make(map[string]string, len(suggestions))
	for _, sg := range suggestions {
		queries = append(queries, sg.Query)
		queryMap[sg.Query] = sg.Label
	}

	return &dto.AskResponse{
		Answer:     result.Answer,
		URL:        result.URL,
		LinkLabel:  result.Label,
		Queries:    queries,
		QueryMap:   queryMap,
		Source:     string(result.Source),
		FamilyUsed: req.FamilyID != "",
		SessionID:  req.SessionID,
	}, nil
}

func (s *assistantService) publishInteraction(ctx context.Context, req *dto.AskRequest, result pipeline.Result) {
	sentiment := "neutral"
	highIntent := false
	if trk, ok := s.sessions.Get(req.SessionID); ok {
		sentiment = string(trk.EmotionalState())
		highIntent = trk.Summary().HighIntent
	}

	payload, err := json.Marshal(dto.LogInteractionMessage{
		FamilyID:   req.FamilyID,
		SessionID:  req.SessionID,
		Question:   req.Question,
		Answer:     result.Answer,
		Topic:      result.MatchKey,
		Sentiment:  sentiment,
		Source:     string(result.Source),
		HighIntent: highIntent,
		AskedAt:    time.Now(),
	})
	if err != nil {
		s.log.Error("assistant", "Failed to marshal interaction log", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Warn("assistant", "Failed to publish interaction log", map[string]interface{}{
			"family_id": req.FamilyID,
			"error":     err.Error(),
		})
	}
}

// maybeAlertAdmissions emails the admissions inbox when the session just
// surfaced a handoff offer for a known family. Best effort.
func (s *assistantService) maybeAlertAdmissions(ctx context.Context, req *dto.AskRequest) {
	if s.mailer == nil || req.SessionID == "" || req.FamilyID == "" || s.admissionsEmail == "" {
		return
	}
	trk, ok := s.sessions.Get(req.SessionID)
	if !ok || !trk.ShouldOfferHumanHandoff() {
		return
	}
	every := s.handoffEvery
	if every <= 0 {
		every = 5
	}
	if trk.InteractionCount()%every != 0 {
		return
	}

	fam, err := s.families.GetFamily(ctx, req.FamilyID)
	if err != nil || fam == nil || fam.ParentEmail == "" {
		return
	}

	summary := trk.Summary()
	alert := mailer.HandoffAlert{
		SessionID:       req.SessionID,
		FamilyID:        req.FamilyID,
		ParentName:      fam.ParentName,
		ParentEmail:     fam.ParentEmail,
		ChildName:       fam.ChildName,
		TopicsDiscussed: summary.Topics,
		Concerns:        summary.Concerns,
		HighIntent:      summary.HighIntent,
	}
	go func() {
		if err := s.mailer.SendHandoffAlert(s.admissionsEmail, alert); err != nil {
			s.log.Warn("assistant", "Handoff alert failed", map[string]interface{}{
				"family_id": req.FamilyID,
				"error":     err.Error(),
			})
		}
	}()
}

func (s *assistantService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	sessionID := uuid.NewString()
	s.sessions.GetOrCreate(sessionID, req.FamilyID)

	s.log.Info("assistant", "Voice session created", map[string]interface{}{
		"session_id": sessionID,
		"family_id":  req.FamilyID,
		"language":   req.Language,
	})

	return &dto.CreateSessionResponse{SessionID: sessionID}, nil
}

func (s *assistantService) GetConversation(ctx context.Context, sessionID string) (*dto.ConversationSummaryResponse, error) {
	trk, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	summary := trk.Summary()
	return &dto.ConversationSummaryResponse{
		SessionID:       sessionID,
		FamilyID:        trk.FamilyID(),
		Interactions:    summary.InteractionCount,
		TopicsDiscussed: summary.Topics,
		Concerns:        summary.Concerns,
		EmotionalState:  string(summary.EmotionalState),
		HighIntent:      summary.HighIntent,
		OfferHandoff:    trk.ShouldOfferHumanHandoff(),
	}, nil
}

func (s *assistantService) GetConversationHistory(ctx context.Context, sessionID string) ([]dto.InteractionResponse, error) {
	if s.interactions == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database not configured")
	}

	rows, err := s.interactions.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InteractionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.InteractionResponse{
			Question:  row.Question,
			Answer:    row.Answer,
			Topic:     row.Topic,
			Source:    row.Source,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (s *assistantService) ListOpenDays(ctx context.Context) ([]dto.OpenDayEventResponse, error) {
	events, err := s.feed.ListEvents()
	if err != nil {
		s.log.Warn("assistant", "Could not read open day events", map[string]interface{}{"error": err.Error()})
		return []dto.OpenDayEventResponse{}, nil
	}

	out := make([]dto.OpenDayEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.OpenDayEventResponse{
			EventName:   ev.Name,
			DateISO:     ev.DateISO,
			DateHuman:   ev.DateHuman,
			BookingLink: ev.BookingLink,
		})
	}
	return out, nil
}

func (s *assistantService) GetFamily(ctx context.Context, familyID string) (*dto.FamilyResponse, error) {
	if s.families == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Database not configured")
	}

	fam, err := s.families.GetFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if fam == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Family not found")
	}

	res := &dto.FamilyResponse{
		FamilyID:       fam.FamilyID,
		ParentName:     fam.ParentName,
		ChildName:      fam.ChildName,
		YearGroup:      fam.YearGroup,
		BoardingStatus: fam.BoardingStatus,
		Interests:      fam.Interests,
		Country:        fam.Country,
		LanguagePref:   fam.LanguagePref,
	}

	if s.interactions != nil {
		rows, err := s.interactions.FindByFamilyID(ctx, familyID, 10)
		if err != nil {
			s.log.Warn("assistant", "Could not load family interactions", map[string]interface{}{
				"family_id": familyID,
				"error":     err.Error(),
			})
		}
		for _, row := range rows {
			res.RecentInteractions = append(res.RecentInteractions, dto.InteractionResponse{
				Question:  row.Question,
				Answer:    row.Answer,
				Topic:     row.Topic,
				Source:    row.Source,
				CreatedAt: row.CreatedAt,
			})
		}
	}

	return res, nil
}
