package bootstrap

import (
	"log"

	"penai-be/internal/config"
	"penai-be/internal/controller"
	"penai-be/internal/pkg/logger"
	"penai-be/internal/pkg/mailer"
	"penai-be/internal/repository/contract"
	"penai-be/internal/repository/implementation"
	"penai-be/internal/service"
	"penai-be/pkg/embedding"
	"penai-be/pkg/family"
	"penai-be/pkg/knowledge"
	"penai-be/pkg/llm/factory"
	"penai-be/pkg/opendays"
	"penai-be/pkg/qa/enhance"
	"penai-be/pkg/qa/pipeline"
	"penai-be/pkg/qa/session"
	"penai-be/pkg/staticqa"
	"penai-be/pkg/translate"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const logInteractionTopic = "LOG_CHAT_INTERACTION"

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires the whole application. db may be nil when no
// connection string is configured; family lookups and interaction
// logging degrade gracefully.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	stdLogger := log.Default()

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Knowledge Base
	store, err := knowledge.LoadFile(cfg.Assistant.KnowledgeBasePath)
	if err != nil {
		log.Printf("[WARN] Knowledge base unavailable, retrieval tier disabled: %v", err)
	}
	retriever := knowledge.NewRetriever(store, embeddingProvider, stdLogger)

	qaTable := staticqa.Default()
	if cfg.Assistant.StaticQAPath != "" {
		loaded, err := staticqa.LoadFile(cfg.Assistant.StaticQAPath)
		if err != nil {
			log.Printf("[WARN] Static QA file unreadable, using built-in table: %v", err)
		} else {
			qaTable = loaded
		}
	}

	feed := opendays.NewFileFeed(cfg.Assistant.OpenDaysCachePath)
	refresher := opendays.NewRefresher(
		cfg.Assistant.OpenDaysSourceURL,
		cfg.Assistant.OpenDaysCachePath,
		stdLogger,
	)

	// 5. Repositories (optional - require a database)
	var (
		inquiryRepo     contract.InquiryRepository
		interactionRepo contract.ChatInteractionRepository
		familyLookup    family.Lookup
	)
	if db != nil {
		inquiryRepo = implementation.NewInquiryRepository(db)
		interactionRepo = implementation.NewChatInteractionRepository(db)
		familyLookup = service.NewFamilyLookup(inquiryRepo)
	}

	// 6. Resolution Pipeline
	sessions := session.NewRegistry()
	enhancer := enhance.NewEnhancer()
	if cfg.Assistant.HandoffEvery > 0 {
		enhancer.HandoffEvery = cfg.Assistant.HandoffEvery
	}
	translator := translate.NewLLMTranslator(llmProvider)

	resolver := pipeline.NewResolver(
		qaTable,
		retriever,
		store,
		llmProvider,
		translator,
		feed,
		familyLookup,
		sessions,
		enhancer,
		stdLogger,
	)

	// 7. Services
	publisherService := service.NewPublisherService(pubSub, logInteractionTopic)

	var consumerService service.IConsumerService
	if db != nil {
		consumerService = service.NewConsumerService(pubSub, logInteractionTopic, interactionRepo)
	}

	assistantService := service.NewAssistantService(
		resolver,
		sessions,
		familyLookup,
		feed,
		interactionRepo,
		publisherService,
		emailService,
		cfg.Assistant.AdmissionsEmail,
		cfg.Assistant.HandoffEvery,
		sysLogger,
	)

	// 8. Controllers
	assistantController := controller.NewAssistantController(
		assistantService,
		refresher,
		cfg.Assistant.OpenDaysRefreshSecret,
	)

	return &Container{
		AssistantController: assistantController,
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
