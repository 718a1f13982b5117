package bootstrap

import (
	"context"
	"log"
	"time"

	"clinic-assistant-be/internal/config"
	"clinic-assistant-be/internal/controller"
	"clinic-assistant-be/internal/pkg/logger"
	"clinic-assistant-be/internal/repository/docstore"
	"clinic-assistant-be/internal/repository/implementation"
	"clinic-assistant-be/internal/repository/memory"
	"clinic-assistant-be/internal/service"
	"clinic-assistant-be/pkg/embedding"
	"clinic-assistant-be/pkg/format"
	"clinic-assistant-be/pkg/intent"
	"clinic-assistant-be/pkg/llm/factory"
	"clinic-assistant-be/pkg/rag/answer"
	"clinic-assistant-be/pkg/rag/retrieval"
	"clinic-assistant-be/pkg/sqlgen"
	"clinic-assistant-be/pkg/structured"

	pktNats "clinic-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	DbChatController controller.IDbChatController
	IngestController controller.IIngestController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Core Facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, mongoDb *mongo.Database, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	stdLogger := logger.NewPipelineLogger(cfg.App.LogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbeddingModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.OllamaEmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis, embedding cache disabled: %v", err)
		} else {
			embeddingProvider = embedding.NewCachedProvider(embeddingProvider, rdb, 24*time.Hour)
			log.Printf("[INFO] Embedding cache enabled (Redis)")
		}
	}

	// 5. Repositories
	sessionStore := memory.NewSessionStore()
	docStore := docstore.NewMongoStore(mongoDb)
	snippetRepo := implementation.NewSnippetRepository(db)

	// 6. Pipeline Components
	analyzer := intent.NewAnalyzer(llmProvider, stdLogger)
	structuredExecutor := structured.NewExecutor(docStore, stdLogger)
	retriever := retrieval.NewRetriever(embeddingProvider, snippetRepo, cfg.Ai.EmbeddingDim, stdLogger)
	answerer := answer.NewGenerator(llmProvider, stdLogger)
	genericFormatter := format.NewGenericFormatter(llmProvider, stdLogger)
	sqlGenerator := sqlgen.NewGenerator(llmProvider, stdLogger)
	sqlExecutor := sqlgen.NewExecutor(db, stdLogger)

	// 7. Services
	chatService := service.NewChatService(
		sessionStore,
		analyzer,
		structuredExecutor,
		retriever,
		answerer,
		genericFormatter,
		natsPub,
		sysLogger,
	)
	dbChatService := service.NewDbChatService(sessionStore, sqlGenerator, sqlExecutor, sysLogger)
	ingestService := service.NewIngestService(pubSub, cfg.Ai.EmbedChunkTopic, snippetRepo, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Ai.EmbedChunkTopic, snippetRepo, embeddingProvider)

	// 8. Controllers
	return &Container{
		ChatController:   controller.NewChatController(chatService),
		DbChatController: controller.NewDbChatController(dbChatService),
		IngestController: controller.NewIngestController(ingestService),
		HealthController: controller.NewHealthController(db, mongoDb, cfg.Ai),
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
