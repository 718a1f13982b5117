package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinic-assistant-be/internal/dto"
	"clinic-assistant-be/internal/pkg/logger"
	"clinic-assistant-be/internal/repository/memory"
	"clinic-assistant-be/pkg/events"
	"clinic-assistant-be/pkg/format"
	"clinic-assistant-be/pkg/intent"
	"clinic-assistant-be/pkg/nats"
	"clinic-assistant-be/pkg/rag/answer"
	"clinic-assistant-be/pkg/rag/retrieval"
	"clinic-assistant-be/pkg/router"
	"clinic-assistant-be/pkg/structured"
)

type IChatService interface {
	SendChat(ctx context.Context, userId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, userId string) (*dto.GetChatHistoryResponse, error)
	ClearHistory(ctx context.Context, userId string) error
}

type chatService struct {
	sessions  *memory.SessionStore
	analyzer  *intent.Analyzer
	executor  *structured.Executor
	retriever *retrieval.Retriever
	answerer  *answer.Generator
	generic   *format.GenericFormatter
	publisher *nats.Publisher
	log       logger.ILogger
}

func NewChatService(
	sessions *memory.SessionStore,
	analyzer *intent.Analyzer,
	executor *structured.Executor,
	retriever *retrieval.Retriever,
	answerer *answer.Generator,
	generic *format.GenericFormatter,
	publisher *nats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:  sessions,
		analyzer:  analyzer,
		executor:  executor,
		retriever: retriever,
		answerer:  answerer,
		generic:   generic,
		publisher: publisher,
		log:       log,
	}
}

const greetingReply = "Hello! I'm your clinic assistant. Ask me about doctors, clinics, appointment slots, notices, or anything in your uploaded documents."

const systemInfoBody = `I can help you with:
- Doctor profiles, specializations and contact details
- Clinic locations and timings
- Appointment slots and availability by day
- Notices, holidays and schedule exceptions
- Questions about documents you have uploaded

Just ask in plain language, for example "which slots are free on Monday?".`

// SendChat routes one user message through the pipeline and returns both the
// stored user message and the assistant reply.
func (s *chatService) SendChat(ctx context.Context, userId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sent := dto.ChatMessage{
		Id:        uuid.NewString(),
		Text:      req.Query,
		IsUser:    true,
		Timestamp: time.Now(),
	}
	s.sessions.Append(memory.ChatPrefix, userId, sent)

	route := router.Classify(req.Query)
	s.log.Info("chat", "Message routed", map[string]interface{}{
		"user_id": userId,
		"route":   string(route),
	})

	var replyText string
	switch route {
	case router.RouteGreeting:
		replyText = greetingReply
	case router.RouteSystemInfo:
		replyText = format.Block("What I Can Do", systemInfoBody)
	case router.RouteStructuredQuery:
		replyText = s.structuredReply(ctx, userId, req.Query)
	default:
		replyText = s.freeTextReply(ctx, userId, req.Query)
	}

	// One final normalization pass keeps every reply in the canonical shape
	// no matter which branch produced it.
	replyText = format.Normalize(replyText)

	reply := dto.ChatMessage{
		Id:        uuid.NewString(),
		Text:      replyText,
		IsUser:    false,
		Timestamp: time.Now(),
	}
	s.sessions.Append(memory.ChatPrefix, userId, reply)

	s.publishActivity(ctx, userId, string(route), len(replyText))

	return &dto.SendChatResponse{
		Sent:  &sent,
		Reply: &reply,
		Route: string(route),
	}, nil
}

// structuredReply plans and runs a collection query, then renders the
// results with the formatter for that collection.
func (s *chatService) structuredReply(ctx context.Context, userId, query string) string {
	schemas := s.executor.Schemas(ctx)
	desc := s.analyzer.Analyze(ctx, query, schemas)
	if desc == nil || desc.Collection == "" {
		return s.freeTextReply(ctx, userId, query)
	}

	results := s.executor.Execute(ctx, desc)

	switch desc.Collection {
	case "doctors":
		return format.Doctors(results, query)
	case "clinic":
		return format.Clinics(results, query)
	case "slots":
		return format.Slots(results, query)
	case "notices":
		return format.Notices(results, query)
	case "appointments":
		return format.Appointments(results, query)
	case "slotexception":
		return format.Exceptions(results, query)
	}

	return s.generic.Format(ctx, results, query, desc.Explanation)
}

func (s *chatService) freeTextReply(ctx context.Context, userId, query string) string {
	snippets := s.retriever.Retrieve(ctx, userId, query)
	return s.answerer.Answer(ctx, query, snippets)
}

// publishActivity is best-effort; a missing or failing event bus never
// affects the reply.
func (s *chatService) publishActivity(ctx context.Context, userId, route string, replyChars int) {
	if s.publisher == nil {
		return
	}
	event := events.NewChatActivity(userId, route, replyChars)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("chat", "Failed to publish activity event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *chatService) GetHistory(ctx context.Context, userId string) (*dto.GetChatHistoryResponse, error) {
	history := s.sessions.History(memory.ChatPrefix, userId)
	if history == nil {
		history = []dto.ChatMessage{}
	}
	return &dto.GetChatHistoryResponse{Messages: history}, nil
}

func (s *chatService) ClearHistory(ctx context.Context, userId string) error {
	s.sessions.Clear(memory.ChatPrefix, userId)
	return nil
}
