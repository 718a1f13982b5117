package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-assistant-be/internal/dto"
	"clinic-assistant-be/internal/pkg/logger"
	"clinic-assistant-be/internal/repository/memory"
	"clinic-assistant-be/pkg/format"
	"clinic-assistant-be/pkg/sqlgen"
	"clinic-assistant-be/pkg/textutil"
)

type IDbChatService interface {
	Ask(ctx context.Context, userId string, req *dto.DbChatRequest) (*dto.DbChatResponse, error)
	GetHistory(ctx context.Context, userId string) (*dto.GetChatHistoryResponse, error)
	ClearHistory(ctx context.Context, userId string) error
}

type dbChatService struct {
	sessions  *memory.SessionStore
	generator *sqlgen.Generator
	executor  *sqlgen.Executor
	log       logger.ILogger
}

func NewDbChatService(
	sessions *memory.SessionStore,
	generator *sqlgen.Generator,
	executor *sqlgen.Executor,
	log logger.ILogger,
) IDbChatService {
	return &dbChatService{
		sessions:  sessions,
		generator: generator,
		executor:  executor,
		log:       log,
	}
}

const dbGreetingReply = "Hello! Ask me a question about the employees database, for example \"who are the department managers?\"."

// Ask turns a natural-language question into guarded SQL, runs it, and
// renders the rows. Destructive questions are refused before any SQL is
// generated.
func (s *dbChatService) Ask(ctx context.Context, userId string, req *dto.DbChatRequest) (*dto.DbChatResponse, error) {
	sent := dto.ChatMessage{
		Id:        uuid.NewString(),
		Text:      req.Question,
		IsUser:    true,
		Timestamp: time.Now(),
	}
	s.sessions.Append(memory.DbChatPrefix, userId, sent)

	if isGreeting(req.Question) {
		s.appendReply(userId, dbGreetingReply)
		return &dto.DbChatResponse{Message: dbGreetingReply}, nil
	}

	stmt, err := s.generator.Generate(ctx, req.Question)
	if err != nil {
		var rejected *sqlgen.RejectedError
		if errors.As(err, &rejected) {
			message := format.Block("Request Blocked",
				fmt.Sprintf("Your question mentions %q, which is not allowed here. I can only read data, never change it.", rejected.Keyword))
			s.appendReply(userId, message)
			return &dto.DbChatResponse{Message: message, Error: rejected.Error()}, nil
		}
		return nil, err
	}

	rows, err := s.executor.Run(ctx, stmt)
	if err != nil {
		s.log.Error("dbchat", "Query execution failed", map[string]interface{}{
			"user_id": userId,
			"query":   stmt,
			"error":   err.Error(),
		})
		message := format.Block("Query Failed", "The generated query could not be executed. Try rephrasing your question.")
		s.appendReply(userId, message)
		return &dto.DbChatResponse{Query: stmt, Message: message, Error: err.Error()}, nil
	}

	message := renderRows(rows)
	s.appendReply(userId, message)

	return &dto.DbChatResponse{
		Query:   stmt,
		Results: rows,
		Message: message,
	}, nil
}

func (s *dbChatService) appendReply(userId, text string) {
	s.sessions.Append(memory.DbChatPrefix, userId, dto.ChatMessage{
		Id:        uuid.NewString(),
		Text:      text,
		IsUser:    false,
		Timestamp: time.Now(),
	})
}

// isGreeting matches short salutations exactly or as the opening of a very
// short message.
func isGreeting(text string) bool {
	normalized := textutil.Normalize(text)
	if normalized == "" {
		return false
	}

	greetings := []string{"hi", "hii", "hello", "helloo", "hey", "greetings", "good morning", "good afternoon", "good evening"}
	words := strings.Fields(normalized)
	for _, g := range greetings {
		if normalized == g {
			return true
		}
		if len(words) <= 3 && strings.HasPrefix(normalized, g) {
			return true
		}
	}
	return false
}

// renderRows formats result rows. Rows that carry employee names become a
// readable bullet list; anything else is summarized by count with the raw
// rows returned alongside.
func renderRows(rows []map[string]interface{}) string {
	if len(rows) == 0 {
		return format.Block("Query Results", "The query returned no rows.")
	}

	if names := employeeNames(rows); len(names) > 0 {
		return format.Block("Employees", format.BulletList(names))
	}

	return format.Block("Query Results", fmt.Sprintf("The query returned %d rows. See the results payload for details.", len(rows)))
}

func employeeNames(rows []map[string]interface{}) []string {
	var names []string
	for _, row := range rows {
		first, _ := row["first_name"].(string)
		last, _ := row["last_name"].(string)
		full := strings.TrimSpace(first + " " + last)
		if full == "" {
			if v, ok := row["employee_name"].(string); ok {
				full = v
			}
		}
		if full == "" {
			return nil
		}
		names = append(names, full)
	}
	return names
}

func (s *dbChatService) GetHistory(ctx context.Context, userId string) (*dto.GetChatHistoryResponse, error) {
	history := s.sessions.History(memory.DbChatPrefix, userId)
	if history == nil {
		history = []dto.ChatMessage{}
	}
	return &dto.GetChatHistoryResponse{Messages: history}, nil
}

func (s *dbChatService) ClearHistory(ctx context.Context, userId string) error {
	s.sessions.Clear(memory.DbChatPrefix, userId)
	return nil
}
