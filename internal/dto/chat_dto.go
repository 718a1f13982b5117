package dto

import "time"

// ChatMessage is one entry in a session transcript.
type ChatMessage struct {
	Id        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

type SendChatRequest struct {
	Query string `json:"query" validate:"required,min=1,max=2000"`
}

type SendChatResponse struct {
	Sent  *ChatMessage `json:"sent"`
	Reply *ChatMessage `json:"reply"`
	Route string       `json:"route"` // "greeting" | "system_info" | "structured_query" | "free_text"
}

type GetChatHistoryResponse struct {
	Messages []ChatMessage `json:"messages"`
}
