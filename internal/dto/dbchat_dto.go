package dto

type DbChatRequest struct {
	Question string `json:"question" validate:"required,min=1,max=1000"`
}

type DbChatResponse struct {
	Query   string                   `json:"query,omitempty"`
	Results []map[string]interface{} `json:"results,omitempty"`
	Message string                   `json:"message"`
	Error   string                   `json:"error,omitempty"`
}
