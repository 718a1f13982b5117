package dto

type IngestDocumentRequest struct {
	Source  string `json:"source" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=1"`
}

type IngestDocumentResponse struct {
	Source string `json:"source"`
	Chunks int    `json:"chunks"`
}

// EmbedChunkMessage travels over the embed topic from the ingest service to
// the consumer that embeds and stores the chunk.
type EmbedChunkMessage struct {
	UserId     string `json:"user_id"`
	Source     string `json:"source"`
	ChunkIndex int    `json:"chunk_index"`
	Content    string `json:"content"`
}
