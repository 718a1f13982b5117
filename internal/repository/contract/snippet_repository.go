package contract

import (
	"context"

	"clinic-assistant-be/internal/model"
	"clinic-assistant-be/pkg/store"
)

type SnippetRepository interface {
	Create(ctx context.Context, snippet *model.Snippet) error
	DeleteBySource(ctx context.Context, userId, source string) error
	SearchSimilar(ctx context.Context, userId string, vector []float32, limit int) ([]store.Snippet, error)
}
