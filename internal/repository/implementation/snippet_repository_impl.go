package implementation

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"clinic-assistant-be/internal/model"
	"clinic-assistant-be/internal/repository/contract"
	"clinic-assistant-be/pkg/store"
)

type SnippetRepositoryImpl struct {
	db *gorm.DB
}

func NewSnippetRepository(db *gorm.DB) contract.SnippetRepository {
	return &SnippetRepositoryImpl{db: db}
}

func (r *SnippetRepositoryImpl) Create(ctx context.Context, snippet *model.Snippet) error {
	return r.db.WithContext(ctx).Create(snippet).Error
}

// DeleteBySource removes every chunk of one ingested document, so a
// re-ingest never leaves stale chunks behind.
func (r *SnippetRepositoryImpl) DeleteBySource(ctx context.Context, userId, source string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND source = ?", userId, source).
		Delete(&model.Snippet{}).Error
}

// SearchSimilar ranks the user's snippets by cosine similarity to the query
// vector. pgvector's <=> operator is cosine distance, so the score is
// 1 - distance.
func (r *SnippetRepositoryImpl) SearchSimilar(ctx context.Context, userId string, vector []float32, limit int) ([]store.Snippet, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		Content string
		Source  string
		Score   float32
	}
	var results []result

	queryVector := pgvector.NewVector(vector)

	err := r.db.WithContext(ctx).
		Table("snippets").
		Select("content, source, 1 - (embedding <=> ?) AS score", queryVector).
		Where("user_id = ?", userId).
		Order("score DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	snippets := make([]store.Snippet, len(results))
	for i, res := range results {
		snippets[i] = store.Snippet{
			Text:   res.Content,
			Score:  res.Score,
			Source: res.Source,
		}
	}
	return snippets, nil
}
