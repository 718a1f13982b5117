package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"clinic-assistant-be/internal/dto"
	"clinic-assistant-be/internal/pkg/logger"
	"clinic-assistant-be/internal/repository/contract"
	"clinic-assistant-be/pkg/utils"
)

const ingestChunkSize = 800

type IIngestService interface {
	Ingest(ctx context.Context, userId string, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
}

type ingestService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	snippets  contract.SnippetRepository
	log       logger.ILogger
}

func NewIngestService(
	pubSub *gochannel.GoChannel,
	topicName string,
	snippets contract.SnippetRepository,
	log logger.ILogger,
) IIngestService {
	return &ingestService{
		pubSub:    pubSub,
		topicName: topicName,
		snippets:  snippets,
		log:       log,
	}
}

// Ingest splits a document into chunks and publishes one embed job per
// chunk. Previously ingested chunks for the same source are removed first,
// so re-uploading a document replaces it instead of duplicating it.
func (s *ingestService) Ingest(ctx context.Context, userId string, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	if err := s.snippets.DeleteBySource(ctx, userId, req.Source); err != nil {
		return nil, err
	}

	chunks := utils.SplitText(req.Content, ingestChunkSize)

	for i, chunk := range chunks {
		payload, err := json.Marshal(dto.EmbedChunkMessage{
			UserId:     userId,
			Source:     req.Source,
			ChunkIndex: i,
			Content:    chunk,
		})
		if err != nil {
			return nil, err
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := s.pubSub.Publish(s.topicName, msg); err != nil {
			return nil, err
		}
	}

	s.log.Info("ingest", "Document queued for embedding", map[string]interface{}{
		"user_id": userId,
		"source":  req.Source,
		"chunks":  len(chunks),
	})

	return &dto.IngestDocumentResponse{
		Source: req.Source,
		Chunks: len(chunks),
	}, nil
}
