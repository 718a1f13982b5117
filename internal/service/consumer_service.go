package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"clinic-assistant-be/internal/dto"
	"clinic-assistant-be/internal/model"
	"clinic-assistant-be/internal/repository/contract"
	"clinic-assistant-be/pkg/embedding"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	snippets          contract.SnippetRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	snippets contract.SnippetRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		snippets:          snippets,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal chunk message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Embedding chunk %d of %s", payload.ChunkIndex, payload.Source)

	resp, err := cs.embeddingProvider.Generate(payload.Content, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to embed chunk %d of %s: %v", payload.ChunkIndex, payload.Source, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	snippet := &model.Snippet{
		UserId:     payload.UserId,
		Source:     payload.Source,
		ChunkIndex: payload.ChunkIndex,
		Content:    payload.Content,
		Embedding:  pgvector.NewVector(resp.Embedding.Values),
		Metadata: datatypes.JSONMap{
			"chars": len(payload.Content),
		},
	}

	if err := cs.snippets.Create(ctx, snippet); err != nil {
		log.Printf("[ERROR] Failed to store chunk %d of %s: %v", payload.ChunkIndex, payload.Source, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
