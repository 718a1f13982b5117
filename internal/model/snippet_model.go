package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Snippet struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     string            `gorm:"type:varchar(64);not null;index"`
	Source     string            `gorm:"type:varchar(255);not null;index"`
	ChunkIndex int               `gorm:"default:0"` // 0-based index for ordering
	Content    string            `gorm:"type:text"`
	Embedding  pgvector.Vector   `gorm:"type:vector(1024)"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
}

func (Snippet) TableName() string {
	return "snippets"
}
