package sqlgen

import (
	"context"
	"log"

	"gorm.io/gorm"
)

// Executor runs generated statements against the relational database.
type Executor struct {
	db     *gorm.DB
	logger *log.Logger
}

// NewExecutor creates a new SQL executor
func NewExecutor(db *gorm.DB, logger *log.Logger) *Executor {
	return &Executor{
		db:     db,
		logger: logger,
	}
}

// Run executes one generated SELECT statement and returns the rows as plain
// maps. Statements reach this point already guarded and bounded.
func (e *Executor) Run(ctx context.Context, stmt string) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := e.db.WithContext(ctx).Raw(stmt).Find(&rows).Error; err != nil {
		e.logger.Printf("[ERROR] SQL execution failed: %v", err)
		return nil, err
	}
	return rows, nil
}
