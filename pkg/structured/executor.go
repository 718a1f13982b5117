// Package structured runs planned queries against the clinic document store.
package structured

import (
	"context"
	"log"

	"clinic-assistant-be/pkg/intent"
	"clinic-assistant-be/pkg/store"
)

// MaxResults caps every structured query regardless of what the plan asks
// for, keeping responses bounded.
const MaxResults = 50

// Store abstracts the document database the executor reads from.
type Store interface {
	Collections(ctx context.Context) ([]string, error)
	SampleFields(ctx context.Context, collection string) ([]string, error)
	Find(ctx context.Context, collection string, filter map[string]interface{}, fields []string, limit int64) ([]store.Record, error)
}

// Executor runs intent descriptors against the store. Failures degrade to
// empty result sets rather than surfacing errors; the caller decides how to
// phrase "nothing found".
type Executor struct {
	store  Store
	logger *log.Logger
}

// NewExecutor creates a new structured query executor
func NewExecutor(store Store, logger *log.Logger) *Executor {
	return &Executor{
		store:  store,
		logger: logger,
	}
}

// Execute runs the planned query and returns at most MaxResults records.
func (e *Executor) Execute(ctx context.Context, desc *intent.Descriptor) []store.Record {
	if desc == nil || desc.Collection == "" {
		return nil
	}

	filter := desc.Filters
	if filter == nil {
		filter = map[string]interface{}{}
	}

	results, err := e.store.Find(ctx, desc.Collection, filter, desc.Fields, MaxResults)
	if err != nil {
		e.logger.Printf("[ERROR] Structured query on %q failed: %v", desc.Collection, err)
		return nil
	}

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	e.logger.Printf("[QUERY] collection=%s filters=%d results=%d", desc.Collection, len(desc.Filters), len(results))
	return results
}

// Schemas discovers the live collections and a field sample for each, for
// the intent analyzer's prompt. Collections that fail sampling are listed
// with no fields rather than dropped.
func (e *Executor) Schemas(ctx context.Context) map[string][]string {
	schemas := map[string][]string{}

	names, err := e.store.Collections(ctx)
	if err != nil {
		e.logger.Printf("[ERROR] Collection discovery failed: %v", err)
		return schemas
	}

	for _, name := range names {
		fields, err := e.store.SampleFields(ctx, name)
		if err != nil {
			e.logger.Printf("[WARN] Field sampling for %q failed: %v", name, err)
			fields = nil
		}
		schemas[name] = fields
	}

	return schemas
}
