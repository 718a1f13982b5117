package structured

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"testing"

	"clinic-assistant-be/pkg/intent"
	"clinic-assistant-be/pkg/store"
)

type fakeStore struct {
	records     map[string][]store.Record
	findErr     error
	lastLimit   int64
	lastFilter  map[string]interface{}
	collections []string
}

func (f *fakeStore) Collections(ctx context.Context) ([]string, error) {
	if f.collections == nil {
		return nil, errors.New("no connection")
	}
	return f.collections, nil
}

func (f *fakeStore) SampleFields(ctx context.Context, collection string) ([]string, error) {
	if collection == "broken" {
		return nil, errors.New("empty collection")
	}
	return []string{"name"}, nil
}

func (f *fakeStore) Find(ctx context.Context, collection string, filter map[string]interface{}, fields []string, limit int64) ([]store.Record, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	recs := f.records[collection]
	if int64(len(recs)) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func testLogger() *log.Logger { return log.New(os.Stderr, "", 0) }

func TestExecuteCapsResults(t *testing.T) {
	var recs []store.Record
	for i := 0; i < 80; i++ {
		recs = append(recs, store.Record{"name": fmt.Sprintf("doc-%d", i)})
	}
	fs := &fakeStore{records: map[string][]store.Record{"doctors": recs}}
	e := NewExecutor(fs, testLogger())

	out := e.Execute(context.Background(), &intent.Descriptor{Collection: "doctors"})

	if len(out) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(out))
	}
	if fs.lastLimit != MaxResults {
		t.Fatalf("limit not pushed to store: %d", fs.lastLimit)
	}
}

func TestExecuteNilDescriptor(t *testing.T) {
	e := NewExecutor(&fakeStore{}, testLogger())

	if out := e.Execute(context.Background(), nil); out != nil {
		t.Fatalf("expected nil for nil descriptor, got %v", out)
	}
	if out := e.Execute(context.Background(), &intent.Descriptor{}); out != nil {
		t.Fatalf("expected nil for empty collection, got %v", out)
	}
}

func TestExecuteStoreFailureYieldsEmpty(t *testing.T) {
	e := NewExecutor(&fakeStore{findErr: errors.New("timeout")}, testLogger())

	out := e.Execute(context.Background(), &intent.Descriptor{Collection: "doctors"})

	if out != nil {
		t.Fatalf("expected nil on store failure, got %v", out)
	}
}

func TestExecuteNilFiltersBecomeEmptyMap(t *testing.T) {
	fs := &fakeStore{records: map[string][]store.Record{}}
	e := NewExecutor(fs, testLogger())

	e.Execute(context.Background(), &intent.Descriptor{Collection: "slots", Filters: nil})

	if fs.lastFilter == nil {
		t.Fatal("nil filters should be passed as an empty map")
	}
}

func TestSchemasToleratesSamplingFailure(t *testing.T) {
	fs := &fakeStore{collections: []string{"doctors", "broken"}}
	e := NewExecutor(fs, testLogger())

	schemas := e.Schemas(context.Background())

	if len(schemas) != 2 {
		t.Fatalf("expected both collections listed, got %v", schemas)
	}
	if len(schemas["doctors"]) == 0 {
		t.Fatalf("expected sampled fields for doctors: %v", schemas)
	}
	if schemas["broken"] != nil {
		t.Fatalf("broken collection should have nil fields: %v", schemas)
	}
}

func TestSchemasDiscoveryFailure(t *testing.T) {
	e := NewExecutor(&fakeStore{}, testLogger())

	schemas := e.Schemas(context.Background())

	if len(schemas) != 0 {
		t.Fatalf("expected empty schemas, got %v", schemas)
	}
}
