// Package remotetest provides an in-memory Store implementation for
// tests. Writes can be delayed or forced to fail to exercise the
// optimistic write paths.
package remotetest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/AsanTolepov/softwash/internal/remote"
)

type Fake struct {
	mu   sync.Mutex
	docs map[string]map[string]json.RawMessage

	// Delay is applied before every write so tests can observe local
	// state while the remote write is still in flight.
	Delay time.Duration

	// PutErr / DeleteErr / QueryErr force the matching operation to fail.
	PutErr    error
	DeleteErr error
	QueryErr  error

	calls []string
}

var _ remote.Store = (*Fake)(nil)

func New() *Fake {
	return &Fake{docs: make(map[string]map[string]json.RawMessage)}
}

// Seed places a document without recording a call.
func (f *Fake) Seed(collection, id string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bucket(collection)[id] = data
}

// Calls returns the operations performed, in order, as "op collection/id".
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Has reports whether the document currently exists.
func (f *Fake) Has(collection, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.bucket(collection)[id]
	return ok
}

// Get unmarshals the stored document into out.
func (f *Fake) Get(collection, id string, out any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.bucket(collection)[id]
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		panic(err)
	}
	return true
}

func (f *Fake) bucket(collection string) map[string]json.RawMessage {
	b, ok := f.docs[collection]
	if !ok {
		b = make(map[string]json.RawMessage)
		f.docs[collection] = b
	}
	return b
}

func (f *Fake) record(op, collection, id string) {
	f.calls = append(f.calls, fmt.Sprintf("%s %s/%s", op, collection, id))
}

func (f *Fake) LoadCollection(ctx context.Context, collection string) ([]json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("load", collection, "*")
	var out []json.RawMessage
	for _, doc := range f.bucket(collection) {
		out = append(out, doc)
	}
	return out, nil
}

func (f *Fake) LoadDocument(ctx context.Context, collection, id string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("load", collection, id)
	doc, ok := f.bucket(collection)[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return doc, nil
}

func (f *Fake) PutDocument(ctx context.Context, collection, id string, value any) error {
	time.Sleep(f.Delay)
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("put", collection, id)
	if f.PutErr != nil {
		return f.PutErr
	}
	f.bucket(collection)[id] = data
	return nil
}

func (f *Fake) PatchDocument(ctx context.Context, collection, id string, partial map[string]any) error {
	time.Sleep(f.Delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("patch", collection, id)
	if f.PutErr != nil {
		return f.PutErr
	}
	merged := make(map[string]any)
	if existing, ok := f.bucket(collection)[id]; ok {
		if err := json.Unmarshal(existing, &merged); err != nil {
			return err
		}
	}
	for k, v := range partial {
		merged[k] = v
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	f.bucket(collection)[id] = data
	return nil
}

func (f *Fake) DeleteDocument(ctx context.Context, collection, id string) error {
	time.Sleep(f.Delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete", collection, id)
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	delete(f.bucket(collection), id)
	return nil
}

func (f *Fake) QueryEquality(ctx context.Context, collection, field string, value any) ([]json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("query", collection, field)
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	want := fmt.Sprintf("%v", value)
	var out []json.RawMessage
	for _, doc := range f.bucket(collection) {
		var generic map[string]any
		if err := json.Unmarshal(doc, &generic); err != nil {
			return nil, err
		}
		if fmt.Sprintf("%v", generic[field]) == want {
			out = append(out, doc)
		}
	}
	return out, nil
}
