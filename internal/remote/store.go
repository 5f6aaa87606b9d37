// Package remote is the sole point of contact with the external document
// store. The store is treated as a capability: durable keyed documents
// addressable by collection+id, queryable by equality on a single field.
// No business logic lives here.
package remote

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names as they exist in the remote store. Settings is a single
// document inside the meta collection rather than a collection of its own.
const (
	CollectionTenants  = "tenants"
	CollectionOrders   = "orders"
	CollectionStaff    = "staff"
	CollectionExpenses = "expenses"
	CollectionMeta     = "meta"

	SettingsDocID = "settings"
)

// ErrNotFound is returned by LoadDocument when the document does not exist.
var ErrNotFound = errors.New("remote: document not found")

// Store is the remote document store capability. Implementations sanitize
// every outgoing value; callers never pre-clean. All operations are
// best-effort from the cache's point of view — failures are reported to
// the caller's error sink and never block or revert local state.
type Store interface {
	// LoadCollection returns every document in the collection.
	LoadCollection(ctx context.Context, collection string) ([]json.RawMessage, error)
	// LoadDocument returns one document, or ErrNotFound.
	LoadDocument(ctx context.Context, collection, id string) (json.RawMessage, error)
	// PutDocument creates or fully replaces a document.
	PutDocument(ctx context.Context, collection, id string, value any) error
	// PatchDocument merges the partial fields into an existing document.
	// Only top-level keys merge; nested values replace wholesale.
	PatchDocument(ctx context.Context, collection, id string, partial map[string]any) error
	// DeleteDocument removes a document. Deleting an absent document is
	// not an error.
	DeleteDocument(ctx context.Context, collection, id string) error
	// QueryEquality returns every document whose field equals value.
	QueryEquality(ctx context.Context, collection, field string, value any) ([]json.RawMessage, error)
}

// DocumentID extracts the id field of a raw document. Used by the cascade
// routine to address documents returned from an equality query.
func DocumentID(doc json.RawMessage) (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return "", err
	}
	return probe.ID, nil
}

// encode sanitizes value and returns its JSON form, ready for storage.
func encode(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(Clean(generic))
}

// mergeDoc applies a sanitized partial onto an existing raw document.
func mergeDoc(existing json.RawMessage, partial map[string]any) ([]byte, error) {
	doc := map[string]any{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return nil, err
		}
	}
	cleaned, ok := Clean(toGeneric(partial)).(map[string]any)
	if !ok {
		cleaned = map[string]any{}
	}
	for k, v := range cleaned {
		doc[k] = v
	}
	return json.Marshal(doc)
}

// toGeneric converts a partial that may contain typed struct values into
// plain JSON-shaped maps so Clean can walk it.
func toGeneric(partial map[string]any) any {
	raw, err := json.Marshal(partial)
	if err != nil {
		return map[string]any{}
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return map[string]any{}
	}
	return generic
}
