package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection in one Redis hash: field = document id,
// value = sanitized JSON document. Equality queries scan the hash; the
// collections are small enough (per-tenant back-office data) that an index
// would be overkill.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore wraps an existing go-redis client. Keys are namespaced
// "softwash:<collection>".
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "softwash:"}
}

func (s *RedisStore) key(collection string) string {
	return s.prefix + collection
}

func (s *RedisStore) LoadCollection(ctx context.Context, collection string) ([]json.RawMessage, error) {
	values, err := s.rdb.HVals(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("remote: load %s: %w", collection, err)
	}
	docs := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		docs = append(docs, json.RawMessage(v))
	}
	return docs, nil
}

func (s *RedisStore) LoadDocument(ctx context.Context, collection, id string) (json.RawMessage, error) {
	raw, err := s.rdb.HGet(ctx, s.key(collection), id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("remote: load %s/%s: %w", collection, id, err)
	}
	return json.RawMessage(raw), nil
}

func (s *RedisStore) PutDocument(ctx context.Context, collection, id string, value any) error {
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("remote: encode %s/%s: %w", collection, id, err)
	}
	if err := s.rdb.HSet(ctx, s.key(collection), id, data).Err(); err != nil {
		return fmt.Errorf("remote: put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) PatchDocument(ctx context.Context, collection, id string, partial map[string]any) error {
	existing, err := s.LoadDocument(ctx, collection, id)
	if err != nil && err != ErrNotFound {
		return err
	}
	merged, err := mergeDoc(existing, partial)
	if err != nil {
		return fmt.Errorf("remote: patch %s/%s: %w", collection, id, err)
	}
	if err := s.rdb.HSet(ctx, s.key(collection), id, merged).Err(); err != nil {
		return fmt.Errorf("remote: patch %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) DeleteDocument(ctx context.Context, collection, id string) error {
	if err := s.rdb.HDel(ctx, s.key(collection), id).Err(); err != nil {
		return fmt.Errorf("remote: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) QueryEquality(ctx context.Context, collection, field string, value any) ([]json.RawMessage, error) {
	docs, err := s.LoadCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	var matches []json.RawMessage
	for _, doc := range docs {
		var fields map[string]any
		if err := json.Unmarshal(doc, &fields); err != nil {
			continue
		}
		if fields[field] == value {
			matches = append(matches, doc)
		}
	}
	return matches, nil
}
