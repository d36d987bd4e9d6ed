package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/textshare/internal/snippet"
)

// snippetKeyPrefix namespaces snippet keys: text:<id> -> JSON record.
const snippetKeyPrefix = "text:"

// RedisSnippetStore is the Redis implementation of snippet.Repository.
// Records are JSON blobs with a key TTL equal to their logical expiry
// window; uniqueness races between writers are resolved by SET NX.
type RedisSnippetStore struct {
	client *redis.Client
}

// NewRedisSnippetStore creates a Redis-backed snippet store.
func NewRedisSnippetStore(client *redis.Client) *RedisSnippetStore {
	return &RedisSnippetStore{client: client}
}

func (r *RedisSnippetStore) Create(ctx context.Context, snip *snippet.Snippet, ttl time.Duration) error {
	data, err := json.Marshal(snip)
	if err != nil {
		return fmt.Errorf("encoding snippet: %w", err)
	}

	ok, err := r.client.SetNX(ctx, snippetKey(snip.ID), data, ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return snippet.ErrIDTaken
	}

	return nil
}

func (r *RedisSnippetStore) Get(ctx context.Context, id string) (*snippet.Snippet, error) {
	data, err := r.client.Get(ctx, snippetKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, snippet.ErrNotFound
		}

		return nil, err
	}

	var snip snippet.Snippet
	if err := json.Unmarshal(data, &snip); err != nil {
		return nil, fmt.Errorf("decoding snippet: %w", err)
	}

	snip.ID = id

	return &snip, nil
}

func (r *RedisSnippetStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, snippetKey(id)).Err()
}

func (r *RedisSnippetStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, snippetKey(id)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func snippetKey(id string) string {
	return snippetKeyPrefix + id
}

// Compile-time check.
var _ snippet.Repository = (*RedisSnippetStore)(nil)
