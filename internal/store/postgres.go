package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/textshare/internal/snippet"
)

// PostgresSnippetStore is a PostgreSQL implementation of snippet.Repository.
// Postgres has no key TTL, so expired rows linger until the lifecycle
// manager's lazy cleanup removes them: Get returns them as-is and relies on
// the caller's expiry re-check, while Exists and Create treat them as free
// so their ids can be reclaimed.
//
// Schema:
//
//	CREATE TABLE snippets (
//	    id           TEXT PRIMARY KEY,
//	    text         TEXT NOT NULL,
//	    user_name    TEXT NOT NULL DEFAULT '',
//	    display_type TEXT NOT NULL,
//	    delete_token TEXT,
//	    created_at   TIMESTAMPTZ NOT NULL,
//	    expires_at   TIMESTAMPTZ NOT NULL
//	);
type PostgresSnippetStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSnippetStore creates a PostgreSQL-backed snippet store.
func NewPostgresSnippetStore(pool *pgxpool.Pool) *PostgresSnippetStore {
	return &PostgresSnippetStore{pool: pool}
}

// Create claims the id unless a live row holds it. An expired row under the
// same id is overwritten, mirroring how a TTL store would have dropped it.
func (p *PostgresSnippetStore) Create(ctx context.Context, snip *snippet.Snippet, _ time.Duration) error {
	query := `
		INSERT INTO snippets (id, text, user_name, display_type, delete_token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET text = EXCLUDED.text,
		    user_name = EXCLUDED.user_name,
		    display_type = EXCLUDED.display_type,
		    delete_token = EXCLUDED.delete_token,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at
		WHERE snippets.expires_at <= now()
	`

	tag, err := p.pool.Exec(ctx, query,
		snip.ID,
		snip.Text,
		snip.UserName,
		string(snip.DisplayType),
		nullableToken(snip.DeleteToken),
		snip.CreatedAt,
		snip.ExpiresAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return snippet.ErrIDTaken
	}

	return nil
}

func (p *PostgresSnippetStore) Get(ctx context.Context, id string) (*snippet.Snippet, error) {
	query := `
		SELECT text, user_name, display_type, delete_token, created_at, expires_at
		FROM snippets
		WHERE id = $1
	`

	var (
		snip  snippet.Snippet
		dtype string
		token *string
	)

	err := p.pool.QueryRow(ctx, query, id).Scan(
		&snip.Text,
		&snip.UserName,
		&dtype,
		&token,
		&snip.CreatedAt,
		&snip.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, snippet.ErrNotFound
		}

		return nil, err
	}

	snip.ID = id
	snip.DisplayType = snippet.DisplayType(dtype)

	if token != nil {
		snip.DeleteToken = *token
	}

	return &snip, nil
}

func (p *PostgresSnippetStore) Delete(ctx context.Context, id string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM snippets WHERE id = $1`, id)

	return err
}

func (p *PostgresSnippetStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM snippets WHERE id = $1 AND expires_at > now())`, id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func nullableToken(token string) *string {
	if token == "" {
		return nil
	}

	return &token
}

// Compile-time check.
var _ snippet.Repository = (*PostgresSnippetStore)(nil)
