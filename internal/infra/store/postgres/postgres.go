// Package postgres implements the EntityStore over a single jsonb documents
// table. Filters compile to expressions on the json payload, which keeps the
// store collection-agnostic.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawhaven/internal/infra"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	collection text        NOT NULL,
	id         uuid        NOT NULL,
	data       jsonb       NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS items_data_idx ON items USING gin (data);
`

type Store struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

var _ store.EntityStore = (*Store)(nil)

func New(pool *pgxpool.Pool, clk clock.Clock) *Store {
	return &Store{pool: pool, clk: clk}
}

// EnsureSchema applies the documents table. The schema is a single table, so
// it is applied directly rather than through a migration tool.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to ensure items schema", err)
	}
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, filter store.Filter) ([]store.Item, error) {
	sql, args, err := buildFindQuery(collection, filter)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build find query", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query "+collection, err)
	}
	defer rows.Close()

	var out []store.Item
	for rows.Next() {
		var data map[string]any
		if err := rows.Scan(&data); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan item from "+collection, err)
		}
		out = append(out, store.Item(data))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate "+collection, err)
	}

	return out, nil
}

func (s *Store) Get(ctx context.Context, collection string, id uuid.UUID) (store.Item, error) {
	var data map[string]any
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM items WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "item not found in "+collection, nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get item from "+collection, err)
	}
	return store.Item(data), nil
}

func (s *Store) Create(ctx context.Context, collection string, data map[string]any) (store.Item, error) {
	doc := store.Item(data).Clone()
	id := doc.ID()
	if id == uuid.Nil {
		id = uuid.New()
		doc[store.FieldID] = id.String()
	}

	now := s.clk.Now().UTC()
	if _, ok := doc[store.FieldCreatedAt]; !ok {
		doc[store.FieldCreatedAt] = now.Format(time.RFC3339Nano)
	}
	doc[store.FieldUpdatedAt] = now.Format(time.RFC3339Nano)
	encodeTimes(doc)

	var stored map[string]any
	err := s.pool.QueryRow(ctx,
		`INSERT INTO items (collection, id, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 RETURNING data`,
		collection, id, doc, now,
	).Scan(&stored)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, infra.WrapRepoErr(infra.KindDuplicateKey, "item already exists in "+collection, err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create item in "+collection, err)
	}

	return store.Item(stored), nil
}

func (s *Store) Update(ctx context.Context, collection string, id uuid.UUID, patch map[string]any) (store.Item, error) {
	doc := store.Item(patch).Clone()
	now := s.clk.Now().UTC()
	doc[store.FieldUpdatedAt] = now.Format(time.RFC3339Nano)
	encodeTimes(doc)

	var stored map[string]any
	err := s.pool.QueryRow(ctx,
		`UPDATE items SET data = data || $3, updated_at = $4
		 WHERE collection = $1 AND id = $2
		 RETURNING data`,
		collection, id, doc, now,
	).Scan(&stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "item not found in "+collection, nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to update item in "+collection, err)
	}

	return store.Item(stored), nil
}

func (s *Store) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM items WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete item from "+collection, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "item not found in "+collection, nil)
	}
	return nil
}

func buildFindQuery(collection string, filter store.Filter) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT data FROM items WHERE collection = $1`)
	args := []any{collection}

	for _, c := range filter.Conditions() {
		field := c.Field
		if strings.ContainsAny(field, `"'\`) {
			return "", nil, fmt.Errorf("invalid filter field %q", field)
		}

		switch c.Op {
		case store.OpEq:
			args = append(args, asText(c.Value))
			fmt.Fprintf(&sb, ` AND data->>'%s' = $%d`, field, len(args))
		case store.OpIn:
			vs, ok := c.Value.([]any)
			if !ok {
				return "", nil, fmt.Errorf("in condition on %q requires a value list", field)
			}
			texts := make([]string, len(vs))
			for i, v := range vs {
				texts[i] = asText(v)
			}
			args = append(args, texts)
			fmt.Fprintf(&sb, ` AND data->>'%s' = ANY($%d)`, field, len(args))
		case store.OpLt:
			t, ok := c.Value.(time.Time)
			if !ok {
				return "", nil, fmt.Errorf("range condition on %q requires a time value", field)
			}
			args = append(args, t)
			fmt.Fprintf(&sb, ` AND (data->>'%s')::timestamptz < $%d`, field, len(args))
		case store.OpGte:
			t, ok := c.Value.(time.Time)
			if !ok {
				return "", nil, fmt.Errorf("range condition on %q requires a time value", field)
			}
			args = append(args, t)
			fmt.Fprintf(&sb, ` AND (data->>'%s')::timestamptz >= $%d`, field, len(args))
		default:
			return "", nil, fmt.Errorf("unsupported filter op %q", c.Op)
		}
	}

	if field := filter.SortDescField(); field != "" {
		if strings.ContainsAny(field, `"'\`) {
			return "", nil, fmt.Errorf("invalid sort field %q", field)
		}
		fmt.Fprintf(&sb, ` ORDER BY data->>'%s' DESC`, field)
	} else {
		sb.WriteString(` ORDER BY created_at ASC, id ASC`)
	}

	if limit := filter.LimitCount(); limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}

	return sb.String(), args, nil
}

// encodeTimes rewrites time values to RFC3339 so the jsonb payload matches
// what the filter SQL casts expect.
func encodeTimes(doc store.Item) {
	for k, v := range doc {
		if t, ok := v.(time.Time); ok {
			doc[k] = t.UTC().Format(time.RFC3339Nano)
		}
	}
}

func asText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
