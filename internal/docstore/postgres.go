package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	chat_errors "chat-store/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps every document in a single table, with the
// hierarchy encoded in the path column. collection is the parent path,
// so listing a collection is one indexed equality scan.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS documents (
	path       TEXT PRIMARY KEY,
	collection TEXT NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection, created_at);
`

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the documents table if it is missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaDDL)
	return err
}

func (s *PostgresStore) GetDocument(ctx context.Context, path string) (Document, error) {
	doc := Document{Path: path, ID: lastSegment(path)}
	err := s.pool.QueryRow(ctx,
		`SELECT data, created_at FROM documents WHERE path = $1`, path,
	).Scan(&doc.Data, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, chat_errors.ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

func (s *PostgresStore) AddDocument(ctx context.Context, collection string, data map[string]any) (Document, error) {
	doc := Document{
		ID:   s.GenerateID(collection),
		Data: data,
	}
	doc.Path = collection + "/" + doc.ID

	err := s.pool.QueryRow(ctx,
		`INSERT INTO documents (path, collection, data) VALUES ($1, $2, $3) RETURNING created_at`,
		doc.Path, collection, data,
	).Scan(&doc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Document{}, chat_errors.ErrAlreadyExists
		}
		return Document{}, err
	}
	return doc, nil
}

func (s *PostgresStore) QueryCollection(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT path, data, created_at FROM documents WHERE collection = $1 ORDER BY created_at, path`,
		collection,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.Path, &doc.Data, &doc.CreatedAt); err != nil {
			return nil, err
		}
		doc.ID = lastSegment(doc.Path)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// BatchDelete runs every delete inside one transaction, so the whole
// batch commits or none of it does.
func (s *PostgresStore) BatchDelete(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, path := range paths {
		batch.Queue(`DELETE FROM documents WHERE path = $1`, path)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) GenerateID(_ string) string {
	return uuid.NewString()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
