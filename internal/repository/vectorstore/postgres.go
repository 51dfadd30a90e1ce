package vectorstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// DefaultTable is the Postgres table used when none is configured.
const DefaultTable = "vector_store"

// PostgresStore persists records in a pgvector table. Row order is kept in a
// position column so Load returns records in Save order.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresStore connects to dsn and ensures the table exists.
func NewPostgresStore(ctx context.Context, dsn, table string) (*PostgresStore, error) {
	if table == "" {
		table = DefaultTable
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	s := &PostgresStore{pool: pool, table: pgx.Identifier{table}.Sanitize()}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("create vector extension: %w", err)
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		position  INTEGER PRIMARY KEY,
		id        TEXT NOT NULL UNIQUE,
		type      TEXT NOT NULL,
		text      TEXT NOT NULL,
		embedding vector NOT NULL
	)`, s.table)
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// Load returns every record ordered by position. An empty table is an empty store.
func (s *PostgresStore) Load(ctx context.Context) ([]domain.StoredRecord, error) {
	rows, err := s.pool.Query(ctx,
		fmt.Sprintf("SELECT id, type, text, embedding FROM %s ORDER BY position", s.table))
	if err != nil {
		return nil, &CorruptStoreError{Path: s.table, Err: err}
	}
	defer rows.Close()

	records := []domain.StoredRecord{}
	for rows.Next() {
		var (
			rec domain.StoredRecord
			typ string
			vec pgvector.Vector
		)
		if err := rows.Scan(&rec.ID, &typ, &rec.Text, &vec); err != nil {
			return nil, &CorruptStoreError{Path: s.table, Err: err}
		}
		rec.Type = domain.DocumentType(typ)
		rec.Embedding = vec.Slice()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &CorruptStoreError{Path: s.table, Err: err}
	}
	if err := validate(records); err != nil {
		return nil, &CorruptStoreError{Path: s.table, Err: err}
	}
	return records, nil
}

// Save replaces the table contents with records in one transaction.
func (s *PostgresStore) Save(ctx context.Context, records []domain.StoredRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE %s", s.table)); err != nil {
		return fmt.Errorf("truncate %s: %w", s.table, err)
	}

	insert := fmt.Sprintf(
		"INSERT INTO %s (position, id, type, text, embedding) VALUES ($1, $2, $3, $4, $5)", s.table)
	batch := &pgx.Batch{}
	for i := range records {
		batch.Queue(insert, i, records[i].ID, string(records[i].Type), records[i].Text,
			pgvector.NewVector(records[i].Embedding))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
