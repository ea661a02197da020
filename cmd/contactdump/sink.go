package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// jsonSink writes records to the file in JSON Lines format.
type jsonSink struct {
	f   *os.File
	w   *bufio.Writer
	enc *json.Encoder
}

func newJSONSink(path string) (*jsonSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}

	w := bufio.NewWriter(f)

	return &jsonSink{f: f, w: w, enc: json.NewEncoder(w)}, nil
}

func (x *jsonSink) Put(_ context.Context, r Record) error {
	return x.enc.Encode(r)
}

func (x *jsonSink) Close() error {
	if err := x.w.Flush(); err != nil {
		_ = x.f.Close()
		return fmt.Errorf("flush output file: %w", err)
	}

	return x.f.Close()
}

const createContactsTable = `
	CREATE TABLE IF NOT EXISTS contactauth_contacts (
		owner         TEXT   NOT NULL,
		category      TEXT   NOT NULL,
		value         TEXT   NOT NULL,
		secondary_key BIGINT NOT NULL DEFAULT 0,
		block         BIGINT NOT NULL,
		PRIMARY KEY (owner, category, value, secondary_key)
	)
`

// postgresSink stores contacts in the PostgreSQL table, one row per contact.
// Rows of the previous exports not present in the directory are removed.
type postgresSink struct {
	pool  *pgxpool.Pool
	block uint32
}

func newPostgresSink(ctx context.Context, databaseURL string, block uint32) (*postgresSink, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createContactsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &postgresSink{pool: pool, block: block}, nil
}

func (x *postgresSink) Put(ctx context.Context, r Record) error {
	query := `
		INSERT INTO contactauth_contacts (owner, category, value, secondary_key, block)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner, category, value, secondary_key) DO UPDATE SET block = EXCLUDED.block
	`

	if len(r.Contacts) == 0 {
		return nil
	}

	b := new(pgx.Batch)
	for _, c := range r.Contacts {
		b.Queue(query, r.Owner, c.Category, c.Value, c.SecondaryKey, int64(x.block))
	}

	err := x.pool.SendBatch(ctx, b).Close()
	if err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}

	return nil
}

// prune removes rows not touched by the current export. It must be called
// only after the whole directory snapshot is put.
func (x *postgresSink) prune(ctx context.Context) (int64, error) {
	tag, err := x.pool.Exec(ctx, `DELETE FROM contactauth_contacts WHERE block < $1`, int64(x.block))
	if err != nil {
		return 0, fmt.Errorf("failed to prune stale contacts: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (x *postgresSink) Close() error {
	x.pool.Close()
	return nil
}
