package postgresregistry

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Registry struct {
	conn *pgxpool.Pool
}

type namedArgsBuilder[T any] func(val T) pgx.NamedArgs

func batchInsert[T any](ctx context.Context, query string, data []T, builder namedArgsBuilder[T], tx pgx.Tx) error {

	batch := &pgx.Batch{}

	for _, e := range data {
		batch.Queue(query, builder(e))
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	errArr := []error{}

	for _, e := range data {
		_, err := results.Exec()
		if err != nil {
			errArr = append(errArr, fmt.Errorf("failed to insert entry %v - %w", e, err))
		}
	}

	return errors.Join(errArr...)
}

func NewPostgresRegistry(p *pgxpool.Pool) (*Registry, error) {

	if p == nil {
		return nil, fmt.Errorf("pool can't be nil")
	}

	return &Registry{conn: p}, nil
}
