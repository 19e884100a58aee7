package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/merchhub/internal/db"
	"github.com/nikolayk812/merchhub/internal/port"
)

type snapshotRepository struct {
	q *db.Queries
}

func NewSnapshot(pool *pgxpool.Pool) port.SnapshotRepository {
	return &snapshotRepository{
		q: db.New(pool),
	}
}

func NewSnapshotWithTx(tx pgx.Tx) port.SnapshotRepository {
	return &snapshotRepository{
		q: db.New(tx),
	}
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, storageKey string) (string, error) {
	if storageKey == "" {
		return "", fmt.Errorf("storageKey is empty")
	}

	row, err := r.q.GetSnapshot(ctx, storageKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", port.ErrSnapshotNotFound
		}
		return "", fmt.Errorf("q.GetSnapshot: %w", err)
	}

	return row.Payload, nil
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, storageKey string, payload string) error {
	if storageKey == "" {
		return fmt.Errorf("storageKey is empty")
	}

	err := r.q.UpsertSnapshot(ctx, db.UpsertSnapshotParams{
		StorageKey: storageKey,
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertSnapshot: %w", err)
	}

	return nil
}

func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, fmt.Errorf("storageKey is empty")
	}

	rowsAffected, err := r.q.DeleteSnapshot(ctx, storageKey)
	if err != nil {
		return false, fmt.Errorf("q.DeleteSnapshot: %w", err)
	}

	return rowsAffected > 0, nil
}
