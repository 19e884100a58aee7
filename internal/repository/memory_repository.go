package repository

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
	"github.com/nikolayk812/merchhub/internal/port"
)

const snapshotTable = "cart_snapshots"

type memorySnapshot struct {
	StorageKey string
	Payload    string
}

type memoryRepository struct {
	db *memdb.MemDB
}

// NewMemorySnapshot returns a process-local SnapshotRepository.
// Snapshots live as long as the process does.
func NewMemorySnapshot() (port.SnapshotRepository, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			snapshotTable: {
				Name: snapshotTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "StorageKey"},
					},
				},
			},
		},
	}

	mdb, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("memdb.NewMemDB: %w", err)
	}

	return &memoryRepository{db: mdb}, nil
}

func (r *memoryRepository) GetSnapshot(_ context.Context, storageKey string) (string, error) {
	if storageKey == "" {
		return "", fmt.Errorf("storageKey is empty")
	}

	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(snapshotTable, "id", storageKey)
	if err != nil {
		return "", fmt.Errorf("txn.First: %w", err)
	}
	if raw == nil {
		return "", port.ErrSnapshotNotFound
	}

	return raw.(*memorySnapshot).Payload, nil
}

func (r *memoryRepository) SaveSnapshot(_ context.Context, storageKey string, payload string) error {
	if storageKey == "" {
		return fmt.Errorf("storageKey is empty")
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	err := txn.Insert(snapshotTable, &memorySnapshot{StorageKey: storageKey, Payload: payload})
	if err != nil {
		return fmt.Errorf("txn.Insert: %w", err)
	}

	txn.Commit()
	return nil
}

func (r *memoryRepository) DeleteSnapshot(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, fmt.Errorf("storageKey is empty")
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	deleted, err := txn.DeleteAll(snapshotTable, "id", storageKey)
	if err != nil {
		return false, fmt.Errorf("txn.DeleteAll: %w", err)
	}

	txn.Commit()
	return deleted > 0, nil
}
