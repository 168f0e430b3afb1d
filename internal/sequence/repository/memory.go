package repository

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/sequence"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
)

type MemoryRepository struct {
	db *memdb.DB
}

func NewMemoryRepository(db *memdb.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func (r *MemoryRepository) Next(_ context.Context, companyID, branchID, kind string) (int64, error) {
	var n int64
	err := r.db.Write(func(t *memdb.Tables) error {
		key := sequence.Key(companyID, branchID, kind)
		t.Sequences[key]++
		n = t.Sequences[key]
		return nil
	})
	return n, err
}

func (r *MemoryRepository) Current(_ context.Context, companyID, branchID, kind string) (int64, error) {
	var n int64
	err := r.db.Read(func(t *memdb.Tables) error {
		n = t.Sequences[sequence.Key(companyID, branchID, kind)]
		return nil
	})
	return n, err
}
