package memory

import (
	"context"

	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
)

// TxManager is a pass-through runner for tests and single-node setups where
// the in-memory stores provide their own locking.
type TxManager struct{}

func NewTxManager() database.TxManager {
	return TxManager{}
}

func (TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (TxManager) WithinSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
