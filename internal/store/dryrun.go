package store

import (
	"context"

	"go.uber.org/zap"
)

// DryRunKV serves reads from the wrapped store but logs writes instead
// of performing them, so a run can be rehearsed against live data.
type DryRunKV struct {
	next   KV
	logger *zap.Logger
}

func NewDryRunKV(next KV, logger *zap.Logger) *DryRunKV {
	return &DryRunKV{next: next, logger: logger}
}

func (d *DryRunKV) Get(ctx context.Context, key string) (string, error) {
	return d.next.Get(ctx, key)
}

func (d *DryRunKV) Set(ctx context.Context, key string, value string) error {
	d.logger.Info("dry run: skipping write",
		zap.String("key", key),
		zap.Int("bytes", len(value)))
	return nil
}
