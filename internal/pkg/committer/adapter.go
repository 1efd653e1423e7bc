package committer

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
)

var errNoClient = errors.New("committer: spanner client is nil")

// Adapter applies plans in a single read-write transaction.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply commits every mutation of plan atomically. Spanner errors are
// returned unwrapped so callers can inspect spanner.ErrCode.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return errNoClient
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
	return err
}
