package contracts

import (
	"context"

	commitplan "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
)

//go:generate mockgen -destination=../mocks/mock_committer.go -package=mocks github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts Committer

// Committer applies a collection of mutations atomically. Usecases depend on
// this instead of the Spanner client so they can be tested without a database.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
