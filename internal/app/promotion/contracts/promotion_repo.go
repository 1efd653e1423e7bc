package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// PromotionRepo is the write-side repository interface for promotions.
// Methods return Spanner mutations; they do not apply them.
type PromotionRepo interface {
	// InsertMuts returns the promotion row followed by one row per binding.
	InsertMuts(p *domain.Promotion) []*spanner.Mutation

	// UpdateMuts returns mutations for the promotion's dirty fields. Dirty
	// bindings are rewritten as a whole: delete by key prefix, then re-insert.
	UpdateMuts(p *domain.Promotion) []*spanner.Mutation

	// DeleteMut returns the mutation removing the promotion and, by cascade, its bindings.
	DeleteMut(p *domain.Promotion) *spanner.Mutation
}
