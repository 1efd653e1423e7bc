package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion_binding"
)

// PromotionRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type PromotionRepo struct{}

func NewPromotionRepo() *PromotionRepo {
	return &PromotionRepo{}
}

// buildInsertValues constructs the promotion row. Unexported so tests can
// inspect it without relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Promotion) map[string]interface{} {
	w := p.Window()
	return m_promotion.BuildInsertMap(p.ID(), p.Name(), w.Enabled(),
		w.Start().UTC(), w.End().UTC(), p.CreatedAt().UTC(), p.UpdatedAt().UTC())
}

// bindingRows flattens the bindings in order; position preserves it on read.
func bindingRows(p *domain.Promotion) []m_promotion_binding.Row {
	bindings := p.Bindings()
	rows := make([]m_promotion_binding.Row, 0, len(bindings))
	for i, b := range bindings {
		value := domain.NewMoneyFromRat(b.Rule().Value())
		snap := b.Snapshot()
		price := snap.Price
		if price == nil {
			price = domain.Zero()
		}
		rows = append(rows, m_promotion_binding.Row{
			PromotionID:  p.ID(),
			ProductID:    b.ProductID(),
			Position:     int64(i),
			DiscountType: string(b.Rule().Kind()),
			ValueNum:     value.Numerator(),
			ValueDen:     value.Denominator(),
			ProductName:  snap.Name,
			ProductImage: snap.Image,
			PriceNum:     price.Numerator(),
			PriceDen:     price.Denominator(),
		})
	}
	return rows
}

// buildUpdateValues returns the promotion columns touched by dirty fields.
// updated_at is stamped whenever anything changed.
func buildUpdateValues(p *domain.Promotion) map[string]interface{} {
	ch := p.Changes()
	if ch == nil || !ch.HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}
	if ch.Dirty(domain.FieldName) {
		updates[m_promotion.ColName] = p.Name()
	}
	if ch.Dirty(domain.FieldWindow) {
		w := p.Window()
		updates[m_promotion.ColIsActive] = w.Enabled()
		updates[m_promotion.ColStartDate] = w.Start().UTC()
		updates[m_promotion.ColEndDate] = w.End().UTC()
	}
	updates[m_promotion.ColUpdatedAt] = p.UpdatedAt().UTC()
	return updates
}

// InsertMuts builds the promotion row insert followed by its binding inserts.
// Binding rows must follow the parent row for interleaving.
func (r *PromotionRepo) InsertMuts(p *domain.Promotion) []*spanner.Mutation {
	if p == nil {
		return nil
	}
	muts := []*spanner.Mutation{m_promotion.InsertMutation(buildInsertValues(p))}
	for _, row := range bindingRows(p) {
		muts = append(muts, m_promotion_binding.InsertMutation(row))
	}
	return muts
}

// UpdateMuts builds mutations from the aggregate's ChangeTracker.
func (r *PromotionRepo) UpdateMuts(p *domain.Promotion) []*spanner.Mutation {
	if p == nil {
		return nil
	}
	updates := buildUpdateValues(p)
	if len(updates) == 0 {
		return nil
	}

	muts := []*spanner.Mutation{m_promotion.UpdateMutation(p.ID(), updates)}
	if p.Changes().Dirty(domain.FieldBindings) {
		muts = append(muts, m_promotion_binding.DeleteAllMutation(p.ID()))
		for _, row := range bindingRows(p) {
			muts = append(muts, m_promotion_binding.InsertMutation(row))
		}
	}
	return muts
}

// DeleteMut returns the delete of the promotion row. The aggregate must have
// been transitioned via p.MarkDeleted(now).
func (r *PromotionRepo) DeleteMut(p *domain.Promotion) *spanner.Mutation {
	if p == nil || p.DeletedAt() == nil {
		return nil
	}
	return m_promotion.DeleteMutation(p.ID())
}
