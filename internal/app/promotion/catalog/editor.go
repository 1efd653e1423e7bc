package catalog

import (
	"context"
	"time"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// Editor holds the server-confirmed promotion next to the working draft the
// admin is editing. Edits only touch the draft; the confirmed copy is
// replaced only after the catalog accepts a submit.
type Editor struct {
	catalog   *PromotionCatalog
	confirmed *domain.Promotion
	draft     domain.Draft
}

// NewEditor starts editing confirmed. A nil confirmed promotion starts a new
// one; Submit then creates it.
func NewEditor(catalog *PromotionCatalog, confirmed *domain.Promotion) *Editor {
	e := &Editor{catalog: catalog, confirmed: confirmed}
	e.Reset()
	return e
}

// Confirmed returns the last promotion accepted by the catalog, or nil.
func (e *Editor) Confirmed() *domain.Promotion {
	return e.confirmed
}

// Draft returns a copy of the working draft.
func (e *Editor) Draft() domain.Draft {
	return e.draft.Clone()
}

func (e *Editor) SetName(name string) {
	e.draft.Name = name
}

func (e *Editor) SetSchedule(start, end time.Time, isActive bool) {
	e.draft.StartDate = start
	e.draft.EndDate = end
	e.draft.IsActive = isActive
}

// SetBinding stores the product's discount in the draft.
func (e *Editor) SetBinding(b domain.BindingDraft) {
	e.draft.SetBinding(b)
}

// RemoveBinding drops productID from the draft. Absent ids are ignored.
func (e *Editor) RemoveBinding(productID string) {
	e.draft.RemoveBinding(productID)
}

// Validate runs local validation on the working draft.
func (e *Editor) Validate() error {
	return e.draft.Validate()
}

// Reset discards local edits.
func (e *Editor) Reset() {
	if e.confirmed == nil {
		e.draft = domain.Draft{}
		return
	}
	e.draft = e.confirmed.ToDraft()
}

// Submit sends the draft. On failure the confirmed promotion and the draft
// are left as they were so the admin can fix and re-submit.
func (e *Editor) Submit(ctx context.Context) (*domain.Promotion, error) {
	var (
		p   *domain.Promotion
		err error
	)
	if e.confirmed == nil {
		p, err = e.catalog.Create(ctx, e.draft.Clone())
	} else {
		p, err = e.catalog.Update(ctx, e.confirmed.ID(), e.draft.Clone())
	}
	if err != nil {
		return nil, err
	}

	e.confirmed = p
	e.Reset()
	return p, nil
}
