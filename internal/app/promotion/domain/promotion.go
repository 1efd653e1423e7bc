package domain

import (
	"strings"
	"time"
)

// Promotion is the aggregate root of the pricing engine: a named,
// time-bounded set of per-product discounts. It exclusively owns its bindings.
type Promotion struct {
	id        string
	name      string
	window    ActivityWindow
	bindings  Bindings
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewPromotion validates draft and creates a promotion from it.
// Validation is all-or-nothing: the first failing input is returned.
func NewPromotion(id string, draft Draft, now time.Time) (*Promotion, error) {
	window, bindings, err := draft.build()
	if err != nil {
		return nil, err
	}

	p := &Promotion{
		id:        id,
		name:      strings.TrimSpace(draft.Name),
		window:    window,
		bindings:  bindings,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}

	p.events = append(p.events, &PromotionCreatedEvent{
		PromotionID: p.id,
		Name:        p.name,
		StartDate:   window.Start(),
		EndDate:     window.End(),
		Enabled:     window.Enabled(),
		ProductIDs:  bindings.ProductIDs(),
		CreatedAt:   now,
	})

	return p, nil
}

// ReconstructPromotion reconstructs a Promotion from persisted state.
// Used by repositories and clients when loading an already accepted promotion.
func ReconstructPromotion(
	id, name string,
	window ActivityWindow,
	bindings Bindings,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:        id,
		name:      name,
		window:    window,
		bindings:  append(Bindings(nil), bindings...),
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
}

// Getters

func (p *Promotion) ID() string {
	return p.id
}

func (p *Promotion) Name() string {
	return p.name
}

func (p *Promotion) Window() ActivityWindow {
	return p.window
}

// Bindings returns a copy of the ordered binding collection.
func (p *Promotion) Bindings() Bindings {
	return append(Bindings(nil), p.bindings...)
}

func (p *Promotion) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Promotion) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Promotion) DeletedAt() *time.Time {
	return p.deletedAt
}

func (p *Promotion) Changes() *ChangeTracker {
	return p.changes
}

func (p *Promotion) DomainEvents() []DomainEvent {
	return p.events
}

// BindingFor returns the binding for productID, if this promotion has one.
func (p *Promotion) BindingFor(productID string) (ProductBinding, bool) {
	return p.bindings.Find(productID)
}

// State is a shorthand for Window().State(now).
func (p *Promotion) State(now time.Time) WindowState {
	return p.window.State(now)
}

// ToDraft returns the promotion as an editable draft.
func (p *Promotion) ToDraft() Draft {
	d := Draft{
		Name:      p.name,
		IsActive:  p.window.Enabled(),
		StartDate: p.window.Start(),
		EndDate:   p.window.End(),
		Bindings:  make([]BindingDraft, 0, len(p.bindings)),
	}
	for _, b := range p.bindings {
		d.Bindings = append(d.Bindings, BindingDraft{
			ProductID: b.ProductID(),
			Kind:      b.Rule().Kind(),
			Value:     b.Rule().Value(),
			Product:   b.Snapshot(),
		})
	}
	return d
}

// Business Methods

// Replace applies a full draft to the promotion. Bindings are replaced
// wholesale: anything absent from the draft is dropped and every rule in the
// draft is validated afresh, regardless of what was stored before.
func (p *Promotion) Replace(draft Draft, now time.Time) error {
	if p.deletedAt != nil {
		return ErrPromotionDeleted
	}

	window, bindings, err := draft.build()
	if err != nil {
		return err
	}

	changes := make(map[string]interface{})

	name := strings.TrimSpace(draft.Name)
	if name != p.name {
		p.name = name
		p.changes.MarkDirty(FieldName)
		changes["name"] = name
	}

	if !window.Equal(p.window) {
		p.window = window
		p.changes.MarkDirty(FieldWindow)
		changes["start_date"] = window.Start()
		changes["end_date"] = window.End()
		changes["is_active"] = window.Enabled()
	}

	removed := make([]string, 0)
	for _, old := range p.bindings {
		if _, ok := bindings.Find(old.ProductID()); !ok {
			removed = append(removed, old.ProductID())
		}
	}
	p.bindings = bindings
	p.changes.MarkDirty(FieldBindings)

	p.updatedAt = now
	if len(changes) > 0 {
		p.events = append(p.events, &PromotionUpdatedEvent{
			PromotionID: p.id,
			UpdatedAt:   now,
			Changes:     changes,
		})
	}
	p.events = append(p.events, &BindingsReplacedEvent{
		PromotionID: p.id,
		Removed:     removed,
		Current:     bindings.ProductIDs(),
		ReplacedAt:  now,
	})

	return nil
}

// MarkDeleted records the deletion of the promotion and its bindings.
// The referenced products are not touched.
func (p *Promotion) MarkDeleted(now time.Time) error {
	if p.deletedAt != nil {
		return ErrPromotionDeleted
	}

	p.deletedAt = &now
	p.changes.MarkDirty(FieldDeletedAt)
	p.updatedAt = now

	p.events = append(p.events, &PromotionDeletedEvent{
		PromotionID: p.id,
		ProductIDs:  p.bindings.ProductIDs(),
		DeletedAt:   now,
	})

	return nil
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been published.
func (p *Promotion) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
