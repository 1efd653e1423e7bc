package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// PromotionCreatedEvent is raised when a new promotion is accepted.
type PromotionCreatedEvent struct {
	PromotionID string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Enabled     bool
	ProductIDs  []string
	CreatedAt   time.Time
}

func (e *PromotionCreatedEvent) EventType() string {
	return "promotion.created"
}

func (e *PromotionCreatedEvent) AggregateID() string {
	return e.PromotionID
}

func (e *PromotionCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// PromotionUpdatedEvent is raised when the name or activity window changes.
type PromotionUpdatedEvent struct {
	PromotionID string
	UpdatedAt   time.Time
	Changes     map[string]interface{}
}

func (e *PromotionUpdatedEvent) EventType() string {
	return "promotion.updated"
}

func (e *PromotionUpdatedEvent) AggregateID() string {
	return e.PromotionID
}

func (e *PromotionUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// BindingsReplacedEvent is raised when the binding set is replaced.
type BindingsReplacedEvent struct {
	PromotionID string
	Removed     []string
	Current     []string
	ReplacedAt  time.Time
}

func (e *BindingsReplacedEvent) EventType() string {
	return "promotion.bindings_replaced"
}

func (e *BindingsReplacedEvent) AggregateID() string {
	return e.PromotionID
}

func (e *BindingsReplacedEvent) OccurredAt() time.Time {
	return e.ReplacedAt
}

// PromotionDeletedEvent is raised when a promotion and its bindings are deleted.
type PromotionDeletedEvent struct {
	PromotionID string
	ProductIDs  []string
	DeletedAt   time.Time
}

func (e *PromotionDeletedEvent) EventType() string {
	return "promotion.deleted"
}

func (e *PromotionDeletedEvent) AggregateID() string {
	return e.PromotionID
}

func (e *PromotionDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}
