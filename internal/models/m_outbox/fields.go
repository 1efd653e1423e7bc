package m_outbox

// Table outbox_events holds domain events until the relay publishes them.
const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"

	// IndexByStatus covers (status, created_at) for the relay's pending scan.
	IndexByStatus = "outbox_events_by_status"
)
