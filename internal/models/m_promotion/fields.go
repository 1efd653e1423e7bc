package m_promotion

// Field constants for the promotions table.
const (
	TableName = "promotions"

	ColPromotionID = "promotion_id"
	ColName        = "name"
	ColIsActive    = "is_active"
	ColStartDate   = "start_date"
	ColEndDate     = "end_date"
	ColCreatedAt   = "created_at"
	ColUpdatedAt   = "updated_at"
)
