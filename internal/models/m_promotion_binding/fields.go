package m_promotion_binding

// Field constants for the promotion_bindings table, interleaved in promotions.
const (
	TableName = "promotion_bindings"

	ColPromotionID              = "promotion_id"
	ColProductID                = "product_id"
	ColPosition                 = "position"
	ColDiscountType             = "discount_type"
	ColDiscountValueNumerator   = "discount_value_numerator"
	ColDiscountValueDenominator = "discount_value_denominator"
	ColProductName              = "product_name"
	ColProductImage             = "product_image"
	ColSnapshotPriceNumerator   = "snapshot_price_numerator"
	ColSnapshotPriceDenominator = "snapshot_price_denominator"

	// IndexByProduct backs find-by-product lookups.
	IndexByProduct = "promotion_bindings_by_product"
)
