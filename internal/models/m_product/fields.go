package m_product

// Field constants for the products table. The table is owned by the catalog;
// this service only reads it.
const (
	TableName = "products"

	ColProductID                = "product_id"
	ColName                     = "name"
	ColImageURL                 = "image_url"
	ColPriceNumerator           = "base_price_numerator"
	ColPriceDenominator         = "base_price_denominator"
	ColOriginalPriceNumerator   = "original_price_numerator"
	ColOriginalPriceDenominator = "original_price_denominator"
	ColStock                    = "stock"
	ColStatus                   = "status"
	ColCreatedAt                = "created_at"
	ColUpdatedAt                = "updated_at"
	ColArchivedAt               = "archived_at"
)
