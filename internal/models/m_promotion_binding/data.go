package m_promotion_binding

import (
	"cloud.google.com/go/spanner"
)

// Row is the flat column set of one binding row.
type Row struct {
	PromotionID  string
	ProductID    string
	Position     int64
	DiscountType string
	ValueNum     int64
	ValueDen     int64
	ProductName  string
	ProductImage string
	PriceNum     int64
	PriceDen     int64
}

var insertColumns = []string{
	ColPromotionID,
	ColProductID,
	ColPosition,
	ColDiscountType,
	ColDiscountValueNumerator,
	ColDiscountValueDenominator,
	ColProductName,
	ColProductImage,
	ColSnapshotPriceNumerator,
	ColSnapshotPriceDenominator,
}

// InsertMutation builds a spanner.Insert mutation for one binding row.
func InsertMutation(r Row) *spanner.Mutation {
	return spanner.Insert(TableName, insertColumns, []interface{}{
		r.PromotionID,
		r.ProductID,
		r.Position,
		r.DiscountType,
		r.ValueNum,
		r.ValueDen,
		r.ProductName,
		spanner.NullString{StringVal: r.ProductImage, Valid: r.ProductImage != ""},
		r.PriceNum,
		r.PriceDen,
	})
}

// DeleteAllMutation removes every binding of the promotion.
func DeleteAllMutation(promotionID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{promotionID}.AsPrefix())
}

// Columns lists the binding columns in scan order.
var Columns = insertColumns

// Scan reads a row selected with Columns.
func Scan(row *spanner.Row) (Row, error) {
	var (
		r     Row
		image spanner.NullString
	)
	err := row.Columns(&r.PromotionID, &r.ProductID, &r.Position, &r.DiscountType,
		&r.ValueNum, &r.ValueDen, &r.ProductName, &image, &r.PriceNum, &r.PriceDen)
	r.ProductImage = image.StringVal
	return r, err
}
