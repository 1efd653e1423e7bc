package m_product

import (
	"cloud.google.com/go/spanner"
)

// Columns lists the product columns read by price quotes, in scan order.
var Columns = []string{
	ColProductID,
	ColName,
	ColImageURL,
	ColPriceNumerator,
	ColPriceDenominator,
	ColOriginalPriceNumerator,
	ColOriginalPriceDenominator,
	ColStock,
}

// Row is the scanned form of Columns.
type Row struct {
	ProductID   string
	Name        string
	ImageURL    spanner.NullString
	PriceNum    int64
	PriceDen    int64
	OriginalNum spanner.NullInt64
	OriginalDen spanner.NullInt64
	Stock       int64
}

// Scan reads a row selected with Columns.
func Scan(row *spanner.Row) (Row, error) {
	var r Row
	err := row.Columns(&r.ProductID, &r.Name, &r.ImageURL, &r.PriceNum, &r.PriceDen,
		&r.OriginalNum, &r.OriginalDen, &r.Stock)
	return r, err
}

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// Used by fixtures and tooling; the catalog owns product writes.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
