package m_promotion

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a promotion row.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation keyed by promotionID.
// values must not contain the key column.
func UpdateMutation(promotionID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColPromotionID}
	vals := []interface{}{promotionID}
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation deletes the promotion row. Interleaved binding rows are
// removed by ON DELETE CASCADE.
func DeleteMutation(promotionID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{promotionID})
}

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(promotionID, name string, isActive bool, startDate, endDate, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColPromotionID: promotionID,
		ColName:        name,
		ColIsActive:    isActive,
		ColStartDate:   startDate,
		ColEndDate:     endDate,
		ColCreatedAt:   createdAt,
		ColUpdatedAt:   updatedAt,
	}
}

// Columns lists the promotion columns in scan order.
var Columns = []string{
	ColPromotionID,
	ColName,
	ColIsActive,
	ColStartDate,
	ColEndDate,
	ColCreatedAt,
	ColUpdatedAt,
}

// Row is the scanned form of Columns.
type Row struct {
	PromotionID string
	Name        string
	IsActive    bool
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Scan reads a row selected with Columns.
func Scan(row *spanner.Row) (Row, error) {
	var r Row
	err := row.Columns(&r.PromotionID, &r.Name, &r.IsActive, &r.StartDate, &r.EndDate, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}
