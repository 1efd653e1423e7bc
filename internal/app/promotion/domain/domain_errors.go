package domain

import (
	"errors"
	"fmt"
)

// Domain errors for DiscountRule value object
var (
	// ErrInvalidDiscountValue indicates a discount value that is zero or negative.
	ErrInvalidDiscountValue = errors.New("discount value must be greater than zero")

	// ErrPercentOutOfRange indicates a percentage discount above 100.
	ErrPercentOutOfRange = errors.New("percentage discount must not exceed 100")

	// ErrFixedExceedsOrEqualsPrice indicates a fixed discount that would wipe out the whole price.
	ErrFixedExceedsOrEqualsPrice = errors.New("fixed discount must be less than the product price")

	// ErrUnknownDiscountKind indicates a discount type other than PERCENT or FIXED.
	ErrUnknownDiscountKind = errors.New("discount type must be PERCENT or FIXED")
)

// Domain errors for ActivityWindow value object
var (
	// ErrInvalidWindow indicates the campaign end is not after its start.
	ErrInvalidWindow = errors.New("promotion end date must be after start date")
)

// Domain errors for ProductBinding
var (
	// ErrInvalidBinding indicates a binding whose rule does not validate against the product price.
	ErrInvalidBinding = errors.New("invalid product binding")

	// ErrDuplicateProductInBinding indicates the same product appears twice in one promotion.
	ErrDuplicateProductInBinding = errors.New("product is already bound in this promotion")

	// ErrEmptyProductID indicates a binding without a product reference.
	ErrEmptyProductID = errors.New("binding product id cannot be empty")

	// ErrNegativePrice indicates a product snapshot priced below zero.
	ErrNegativePrice = errors.New("product price cannot be negative")

	// ErrAmountNotStorable indicates an amount whose exact fraction does not fit
	// the stored int64 numerator and denominator.
	ErrAmountNotStorable = errors.New("amount has more precision than can be stored exactly")
)

// Domain errors for Promotion aggregate
var (
	// ErrPromotionNotFound indicates that a promotion with the given ID does not exist.
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrPromotionInUse indicates the promotion cannot be deleted while other records still reference it.
	ErrPromotionInUse = errors.New("promotion is still referenced by other catalog records; remove those references and retry")

	// ErrPromotionDeleted indicates an operation on a promotion that has already been deleted.
	ErrPromotionDeleted = errors.New("promotion is deleted")

	// ErrEmptyPromotionName indicates an attempt to save a promotion without a name.
	ErrEmptyPromotionName = errors.New("promotion name cannot be empty")

	// ErrPromotionNameTooLong indicates the promotion name exceeds maximum length.
	ErrPromotionNameTooLong = errors.New("promotion name exceeds maximum length of 255 characters")
)

// ErrProductNotFound indicates that the catalog has no product with the given ID.
var ErrProductNotFound = errors.New("product not found")

// ErrRemoteFailure indicates the catalog service could not complete a request.
var ErrRemoteFailure = errors.New("catalog service request failed")

// Draft field names reported by ValidationError.
const (
	FieldPromotionName = "name"
	FieldStartDate     = "startDate"
	FieldEndDate       = "endDate"
	FieldProductID     = "productId"
	FieldDiscountType  = "discountType"
	FieldDiscountValue = "discount"
	FieldProductPrice  = "product.price"
)

// ValidationError pinpoints the draft input that failed local validation.
// Index and ProductID are only set for binding-level failures (Index is -1 otherwise).
type ValidationError struct {
	Field     string
	Index     int
	ProductID string
	Err       error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("bindings[%d] (product %s) %s: %v", e.Index, e.ProductID, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was raised by local validation.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
