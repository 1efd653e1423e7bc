package shared

import (
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// MapCommitError translates constraint failures of a create or update commit.
// A binding referencing a product missing from the catalog violates the
// foreign key and is reported as an invalid binding.
func MapCommitError(err error) error {
	if err == nil {
		return nil
	}
	if spanner.ErrCode(err) == codes.FailedPrecondition {
		return fmt.Errorf("%w: product missing from catalog: %v", domain.ErrInvalidBinding, err)
	}
	return err
}
