package promotion

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// mapError translates domain sentinel errors into gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Not found
	if errors.Is(err, domain.ErrPromotionNotFound) || errors.Is(err, domain.ErrPromotionDeleted) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Still referenced; the caller must clear the references first.
	if errors.Is(err, domain.ErrPromotionInUse) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidBinding),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrEmptyPromotionName),
		errors.Is(err, domain.ErrPromotionNameTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
