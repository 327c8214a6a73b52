package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/convcrypto"
	"github.com/dmitrijs2005/citylifes/internal/geo"
)

// toStatus maps service errors onto gRPC status codes. Only validation
// errors expose their message to the caller.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorValidation), errors.Is(err, geo.ErrInvalidFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, convcrypto.ErrCryptoUnavailable):
		return status.Error(codes.FailedPrecondition, convcrypto.ErrCryptoUnavailable.Error())
	case errors.Is(err, convcrypto.ErrEncryptionFailed):
		return status.Error(codes.Unavailable, convcrypto.ErrEncryptionFailed.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
