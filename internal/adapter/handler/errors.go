package handler

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/rl1809/stockledger/internal/core/domain"
)

// failure is the transport-neutral view of a service error.
type failure struct {
	httpStatus int
	grpcCode   codes.Code
	code       string
	message    string
	shortfalls []domain.Shortfall
	lines      []string
	// refused marks business refusals the gRPC surface reports in the reply
	// body instead of as a status error.
	refused bool
}

func classify(err error) failure {
	var (
		batchErr *domain.BatchError
		sfErr    *domain.ShortfallError
	)

	switch {
	case errors.As(err, &batchErr):
		lines := make([]string, len(batchErr.Lines))
		for i, l := range batchErr.Lines {
			lines[i] = l.Error()
		}
		return failure{
			httpStatus: http.StatusUnprocessableEntity,
			grpcCode:   codes.FailedPrecondition,
			code:       "batch_rejected",
			message:    "no inventory was deducted",
			lines:      lines,
			refused:    true,
		}
	case errors.As(err, &sfErr):
		return failure{
			httpStatus: http.StatusConflict,
			grpcCode:   codes.FailedPrecondition,
			code:       "insufficient_stock",
			message:    sfErr.Error(),
			shortfalls: sfErr.Shortfalls,
			refused:    true,
		}
	case errors.Is(err, domain.ErrDuplicateRequest):
		return failure{http.StatusConflict, codes.AlreadyExists, "duplicate_request", "duplicate request", nil, nil, true}
	case errors.Is(err, domain.ErrInvalidTransition):
		return failure{http.StatusConflict, codes.FailedPrecondition, "invalid_transition", err.Error(), nil, nil, true}
	case errors.Is(err, domain.ErrStorage):
		return failure{http.StatusInternalServerError, codes.Internal, "storage_failure", "internal error", nil, nil, false}
	case errors.Is(err, domain.ErrInsufficientStock):
		return failure{http.StatusConflict, codes.FailedPrecondition, "insufficient_stock", err.Error(), nil, nil, true}
	case errors.Is(err, domain.ErrInvalidUser):
		return failure{http.StatusBadRequest, codes.InvalidArgument, "invalid_user", "invalid user id", nil, nil, false}
	case errors.Is(err, domain.ErrInvalidStatus):
		return failure{http.StatusBadRequest, codes.InvalidArgument, "invalid_status", err.Error(), nil, nil, false}
	case errors.Is(err, domain.ErrInvalidInput):
		return failure{http.StatusBadRequest, codes.InvalidArgument, "invalid_request", err.Error(), nil, nil, false}
	case errors.Is(err, domain.ErrOrderNotFound):
		return failure{http.StatusNotFound, codes.NotFound, "order_not_found", "order not found", nil, nil, false}
	case errors.Is(err, domain.ErrEntryNotFound):
		return failure{http.StatusNotFound, codes.NotFound, "entry_not_found", "stock entry not found", nil, nil, false}
	case errors.Is(err, domain.ErrMaterialNotFound):
		return failure{http.StatusNotFound, codes.NotFound, "material_not_found", err.Error(), nil, nil, false}
	}
	return failure{http.StatusInternalServerError, codes.Internal, "internal_error", "internal error", nil, nil, false}
}
