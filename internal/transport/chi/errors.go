package chi

import (
	"errors"
	"net/http"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// ErrorCode is the machine-readable error code in API error bodies.
type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeUnauthorized     ErrorCode = "unauthorized"
	CodeOrderNotFound    ErrorCode = "order_not_found"
	CodeRateLimited      ErrorCode = "rate_limited"
	CodeProviderError    ErrorCode = "embedding_provider_error"
	CodeStorageError     ErrorCode = "storage_error"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// defaultErrorHandlers is checked in order; the first match wins.
func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeOrderNotFound),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeProviderError),
		sentinelHandler(domain.ErrProviderUnavailable, http.StatusBadGateway, CodeProviderError),
		sentinelHandler(domain.ErrEmbeddingMisaligned, http.StatusBadGateway, CodeProviderError),
		sentinelHandler(domain.ErrStorage, http.StatusInternalServerError, CodeStorageError),
	}
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
// Input errors keep their full text: it names the missing field and holds no internals.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidInput) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrRateLimited,
		domain.ErrEmbeddingProviderError,
		domain.ErrProviderUnavailable,
		domain.ErrEmbeddingMisaligned,
		domain.ErrVectorDimMismatch,
		domain.ErrStorage,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}
