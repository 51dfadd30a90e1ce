package supportdesk

import (
	"errors"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrNotFound               = domain.ErrNotFound
	ErrVectorDimMismatch      = domain.ErrVectorDimMismatch
	ErrRateLimited            = domain.ErrRateLimited
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
	ErrProviderUnavailable    = domain.ErrProviderUnavailable
	ErrEmbeddingMisaligned    = domain.ErrEmbeddingMisaligned
	ErrStorage                = domain.ErrStorage
)

// ErrClosed is returned by every Client method after Close.
var ErrClosed = errors.New("supportdesk: client closed")
