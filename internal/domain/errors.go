package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals a missing or malformed query or source record field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound signals a missing resource (e.g. an unknown order id).
	// Retrieval never returns it: no relevant documents is an empty result.
	ErrNotFound = errors.New("not found")
	// ErrVectorDimMismatch signals vectors of different dimensionality.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")

	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrRateLimited signals a provider rate limit hit. Transient.
	ErrRateLimited = errors.New("rate limited")
	// ErrProviderUnavailable signals a provider outage or transport failure. Transient.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")
	// ErrEmbeddingMisaligned signals a batch response that does not line up with its input.
	ErrEmbeddingMisaligned = errors.New("embedding response misaligned")

	// ErrStorage signals an unreadable or malformed persisted store.
	ErrStorage = errors.New("vector store error")
)

// IsTransient reports whether err is worth retrying against the provider.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrProviderUnavailable)
}

// MisalignedError describes how a batch embedding response diverged from its input.
type MisalignedError struct {
	Want   int
	Got    int
	Detail string
}

func (e *MisalignedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (want %d, got %d)", ErrEmbeddingMisaligned.Error(), e.Detail, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: want %d vectors, got %d", ErrEmbeddingMisaligned.Error(), e.Want, e.Got)
}

func (e *MisalignedError) Unwrap() error { return ErrEmbeddingMisaligned }

// NewMisaligned creates a misalignment error.
func NewMisaligned(want, got int, detail string) error {
	return &MisalignedError{Want: want, Got: got, Detail: detail}
}
