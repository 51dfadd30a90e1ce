package vectorstore

import (
	"fmt"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// CorruptStoreError reports a persisted store that exists but cannot be used.
// It matches domain.ErrStorage and the underlying cause.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", domain.ErrStorage.Error(), e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() []error { return []error{domain.ErrStorage, e.Err} }
