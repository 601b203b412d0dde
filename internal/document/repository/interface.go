package repository

import (
	"context"

	"scheduling-optimizer/internal/document"
)

// Repository is the data access interface for the document domain.
type Repository interface {
	// ListPDFs returns every PDF under the base directory, sorted by
	// relative path.
	ListPDFs(ctx context.Context, opt ListPDFsOptions) ([]document.PDF, error)
	// Close releases any watchers held by the repository.
	Close() error
}
