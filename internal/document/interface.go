package document

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// List scans a directory tree for PDF files.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Open resolves a listed PDF for download, refusing paths that
	// escape the base directory.
	Open(ctx context.Context, input OpenInput) (OpenOutput, error)
}
