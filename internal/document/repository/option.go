package repository

// ListPDFsOptions holds parameters for scanning a directory tree.
type ListPDFsOptions struct {
	BaseDir string // absolute, cleaned path
}
