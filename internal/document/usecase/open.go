package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"scheduling-optimizer/internal/document"
)

// Open resolves a PDF for download. The relative path must stay inside
// the base directory and point at an existing regular PDF file.
func (uc *implUseCase) Open(ctx context.Context, input document.OpenInput) (document.OpenOutput, error) {
	base, err := uc.resolveDir(input.Dir)
	if err != nil {
		return document.OpenOutput{}, err
	}

	abs := filepath.Clean(filepath.Join(base, filepath.FromSlash(input.Path)))
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return document.OpenOutput{}, document.ErrPathEscapes
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return document.OpenOutput{}, document.ErrFileNotFound
	}
	if !strings.EqualFold(filepath.Ext(abs), ".pdf") {
		return document.OpenOutput{}, document.ErrFileNotFound
	}

	return document.OpenOutput{
		AbsPath:   abs,
		Name:      filepath.Base(abs),
		SizeBytes: info.Size(),
	}, nil
}
