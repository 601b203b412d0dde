package usecase

import (
	"context"
	"os"

	"scheduling-optimizer/internal/document"
	repo "scheduling-optimizer/internal/document/repository"
)

// List scans a directory tree for PDF files.
func (uc *implUseCase) List(ctx context.Context, input document.ListInput) (document.ListOutput, error) {
	base, err := uc.resolveDir(input.Dir)
	if err != nil {
		return document.ListOutput{}, err
	}

	info, err := os.Stat(base)
	if err != nil {
		return document.ListOutput{}, document.ErrDirNotFound
	}
	if !info.IsDir() {
		return document.ListOutput{}, document.ErrNotADirectory
	}

	files, err := uc.repo.ListPDFs(ctx, repo.ListPDFsOptions{BaseDir: base})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPDFs: %v", err)
		return document.ListOutput{}, err
	}

	return document.ListOutput{
		BaseDir: base,
		Files:   files,
	}, nil
}
