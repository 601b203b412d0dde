package usecase

import (
	"path/filepath"

	"scheduling-optimizer/internal/document"
	"scheduling-optimizer/internal/document/repository"
	"scheduling-optimizer/pkg/log"
)

// implUseCase is the private implementation of document.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	defaultDir string
}

// New creates a new document UseCase implementation.
func New(repo repository.Repository, l log.Logger, defaultDir string) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		defaultDir: defaultDir,
	}
}

// resolveDir turns a caller-supplied directory into an absolute,
// cleaned base path, falling back to the configured default.
func (uc *implUseCase) resolveDir(dir string) (string, error) {
	if dir == "" {
		dir = uc.defaultDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", document.ErrDirNotFound
	}
	return filepath.Clean(abs), nil
}
