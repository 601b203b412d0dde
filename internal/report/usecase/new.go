package usecase

import (
	"scheduling-optimizer/pkg/log"
)

// implUseCase is the private implementation of report.UseCase.
type implUseCase struct {
	l log.Logger
}

// New creates a new report UseCase implementation.
func New(l log.Logger) *implUseCase {
	return &implUseCase{
		l: l,
	}
}
