package report

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate computes derived columns and headline KPIs for the rows.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	// Seed returns the sample rows a client can prefill its editor with.
	Seed(ctx context.Context) (SeedOutput, error)
}
