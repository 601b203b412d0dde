package planner

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Suggest parses raw task text, sorts by due date, and distributes
	// the tasks across days of HoursPerDay capacity.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
	// Detail returns a previously suggested plan by ID.
	Detail(ctx context.Context, id string) (DetailOutput, error)
	// Estimate is the what-if calculator: total effort and estimated days.
	Estimate(ctx context.Context, input EstimateInput) (EstimateOutput, error)
	// Export creates one calendar event per day bucket of a stored plan.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
