package planner

import "time"

// --- Planner Domain Model ---

// Task is a unit of work with an effort estimate and optional deadline.
type Task struct {
	Name    string
	Hours   float64
	DueDate *time.Time // nil means no deadline
}

// ParseResult holds the tasks recovered from raw text plus one
// human-readable error per rejected line. Tasks keep source line order.
type ParseResult struct {
	Tasks  []Task
	Errors []string
}

// DayPlan is one labeled day bucket of the suggested schedule.
type DayPlan struct {
	Label string
	Tasks []Task
}

// Hours returns the total effort assigned to the day.
func (d DayPlan) Hours() float64 {
	var total float64
	for _, t := range d.Tasks {
		total += t.Hours
	}
	return total
}

// Plan is a stored scheduling suggestion.
type Plan struct {
	ID          string
	HoursPerDay float64
	TotalHours  float64
	Days        []DayPlan
	CreatedAt   time.Time
}

// --- UseCase Inputs ---

type SuggestInput struct {
	Text        string  // raw task lines; empty falls back to the configured seed text
	HoursPerDay float64 // zero falls back to the configured default capacity
}

type EstimateInput struct {
	Tasks    int
	AvgHours float64
	Capacity float64
}

type ExportInput struct {
	PlanID    string
	StartDate time.Time
}

// --- UseCase Outputs ---

type SuggestOutput struct {
	Plan    Plan
	Errors  []string // per-line parse diagnostics, never fatal
	Backlog []Task   // parsed tasks sorted by due date, unset dates last
}

type DetailOutput struct {
	Plan Plan
}

type EstimateOutput struct {
	TotalHours    float64
	EstimatedDays int
}

// ExportedEvent describes one calendar event created for a day bucket.
type ExportedEvent struct {
	Label    string
	Date     time.Time
	Summary  string
	HtmlLink string
}

type ExportOutput struct {
	Events []ExportedEvent
}
