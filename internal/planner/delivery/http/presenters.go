package http

import (
	"time"

	"scheduling-optimizer/internal/planner"
)

// --- Request DTOs ---

type suggestReq struct {
	Text        string  `json:"text"`
	HoursPerDay float64 `json:"hours_per_day" binding:"omitempty,gte=0"`
}

func (r suggestReq) validate() error { return nil }

func (r suggestReq) toInput() planner.SuggestInput {
	return planner.SuggestInput{
		Text:        r.Text,
		HoursPerDay: r.HoursPerDay,
	}
}

// ---

type estimateReq struct {
	Tasks    int     `json:"tasks"     binding:"required,gt=0"`
	AvgHours float64 `json:"avg_hours" binding:"required,gt=0"`
	Capacity float64 `json:"capacity"  binding:"required,gt=0"`
}

func (r estimateReq) validate() error { return nil }

func (r estimateReq) toInput() planner.EstimateInput {
	return planner.EstimateInput{
		Tasks:    r.Tasks,
		AvgHours: r.AvgHours,
		Capacity: r.Capacity,
	}
}

// ---

type exportReq struct {
	PlanID    string `json:"-"`          // populated from URI param
	StartDate string `json:"start_date"` // YYYY-MM-DD, defaults to today

	start time.Time
}

func (r exportReq) validate() error { return nil }

func (r exportReq) toInput() planner.ExportInput {
	return planner.ExportInput{
		PlanID:    r.PlanID,
		StartDate: r.start,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Name    string  `json:"name"`
	Hours   float64 `json:"hours"`
	DueDate *string `json:"due_date"` // YYYY-MM-DD, null when unset
}

func newTaskResp(task planner.Task) taskResp {
	resp := taskResp{
		Name:  task.Name,
		Hours: task.Hours,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(planner.DueDateLayout)
		resp.DueDate = &due
	}
	return resp
}

func newTaskResps(tasks []planner.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, task := range tasks {
		out[i] = newTaskResp(task)
	}
	return out
}

type dayResp struct {
	Label      string     `json:"label"`
	TotalHours float64    `json:"total_hours"`
	Tasks      []taskResp `json:"tasks"`
}

type planResp struct {
	ID          string    `json:"id"`
	HoursPerDay float64   `json:"hours_per_day"`
	TotalHours  float64   `json:"total_hours"`
	Days        []dayResp `json:"days"`
	CreatedAt   time.Time `json:"created_at"`
}

func newPlanResp(plan planner.Plan) planResp {
	days := make([]dayResp, len(plan.Days))
	for i, day := range plan.Days {
		days[i] = dayResp{
			Label:      day.Label,
			TotalHours: day.Hours(),
			Tasks:      newTaskResps(day.Tasks),
		}
	}
	return planResp{
		ID:          plan.ID,
		HoursPerDay: plan.HoursPerDay,
		TotalHours:  plan.TotalHours,
		Days:        days,
		CreatedAt:   plan.CreatedAt,
	}
}

type suggestResp struct {
	Plan    planResp   `json:"plan"`
	Errors  []string   `json:"errors"`
	Backlog []taskResp `json:"backlog"`
}

func (h *handler) newSuggestResp(out planner.SuggestOutput) suggestResp {
	errs := out.Errors
	if errs == nil {
		errs = []string{}
	}
	return suggestResp{
		Plan:    newPlanResp(out.Plan),
		Errors:  errs,
		Backlog: newTaskResps(out.Backlog),
	}
}

type detailResp struct {
	Plan planResp `json:"plan"`
}

func (h *handler) newDetailResp(out planner.DetailOutput) detailResp {
	return detailResp{Plan: newPlanResp(out.Plan)}
}

type estimateResp struct {
	TotalHours    float64 `json:"total_hours"`
	EstimatedDays int     `json:"estimated_days"`
}

func (h *handler) newEstimateResp(out planner.EstimateOutput) estimateResp {
	return estimateResp{
		TotalHours:    out.TotalHours,
		EstimatedDays: out.EstimatedDays,
	}
}

type exportedEventResp struct {
	Label    string `json:"label"`
	Date     string `json:"date"`
	Summary  string `json:"summary"`
	HtmlLink string `json:"html_link,omitempty"`
}

type exportResp struct {
	Events []exportedEventResp `json:"events"`
}

func (h *handler) newExportResp(out planner.ExportOutput) exportResp {
	events := make([]exportedEventResp, len(out.Events))
	for i, event := range out.Events {
		events[i] = exportedEventResp{
			Label:    event.Label,
			Date:     event.Date.Format(planner.DueDateLayout),
			Summary:  event.Summary,
			HtmlLink: event.HtmlLink,
		}
	}
	return exportResp{Events: events}
}
