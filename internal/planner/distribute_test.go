package planner_test

import (
	"testing"

	"scheduling-optimizer/internal/planner"
)

func tasksFromHours(hours ...float64) []planner.Task {
	tasks := make([]planner.Task, len(hours))
	for i, h := range hours {
		tasks[i] = planner.Task{Name: "t", Hours: h}
	}
	return tasks
}

func bucketHours(d planner.DayPlan) []float64 {
	out := make([]float64, len(d.Tasks))
	for i, t := range d.Tasks {
		out[i] = t.Hours
	}
	return out
}

func assertBuckets(t *testing.T, got []planner.DayPlan, want [][]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d days, got %d: %+v", len(want), len(got), got)
	}
	for i, day := range got {
		hours := bucketHours(day)
		if len(hours) != len(want[i]) {
			t.Fatalf("day %d: expected %v, got %v", i+1, want[i], hours)
		}
		for j := range hours {
			if hours[j] != want[i][j] {
				t.Errorf("day %d task %d: expected %v, got %v", i+1, j, want[i][j], hours[j])
			}
		}
	}
}

func TestDistribute(t *testing.T) {
	t.Run("empty input yields no buckets", func(t *testing.T) {
		if got := planner.Distribute(nil, 6); got != nil {
			t.Errorf("expected nil schedule, got %+v", got)
		}
		if got := planner.Distribute([]planner.Task{}, 6); got != nil {
			t.Errorf("expected nil schedule, got %+v", got)
		}
	})

	t.Run("task exactly filling remaining capacity stays in the day", func(t *testing.T) {
		got := planner.Distribute(tasksFromHours(2, 4, 3, 1, 2), 6)
		assertBuckets(t, got, [][]float64{{2, 4}, {3, 1, 2}})
	})

	t.Run("labels are contiguous and 1-based", func(t *testing.T) {
		got := planner.Distribute(tasksFromHours(5, 5, 5), 6)
		want := []string{"Day 1", "Day 2", "Day 3"}
		if len(got) != len(want) {
			t.Fatalf("expected %d days, got %d", len(want), len(got))
		}
		for i, day := range got {
			if day.Label != want[i] {
				t.Errorf("expected label %q, got %q", want[i], day.Label)
			}
		}
	})

	t.Run("oversized task occupies its own day and closes immediately", func(t *testing.T) {
		got := planner.Distribute(tasksFromHours(10, 2), 6)
		assertBuckets(t, got, [][]float64{{10}, {2}})
		if got[1].Hours() != 2 {
			t.Errorf("day 2 should start fresh, got %v hours", got[1].Hours())
		}
	})

	t.Run("oversized task closes a non-empty day first", func(t *testing.T) {
		got := planner.Distribute(tasksFromHours(3, 10, 1), 6)
		assertBuckets(t, got, [][]float64{{3}, {10}, {1}})
	})

	t.Run("single oversized task", func(t *testing.T) {
		got := planner.Distribute(tasksFromHours(10), 6)
		assertBuckets(t, got, [][]float64{{10}})
		if got[0].Label != "Day 1" {
			t.Errorf("expected Day 1, got %q", got[0].Label)
		}
	})

	t.Run("non-positive capacity forces one task per day", func(t *testing.T) {
		for _, capacity := range []float64{0, -1} {
			got := planner.Distribute(tasksFromHours(1, 0, 2), capacity)
			assertBuckets(t, got, [][]float64{{1}, {0}, {2}})
		}
	})

	t.Run("no task dropped duplicated or reordered", func(t *testing.T) {
		tasks := []planner.Task{
			{Name: "a", Hours: 2},
			{Name: "b", Hours: 4},
			{Name: "c", Hours: 9},
			{Name: "d", Hours: 1},
			{Name: "e", Hours: 5},
		}
		got := planner.Distribute(tasks, 6)

		var flat []string
		total := 0
		for _, day := range got {
			total += len(day.Tasks)
			for _, task := range day.Tasks {
				flat = append(flat, task.Name)
			}
		}
		if total != len(tasks) {
			t.Fatalf("expected %d tasks across buckets, got %d", len(tasks), total)
		}
		for i, task := range tasks {
			if flat[i] != task.Name {
				t.Errorf("position %d: expected %q, got %q", i, task.Name, flat[i])
			}
		}
	})

	t.Run("day totals never exceed capacity for fitting tasks", func(t *testing.T) {
		got := planner.Distribute(tasksFromHours(2, 2, 2, 2, 2, 2, 2), 6)
		for _, day := range got {
			if day.Hours() > 6 {
				t.Errorf("%s exceeds capacity: %v", day.Label, day.Hours())
			}
		}
	})
}
