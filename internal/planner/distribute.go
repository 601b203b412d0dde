package planner

import "fmt"

// Distribute greedily partitions tasks into labeled day buckets of the
// given capacity, first-fit in input order.
//
// A task larger than the capacity still gets placed so every task is
// always scheduled: any in-progress day is closed first, then the
// oversized task occupies a day of its own which closes immediately.
// A non-positive capacity makes every task oversized, yielding one task
// per day. Empty input yields no buckets at all.
func Distribute(tasks []Task, capacity float64) []DayPlan {
	if len(tasks) == 0 {
		return nil
	}

	var (
		scheduled []DayPlan
		current   []Task
		dayIndex  int
		remaining = capacity
	)

	closeDay := func() {
		scheduled = append(scheduled, DayPlan{
			Label: fmt.Sprintf("Day %d", dayIndex+1),
			Tasks: current,
		})
		current = nil
		dayIndex++
		remaining = capacity
	}

	for _, task := range tasks {
		tooLarge := task.Hours > capacity || capacity <= 0

		// The boundary is strict: a task exactly filling the remaining
		// capacity stays in the current day.
		if (task.Hours > remaining || tooLarge) && len(current) > 0 {
			closeDay()
		}

		current = append(current, task)
		remaining -= task.Hours

		if tooLarge {
			closeDay()
		}
	}

	if len(current) > 0 {
		closeDay()
	}

	return scheduled
}
