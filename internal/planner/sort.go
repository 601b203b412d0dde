package planner

import "sort"

// ByDueDate is the comparator used to order tasks before distribution:
// ascending due date, with tasks lacking a due date sorted after all
// dated ones. Exposed so callers can feed it to their own sort stage.
func ByDueDate(tasks []Task) func(i, j int) bool {
	return func(i, j int) bool {
		di, dj := tasks[i].DueDate, tasks[j].DueDate
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	}
}

// SortByDueDate stable-sorts tasks in place with ByDueDate, preserving
// input order among equal due dates and among undated tasks.
func SortByDueDate(tasks []Task) {
	sort.SliceStable(tasks, ByDueDate(tasks))
}
