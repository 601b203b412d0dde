package planner

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DueDateLayout is the only accepted due-date format.
const DueDateLayout = "2006-01-02"

// defaultHours is assumed when a line omits the hours field.
const defaultHours = 1.0

// ParseTasks parses newline-separated tasks.
//
// Each line follows "name | hours | YYYY-MM-DD", with hours and due date
// optional. Blank lines are skipped. A line that fails validation is
// skipped whole and reported as a single error naming its 1-based line
// number; parsing always continues with the next line.
func ParseTasks(raw string) ParseResult {
	var result ParseResult

	for i, line := range strings.Split(raw, "\n") {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "|")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}

		name := parts[0]
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Task name is required.", lineNo))
			continue
		}

		hours := defaultHours
		if len(parts) > 1 && parts[1] != "" {
			parsed, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Line %d: Hours must be a number (got '%s').", lineNo, parts[1]))
				continue
			}
			hours = parsed
		}

		var due *time.Time
		if len(parts) > 2 && parts[2] != "" {
			parsed, err := time.Parse(DueDateLayout, parts[2])
			if err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Line %d: Due date must be YYYY-MM-DD (got '%s').", lineNo, parts[2]))
				continue
			}
			due = &parsed
		}

		result.Tasks = append(result.Tasks, Task{Name: name, Hours: hours, DueDate: due})
	}

	return result
}
