package planner

import "errors"

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrInvalidCapacity     = errors.New("hours per day must be positive")
	ErrCapacityTooLarge    = errors.New("hours per day exceeds the daily maximum")
	ErrInvalidEstimate     = errors.New("estimate requires a positive task count, average hours, and capacity")
	ErrCalendarUnavailable = errors.New("calendar export is not configured")
)
