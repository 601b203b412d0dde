package report

import "errors"

var (
	ErrNoRows = errors.New("at least one row is required to generate the report")
)
