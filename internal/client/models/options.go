package models

import (
	"errors"
	"fmt"
)

var ErrUnknownOption = errors.New("unknown option")

// SortOption selects the timeline comparator. Process-wide UI state, not
// persisted.
type SortOption string

const (
	SortDateAscending  SortOption = "date_asc"
	SortTitleAscending SortOption = "title_asc"
	SortCreatedDesc    SortOption = "created_desc"
)

// ParseSortOption maps a user-entered token to a SortOption.
func ParseSortOption(s string) (SortOption, error) {
	switch s {
	case "date":
		return SortDateAscending, nil
	case "title":
		return SortTitleAscending, nil
	case "created":
		return SortCreatedDesc, nil
	default:
		return "", fmt.Errorf("%w: sort %q", ErrUnknownOption, s)
	}
}

// TimeUnit selects the countdown display unit.
type TimeUnit string

const (
	UnitDays    TimeUnit = "days"
	UnitHours   TimeUnit = "hours"
	UnitMinutes TimeUnit = "minutes"
	UnitSeconds TimeUnit = "seconds"
)

// ParseTimeUnit maps a user-entered token to a TimeUnit.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch s {
	case "days", "d":
		return UnitDays, nil
	case "hours", "h":
		return UnitHours, nil
	case "minutes", "m":
		return UnitMinutes, nil
	case "seconds", "s":
		return UnitSeconds, nil
	default:
		return "", fmt.Errorf("%w: unit %q", ErrUnknownOption, s)
	}
}
