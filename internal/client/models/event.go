// Package models defines countdown event types and their fields.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind discriminates the two event variants. Holiday events are owned by the
// holiday cache and wholesale-replaced on refresh; custom events are owned by
// the custom event store.
type Kind string

const (
	KindHoliday Kind = "holiday"
	KindCustom  Kind = "custom"
)

// HolidayCategory classifies a holiday event.
type HolidayCategory string

const (
	CategoryPublic      HolidayCategory = "public"      // 法定假日
	CategoryTraditional HolidayCategory = "traditional" // 传统节日
	CategoryMemorial    HolidayCategory = "memorial"    // 纪念日
)

var ErrUnparseableDate = errors.New("unparseable date")

// Event is the common shape shared by both variants. The holiday-only fields
// are populated only when Kind is KindHoliday.
//
// Date is the countdown target in "2006-01-02T15:04:05" form (time-of-day
// defaults to midnight); CreatedAt is milliseconds since epoch. Records
// persisted by old versions may lack createdAt — unmarshalling such a record
// leaves CreatedAt at 0, which is the documented legacy default.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Kind        Kind   `json:"type"`
	Color       string `json:"color"`
	CreatedAt   int64  `json:"createdAt"`

	Category   HolidayCategory `json:"holidayType,omitempty"`
	DaysOff    int             `json:"daysOff,omitempty"`
	Traditions []string        `json:"traditions,omitempty"`
	Greeting   string          `json:"greetings,omitempty"`
}

// targetLayouts are accepted forms of Event.Date, tried in order.
var targetLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Target parses the countdown target instant in the local timezone.
func (e Event) Target() (time.Time, error) {
	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, e.Date, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, e.Date)
}

// ComposeTarget combines a calendar date ("2006-01-02") with an optional
// time-of-day ("15:04", midnight when empty) into an Event.Date value. The
// result is validated by parsing; calendar correctness beyond that is not
// checked.
func ComposeTarget(date, timeOfDay string) (string, error) {
	if timeOfDay == "" {
		timeOfDay = "00:00"
	}
	s := fmt.Sprintf("%s:00", strings.Join([]string{date, timeOfDay}, "T"))
	if _, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableDate, s)
	}
	return s, nil
}
