package planner

import (
	"fmt"
	"strings"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays holds the canonical week, Monday first.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) String() string {
	return string(d)
}

// Index returns the position of the day in the week (Monday = 0), or -1.
func (d Weekday) Index() int {
	for i, wd := range Weekdays {
		if wd == d {
			return i
		}
	}
	return -1
}

func (d Weekday) IsValid() bool {
	return d.Index() >= 0
}

// ParseWeekday accepts the canonical names case-insensitively ("monday", "MONDAY").
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, wd := range Weekdays {
		if strings.EqualFold(string(wd), s) {
			return wd, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
}
