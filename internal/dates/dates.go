// Package dates is the shared date-time parsing utility for command
// arguments. One fixed input layout, one fixed display layout.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InputLayout is what users type: "2024-12-01 1800".
	InputLayout = "2006-01-02 1504"
	// DisplayLayout is what renderings show: "Dec 1 2024, 6:00pm".
	DisplayLayout = "Jan 2 2006, 3:04pm"
)

// Parse reads a date-time in InputLayout, local time.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(InputLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date-time %q: %w", s, err)
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}
