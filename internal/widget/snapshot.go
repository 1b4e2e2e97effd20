// Package widget renders the Mond clock face: weekday name, long date, and
// 12-hour time, all derived from a single captured instant.
package widget

import (
	"fmt"
	"time"
)

// Slot names the renderer writes to.
const (
	SlotDay  = "day"
	SlotDate = "date"
	SlotTime = "time"
)

// Sunday-first, matching time.Weekday's numbering.
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Snapshot is one rendered clock state. All three fields come from the same
// instant; a Snapshot is recomputed on every render and never stored.
type Snapshot struct {
	Weekday string
	Date    string
	Time    string
}

// At derives a Snapshot from one instant.
func At(now time.Time) Snapshot {
	return Snapshot{
		Weekday: weekdayNames[int(now.Weekday())],
		Date:    fmt.Sprintf("%s %d, %d", monthNames[int(now.Month())-1], now.Day(), now.Year()),
		Time:    timeLabel(now.Hour(), now.Minute()),
	}
}

// timeLabel formats the 12-hour time line. Hour 0 renders as 12 AM and
// hour 12 as 12 PM; the minute is always two digits.
func timeLabel(hour, minute int) string {
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("- %d:%02d %s -", h, minute, meridiem)
}
