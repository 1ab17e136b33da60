// Package format renders timestamps using the display_date and
// display_time settings.
package format

import (
	"strings"
	"time"
)

// Layout holds the resolved Go layouts for one pair of settings.
type Layout struct {
	date      string
	dateShort string
	clock     string
	clockFull string
}

// New resolves the display_date and display_time settings. Empty values
// take the defaults "Jan 02" and 24h.
func New(displayDate, displayTime string) Layout {
	return Layout{
		date:      dateLayout(displayDate),
		dateShort: dateLayoutShort(displayDate),
		clock:     timeLayout(displayTime),
		clockFull: timeLayoutFull(displayTime),
	}
}

// FromConfig reads the settings out of a config map.
func FromConfig(cfg map[string]string) Layout {
	return New(cfg["display_date"], cfg["display_time"])
}

// DateTime formats a time with both date and time.
// Example output: "23/01/2024 15:04" or "01/23/2024 3:04 PM"
func (l Layout) DateTime(t time.Time) string {
	return l.Date(t) + " " + l.Time(t)
}

// DateTimeShort formats a time with short date and time (no year).
// Example output: "23/01 15:04" or "01/23 3:04 PM"
func (l Layout) DateTimeShort(t time.Time) string {
	return l.DateShort(t) + " " + l.Time(t)
}

func (l Layout) Date(t time.Time) string {
	return t.Format(l.date)
}

func (l Layout) DateShort(t time.Time) string {
	return t.Format(l.dateShort)
}

func (l Layout) Time(t time.Time) string {
	return t.Format(l.clock)
}

// TimeFull formats time with seconds.
func (l Layout) TimeFull(t time.Time) string {
	return t.Format(l.clockFull)
}

// Full formats date and time with seconds.
func (l Layout) Full(t time.Time) string {
	return l.Date(t) + " " + l.TimeFull(t)
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// A Go layout such as "Jan 02".
		return displayDate
	}
}

func dateLayoutShort(displayDate string) string {
	switch displayDate {
	case "":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	}

	short := displayDate
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return "Jan 02"
	}
	return short
}

func timeLayout(displayTime string) string {
	if displayTime == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}

func timeLayoutFull(displayTime string) string {
	if displayTime == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}
