// Package calendar computes the time windows behind the day, week and month views.
package calendar

import (
	"strings"
	"time"
)

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView maps unknown or empty input to the month view
func ParseView(s string) View {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewDay:
		return ViewDay
	case ViewWeek:
		return ViewWeek
	default:
		return ViewMonth
	}
}

// Window is an inclusive [From, To] range
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay is 23:59:59.999999, microsecond precision matches the databases
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, t.Location())
}

func Day(t time.Time) Window {
	return Window{From: startOfDay(t), To: endOfDay(t)}
}

// Week runs Monday 00:00 through Sunday end of day
func Week(t time.Time) Window {
	offset := (int(t.Weekday()) + 6) % 7
	monday := startOfDay(t).AddDate(0, 0, -offset)
	return Window{From: monday, To: endOfDay(monday.AddDate(0, 0, 6))}
}

func Month(t time.Time) Window {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return Window{From: first, To: endOfDay(last)}
}

func ForView(v View, t time.Time) Window {
	switch v {
	case ViewDay:
		return Day(t)
	case ViewWeek:
		return Week(t)
	default:
		return Month(t)
	}
}

// Days lists the start of every day in w, used to lay out the grid views
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := startOfDay(w.From); !d.After(w.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
