// Package analytics turns raw bowel, symptom and medication records into
// daily summaries, period statistics, trends and a daily health score.
//
// Every function is a pure transformation over its inputs. Calendar day
// boundaries come from the Engine's location, never from the process locale.
package analytics

import (
	"time"

	"github.com/vcscsvcscs/guttracker/pkg/model"
)

// Engine computes analytics in a fixed calendar location.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	loc *time.Location
}

// NewEngine creates an engine whose day boundaries follow loc.
// A nil location means UTC.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

// Location returns the calendar location of the engine
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Records is one user's raw input for a window
type Records struct {
	Bowel             []model.BowelRecord
	Symptoms          []model.SymptomRecord
	MedicationLogs    []model.MedicationLog
	ActiveMedications int
}

// civilDay identifies a calendar day independent of time of day
type civilDay struct {
	year  int
	month time.Month
	day   int
}

func (e *Engine) dayOf(t time.Time) civilDay {
	y, m, d := t.In(e.loc).Date()
	return civilDay{year: y, month: m, day: d}
}

// start returns the first instant of the day in the engine location
func (e *Engine) start(d civilDay) time.Time {
	return StartOfDate(d.year, d.month, d.day, e.loc)
}

// StartOfDate returns the first instant of the calendar date y-m-d in loc.
// Days out of range roll over as in time.Date. On dates where a daylight
// saving change skips midnight, the day starts at the transition.
func StartOfDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	year, month, day = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	onDate := func(t time.Time) bool {
		y, m, d := t.Date()
		return y == year && m == month && d == day
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if onDate(t) {
		return t
	}

	// midnight fell into the gap and resolved to the previous evening
	if _, end := t.ZoneBounds(); !end.IsZero() && onDate(end) {
		return end
	}
	for i := 0; i < 24 && !onDate(t); i++ {
		t = t.Add(time.Hour)
	}
	return t
}

// next steps one calendar day forward; Date normalizes month and year overflow
func (d civilDay) next() civilDay {
	t := time.Date(d.year, d.month, d.day+1, 0, 0, 0, 0, time.UTC)
	y, m, dd := t.Date()
	return civilDay{year: y, month: m, day: dd}
}

func (d civilDay) before(o civilDay) bool {
	return d.ordinal() < o.ordinal()
}

// ordinal counts days since the Unix epoch. Computed in UTC so DST never
// shortens or lengthens a day.
func (d civilDay) ordinal() int {
	return int(time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// StartOfDay returns the first instant of the calendar day containing t
func (e *Engine) StartOfDay(t time.Time) time.Time {
	return e.start(e.dayOf(t))
}

// AddDays shifts the calendar day of t by n days and returns its first instant
func (e *Engine) AddDays(t time.Time, n int) time.Time {
	d := e.dayOf(t)
	return StartOfDate(d.year, d.month, d.day+n, e.loc)
}

// DaysBetween returns the number of calendar days from start to end.
// It is negative when end falls on an earlier day.
func (e *Engine) DaysBetween(start, end time.Time) int {
	return e.dayOf(end).ordinal() - e.dayOf(start).ordinal()
}

// SameDay reports whether a and b fall on the same calendar day
func (e *Engine) SameDay(a, b time.Time) bool {
	return e.dayOf(a) == e.dayOf(b)
}
