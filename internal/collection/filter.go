package collection

import (
	"strings"
	"time"

	"github.com/ryannerby/jobnest/internal/job"
)

const dateFormat = "2006-01-02"

type DateRange string

const (
	RangeAll     DateRange = "all"
	RangeToday   DateRange = "today"
	RangeWeek    DateRange = "week"
	RangeMonth   DateRange = "month"
	RangeQuarter DateRange = "quarter"
	RangeYear    DateRange = "year"
	RangeCustom  DateRange = "custom"
)

// Presence is the tri-state filter for optional fields.
type Presence string

const (
	PresenceAll Presence = "all"
	PresenceYes Presence = "yes"
	PresenceNo  Presence = "no"
)

// Filters is the set of predicates applied to the collection. Zero values
// and the "all" sentinels are pass-through; a record passes only when every
// active predicate matches.
type Filters struct {
	Search   string
	Status   string
	Company  string
	Location string

	DateRange DateRange
	StartDate string // inclusive lower bound for RangeCustom, ISO date
	EndDate   string // inclusive upper bound for RangeCustom, ISO date

	HasDeadline    Presence
	HasNotes       Presence
	HasCoverLetter Presence
}

// Apply filters the collection in list order, returning the records that
// pass every active predicate.
func (f Filters) Apply(jobs []job.Job) []job.Job {
	return f.applyAt(jobs, time.Now())
}

func (f Filters) applyAt(jobs []job.Job, now time.Time) []job.Job {
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.matches(j, now) {
			out = append(out, j)
		}
	}
	return out
}

func (f Filters) matches(j job.Job, now time.Time) bool {
	if f.Search != "" && !matchesSearch(j, f.Search) {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(j.Status) != f.Status {
		return false
	}
	if f.Company != "" && j.Company != f.Company {
		return false
	}
	if f.Location != "" && j.Location != f.Location {
		return false
	}
	if !f.matchesDateRange(j, now) {
		return false
	}
	if !matchesPresence(f.HasDeadline, j.Deadline) {
		return false
	}
	if !matchesPresence(f.HasNotes, j.Notes) {
		return false
	}
	if !matchesPresence(f.HasCoverLetter, j.CoverLetter) {
		return false
	}
	return true
}

func matchesSearch(j job.Job, term string) bool {
	needle := strings.ToLower(term)
	for _, field := range []string{j.Title, j.Company, j.Notes, j.Location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesPresence(p Presence, value string) bool {
	switch p {
	case PresenceYes:
		return value != ""
	case PresenceNo:
		return value == ""
	default:
		return true
	}
}

func (f Filters) matchesDateRange(j job.Job, now time.Time) bool {
	if f.DateRange == "" || f.DateRange == RangeAll {
		return true
	}

	ref := referenceDate(j)

	switch f.DateRange {
	case RangeToday:
		return sameDay(ref, now)
	case RangeWeek:
		return withinDays(ref, now, 7)
	case RangeMonth:
		return withinDays(ref, now, 30)
	case RangeQuarter:
		return withinDays(ref, now, 90)
	case RangeYear:
		return withinDays(ref, now, 365)
	case RangeCustom:
		if f.StartDate != "" {
			if start, err := time.Parse(dateFormat, f.StartDate); err == nil && ref.Before(start) {
				return false
			}
		}
		if f.EndDate != "" {
			if end, err := time.Parse(dateFormat, f.EndDate); err == nil && ref.After(end) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// referenceDate is the record's application date, falling back to the
// server-assigned creation time.
func referenceDate(j job.Job) time.Time {
	if j.ApplicationDate != "" {
		if d, err := time.Parse(dateFormat, j.ApplicationDate); err == nil {
			return d
		}
	}
	return j.CreatedAt
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// withinDays buckets on the absolute day difference, rounded up, so
// future-dated applications also fall inside the window.
func withinDays(a, b time.Time, days int) bool {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}
	d := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		d++
	}
	return d <= days
}
