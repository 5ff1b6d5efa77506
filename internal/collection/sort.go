package collection

import (
	"sort"
	"strings"
	"time"

	"github.com/ryannerby/jobnest/internal/job"
)

type SortKey string

const (
	SortByID              SortKey = "id"
	SortByTitle           SortKey = "title"
	SortByCompany         SortKey = "company"
	SortByStatus          SortKey = "status"
	SortByApplicationDate SortKey = "application_date"
	SortByDeadline        SortKey = "deadline"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Sort returns a sorted copy. String keys compare case-insensitively. Date
// keys treat absent or unparseable values as the zero time, so unset dates
// always carry the earliest key regardless of direction. The sort is stable:
// equal keys preserve list order.
func Sort(jobs []job.Job, key SortKey, order Order) []job.Job {
	out := make([]job.Job, len(jobs))
	copy(out, jobs)

	less := lessFunc(key)
	sort.SliceStable(out, func(i, k int) bool {
		if order == OrderDesc {
			return less(out[k], out[i])
		}
		return less(out[i], out[k])
	})
	return out
}

func lessFunc(key SortKey) func(a, b job.Job) bool {
	switch key {
	case SortByTitle:
		return func(a, b job.Job) bool { return lowerLess(a.Title, b.Title) }
	case SortByCompany:
		return func(a, b job.Job) bool { return lowerLess(a.Company, b.Company) }
	case SortByStatus:
		return func(a, b job.Job) bool { return a.Status < b.Status }
	case SortByApplicationDate:
		return func(a, b job.Job) bool {
			return sortDate(a.ApplicationDate).Before(sortDate(b.ApplicationDate))
		}
	case SortByDeadline:
		return func(a, b job.Job) bool {
			return sortDate(a.Deadline).Before(sortDate(b.Deadline))
		}
	default:
		return func(a, b job.Job) bool { return a.ID < b.ID }
	}
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// sortDate parses opportunistically; deadlines are free text and fall back
// to the zero time when they don't hold a date.
func sortDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if d, err := time.Parse(dateFormat, s); err == nil {
		return d
	}
	return time.Time{}
}
