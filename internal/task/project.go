package task

import (
	"fmt"
	"sort"
	"strings"
)

// Filter selects which tasks are shown.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter parses a filter name (case-insensitive). Empty means all.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active", "open":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("invalid filter: %s", s)
}

// keep reports whether t passes the filter.
func (f Filter) keep(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// SortOrder selects the display order.
type SortOrder string

const (
	SortCreationDate SortOrder = "creation-date"
	SortPriority     SortOrder = "priority"
	SortStatus       SortOrder = "status"
)

// ParseSortOrder parses a sort order name (case-insensitive).
// Empty means creation date, the default.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "creation-date", "date", "created":
		return SortCreationDate, nil
	case "priority", "prio":
		return SortPriority, nil
	case "status":
		return SortStatus, nil
	}
	return "", fmt.Errorf("invalid sort order: %s", s)
}

// Project returns the tasks that pass filter, ordered by order.
// The sort is stable and runs on a copy; tasks is never reordered.
func Project(tasks []Task, filter Filter, order SortOrder) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.keep(t) {
			out = append(out, t)
		}
	}

	var less func(a, b Task) bool
	switch order {
	case SortPriority:
		less = func(a, b Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case SortStatus:
		less = func(a, b Task) bool { return statusRank(a) < statusRank(b) }
	default:
		less = func(a, b Task) bool { return a.CreatedAt > b.CreatedAt }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func statusRank(t Task) int {
	if t.Completed {
		return 1
	}
	return 0
}
