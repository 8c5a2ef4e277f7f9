// Package task defines the task model and the filtered, sorted view of a
// task collection.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// Priority is the importance of a task.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Rank returns the sort rank of p: High=1, Medium=2, Low=3.
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case High:
		return 1
	case Medium:
		return 2
	case Low:
		return 3
	default:
		return 4
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p == High || p == Medium || p == Low
}

// ParsePriority parses a priority name. Accepts high/medium/low and the
// short forms h/m/l, case-insensitive.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return High, nil
	case "medium", "med", "m":
		return Medium, nil
	case "low", "l":
		return Low, nil
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}

// Task is a single to-do entry.
type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	CreatedAt int64    `json:"createdAt"` // ms since epoch, set once
}

// Validate checks that a stored record has the shape of a task.
func (t Task) Validate() error {
	if t.ID == "" {
		return errors.New("missing id")
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("task %s: empty text", t.ID)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %s: invalid priority %q", t.ID, t.Priority)
	}
	if t.CreatedAt <= 0 {
		return fmt.Errorf("task %s: invalid createdAt %d", t.ID, t.CreatedAt)
	}
	return nil
}

// ActiveCount returns the number of tasks not yet completed.
func ActiveCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
