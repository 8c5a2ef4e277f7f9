// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tododay/internal/session"
	"tododay/internal/task"
)

const (
	// EmptyMessage is printed when the view has no tasks.
	EmptyMessage = "No tasks here. Add one to get started!"

	// ShortIDLen is how much of an id FormatTask prints with showID.
	ShortIDLen = 8
)

// FormatTask formats one task line.
// Format: "{N:>4}  [x] {P}  {TEXT}\n", with the short id appended in
// parentheses when showID is set.
func FormatTask(w io.Writer, num int, t task.Task, showID bool) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	line := fmt.Sprintf("%4d  [%s] %s  %s", num, mark, priorityLetter(t.Priority), normalizeText(t.Text))
	if showID {
		line += fmt.Sprintf("  (%s)", shortID(t.ID))
	}
	fmt.Fprintln(w, line)
}

// FormatView prints the projected tasks followed by the active-count footer.
func FormatView(w io.Writer, v session.View, showID bool) {
	if len(v.Tasks) == 0 {
		fmt.Fprintln(w, EmptyMessage)
	}
	for i, t := range v.Tasks {
		FormatTask(w, i+1, t, showID)
	}
	FormatFooter(w, v.ActiveCount)
}

// FormatFooter prints "N item(s) left".
func FormatFooter(w io.Writer, active int) {
	noun := "items"
	if active == 1 {
		noun = "item"
	}
	fmt.Fprintf(w, "%d %s left\n", active, noun)
}

func priorityLetter(p task.Priority) string {
	switch p {
	case task.High:
		return "H"
	case task.Medium:
		return "M"
	case task.Low:
		return "L"
	}
	return "?"
}

func shortID(id string) string {
	if len(id) > ShortIDLen {
		return id[:ShortIDLen]
	}
	return id
}

// normalizeText replaces newlines with spaces so each task stays on one line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
