package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"tododay/internal/session"
	"tododay/internal/task"
)

// MinIDPrefix is the shortest id prefix accepted as a task reference.
const MinIDPrefix = 4

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num      int    // 1-based position in the view; 0 if IDPrefix is set
	IDPrefix string // leading characters of a task id
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrTaskNotFound indicates an id prefix matched no task.
var ErrTaskNotFound = errors.New("task not found")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
//  1. No args → ErrTaskRefRequired
//  2. All digits → position in the current view
//  3. At least MinIDPrefix id characters (letters, digits, '-') → id prefix
//  4. Anything else, or more than one arg → invalid task reference
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", args[0]+" "+args[1])
	}

	arg := args[0]
	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	if len(arg) >= MinIDPrefix && isIDChars(arg) {
		return TaskRef{IDPrefix: arg}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// ResolveTaskRef finds the task ref points to. Numbers index the session's
// current view; id prefixes must match exactly one task.
func ResolveTaskRef(sess *session.Session, ref TaskRef) (task.Task, error) {
	if ref.IDPrefix != "" {
		t, matches := sess.Store().Resolve(ref.IDPrefix)
		switch matches {
		case 0:
			return task.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref.IDPrefix)
		case 1:
			return t, nil
		default:
			return task.Task{}, fmt.Errorf("ambiguous task id: %s", ref.IDPrefix)
		}
	}

	tasks := sess.View().Tasks
	if ref.Num < 1 || ref.Num > len(tasks) {
		return task.Task{}, fmt.Errorf("task number out of range: %d", ref.Num)
	}
	return tasks[ref.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isIDChars returns true if s looks like (part of) a uuid.
func isIDChars(s string) bool {
	for _, r := range s {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-') {
			return false
		}
	}
	return true
}
