package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tododay/internal/persist"
	"tododay/internal/session"
	"tododay/internal/store"
	"tododay/internal/task"
)

func TestParseTaskRef_Number(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Num != 5 || ref.IDPrefix != "" {
		t.Errorf("expected Num 5, got %+v", ref)
	}
}

func TestParseTaskRef_NumberWinsOverDigitPrefix(t *testing.T) {
	ref, err := ParseTaskRef([]string{"12345"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Num != 12345 || ref.IDPrefix != "" {
		t.Errorf("expected Num 12345, got %+v", ref)
	}
}

func TestParseTaskRef_IDPrefix(t *testing.T) {
	ref, err := ParseTaskRef([]string{"3f2a-9c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.IDPrefix != "3f2a-9c" || ref.Num != 0 {
		t.Errorf("expected IDPrefix, got %+v", ref)
	}
}

func TestParseTaskRef_NoArgs(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abc"}, "invalid task reference: abc"},
		{[]string{"ab_cd"}, "invalid task reference: ab_cd"},
		{[]string{"-1"}, "invalid task reference: -1"},
		{[]string{"1", "2"}, "invalid task reference: 1 2"},
	}
	for _, tt := range tests {
		_, err := ParseTaskRef(tt.args)
		if err == nil {
			t.Errorf("ParseTaskRef(%q): expected error", tt.args)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("ParseTaskRef(%q) = %q, want %q", tt.args, err.Error(), tt.want)
		}
	}
}

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"123", true},
		{"12a", false},
		{"٣", false},
	}
	for _, tt := range tests {
		if got := isAllDigits(tt.in); got != tt.want {
			t.Errorf("isAllDigits(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// refSession holds three tasks: "bbbb0002" (High, completed) and
// "aaaa0001"/"aaaa0003" (Low, active). Newest first: 3, 2, 1.
func refSession(t *testing.T) *session.Session {
	t.Helper()
	ids := []string{"aaaa0001", "bbbb0002", "aaaa0003"}
	n := 0
	clock := time.UnixMilli(1700000000000)
	st := store.New(persist.NewAdapter(persist.NewMemoryKV(), nil), nil,
		store.WithIDGenerator(func() string { id := ids[n]; n++; return id }),
		store.WithClock(func() time.Time { clock = clock.Add(time.Millisecond); return clock }),
	)
	ctx := context.Background()
	st.Add(ctx, "first", task.Low)
	st.Add(ctx, "second", task.High)
	st.Add(ctx, "third", task.Low)
	st.Toggle(ctx, "bbbb0002")
	return session.New(st, nil, nil)
}

func TestResolveTaskRef_Number(t *testing.T) {
	sess := refSession(t)

	got, err := ResolveTaskRef(sess, TaskRef{Num: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "aaaa0003" {
		t.Errorf("expected newest task, got %s", got.ID)
	}
}

func TestResolveTaskRef_NumberFollowsView(t *testing.T) {
	sess := refSession(t)
	sess.SetFilter(task.FilterActive)
	sess.SetSortOrder(task.SortCreationDate)

	got, err := ResolveTaskRef(sess, TaskRef{Num: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "aaaa0001" {
		t.Errorf("expected second active task, got %s", got.ID)
	}

	sess.SetFilter(task.FilterAll)
	sess.SetSortOrder(task.SortPriority)
	got, err = ResolveTaskRef(sess, TaskRef{Num: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "bbbb0002" {
		t.Errorf("expected high priority task first, got %s", got.ID)
	}
}

func TestResolveTaskRef_Errors(t *testing.T) {
	sess := refSession(t)

	tests := []struct {
		name string
		ref  TaskRef
		want string
	}{
		{"zero", TaskRef{Num: 0}, "task number out of range: 0"},
		{"past end", TaskRef{Num: 4}, "task number out of range: 4"},
		{"unknown id", TaskRef{IDPrefix: "cccc"}, "task not found: cccc"},
		{"ambiguous id", TaskRef{IDPrefix: "aaaa"}, "ambiguous task id: aaaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveTaskRef(sess, tt.ref)
			if err == nil || err.Error() != tt.want {
				t.Errorf("expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestResolveTaskRef_NotFoundIsSentinel(t *testing.T) {
	sess := refSession(t)

	_, err := ResolveTaskRef(sess, TaskRef{IDPrefix: "dddd"})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestResolveTaskRef_UniquePrefix(t *testing.T) {
	sess := refSession(t)

	got, err := ResolveTaskRef(sess, TaskRef{IDPrefix: "aaaa0001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "first" {
		t.Errorf("expected 'first', got %q", got.Text)
	}
}
