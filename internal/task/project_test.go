package task

import (
	"testing"
)

func texts(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProject_CreationDateNewestFirst(t *testing.T) {
	// Store order is newest first, but the projection must not rely on it.
	tasks := []Task{
		{ID: "1", Text: "Buy milk", Priority: Medium, CreatedAt: 1000},
		{ID: "2", Text: "Walk dog", Priority: High, CreatedAt: 2000},
	}

	got := texts(Project(tasks, FilterAll, SortCreationDate))
	want := []string{"Walk dog", "Buy milk"}
	if !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProject_PriorityHighFirst(t *testing.T) {
	tasks := []Task{
		{ID: "1", Text: "high", Priority: High, CreatedAt: 1},
		{ID: "2", Text: "low", Priority: Low, CreatedAt: 2},
		{ID: "3", Text: "medium", Priority: Medium, CreatedAt: 3},
	}

	got := texts(Project(tasks, FilterAll, SortPriority))
	want := []string{"high", "medium", "low"}
	if !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProject_StatusIsStable(t *testing.T) {
	tasks := []Task{
		{ID: "1", Text: "done-a", Completed: true, Priority: Low, CreatedAt: 1},
		{ID: "2", Text: "pending", Priority: Low, CreatedAt: 2},
		{ID: "3", Text: "done-b", Completed: true, Priority: Low, CreatedAt: 3},
	}

	got := texts(Project(tasks, FilterAll, SortStatus))
	want := []string{"pending", "done-a", "done-b"}
	if !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProject_Filters(t *testing.T) {
	tasks := []Task{
		{ID: "1", Text: "a", Priority: Low, CreatedAt: 3},
		{ID: "2", Text: "b", Completed: true, Priority: Low, CreatedAt: 2},
		{ID: "3", Text: "c", Priority: Low, CreatedAt: 1},
	}

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"a", "b", "c"}},
		{FilterActive, []string{"a", "c"}},
		{FilterCompleted, []string{"b"}},
	}
	for _, tt := range tests {
		got := texts(Project(tasks, tt.filter, SortCreationDate))
		if !equalStrings(got, tt.want) {
			t.Errorf("filter %s: expected %v, got %v", tt.filter, tt.want, got)
		}
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	tasks := []Task{
		{ID: "1", Text: "old", Priority: Low, CreatedAt: 1},
		{ID: "2", Text: "new", Priority: High, CreatedAt: 2},
	}

	Project(tasks, FilterAll, SortCreationDate)
	Project(tasks, FilterAll, SortPriority)

	if tasks[0].ID != "1" || tasks[1].ID != "2" {
		t.Errorf("input reordered: %v", tasks)
	}
}

func TestProject_Empty(t *testing.T) {
	got := Project(nil, FilterActive, SortStatus)
	if len(got) != 0 {
		t.Errorf("expected empty projection, got %v", got)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr bool
	}{
		{"", SortCreationDate, false},
		{"date", SortCreationDate, false},
		{"creation-date", SortCreationDate, false},
		{"Priority", SortPriority, false},
		{"status", SortStatus, false},
		{"random", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSortOrder(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortOrder(%q): unexpected error state: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	if f, err := ParseFilter("ACTIVE"); err != nil || f != FilterActive {
		t.Errorf("expected active, got %q (%v)", f, err)
	}
	if _, err := ParseFilter("pending"); err == nil {
		t.Error("expected error for unknown filter")
	}
}
