// Package store holds the authoritative in-memory task collection.
//
// Every mutation runs to completion and is then mirrored to the persister.
// No operation returns an error: persistence problems are the persister's
// to log, and the in-memory collection stays authoritative for the session.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tododay/internal/task"
)

// Persister mirrors the collection. persist.Adapter implements it.
type Persister interface {
	Load(ctx context.Context) []task.Task
	Save(ctx context.Context, tasks []task.Task)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Store owns the task collection. It is not safe for concurrent mutation;
// there is exactly one mutator.
type Store struct {
	tasks     []task.Task
	persister Persister
	logger    logrus.FieldLogger
	now       func() time.Time
	newID     func() string
}

// New creates an empty Store. Call Initialize to load persisted tasks.
func New(p Persister, logger logrus.FieldLogger, opts ...Option) *Store {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	s := &Store{
		tasks:     []task.Task{},
		persister: p,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize replaces the in-memory collection with the persisted one.
func (s *Store) Initialize(ctx context.Context) {
	tasks := s.persister.Load(ctx)
	if tasks == nil {
		tasks = []task.Task{}
	}
	s.tasks = tasks
}

// Add creates a task from text and prepends it. Text is trimmed; blank
// text is rejected and reported by ok=false.
func (s *Store) Add(ctx context.Context, text string, priority task.Priority) (t task.Task, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return task.Task{}, false
	}
	if !priority.Valid() {
		priority = task.Medium
	}

	t = task.Task{
		ID:        s.newID(),
		Text:      text,
		Completed: false,
		Priority:  priority,
		CreatedAt: s.now().UnixMilli(),
	}
	s.tasks = append([]task.Task{t}, s.tasks...)
	s.logger.WithField("id", t.ID).Debug("task added")
	s.persist(ctx)
	return t, true
}

// Toggle flips the completed flag of the task with id. Returns false, and
// does nothing, when no task matches.
func (s *Store) Toggle(ctx context.Context, id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.logger.WithField("id", id).WithField("completed", s.tasks[i].Completed).Debug("task toggled")
			s.persist(ctx)
			return true
		}
	}
	return false
}

// Delete removes the task with id. Returns false, and does nothing, when no
// task matches.
func (s *Store) Delete(ctx context.Context, id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			s.logger.WithField("id", id).Debug("task deleted")
			s.persist(ctx)
			return true
		}
	}
	return false
}

// ClearCompleted removes every completed task in one mutation and returns
// how many were removed.
func (s *Store) ClearCompleted(ctx context.Context) int {
	kept := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		return 0
	}
	s.tasks = kept
	s.logger.WithField("count", removed).Debug("completed tasks cleared")
	s.persist(ctx)
	return removed
}

// ActiveCount returns the number of tasks not yet completed.
func (s *Store) ActiveCount() int {
	return task.ActiveCount(s.tasks)
}

// Tasks returns a copy of the collection in storage order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Find returns the task with id.
func (s *Store) Find(id string) (task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Resolve returns the single task whose id starts with prefix.
// matches reports how many ids share the prefix; t is only set when it is 1.
func (s *Store) Resolve(prefix string) (t task.Task, matches int) {
	if prefix == "" {
		return task.Task{}, 0
	}
	for _, cand := range s.tasks {
		if strings.HasPrefix(cand.ID, prefix) {
			if matches == 0 {
				t = cand
			}
			matches++
		}
	}
	if matches != 1 {
		return task.Task{}, matches
	}
	return t, 1
}

func (s *Store) persist(ctx context.Context) {
	s.persister.Save(ctx, s.Tasks())
}
