// Package session is the object the presentation layer talks to. It owns
// the task store, the transient filter and sort order, and the in-flight
// state of the suggestion request.
package session

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"tododay/internal/persist"
	"tododay/internal/store"
	"tododay/internal/suggest"
	"tododay/internal/task"
)

// ErrSuggestionInFlight is returned when a suggestion is requested while
// another one is outstanding.
var ErrSuggestionInFlight = errors.New("a suggestion is already in progress")

// ErrSuggestionRejected is returned when the suggestion succeeded but its
// text was refused by the legacy error filter.
var ErrSuggestionRejected = errors.New("suggestion rejected")

// Suggester produces task suggestions. *suggest.Client implements it.
type Suggester interface {
	Suggest(ctx context.Context) suggest.Result
}

// View is everything the presentation layer renders.
type View struct {
	Tasks       []task.Task
	ActiveCount int
	Suggesting  bool
	Filter      task.Filter
	Sort        task.SortOrder
}

// Session wires a store and a suggester together.
type Session struct {
	store     *store.Store
	suggester Suggester
	kv        persist.KV
	logger    logrus.FieldLogger

	filter task.Filter
	sort   task.SortOrder

	suggesting        atomic.Bool
	legacyErrorFilter bool
}

// Option configures a Session.
type Option func(*Session)

// WithLegacyErrorFilter makes RequestSuggestion drop texts containing
// "error", matching the plain-string contract of older clients.
func WithLegacyErrorFilter(on bool) Option {
	return func(s *Session) { s.legacyErrorFilter = on }
}

// WithKV hands ownership of the storage backend to the session; Close
// closes it.
func WithKV(kv persist.KV) Option {
	return func(s *Session) { s.kv = kv }
}

// New creates a session over an initialized store.
func New(st *store.Store, suggester Suggester, logger logrus.FieldLogger, opts ...Option) *Session {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	s := &Session{
		store:     st,
		suggester: suggester,
		logger:    logger,
		filter:    task.FilterAll,
		sort:      task.SortCreationDate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask adds a task. Blank text is ignored and reported by ok=false.
func (s *Session) AddTask(ctx context.Context, text string, priority task.Priority) (task.Task, bool) {
	return s.store.Add(ctx, text, priority)
}

// ToggleTask flips the completion of the task with id.
func (s *Session) ToggleTask(ctx context.Context, id string) bool {
	return s.store.Toggle(ctx, id)
}

// DeleteTask removes the task with id.
func (s *Session) DeleteTask(ctx context.Context, id string) bool {
	return s.store.Delete(ctx, id)
}

// ClearCompleted removes all completed tasks.
func (s *Session) ClearCompleted(ctx context.Context) int {
	return s.store.ClearCompleted(ctx)
}

// SetFilter changes which tasks View shows.
func (s *Session) SetFilter(f task.Filter) { s.filter = f }

// SetSortOrder changes the order of View.
func (s *Session) SetSortOrder(o task.SortOrder) { s.sort = o }

// Store returns the underlying store.
func (s *Session) Store() *store.Store { return s.store }

// Suggesting reports whether a suggestion request is outstanding.
func (s *Session) Suggesting() bool { return s.suggesting.Load() }

// View projects the current collection through the filter and sort order.
func (s *Session) View() View {
	tasks := s.store.Tasks()
	return View{
		Tasks:       task.Project(tasks, s.filter, s.sort),
		ActiveCount: task.ActiveCount(tasks),
		Suggesting:  s.Suggesting(),
		Filter:      s.filter,
		Sort:        s.sort,
	}
}

// RequestSuggestion asks for a suggestion and, when it is usable, adds it
// with Medium priority. At most one request runs at a time; a concurrent
// call returns ErrSuggestionInFlight without contacting the service.
//
// A failed suggestion returns the zero task, the failed result and a nil
// error: failure is reported through the result, not as an error.
func (s *Session) RequestSuggestion(ctx context.Context) (task.Task, suggest.Result, error) {
	if !s.suggesting.CompareAndSwap(false, true) {
		return task.Task{}, suggest.Result{}, ErrSuggestionInFlight
	}
	defer s.suggesting.Store(false)

	if s.suggester == nil {
		res := suggest.Result{Err: &suggest.Failure{Reason: suggest.ReasonUnavailable, Err: suggest.ErrUnavailable}}
		return task.Task{}, res, nil
	}

	res := s.suggester.Suggest(ctx)
	if !res.OK() {
		return task.Task{}, res, nil
	}
	if s.legacyErrorFilter && !suggest.LegacyAccept(res.Text) {
		s.logger.WithField("text", res.Text).Info("suggestion dropped by legacy error filter")
		return task.Task{}, res, ErrSuggestionRejected
	}

	t, ok := s.store.Add(ctx, res.Text, task.Medium)
	if !ok {
		return task.Task{}, res, ErrSuggestionRejected
	}
	return t, res, nil
}

// Close releases the storage backend if the session owns one.
func (s *Session) Close() error {
	if s.kv == nil {
		return nil
	}
	return s.kv.Close()
}
