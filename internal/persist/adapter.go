package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"tododay/internal/task"
)

// StorageKey is the key the task collection is stored under.
const StorageKey = "todos"

// strictJSON decodes stored collections; unknown fields are a shape
// mismatch.
var strictJSON = sonic.Config{
	CopyString:            true,
	ValidateString:        true,
	DisallowUnknownFields: true,
}.Froze()

// Adapter reads and writes the task collection. It never returns errors:
// failures are logged and reads fall back to an empty collection.
type Adapter struct {
	kv     KV
	key    string
	logger logrus.FieldLogger
}

// NewAdapter creates an Adapter over kv using StorageKey.
func NewAdapter(kv KV, logger logrus.FieldLogger) *Adapter {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &Adapter{
		kv:     kv,
		key:    StorageKey,
		logger: logger.WithField("key", StorageKey),
	}
}

// Load returns the stored collection. A missing key yields an empty
// collection silently; unreadable or malformed data yields an empty
// collection and a warning.
func (a *Adapter) Load(ctx context.Context) []task.Task {
	data, err := a.kv.Get(ctx, a.key)
	if errors.Is(err, ErrNotFound) {
		a.logger.Debug("no stored tasks")
		return []task.Task{}
	}
	if err != nil {
		a.logger.WithError(err).Warn("failed to read tasks, starting empty")
		return []task.Task{}
	}

	tasks, err := decode(data)
	if err != nil {
		a.logger.WithError(err).Warn("stored tasks are corrupt, starting empty")
		return []task.Task{}
	}

	a.logger.WithField("count", len(tasks)).Debug("loaded tasks")
	return tasks
}

// Save writes the collection. Failures are logged and discarded.
func (a *Adapter) Save(ctx context.Context, tasks []task.Task) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := sonic.ConfigStd.Marshal(tasks)
	if err != nil {
		a.logger.WithError(err).Error("failed to encode tasks")
		return
	}
	if err := a.kv.Set(ctx, a.key, data); err != nil {
		a.logger.WithError(err).Error("failed to write tasks")
		return
	}
	a.logger.WithField("count", len(tasks)).Debug("saved tasks")
}

// decode parses a stored collection. Any record that does not look like a
// task, carries unknown fields, or repeats an id makes the whole value
// corrupt.
func decode(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := strictJSON.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		return []task.Task{}, nil
	}

	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return tasks, nil
}
