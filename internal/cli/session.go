package cli

import (
	"context"

	"github.com/sirupsen/logrus"

	"tododay/internal/backend/gemini"
	"tododay/internal/config"
	"tododay/internal/persist"
	"tododay/internal/session"
	"tododay/internal/store"
	"tododay/internal/suggest"
)

// NewSession opens the configured storage backend, loads the task
// collection and attaches the Gemini suggestion client. Only an unusable
// storage backend is an error; the Gemini client is created on first use.
func NewSession(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*session.Session, error) {
	kv, err := persist.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	adapter := persist.NewAdapter(kv, logger.WithField("backend", cfg.Storage.Backend))
	st := store.New(adapter, logger)
	st.Initialize(ctx)

	suggester := suggest.NewClient(gemini.NewLazy(cfg), logger.WithField("model", cfg.Suggest.Model))

	return session.New(st, suggester, logger,
		session.WithKV(kv),
		session.WithLegacyErrorFilter(cfg.Suggest.LegacyErrorFilter),
	), nil
}
