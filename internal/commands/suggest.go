package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tododay/internal/config"
	"tododay/internal/exitcode"
	"tododay/internal/session"
)

func init() {
	Register(&SuggestCmd{})
}

// SuggestCmd implements the suggest command.
type SuggestCmd struct{}

func (c *SuggestCmd) Name() string       { return "suggest" }
func (c *SuggestCmd) Aliases() []string  { return nil }
func (c *SuggestCmd) Synopsis() string   { return "Ask Gemini for a task and add it" }
func (c *SuggestCmd) Usage() string      { return "tododay suggest" }
func (c *SuggestCmd) NeedsSession() bool { return true }

func (c *SuggestCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SuggestCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	added, res, err := sess.RequestSuggestion(ctx)
	switch {
	case errors.Is(err, session.ErrSuggestionInFlight):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	case errors.Is(err, session.ErrSuggestionRejected):
		fmt.Fprintf(errOut, "error: suggestion rejected: %s\n", res.Text)
		return exitcode.BackendError
	case err != nil:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	if !res.OK() {
		fmt.Fprintln(errOut, res.Message())
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added: %s\n", added.Text)
	}
	return exitcode.Success
}
