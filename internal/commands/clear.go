package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tododay/internal/config"
	"tododay/internal/exitcode"
	"tododay/internal/session"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string       { return "clear" }
func (c *ClearCmd) Aliases() []string  { return nil }
func (c *ClearCmd) Synopsis() string   { return "Delete all completed tasks" }
func (c *ClearCmd) Usage() string      { return "tododay clear" }
func (c *ClearCmd) NeedsSession() bool { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	n := sess.ClearCompleted(ctx)
	if !cfg.Quiet {
		fmt.Fprintf(out, "removed %d\n", n)
	}
	return exitcode.Success
}
