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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	view viewFlags
}

// SetView sets the filter and sort order numbers refer to (for testing).
func (c *RmCmd) SetView(filter, sort string) {
	c.view = viewFlags{filter: filter, sort: sort}
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "tododay rm [--filter <f>] [--sort <s>] <ref>" }
func (c *RmCmd) NeedsSession() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	c.view.register(fs)
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	// Deleting an id that is already gone succeeds.
	t, code := resolveRefArgs(sess, &c.view, args, true, errOut)
	if code != exitcode.Success {
		return code
	}

	if t.ID != "" {
		sess.DeleteTask(ctx, t.ID)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
