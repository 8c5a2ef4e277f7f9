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
	"tododay/internal/task"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct {
	view viewFlags
}

// SetView sets the filter and sort order numbers refer to (for testing).
func (c *ToggleCmd) SetView(filter, sort string) {
	c.view = viewFlags{filter: filter, sort: sort}
}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Mark a task completed, or reopen it" }
func (c *ToggleCmd) Usage() string      { return "tododay toggle [--filter <f>] [--sort <s>] <ref>" }
func (c *ToggleCmd) NeedsSession() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {
	c.view.register(fs)
}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	t, code := resolveRefArgs(sess, &c.view, args, false, errOut)
	if code != exitcode.Success {
		return code
	}

	sess.ToggleTask(ctx, t.ID)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// resolveRefArgs parses and resolves the task reference in args, printing
// the error and returning a non-success code on failure. With missingOK,
// an id prefix that matches nothing yields the zero task and success.
func resolveRefArgs(sess *session.Session, view *viewFlags, args []string, missingOK bool, errOut io.Writer) (task.Task, int) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return task.Task{}, exitcode.UserError
	}

	if err := view.apply(sess); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return task.Task{}, exitcode.UserError
	}

	t, err := ResolveTaskRef(sess, ref)
	if missingOK && errors.Is(err, ErrTaskNotFound) {
		return task.Task{}, exitcode.Success
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return task.Task{}, exitcode.UserError
	}
	return t, exitcode.Success
}
