package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tododay/internal/config"
	"tododay/internal/exitcode"
	"tododay/internal/session"
	"tododay/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
}

// SetPriority sets the priority flag (for testing).
func (c *AddCmd) SetPriority(p string) {
	c.priority = p
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "tododay add [--priority high|medium|low] <text...>" }
func (c *AddCmd) NeedsSession() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", string(task.Medium), "")
	fs.StringVar(&c.priority, "p", string(task.Medium), "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	prio := task.Medium
	if c.priority != "" {
		p, err := task.ParsePriority(c.priority)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		prio = p
	}

	if _, ok := sess.AddTask(ctx, text, prio); !ok {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
