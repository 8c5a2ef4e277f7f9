package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tododay/internal/config"
	"tododay/internal/exitcode"
	"tododay/internal/output"
	"tododay/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tododay` (no args) and `tododay list`.
type ListCmd struct {
	view   viewFlags
	showID bool
}

// SetView sets the filter and sort order (for testing).
func (c *ListCmd) SetView(filter, sort string) {
	c.view = viewFlags{filter: filter, sort: sort}
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "tododay list [--filter <f>] [--sort <s>] [--ids]" }
func (c *ListCmd) NeedsSession() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	c.view.register(fs)
	fs.BoolVar(&c.showID, "ids", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if err := c.view.apply(sess); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	output.FormatView(out, sess.View(), c.showID)
	return exitcode.Success
}
