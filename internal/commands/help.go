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
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tododay help" }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText(DefaultRegistry))
	return exitcode.Success
}

// HelpText renders usage for every command in r.
func HelpText(r *Registry) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  %-*s %s\n", usageWidth, "tododay", "List all tasks")
	for _, cmd := range r.All() {
		fmt.Fprintf(&b, "  %-*s %s\n", usageWidth, cmd.Usage(), cmd.Synopsis())
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(&b, "      alias: %s\n", strings.Join(aliases, ", "))
		}
	}
	b.WriteString(helpFooter)
	return b.String()
}

const usageWidth = 52

const helpFooter = `
Task references:
  <n>              Position in the list shown with the same --filter/--sort
  <id-prefix>      At least 4 leading characters of a task id (see list --ids)

Filters: all, active, completed      Sort: creation-date (date), priority, status

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
