package commands

import (
	"flag"

	"tododay/internal/session"
	"tododay/internal/task"
)

// viewFlags are the --filter and --sort flags shared by every command that
// shows or refers to tasks by number. Numbers are positions in the view
// those flags select.
type viewFlags struct {
	filter string
	sort   string
}

func (v *viewFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&v.filter, "filter", string(task.FilterAll), "")
	fs.StringVar(&v.filter, "f", string(task.FilterAll), "")
	fs.StringVar(&v.sort, "sort", string(task.SortCreationDate), "")
	fs.StringVar(&v.sort, "s", string(task.SortCreationDate), "")
}

// apply parses the flag values and sets them on sess.
func (v *viewFlags) apply(sess *session.Session) error {
	f, err := task.ParseFilter(v.filter)
	if err != nil {
		return err
	}
	o, err := task.ParseSortOrder(v.sort)
	if err != nil {
		return err
	}
	sess.SetFilter(f)
	sess.SetSortOrder(o)
	return nil
}
