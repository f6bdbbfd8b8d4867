package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// ErrHelp is returned by Execute when the command line asked for usage (-h / -help).
// The usage text has already been written to the registry output.
var ErrHelp = flag.ErrHelp

// ErrFlags marks a flag parse failure. The FlagSet has already written the problem and
// usage to the registry output.
var ErrFlags = errors.New("bad flags")

// Reported reports whether err was already written to the registry output by Execute,
// so a caller logging errors should skip it.
func Reported(err error) bool {
	return errors.Is(err, ErrHelp) || errors.Is(err, ErrFlags)
}

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
	out  io.Writer
}

// NewRegistry returns an empty command registry. Flag errors and usage are written to out
// (nil discards them).
func NewRegistry(out io.Writer) *Registry {
	if out == nil {
		out = io.Discard
	}
	return &Registry{cmds: make(map[string]*Command), out: out}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "focus").
// fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds.
// fs is switched to ContinueOnError so a bad line never exits the program.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.Init(name, flag.ContinueOnError)
	fs.SetOutput(r.out)
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns one line per command: "name - summary".
func (r *Registry) Help() []string {
	lines := make([]string, 0, len(r.cmds))
	for _, name := range r.Names() {
		lines = append(lines, fmt.Sprintf("%s - %s", name, r.cmds[name].Summary))
	}
	return lines
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Every flag starts from its default on each run, so values never carry over from an
// earlier line. Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := resetFlags(cmd.FlagSet); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}
		return fmt.Errorf("%s: %w (%w)", name, err, ErrFlags)
	}
	return cmd.Run()
}

func resetFlags(fs *flag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if setErr := f.Value.Set(f.DefValue); setErr != nil && err == nil {
			err = fmt.Errorf("resetting -%s: %w", f.Name, setErr)
		}
	})
	return err
}
