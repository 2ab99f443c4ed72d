package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
)

// Command is one devtool subcommand
type Command interface {
	Name() string
	// Usage names the positional arguments, empty when there are none
	Usage() string
	Description() string
	Run(args []string) error
}

// Registry keeps commands in the order they would run when bringing up a fresh database
type Registry struct {
	commands map[string]Command
	order    []string
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command)}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds cmd; a later command with the same name replaces the earlier one in place
func (r *Registry) Register(cmd Command) {
	if _, exists := r.commands[cmd.Name()]; !exists {
		r.order = append(r.order, cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns commands in registration order
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Dispatch runs the command named by args[0] with the remaining args
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return errNoCommand
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
	if err := cmd.Run(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return nil
}

// WriteHelp prints usage with one aligned line per command
func (r *Registry) WriteHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w, "\nDragon Keeper maintenance commands (fresh setup runs them top to bottom):")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", strings.TrimSpace(cmd.Name()+" "+cmd.Usage()), cmd.Description())
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "\nDatabase settings come from DB_URL or DB_USER/DB_PASSWORD/DB_HOST/DB_PORT/DB_NAME (.env is loaded).")
}
