package commands

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"git.sr.ht/~rjarry/histnav/lib/history"
	"git.sr.ht/~rjarry/histnav/lib/log"
)

// Session is the state commands operate on.
type Session struct {
	History *history.Navigator[string]
	Out     io.Writer
}

type Command interface {
	Aliases() []string
	// Execute runs the command. args[0] is the name it was invoked with.
	Execute(s *Session, args []string) error
}

type Commands map[string]Command

func NewCommands() *Commands {
	cmds := Commands(make(map[string]Command))
	return &cmds
}

func (cmds *Commands) dict() map[string]Command {
	return map[string]Command(*cmds)
}

func (cmds *Commands) Names() []string {
	names := make([]string, 0, len(cmds.dict()))
	for k := range cmds.dict() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (cmds *Commands) ByName(name string) Command {
	if cmd, ok := cmds.dict()[name]; ok {
		return cmd
	}
	return nil
}

func (cmds *Commands) Register(cmd Command) {
	for _, alias := range cmd.Aliases() {
		cmds.dict()[alias] = cmd
	}
}

type NoSuchCommand string

func (err NoSuchCommand) Error() string {
	return "Unknown command " + string(err)
}

type ErrorExit int

func (err ErrorExit) Error() string {
	return "exit"
}

func (cmds *Commands) ExecuteCommand(s *Session, args []string) error {
	if len(args) == 0 {
		return errors.New("Expected a command.")
	}
	cmd := cmds.ByName(args[0])
	if cmd == nil {
		return NoSuchCommand(args[0])
	}
	log.Tracef("executing %q", args)
	return cmd.Execute(s, args)
}

// Run executes one command per line read from r until EOF or until a command
// returns ErrorExit. Command errors are reported on s.Out and do not stop the
// loop. Lines can be of any length. When prompt is not empty, it is written
// before reading each line.
func (cmds *Commands) Run(r io.Reader, s *Session, prompt string) error {
	reader := bufio.NewReader(r)
	for {
		if prompt != "" {
			fmt.Fprint(s.Out, prompt)
		}
		line, err := reader.ReadString('\n')
		if line != "" && cmds.runLine(s, strings.TrimRight(line, "\r\n")) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}
	}
}

// runLine executes a single line and reports whether the loop must stop.
func (cmds *Commands) runLine(s *Session, line string) bool {
	args, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(s.Out, "error: %v\n", err)
		return false
	}
	if len(args) == 0 {
		return false
	}
	err = cmds.ExecuteCommand(s, args)
	if errors.As(err, new(ErrorExit)) {
		return true
	}
	if err != nil {
		log.Warnf("%s: %v", args[0], err)
		fmt.Fprintf(s.Out, "error: %v\n", err)
	}
	return false
}

// HistoryCommands holds every command operating on a Session.
var HistoryCommands = NewCommands()

func register(cmd Command) {
	HistoryCommands.Register(cmd)
}
