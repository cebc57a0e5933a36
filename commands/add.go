package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Add struct{}

func init() {
	register(Add{})
}

func (Add) Aliases() []string {
	return []string{"add"}
}

func (Add) Execute(s *Session, args []string) error {
	if len(args) < 2 {
		return errors.New("Usage: add <text>")
	}
	s.History.Add(strings.Join(args[1:], " "))
	return nil
}

type AddIfMissing struct{}

func init() {
	register(AddIfMissing{})
}

func (AddIfMissing) Aliases() []string {
	return []string{"add-if-missing"}
}

func (AddIfMissing) Execute(s *Session, args []string) error {
	if len(args) < 2 {
		return errors.Errorf("Usage: %s <text>", args[0])
	}
	text := strings.Join(args[1:], " ")
	if s.History.Contains(text) {
		fmt.Fprintln(s.Out, alreadyPresent)
		return nil
	}
	s.History.AddIfNotPresent(text)
	return nil
}
