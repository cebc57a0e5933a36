package commands

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	atEnd       = "(Already at end)"
	atBeginning = "(Already at beginning)"
	empty       = "(empty)"

	alreadyPresent = "(Already in history)"
)

func show(s *Session, v string, ok bool, sentinel string) {
	if !ok {
		v = sentinel
	}
	fmt.Fprintln(s.Out, v)
}

func noArgs(args []string) error {
	if len(args) != 1 {
		return errors.Errorf("Usage: %s", args[0])
	}
	return nil
}

type Next struct{}

func init() {
	register(Next{})
}

func (Next) Aliases() []string {
	return []string{"next", "down"}
}

func (Next) Execute(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	v, ok := s.History.Next()
	show(s, v, ok, atEnd)
	return nil
}

type Prev struct{}

func init() {
	register(Prev{})
}

func (Prev) Aliases() []string {
	return []string{"prev", "previous", "up"}
}

func (Prev) Execute(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	v, ok := s.History.Previous()
	show(s, v, ok, atBeginning)
	return nil
}

type First struct{}

func init() {
	register(First{})
}

func (First) Aliases() []string {
	return []string{"first"}
}

func (First) Execute(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	v, ok := s.History.First()
	show(s, v, ok, empty)
	return nil
}

type Last struct{}

func init() {
	register(Last{})
}

func (Last) Aliases() []string {
	return []string{"last"}
}

func (Last) Execute(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	v, ok := s.History.Last()
	show(s, v, ok, empty)
	return nil
}

type Current struct{}

func init() {
	register(Current{})
}

func (Current) Aliases() []string {
	return []string{"current"}
}

func (Current) Execute(s *Session, args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}
	v, ok := s.History.Current()
	show(s, v, ok, empty)
	return nil
}
