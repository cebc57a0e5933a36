package commands

import (
	"fmt"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"git.sr.ht/~rjarry/histnav/lib/iterator"
)

// List prints the history newest first. The current entry is marked with >.
type List struct{}

func init() {
	register(List{})
}

func (List) Aliases() []string {
	return []string{"list", "history"}
}

func (List) Execute(s *Session, args []string) error {
	opts, optind, err := getopt.Getopts(args, "rw:")
	if err != nil {
		return err
	}
	if optind != len(args) {
		return errors.Errorf("Usage: %s [-r] [-w <width>]", args[0])
	}
	reverse := false
	width := 0
	for _, opt := range opts {
		switch opt.Option {
		case 'r':
			reverse = true
		case 'w':
			width, err = strconv.Atoi(opt.Value)
			if err != nil || width < 1 {
				return errors.Errorf("-w: invalid width %q", opt.Value)
			}
		}
	}

	entries := s.History.History()
	if len(entries) == 0 {
		fmt.Fprintln(s.Out, empty)
		return nil
	}
	cur, _ := s.History.Current()
	iter := iterator.NewIterator(entries, reverse)
	for iter.Next() {
		entry := iter.Value()
		marker := " "
		if entry == cur {
			marker = ">"
		}
		if width > 0 {
			entry = runewidth.Truncate(entry, width, "…")
		}
		fmt.Fprintf(s.Out, "%s %s\n", marker, entry)
	}
	return nil
}
