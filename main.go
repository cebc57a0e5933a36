package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"git.sr.ht/~rjarry/histnav/commands"
	"git.sr.ht/~rjarry/histnav/config"
	"git.sr.ht/~rjarry/histnav/lib/history"
	"git.sr.ht/~rjarry/histnav/lib/log"
	"git.sr.ht/~rjarry/histnav/lib/xdg"
)

// set at build time
var Version string

func buildInfo() string {
	return fmt.Sprintf("%s (%s %s %s)", Version,
		runtime.Version(), runtime.GOARCH, runtime.GOOS)
}

func usage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, "usage: histnav [-v] [-c <config>] [-l <limit>]")
	os.Exit(1)
}

func initLogging(conf *config.Config) (func(), error) {
	if conf.General.LogFile == "" {
		log.Init(nil, conf.General.LogLevel)
		return func() {}, nil
	}
	path := xdg.ExpandHome(conf.General.LogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "log-file")
	}
	log.Init(f, conf.General.LogLevel)
	return func() { f.Close() }, nil
}

func main() {
	defer log.PanicHandler()
	opts, optind, err := getopt.Getopts(os.Args, "vc:l:")
	if err != nil {
		usage("error: " + err.Error())
		return
	}
	var confPath *string
	limit := -1
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			fmt.Println("histnav " + buildInfo())
			return
		case 'c':
			value := opt.Value
			confPath = &value
		case 'l':
			limit, err = strconv.Atoi(opt.Value)
			if err != nil || limit < 1 {
				usage("error: -l: invalid limit " + strconv.Quote(opt.Value))
				return
			}
		}
	}
	if optind != len(os.Args) {
		usage("error: invalid arguments")
		return
	}

	conf, err := config.LoadConfigFromFile(confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1) //nolint:gocritic // PanicHandler does not need to run as it's not a panic
	}
	if limit > 0 {
		conf.History.Limit = limit
	}
	closeLog, err := initLogging(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1) //nolint:gocritic // PanicHandler does not need to run as it's not a panic
	}
	defer closeLog()
	log.Infof("Starting up version %s", buildInfo())

	session := &commands.Session{
		History: history.New(conf.History.Initial, conf.History.Limit),
		Out:     os.Stdout,
	}
	prompt := ""
	if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt = "> "
	}
	if err := commands.HistoryCommands.Run(os.Stdin, session, prompt); err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1) //nolint:gocritic // log already closed
	}
}
