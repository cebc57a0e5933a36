package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"
)

// PanicHandler writes a stack trace to a crash log in the temp directory and
// then re-panics. Use it as the first deferred call of main.
func PanicHandler() {
	r := recover()

	if r == nil {
		return
	}

	filename := filepath.Join(os.TempDir(),
		time.Now().Format("histnav-crash-20060102-150405.log"))

	panicLog, e := os.OpenFile(filename, os.O_SYNC|os.O_APPEND|os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if e != nil {
		panic(r)
	}
	defer panicLog.Close()

	outputs := io.MultiWriter(panicLog, os.Stderr)

	fmt.Fprintln(panicLog, strings.Repeat("#", 80))
	fmt.Fprintln(panicLog, time.Now().Format("2006-01-02T15:04:05.000000-0700"))
	fmt.Fprintln(panicLog, strings.Repeat("#", 80))
	fmt.Fprintf(outputs, "histnav crashed: %v\n", r)
	panicLog.Write(debug.Stack()) //nolint:errcheck // best effort
	fmt.Fprintf(os.Stderr, "\nStack trace written to: %s\n", filename)
	panic(r)
}
