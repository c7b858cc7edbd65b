// Package message prints user-facing CLI output. Diagnostics go through slog instead.
package message

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	quiet     bool
	mutex     sync.RWMutex
	outWriter io.Writer = os.Stderr

	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	sectionColor = color.New(color.FgHiMagenta, color.Bold)
)

// SetQuiet suppresses Info, Success and Section output.
func SetQuiet(q bool) {
	mutex.Lock()
	defer mutex.Unlock()
	quiet = q
}

// SetNoColor disables color for this package and for fatih/color globally.
func SetNoColor(nc bool) {
	mutex.Lock()
	defer mutex.Unlock()
	color.NoColor = nc
}

// SetOutput changes the output writer.
func SetOutput(w io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	outWriter = w
}

func printf(c *color.Color, prefix, format string, args ...interface{}) {
	mutex.RLock()
	defer mutex.RUnlock()

	c.Fprintf(outWriter, "%s%s\n", prefix, fmt.Sprintf(format, args...))
}

func isQuiet() bool {
	mutex.RLock()
	defer mutex.RUnlock()
	return quiet
}

func Info(format string, args ...interface{}) {
	if isQuiet() {
		return
	}
	printf(infoColor, "[*] ", format, args...)
}

func Success(format string, args ...interface{}) {
	if isQuiet() {
		return
	}
	printf(successColor, "[+] ", format, args...)
}

// Warning is printed even in quiet mode.
func Warning(format string, args ...interface{}) {
	printf(warningColor, "[!] ", format, args...)
}

// Error is printed even in quiet mode.
func Error(format string, args ...interface{}) {
	printf(errorColor, "[-] ", format, args...)
}

func Emphasize(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func Section(format string, args ...interface{}) {
	if isQuiet() {
		return
	}

	mutex.RLock()
	defer mutex.RUnlock()
	sectionColor.Fprintf(outWriter, "\n-=[%s]=-\n\n", fmt.Sprintf(format, args...))
}
