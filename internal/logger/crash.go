// Package logger provides the stderr logger and panic recovery for golfstats.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
)

// CrashContext stores what was running when a panic happened.
type CrashContext struct {
	mu       sync.RWMutex
	command  string
	version  string
	dataFile string
	verbose  bool
}

// globalContext is the singleton crash context.
var globalContext = &CrashContext{}

// Overridden in tests.
var (
	crashOut io.Writer = os.Stderr
	exit               = os.Exit
)

// SetVersion sets the application version shown in crash reports.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetDataFile records the data file being reported on.
func SetDataFile(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.dataFile = path
}

// SetVerbose makes crash reports include the stack trace.
func SetVerbose(v bool) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.verbose = v
}

// HandlePanic is a deferred function that recovers from panics, prints a
// one-line diagnostic to stderr and exits with status 1. Nothing is written
// to disk.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		fmt.Fprint(crashOut, formatCrash(r, debug.Stack()))
		exit(1)
	}
}

func formatCrash(panicValue any, stack []byte) string {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	var ctx []string
	if globalContext.version != "" {
		ctx = append(ctx, "version "+globalContext.version)
	}
	if globalContext.command != "" {
		ctx = append(ctx, "command "+globalContext.command)
	}
	if globalContext.dataFile != "" {
		ctx = append(ctx, "file "+globalContext.dataFile)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "golfstats: internal error: %s", truncateForLog(fmt.Sprint(panicValue), 500))
	if len(ctx) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(ctx, ", "))
	}
	sb.WriteString("\n")
	if globalContext.verbose {
		sb.Write(stack)
	}
	return sb.String()
}

func truncateForLog(value string, maxLen int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}
