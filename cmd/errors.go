package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephgoksu/golfstats/internal/loader"
	"go.uber.org/zap"
)

// errInterrupted is returned when SIGINT or SIGTERM arrives before the
// report has been written.
var errInterrupted = errors.New("interrupted")

// PrintError prints an error message to w. It prints a user-friendly
// message by default. If the --verbose flag is set, it prints the full
// technical error instead, plus the load cause when the message lacks it.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	if isVerbose() && technicalErr != nil {
		msg := technicalErr.Error()
		fmt.Fprintf(w, "Error: %s\n", msg)
		var le *loader.Error
		if errors.As(technicalErr, &le) && le.Cause != nil && !strings.Contains(msg, le.Cause.Error()) {
			fmt.Fprintf(w, "Cause: %v\n", le.Cause)
		}
		return
	}
	fmt.Fprintln(w, userMsg)
}

// LogError logs an error at debug level; nothing is shown unless verbose.
func LogError(msg string, err error) {
	if err != nil {
		log.Debug(msg, zap.Error(err))
		return
	}
	log.Debug(msg)
}

// userMessage is the one-line diagnostic shown without --verbose.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errInterrupted), errors.Is(err, context.Canceled):
		return "interrupted"
	case errors.Is(err, loader.ErrFileNotFound):
		return fmt.Sprintf("Error: %v (check the path and try again)", err)
	default:
		return "Error: " + err.Error()
	}
}
