package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/josephgoksu/golfstats/internal/loader"
	"github.com/josephgoksu/golfstats/internal/logger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPrintError(t *testing.T) {
	notFound := &loader.Error{Kind: loader.ErrFileNotFound, Path: "stats.json", Cause: fs.ErrNotExist}
	badJSON := &loader.Error{Kind: loader.ErrInvalidFormat, Path: "broken.json", Cause: errors.New("unexpected end of input")}

	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{
			name:         "verbose mode without error",
			userMsg:      "User friendly message",
			technicalErr: nil,
			verbose:      true,
			expectedOut:  "User friendly message\n",
		},
		{
			name:         "verbose mode with error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      true,
			expectedOut:  "Error: technical details\n",
		},
		{
			name:         "normal mode with technical error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      false,
			expectedOut:  "User friendly message\n",
		},
		{
			name:         "verbose mode shows load cause",
			userMsg:      "User friendly message",
			technicalErr: fmt.Errorf("loading: %w", notFound),
			verbose:      true,
			expectedOut:  "Error: loading: data file not found: stats.json\nCause: file does not exist\n",
		},
		{
			name:         "verbose mode does not repeat an embedded cause",
			userMsg:      "User friendly message",
			technicalErr: badJSON,
			verbose:      true,
			expectedOut:  "Error: " + badJSON.Error() + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			var buf bytes.Buffer
			PrintError(&buf, tt.userMsg, tt.technicalErr)
			assert.Equal(t, tt.expectedOut, buf.String())
			if le, ok := tt.technicalErr.(*loader.Error); ok && tt.verbose {
				assert.Equal(t, 1, strings.Count(buf.String(), le.Cause.Error()))
			}
		})
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name        string
		msg         string
		err         error
		verbose     bool
		shouldPrint bool
	}{
		{name: "verbose mode with error", msg: "Debug message", err: &testError{msg: "error details"}, verbose: true, shouldPrint: true},
		{name: "verbose mode without error", msg: "Debug message", verbose: true, shouldPrint: true},
		{name: "non-verbose mode", msg: "Debug message", err: &testError{msg: "error details"}, verbose: false, shouldPrint: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log = logger.New("warn", tt.verbose, &buf)
			defer func() { log = zap.NewNop() }()

			LogError(tt.msg, tt.err)

			output := strings.TrimSpace(buf.String())
			if tt.shouldPrint {
				assert.Contains(t, output, "DEBUG | Debug message")
				if tt.err != nil {
					assert.Contains(t, output, "error details")
				}
			} else {
				assert.Empty(t, output)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	notFound := &loader.Error{Kind: loader.ErrFileNotFound, Path: "x.json"}

	assert.Equal(t, "interrupted", userMessage(errInterrupted))
	assert.Equal(t, "interrupted", userMessage(context.Canceled))
	assert.Equal(t, "Error: data file not found: x.json (check the path and try again)", userMessage(notFound))
	assert.Equal(t, "Error: boom", userMessage(&testError{msg: "boom"}))
}

// testError is a simple error type for testing
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
