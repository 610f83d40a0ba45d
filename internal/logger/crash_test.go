package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	origOut, origExit := crashOut, exit
	crashOut = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, exit = origOut, origExit
		globalContext = &CrashContext{}
	})
	return &buf, &code
}

func TestCrashHandler_SetContext(t *testing.T) {
	globalContext = &CrashContext{}
	t.Cleanup(func() { globalContext = &CrashContext{} })

	SetVersion("1.0.0-test")
	SetCommand("golfstats")
	SetDataFile("stats.json")
	SetVerbose(true)

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	assert.Equal(t, "1.0.0-test", globalContext.version)
	assert.Equal(t, "golfstats", globalContext.command)
	assert.Equal(t, "stats.json", globalContext.dataFile)
	assert.True(t, globalContext.verbose)
}

func TestHandlePanic_RecoversAndExits(t *testing.T) {
	buf, code := captureCrash(t)
	SetVersion("1.2.3")
	SetDataFile("stats.json")

	func() {
		defer HandlePanic()
		panic("boom")
	}()

	assert.Equal(t, 1, *code)
	assert.Equal(t, "golfstats: internal error: boom (version 1.2.3, file stats.json)\n", buf.String())
}

func TestHandlePanic_VerboseIncludesStack(t *testing.T) {
	buf, code := captureCrash(t)
	SetVerbose(true)

	func() {
		defer HandlePanic()
		panic("boom")
	}()

	require.Equal(t, 1, *code)
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "golfstats: internal error: boom", lines[0])
	assert.Contains(t, buf.String(), "goroutine")
}

func TestHandlePanic_NoPanic(t *testing.T) {
	buf, code := captureCrash(t)

	func() {
		defer HandlePanic()
	}()

	assert.Equal(t, -1, *code)
	assert.Empty(t, buf.String())
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", truncateForLog("short", 10))
	assert.Equal(t, "a b", truncateForLog("a\nb", 10))

	long := truncateForLog(strings.Repeat("a", 600), 500)
	assert.Len(t, long, 500+len("... [truncated]"))
	assert.True(t, strings.HasSuffix(long, "[truncated]"))
}
