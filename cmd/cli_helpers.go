package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

func isVerbose() bool {
	return viper.GetBool("verbose")
}

// checkInterrupt turns a cancelled context into errInterrupted.
func checkInterrupt(ctx context.Context) error {
	if ctx.Err() != nil {
		return errInterrupted
	}
	return nil
}

// writeOutput writes a fully rendered report in one call.
func writeOutput(w io.Writer, out []byte) error {
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
