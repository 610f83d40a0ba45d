/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/josephgoksu/golfstats/internal/config"
	"github.com/josephgoksu/golfstats/internal/golf"
	"github.com/josephgoksu/golfstats/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// version is the application version.
	version = "0.3.0"
	// exit ends the process when an interrupt arrives mid-command.
	exit = os.Exit
)

// reportFlags holds the section selection flags of one command instance.
type reportFlags struct {
	summary       bool
	strokesGained bool
	clubs         string
	scoring       bool
	putting       bool
	approach      bool
	recentRounds  int
	full          bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "golfstats <data-file> [flags]",
		Short: "Golf performance reports from Arccos stat exports.",
		Long: `golfstats reads the JSON file written by the Arccos scraper and prints a
performance report: summary, strokes gained, club distances, scoring,
putting, approach and recent rounds.

With no section flags every section is shown. Section flags combine.`,
		Example: `  golfstats arccos_stats.json
  golfstats arccos_stats.json --strokes-gained --format json
  golfstats arccos_stats.json --clubs iron
  golfstats arccos_stats.json --recent-rounds 5`,
		Version:       version,
		Args:          dataFileArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, &f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.golfstats.yaml or ./.golfstats.yaml)")
	pf.BoolP("verbose", "v", false, "enable verbose output")
	pf.String("format", config.DefaultFormat, "output format: text, json or yaml")
	pf.String("color", config.DefaultColor, "text colors: auto, always or never")

	fl := cmd.Flags()
	fl.BoolVar(&f.summary, "summary", false, "show the summary section")
	fl.BoolVar(&f.strokesGained, "strokes-gained", false, "show the strokes gained analysis")
	fl.StringVar(&f.clubs, "clubs", "", "show club distances, optionally filtered by category (iron, wedge, wood, driver, putter, hybrid)")
	fl.Lookup("clubs").NoOptDefVal = golf.ClubCategoryAll
	fl.BoolVar(&f.scoring, "scoring", false, "show the scoring analysis")
	fl.BoolVar(&f.putting, "putting", false, "show the putting analysis")
	fl.BoolVar(&f.approach, "approach", false, "show the approach analysis")
	fl.IntVar(&f.recentRounds, "recent-rounds", report.AllRounds, "show the N most recent rounds")
	fl.BoolVar(&f.full, "full", false, "show every section")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag(config.KeyVerbose, pf.Lookup("verbose"))
	_ = viper.BindPFlag(config.KeyFormat, pf.Lookup("format"))
	_ = viper.BindPFlag(config.KeyColor, pf.Lookup("color"))

	return cmd
}

// Execute runs the root command with interrupt handling and exits non-zero
// on failure. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, rootCmd, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if code != 0 {
		os.Exit(code)
	}
}

// run executes cmd and returns the process exit code. Errors are printed to
// stderr once, here. An interrupt that arrives while the command is blocked
// (a slow read, a stalled pipe) ends the process with code 1 without waiting
// for the command to notice.
func run(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	notice := &interruptNotice{w: stderr}
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-done:
		case <-ctx.Done():
			notice.print()
			exit(1)
		}
	}()
	defer func() {
		close(done)
		wg.Wait()
	}()

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Any failure after cancellation is reported as the interrupt.
		if ctx.Err() != nil || errors.Is(err, errInterrupted) || errors.Is(err, context.Canceled) {
			notice.print()
		} else {
			PrintError(stderr, userMessage(err), err)
		}
		return 1
	}
	return 0
}

// interruptNotice prints the interrupt diagnostic at most once, whichever of
// the watcher or the command sees the cancellation first.
type interruptNotice struct {
	once sync.Once
	w    io.Writer
}

func (n *interruptNotice) print() {
	n.once.Do(func() { fmt.Fprintln(n.w, "interrupted") })
}

func dataFileArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.New("missing data file (usage: golfstats <data-file> [flags])")
	case 1, 2:
		// A second argument is only valid as a --clubs category; runReport decides.
		return nil
	default:
		return fmt.Errorf("accepts one data file, received %d arguments", len(args))
	}
}
