package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/golfstats/internal/golf"
	"github.com/josephgoksu/golfstats/internal/loader"
	"github.com/josephgoksu/golfstats/internal/logger"
	"github.com/josephgoksu/golfstats/internal/report"
	"github.com/josephgoksu/golfstats/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// appFs is the filesystem data files are read from. Tests swap in an
// in-memory one.
var appFs afero.Fs = afero.NewOsFs()

func runReport(cmd *cobra.Command, args []string, f *reportFlags) error {
	clubsSet := cmd.Flags().Changed("clubs")
	path, clubFilter, err := resolveClubArg(args, clubsSet, f.clubs)
	if err != nil {
		return err
	}

	opts := report.Options{
		Summary:       f.summary,
		StrokesGained: f.strokesGained,
		Clubs:         clubsSet,
		Scoring:       f.scoring,
		Putting:       f.putting,
		Approach:      f.approach,
		RecentRounds:  cmd.Flags().Changed("recent-rounds"),
		Full:          f.full,
		ClubFilter:    clubFilter,
		RoundLimit:    f.recentRounds,
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	logger.SetDataFile(path)
	log.Debug("report options", zap.Stringer("options", opts))

	ctx := cmd.Context()

	raw, err := loader.New(appFs).Load(path)
	if err != nil {
		return err
	}
	log.Debug("loaded data file", zap.String("path", path))
	if err := checkInterrupt(ctx); err != nil {
		return err
	}

	rec, issues := golf.Normalize(raw)
	for _, issue := range issues {
		log.Debug("normalized value", zap.Stringer("issue", issue))
	}

	out := cmd.OutOrStdout()
	theme := ui.NewTheme(ui.NewRenderer(out, GlobalAppConfig.Color))
	renderer, err := report.NewRenderer(report.Format(GlobalAppConfig.Format), theme)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(report.Generate(rec, opts))
	if err != nil {
		LogError("render failed", err)
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := checkInterrupt(ctx); err != nil {
		return err
	}
	return writeOutput(out, rendered)
}

// resolveClubArg picks the data file out of the positional arguments. pflag
// reads "--clubs iron stats.json" as a bare --clubs followed by two
// arguments, so a known category token next to the path becomes the filter.
func resolveClubArg(args []string, clubsSet bool, filter string) (path, clubFilter string, err error) {
	if len(args) == 1 {
		return args[0], filter, nil
	}

	bare := clubsSet && filter == golf.ClubCategoryAll
	switch {
	case bare && golf.IsClubCategory(args[0]):
		return args[1], strings.ToLower(args[0]), nil
	case bare && golf.IsClubCategory(args[1]):
		return args[0], strings.ToLower(args[1]), nil
	default:
		return "", "", fmt.Errorf("unexpected argument %q: only one data file is accepted", args[1])
	}
}
