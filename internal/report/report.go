// Package report assembles the selected metrics of a performance record and
// renders them as text, JSON or YAML.
package report

import (
	"slices"

	"github.com/josephgoksu/golfstats/internal/golf"
)

// Report is the metrics selected by a set of Options. Sections that were not
// selected are nil; Sections lists the selected ones in render order.
type Report struct {
	Sections []Section

	Summary       *golf.Summary
	StrokesGained *golf.StrokesGainedAnalysis
	Clubs         []golf.Club
	ClubFilter    string
	Scoring       *golf.ScoringSummary
	Putting       *golf.PuttingSummary
	Approach      *golf.ApproachSummary
	RecentRounds  []golf.Round
	RoundLimit    int
}

// Has reports whether s was selected.
func (r Report) Has(s Section) bool {
	return slices.Contains(r.Sections, s)
}

// Generate computes the sections opts selects. It is pure: the same record
// and options always give the same report.
func Generate(rec golf.PerformanceRecord, opts Options) Report {
	r := Report{
		Sections:   opts.Sections(),
		ClubFilter: opts.ClubFilter,
		RoundLimit: opts.RoundLimit,
	}
	if r.ClubFilter == "" {
		r.ClubFilter = golf.ClubCategoryAll
	}

	for _, s := range r.Sections {
		switch s {
		case SectionSummary:
			summary := golf.Summarize(rec)
			r.Summary = &summary
		case SectionStrokesGained:
			sg := golf.AnalyzeStrokesGained(rec.StrokesGained)
			r.StrokesGained = &sg
		case SectionClubs:
			r.Clubs = golf.FilterClubs(rec.Clubs, r.ClubFilter)
		case SectionScoring:
			scoring := golf.SummarizeScoring(rec.Scoring)
			r.Scoring = &scoring
		case SectionPutting:
			putting := golf.SummarizePutting(rec.Putting, rec.TotalRounds)
			r.Putting = &putting
		case SectionApproach:
			approach := golf.SummarizeApproach(rec.Approach)
			r.Approach = &approach
		case SectionRecentRounds:
			r.RecentRounds = golf.RecentRounds(rec.Rounds, opts.RoundLimit)
			if r.RecentRounds == nil {
				r.RecentRounds = []golf.Round{}
			}
		}
	}
	return r
}
