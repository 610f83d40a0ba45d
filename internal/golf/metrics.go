package golf

import (
	"slices"
	"sort"
	"strings"
)

// PriorityLimit is how many improvement areas are ranked as priorities.
const PriorityLimit = 3

// ClubCategoryAll selects every club.
const ClubCategoryAll = "all"

// ClubCategories are the documented club filter tokens. Other tokens are
// still matched as substrings.
var ClubCategories = []string{ClubCategoryAll, "iron", "wedge", "wood", "driver", "putter", "hybrid"}

// IsClubCategory reports whether s is one of ClubCategories, ignoring case.
func IsClubCategory(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return slices.Contains(ClubCategories, s)
}

// CategoryValue pairs a strokes-gained category with its value.
type CategoryValue struct {
	Category Category
	Value    float64
}

// StrokesGainedAnalysis is the ranked strokes-gained breakdown.
type StrokesGainedAnalysis struct {
	Overall    float64
	ByCategory []CategoryValue
	// Strengths are the positive categories in reporting order.
	Strengths []CategoryValue
	// Improvements are the negative categories, most negative first.
	Improvements []CategoryValue
	// Priorities is the head of Improvements, at most PriorityLimit long.
	Priorities []CategoryValue
}

// AnalyzeStrokesGained ranks the four categories. Equal values keep the
// order of Categories.
func AnalyzeStrokesGained(sg StrokesGained) StrokesGainedAnalysis {
	a := StrokesGainedAnalysis{
		Overall:      sg.Overall,
		ByCategory:   make([]CategoryValue, 0, len(Categories)),
		Strengths:    []CategoryValue{},
		Improvements: []CategoryValue{},
	}
	for _, c := range Categories {
		cv := CategoryValue{Category: c, Value: sg.Value(c)}
		a.ByCategory = append(a.ByCategory, cv)
		switch {
		case cv.Value > 0:
			a.Strengths = append(a.Strengths, cv)
		case cv.Value < 0:
			a.Improvements = append(a.Improvements, cv)
		}
	}

	sort.SliceStable(a.Improvements, func(i, j int) bool {
		return a.Improvements[i].Value < a.Improvements[j].Value
	})
	a.Priorities = slices.Clone(a.Improvements[:min(PriorityLimit, len(a.Improvements))])
	return a
}

// FilterClubs returns the clubs whose name contains category, ignoring case.
// "all" or an empty category returns every club. Input order is kept.
func FilterClubs(clubs []Club, category string) []Club {
	needle := strings.ToLower(strings.TrimSpace(category))
	out := make([]Club, 0, len(clubs))
	for _, c := range clubs {
		if needle == "" || needle == ClubCategoryAll || strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// ScoringSummary is the scoring section: per-par averages, the score
// distribution and the derived under/at/over-par split, all in percent.
type ScoringSummary struct {
	Par3Avg       float64
	Par4Avg       float64
	Par5Avg       float64
	BirdiesPct    float64
	ParsPct       float64
	BogeysPct     float64
	DoublePlusPct float64
	UnderParPct   float64
	AtParPct      float64
	OverParPct    float64
}

// SummarizeScoring passes the scoring figures through and adds tendencies.
func SummarizeScoring(s Scoring) ScoringSummary {
	return ScoringSummary{
		Par3Avg:       s.Par3Avg,
		Par4Avg:       s.Par4Avg,
		Par5Avg:       s.Par5Avg,
		BirdiesPct:    s.BirdiesPct,
		ParsPct:       s.ParsPct,
		BogeysPct:     s.BogeysPct,
		DoublePlusPct: s.DoublePlusPct,
		UnderParPct:   s.BirdiesPct,
		AtParPct:      s.ParsPct,
		OverParPct:    s.BogeysPct + s.DoublePlusPct,
	}
}

// PuttingSummary is the putting section. Unknown figures stay unavailable.
type PuttingSummary struct {
	PuttsPerRound Stat
	PuttsPerHole  Stat
	PuttsPerGIR   Stat
	OnePuttPct    Stat
	TwoPuttPct    Stat
	ThreePuttPct  Stat
	SGByDistance  []LabeledStat
}

// SummarizePutting derives putts per round from the putts total when the
// round count is positive, falling back to the exported per-round figure.
// With no rounds, putts per round is unavailable.
func SummarizePutting(p PuttingStats, totalRounds int) PuttingSummary {
	s := PuttingSummary{
		PuttsPerHole: p.PuttsPerHole,
		PuttsPerGIR:  p.PuttsPerGIR,
		OnePuttPct:   p.OnePuttPct,
		TwoPuttPct:   p.TwoPuttPct,
		ThreePuttPct: p.ThreePuttPct,
		SGByDistance: slices.Clone(p.SGByDistance),
	}
	if totalRounds > 0 {
		switch {
		case p.TotalPutts.OK:
			s.PuttsPerRound = Known(p.TotalPutts.Value / float64(totalRounds))
		case p.PuttsPerRound.OK:
			s.PuttsPerRound = p.PuttsPerRound
		}
	}
	return s
}

// ApproachSummary is the approach section.
type ApproachSummary struct {
	GIRPct           Stat
	GIRPerRound      Stat
	MissDistribution []LabeledStat
	SGByDistance     []LabeledStat
	SGByTerrain      []LabeledStat
}

// SummarizeApproach passes the approach figures and breakdowns through.
func SummarizeApproach(a ApproachStats) ApproachSummary {
	return ApproachSummary{
		GIRPct:           a.GIRPct,
		GIRPerRound:      a.GIRPerRound,
		MissDistribution: slices.Clone(a.MissDistribution),
		SGByDistance:     slices.Clone(a.SGByDistance),
		SGByTerrain:      slices.Clone(a.SGByTerrain),
	}
}

// RecentRounds returns the first n rounds in stored order, which is taken to
// be most recent first. A negative n, or one past the end, returns them all.
func RecentRounds(rounds []Round, n int) []Round {
	if n < 0 || n > len(rounds) {
		n = len(rounds)
	}
	return slices.Clone(rounds[:n:n])
}

// Summary is the report header.
type Summary struct {
	Golfer               string
	LastFetched          string
	TotalShots           int
	TotalRounds          int
	LongestShot          float64
	OverallStrokesGained float64
	HandicapBreakdown    []LabeledStat
}

// Summarize builds the header from the record.
func Summarize(rec PerformanceRecord) Summary {
	return Summary{
		Golfer:               rec.Golfer,
		LastFetched:          rec.LastFetched,
		TotalShots:           rec.TotalShots,
		TotalRounds:          rec.TotalRounds,
		LongestShot:          rec.LongestShot,
		OverallStrokesGained: rec.StrokesGained.Overall,
		HandicapBreakdown:    slices.Clone(rec.HandicapBreakdown),
	}
}
