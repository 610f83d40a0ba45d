// Package golf holds the normalized performance record read from an Arccos
// export and the pure metric functions computed over it.
package golf

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownName is used wherever a name-like field is missing or blank.
const UnknownName = "Unknown"

// Stat is an optional statistic. OK is false when the source did not supply
// a usable value, which is different from a known zero.
type Stat struct {
	Value float64
	OK    bool
}

// Known wraps an available value.
func Known(v float64) Stat {
	return Stat{Value: v, OK: true}
}

// Ptr returns nil for an unavailable stat.
func (s Stat) Ptr() *float64 {
	if !s.OK {
		return nil
	}
	v := s.Value
	return &v
}

// Category is a strokes-gained category.
type Category string

const (
	Driving   Category = "driving"
	Approach  Category = "approach"
	ShortGame Category = "short_game"
	Putting   Category = "putting"
)

// Categories lists the strokes-gained categories in reporting order.
// Ranking ties are broken by this order.
var Categories = []Category{Driving, Approach, ShortGame, Putting}

// Title returns the display name, e.g. "Short Game".
func (c Category) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}

// StrokesGained is the per-category strokes-gained breakdown.
// Negative values are worse than the baseline.
type StrokesGained struct {
	Overall   float64
	Driving   float64
	Approach  float64
	ShortGame float64
	Putting   float64
}

// Value returns the value for one category.
func (sg StrokesGained) Value(c Category) float64 {
	switch c {
	case Driving:
		return sg.Driving
	case Approach:
		return sg.Approach
	case ShortGame:
		return sg.ShortGame
	case Putting:
		return sg.Putting
	default:
		return 0
	}
}

// Scoring holds per-par averages and the score distribution in percent.
type Scoring struct {
	Par3Avg       float64
	Par4Avg       float64
	Par5Avg       float64
	BirdiesPct    float64
	ParsPct       float64
	BogeysPct     float64
	DoublePlusPct float64
}

// PuttingStats holds the optional putting figures of the export.
type PuttingStats struct {
	TotalPutts    Stat
	PuttsPerRound Stat
	PuttsPerHole  Stat
	PuttsPerGIR   Stat
	OnePuttPct    Stat
	TwoPuttPct    Stat
	ThreePuttPct  Stat
	// SGByDistance is strokes gained per putt distance band, sorted by label.
	SGByDistance []LabeledStat
}

// ApproachStats holds the optional greens-in-regulation figures and the
// labelled approach breakdowns, each sorted by label.
type ApproachStats struct {
	GIRPct           Stat
	GIRPerRound      Stat
	MissDistribution []LabeledStat
	SGByDistance     []LabeledStat
	SGByTerrain      []LabeledStat
}

// LabeledStat is one entry of a label-to-number breakdown such as the
// handicap breakdown or strokes gained by distance.
type LabeledStat struct {
	Label string
	Value Stat
}

// Club is the distance summary for one club.
type Club struct {
	Name          string
	AvgDistance   float64
	SmartDistance Stat
	Longest       float64
	TotalShots    int
}

// Round is one played round. Score and OverPar are taken as given.
type Round struct {
	Date    string
	Course  string
	Score   int
	OverPar int
}

// PerformanceRecord is the fully defaulted view of an export. Every field is
// safe to read without further checks.
type PerformanceRecord struct {
	Golfer            string
	LastFetched       string // empty when not supplied
	TotalShots        int
	TotalRounds       int
	LongestShot       float64
	StrokesGained     StrokesGained
	Scoring           Scoring
	Putting           PuttingStats
	Approach          ApproachStats
	HandicapBreakdown []LabeledStat
	Clubs             []Club
	Rounds            []Round
}
