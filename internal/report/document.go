package report

import (
	"github.com/josephgoksu/golfstats/internal/golf"
)

// Document is the structured form of a Report. Only selected sections are
// present; unavailable figures are explicit nulls.
type Document struct {
	Summary       *SummaryDoc       `json:"summary,omitempty" yaml:"summary,omitempty"`
	StrokesGained *StrokesGainedDoc `json:"strokes_gained,omitempty" yaml:"strokes_gained,omitempty"`
	Clubs         *[]ClubDoc        `json:"clubs,omitempty" yaml:"clubs,omitempty"`
	Scoring       *ScoringDoc       `json:"scoring,omitempty" yaml:"scoring,omitempty"`
	Putting       *PuttingDoc       `json:"putting,omitempty" yaml:"putting,omitempty"`
	Approach      *ApproachDoc      `json:"approach,omitempty" yaml:"approach,omitempty"`
	RecentRounds  *[]RoundDoc       `json:"recent_rounds,omitempty" yaml:"recent_rounds,omitempty"`
}

// SummaryDoc is the summary section. LastFetched is null when unknown.
type SummaryDoc struct {
	Golfer               string              `json:"golfer" yaml:"golfer"`
	LastFetched          *string             `json:"last_fetched" yaml:"last_fetched"`
	TotalShots           int                 `json:"total_shots" yaml:"total_shots"`
	TotalRounds          int                 `json:"total_rounds" yaml:"total_rounds"`
	LongestShot          float64             `json:"longest_shot" yaml:"longest_shot"`
	OverallStrokesGained float64             `json:"overall_strokes_gained" yaml:"overall_strokes_gained"`
	HandicapBreakdown    map[string]*float64 `json:"handicap_breakdown" yaml:"handicap_breakdown"`
}

// StrokesGainedDoc is the strokes gained section.
type StrokesGainedDoc struct {
	Overall          float64            `json:"overall" yaml:"overall"`
	ByCategory       CategoriesDoc      `json:"by_category" yaml:"by_category"`
	Strengths        []CategoryValueDoc `json:"strengths" yaml:"strengths"`
	ImprovementAreas []CategoryValueDoc `json:"improvement_areas" yaml:"improvement_areas"`
	PriorityAreas    []string           `json:"priority_areas" yaml:"priority_areas"`
}

// CategoriesDoc keeps the categories in reporting order.
type CategoriesDoc struct {
	Driving   float64 `json:"driving" yaml:"driving"`
	Approach  float64 `json:"approach" yaml:"approach"`
	ShortGame float64 `json:"short_game" yaml:"short_game"`
	Putting   float64 `json:"putting" yaml:"putting"`
}

// CategoryValueDoc pairs a category name with its strokes gained.
type CategoryValueDoc struct {
	Category string  `json:"category" yaml:"category"`
	Value    float64 `json:"value" yaml:"value"`
}

// ClubDoc is one row of the clubs section.
type ClubDoc struct {
	Club          string   `json:"club" yaml:"club"`
	AvgDistance   float64  `json:"avg_distance" yaml:"avg_distance"`
	SmartDistance *float64 `json:"smart_distance" yaml:"smart_distance"`
	Longest       float64  `json:"longest" yaml:"longest"`
	TotalShots    int      `json:"total_shots" yaml:"total_shots"`
}

// ScoringDoc is the scoring section.
type ScoringDoc struct {
	ScoringAverages   ScoringAveragesDoc `json:"scoring_averages" yaml:"scoring_averages"`
	ScoreDistribution DistributionDoc    `json:"score_distribution" yaml:"score_distribution"`
	Tendencies        TendenciesDoc      `json:"tendencies" yaml:"tendencies"`
}

// ScoringAveragesDoc holds the average score per par.
type ScoringAveragesDoc struct {
	Par3 float64 `json:"par3_avg" yaml:"par3_avg"`
	Par4 float64 `json:"par4_avg" yaml:"par4_avg"`
	Par5 float64 `json:"par5_avg" yaml:"par5_avg"`
}

// DistributionDoc is the score distribution in percent.
type DistributionDoc struct {
	BirdiesPct    float64 `json:"birdies_pct" yaml:"birdies_pct"`
	ParsPct       float64 `json:"pars_pct" yaml:"pars_pct"`
	BogeysPct     float64 `json:"bogeys_pct" yaml:"bogeys_pct"`
	DoublePlusPct float64 `json:"double_plus_pct" yaml:"double_plus_pct"`
}

// TendenciesDoc groups the distribution into under, at and over par.
type TendenciesDoc struct {
	UnderParPct float64 `json:"under_par_pct" yaml:"under_par_pct"`
	AtParPct    float64 `json:"at_par_pct" yaml:"at_par_pct"`
	OverParPct  float64 `json:"over_par_pct" yaml:"over_par_pct"`
}

// PuttingDoc is the putting section. Unknown figures are null.
type PuttingDoc struct {
	PuttsPerRound *float64            `json:"putts_per_round" yaml:"putts_per_round"`
	PuttsPerHole  *float64            `json:"putts_per_hole" yaml:"putts_per_hole"`
	PuttsPerGIR   *float64            `json:"putts_per_gir" yaml:"putts_per_gir"`
	OnePuttPct    *float64            `json:"one_putt_pct" yaml:"one_putt_pct"`
	TwoPuttPct    *float64            `json:"two_putt_pct" yaml:"two_putt_pct"`
	ThreePuttPct  *float64            `json:"three_putt_pct" yaml:"three_putt_pct"`
	SGByDistance  map[string]*float64 `json:"strokes_gained_by_distance" yaml:"strokes_gained_by_distance"`
}

// ApproachDoc is the approach section. Unknown figures are null.
type ApproachDoc struct {
	GIRPct           *float64            `json:"gir_pct" yaml:"gir_pct"`
	GIRPerRound      *float64            `json:"gir_per_round" yaml:"gir_per_round"`
	MissDistribution map[string]*float64 `json:"miss_distribution" yaml:"miss_distribution"`
	SGByDistance     map[string]*float64 `json:"strokes_gained_by_distance" yaml:"strokes_gained_by_distance"`
	SGByTerrain      map[string]*float64 `json:"strokes_gained_by_terrain" yaml:"strokes_gained_by_terrain"`
}

// RoundDoc is one row of the recent rounds section.
type RoundDoc struct {
	Date    string `json:"date" yaml:"date"`
	Course  string `json:"course" yaml:"course"`
	Score   int    `json:"score" yaml:"score"`
	OverPar int    `json:"over_par" yaml:"over_par"`
}

// NewDocument converts a report to its structured form.
func NewDocument(r Report) Document {
	var d Document

	if s := r.Summary; s != nil {
		doc := SummaryDoc{
			Golfer:               s.Golfer,
			TotalShots:           s.TotalShots,
			TotalRounds:          s.TotalRounds,
			LongestShot:          s.LongestShot,
			OverallStrokesGained: s.OverallStrokesGained,
			HandicapBreakdown:    labeledMap(s.HandicapBreakdown),
		}
		if s.LastFetched != "" {
			fetched := s.LastFetched
			doc.LastFetched = &fetched
		}
		d.Summary = &doc
	}

	if sg := r.StrokesGained; sg != nil {
		doc := StrokesGainedDoc{
			Overall:          sg.Overall,
			Strengths:        categoryValues(sg.Strengths),
			ImprovementAreas: categoryValues(sg.Improvements),
			PriorityAreas:    make([]string, 0, len(sg.Priorities)),
		}
		for _, cv := range sg.ByCategory {
			switch cv.Category {
			case golf.Driving:
				doc.ByCategory.Driving = cv.Value
			case golf.Approach:
				doc.ByCategory.Approach = cv.Value
			case golf.ShortGame:
				doc.ByCategory.ShortGame = cv.Value
			case golf.Putting:
				doc.ByCategory.Putting = cv.Value
			}
		}
		for _, cv := range sg.Priorities {
			doc.PriorityAreas = append(doc.PriorityAreas, string(cv.Category))
		}
		d.StrokesGained = &doc
	}

	if r.Has(SectionClubs) {
		clubs := make([]ClubDoc, 0, len(r.Clubs))
		for _, c := range r.Clubs {
			clubs = append(clubs, ClubDoc{
				Club:          c.Name,
				AvgDistance:   c.AvgDistance,
				SmartDistance: c.SmartDistance.Ptr(),
				Longest:       c.Longest,
				TotalShots:    c.TotalShots,
			})
		}
		d.Clubs = &clubs
	}

	if s := r.Scoring; s != nil {
		d.Scoring = &ScoringDoc{
			ScoringAverages: ScoringAveragesDoc{Par3: s.Par3Avg, Par4: s.Par4Avg, Par5: s.Par5Avg},
			ScoreDistribution: DistributionDoc{
				BirdiesPct:    s.BirdiesPct,
				ParsPct:       s.ParsPct,
				BogeysPct:     s.BogeysPct,
				DoublePlusPct: s.DoublePlusPct,
			},
			Tendencies: TendenciesDoc{
				UnderParPct: s.UnderParPct,
				AtParPct:    s.AtParPct,
				OverParPct:  s.OverParPct,
			},
		}
	}

	if p := r.Putting; p != nil {
		d.Putting = &PuttingDoc{
			PuttsPerRound: p.PuttsPerRound.Ptr(),
			PuttsPerHole:  p.PuttsPerHole.Ptr(),
			PuttsPerGIR:   p.PuttsPerGIR.Ptr(),
			OnePuttPct:    p.OnePuttPct.Ptr(),
			TwoPuttPct:    p.TwoPuttPct.Ptr(),
			ThreePuttPct:  p.ThreePuttPct.Ptr(),
			SGByDistance:  labeledMap(p.SGByDistance),
		}
	}

	if a := r.Approach; a != nil {
		d.Approach = &ApproachDoc{
			GIRPct:           a.GIRPct.Ptr(),
			GIRPerRound:      a.GIRPerRound.Ptr(),
			MissDistribution: labeledMap(a.MissDistribution),
			SGByDistance:     labeledMap(a.SGByDistance),
			SGByTerrain:      labeledMap(a.SGByTerrain),
		}
	}

	if r.Has(SectionRecentRounds) {
		rounds := make([]RoundDoc, 0, len(r.RecentRounds))
		for _, rd := range r.RecentRounds {
			rounds = append(rounds, RoundDoc{
				Date:    rd.Date,
				Course:  rd.Course,
				Score:   rd.Score,
				OverPar: rd.OverPar,
			})
		}
		d.RecentRounds = &rounds
	}

	return d
}

// labeledMap is never nil so empty breakdowns encode as {}.
func labeledMap(entries []golf.LabeledStat) map[string]*float64 {
	m := make(map[string]*float64, len(entries))
	for _, e := range entries {
		m[e.Label] = e.Value.Ptr()
	}
	return m
}

func categoryValues(values []golf.CategoryValue) []CategoryValueDoc {
	out := make([]CategoryValueDoc, 0, len(values))
	for _, cv := range values {
		out = append(out, CategoryValueDoc{Category: string(cv.Category), Value: cv.Value})
	}
	return out
}
