package report

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/golfstats/internal/golf"
	"github.com/josephgoksu/golfstats/internal/ui"
)

const (
	bannerTitle = "🏌️ Golf Performance Report"
	bannerWidth = 40
	ruleWidth   = 30

	// Long course names are cut to keep the rounds table narrow. Club
	// names are always shown in full.
	maxCellWidth = 32
)

// TextRenderer renders the human-readable report.
type TextRenderer struct {
	Theme ui.Theme
}

// Render returns the report text. Sections are separated by a blank line
// and the output ends with a newline.
func (t *TextRenderer) Render(r Report) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(t.Theme.Banner.Render(bannerTitle) + "\n")
	sb.WriteString(t.Theme.Subtle.Render(strings.Repeat("=", bannerWidth)) + "\n")

	for _, s := range r.Sections {
		var body string
		switch s {
		case SectionSummary:
			body = t.summary(r.Summary)
		case SectionStrokesGained:
			body = t.strokesGained(r.StrokesGained)
		case SectionClubs:
			body = t.clubs(r.Clubs, r.ClubFilter)
		case SectionScoring:
			body = t.scoring(r.Scoring)
		case SectionPutting:
			body = t.putting(r.Putting)
		case SectionApproach:
			body = t.approach(r.Approach)
		case SectionRecentRounds:
			body = t.recentRounds(r.RecentRounds)
		}
		if body == "" {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(body)
	}

	return []byte(sb.String()), nil
}

func (t *TextRenderer) heading(title string) string {
	return t.Theme.Section.Render(title) + "\n" +
		t.Theme.Subtle.Render(strings.Repeat("-", ruleWidth)) + "\n"
}

func (t *TextRenderer) line(label, value string) string {
	return t.Theme.Label.Render(label+":") + " " + t.Theme.Text.Render(value) + "\n"
}

// bullet renders an indented list item.
func (t *TextRenderer) bullet(marker, text string) string {
	return "  " + marker + " " + text + "\n"
}

func (t *TextRenderer) indent(text string) string {
	return "  " + text + "\n"
}

func (t *TextRenderer) summary(s *golf.Summary) string {
	if s == nil {
		return ""
	}
	lastFetched := s.LastFetched
	if lastFetched == "" {
		lastFetched = NotAvailable
	}

	var sb strings.Builder
	sb.WriteString(t.heading("📋 SUMMARY"))
	sb.WriteString(t.line("Golfer", s.Golfer))
	sb.WriteString(t.line("Last Updated", lastFetched))
	sb.WriteString(t.line("Total Shots Tracked", count(s.TotalShots)))
	sb.WriteString(t.line("Total Rounds", count(s.TotalRounds)))
	sb.WriteString(t.line("Longest Shot", distance(s.LongestShot)+" yards"))
	sb.WriteString(t.line("Overall Strokes Gained", signed(s.OverallStrokesGained)))
	sb.WriteString(t.breakdown("Handicap Breakdown", s.HandicapBreakdown, statDecimal))
	return sb.String()
}

// breakdown renders a labelled list under title. Empty lists render nothing.
func (t *TextRenderer) breakdown(title string, entries []golf.LabeledStat, format func(golf.Stat) string) string {
	if len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.Theme.Label.Render(title+":") + "\n")
	for _, e := range entries {
		sb.WriteString(t.bullet("•", e.Label+": "+format(e.Value)))
	}
	return sb.String()
}

func (t *TextRenderer) strokesGained(a *golf.StrokesGainedAnalysis) string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(t.heading("📊 STROKES GAINED ANALYSIS"))
	sb.WriteString(t.line("Overall", signed(a.Overall)))
	for _, cv := range a.ByCategory {
		sb.WriteString(t.line(cv.Category.Title(), t.styledSigned(cv.Value)))
	}

	if len(a.Strengths) > 0 {
		sb.WriteString("\n" + t.Theme.Good.Render("💪 Strengths:") + "\n")
		for _, cv := range a.Strengths {
			sb.WriteString(t.bullet("•", fmt.Sprintf("%s: %s", cv.Category.Title(), signed(cv.Value))))
		}
	}
	if len(a.Improvements) > 0 {
		sb.WriteString("\n" + t.Theme.Warn.Render("⚠️ Areas for Improvement:") + "\n")
		for _, cv := range a.Improvements {
			sb.WriteString(t.bullet("•", fmt.Sprintf("%s: %s", cv.Category.Title(), signed(cv.Value))))
		}
	}
	if len(a.Priorities) > 0 {
		sb.WriteString("\n" + t.Theme.Warn.Render("🎯 Priority Areas:") + "\n")
		for i, cv := range a.Priorities {
			sb.WriteString(t.bullet(fmt.Sprintf("%d.", i+1), cv.Category.Title()))
		}
	}
	return sb.String()
}

func (t *TextRenderer) styledSigned(v float64) string {
	switch {
	case v > 0:
		return t.Theme.Good.Render(signed(v))
	case v < 0:
		return t.Theme.Bad.Render(signed(v))
	default:
		return signed(v)
	}
}

func (t *TextRenderer) clubs(clubs []golf.Club, filter string) string {
	title := "🏌️ CLUB DISTANCES"
	if filter != "" && filter != golf.ClubCategoryAll {
		title += fmt.Sprintf(" (%s)", strings.ToLower(filter))
	}

	var sb strings.Builder
	sb.WriteString(t.heading(title))
	if len(clubs) == 0 {
		if filter != "" && filter != golf.ClubCategoryAll {
			sb.WriteString(t.Theme.Subtle.Render(fmt.Sprintf("No clubs match %q.", filter)) + "\n")
		} else {
			sb.WriteString(t.Theme.Subtle.Render("No club data.") + "\n")
		}
		return sb.String()
	}

	table := &ui.Table{
		Headers:    []string{"Club", "Avg (yds)", "Smart", "Longest", "Shots"},
		AlignRight: []int{1, 2, 3, 4},
	}
	for _, c := range clubs {
		table.Rows = append(table.Rows, []string{
			c.Name,
			distance(c.AvgDistance),
			statDistance(c.SmartDistance),
			distance(c.Longest),
			count(c.TotalShots),
		})
	}
	sb.WriteString(table.Render(t.Theme))
	return sb.String()
}

func (t *TextRenderer) scoring(s *golf.ScoringSummary) string {
	if s == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(t.heading("⛳ SCORING ANALYSIS"))
	sb.WriteString(t.line("Par 3 Average", decimal(s.Par3Avg)))
	sb.WriteString(t.line("Par 4 Average", decimal(s.Par4Avg)))
	sb.WriteString(t.line("Par 5 Average", decimal(s.Par5Avg)))

	sb.WriteString("\n" + t.Theme.Label.Render("Score Distribution:") + "\n")
	sb.WriteString(t.indent("Birdies+: "+percent(s.BirdiesPct)))
	sb.WriteString(t.indent("Pars: "+percent(s.ParsPct)))
	sb.WriteString(t.indent("Bogeys: "+percent(s.BogeysPct)))
	sb.WriteString(t.indent("Double+: "+percent(s.DoublePlusPct)))

	sb.WriteString("\n" + t.Theme.Label.Render("Scoring Tendencies:") + "\n")
	sb.WriteString(t.indent("Under Par: "+percent(s.UnderParPct)))
	sb.WriteString(t.indent("At Par: "+percent(s.AtParPct)))
	sb.WriteString(t.indent("Over Par: "+percent(s.OverParPct)))
	return sb.String()
}

func (t *TextRenderer) putting(p *golf.PuttingSummary) string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(t.heading("⛳ PUTTING ANALYSIS"))
	sb.WriteString(t.line("Putts per Round", statDecimal(p.PuttsPerRound)))
	sb.WriteString(t.line("Putts per Hole", statDecimal(p.PuttsPerHole)))
	sb.WriteString(t.line("GIR Putts", statDecimal(p.PuttsPerGIR)))
	sb.WriteString(t.line("One-Putts", statPercent(p.OnePuttPct)))
	sb.WriteString(t.line("Two-Putts", statPercent(p.TwoPuttPct)))
	sb.WriteString(t.line("Three-Putts+", statPercent(p.ThreePuttPct)))
	sb.WriteString(t.breakdown("Strokes Gained by Distance", p.SGByDistance, statSigned))
	return sb.String()
}

func (t *TextRenderer) approach(a *golf.ApproachSummary) string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(t.heading("🎯 APPROACH ANALYSIS"))
	sb.WriteString(t.line("Greens in Regulation", statPercent(a.GIRPct)))
	sb.WriteString(t.line("GIR per Round", statDecimal(a.GIRPerRound)))
	sb.WriteString(t.breakdown("Miss Distribution", a.MissDistribution, statPercent))
	sb.WriteString(t.breakdown("Strokes Gained by Distance", a.SGByDistance, statSigned))
	sb.WriteString(t.breakdown("Strokes Gained by Terrain", a.SGByTerrain, statSigned))
	return sb.String()
}

func (t *TextRenderer) recentRounds(rounds []golf.Round) string {
	var sb strings.Builder
	sb.WriteString(t.heading("📈 RECENT ROUNDS"))
	if len(rounds) == 0 {
		sb.WriteString(t.Theme.Subtle.Render("No rounds recorded.") + "\n")
		return sb.String()
	}

	table := &ui.Table{
		Headers:    []string{"Date", "Score", "+/-", "Course"},
		MaxWidth:   maxCellWidth,
		Capped:     []int{3},
		AlignRight: []int{1, 2},
	}
	for _, rd := range rounds {
		table.Rows = append(table.Rows, []string{rd.Date, fmt.Sprintf("%d", rd.Score), overPar(rd.OverPar), rd.Course})
	}
	sb.WriteString(table.Render(t.Theme))
	return sb.String()
}
