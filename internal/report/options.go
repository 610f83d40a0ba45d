package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Section names a report section. The values are the JSON keys.
type Section string

const (
	SectionSummary       Section = "summary"
	SectionStrokesGained Section = "strokes_gained"
	SectionClubs         Section = "clubs"
	SectionScoring       Section = "scoring"
	SectionPutting       Section = "putting"
	SectionApproach      Section = "approach"
	SectionRecentRounds  Section = "recent_rounds"
)

// SectionOrder is the fixed order sections are rendered in.
var SectionOrder = []Section{
	SectionSummary,
	SectionStrokesGained,
	SectionClubs,
	SectionScoring,
	SectionPutting,
	SectionApproach,
	SectionRecentRounds,
}

// AllRounds as RoundLimit shows every stored round.
const AllRounds = -1

// Options selects what a report contains. The section flags are independent;
// when none is set, or Full is set, every section is included.
type Options struct {
	Summary       bool
	StrokesGained bool
	Clubs         bool
	Scoring       bool
	Putting       bool
	Approach      bool
	RecentRounds  bool
	Full          bool

	// ClubFilter narrows the clubs section by case-insensitive substring.
	ClubFilter string `validate:"max=64"`
	// RoundLimit caps the recent-rounds section; AllRounds means no cap.
	RoundLimit int `validate:"min=-1"`
}

// DefaultOptions renders everything.
func DefaultOptions() Options {
	return Options{RoundLimit: AllRounds}
}

var validate = validator.New()

// Validate checks the option values.
func (o Options) Validate() error {
	err := validate.Struct(o)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		return fmt.Errorf("invalid option %s: %v does not satisfy %s", fe.Field(), fe.Value(), constraint)
	}
	return err
}

// narrowed reports whether any section flag is set.
func (o Options) narrowed() bool {
	return o.Summary || o.StrokesGained || o.Clubs || o.Scoring ||
		o.Putting || o.Approach || o.RecentRounds
}

// Sections lists the selected sections in render order.
func (o Options) Sections() []Section {
	all := o.Full || !o.narrowed()
	selected := map[Section]bool{
		SectionSummary:       o.Summary,
		SectionStrokesGained: o.StrokesGained,
		SectionClubs:         o.Clubs,
		SectionScoring:       o.Scoring,
		SectionPutting:       o.Putting,
		SectionApproach:      o.Approach,
		SectionRecentRounds:  o.RecentRounds,
	}

	out := make([]Section, 0, len(SectionOrder))
	for _, s := range SectionOrder {
		if all || selected[s] {
			out = append(out, s)
		}
	}
	return out
}

// String is used in debug logs.
func (o Options) String() string {
	names := make([]string, 0, len(SectionOrder))
	for _, s := range o.Sections() {
		names = append(names, string(s))
	}
	return fmt.Sprintf("sections=[%s] clubs=%q rounds=%d", strings.Join(names, ","), o.ClubFilter, o.RoundLimit)
}
