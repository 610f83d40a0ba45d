package golf

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// maxExactInt is the largest magnitude a float64 holds without rounding.
const maxExactInt = 1 << 53

// Issue records a field that was defaulted or an entry that was skipped
// while normalizing. Issues never affect the produced record beyond that.
type Issue struct {
	Path   string
	Reason string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Reason
}

// Normalize turns any decoded JSON value into a fully defaulted record.
// It never fails: missing keys take their defaults, wrong-typed fields are
// coerced when that is safe and defaulted otherwise, and malformed club or
// round entries are dropped one by one.
func Normalize(v any) (PerformanceRecord, []Issue) {
	var issues []Issue
	root := newFields(v, "", &issues)

	rec := PerformanceRecord{
		Golfer:      root.text("golfer", UnknownName),
		LastFetched: root.text("last_fetched", ""),
		TotalShots:  max(root.integer("total_shots", 0), 0),
		TotalRounds: max(root.integer("total_rounds", 0), 0),
		LongestShot: root.float("longest_shot", 0),
	}

	sg := root.object("strokes_gained")
	rec.StrokesGained = StrokesGained{
		Overall:   sg.float("overall", 0),
		Driving:   sg.float("driving", 0),
		Approach:  sg.float("approach", 0),
		ShortGame: sg.float("short_game", 0),
		Putting:   sg.float("putting", 0),
	}

	sc := root.object("scoring")
	rec.Scoring = Scoring{
		Par3Avg:       sc.float("par3_avg", 0),
		Par4Avg:       sc.float("par4_avg", 0),
		Par5Avg:       sc.float("par5_avg", 0),
		BirdiesPct:    sc.float("birdies_pct", 0),
		ParsPct:       sc.float("pars_pct", 0),
		BogeysPct:     sc.float("bogeys_pct", 0),
		DoublePlusPct: sc.float("double_plus_pct", 0),
	}

	pt := root.object("putting")
	rec.Putting = PuttingStats{
		TotalPutts:    pt.stat("total_putts"),
		PuttsPerRound: pt.stat("putts_per_round"),
		PuttsPerHole:  pt.stat("putts_per_hole"),
		PuttsPerGIR:   pt.stat("putts_per_gir"),
		OnePuttPct:    pt.stat("one_putt_pct"),
		TwoPuttPct:    pt.stat("two_putt_pct"),
		ThreePuttPct:  pt.stat("three_plus_putt_pct"),
		SGByDistance:  labeled(pt.object("sg_by_distance")),
	}
	if !rec.Putting.ThreePuttPct.OK {
		rec.Putting.ThreePuttPct = pt.stat("three_putt_pct")
	}

	ap := root.object("approach")
	rec.Approach = ApproachStats{
		GIRPct:           ap.stat("gir_pct"),
		GIRPerRound:      ap.stat("gir_per_round"),
		MissDistribution: labeled(ap.object("distribution")),
		SGByDistance:     labeled(ap.object("sg_by_distance")),
		SGByTerrain:      labeled(ap.object("sg_by_terrain")),
	}

	rec.HandicapBreakdown = labeled(root.object("handicap_breakdown"))

	for i, entry := range root.list("clubs") {
		if club, ok := normalizeClub(entry, fmt.Sprintf("clubs[%d]", i), &issues); ok {
			rec.Clubs = append(rec.Clubs, club)
		}
	}
	for i, entry := range root.list("recent_rounds") {
		if round, ok := normalizeRound(entry, fmt.Sprintf("recent_rounds[%d]", i), &issues); ok {
			rec.Rounds = append(rec.Rounds, round)
		}
	}

	return rec, issues
}

// labeled reads every key of a label-to-number object, sorted by label.
// Values that are not numbers stay as unknown entries.
func labeled(f *fields) []LabeledStat {
	labels := make([]string, 0, len(f.obj))
	for k := range f.obj {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	entries := make([]LabeledStat, 0, len(labels))
	for _, label := range labels {
		entries = append(entries, LabeledStat{Label: label, Value: f.stat(label)})
	}
	return entries
}

// normalizeClub reads one clubs[] entry. Entries that are not objects, or
// that carry a value which cannot be read as a number, are skipped.
func normalizeClub(v any, path string, issues *[]Issue) (Club, bool) {
	var bad []Issue
	f, ok := entryFields(v, path, &bad, issues)
	if !ok {
		return Club{}, false
	}

	club := Club{
		Name:          f.text("club", UnknownName),
		AvgDistance:   f.float("avg_distance", 0),
		SmartDistance: f.stat("smart_distance"),
		Longest:       f.float("longest", 0),
		TotalShots:    max(f.integer("total_shots", 0), 0),
	}
	if len(bad) > 0 {
		*issues = append(*issues, Issue{Path: bad[0].Path, Reason: "entry skipped: " + bad[0].Reason})
		return Club{}, false
	}
	return club, true
}

func normalizeRound(v any, path string, issues *[]Issue) (Round, bool) {
	var bad []Issue
	f, ok := entryFields(v, path, &bad, issues)
	if !ok {
		return Round{}, false
	}

	round := Round{
		Date:    f.text("date", UnknownName),
		Course:  f.text("course", UnknownName),
		Score:   f.integer("score", 0),
		OverPar: f.integer("over_par", 0),
	}
	if len(bad) > 0 {
		*issues = append(*issues, Issue{Path: bad[0].Path, Reason: "entry skipped: " + bad[0].Reason})
		return Round{}, false
	}
	return round, true
}

func entryFields(v any, path string, bad, issues *[]Issue) (*fields, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		*issues = append(*issues, Issue{Path: path, Reason: "entry skipped: expected an object, got " + describe(v)})
		return nil, false
	}
	return &fields{obj: obj, path: path, issues: bad}, true
}

// fields reads typed values out of one decoded JSON object. Problems are
// appended to issues; reads on a nil object return defaults.
type fields struct {
	obj    map[string]any
	path   string
	issues *[]Issue
}

func newFields(v any, path string, issues *[]Issue) *fields {
	f := &fields{path: path, issues: issues}
	switch obj := v.(type) {
	case map[string]any:
		f.obj = obj
	case nil:
	default:
		f.report("", "expected an object, got "+describe(v))
	}
	return f
}

func (f *fields) keyPath(key string) string {
	if f.path == "" {
		return key
	}
	if key == "" {
		return f.path
	}
	return f.path + "." + key
}

func (f *fields) report(key, reason string) {
	path := f.keyPath(key)
	if path == "" {
		path = "$"
	}
	*f.issues = append(*f.issues, Issue{Path: path, Reason: reason})
}

// lookup returns the raw value for key, treating JSON null as absent.
func (f *fields) lookup(key string) (any, bool) {
	raw, ok := f.obj[key]
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}

func (f *fields) object(key string) *fields {
	raw, ok := f.lookup(key)
	if !ok {
		return &fields{path: f.keyPath(key), issues: f.issues}
	}
	return newFields(raw, f.keyPath(key), f.issues)
}

func (f *fields) list(key string) []any {
	raw, ok := f.lookup(key)
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		f.report(key, "expected an array, got "+describe(raw))
		return nil
	}
	return items
}

// number is lookup for numeric fields: blank strings count as absent.
func (f *fields) number(key string) (any, bool) {
	raw, ok := f.lookup(key)
	if s, isStr := raw.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return raw, ok
}

func (f *fields) stat(key string) Stat {
	raw, ok := f.number(key)
	if !ok {
		return Stat{}
	}
	v, err := toFloat(raw)
	if err != nil {
		f.report(key, err.Error())
		return Stat{}
	}
	return Known(v)
}

func (f *fields) float(key string, def float64) float64 {
	if s := f.stat(key); s.OK {
		return s.Value
	}
	return def
}

func (f *fields) integer(key string, def int) int {
	raw, ok := f.number(key)
	if !ok {
		return def
	}
	v, err := toFloat(raw)
	if err != nil {
		f.report(key, err.Error())
		return def
	}
	if v != math.Trunc(v) || math.Abs(v) > maxExactInt {
		f.report(key, fmt.Sprintf("%v is not a whole number", raw))
		return def
	}
	return int(v)
}

// text reads a string field. Numbers are accepted and printed as-is; blank
// strings fall back to def.
func (f *fields) text(key, def string) string {
	raw, ok := f.lookup(key)
	if !ok {
		return def
	}
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case float64, int, int64:
		s = cast.ToString(v)
	default:
		f.report(key, "expected a string, got "+describe(raw))
		return def
	}
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// toFloat converts numbers and numeric strings. Booleans, containers and
// non-finite values are rejected.
func toFloat(raw any) (float64, error) {
	var (
		v   float64
		err error
	)
	switch x := raw.(type) {
	case json.Number:
		v, err = cast.ToFloat64E(string(x))
	case string:
		v, err = cast.ToFloat64E(strings.TrimSpace(x))
	case float64, float32, int, int64, int32:
		v, err = cast.ToFloat64E(x)
	default:
		return 0, fmt.Errorf("expected a number, got %s", describe(raw))
	}
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", fmt.Sprint(raw))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%v is not a finite number", raw)
	}
	return v, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
