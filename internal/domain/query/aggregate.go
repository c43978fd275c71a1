package query

import "fmt"

// ViewKind tags one of the fixed aggregate views the dashboard renders.
// The string values double as URL path segments.
type ViewKind string

// The fixed view menu.
const (
	ViewMedalTally    ViewKind = "tally"
	ViewTopAthletes   ViewKind = "top-athletes"
	ViewTopSports     ViewKind = "top-sports"
	ViewParticipation ViewKind = "participation"
	ViewMedalTrend    ViewKind = "medal-trend"
	ViewSportPivot    ViewKind = "sport-pivot"
	ViewGenderSplit   ViewKind = "gender-split"
	ViewAgeHistogram  ViewKind = "age-histogram"
)

// ViewKinds lists every kind AggregateFor accepts, in menu order.
func ViewKinds() []ViewKind {
	return []ViewKind{
		ViewMedalTally,
		ViewTopAthletes,
		ViewTopSports,
		ViewParticipation,
		ViewMedalTrend,
		ViewSportPivot,
		ViewGenderSplit,
		ViewAgeHistogram,
	}
}

// ParseViewKind validates a raw kind string.
func ParseViewKind(raw string) (ViewKind, error) {
	for _, k := range ViewKinds() {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, raw)
}

// Options tune the presentation slice of a view, not its semantics.
type Options struct {
	// TopN truncates ranking views; <= 0 keeps everything.
	TopN int
	// Bins sets the age histogram bucket count.
	Bins int
}

// View is the result union of AggregateFor. Exactly one payload field
// is populated, matching Kind.
type View struct {
	Kind    ViewKind    `json:"kind"`
	Tally   []TallyRow  `json:"tally,omitempty"`
	Top     []TopEntry  `json:"top,omitempty"`
	Grid    *Grid       `json:"grid,omitempty"`
	Split   []SexCount  `json:"split,omitempty"`
	Buckets []AgeBucket `json:"buckets,omitempty"`
}

// AggregateFor dispatches one of the fixed aggregate views over a
// subset. Every per-chart recompute path in the dashboard funnels
// through here instead of duplicating near-identical blocks per view.
func AggregateFor(s Subset, kind ViewKind, opts Options) (View, error) {
	v := View{Kind: kind}
	switch kind {
	case ViewMedalTally:
		tally := MedalTally(s)
		if opts.TopN > 0 && len(tally) > opts.TopN {
			tally = tally[:opts.TopN]
		}
		v.Tally = tally
	case ViewTopAthletes:
		v.Top = TopEntities(s, KeyAthlete, opts.TopN)
	case ViewTopSports:
		v.Top = TopEntities(s, KeySport, opts.TopN)
	case ViewParticipation:
		grid := YearlyCount(s, KeySex)
		v.Grid = &grid
	case ViewMedalTrend:
		grid := YearlyCount(MedalRows(s), KeyTotal)
		v.Grid = &grid
	case ViewSportPivot:
		grid := SportMedalPivot(s)
		v.Grid = &grid
	case ViewGenderSplit:
		v.Split = GenderSplit(s)
	case ViewAgeHistogram:
		v.Buckets = AgeHistogram(s, opts.Bins)
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownView, kind)
	}
	return v, nil
}
