package query

import (
	"math"
	"sort"
	"strconv"
)

// SexCount is one slice of the gender split.
type SexCount struct {
	Sex    string `json:"sex"`
	Medals int    `json:"medals"`
}

// GenderSplit counts the medal-bearing rows of the subset by sex,
// descending by count with stable ties.
func GenderSplit(s Subset) []SexCount {
	medals := MedalRows(s)

	index := make(map[string]int)
	out := make([]SexCount, 0, 2)
	for i := 0; i < medals.Len(); i++ {
		sex := medals.Row(i).Sex
		pos, ok := index[sex]
		if !ok {
			pos = len(out)
			index[sex] = pos
			out = append(out, SexCount{Sex: sex})
		}
		out[pos].Medals++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Medals > out[j].Medals
	})
	return out
}

// SummaryMetrics are the three headline numbers of a row set.
type SummaryMetrics struct {
	Athletes  int `json:"athletes"`  // distinct athlete identities
	Events    int `json:"events"`    // distinct event names
	MedalRows int `json:"medalRows"` // medal-bearing row count, NOT distinct medals
}

// Summary computes the headline metrics of a subset. MedalRows counts
// rows, so a team medal contributes once per athlete-row; the source
// defines "Total Medals" this way and the ambiguity is resolved in its
// favor rather than corrected.
func Summary(s Subset) SummaryMetrics {
	athletes := make(map[int]struct{})
	events := make(map[string]struct{})
	medalRows := 0
	for i := 0; i < s.Len(); i++ {
		r := s.Row(i)
		athletes[r.ID] = struct{}{}
		events[r.Event] = struct{}{}
		if r.Medal.Present() {
			medalRows++
		}
	}
	return SummaryMetrics{
		Athletes:  len(athletes),
		Events:    len(events),
		MedalRows: medalRows,
	}
}

// AgeBucket is one bar of the medalist age histogram.
type AgeBucket struct {
	Label string  `json:"label"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// AgeHistogram bins the ages of medal-bearing rows into the requested
// number of equal-width buckets. Rows with no recorded age are skipped.
// Empty input or bins <= 0 yields an empty histogram.
func AgeHistogram(s Subset, bins int) []AgeBucket {
	if bins <= 0 {
		return nil
	}

	medals := MedalRows(s)
	ages := make([]float64, 0, medals.Len())
	minAge, maxAge := math.Inf(1), math.Inf(-1)
	for i := 0; i < medals.Len(); i++ {
		age := medals.Row(i).Age
		if age <= 0 {
			continue
		}
		ages = append(ages, age)
		if age < minAge {
			minAge = age
		}
		if age > maxAge {
			maxAge = age
		}
	}
	if len(ages) == 0 {
		return nil
	}

	width := (maxAge - minAge) / float64(bins)
	if width == 0 {
		// All medalists share one age: a single bucket holds everything.
		return []AgeBucket{{
			Label: strconv.FormatFloat(minAge, 'f', -1, 64),
			From:  minAge,
			To:    maxAge,
			Count: len(ages),
		}}
	}

	out := make([]AgeBucket, bins)
	for b := range out {
		from := minAge + float64(b)*width
		out[b] = AgeBucket{
			Label: strconv.Itoa(int(math.Round(from))) + "-" + strconv.Itoa(int(math.Round(from+width))),
			From:  from,
			To:    from + width,
		}
	}
	for _, age := range ages {
		b := int((age - minAge) / width)
		if b >= bins {
			b = bins - 1 // the max value lands in the last bucket
		}
		out[b].Count++
	}
	return out
}
