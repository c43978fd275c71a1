package query_test

import (
	"sort"
	"testing"

	model "github.com/Arun1457/olympics-dashboard/internal/domain/model"
	query "github.com/Arun1457/olympics-dashboard/internal/domain/query"
	"github.com/smartystreets/goconvey/convey"
)

// medalHeavy builds a table with enough medal rows to exercise sorting,
// truncation and zero-filling.
func medalHeavy() query.Rows {
	rows := query.Rows{}
	add := func(id int, name, sex string, age float64, year int, region, sport string, medal model.Medal) {
		rows = append(rows, model.Record{
			ID: id, Name: name, Sex: sex, Age: age, Year: year,
			NOC: region, Region: region, Sport: sport,
			Event: sport + " event", Medal: medal,
		})
	}

	// USA: 3 medals. Germany: 2. Kenya: 1. Ties between Germany rows.
	add(1, "Alice", "F", 22, 2012, "USA", "Swimming", model.MedalGold)
	add(1, "Alice", "F", 26, 2016, "USA", "Swimming", model.MedalGold)
	add(2, "Bob", "M", 24, 2016, "USA", "Athletics", model.MedalSilver)
	add(3, "Greta", "F", 21, 2012, "Germany", "Rowing", model.MedalBronze)
	add(4, "Hans", "M", 29, 2016, "Germany", "Rowing", model.MedalBronze)
	add(5, "Kip", "M", 27, 2016, "Kenya", "Athletics", model.MedalGold)
	// Participation-only rows.
	add(6, "Paula", "F", 0, 2012, "USA", "Swimming", model.MedalNone)
	add(7, "Quinn", "M", 31, 2016, "Kenya", "Athletics", model.MedalNone)

	return rows
}

func TestMedalTally(t *testing.T) {
	convey.Convey("Given a subset with medals across three regions", t, func() {
		sub := query.All(medalHeavy())
		tally := query.MedalTally(sub)

		convey.Convey("Then regions are ordered by total, descending", func() {
			convey.So(len(tally), convey.ShouldEqual, 3)
			convey.So(tally[0].Region, convey.ShouldEqual, "USA")
			convey.So(tally[0].Total, convey.ShouldEqual, 3)
			convey.So(tally[1].Region, convey.ShouldEqual, "Germany")
			convey.So(tally[2].Region, convey.ShouldEqual, "Kenya")
		})

		convey.Convey("Then per-medal counts add up to each total", func() {
			for _, row := range tally {
				convey.So(row.Gold+row.Silver+row.Bronze, convey.ShouldEqual, row.Total)
			}
		})

		convey.Convey("Then tally totals sum to the medal-row count of the input", func() {
			sum := 0
			for _, row := range tally {
				sum += row.Total
			}
			convey.So(sum, convey.ShouldEqual, query.Summary(sub).MedalRows)
		})
	})
}

func TestTopEntities(t *testing.T) {
	convey.Convey("Given a subset ranked by athlete", t, func() {
		sub := query.All(medalHeavy())

		convey.Convey("When asking for the top 10", func() {
			top := query.TopEntities(sub, query.KeyAthlete, 10)

			convey.Convey("Then at most 10 entries come back", func() {
				convey.So(len(top), convey.ShouldBeLessThanOrEqualTo, 10)
			})

			convey.Convey("Then counts are non-increasing", func() {
				for i := 1; i < len(top); i++ {
					convey.So(top[i].Medals, convey.ShouldBeLessThanOrEqualTo, top[i-1].Medals)
				}
			})

			convey.Convey("Then the result is idempotent under re-sorting", func() {
				resorted := append([]query.TopEntry(nil), top...)
				sort.SliceStable(resorted, func(i, j int) bool {
					return resorted[i].Medals > resorted[j].Medals
				})
				convey.So(resorted, convey.ShouldResemble, top)
			})

			convey.Convey("Then Alice leads with two medals", func() {
				convey.So(top[0], convey.ShouldResemble, query.TopEntry{Key: "Alice", Medals: 2})
			})
		})

		convey.Convey("When truncating to fewer groups than exist", func() {
			top := query.TopEntities(sub, query.KeySport, 2)

			convey.Convey("Then exactly n entries survive", func() {
				convey.So(len(top), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the subset has no medal rows", func() {
			top := query.TopEntities(query.All(query.Rows{
				{ID: 9, Name: "Nobody", Year: 2000, Sport: "Golf"},
			}), query.KeyAthlete, 10)

			convey.Convey("Then the ranking is empty, not an error", func() {
				convey.So(top, convey.ShouldBeEmpty)
			})
		})
	})
}

func TestYearlyCount(t *testing.T) {
	convey.Convey("Given a table where 2012 has only female rows", t, func() {
		table := query.Rows{
			{ID: 1, Name: "A", Sex: "F", Year: 2012, Sport: "Swimming"},
			{ID: 2, Name: "B", Sex: "F", Year: 2016, Sport: "Swimming"},
			{ID: 3, Name: "C", Sex: "M", Year: 2016, Sport: "Swimming"},
		}
		grid := query.YearlyCount(query.All(table), query.KeySex)

		convey.Convey("Then one row exists per distinct year, ascending", func() {
			convey.So(len(grid.Rows), convey.ShouldEqual, 2)
			convey.So(grid.Rows[0].Key, convey.ShouldEqual, "2012")
			convey.So(grid.Rows[1].Key, convey.ShouldEqual, "2016")
		})

		convey.Convey("Then the absent (2012, M) cell is zero-filled, not missing", func() {
			convey.So(grid.Columns, convey.ShouldResemble, []string{"F", "M"})
			convey.So(grid.Rows[0].Cells, convey.ShouldResemble, []int{1, 0})
			convey.So(grid.Rows[1].Cells, convey.ShouldResemble, []int{1, 1})
		})
	})

	convey.Convey("Given an empty subset", t, func() {
		grid := query.YearlyCount(query.All(query.Rows{}), query.KeySex)

		convey.Convey("Then the grid is empty and well-formed", func() {
			convey.So(grid.Rows, convey.ShouldBeEmpty)
			convey.So(grid.Columns, convey.ShouldBeEmpty)
		})
	})
}

func TestSportMedalPivot(t *testing.T) {
	convey.Convey("Given medals in two sports", t, func() {
		grid := query.SportMedalPivot(query.All(medalHeavy()))

		convey.Convey("Then sports are the rows, sorted", func() {
			keys := make([]string, 0, len(grid.Rows))
			for _, r := range grid.Rows {
				keys = append(keys, r.Key)
			}
			convey.So(keys, convey.ShouldResemble, []string{"Athletics", "Rowing", "Swimming"})
		})

		convey.Convey("Then the medal columns are fixed and zero-filled", func() {
			convey.So(grid.Columns, convey.ShouldResemble, []string{"Gold", "Silver", "Bronze"})
			// Rowing has two bronze and nothing else.
			convey.So(grid.Rows[1].Cells, convey.ShouldResemble, []int{0, 0, 2})
		})
	})
}

func TestGenderSplitAndSummary(t *testing.T) {
	convey.Convey("Given the medal-heavy fixture", t, func() {
		sub := query.All(medalHeavy())

		convey.Convey("When splitting medals by sex", func() {
			split := query.GenderSplit(sub)

			convey.Convey("Then counts cover only medal rows", func() {
				total := 0
				for _, s := range split {
					total += s.Medals
				}
				convey.So(total, convey.ShouldEqual, query.Summary(sub).MedalRows)
			})
		})

		convey.Convey("When computing the summary", func() {
			sum := query.Summary(sub)

			convey.Convey("Then athletes and events are distinct counts", func() {
				convey.So(sum.Athletes, convey.ShouldEqual, 7) // Alice appears twice
				convey.So(sum.Events, convey.ShouldEqual, 3)
			})

			convey.Convey("Then medal rows are counted per row, not per medal", func() {
				convey.So(sum.MedalRows, convey.ShouldEqual, 6)
			})
		})
	})
}

func TestAgeHistogram(t *testing.T) {
	convey.Convey("Given medalists with recorded ages", t, func() {
		sub := query.All(medalHeavy())

		convey.Convey("When binning into 4 buckets", func() {
			buckets := query.AgeHistogram(sub, 4)

			convey.Convey("Then every medalist with an age lands in a bucket", func() {
				total := 0
				for _, b := range buckets {
					total += b.Count
				}
				convey.So(total, convey.ShouldEqual, 6)
			})

			convey.Convey("Then bucket count matches the request", func() {
				convey.So(len(buckets), convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When the subset is empty", func() {
			convey.So(query.AgeHistogram(query.All(query.Rows{}), 10), convey.ShouldBeEmpty)
		})

		convey.Convey("When bins is not positive", func() {
			convey.So(query.AgeHistogram(sub, 0), convey.ShouldBeEmpty)
		})
	})
}

func TestAggregateFor(t *testing.T) {
	convey.Convey("Given the dispatcher over the medal-heavy fixture", t, func() {
		sub := query.All(medalHeavy())

		convey.Convey("When requesting each known view kind", func() {
			for _, kind := range query.ViewKinds() {
				v, err := query.AggregateFor(sub, kind, query.Options{TopN: 10, Bins: 5})
				convey.So(err, convey.ShouldBeNil)
				convey.So(v.Kind, convey.ShouldEqual, kind)
			}
		})

		convey.Convey("When the tally view is truncated", func() {
			v, err := query.AggregateFor(sub, query.ViewMedalTally, query.Options{TopN: 2})

			convey.Convey("Then the slice is presentation-only truncation", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(v.Tally), convey.ShouldEqual, 2)
				convey.So(v.Tally[0].Region, convey.ShouldEqual, "USA")
			})
		})

		convey.Convey("When requesting the medal trend", func() {
			v, err := query.AggregateFor(sub, query.ViewMedalTrend, query.Options{})

			convey.Convey("Then only medal rows are counted per year", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v.Grid.Columns, convey.ShouldResemble, []string{"Count"})
				convey.So(v.Grid.Rows[0].Cells[0]+v.Grid.Rows[1].Cells[0], convey.ShouldEqual, 6)
			})
		})

		convey.Convey("When the kind is unknown", func() {
			_, err := query.AggregateFor(sub, query.ViewKind("nope"), query.Options{})

			convey.Convey("Then the sentinel error surfaces", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When parsing view kinds from the wire", func() {
			kind, err := query.ParseViewKind("gender-split")
			convey.So(err, convey.ShouldBeNil)
			convey.So(kind, convey.ShouldEqual, query.ViewGenderSplit)

			_, err = query.ParseViewKind("bogus")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
