package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/Arun1457/olympics-dashboard/internal/adapters/dataset"
	service "github.com/Arun1457/olympics-dashboard/internal/app"
	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
	"github.com/Arun1457/olympics-dashboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// Start falls back to the global logger, so the package tests need it
// initialized. Discard keeps the test output readable.
func TestMain(m *testing.M) {
	if err := logger.InitWithWriter(io.Discard); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fixtureStore builds a small joined table with medal rows, a bare
// participation row and one row whose committee had no region mapping.
func fixtureStore() *dataset.Store {
	return dataset.NewStore([]model.Record{
		{ID: 1, Name: "Alice", Sex: "F", Age: 24, NOC: "USA", Games: "2016 Summer", Year: 2016, Season: "Summer", Sport: "Swimming", Event: "100m Freestyle", Medal: model.MedalGold, Region: "USA"},
		{ID: 1, Name: "Alice", Sex: "F", Age: 24, NOC: "USA", Games: "2016 Summer", Year: 2016, Season: "Summer", Sport: "Swimming", Event: "200m Freestyle", Medal: model.MedalSilver, Region: "USA"},
		{ID: 2, Name: "Bob", Sex: "M", Age: 29, NOC: "JAM", Games: "2016 Summer", Year: 2016, Season: "Summer", Sport: "Athletics", Event: "100m", Medal: model.MedalGold, Region: "Jamaica"},
		{ID: 3, Name: "Carol", Sex: "F", Age: 21, NOC: "KEN", Games: "2012 Summer", Year: 2012, Season: "Summer", Sport: "Athletics", Event: "Marathon", Medal: model.MedalNone, Region: "Kenya"},
		{ID: 4, Name: "Dan", Sex: "M", Age: 27, NOC: "XYZ", Games: "2012 Summer", Year: 2012, Season: "Summer", Sport: "Judo", Event: "Half-Heavyweight", Medal: model.MedalBronze, Region: ""},
	})
}

func startedService() *service.Service {
	svc := service.New(service.WithStore(fixtureStore()))
	_ = svc.Start(context.Background())
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a service with an injected store", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithStore(fixtureStore()))

		Convey("When queried before Start", func() {
			_, err := svc.Domains(ctx)

			Convey("Then it should refuse with ErrNotStarted", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When started", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then a second Start is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("Then stats report the loaded table", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["rows"], ShouldEqual, 5)
				So(stats["unmatchedRegions"], ShouldEqual, 1)
			})

			Convey("And when stopped, queries fail again", func() {
				svc.Stop()
				_, err := svc.Domains(ctx)
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When started without a store and without files", func() {
			bad := service.New(service.WithDataFiles("does-not-exist.csv", "neither.csv"))
			err := bad.Start(ctx)

			Convey("Then the load failure propagates", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestServiceDomains(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		ctx := context.Background()

		Convey("When asking for the filter domains", func() {
			d, err := svc.Domains(ctx)

			Convey("Then they should reflect the observed table", func() {
				So(err, ShouldBeNil)
				So(d.Years, ShouldResemble, []int{2012, 2016})
				So(d.Regions, ShouldResemble, []string{"Jamaica", "Kenya", "USA"})
				So(d.Sports, ShouldResemble, []string{"Athletics", "Judo", "Swimming"})
				So(d.Medals, ShouldResemble, []string{"Gold", "Silver", "Bronze"})
			})
		})
	})
}

func TestServiceRecords(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		ctx := context.Background()

		Convey("When listing the overall table in pages", func() {
			page, err := svc.Records(ctx, query.OverallScope(), 0, 2)

			Convey("Then the first page carries two of five rows", func() {
				So(err, ShouldBeNil)
				So(page.Total, ShouldEqual, 5)
				So(page.Records, ShouldHaveLength, 2)
				So(page.Records[0].Name, ShouldEqual, "Alice")
			})
		})

		Convey("When the offset points past the end", func() {
			page, err := svc.Records(ctx, query.OverallScope(), 10, 2)

			Convey("Then the page is empty but the total stays true", func() {
				So(err, ShouldBeNil)
				So(page.Total, ShouldEqual, 5)
				So(page.Records, ShouldBeEmpty)
			})
		})

		Convey("When the limit is non-positive", func() {
			page, err := svc.Records(ctx, query.OverallScope(), 0, 0)

			Convey("Then the maximum page size applies", func() {
				So(err, ShouldBeNil)
				So(page.Records, ShouldHaveLength, 5)
			})
		})

		Convey("When a selection names an empty dimension", func() {
			scope := query.FilteredScope(query.Selection{
				Years:     nil,
				Countries: []string{"USA"},
				Sports:    []string{"Swimming"},
			})
			page, err := svc.Records(ctx, scope, 0, 10)

			Convey("Then the subset is empty", func() {
				So(err, ShouldBeNil)
				So(page.Total, ShouldEqual, 0)
				So(page.Records, ShouldBeEmpty)
			})
		})
	})
}

func TestServiceViews(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		ctx := context.Background()

		Convey("When computing the overall medal tally", func() {
			v, err := svc.View(ctx, query.OverallScope(), query.ViewMedalTally, query.Options{})

			Convey("Then regions rank by total with the unmatched row excluded", func() {
				So(err, ShouldBeNil)
				So(v.Kind, ShouldEqual, query.ViewMedalTally)
				So(v.Tally, ShouldHaveLength, 2)
				So(v.Tally[0].Region, ShouldEqual, "USA")
				So(v.Tally[0].Total, ShouldEqual, 2)
				So(v.Tally[1].Region, ShouldEqual, "Jamaica")
			})

			Convey("And a repeated request is served from the memo", func() {
				before := svc.GetStats()["viewCacheSize"]
				again, err := svc.View(ctx, query.OverallScope(), query.ViewMedalTally, query.Options{})
				So(err, ShouldBeNil)
				So(again, ShouldResemble, v)
				So(svc.GetStats()["viewCacheSize"], ShouldEqual, before)
				So(svc.GetStats()["viewCacheHits"], ShouldBeGreaterThan, 0)
			})
		})

		Convey("When computing top athletes without a length", func() {
			v, err := svc.View(ctx, query.OverallScope(), query.ViewTopAthletes, query.Options{})

			Convey("Then the default length applies and medal counts rank", func() {
				So(err, ShouldBeNil)
				So(v.Top, ShouldHaveLength, 3)
				So(v.Top[0].Key, ShouldEqual, "Alice")
				So(v.Top[0].Medals, ShouldEqual, 2)
			})
		})

		Convey("When asking for more than the configured cap", func() {
			capped := service.New(
				service.WithStore(fixtureStore()),
				service.WithMaxTopLimit(1),
			)
			So(capped.Start(ctx), ShouldBeNil)
			v, err := capped.View(ctx, query.OverallScope(), query.ViewTopAthletes, query.Options{TopN: 50})

			Convey("Then the cap truncates the ranking", func() {
				So(err, ShouldBeNil)
				So(v.Top, ShouldHaveLength, 1)
			})
		})

		Convey("When the kind is unknown", func() {
			_, err := svc.View(ctx, query.OverallScope(), query.ViewKind("sparkline"), query.Options{})

			Convey("Then the engine sentinel surfaces", func() {
				So(errors.Is(err, query.ErrUnknownView), ShouldBeTrue)
			})
		})

		Convey("When computing the age histogram without a bin count", func() {
			binned := service.New(
				service.WithStore(fixtureStore()),
				service.WithHistogramBins(5),
			)
			So(binned.Start(ctx), ShouldBeNil)
			v, err := binned.View(ctx, query.OverallScope(), query.ViewAgeHistogram, query.Options{})

			Convey("Then the configured default applies", func() {
				So(err, ShouldBeNil)
				So(v.Buckets, ShouldHaveLength, 5)
			})
		})
	})
}

func TestServiceSummary(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		ctx := context.Background()

		Convey("When summarizing a filtered scope", func() {
			scope := query.FilteredScope(query.Selection{
				Years:     []int{2016},
				Countries: []string{"USA", "Jamaica"},
				Sports:    []string{"Swimming", "Athletics"},
			})
			m, err := svc.Summary(ctx, scope)

			Convey("Then the headline numbers match the subset", func() {
				So(err, ShouldBeNil)
				So(m.Athletes, ShouldEqual, 2)
				So(m.Events, ShouldEqual, 3)
				So(m.MedalRows, ShouldEqual, 3)
			})
		})

		Convey("When summarizing the overall scope", func() {
			m, err := svc.Summary(ctx, query.OverallScope())

			Convey("Then every row counts, medal or not", func() {
				So(err, ShouldBeNil)
				So(m.Athletes, ShouldEqual, 4)
				So(m.Events, ShouldEqual, 5)
				So(m.MedalRows, ShouldEqual, 4)
			})
		})
	})
}

func TestServiceExport(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		ctx := context.Background()

		Convey("When exporting the overall rows", func() {
			var buf bytes.Buffer
			n, err := svc.ExportRecords(ctx, query.OverallScope(), &buf)

			Convey("Then the download has a header and one line per row", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, buf.Len())
				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				So(lines, ShouldHaveLength, 6)
				So(lines[0], ShouldStartWith, "ID,Name,Sex")
			})
		})

		Convey("When exporting the medal tally", func() {
			var buf bytes.Buffer
			n, err := svc.ExportTally(ctx, query.OverallScope(), &buf)

			Convey("Then the tally serializes in rank order", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, buf.Len())
				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				So(lines[0], ShouldEqual, "region,Gold,Silver,Bronze,Total")
				So(lines[1], ShouldStartWith, "USA,")
				So(lines, ShouldHaveLength, 3)
			})
		})
	})
}
