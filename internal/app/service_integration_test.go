package service_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	service "github.com/Arun1457/olympics-dashboard/internal/app"
	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
	. "github.com/smartystreets/goconvey/convey"
)

const athletesCSV = `ID,Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal
1,Usain Bolt,M,29,195,94,Jamaica,JAM,2016 Summer,2016,Summer,Rio de Janeiro,Athletics,Athletics Men's 100 metres,Gold
2,Michael Phelps,M,31,193,91,United States,USA,2016 Summer,2016,Summer,Rio de Janeiro,Swimming,Swimming Men's 200 metres Butterfly,Gold
2,Michael Phelps,M,31,193,91,United States,USA,2016 Summer,2016,Summer,Rio de Janeiro,Swimming,Swimming Men's 4 x 100 metres Medley Relay,Gold
3,Simone Biles,F,19,142,47,United States,USA,2016 Summer,2016,Summer,Rio de Janeiro,Gymnastics,Gymnastics Women's Individual All-Around,Gold
4,David Rudisha,M,27,190,76,Kenya,KEN,2016 Summer,2016,Summer,Rio de Janeiro,Athletics,Athletics Men's 800 metres,Gold
5,Ghost Runner,M,NA,NA,NA,Nowhere,ZZZ,2016 Summer,2016,Summer,Rio de Janeiro,Athletics,Athletics Men's Marathon,NA
6,Yusra Mardini,F,18,157,53,Refugee Olympic Athletes,ROT,2016 Summer,2016,Summer,Rio de Janeiro,Swimming,Swimming Women's 100 metres Freestyle,NA
`

const regionsCSV = `NOC,region,notes
JAM,Jamaica,
USA,USA,
KEN,Kenya,
ROT,,Refugee Olympic Team
`

// writeDataFiles drops the two source files into a temp dir and returns
// their paths.
func writeDataFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	athletes := filepath.Join(dir, "athlete_events.csv")
	regions := filepath.Join(dir, "noc_regions.csv")
	if err := os.WriteFile(athletes, []byte(athletesCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(regions, []byte(regionsCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	return athletes, regions
}

func TestServiceFromFiles(t *testing.T) {
	Convey("Given a service loading from the source files", t, func() {
		ctx := context.Background()
		athletes, regions := writeDataFiles(t)
		svc := service.New(service.WithDataFiles(athletes, regions))
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When inspecting the loaded table", func() {
			stats := svc.GetStats()

			Convey("Then every athlete row survived the join", func() {
				So(stats["rows"], ShouldEqual, 7)
			})

			Convey("Then unmapped committees are counted, not dropped", func() {
				// ZZZ has no lookup row and ROT maps to an empty region.
				So(stats["unmatchedRegions"], ShouldEqual, 2)
			})
		})

		Convey("When reading the filter domains", func() {
			d, err := svc.Domains(ctx)

			Convey("Then they come from the joined table", func() {
				So(err, ShouldBeNil)
				So(d.Years, ShouldResemble, []int{2016})
				So(d.Regions, ShouldResemble, []string{"Jamaica", "Kenya", "USA"})
				So(d.Sports, ShouldResemble, []string{"Athletics", "Gymnastics", "Swimming"})
			})
		})

		Convey("When computing the overall medal tally", func() {
			v, err := svc.View(ctx, query.OverallScope(), query.ViewMedalTally, query.Options{})

			Convey("Then the ranking matches the medal rows", func() {
				So(err, ShouldBeNil)
				So(v.Tally, ShouldHaveLength, 3)
				So(v.Tally[0].Region, ShouldEqual, "USA")
				So(v.Tally[0].Gold, ShouldEqual, 3)
				So(v.Tally[1].Total, ShouldEqual, 1)
			})
		})

		Convey("When filtering down to Kenyan athletics in 2016", func() {
			scope := query.FilteredScope(query.Selection{
				Years:     []int{2016},
				Countries: []string{"Kenya"},
				Sports:    []string{"Athletics"},
			})
			page, err := svc.Records(ctx, scope, 0, 10)

			Convey("Then only the matching row remains", func() {
				So(err, ShouldBeNil)
				So(page.Total, ShouldEqual, 1)
				So(page.Records[0].Name, ShouldEqual, "David Rudisha")
				So(page.Records[0].Region, ShouldEqual, "Kenya")
			})
		})

		Convey("When a medal restriction excludes everything", func() {
			scope := query.FilteredScope(query.Selection{
				Years:     []int{2016},
				Countries: []string{"Kenya"},
				Sports:    []string{"Swimming"},
			})
			m, err := svc.Summary(ctx, scope)

			Convey("Then the summary degrades to zeroes", func() {
				So(err, ShouldBeNil)
				So(m.Athletes, ShouldEqual, 0)
				So(m.Events, ShouldEqual, 0)
				So(m.MedalRows, ShouldEqual, 0)
			})
		})

		Convey("When exporting the loaded rows", func() {
			var buf bytes.Buffer
			_, err := svc.ExportRecords(ctx, query.OverallScope(), &buf)

			Convey("Then absent numerics serialize as NA again", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				So(lines, ShouldHaveLength, 8)
				So(lines[6], ShouldContainSubstring, "Ghost Runner,M,NA,NA,NA")
			})
		})
	})
}
