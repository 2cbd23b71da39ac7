package service_test

import (
	"context"
	"testing"

	service "github.com/okian/copa/internal/app"
	"github.com/okian/copa/internal/domain/types"
	"github.com/okian/copa/internal/domain/view"
	"github.com/okian/copa/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func startedService(opts ...service.Option) *service.Service {
	_ = logger.Init()
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		_ = logger.Init()
		svc := service.New()

		Convey("When starting it", func() {
			err := svc.Start(context.Background())

			Convey("Then it should start cleanly and be idempotent", func() {
				So(err, ShouldBeNil)
				So(svc.Start(context.Background()), ShouldBeNil)
				svc.Stop()
			})
		})

		Convey("When starting with an empty dataset override", func() {
			// WithRecords ignores empty slices, so the compiled-in table is kept.
			svc := service.New(service.WithRecords(nil))
			err := svc.Start(context.Background())

			Convey("Then the compiled-in dataset should back the service", func() {
				So(err, ShouldBeNil)
				So(svc.GetStats()["records"], ShouldEqual, 22)
			})
		})
	})
}

func TestServiceQueries(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService()
		defer svc.Stop()

		Convey("When resolving a year figure", func() {
			fig := svc.Figure(ctx, view.Selection{Year: 1966})

			Convey("Then it should carry the two finalist regions", func() {
				So(fig.Mode, ShouldEqual, view.ModeYear)
				So(len(fig.Traces), ShouldEqual, 2)
			})
		})

		Convey("When resolving an unknown year figure", func() {
			fig := svc.Figure(ctx, view.Selection{Year: 1931})

			Convey("Then it should come back empty", func() {
				So(len(fig.Traces), ShouldEqual, 0)
			})
		})

		Convey("When asking for a win summary", func() {
			wins, summary := svc.WinSummary(ctx, "Brazil")

			Convey("Then count and text should agree", func() {
				So(wins, ShouldEqual, 5)
				So(summary, ShouldEqual, "Brazil has won the World Cup 5 times.")
			})
		})

		Convey("When asking for a non-winner summary", func() {
			wins, summary := svc.WinSummary(ctx, "Netherlands")

			Convey("Then zero wins and the never-won text should come back", func() {
				So(wins, ShouldEqual, 0)
				So(summary, ShouldEqual, "Netherlands has never won the World Cup.")
			})
		})

		Convey("When asking for a match summary", func() {
			rec, summary, found := svc.MatchSummary(ctx, 2022)

			Convey("Then the record should be found with its text", func() {
				So(found, ShouldBeTrue)
				So(rec.Winner, ShouldEqual, "Argentina")
				So(summary, ShouldContainSubstring, "Argentina won the World Cup")
			})
		})

		Convey("When asking for a missing match summary", func() {
			_, summary, found := svc.MatchSummary(ctx, 1931)

			Convey("Then the no-data message should come back", func() {
				So(found, ShouldBeFalse)
				So(summary, ShouldEqual, "No data available for the selected year.")
			})
		})

		Convey("When evaluating the interlock", func() {
			controls := svc.Controls(ctx, view.Selection{Country: "Brazil"})

			Convey("Then the year selector should be disabled", func() {
				So(controls.YearDisabled, ShouldBeTrue)
				So(controls.CountryDisabled, ShouldBeFalse)
			})
		})

		Convey("When listing selector options", func() {
			countries, years := svc.SelectorOptions(ctx)

			Convey("Then the sentinel should lead the country list", func() {
				So(countries[0], ShouldEqual, view.AllWinners)
				So(len(countries), ShouldEqual, 9)
				So(len(years), ShouldEqual, 22)
			})
		})

		Convey("When reading stats", func() {
			stats := svc.GetStats()

			Convey("Then dataset shape should be reported", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["records"], ShouldEqual, 22)
				So(stats["winningCountries"], ShouldEqual, 8)
				So(stats["firstYear"], ShouldEqual, 1930)
				So(stats["lastYear"], ShouldEqual, 2022)
			})
		})
	})
}

func TestServiceWithCustomRecords(t *testing.T) {
	Convey("Given a service over a reduced dataset", t, func() {
		ctx := context.Background()
		records := []types.Record{
			{Year: 1930, Winner: "Uruguay", RunnerUp: "Argentina"},
			{Year: 1950, Winner: "Uruguay", RunnerUp: "Brazil"},
		}
		svc := startedService(service.WithRecords(records))
		defer svc.Stop()

		Convey("When resolving the overview", func() {
			fig := svc.Figure(ctx, view.Selection{})

			Convey("Then only the one winner should be drawn", func() {
				So(len(fig.Traces[0].Locations), ShouldEqual, 1)
				So(fig.Traces[0].Values, ShouldResemble, []float64{2})
			})
		})

		Convey("When listing options", func() {
			countries, years := svc.SelectorOptions(ctx)

			Convey("Then the lists should track the reduced dataset", func() {
				So(countries, ShouldResemble, []string{view.AllWinners, "Uruguay"})
				So(years, ShouldResemble, []int{1930, 1950})
			})
		})
	})
}
