package repository_test

import (
	"context"
	"testing"

	repository "github.com/okian/copa/internal/adapters/repository"
	"github.com/okian/copa/internal/domain/dataset"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSnapshotStore(t *testing.T) {
	Convey("Given a snapshot store over the full dataset", t, func() {
		ctx := context.Background()
		store, err := repository.NewSnapshotStore(ctx, dataset.Records(),
			repository.WithMetricsPublish(false))
		So(err, ShouldBeNil)

		Convey("When reading records", func() {
			records := store.Records(ctx)

			Convey("Then all tournaments should be present in order", func() {
				So(len(records), ShouldEqual, 22)
				So(records[0].Year, ShouldEqual, 1930)
			})
		})

		Convey("When matching a year", func() {
			rec, err := store.Match(ctx, 1966)

			Convey("Then the record should be found", func() {
				So(err, ShouldBeNil)
				So(rec.Winner, ShouldEqual, "England")
			})
		})

		Convey("When matching a missing year", func() {
			_, err := store.Match(ctx, 1931)

			Convey("Then it should report ErrYearNotFound", func() {
				So(err, ShouldEqual, repository.ErrYearNotFound)
			})
		})

		Convey("When querying wins", func() {
			wins, err := store.Wins(ctx, "Brazil")

			Convey("Then the count should match the aggregation", func() {
				So(err, ShouldBeNil)
				So(wins, ShouldEqual, 5)
			})
		})

		Convey("When querying wins for a non-winner", func() {
			_, err := store.Wins(ctx, "Netherlands")

			Convey("Then it should report ErrCountryNotFound", func() {
				So(err, ShouldEqual, repository.ErrCountryNotFound)
			})
		})

		Convey("When listing the selectable values", func() {
			years := store.Years(ctx)
			countries := store.Countries(ctx)

			Convey("Then both option lists should be complete", func() {
				So(len(years), ShouldEqual, 22)
				So(len(countries), ShouldEqual, 8)
				So(countries[0], ShouldEqual, "Brazil")
				So(store.Count(ctx), ShouldEqual, 8)
			})
		})

		Convey("When mutating returned slices", func() {
			years := store.Years(ctx)
			years[0] = 1900

			Convey("Then the store should be unaffected", func() {
				So(store.Years(ctx)[0], ShouldEqual, 1930)
			})
		})
	})

	Convey("Given no records", t, func() {
		_, err := repository.NewSnapshotStore(context.Background(), nil,
			repository.WithMetricsPublish(false))

		Convey("Then construction should fail", func() {
			So(err, ShouldEqual, repository.ErrEmptyDataset)
		})
	})
}
