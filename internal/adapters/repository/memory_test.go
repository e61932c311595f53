package repository_test

import (
	"context"
	"testing"

	repository "healthlog/internal/adapters/repository"
	"healthlog/internal/domain/record"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When loading an unknown identity", func() {
			_, err := store.Load(ctx, "nobody")

			Convey("Then it reports absence, not failure", func() {
				So(err, ShouldWrap, repository.ErrNoRecord)
			})
		})

		Convey("When loading with an empty identity", func() {
			_, err := store.Load(ctx, "")

			Convey("Then it rejects the call", func() {
				So(err, ShouldWrap, repository.ErrNoIdentity)
			})
		})

		Convey("When saving and loading a record", func() {
			rec := record.New()
			rec.Users = append(rec.Users, "carol", "alex", "bob")
			rec.Weights["alex"] = 150
			rec.Heights["carol"] = 66

			So(store.Save(ctx, "user-1", rec), ShouldBeNil)
			got, err := store.Load(ctx, "user-1")

			Convey("Then the round trip preserves order and contents", func() {
				So(err, ShouldBeNil)
				So(got.Users, ShouldResemble, []string{"carol", "alex", "bob"})
				So(got.Weights, ShouldResemble, map[string]int64{"alex": 150})
				So(got.Heights, ShouldResemble, map[string]int64{"carol": 66})
			})

			Convey("And mutating the loaded record does not change stored state", func() {
				got.Users = append(got.Users, "mallory")
				got.Weights["alex"] = 1

				again, err := store.Load(ctx, "user-1")
				So(err, ShouldBeNil)
				So(again.Users, ShouldHaveLength, 3)
				So(again.Weights["alex"], ShouldEqual, 150)
			})

			Convey("And saving again overwrites, last writer wins", func() {
				So(store.Save(ctx, "user-1", record.New()), ShouldBeNil)

				again, err := store.Load(ctx, "user-1")
				So(err, ShouldBeNil)
				So(again.Users, ShouldBeEmpty)
			})
		})

		Convey("When saving a nil record", func() {
			err := store.Save(ctx, "user-1", nil)

			Convey("Then it rejects the call", func() {
				So(err, ShouldWrap, repository.ErrNilRecord)
			})
		})
	})

	Convey("Given a store seeded for tests", t, func() {
		ctx := context.Background()
		seed := record.New()
		seed.Users = append(seed.Users, "alex")
		store := repository.NewMemoryStore(repository.WithSeed("user-1", seed))

		Convey("Then the seeded record is loadable", func() {
			got, err := store.Load(ctx, "user-1")
			So(err, ShouldBeNil)
			So(got.Users, ShouldResemble, []string{"alex"})
		})
	})
}
