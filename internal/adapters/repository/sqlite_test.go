package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	repository "healthlog/internal/adapters/repository"
	"healthlog/internal/domain/record"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSQLiteStore(t *testing.T) {
	Convey("Given a sqlite store on a fresh database", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "healthlog.db")

		store, err := repository.NewSQLiteStore(ctx, path)
		So(err, ShouldBeNil)
		defer func() { _ = store.Close() }()

		Convey("When loading an unknown identity", func() {
			_, err := store.Load(ctx, "nobody")

			Convey("Then it reports absence, not failure", func() {
				So(err, ShouldWrap, repository.ErrNoRecord)
			})
		})

		Convey("When saving and loading a record", func() {
			rec := record.New()
			rec.Users = append(rec.Users, "carol", "alex", "bob")
			rec.Weights["alex"] = 150
			rec.Weights["bob"] = 1
			rec.Heights["carol"] = 66

			So(store.Save(ctx, "user-1", rec), ShouldBeNil)
			got, err := store.Load(ctx, "user-1")

			Convey("Then the round trip preserves order and contents", func() {
				So(err, ShouldBeNil)
				So(got.Users, ShouldResemble, []string{"carol", "alex", "bob"})
				So(got.Weights, ShouldResemble, map[string]int64{"alex": 150, "bob": 1})
				So(got.Heights, ShouldResemble, map[string]int64{"carol": 66})
			})

			Convey("And records are isolated per identity", func() {
				_, err := store.Load(ctx, "user-2")
				So(err, ShouldWrap, repository.ErrNoRecord)
			})

			Convey("And saving again overwrites", func() {
				empty := record.New()
				So(store.Save(ctx, "user-1", empty), ShouldBeNil)

				again, err := store.Load(ctx, "user-1")
				So(err, ShouldBeNil)
				So(again.Users, ShouldBeEmpty)
				So(again.Weights, ShouldBeEmpty)
			})
		})

		Convey("When the store is reopened", func() {
			rec := record.New()
			rec.Users = append(rec.Users, "alex")
			So(store.Save(ctx, "user-1", rec), ShouldBeNil)
			So(store.Close(), ShouldBeNil)

			reopened, err := repository.NewSQLiteStore(ctx, path)
			So(err, ShouldBeNil)
			defer func() { _ = reopened.Close() }()

			Convey("Then previously saved records survive", func() {
				got, err := reopened.Load(ctx, "user-1")
				So(err, ShouldBeNil)
				So(got.Users, ShouldResemble, []string{"alex"})
			})
		})
	})
}
