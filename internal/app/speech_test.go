package app

import (
	"testing"

	"healthlog/internal/domain/types"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeasurementsAsSpeech(t *testing.T) {
	Convey("Given ranked weight measurements", t, func() {
		Convey("A single entry is phrased without a joiner", func() {
			got := weightsAsSpeech([]types.Measurement{{Name: "alex", Value: 150}})
			So(got, ShouldEqual, "alex weighs 150 pounds, ")
		})

		Convey("The last of several entries is joined with and", func() {
			got := weightsAsSpeech([]types.Measurement{
				{Name: "alex", Value: 200},
				{Name: "bob", Value: 150},
				{Name: "carol", Value: 100},
			})
			So(got, ShouldEqual,
				"alex weighs 200 pounds, bob weighs 150 pounds,  and carol weighs 100 pounds, ")
		})

		Convey("A value of one gets the singular unit", func() {
			got := weightsAsSpeech([]types.Measurement{{Name: "alex", Value: 1}})
			So(got, ShouldEqual, "alex weighs 1 pound, ")
		})

		Convey("An empty ranking reads as nothing", func() {
			So(weightsAsSpeech(nil), ShouldBeEmpty)
		})
	})

	Convey("Given ranked height measurements", t, func() {
		Convey("Heights use inch wording", func() {
			got := heightsAsSpeech([]types.Measurement{
				{Name: "bob", Value: 72},
				{Name: "alex", Value: 1},
			})
			So(got, ShouldEqual, "bob is 72 inches,  and alex is 1 inch, ")
		})
	})
}

func TestMetricsCard(t *testing.T) {
	Convey("Given a ranked list", t, func() {
		card := metricsCard([]types.Measurement{
			{Name: "anna", Value: 200},
			{Name: "bob", Value: 0},
		})

		Convey("The card numbers every entry on its own line", func() {
			So(card.Title, ShouldEqual, "Health Metrics")
			So(card.Content, ShouldEqual, "No. 1 - anna : 200\nNo. 2 - bob : 0\n")
		})
	})

	Convey("Given an empty ranking", t, func() {
		card := metricsCard(nil)

		Convey("The card carries no content", func() {
			So(card.Content, ShouldBeEmpty)
		})
	})
}
