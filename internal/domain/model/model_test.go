package model_test

import (
	"testing"

	"healthlog/internal/domain/model"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEventSlot(t *testing.T) {
	Convey("Given an event with slots", t, func() {
		ev := model.Event{Slots: map[string]string{model.SlotUserName: "alex"}}

		So(ev.Slot(model.SlotUserName), ShouldEqual, "alex")
		So(ev.Slot(model.SlotWeightNumber), ShouldBeEmpty)
	})

	Convey("Given an event with nil slots", t, func() {
		var ev model.Event

		So(ev.Slot(model.SlotUserName), ShouldBeEmpty)
	})
}

func TestResponseBuilders(t *testing.T) {
	Convey("Ask keeps the session open and mirrors speech on the card", t, func() {
		resp := model.Ask("who?", "please say who")

		So(resp.Speech, ShouldEqual, "who?")
		So(resp.Reprompt, ShouldEqual, "please say who")
		So(resp.EndSession, ShouldBeFalse)
		So(resp.Card, ShouldResemble, &model.Card{Title: "Session", Content: "who?"})
	})

	Convey("Tell closes the session", t, func() {
		resp := model.Tell("done")

		So(resp.Reprompt, ShouldBeEmpty)
		So(resp.EndSession, ShouldBeTrue)
		So(resp.Card.Content, ShouldEqual, "done")
	})

	Convey("TellWithCard carries the custom card", t, func() {
		card := model.Card{Title: "Health Metrics", Content: "No. 1 - alex : 150\n"}
		resp := model.TellWithCard("list", card)

		So(resp.EndSession, ShouldBeTrue)
		So(resp.Card, ShouldResemble, &card)
	})
}
