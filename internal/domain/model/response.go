package model

// Card is the visual companion to spoken output.
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Response is what the skill says back. A non-empty Reprompt keeps the
// session open awaiting another utterance; EndSession mirrors that for the
// platform envelope.
type Response struct {
	Speech     string
	Reprompt   string
	Card       *Card
	EndSession bool
}

// Ask builds a response that keeps the session open, with a Session card
// mirroring the spoken text.
func Ask(speech, reprompt string) Response {
	return Response{
		Speech:   speech,
		Reprompt: reprompt,
		Card:     &Card{Title: "Session", Content: speech},
	}
}

// Tell builds a terminal response with a Session card mirroring the spoken
// text.
func Tell(speech string) Response {
	return Response{
		Speech:     speech,
		Card:       &Card{Title: "Session", Content: speech},
		EndSession: true,
	}
}

// TellWithCard builds a terminal response carrying a custom card.
func TellWithCard(speech string, card Card) Response {
	return Response{
		Speech:     speech,
		Card:       &card,
		EndSession: true,
	}
}
