package app

import (
	"context"
	"strconv"

	"healthlog/internal/domain/model"
	"healthlog/internal/domain/text"
)

// maxUsersForSpeech caps how many users get their values read out after a
// measurement update; above it only the updated user is announced.
const maxUsersForSpeech = 3

// launch greets the user and steers them by how far along the log is.
func (s *Service) launch(ctx context.Context, ev model.Event) (model.Response, error) {
	agg, found, err := s.loadAggregate(ctx, ev.Identity)
	if err != nil {
		return model.Response{}, err
	}

	switch {
	case !found || !agg.HasUsers():
		return model.Ask(
			"HealthLog, Let's start your metrics. Who's your first user?",
			"Please tell me who is your first user?",
		), nil
	case !agg.HasWeights():
		noun := " users"
		if agg.UserCount() == 1 {
			noun = " user"
		}
		speech := "HealthLog, you have " + strconv.Itoa(agg.UserCount()) + noun +
			" in the log. You can give a user metrics, add another user," +
			" reset all user data or exit. Which would you like?"
		return model.Ask(speech, text.CompleteHelp), nil
	default:
		return model.Ask("HealthLog, What can I do for you?", text.NextHelp), nil
	}
}

// addUser appends a new user to the log, creating the log on first use.
func (s *Service) addUser(ctx context.Context, ev model.Event, moreHelp bool) (model.Response, error) {
	name, ok := text.SanitizeUserName(ev.Slot(model.SlotUserName))
	if !ok {
		speech := "OK. Who do you want to add?"
		return model.Ask(speech, speech), nil
	}

	agg, found, err := s.loadAggregate(ctx, ev.Identity)
	if err != nil {
		return model.Response{}, err
	}
	if !found {
		agg = newAggregate(ev.Identity)
	}

	agg.AddUser(name)

	if err := s.saveAggregate(ctx, agg); err != nil {
		return model.Response{}, err
	}

	speech := name + " has been added to your log. You can now keep track of their health metrics! "
	if !moreHelp {
		return model.Tell(speech), nil
	}

	if agg.UserCount() == 1 {
		speech += "You can say, I am done adding users. Now who's your next user?"
	} else {
		speech += "Who is your next user?"
	}
	return model.Ask(speech, text.NextHelp), nil
}

// setWeight records a weight and reads back where everyone stands.
func (s *Service) setWeight(ctx context.Context, ev model.Event) (model.Response, error) {
	name, ok := text.SanitizeUserName(ev.Slot(model.SlotUserName))
	if !ok {
		speech := "Sorry, I did not hear the user name. Please say again?"
		return model.Ask(speech, speech), nil
	}

	weight, err := strconv.ParseInt(ev.Slot(model.SlotWeightNumber), 10, 64)
	if err != nil {
		speech := "Sorry, I did not hear the weight. Please say again?"
		return model.Ask(speech, speech), nil
	}

	agg, found, err := s.loadAggregate(ctx, ev.Identity)
	if err != nil {
		return model.Response{}, err
	}
	if !found {
		return model.Tell("A health log has not been started."), nil
	}
	if agg.UserCount() == 0 {
		speech := "Sorry, no users are on the health log. Try adding a user?"
		return model.Ask(speech, speech), nil
	}
	if !agg.SetWeight(name, weight) {
		speech := "Sorry, " + name + " is not on this log. What else?"
		return model.Ask(speech, speech), nil
	}

	if err := s.saveAggregate(ctx, agg); err != nil {
		return model.Response{}, err
	}

	speech := strconv.FormatInt(weight, 10) + " pounds for " + name + ". "
	if agg.UserCount() > maxUsersForSpeech {
		speech += name + " is " + strconv.FormatInt(agg.WeightOf(name), 10) + " pounds in weight."
	} else {
		speech += weightsAsSpeech(agg.RankedWeights())
	}
	return model.Tell(speech), nil
}

// setHeight records a height and reads back where everyone stands.
func (s *Service) setHeight(ctx context.Context, ev model.Event) (model.Response, error) {
	name, ok := text.SanitizeUserName(ev.Slot(model.SlotUserName))
	if !ok {
		speech := "Sorry, I did not hear the user name. Please say again?"
		return model.Ask(speech, speech), nil
	}

	height, err := strconv.ParseInt(ev.Slot(model.SlotHeightNumber), 10, 64)
	if err != nil {
		speech := "Sorry, I did not hear the height. Please say again?"
		return model.Ask(speech, speech), nil
	}

	agg, found, err := s.loadAggregate(ctx, ev.Identity)
	if err != nil {
		return model.Response{}, err
	}
	if !found {
		return model.Tell("A health log has not been started."), nil
	}
	if agg.UserCount() == 0 {
		speech := "Sorry, no users are on the health log. Try adding a user?"
		return model.Ask(speech, speech), nil
	}
	if !agg.SetHeight(name, height) {
		speech := "Sorry, " + name + " is not on this log. What else?"
		return model.Ask(speech, speech), nil
	}

	if err := s.saveAggregate(ctx, agg); err != nil {
		return model.Response{}, err
	}

	speech := strconv.FormatInt(height, 10) + " inches for " + name + ". "
	if agg.UserCount() > maxUsersForSpeech {
		speech += name + " is " + strconv.FormatInt(agg.HeightOf(name), 10) + " inches tall."
	} else {
		speech += heightsAsSpeech(agg.RankedHeights())
	}
	return model.Tell(speech), nil
}

// tellWeight reads the full weight ranking and attaches the numbered card.
func (s *Service) tellWeight(ctx context.Context, ev model.Event) (model.Response, error) {
	agg, found, err := s.loadAggregate(ctx, ev.Identity)
	if err != nil {
		return model.Response{}, err
	}
	if !found || !agg.HasUsers() {
		return model.Tell("Nobody is on the health log. Try adding a user first."), nil
	}

	ranked := agg.RankedWeights()
	return model.TellWithCard(weightsAsSpeech(ranked), metricsCard(ranked)), nil
}

// tellHeight reads the full height ranking and attaches the numbered card.
func (s *Service) tellHeight(ctx context.Context, ev model.Event) (model.Response, error) {
	agg, found, err := s.loadAggregate(ctx, ev.Identity)
	if err != nil {
		return model.Response{}, err
	}
	if !found || !agg.HasUsers() {
		return model.Tell("Nobody is on the health log. Try adding a user first."), nil
	}

	ranked := agg.RankedHeights()
	return model.TellWithCard(heightsAsSpeech(ranked), metricsCard(ranked)), nil
}

// resetUsers replaces whatever is stored with a brand-new empty record.
func (s *Service) resetUsers(ctx context.Context, ev model.Event) (model.Response, error) {
	if err := s.saveAggregate(ctx, newAggregate(ev.Identity)); err != nil {
		return model.Response{}, err
	}

	speech := "New health log started without users. Who do you want to add first?"
	return model.Ask(speech, speech), nil
}

func (s *Service) help(moreHelp bool) model.Response {
	if moreHelp {
		return model.Ask(text.CompleteHelp+" So, how can I help?", text.NextHelp)
	}
	return model.Tell(text.CompleteHelp)
}

func (s *Service) exit(moreHelp bool) model.Response {
	if moreHelp {
		return model.Tell("Okay. Whenever you're ready, you can start tracking your weight using health log.")
	}
	return model.Tell("")
}
