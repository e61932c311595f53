// Package model contains domain models passed between layers.
package model

// Request types delivered by the voice platform.
const (
	TypeLaunch       = "LaunchRequest"
	TypeIntent       = "IntentRequest"
	TypeSessionEnded = "SessionEndedRequest"
)

// Intent names recognized by the skill.
const (
	IntentAddUser    = "AddUserIntent"
	IntentSetWeight  = "SetWeightIntent"
	IntentSetHeight  = "SetHeightIntent"
	IntentTellWeight = "TellWeightIntent"
	IntentTellHeight = "TellHeightIntent"
	IntentResetUsers = "ResetUsersIntent"
	IntentHelp       = "AMAZON.HelpIntent"
	IntentCancel     = "AMAZON.CancelIntent"
	IntentStop       = "AMAZON.StopIntent"
)

// Slot names recognized inside an intent.
const (
	SlotUserName     = "UserName"
	SlotWeightNumber = "WeightNumber"
	SlotHeightNumber = "HeightNumber"
)

// Event is one pre-parsed utterance handed to the conversation manager.
// Identity is an opaque key supplied by the platform; it is used verbatim
// for storage. NewSession is true only on the request that opened the
// session.
type Event struct {
	RequestID  string
	Type       string
	Intent     string
	Slots      map[string]string
	Identity   string
	NewSession bool
}

// Slot returns the value of a named slot, or "" when absent.
func (e Event) Slot(name string) string {
	return e.Slots[name]
}
