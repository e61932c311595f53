package app

import "errors"

// Sentinel kinds for dispatch errors. Both indicate a skill
// misconfiguration, not a user mistake.
var (
	ErrUnknownIntent      = errors.New("unrecognized intent")
	ErrUnknownRequestType = errors.New("unrecognized request type")
)
