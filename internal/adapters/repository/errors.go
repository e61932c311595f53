package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNoRecord   = errors.New("no record for identity")
	ErrNilRecord  = errors.New("nil record")
	ErrNoIdentity = errors.New("empty identity")
)
