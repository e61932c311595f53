// Package text owns the static help copy and user-name sanitization.
package text

import "strings"

// CompleteHelp is the full help prompt.
const CompleteHelp = "Here's some things you can say. Add user, reset user data, and exit."

// NextHelp is the shorter next-step prompt used while a session is open.
const NextHelp = "You can track a user's weight, add a player, or say help." +
	" What would you like?"

// nameBlacklist holds terms that only show up through mis-recognition.
var nameBlacklist = []string{"player", "players"}

// SanitizeUserName extracts a usable first name from recognized speech.
// Only a single first name is kept: anything after the first space is
// discarded. Blacklisted terms and empty input report not ok. No case
// folding is applied; recognized text arrives lowercased from the platform.
func SanitizeUserName(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	name := raw
	if i := strings.Index(raw, " "); i >= 0 {
		name = raw[:i]
	}
	if name == "" {
		return "", false
	}

	for _, banned := range nameBlacklist {
		if name == banned {
			return "", false
		}
	}
	return name, true
}
