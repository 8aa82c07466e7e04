package utils

import "regexp"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// ValidateUsername checks that a handle is 3-30 chars of letters, numbers,
// underscores or hyphens. No spaces, no '@'.
func ValidateUsername(username string) bool {
	return usernamePattern.MatchString(username)
}
