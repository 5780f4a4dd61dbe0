// Package user resolves the operating system user, used as the default
// game username
package user

import (
	"os"
	"os/user"
)

// GetCurrentUsername returns the current system username.
// It falls back to the USER environment variable, then to "player".
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}

	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "player"
}
