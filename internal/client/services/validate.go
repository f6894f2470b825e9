package services

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateEmail checks the address shape used by the registration and
// login forms.
func ValidateEmail(email string) []string {
	if email == "" {
		return []string{"Email is required"}
	}
	if !emailRe.MatchString(email) {
		return []string{"Please enter a valid email address"}
	}
	return nil
}

func ValidatePassword(password string) []string {
	switch {
	case password == "":
		return []string{"Password is required"}
	case len(password) < 6:
		return []string{"Password must be at least 6 characters long"}
	case len(password) > 200:
		return []string{"Password must be less than 200 characters"}
	}
	return nil
}

func ValidateUsername(username string) []string {
	switch {
	case username == "":
		return []string{"Username is required"}
	case strings.TrimSpace(username) == "":
		return []string{"Username cannot be empty"}
	case len(username) < 3:
		return []string{"Username must be at least 3 characters long"}
	case len(username) > 30:
		return []string{"Username must be less than 30 characters"}
	case !usernameRe.MatchString(username):
		return []string{"Username can only contain letters, numbers, underscores, and hyphens"}
	}
	return nil
}

// ValidateRegistration collects every problem with the registration
// form so they can all be shown at once.
func ValidateRegistration(username, email, password string) []string {
	var errs []string
	errs = append(errs, ValidateUsername(username)...)
	errs = append(errs, ValidateEmail(email)...)
	errs = append(errs, ValidatePassword(password)...)
	return errs
}
