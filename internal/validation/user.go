// Package validation contains input validation rules shared by handlers.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLength is the credential-account minimum.
	MinPasswordLength = 6

	// MinRadiusKm and MaxRadiusKm bound the configurable discovery radius;
	// DefaultRadiusKm applies when the client does not pass one.
	MinRadiusKm     = 0.5
	MaxRadiusKm     = 50.0
	DefaultRadiusKm = 5.0

	// MinSearchQueryLength is the shortest accepted user-search query.
	MinSearchQueryLength = 2
)

// ValidateEmail checks the email has a plausible mailbox@domain shape.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// ValidateCoordinates checks that a latitude/longitude pair is in range.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateRadiusKm checks the discovery radius bounds.
func ValidateRadiusKm(radius float64) error {
	if radius < MinRadiusKm || radius > MaxRadiusKm {
		return errors.New("radius must be between 0.5 and 50 km")
	}
	return nil
}

// IsDataImageURL reports whether s looks like an inline base64 image.
func IsDataImageURL(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}
