package service

import (
	"errors"
	"time"
	"unicode"
)

// birthdateLayout is the fixed input pattern for birthdates (dd.MM.yyyy).
const birthdateLayout = "02.01.2006"

// minimumAge is the youngest a user may be, in years.
const minimumAge = 18

// minPasswordLength is the composite password policy's length floor.
const minPasswordLength = 16

// Field validation errors. Services translate these into MAPPING_ERROR or
// PASSWORD_ERROR; they never cross the service boundary as raw errors.
var (
	ErrBirthdateFormat  = errors.New("birthdate does not match the dd.MM.yyyy pattern")
	ErrBirthdateTooLate = errors.New("birthdate is after the minimum-age cutoff")
	ErrPasswordPolicy   = errors.New("password does not fulfill the policy")
)

// parseBirthdate parses a dd.MM.yyyy birthdate string and checks it denotes
// an age at or above the minimum-age cutoff.
func parseBirthdate(value string, now time.Time) (time.Time, error) {
	birthdate, err := time.Parse(birthdateLayout, value)
	if err != nil {
		return time.Time{}, ErrBirthdateFormat
	}

	cutoff := now.AddDate(-minimumAge, 0, 0)
	if birthdate.After(cutoff) {
		return time.Time{}, ErrBirthdateTooLate
	}

	return birthdate, nil
}

// validatePassword checks the composite password policy: minimum length and
// at least one lowercase letter, one uppercase letter, one digit and one
// non-alphanumeric symbol.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordPolicy
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	if !lower || !upper || !digit || !symbol {
		return ErrPasswordPolicy
	}
	return nil
}
