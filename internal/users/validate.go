// Package users validates profile names before they reach the store.
package users

import (
	"errors"
	"unicode"
)

// Name length limits, in runes.
const (
	MinNameLen = 2
	MaxNameLen = 15
)

// Validation failures. Each one maps to a distinct message in the profile
// screen, so they are sentinels rather than a single formatted error.
var (
	ErrNameEmpty        = errors.New("name is empty")
	ErrNameTooShort     = errors.New("name is too short")
	ErrNameTooLong      = errors.New("name is too long")
	ErrNameBadFirstChar = errors.New("name must start with a letter")
	ErrNameBadChars     = errors.New("name contains invalid characters")
	ErrNameTaken        = errors.New("name is already taken")
)

// ValidateNew checks a candidate profile name. The exists func reports
// whether a user with that exact name is already registered; it is only
// consulted once all shape checks pass.
func ValidateNew(name string, exists func(string) (bool, error)) error {
	runes := []rune(name)

	switch {
	case len(runes) == 0:
		return ErrNameEmpty
	case len(runes) < MinNameLen:
		return ErrNameTooShort
	case len(runes) > MaxNameLen:
		return ErrNameTooLong
	}

	if !unicode.IsLetter(runes[0]) {
		return ErrNameBadFirstChar
	}
	for _, r := range runes {
		if !validNameRune(r) {
			return ErrNameBadChars
		}
	}

	taken, err := exists(name)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	return nil
}

func validNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == ' ' || r == '-' || r == '_'
}
