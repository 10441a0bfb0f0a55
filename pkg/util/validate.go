package util

import (
	"errors"
	"regexp"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{8,15}$`)
)

func IsEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email")
	}
	return nil
}

func IsPhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return errors.New("invalid phone")
	}
	return nil
}
