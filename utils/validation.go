package utils

import (
	"net/mail"
	"regexp"
	"strconv"
	"time"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s\-\.\(\)]{5,24}$`)

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, v := range constantValues {
		if v == value {
			return true
		}
	}
	return false
}

func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ParseUintField coerces a numeric-looking string to uint; empty strings are
// treated as absent.
func ParseUintField(s string) (uint, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func ParseFloatField(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDateField accepts either a plain date or a full RFC3339 timestamp.
func ParseDateField(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
