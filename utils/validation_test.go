package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidValueOfConstant(t *testing.T) {
	values := []string{"pending", "accepted", "denied"}

	assert.True(t, IsValidValueOfConstant("pending", values))
	assert.True(t, IsValidValueOfConstant("denied", values))
	assert.False(t, IsValidValueOfConstant("Pending", values))
	assert.False(t, IsValidValueOfConstant("", values))
	assert.False(t, IsValidValueOfConstant("cancelled", values))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("dara@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@domain@twice.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+85512345678"))
	assert.True(t, IsValidPhone("012 345 678"))
	assert.True(t, IsValidPhone("023 900 (100)"))
	assert.False(t, IsValidPhone("abc123"))
	assert.False(t, IsValidPhone("12"))
	assert.False(t, IsValidPhone(""))
}

func TestParseUintField(t *testing.T) {
	v, ok := ParseUintField("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), v)

	_, ok = ParseUintField("")
	assert.False(t, ok)

	_, ok = ParseUintField("-1")
	assert.False(t, ok)

	_, ok = ParseUintField("12.5")
	assert.False(t, ok)
}

func TestParseFloatField(t *testing.T) {
	v, ok := ParseFloatField("1500.75")
	assert.True(t, ok)
	assert.Equal(t, 1500.75, v)

	v, ok = ParseFloatField("-3")
	assert.True(t, ok)
	assert.Equal(t, -3.0, v)

	_, ok = ParseFloatField("")
	assert.False(t, ok)

	_, ok = ParseFloatField("budget")
	assert.False(t, ok)
}

func TestParseDateField(t *testing.T) {
	d, ok := ParseDateField("2026-03-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDateField("2026-03-15T18:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, 18, d.Hour())

	_, ok = ParseDateField("15/03/2026")
	assert.False(t, ok)

	_, ok = ParseDateField("")
	assert.False(t, ok)
}

func TestNormalizePagination(t *testing.T) {
	limit, page, offset := NormalizePagination(nil, nil, nil)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, offset)

	limit, page, offset = NormalizePagination(Ptr(25), Ptr(3), nil)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, offset)

	// limit is capped
	limit, _, _ = NormalizePagination(Ptr(9999), nil, nil)
	assert.Equal(t, 500, limit)

	// a raw offset is served as given, not snapped to a page boundary
	limit, page, offset = NormalizePagination(Ptr(5), nil, Ptr(7))
	assert.Equal(t, 5, limit)
	assert.Equal(t, 7, offset)
	assert.Equal(t, 2, page)

	limit, page, offset = NormalizePagination(Ptr(10), nil, Ptr(30))
	assert.Equal(t, 10, limit)
	assert.Equal(t, 30, offset)
	assert.Equal(t, 4, page)

	// explicit page wins over offset
	_, page, offset = NormalizePagination(Ptr(10), Ptr(2), Ptr(30))
	assert.Equal(t, 2, page)
	assert.Equal(t, 10, offset)

	// non-positive values fall back to defaults
	limit, page, offset = NormalizePagination(Ptr(-5), Ptr(0), nil)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, offset)
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	s := StringPtr("hall-a")
	assert.NotNil(t, s)
	assert.Equal(t, "hall-a", *s)
}
