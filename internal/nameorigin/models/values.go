package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	dErrors "github.com/abstract-333/name-origin-api/pkg/domain-errors"
)

// MaxNameLength is the longest name accepted, in characters.
const MaxNameLength = 100

var (
	ErrEmptyName          = dErrors.New(dErrors.CodeValidation, "name can't be empty")
	ErrNameTooLong        = dErrors.New(dErrors.CodeValidation, "name is too long")
	ErrProbabilityTooHigh = dErrors.New(dErrors.CodeValidation, "probability is too high")
	ErrProbabilityTooLow  = dErrors.New(dErrors.CodeValidation, "probability is too low")
	ErrNegativeCount      = dErrors.New(dErrors.CodeValidation, "count of requests cannot be negative")
)

// Name is a validated person name. The zero value is not a valid Name.
type Name struct {
	value string
}

// NewName validates value. It must contain a non-space character and be at
// most MaxNameLength characters long.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, ErrEmptyName
	}
	if n := utf8.RuneCountInString(value); n > MaxNameLength {
		return Name{}, fmt.Errorf("%w: %d characters, maximum is %d", ErrNameTooLong, n, MaxNameLength)
	}
	return Name{value: value}, nil
}

// MustName panics on invalid input. For fixtures and tests.
func MustName(value string) Name {
	n, err := NewName(value)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string { return n.value }

// IsZero reports whether n was never constructed.
func (n Name) IsZero() bool { return n.value == "" }

// Probability is a float in [0.0, 1.0].
type Probability struct {
	value float64
}

func NewProbability(value float64) (Probability, error) {
	if value > 1.0 {
		return Probability{}, fmt.Errorf("%w: %v, maximum allowed is 1.0", ErrProbabilityTooHigh, value)
	}
	// NaN fails both comparisons; treat it as below range.
	if !(value >= 0) {
		return Probability{}, fmt.Errorf("%w: %v, minimum allowed is 0.0", ErrProbabilityTooLow, value)
	}
	return Probability{value: value}, nil
}

func MustProbability(value float64) Probability {
	p, err := NewProbability(value)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Probability) Float64() float64 { return p.value }

// CountOfRequests is the number of upstream observations backing a record.
type CountOfRequests struct {
	value int
}

func NewCountOfRequests(value int) (CountOfRequests, error) {
	if value < 0 {
		return CountOfRequests{}, fmt.Errorf("%w: %d", ErrNegativeCount, value)
	}
	return CountOfRequests{value: value}, nil
}

func MustCountOfRequests(value int) CountOfRequests {
	c, err := NewCountOfRequests(value)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CountOfRequests) Int() int { return c.value }
