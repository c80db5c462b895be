package model

import (
	"errors"
	"fmt"
	"strings"
)

// Cents is a monetary amount in integer cents. All money the engine touches
// (hourly rates, log costs, escrow balances) is carried in cents so that
// arithmetic stays exact; the wire representation is a two-decimal number.
type Cents int64

// ErrBadAmount is returned when a monetary value cannot be parsed.
var ErrBadAmount = errors.New("invalid monetary amount")

// String renders the amount as a decimal with exactly two fraction digits,
// e.g. 3000 -> "30.00", -5 -> "-0.05".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the amount as a JSON number with two decimal places.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number (or the same number quoted) with at
// most two decimal places. More precision than a cent is rejected rather
// than silently rounded, since rounding is only ever allowed in the rate
// calculator.
func (c *Cents) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCents parses a decimal string such as "20", "20.5" or "20.50" into
// cents. Exponent notation and more than two fraction digits are rejected.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return 0, fmt.Errorf("%w: empty value", ErrBadAmount)
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && frac == "" {
		// A bare trailing dot ("20.") is malformed, not a zero fraction.
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	if hasFrac && len(frac) > 2 {
		return 0, fmt.Errorf("%w: %q has sub-cent precision", ErrBadAmount, s)
	}

	var units int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
		}
		units = units*10 + int64(r-'0')
		if units > 1<<53 {
			return 0, fmt.Errorf("%w: %q out of range", ErrBadAmount, s)
		}
	}
	cents := units * 100

	// Right-pad the fraction to two digits: "5" means 50 cents.
	for len(frac) < 2 {
		frac += "0"
	}
	for i, r := range frac {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
		}
		if i == 0 {
			cents += int64(r-'0') * 10
		} else {
			cents += int64(r - '0')
		}
	}

	if neg {
		cents = -cents
	}
	return Cents(cents), nil
}
