// Package timespec parses compound durations such as "1h30m15s" into seconds
package timespec

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors
var (
	ErrInvalidFormat = errors.New("not a number")
	ErrUnknownUnit   = errors.New("unknown time unit")
)

// ParseError reports where in the input parsing stopped
type ParseError struct {
	Input  string
	Offset int  // Byte offset of the failing number or unit
	Unit   byte // Offending unit character, zero for ErrInvalidFormat
	Err    error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrUnknownUnit) {
		return fmt.Sprintf("`%c` is an unknown time unit in %q", e.Unit, e.Input)
	}
	return fmt.Sprintf("`%s` is not a number", e.Input[e.Offset:])
}

func (e *ParseError) Unwrap() error { return e.Err }

// Unit multipliers in seconds
const (
	Second = 1.0
	Minute = 60.0
	Hour   = 3600.0
)

// Parse converts a sequence of number+unit pairs into seconds
// A number without a unit counts as seconds; the empty string is zero
func Parse(spec string) (float64, error) {
	var total float64
	pos := 0

	for pos < len(spec) {
		n := scanNumber(spec[pos:])
		if n == 0 {
			return 0, &ParseError{Input: spec, Offset: pos, Err: ErrInvalidFormat}
		}

		x, err := strconv.ParseFloat(spec[pos:pos+n], 64)
		if err != nil {
			// Out of range literals still carry a usable value (±Inf)
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
				return 0, &ParseError{Input: spec, Offset: pos, Err: ErrInvalidFormat}
			}
		}
		pos += n

		mult := Second
		if pos < len(spec) {
			switch spec[pos] {
			case 's':
				mult = Second
			case 'm':
				mult = Minute
			case 'h':
				mult = Hour
			default:
				return 0, &ParseError{Input: spec, Offset: pos, Unit: spec[pos], Err: ErrUnknownUnit}
			}
			pos++
		}

		total += x * mult
	}

	return total, nil
}

// scanNumber returns the length of the longest decimal floating point prefix of s
// Grammar: [+-] digits [. digits] [(e|E) [+-] digits], at least one mantissa digit
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	// Exponent only counts when followed by at least one digit
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
