package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// builtins are the well-known transforms MySQL migrations reach for. Each is
// a total function over its expected input shape; unexpected input is an
// error rather than a silent pass-through.
var builtins = map[string]Func{
	"zero_dates_to_null":     ZeroDatesToNull,
	"date_with_no_separator": DateWithNoSeparator,
	"time_with_no_separator": TimeWithNoSeparator,
	"tinyint_to_boolean":     TinyintToBoolean,
	"int_to_ip":              IntToIP,
	"empty_string_to_null":   EmptyStringToNull,
	"right_trim":             RightTrim,
	"remove_null_characters": RemoveNullCharacters,
}

// ZeroDatesToNull maps MySQL zero dates ("0000-00-00", with or without a
// zero time part) to NULL.
func ZeroDatesToNull(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	switch strings.TrimSpace(*value) {
	case "", "0000-00-00", "0000-00-00 00:00:00":
		return nil, nil
	}

	return value, nil
}

// DateWithNoSeparator reformats compact dates: 8 digits become a date and 14
// digits a timestamp.
func DateWithNoSeparator(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	digits := strings.TrimSpace(*value)
	switch len(digits) {
	case 8:
		out := fmt.Sprintf("%s-%s-%s", digits[0:4], digits[4:6], digits[6:8])
		return &out, nil
	case 14:
		out := fmt.Sprintf("%s-%s-%s %s:%s:%s",
			digits[0:4], digits[4:6], digits[6:8],
			digits[8:10], digits[10:12], digits[12:14])
		return &out, nil
	}

	return nil, errors.Errorf("date with no separator: unexpected value %q", *value)
}

// TimeWithNoSeparator reformats a compact 6-digit time as HH:MM:SS.
func TimeWithNoSeparator(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	digits := strings.TrimSpace(*value)
	if len(digits) != 6 {
		return nil, errors.Errorf("time with no separator: unexpected value %q", *value)
	}

	out := fmt.Sprintf("%s:%s:%s", digits[0:2], digits[2:4], digits[4:6])
	return &out, nil
}

// TinyintToBoolean maps MySQL tinyint(1) values to booleans: zero is false,
// anything else true.
func TinyintToBoolean(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	out := "true"
	if strings.TrimSpace(*value) == "0" {
		out = "false"
	}

	return &out, nil
}

// IntToIP renders an unsigned 32-bit integer as a dotted-quad IPv4 address.
func IntToIP(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	n, err := strconv.ParseUint(strings.TrimSpace(*value), 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "int to ip: unexpected value %q", *value)
	}

	out := fmt.Sprintf("%d.%d.%d.%d", byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	return &out, nil
}

// EmptyStringToNull maps the empty string to NULL.
func EmptyStringToNull(value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	return value, nil
}

// RightTrim removes trailing spaces, the padding MySQL CHAR columns carry.
func RightTrim(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	out := strings.TrimRight(*value, " ")
	return &out, nil
}

// RemoveNullCharacters strips NUL bytes, which PostgreSQL text columns
// reject.
func RemoveNullCharacters(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	out := strings.ReplaceAll(*value, "\x00", "")
	return &out, nil
}
