package cli

import (
	"time"

	scalar "github.com/alexflint/go-scalar"
)

// Built-in ParseFuncs for KeyParse, backed by go-scalar. Any
// func(string) (interface{}, error) works in their place.

// ToString returns the raw token unchanged.
func ToString(s string) (interface{}, error) {
	return s, nil
}

// ToInt parses the raw token as a decimal integer.
func ToInt(s string) (interface{}, error) {
	var v int
	if err := scalar.Parse(&v, s); err != nil {
		return nil, err
	}
	return v, nil
}

// ToInt64 parses the raw token as a 64-bit decimal integer.
func ToInt64(s string) (interface{}, error) {
	var v int64
	if err := scalar.Parse(&v, s); err != nil {
		return nil, err
	}
	return v, nil
}

// ToUint parses the raw token as an unsigned decimal integer.
func ToUint(s string) (interface{}, error) {
	var v uint
	if err := scalar.Parse(&v, s); err != nil {
		return nil, err
	}
	return v, nil
}

// ToFloat64 parses the raw token as a floating point number.
func ToFloat64(s string) (interface{}, error) {
	var v float64
	if err := scalar.Parse(&v, s); err != nil {
		return nil, err
	}
	return v, nil
}

// ToBool parses the raw token with strconv.ParseBool semantics.
func ToBool(s string) (interface{}, error) {
	var v bool
	if err := scalar.Parse(&v, s); err != nil {
		return nil, err
	}
	return v, nil
}

// ToDuration parses the raw token with time.ParseDuration semantics.
func ToDuration(s string) (interface{}, error) {
	var v time.Duration
	if err := scalar.Parse(&v, s); err != nil {
		return nil, err
	}
	return v, nil
}
