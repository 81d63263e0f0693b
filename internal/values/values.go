// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package values parses whitespace separated text into typed values.
// Every error returned wraps exactly one of ErrUnknownKind, ErrSyntax,
// ErrRange or ErrUnordered.
package values

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

var (
	// ErrUnknownKind is returned for an unrecognised Kind name.
	ErrUnknownKind = errors.New("unknown value type")
	// ErrSyntax is returned for a token that is not a valid value of the
	// requested kind.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange is returned for a numeric token that does not fit.
	ErrRange = errors.New("value out of range")
	// ErrUnordered is returned for values, such as NaN, that cannot be
	// consistently ordered.
	ErrUnordered = errors.New("value cannot be ordered")
)

// Kind represents the type of values to be parsed.
type Kind int

// Values for Kind.
const (
	Int Kind = iota
	Float
	String
)

var kindNames = []string{"int", "float", "string"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns the names of all supported kinds.
func Kinds() []string {
	return slices.Clone(kindNames)
}

// ParseKind returns the Kind named by name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return Int, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

func numError(tok string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return fmt.Errorf("%q: %w", tok, ErrRange)
	}
	return fmt.Errorf("%q: %w", tok, ErrSyntax)
}

// ParseInt parses a base 10 int64.
func ParseInt(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, numError(tok, err)
	}
	return v, nil
}

// ParseFloat parses a float64, rejecting NaN.
func ParseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, numError(tok, err)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%q: %w", tok, ErrUnordered)
	}
	return v, nil
}

// ParseString returns tok unchanged.
func ParseString(tok string) (string, error) {
	return tok, nil
}

// Scan reads whitespace separated tokens from rd and parses each one
// using parse. All of the values that parse successfully are returned
// along with an error that contains every failure, each annotated
// with name:line. Lines may be of any length.
func Scan[T any](name string, rd io.Reader, parse func(string) (T, error)) ([]T, error) {
	var out []T
	errs := &errors.M{}
	br := bufio.NewReader(rd)
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		for _, tok := range strings.Fields(text) {
			v, perr := parse(tok)
			if perr != nil {
				errs.Append(errors.Annotate(fmt.Sprintf("%v:%v", name, line), perr))
				continue
			}
			out = append(out, v)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			errs.Append(errors.Annotate(name, err))
			break
		}
	}
	return out, errs.Err()
}
