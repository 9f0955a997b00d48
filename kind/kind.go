/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Kind is the tag of a sync stop reason.
//
// The zero value is Unknown, so an unset Kind never claims that a sync
// completed or failed.
type Kind uint8

const (
	// Unknown means the sync stopped for a cause the engine could not name.
	Unknown Kind = iota

	// Complete means the sync ran to the end of the chain.
	Complete

	// Requested means the sync was stopped because a caller asked for it.
	Requested

	// Posix means the sync stopped on a system-level error. Reasons of this
	// kind carry an errno value and its description.
	Posix
)

// count is the number of declared kinds. Keep it last-plus-one.
const count = int(Posix) + 1

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a stop kind.
	ErrKindInvalid = errors.New("syncstop: invalid kind")
)

var (
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

var displayNames = [count]string{
	Unknown:   "Unknown",
	Complete:  "Complete",
	Requested: "Requested",
	Posix:     "Posix",
}

var wireNames = [count]string{
	Unknown:   "unknown",
	Complete:  "complete",
	Requested: "requested",
	Posix:     "posix",
}

// All returns every kind in declaration order. The returned slice is a fresh
// copy.
func All() []Kind {
	return []Kind{Unknown, Complete, Requested, Posix}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return int(k) < count
}

// String returns the display name of the kind. Undeclared values render as
// "Kind(N)".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return displayNames[k]
}

// Name returns the lower-case wire name of the kind, or "" for undeclared
// values.
func (k Kind) Name() string {
	if !k.Valid() {
		return ""
	}
	return wireNames[k]
}

// Normalize brings an arbitrary string closer to a wire name: it trims
// spaces, lower-cases and replaces '-' with '_'. The result is not
// guaranteed to be a valid name.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes s and resolves it to a Kind. Both the wire and the
// display forms are accepted, case-insensitively.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	for i, name := range wireNames {
		if s == name {
			return Kind(i), nil
		}
	}
	return Unknown, ErrKindInvalid
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate returns ErrKindInvalid for undeclared kinds.
func Validate(k Kind) error {
	if !k.Valid() {
		return ErrKindInvalid
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
