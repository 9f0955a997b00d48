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

package syncstop

import (
	"hash/maphash"
	"log/slog"
	"strconv"
	"syscall"

	"dirpx.dev/syncstop/kind"
)

// Reason is the terminal disposition of one sync attempt.
//
// Only Posix reasons carry a payload; for every other kind code and message
// stay at their zero values and the accessors report them as absent. The
// zero Reason is Unknown.
type Reason struct {
	kind    kind.Kind
	code    int
	message string
}

// Key is the identity of a Reason: its kind and, for Posix reasons, its
// errno. Keys are comparable and can be used as map keys to deduplicate
// reasons.
type Key struct {
	kind kind.Kind
	code int
}

// Kind returns the kind recorded in the key.
func (k Key) Kind() kind.Kind { return k.kind }

// Payload-free reasons are built once at package initialization.
var (
	complete  = Reason{kind: kind.Complete}
	requested = Reason{kind: kind.Requested}
	unknown   = Reason{kind: kind.Unknown}
)

var hashSeed = maphash.MakeSeed()

// Complete returns the reason for a sync that reached the chain tip.
func Complete() Reason { return complete }

// Requested returns the reason for a sync stopped on request.
func Requested() Reason { return requested }

// Unknown returns the reason for a sync that stopped for an unnamed cause.
func Unknown() Reason { return unknown }

// Posix returns a reason for a sync stopped by a system error.
//
// Neither argument is validated: any code, including negative values, and
// any message, including "", are kept as given.
func Posix(code int, message string) Reason {
	return Reason{kind: kind.Posix, code: code, message: message}
}

// FromErrno returns a Posix reason for errno whose message is the platform
// description of the error, the same text strerror(3) produces on unix.
func FromErrno(errno syscall.Errno) Reason {
	return Posix(int(errno), errno.Error())
}

// Kind returns the active kind.
func (r Reason) Kind() kind.Kind { return r.kind }

// IsPosix reports whether r carries an errno payload.
func (r Reason) IsPosix() bool { return r.kind == kind.Posix }

// PosixCode returns the errno of a Posix reason. ok is false for any other
// kind.
func (r Reason) PosixCode() (code int, ok bool) {
	if r.kind != kind.Posix {
		return 0, false
	}
	return r.code, true
}

// PosixMessage returns the description of a Posix reason. ok is false for
// any other kind; an empty message of a Posix reason is reported with ok set.
func (r Reason) PosixMessage() (message string, ok bool) {
	if r.kind != kind.Posix {
		return "", false
	}
	return r.message, true
}

// Errno is PosixCode typed as a syscall.Errno.
func (r Reason) Errno() (syscall.Errno, bool) {
	code, ok := r.PosixCode()
	if !ok {
		return 0, false
	}
	return syscall.Errno(code), true
}

// String renders the reason for display:
//
//	Complete
//	Requested
//	Unknown
//	Posix (<code>: <message>)
//
// Tooling may parse this text, so the format must not change.
func (r Reason) String() string {
	switch r.kind {
	case kind.Complete, kind.Requested, kind.Unknown:
		return r.kind.String()
	case kind.Posix:
		return "Posix (" + strconv.Itoa(r.code) + ": " + r.message + ")"
	default:
		return r.kind.String()
	}
}

// Key returns the identity of r. The message of a Posix reason is not part
// of it.
func (r Reason) Key() Key {
	if r.kind != kind.Posix {
		return Key{kind: r.kind}
	}
	return Key{kind: r.kind, code: r.code}
}

// Equal reports whether r and other name the same stop cause: the kinds
// match and, for Posix reasons, the errno values match. Messages are
// ignored.
func (r Reason) Equal(other Reason) bool {
	return r.Key() == other.Key()
}

// Hash returns a hash of r's Key. Equal reasons hash equal within one
// process; the value is not stable across processes.
func (r Reason) Hash() uint64 {
	return maphash.Comparable(hashSeed, r.Key())
}

// LogValue implements slog.LogValuer.
func (r Reason) LogValue() slog.Value {
	if r.kind != kind.Posix {
		return slog.GroupValue(slog.String("kind", r.kind.Name()))
	}
	return slog.GroupValue(
		slog.String("kind", r.kind.Name()),
		slog.Int("errno", r.code),
		slog.String("message", r.message),
	)
}
