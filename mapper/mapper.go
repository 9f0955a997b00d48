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

package mapper

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/syncstop"
	"dirpx.dev/syncstop/apis"
	"dirpx.dev/syncstop/internal/errnames"
	"dirpx.dev/syncstop/kind"
	"google.golang.org/grpc/codes"
)

// ErrInvalidRule is returned by New when an option carries an undeclared
// kind, an out-of-range status, or maps a kind other than Complete to gRPC
// OK.
var ErrInvalidRule = errors.New("mapper: invalid rule")

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (per kind and per errno).
//  2. Apply user-provided options in order.
//  3. Validate every kind and status.
//  4. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	b.seed()

	for _, opt := range opts {
		opt(b)
	}

	if err := b.validate(); err != nil {
		return nil, err
	}

	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpErrno:    freezeHTTP(b.httpErrno),
		grpcErrno:    freezeGRPC(b.grpcErrno),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}
	return m, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper combines per-kind overrides, per-errno rules and per-kind defaults.
// Lookups are O(1) and safe for concurrent use once constructed.
type mapper struct {
	httpDefault map[kind.Kind]int
	grpcDefault map[kind.Kind]codes.Code

	// Overrides win over everything else for their kind.
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	// Errno rules only apply to Posix reasons.
	httpErrno map[int]int
	grpcErrno map[int]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for r.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override;
//  2. per-errno rule, for Posix reasons;
//  3. per-kind default;
//  4. fallback.
func (m *mapper) HTTPStatus(r syncstop.Reason) int {
	v, _ := m.resolveHTTP(r)
	return v
}

// GRPCStatus resolves a gRPC status for r, with the same precedence as
// HTTPStatus.
func (m *mapper) GRPCStatus(r syncstop.Reason) codes.Code {
	v, _ := m.resolveGRPC(r)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(r syncstop.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(r),
		GRPC: m.GRPCStatus(r),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for r.
//
// Example output:
//
//	reason="Posix (110: connection timed out)" kind=posix errno=ETIMEDOUT(110)
//	http: source=errno -> 504
//	grpc: source=errno -> DEADLINE_EXCEEDED(4)
//
// source is one of override, errno, default or fallback.
func (m *mapper) Explain(r syncstop.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "reason=%q kind=%s", r.String(), r.Kind().Name())
	if code, ok := r.PosixCode(); ok {
		_, _ = fmt.Fprintf(&b, " errno=%s", errnoLabel(code))
	}
	b.WriteByte('\n')

	v, src := m.resolveHTTP(r)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, v)

	g, src := m.resolveGRPC(r)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, grpcName(g), int(g))

	return b.String()
}

func (m *mapper) resolveHTTP(r syncstop.Reason) (int, string) {
	k := r.Kind()
	if v, ok := m.httpOverride[k]; ok {
		return v, "override"
	}
	if code, ok := r.PosixCode(); ok {
		if v, ok := m.httpErrno[code]; ok {
			return v, "errno"
		}
	}
	if v, ok := m.httpDefault[k]; ok {
		return v, "default"
	}
	return m.fallbackHTTP, "fallback"
}

func (m *mapper) resolveGRPC(r syncstop.Reason) (codes.Code, string) {
	k := r.Kind()
	if v, ok := m.grpcOverride[k]; ok {
		return v, "override"
	}
	if code, ok := r.PosixCode(); ok {
		if v, ok := m.grpcErrno[code]; ok {
			return v, "errno"
		}
	}
	if v, ok := m.grpcDefault[k]; ok {
		return v, "default"
	}
	return m.fallbackGRPC, "fallback"
}

// validate checks every rule collected by the builder. Rules are visited
// in kind order, then errno order, so the reported rule is always the same.
//
// Only Complete may resolve to gRPC OK: an OK status carries no details, so
// any other kind mapped to OK could not be recovered from it.
func (b *builder) validate() error {
	if k, ok := firstUndeclared(b.httpDefaults, b.httpOverride, b.grpcDefaults, b.grpcOverride); ok {
		return fmt.Errorf("mapper: rule for %v: %w", k, ErrInvalidRule)
	}
	for _, k := range kind.All() {
		for _, rules := range []map[kind.Kind]int{b.httpOverride, b.httpDefaults} {
			if v, ok := rules[k]; ok && !validHTTP(v) {
				return fmt.Errorf("mapper: HTTP status %d for kind %v: %w", v, k, ErrInvalidRule)
			}
		}
		for _, rules := range []map[kind.Kind]int{b.grpcOverride, b.grpcDefaults} {
			v, ok := rules[k]
			if !ok {
				continue
			}
			if !validGRPC(v) {
				return fmt.Errorf("mapper: gRPC code %d for kind %v: %w", v, k, ErrInvalidRule)
			}
			if k != kind.Complete && codes.Code(v) == codes.OK {
				return fmt.Errorf("mapper: gRPC OK for kind %v: %w", k, ErrInvalidRule)
			}
		}
	}
	for _, errno := range slices.Sorted(maps.Keys(b.httpErrno)) {
		if v := b.httpErrno[errno]; !validHTTP(v) {
			return fmt.Errorf("mapper: HTTP status %d for errno %d: %w", v, errno, ErrInvalidRule)
		}
	}
	for _, errno := range slices.Sorted(maps.Keys(b.grpcErrno)) {
		v := b.grpcErrno[errno]
		if !validGRPC(v) {
			return fmt.Errorf("mapper: gRPC code %d for errno %d: %w", v, errno, ErrInvalidRule)
		}
		if codes.Code(v) == codes.OK {
			return fmt.Errorf("mapper: gRPC OK for errno %d: %w", errno, ErrInvalidRule)
		}
	}
	if !validHTTP(b.fallbackHTTP) {
		return fmt.Errorf("mapper: fallback HTTP status %d: %w", b.fallbackHTTP, ErrInvalidRule)
	}
	if !validGRPC(b.fallbackGRPC) || codes.Code(b.fallbackGRPC) == codes.OK {
		return fmt.Errorf("mapper: fallback gRPC code %d: %w", b.fallbackGRPC, ErrInvalidRule)
	}
	return nil
}

// firstUndeclared returns the lowest undeclared kind used as a key in any
// of the rule maps.
func firstUndeclared(rules ...map[kind.Kind]int) (kind.Kind, bool) {
	var bad []kind.Kind
	for _, m := range rules {
		for k := range m {
			if !k.Valid() {
				bad = append(bad, k)
			}
		}
	}
	if len(bad) == 0 {
		return 0, false
	}
	return slices.Min(bad), true
}

// errnoLabel renders an errno as NAME(code), or just the code when the
// platform has no name for it.
func errnoLabel(code int) string {
	if name := errnames.Name(code); name != "" {
		return fmt.Sprintf("%s(%d)", name, code)
	}
	return fmt.Sprint(code)
}
