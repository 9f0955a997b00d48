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
	"dirpx.dev/syncstop/kind"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder, in order, and then frozen
// into an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for the given
// kind. The default is used when neither an override nor an errno rule
// matches.
func WithHTTPDefault(k kind.Kind, http int) Option {
	return func(b *builder) { b.httpDefaults[k] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for the given kind.
func WithGRPCDefault(k kind.Kind, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[k] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given kind.
// Overrides take precedence over errno rules and defaults.
func WithHTTPOverride(k kind.Kind, http int) Option {
	return func(b *builder) { b.httpOverride[k] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given kind.
func WithGRPCOverride(k kind.Kind, grpc int) Option {
	return func(b *builder) { b.grpcOverride[k] = grpc }
}

// WithHTTPErrno adds or replaces the HTTP rule for Posix reasons carrying
// errno.
func WithHTTPErrno(errno, http int) Option {
	return func(b *builder) { b.httpErrno[errno] = http }
}

// WithGRPCErrno adds or replaces the gRPC rule for Posix reasons carrying
// errno.
func WithGRPCErrno(errno, grpc int) Option {
	return func(b *builder) { b.grpcErrno[errno] = grpc }
}

// WithFallback replaces the statuses used when a kind has no default.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}

// WithoutDefaults drops every library default seen so far: per-kind
// defaults and built-in errno rules. Options applied after it still take
// effect.
func WithoutDefaults() Option {
	return func(b *builder) {
		clear(b.httpDefaults)
		clear(b.grpcDefaults)
		clear(b.httpErrno)
		clear(b.grpcErrno)
	}
}
