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
	"google.golang.org/grpc/codes"
)

type builder struct {
	// httpDefaults holds per-kind HTTP defaults (library defaults seeded first).
	httpDefaults map[kind.Kind]int
	// grpcDefaults holds per-kind gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[kind.Kind]int

	// httpOverride holds exact per-kind HTTP overrides (higher than errno rules).
	httpOverride map[kind.Kind]int
	// grpcOverride holds exact per-kind gRPC overrides as ints.
	grpcOverride map[kind.Kind]int

	// httpErrno holds per-errno HTTP rules for Posix reasons.
	httpErrno map[int]int
	// grpcErrno holds per-errno gRPC rules for Posix reasons.
	grpcErrno map[int]int

	// global fallbacks used when a kind has no default at all.
	fallbackHTTP int
	fallbackGRPC int
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[kind.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[kind.Kind]int, len(defaultGRPC)),

		httpOverride: make(map[kind.Kind]int),
		grpcOverride: make(map[kind.Kind]int),
		httpErrno:    make(map[int]int, len(errnoDefaults)),
		grpcErrno:    make(map[int]int, len(errnoDefaults)),

		fallbackHTTP: 500,
		fallbackGRPC: int(codes.Internal),
	}
}

// seed copies the library defaults into the builder.
func (b *builder) seed() {
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for _, d := range errnoDefaults {
		b.httpErrno[d.errno] = d.http
		b.grpcErrno[d.errno] = int(d.grpc)
	}
}
