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

package apis

import (
	"dirpx.dev/syncstop"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves a stop reason into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for r. For Posix reasons without an
	// errno-specific rule the mapper falls back to the kind-level rule.
	HTTPStatus(r syncstop.Reason) int

	// GRPCStatus returns the gRPC status code for r, with the same fallback
	// as HTTPStatus.
	GRPCStatus(r syncstop.Reason) codes.Code

	// Status resolves both HTTP and gRPC in a single call.
	Status(r syncstop.Reason) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(r syncstop.Reason) string
}

// Status is a resolved pair of transport statuses for a single reason.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
