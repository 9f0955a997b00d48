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

// Package mapper provides deterministic, immutable mappings from sync stop
// reasons (dirpx.dev/syncstop) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// Observers of a wallet manager often sit behind a transport: a REST
// gateway reporting sync state, a gRPC stream of wallet events. They need
// to turn a stop reason into a concrete status. Package mapper does that in
// a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per kind;
//   - errno-aware: Posix reasons can be mapped per errno value;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the kind;
//  2. per-errno rule (Posix reasons only);
//  3. per-kind default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal unless changed).
//
// On unix the package ships errno rules for common failures, for example
// ETIMEDOUT -> 504 / DeadlineExceeded and ECONNRESET -> 503 / Unavailable.
// Other platforms start without errno rules.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.Requested, 499), // nginx-style
//	    mapper.WithHTTPErrno(int(syscall.ENOSPC), http.StatusServiceUnavailable),
//	)
//	if err != nil {
//	    // out-of-range status, etc.
//	}
//
//	st := m.Status(syncstop.FromErrno(syscall.ENOSPC))
//	// st.HTTP == 503, st.GRPC == codes.ResourceExhausted
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a reason was
// resolved. It is meant for inspection and logging, not for machine
// parsing.
package mapper
