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

// Package syncstop models why a blockchain sync attempt stopped.
//
// A Reason is a small immutable value with exactly one of four kinds
// (see package kind):
//
//   - Complete: the sync reached the chain tip;
//   - Requested: a caller asked the sync to stop;
//   - Unknown: the engine could not name a cause;
//   - Posix: a system error stopped the sync. Only this kind carries a
//     payload, an errno value and its description.
//
// Reasons are passed by value. Equality is defined by Equal and Key, not by
// Go's == operator: two Posix reasons with the same errno are the same
// reason even when their messages differ.
//
//	r := syncstop.FromErrno(syscall.ECONNRESET)
//	switch r.Kind() {
//	case kind.Complete, kind.Requested:
//	    // nothing to report
//	case kind.Posix:
//	    code, _ := r.PosixCode()
//	    ...
//	case kind.Unknown:
//	    ...
//	}
package syncstop
