//go:build unix

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

// Package errnames resolves errno values to their symbolic names.
package errnames

import "golang.org/x/sys/unix"

// Name returns the symbolic name of code, e.g. "ENOENT", or "" when the
// platform has no name for it.
func Name(code int) string {
	if code < 0 {
		return ""
	}
	return unix.ErrnoName(unix.Errno(code))
}
