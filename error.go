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

import "errors"

// Error carries a stop reason through an error chain.
//
// Sync engines that report termination as an error return *Error so that
// callers can recover the Reason with AsReason or errors.As. Cause holds the
// underlying error, if any, for errors.Is / errors.As.
type Error struct {
	// Reason is why the sync stopped.
	Reason Reason

	// Cause is the wrapped underlying error. May be nil.
	Cause error
}

// Stopped returns an *Error for r wrapping cause. cause may be nil.
func Stopped(r Reason, cause error) *Error {
	return &Error{Reason: r, Cause: cause}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	sync stopped: <reason>
//
// or, with a cause:
//
//	sync stopped: <reason>: <cause>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return "sync stopped: " + e.Reason.String() + ": " + e.Cause.Error()
	}
	return "sync stopped: " + e.Reason.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with an equal Reason. Causes are
// not compared.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Reason.Equal(t.Reason)
}

// StopReason returns e.Reason. A nil *Error reports Unknown.
func (e *Error) StopReason() Reason {
	if e == nil {
		return Reason{}
	}
	return e.Reason
}

// AsReason finds the first *Error in err's chain and returns its Reason.
func AsReason(err error) (Reason, bool) {
	var se *Error
	if errors.As(err, &se) && se != nil {
		return se.Reason, true
	}
	return Reason{}, false
}
