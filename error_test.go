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
	"errors"
	"fmt"
	"testing"
)

func TestError_Format(t *testing.T) {
	e := Stopped(Posix(110, "connection timed out"), nil)
	if got, want := e.Error(), "sync stopped: Posix (110: connection timed out)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	root := errors.New("dial tcp: i/o timeout")
	e = Stopped(Posix(110, "connection timed out"), root)
	if got, want := e.Error(), "sync stopped: Posix (110: connection timed out): dial tcp: i/o timeout"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error must render as <nil>")
	}
}

func TestError_UnwrapAndIs(t *testing.T) {
	root := errors.New("root")
	e := Stopped(Requested(), root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is(cause) failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
	if !errors.Is(e, Stopped(Requested(), nil)) {
		t.Fatal("errors.Is must match an equal reason")
	}
	if !errors.Is(Stopped(Posix(5, "a"), nil), Stopped(Posix(5, "b"), nil)) {
		t.Fatal("errors.Is must ignore Posix messages")
	}
	if errors.Is(e, Stopped(Complete(), nil)) {
		t.Fatal("errors.Is must not match a different reason")
	}
}

func TestAsReason(t *testing.T) {
	wrapped := fmt.Errorf("wallet manager: %w", Stopped(Posix(28, "no space left on device"), nil))
	r, ok := AsReason(wrapped)
	if !ok {
		t.Fatal("AsReason must find the reason")
	}
	if !r.Equal(Posix(28, "")) {
		t.Fatalf("AsReason = %v, want Posix 28", r)
	}

	if _, ok := AsReason(errors.New("plain")); ok {
		t.Fatal("AsReason must not find a reason in a plain error")
	}
	if _, ok := AsReason(nil); ok {
		t.Fatal("AsReason(nil) must report absence")
	}
	if got := Stopped(Unknown(), nil).StopReason(); !got.Equal(Unknown()) {
		t.Fatalf("StopReason() = %v, want Unknown", got)
	}
}

func TestError_NilReceiver(t *testing.T) {
	var e *Error
	if got := e.StopReason(); !got.Equal(Unknown()) {
		t.Fatalf("nil StopReason() = %v, want Unknown", got)
	}
	if got := e.Error(); got == "" {
		t.Fatal("nil Error() must render something")
	}
}
