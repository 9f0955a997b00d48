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

package adapter

import (
	"dirpx.dev/syncstop"
	"dirpx.dev/syncstop/apis"
	"dirpx.dev/syncstop/internal/errnames"
)

// ToView converts a stop reason together with its resolved transport status
// into a public StopView. Errno and Message stay nil unless r is a Posix
// reason.
func ToView(r syncstop.Reason, st apis.Status) apis.StopView {
	v := apis.StopView{
		Kind:        r.Kind().Name(),
		Description: r.String(),
		HTTPStatus:  st.HTTP,
		GRPCCode:    int(st.GRPC),
	}
	if code, ok := r.PosixCode(); ok {
		v.Errno = &code
	}
	if msg, ok := r.PosixMessage(); ok {
		v.Message = &msg
	}
	return v
}

// ToDescriptor converts a stop reason and its resolved status into a flat
// Descriptor for structured logging or message bus propagation.
func ToDescriptor(r syncstop.Reason, st apis.Status) apis.Descriptor {
	d := apis.Descriptor{
		Kind:       r.Kind().Name(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if code, ok := r.PosixCode(); ok {
		d.Errno = code
		d.ErrnoName = errnames.Name(code)
	}
	if msg, ok := r.PosixMessage(); ok {
		d.Message = msg
	}
	return d
}
