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

// StopView is the serializable shape of a stop reason that we are
// comfortable exposing to observers over the wire.
//
// Errno and Message are nil unless Kind is "posix"; absence is never encoded
// as a zero code or an empty message.
type StopView struct {
	// Kind is the wire name of the kind, e.g. "complete", "posix".
	Kind string `json:"kind"`

	// Description is the display rendering, e.g. "Posix (2: No such file or directory)".
	Description string `json:"description"`

	// Errno is the diagnostic code of a Posix reason.
	Errno *int `json:"errno,omitempty"`

	// Message is the diagnostic message of a Posix reason.
	Message *string `json:"message,omitempty"`

	// HTTPStatus and GRPCCode are the resolved transport statuses.
	HTTPStatus int `json:"http_status,omitempty"`
	GRPCCode   int `json:"grpc_code"`
}

// Descriptor is a flat description of a stop reason together with its
// transport projection, meant for structured logs and message buses.
type Descriptor struct {
	Kind       string `json:"kind"`
	Errno      int    `json:"errno,omitempty"`
	ErrnoName  string `json:"errno_name,omitempty"`
	Message    string `json:"message,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty"`
	GRPCCode   int    `json:"grpc_code"`
}
