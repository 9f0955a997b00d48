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
	"net/http"

	"dirpx.dev/syncstop/kind"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings per kind.
//
// A completed sync is not an error. A requested stop is treated like a
// canceled request; integrators may switch it to 499.
var defaultHTTP = map[kind.Kind]int{
	kind.Complete:  http.StatusOK,
	kind.Requested: http.StatusRequestTimeout,
	kind.Unknown:   http.StatusInternalServerError,
	kind.Posix:     http.StatusInternalServerError, // errno rules refine this
}

// defaultGRPC defines the library's built-in gRPC mappings per kind.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.Complete:  codes.OK,
	kind.Requested: codes.Canceled,
	kind.Unknown:   codes.Unknown,
	kind.Posix:     codes.Internal,
}

// errnoDefault is one built-in rule for Posix reasons.
type errnoDefault struct {
	errno int
	http  int
	grpc  codes.Code
}
