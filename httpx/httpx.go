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

package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"dirpx.dev/syncstop"
	"dirpx.dev/syncstop/adapter"
	"dirpx.dev/syncstop/apis"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Meta carries extra context that the HTTP layer can add on top of a stop
// reason. All fields are optional.
type Meta struct {
	// Correlation is echoed in the body as "correlation".
	Correlation string

	// RetryAfterSeconds, when positive, is sent as the Retry-After header.
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a stop reason into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write writes the HTTP status resolved by the Mapper and a JSON body with
// the fields of apis.StopView.
//
// Whatever the reason carries is exposed as-is, including Posix messages.
func (w Writer) Write(rw http.ResponseWriter, r syncstop.Reason, meta Meta) {
	st := w.Mapper.Status(r)
	body, err := Body(r, st, meta)
	if err != nil {
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// Body renders the JSON body Write sends for r.
//
// The view is marshaled through structpb and protojson so that the
// encoding matches what proto-based gateways produce for the same payload.
// Protobuf strings must be valid UTF-8, so invalid bytes in free-form text
// are replaced with U+FFFD.
func Body(r syncstop.Reason, st apis.Status, meta Meta) ([]byte, error) {
	view := adapter.ToView(r, st)
	fields := map[string]any{
		"kind":        view.Kind,
		"description": validUTF8(view.Description),
		"grpc_code":   view.GRPCCode,
	}
	if view.HTTPStatus != 0 {
		fields["http_status"] = view.HTTPStatus
	}
	if view.Errno != nil {
		fields["errno"] = *view.Errno
	}
	if view.Message != nil {
		fields["message"] = validUTF8(*view.Message)
	}
	if meta.Correlation != "" {
		fields["correlation"] = validUTF8(meta.Correlation)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(s)
}

func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
