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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/syncstop"
	"dirpx.dev/syncstop/kind"
	"dirpx.dev/syncstop/mapper"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not JSON: %v (%s)", err, rec.Body.String())
	}
	return got
}

func TestWriter_Posix(t *testing.T) {
	w := Writer{Mapper: mapper.MustNew(mapper.WithHTTPErrno(4242, http.StatusServiceUnavailable))}
	rec := httptest.NewRecorder()

	w.Write(rec, syncstop.Posix(4242, "peer went away"), Meta{Correlation: "req-1", RetryAfterSeconds: 30})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if ra := rec.Header().Get("Retry-After"); ra != "30" {
		t.Fatalf("Retry-After = %q, want 30", ra)
	}

	got := decode(t, rec)
	want := map[string]any{
		"kind":        "posix",
		"description": "Posix (4242: peer went away)",
		"errno":       float64(4242),
		"message":     "peer went away",
		"http_status": float64(503),
		"grpc_code":   float64(13),
		"correlation": "req-1",
	}
	if len(got) != len(want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("body[%q] = %v, want %v", k, got[k], v)
		}
	}
}

func TestWriter_PayloadFree(t *testing.T) {
	w := Writer{Mapper: mapper.MustNew(mapper.WithHTTPOverride(kind.Requested, 499))}
	rec := httptest.NewRecorder()

	w.Write(rec, syncstop.Requested(), Meta{})

	if rec.Code != 499 {
		t.Fatalf("status = %d, want 499", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "" {
		t.Fatalf("Retry-After must not be set")
	}
	got := decode(t, rec)
	if got["kind"] != "requested" || got["description"] != "Requested" {
		t.Fatalf("unexpected body: %v", got)
	}
	for _, k := range []string{"errno", "message", "correlation"} {
		if _, ok := got[k]; ok {
			t.Fatalf("body must not contain %q: %v", k, got)
		}
	}
}

func TestBody_EmptyPosixMessageIsPresent(t *testing.T) {
	m := mapper.MustNew()
	r := syncstop.Posix(0, "")
	b, err := Body(r, m.Status(r), Meta{})
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json: %v", err)
	}
	if got["message"] != "" || got["errno"] != float64(0) {
		t.Fatalf("Posix payload must be present: %v", got)
	}
}

func TestWriter_InvalidUTF8Message(t *testing.T) {
	w := Writer{Mapper: mapper.MustNew(mapper.WithHTTPErrno(2, http.StatusNotFound))}
	rec := httptest.NewRecorder()

	w.Write(rec, syncstop.Posix(2, "bad \xff byte"), Meta{Correlation: "req-\xfe"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	got := decode(t, rec)
	if got["message"] != "bad \uFFFD byte" {
		t.Fatalf("message = %q, want replacement character", got["message"])
	}
	if got["description"] != "Posix (2: bad \uFFFD byte)" {
		t.Fatalf("description = %q", got["description"])
	}
	if got["correlation"] != "req-\uFFFD" {
		t.Fatalf("correlation = %q", got["correlation"])
	}
}

func TestBody_InvalidUTF8Message(t *testing.T) {
	m := mapper.MustNew()
	r := syncstop.Posix(2, "bad \xff byte")
	if _, err := Body(r, m.Status(r), Meta{}); err != nil {
		t.Fatalf("Body must accept any message: %v", err)
	}
}
