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
	"encoding/json"
	"testing"

	"dirpx.dev/syncstop"
	"dirpx.dev/syncstop/apis"
	"google.golang.org/grpc/codes"
)

func TestToView_PayloadFree(t *testing.T) {
	v := ToView(syncstop.Complete(), apis.Status{HTTP: 200, GRPC: codes.OK})
	if v.Kind != "complete" || v.Description != "Complete" {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.Errno != nil || v.Message != nil {
		t.Fatalf("payload must be absent: %+v", v)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	want := `{"kind":"complete","description":"Complete","http_status":200,"grpc_code":0}`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}
}

func TestToView_Posix(t *testing.T) {
	r := syncstop.Posix(0, "")
	v := ToView(r, apis.Status{HTTP: 500, GRPC: codes.Internal})
	if v.Errno == nil || *v.Errno != 0 {
		t.Fatalf("errno 0 must be present: %+v", v)
	}
	if v.Message == nil || *v.Message != "" {
		t.Fatalf("empty message must be present: %+v", v)
	}
	if v.Description != "Posix (0: )" {
		t.Fatalf("Description = %q", v.Description)
	}
	if v.GRPCCode != int(codes.Internal) {
		t.Fatalf("GRPCCode = %d", v.GRPCCode)
	}
}

func TestToDescriptor(t *testing.T) {
	d := ToDescriptor(syncstop.Posix(424242, "made up"), apis.Status{HTTP: 500, GRPC: codes.Internal})
	if d.Kind != "posix" || d.Errno != 424242 || d.Message != "made up" {
		t.Fatalf("unexpected descriptor: %+v", d)
	}
	if d.ErrnoName != "" {
		t.Fatalf("unknown errno must have no name, got %q", d.ErrnoName)
	}

	d = ToDescriptor(syncstop.Requested(), apis.Status{HTTP: 408, GRPC: codes.Canceled})
	if d.Errno != 0 || d.Message != "" || d.HTTPStatus != 408 || d.GRPCCode != int(codes.Canceled) {
		t.Fatalf("unexpected descriptor: %+v", d)
	}
}
