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
	"strings"
	"unicode"

	"google.golang.org/grpc/codes"
)

// freezeHTTP makes an immutable copy of an HTTP rule map.
// Used when finalizing the mapper so later mutations to the builder
// cannot affect the mapper.
func freezeHTTP[K comparable](src map[K]int) map[K]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC rule map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC[K comparable](src map[K]int) map[K]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

func validHTTP(v int) bool { return v >= 100 && v <= 599 }

func validGRPC(v int) bool { return v >= int(codes.OK) && v <= int(codes.Unauthenticated) }

// grpcName renders a gRPC code in its canonical upper snake form,
// e.g. DeadlineExceeded -> DEADLINE_EXCEEDED.
func grpcName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	prev := rune(0)
	for _, r := range s {
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
		prev = r
	}
	return b.String()
}
