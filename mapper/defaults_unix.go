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

package mapper

import (
	"net/http"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
)

// errnoDefaults maps the errno values a sync engine commonly stops on.
// A slice rather than a map literal: some platforms alias errno constants.
var errnoDefaults = []errnoDefault{
	// Time budget exceeded.
	{int(unix.ETIMEDOUT), http.StatusGatewayTimeout, codes.DeadlineExceeded},

	// Peers or API endpoints unreachable; the sync can be retried later.
	{int(unix.ECONNREFUSED), http.StatusServiceUnavailable, codes.Unavailable},
	{int(unix.ECONNRESET), http.StatusServiceUnavailable, codes.Unavailable},
	{int(unix.ECONNABORTED), http.StatusServiceUnavailable, codes.Unavailable},
	{int(unix.ENETDOWN), http.StatusServiceUnavailable, codes.Unavailable},
	{int(unix.ENETUNREACH), http.StatusServiceUnavailable, codes.Unavailable},
	{int(unix.EHOSTUNREACH), http.StatusServiceUnavailable, codes.Unavailable},
	{int(unix.EPIPE), http.StatusServiceUnavailable, codes.Unavailable},
	{int(unix.EAGAIN), http.StatusServiceUnavailable, codes.Unavailable},

	// Local resources exhausted while persisting blocks or transfers.
	{int(unix.ENOSPC), http.StatusInsufficientStorage, codes.ResourceExhausted},
	{int(unix.EDQUOT), http.StatusInsufficientStorage, codes.ResourceExhausted},
	{int(unix.ENOMEM), http.StatusInsufficientStorage, codes.ResourceExhausted},
	{int(unix.EMFILE), http.StatusInsufficientStorage, codes.ResourceExhausted},
	{int(unix.ENFILE), http.StatusInsufficientStorage, codes.ResourceExhausted},

	// File-service access.
	{int(unix.EACCES), http.StatusForbidden, codes.PermissionDenied},
	{int(unix.EPERM), http.StatusForbidden, codes.PermissionDenied},
	{int(unix.ENOENT), http.StatusNotFound, codes.NotFound},
	{int(unix.EEXIST), http.StatusConflict, codes.AlreadyExists},

	// Interrupted work.
	{int(unix.EINTR), http.StatusRequestTimeout, codes.Canceled},
	{int(unix.ECANCELED), http.StatusRequestTimeout, codes.Canceled},
}
