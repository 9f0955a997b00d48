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

package grpcx

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"dirpx.dev/syncstop"
	"dirpx.dev/syncstop/apis"
	"dirpx.dev/syncstop/kind"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain used for sync stop reasons.
const Domain = "sync.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaKind    = "kind"
	MetaErrno   = "errno"
	MetaMessage = "message"
)

// ErrorInfo describes r as a google.rpc.ErrorInfo:
//
//	reason:   SYNC_STOPPED_<KIND>
//	domain:   sync.dirpx.dev
//	metadata: kind, and errno/message for Posix reasons
//
// Protobuf strings must be valid UTF-8; invalid bytes in the message are
// replaced with U+FFFD.
func ErrorInfo(r syncstop.Reason) *errdetails.ErrorInfo {
	md := map[string]string{MetaKind: r.Kind().Name()}
	if code, ok := r.PosixCode(); ok {
		md[MetaErrno] = strconv.Itoa(code)
	}
	if msg, ok := r.PosixMessage(); ok {
		md[MetaMessage] = validUTF8(msg)
	}
	return &errdetails.ErrorInfo{
		Reason:   "SYNC_STOPPED_" + strings.ToUpper(r.Kind().Name()),
		Domain:   Domain,
		Metadata: md,
	}
}

// Status builds a gRPC status for r. The code is resolved by m, the message
// is r.String(), and an ErrorInfo detail is attached.
//
// OK statuses cannot carry details; they are returned bare. Mappers built by
// package mapper only resolve Complete to OK.
func Status(m apis.Mapper, r syncstop.Reason) *gstatus.Status {
	base := gstatus.New(m.GRPCStatus(r), validUTF8(r.String()))
	if base.Code() == gcodes.OK {
		return base
	}
	// If attaching the detail fails, return base.
	if with, err := base.WithDetails(ErrorInfo(r)); err == nil {
		return with
	}
	return base
}

// FromStatus recovers the stop reason carried by st. A bare OK status is
// read as Complete.
func FromStatus(st *gstatus.Status) (syncstop.Reason, bool) {
	if st == nil {
		return syncstop.Reason{}, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		return fromErrorInfo(info)
	}
	if st.Code() == gcodes.OK {
		return syncstop.Complete(), true
	}
	return syncstop.Reason{}, false
}

// FromError recovers the stop reason carried by a gRPC error. A nil error
// carries no reason.
func FromError(err error) (syncstop.Reason, bool) {
	if err == nil {
		return syncstop.Reason{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return syncstop.Reason{}, false
	}
	return FromStatus(st)
}

func fromErrorInfo(info *errdetails.ErrorInfo) (syncstop.Reason, bool) {
	md := info.GetMetadata()
	k, err := kind.Parse(md[MetaKind])
	if err != nil {
		return syncstop.Reason{}, false
	}
	switch k {
	case kind.Complete:
		return syncstop.Complete(), true
	case kind.Requested:
		return syncstop.Requested(), true
	case kind.Unknown:
		return syncstop.Unknown(), true
	case kind.Posix:
		code, err := strconv.Atoi(md[MetaErrno])
		if err != nil {
			return syncstop.Reason{}, false
		}
		return syncstop.Posix(code, md[MetaMessage]), true
	default:
		return syncstop.Reason{}, false
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors carrying an apis.StoppedError into statuses built by
// Status. Other errors are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if err = translate(m, err); err == nil {
			return resp, nil
		}
		return nil, err
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return translate(m, err)
	}
}

// translate returns the status error for a stop reason found in err, nil
// when that reason maps to OK, or err itself when it carries no reason.
func translate(m apis.Mapper, err error) error {
	var se apis.StoppedError
	if !errors.As(err, &se) {
		// Not ours, return as-is.
		return err
	}
	return Status(m, se.StopReason()).Err()
}

func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
