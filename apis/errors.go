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

import "dirpx.dev/syncstop"

// StoppedError is an error that reports why a sync stopped.
//
// *syncstop.Error implements it; adapters should target this interface so
// that engines can supply their own error types.
type StoppedError interface {
	error

	// StopReason returns the reason carried by the error.
	StopReason() syncstop.Reason
}

var _ StoppedError = (*syncstop.Error)(nil)
