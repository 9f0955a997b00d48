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

// Package kind defines the closed set of sync stop kinds.
//
// A kind answers the first question an observer asks about a finished sync
// attempt: did it complete, was it stopped on request, did it fail with a
// system error, or is the cause not known?
//
// The set is closed: exactly four kinds exist and switches over Kind are
// expected to handle all of them. Kinds have two textual forms:
//
//   - a display form returned by String ("Complete", "Posix", ...), used
//     when rendering a stop reason for humans;
//   - a wire form returned by Name ("complete", "posix", ...), used by
//     MarshalText and accepted by Parse.
package kind
