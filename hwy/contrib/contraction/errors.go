// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package contraction

import "errors"

// Sentinel errors mirroring the original err_t enum. Compile wraps
// ErrCompilationFailed with context via fmt.Errorf("%w: ...", ...); callers
// should match with errors.Is, not string comparison.
var (
	// ErrCompilationFailed is returned by Compile when shape validation,
	// layout validation, or kernel generation rejects the plan.
	ErrCompilationFailed = errors.New("contraction: compilation failed")

	// ErrUndefined is returned by Contract when called before Compile has
	// succeeded.
	ErrUndefined = errors.New("contraction: backend not compiled")
)
