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

// Package contraction implements the binary tensor contraction backend:
// the planner and loop driver behind einsum-style expressions.
//
// Given two input tensors and one output tensor, each described by an
// ordered list of labeled dimensions, Backend plans the contraction as a
// nest of loops whose innermost body is a dense micro-kernel (tiled
// multiply-add over M/N/K blocks), and drives it in parallel across
// threads.
//
// The package does not parse einsum expressions, build contraction trees,
// allocate tensors, or generate micro-kernel code; those are the caller's
// responsibility and a KernelProvider's, respectively. See KernelProvider
// and the refkernel subpackage for a scalar/SIMD reference implementation.
//
// Example usage:
//
//	b := contraction.New()
//	err := b.Init(axes, contraction.Dtypes{Left: contraction.FP32, Right: contraction.FP32, Comp: contraction.FP32, Out: contraction.FP32},
//		contraction.Kinds{Main: contraction.MADD}, 4)
//	err = b.Compile(refkernel.Provider())
//	err = b.Contract(leftPtr, rightPtr, nil, outPtr)
package contraction
