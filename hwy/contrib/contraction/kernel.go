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

import "unsafe"

// KernelShape is the canonical, planner-derived description of the
// innermost micro-kernel. A KernelProvider receives it once, at Compile
// time, and returns a callable closed over it; the loop driver never sees
// these fields directly, only the resulting MainKernel/FirstTouchKernel/
// LastTouchKernel function values.
//
// All extents are element counts; all leading dimensions and strides are
// element counts too, except the Cpx*Bytes fields, which are byte strides
// (the driver's outer-loop pointer arithmetic is what
// operates in byte units — see Planner and Backend.Compile).
type KernelShape struct {
	M, N, K int64
	Br      int64 // batch-reduce depth (1 if kind != BRMADD)
	R       int64 // packed/channel width (1 if kind != PackedMADD/CPXPackedMADD)

	LDA, LDB, LDC int64
	TransA, TransB bool

	BrStrideA, BrStrideB int64 // element strides of the BR axis, left/right

	StrideMOutAux, StrideNOutAux int64 // element strides of the aux tensor

	// Byte strides of the CPX axis, already multiplied by the relevant
	// tensor's Dtype.ByteSize (set only when a CPX axis is present).
	CpxStrideLeftBytes   int64
	CpxStrideRightBytes  int64
	CpxStrideOutAuxBytes int64
	CpxStrideOutBytes    int64
}

// MainKernel performs the dense accumulating multiply-add over one output
// tile: out += f(left, right), parameterized by the KernelShape it was
// compiled against. It must be safe to call concurrently from multiple
// worker threads (each call operates on disjoint output tiles).
type MainKernel func(left, right, out unsafe.Pointer)

// FirstTouchKernel initializes or scales one output tile before any
// accumulation reaches it, optionally reading from outAux (e.g. to seed
// the tile with a bias). outAux is nil when the plan carries no auxiliary
// tensor.
type FirstTouchKernel func(outAux, out unsafe.Pointer)

// LastTouchKernel finalizes one output tile after all accumulation has
// reached it (e.g. an activation or a bias-add). Same contract as
// FirstTouchKernel.
type LastTouchKernel func(outAux, out unsafe.Pointer)

// KernelProvider is the collaborator that turns a canonical KernelShape
// plus a KernelKind into a callable. The contraction package treats
// whatever it returns as opaque; it never inspects or regenerates it.
//
// A provider may return (nil, nil) for CompileFirstTouch/CompileLastTouch
// when the requested kind is UndefinedKernel, signaling "no kernel" rather
// than an error.
type KernelProvider interface {
	CompileMain(shape KernelShape, kind KernelKind, dt Dtypes) (MainKernel, error)
	CompileFirstTouch(shape KernelShape, kind KernelKind, dt Dtypes) (FirstTouchKernel, error)
	CompileLastTouch(shape KernelShape, kind KernelKind, dt Dtypes) (LastTouchKernel, error)
}
