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

import "fmt"

// planKernelShape validates the trailing (kernel-order) axes against the
// chosen main-kernel variant and derives the KernelShape the provider will
// compile against. All strides it reads are still in element units; the
// caller (Backend.Compile) converts to byte units afterward.
//
// This is a direct port of the reference implementation's
// set_kernel_shape: the degenerate-axis fixups at the end run as a fixed
// sequence of independent ifs, not an else-chain, in the original order
// (see SPEC_FULL.md §11.2). Fixups that write the same field are guarded
// by opposite TransA/TransB values, so no fixup overwrites another's result.
func planKernelShape(axes []AxisDescriptor, mainKind KernelKind, dt Dtypes) (KernelShape, error) {
	var shape KernelShape

	l := int64(len(axes))
	if l < 3 {
		return shape, fmt.Errorf("%w: need at least 3 axes, got %d", ErrCompilationFailed, l)
	}

	// Count the trailing PRIM axes.
	numPrims := int64(0)
	for i := l - 1; i >= 0; i-- {
		if axes[i].Exec != PRIM {
			break
		}
		numPrims++
	}

	requiredPrims, ok := requiredPrimCount(mainKind)
	if !ok {
		return shape, fmt.Errorf("%w: unsupported main kernel kind %v", ErrCompilationFailed, mainKind)
	}
	if numPrims != requiredPrims {
		return shape, fmt.Errorf("%w: %v requires %d trailing PRIM axes, got %d", ErrCompilationFailed, mainKind, requiredPrims, numPrims)
	}

	idxM, idxN, idxK := l-3, l-2, l-1
	if axes[idxM].Kind != M || axes[idxN].Kind != N || axes[idxK].Kind != K {
		return shape, fmt.Errorf("%w: trailing 3 axes must be kinds M,N,K, got %v,%v,%v",
			ErrCompilationFailed, axes[idxM].Kind, axes[idxN].Kind, axes[idxK].Kind)
	}

	idxExtra1 := l - 4 // BR / C / CPX, depending on mainKind
	idxExtra2 := l - 5 // CPX, only for CPXPackedMADD

	switch mainKind {
	case BRMADD:
		if axes[idxExtra1].Kind != K {
			return shape, fmt.Errorf("%w: BR_MADD requires axis at L-4 to be K, got %v", ErrCompilationFailed, axes[idxExtra1].Kind)
		}
	case PackedMADD:
		if axes[idxExtra1].Kind != C {
			return shape, fmt.Errorf("%w: PACKED_MADD requires axis at L-4 to be C, got %v", ErrCompilationFailed, axes[idxExtra1].Kind)
		}
	case CPXMADD:
		if axes[idxExtra1].Kind != CPX {
			return shape, fmt.Errorf("%w: CPX_MADD requires axis at L-4 to be CPX, got %v", ErrCompilationFailed, axes[idxExtra1].Kind)
		}
	case CPXPackedMADD:
		// Intended rule per spec.md §9 Open Question / SPEC_FULL.md §11.1:
		// axis at L-4 must be C AND axis at L-5 must be CPX. These are two
		// independent comparisons against two different indices (unlike
		// the original source, which compares the same index twice).
		if axes[idxExtra1].Kind != C {
			return shape, fmt.Errorf("%w: CPX_PACKED_MADD requires axis at L-4 to be C, got %v", ErrCompilationFailed, axes[idxExtra1].Kind)
		}
		if axes[idxExtra2].Kind != CPX {
			return shape, fmt.Errorf("%w: CPX_PACKED_MADD requires axis at L-5 to be CPX, got %v", ErrCompilationFailed, axes[idxExtra2].Kind)
		}
	}

	// br parameter
	shape.Br = 1
	if mainKind == BRMADD {
		shape.Br = axes[idxExtra1].Size
		shape.BrStrideA = axes[idxExtra1].StrideLeft
		shape.BrStrideB = axes[idxExtra1].StrideRight
	}

	// packed (r) parameter
	shape.R = 1
	if mainKind == PackedMADD || mainKind == CPXPackedMADD {
		shape.R = axes[idxExtra1].Size
	}

	shape.M = axes[idxM].Size
	shape.N = axes[idxN].Size
	shape.K = axes[idxK].Size

	m, n, k, r := shape.M, shape.N, shape.K, shape.R

	// lda / transA
	switch {
	case m == 1 || axes[idxM].StrideLeft == r || axes[idxM].StrideLeft == 1:
		shape.TransA = false
		shape.LDA = axes[idxK].StrideLeft
	case k == 1 || axes[idxK].StrideLeft == 1:
		shape.TransA = true
		shape.LDA = axes[idxM].StrideLeft
	default:
		return shape, fmt.Errorf("%w: no consistent layout for left operand (m=%d k=%d strideLeft[M]=%d strideLeft[K]=%d r=%d)",
			ErrCompilationFailed, m, k, axes[idxM].StrideLeft, axes[idxK].StrideLeft, r)
	}

	// ldb / transB
	switch {
	case k == 1 || axes[idxK].StrideRight == r || axes[idxK].StrideRight == 1:
		shape.TransB = false
		shape.LDB = axes[idxN].StrideRight
	case n == 1 || axes[idxN].StrideRight == 1:
		shape.TransB = true
		shape.LDB = axes[idxK].StrideRight
	default:
		return shape, fmt.Errorf("%w: no consistent layout for right operand (k=%d n=%d strideRight[K]=%d strideRight[N]=%d r=%d)",
			ErrCompilationFailed, k, n, axes[idxK].StrideRight, axes[idxN].StrideRight, r)
	}

	// ldc
	if m == 1 || axes[idxM].StrideOut == r {
		shape.LDC = axes[idxN].StrideOut
	} else {
		return shape, fmt.Errorf("%w: output stride[M]=%d inconsistent with r=%d", ErrCompilationFailed, axes[idxM].StrideOut, r)
	}

	// auxiliary output strides
	if m == 1 || axes[idxM].StrideOutAux <= r {
		shape.StrideMOutAux = axes[idxM].StrideOutAux
		shape.StrideNOutAux = axes[idxN].StrideOutAux
	} else {
		return shape, fmt.Errorf("%w: aux output stride[M]=%d inconsistent with r=%d", ErrCompilationFailed, axes[idxM].StrideOutAux, r)
	}

	fixupDegenerateLeadingDims(&shape)

	if err := planComplexStrides(&shape, axes, mainKind, dt, idxExtra1, idxExtra2); err != nil {
		return shape, err
	}

	return shape, nil
}

// requiredPrimCount returns how many trailing PRIM axes a main-kernel
// variant requires.
func requiredPrimCount(kind KernelKind) (int64, bool) {
	switch kind {
	case MADD:
		return 3, true
	case BRMADD, PackedMADD, CPXMADD:
		return 4, true
	case CPXPackedMADD:
		return 5, true
	default:
		return 0, false
	}
}

// fixupDegenerateLeadingDims synthesizes a safe non-zero leading dimension
// whenever an extent is 1, so the kernel provider always sees a consistent
// shape. The six checks run in this fixed order, each independently of the
// others (see the doc comment on planKernelShape).
func fixupDegenerateLeadingDims(shape *KernelShape) {
	m, n, k, r := shape.M, shape.N, shape.K, shape.R

	if k == 1 && !shape.TransA {
		shape.LDA = m * r
	}
	if m == 1 && shape.TransA {
		shape.LDA = k * r
	}
	if n == 1 && !shape.TransB {
		shape.LDB = k * r
	}
	if k == 1 && shape.TransB {
		shape.LDB = n * r
	}
	if n == 1 {
		shape.LDC = m * r
		shape.StrideNOutAux = m * r
	}
	if m == 1 {
		shape.StrideMOutAux = r
	}
}

// planComplexStrides records the CPX axis' per-tensor byte strides when one
// is present for the selected main-kernel variant. Per spec.md §4.C3, these
// strides are multiplied by the relevant tensor's datatype byte size and
// saved separately from the general stride-to-byte pass Backend.Compile
// runs over the rest of the axis list.
func planComplexStrides(shape *KernelShape, axes []AxisDescriptor, mainKind KernelKind, dt Dtypes, idxExtra1, idxExtra2 int64) error {
	idxCPX := int64(-1)
	switch mainKind {
	case CPXMADD:
		idxCPX = idxExtra1
	case CPXPackedMADD:
		idxCPX = idxExtra2
	}
	if idxCPX < 0 {
		return nil
	}

	if axes[idxCPX].Size != 2 {
		return fmt.Errorf("%w: CPX axis must have size 2, got %d", ErrCompilationFailed, axes[idxCPX].Size)
	}

	shape.CpxStrideLeftBytes = axes[idxCPX].StrideLeft * dt.Left.ByteSize()
	shape.CpxStrideRightBytes = axes[idxCPX].StrideRight * dt.Right.ByteSize()
	shape.CpxStrideOutAuxBytes = axes[idxCPX].StrideOutAux * dt.Out.ByteSize()
	shape.CpxStrideOutBytes = axes[idxCPX].StrideOut * dt.Out.ByteSize()
	return nil
}
