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

// Package refkernel is a scalar/vectorized reference implementation of
// contraction.KernelProvider, built directly on hwy primitives and the
// hwy/contrib/activation and hwy/contrib/dot packages. It exists so the
// contraction package's planner, partitioner, and loop driver can be
// exercised end to end without an external code-generated micro-kernel
// library; it is not tuned for peak throughput the way a libxsmm-style
// provider would be.
package refkernel

import (
	"fmt"
	"unsafe"

	"github.com/example/einsum-ir-go/hwy"
	"github.com/example/einsum-ir-go/hwy/contrib/activation"
	"github.com/example/einsum-ir-go/hwy/contrib/contraction"
	"github.com/example/einsum-ir-go/hwy/contrib/dot"
)

type refProvider struct{}

// Provider returns the reference contraction.KernelProvider. Supports
// FP32/FP64/CFP32/CFP64 operands with matching Left/Right/Out dtypes; BF16
// and FP16 are rejected (see DESIGN.md).
func Provider() contraction.KernelProvider {
	return refProvider{}
}

func (refProvider) CompileMain(shape contraction.KernelShape, kind contraction.KernelKind, dt contraction.Dtypes) (contraction.MainKernel, error) {
	if dt.Left != dt.Right || dt.Right != dt.Out {
		return nil, fmt.Errorf("refkernel: mixed-precision operands not supported (left=%v right=%v out=%v)", dt.Left, dt.Right, dt.Out)
	}
	switch dt.Left {
	case contraction.FP32, contraction.CFP32:
		return buildMain[float32](shape, kind), nil
	case contraction.FP64, contraction.CFP64:
		return buildMain[float64](shape, kind), nil
	default:
		return nil, fmt.Errorf("refkernel: unsupported dtype %v for main kernel", dt.Left)
	}
}

func (refProvider) CompileFirstTouch(shape contraction.KernelShape, kind contraction.KernelKind, dt contraction.Dtypes) (contraction.FirstTouchKernel, error) {
	return compileTouch(shape, kind, dt)
}

func (refProvider) CompileLastTouch(shape contraction.KernelShape, kind contraction.KernelKind, dt contraction.Dtypes) (contraction.LastTouchKernel, error) {
	return compileTouch(shape, kind, dt)
}

func compileTouch(shape contraction.KernelShape, kind contraction.KernelKind, dt contraction.Dtypes) (func(outAux, out unsafe.Pointer), error) {
	if kind == contraction.UndefinedKernel {
		return nil, nil
	}
	switch dt.Out {
	case contraction.FP32, contraction.CFP32:
		return buildTouch[float32](shape, kind)
	case contraction.FP64, contraction.CFP64:
		return buildTouch[float64](shape, kind)
	default:
		return nil, fmt.Errorf("refkernel: unsupported dtype %v for touch kernel", dt.Out)
	}
}

// idxA locates the (m,k) element of the left operand within one R channel
// rc, per the leading-dimension convention Planner derives: whichever of
// M/K is contiguous (stride 1 or R) is multiplied by R, the other by the
// leading dimension.
func idxA(m, k, rc, lda, r int64, transA bool) int64 {
	if transA {
		return rc + k*r + m*lda
	}
	return rc + m*r + k*lda
}

func idxB(k, n, rc, ldb, r int64, transB bool) int64 {
	if transB {
		return rc + n*r + k*ldb
	}
	return rc + k*r + n*ldb
}

func idxC(m, n, rc, ldc, r int64) int64 {
	return rc + m*r + n*ldc
}

func elemPtr[T any](base unsafe.Pointer, idx int64) *T {
	return (*T)(unsafe.Add(base, uintptr(idx)*unsafe.Sizeof(*new(T))))
}

func elemAt[T any](base unsafe.Pointer, idx int64) T {
	return *elemPtr[T](base, idx)
}

func setAt[T any](base unsafe.Pointer, idx int64, v T) {
	*elemPtr[T](base, idx) = v
}

func addTo[T hwy.Floats](base unsafe.Pointer, idx int64, v T) {
	p := elemPtr[T](base, idx)
	*p += v
}

// dotGeneric dispatches to dot.Dot / dot.DotFloat64 for the instantiations
// refkernel actually uses (float32, float64), falling back to a scalar loop
// otherwise so the function still type-checks for the full hwy.Floats
// constraint.
func dotGeneric[T hwy.Floats](a, b []T) T {
	switch av := any(a).(type) {
	case []float32:
		return T(dot.Dot(av, any(b).([]float32)))
	case []float64:
		return T(dot.DotFloat64(av, any(b).([]float64)))
	default:
		var acc T
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			acc += a[i] * b[i]
		}
		return acc
	}
}

// buildMain returns a MainKernel for one of the five main-kernel variants.
// MADD and PackedMADD share the same loop nest (PackedMADD simply runs it
// shape.R times, once per packed channel); BRMADD adds an outer reduction
// over shape.Br batches; CPXMADD/CPXPackedMADD interleave a real/imaginary
// pair at each (m,k)/(k,n)/(m,n) coordinate, offset by the CPX byte strides
// converted to element counts.
func buildMain[T hwy.Floats](shape contraction.KernelShape, kind contraction.KernelKind) contraction.MainKernel {
	m, n, k, br, r := shape.M, shape.N, shape.K, shape.Br, shape.R
	lda, ldb, ldc := shape.LDA, shape.LDB, shape.LDC
	transA, transB := shape.TransA, shape.TransB
	brStrideA, brStrideB := shape.BrStrideA, shape.BrStrideB
	isCpx := kind == contraction.CPXMADD || kind == contraction.CPXPackedMADD

	var elemSize = int64(unsafe.Sizeof(*new(T)))
	var cpxA, cpxB, cpxC int64
	if isCpx {
		cpxA = shape.CpxStrideLeftBytes / elemSize
		cpxB = shape.CpxStrideRightBytes / elemSize
		cpxC = shape.CpxStrideOutBytes / elemSize
	}

	// Fast path: a single, non-complex, non-batched 2D MADD with both
	// operands contiguous along K collapses to a row/column dot product,
	// wired to hwy/contrib/dot instead of the generic scalar loop below.
	if kind == contraction.MADD && !isCpx && br == 1 && r == 1 && transA && !transB {
		return func(leftPtr, rightPtr, outPtr unsafe.Pointer) {
			for mi := int64(0); mi < m; mi++ {
				leftRow := unsafe.Slice(elemPtr[T](leftPtr, mi*lda), int(k))
				for ni := int64(0); ni < n; ni++ {
					rightCol := unsafe.Slice(elemPtr[T](rightPtr, ni*ldb), int(k))
					addTo[T](outPtr, idxC(mi, ni, 0, ldc, 1), dotGeneric(leftRow, rightCol))
				}
			}
		}
	}

	return func(leftPtr, rightPtr, outPtr unsafe.Pointer) {
		for mi := int64(0); mi < m; mi++ {
			for ni := int64(0); ni < n; ni++ {
				for rc := int64(0); rc < r; rc++ {
					var accRe, accIm T
					for bi := int64(0); bi < br; bi++ {
						leftBase := bi * brStrideA
						rightBase := bi * brStrideB
						for ki := int64(0); ki < k; ki++ {
							aOff := leftBase + idxA(mi, ki, rc, lda, r, transA)
							bOff := rightBase + idxB(ki, ni, rc, ldb, r, transB)
							aRe := elemAt[T](leftPtr, aOff)
							bRe := elemAt[T](rightPtr, bOff)
							if !isCpx {
								accRe += aRe * bRe
								continue
							}
							aIm := elemAt[T](leftPtr, aOff+cpxA)
							bIm := elemAt[T](rightPtr, bOff+cpxB)
							accRe += aRe*bRe - aIm*bIm
							accIm += aRe*bIm + aIm*bRe
						}
					}
					cIdx := idxC(mi, ni, rc, ldc, r)
					addTo[T](outPtr, cIdx, accRe)
					if isCpx {
						addTo[T](outPtr, cIdx+cpxC, accIm)
					}
				}
			}
		}
	}
}

// buildTouch returns a first-touch/last-touch closure for one KernelKind.
// ReLU and GELU delegate to hwy/contrib/activation over a per-row scratch
// buffer, since those kernels operate on flat slices while the output tile
// here is strided by LDC/R.
func buildTouch[T hwy.Floats](shape contraction.KernelShape, kind contraction.KernelKind) (func(outAux, out unsafe.Pointer), error) {
	m, n, r := shape.M, shape.N, shape.R
	ldc := shape.LDC
	strideMAux, strideNAux := shape.StrideMOutAux, shape.StrideNOutAux

	switch kind {
	case contraction.Zero:
		return func(_, outPtr unsafe.Pointer) {
			for mi := int64(0); mi < m; mi++ {
				for ni := int64(0); ni < n; ni++ {
					for rc := int64(0); rc < r; rc++ {
						setAt[T](outPtr, idxC(mi, ni, rc, ldc, r), 0)
					}
				}
			}
		}, nil

	case contraction.Copy, contraction.Add, contraction.BiasAdd:
		return func(auxPtr, outPtr unsafe.Pointer) {
			for mi := int64(0); mi < m; mi++ {
				for ni := int64(0); ni < n; ni++ {
					for rc := int64(0); rc < r; rc++ {
						cIdx := idxC(mi, ni, rc, ldc, r)
						var auxIdx int64
						if kind == contraction.BiasAdd {
							auxIdx = rc + ni*strideNAux
						} else {
							auxIdx = rc + mi*strideMAux + ni*strideNAux
						}
						av := elemAt[T](auxPtr, auxIdx)
						if kind == contraction.Copy {
							setAt[T](outPtr, cIdx, av)
						} else {
							addTo[T](outPtr, cIdx, av)
						}
					}
				}
			}
		}, nil

	case contraction.ReLU, contraction.GELU:
		width := int(n * r)
		return func(_, outPtr unsafe.Pointer) {
			row := make([]T, width)
			for mi := int64(0); mi < m; mi++ {
				for ni := int64(0); ni < n; ni++ {
					for rc := int64(0); rc < r; rc++ {
						row[ni*r+rc] = elemAt[T](outPtr, idxC(mi, ni, rc, ldc, r))
					}
				}
				if kind == contraction.ReLU {
					activation.BaseReLU(row, row)
				} else {
					activation.BaseGELU(row, row)
				}
				for ni := int64(0); ni < n; ni++ {
					for rc := int64(0); rc < r; rc++ {
						setAt[T](outPtr, idxC(mi, ni, rc, ldc, r), row[ni*r+rc])
					}
				}
			}
		}, nil

	default:
		return nil, fmt.Errorf("refkernel: unsupported touch kernel %v", kind)
	}
}
