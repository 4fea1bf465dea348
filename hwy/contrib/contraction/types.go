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

// Dtype tags the scalar element type of a tensor operand. Byte sizes are
// fixed per variant; ByteSize is consulted whenever strides are converted
// from element units to byte units during Compile.
type Dtype uint8

const (
	UndefinedDtype Dtype = iota
	FP32
	FP64
	BF16
	FP16
	CFP32 // complex<float32>: one CPX axis of size 2 walks real/imag
	CFP64 // complex<float64>
)

// ByteSize returns the storage size in bytes of a single scalar element of
// the given type.
func (d Dtype) ByteSize() int64 {
	switch d {
	case FP32:
		return 4
	case FP64:
		return 8
	case BF16, FP16:
		return 2
	case CFP32:
		return 4
	case CFP64:
		return 8
	default:
		return 0
	}
}

func (d Dtype) String() string {
	switch d {
	case FP32:
		return "fp32"
	case FP64:
		return "fp64"
	case BF16:
		return "bf16"
	case FP16:
		return "fp16"
	case CFP32:
		return "cfp32"
	case CFP64:
		return "cfp64"
	default:
		return "undefined"
	}
}

// DimKind classifies an iteration axis by its role in the contraction.
type DimKind uint8

const (
	UndefinedDim DimKind = iota
	M                    // output row axis, shared by left and out
	N                    // output column axis, shared by right and out
	K                    // reduced axis, shared by left and right
	C                    // packed/batched axis, shared by left, right, out
	CPX                  // complex-plane sentinel axis, always size 2
)

func (d DimKind) String() string {
	switch d {
	case M:
		return "M"
	case N:
		return "N"
	case K:
		return "K"
	case C:
		return "C"
	case CPX:
		return "CPX"
	default:
		return "undefined"
	}
}

// ExecKind classifies how an axis is iterated by the loop driver.
type ExecKind uint8

const (
	OMP ExecKind = iota // parallel, plain cyclic partition
	SEQ                 // serial outer loop
	SFC                 // parallel, space-filling-curve traversal
	PRIM                // consumed by the micro-kernel, not iterated
)

func (e ExecKind) String() string {
	switch e {
	case OMP:
		return "OMP"
	case SEQ:
		return "SEQ"
	case SFC:
		return "SFC"
	case PRIM:
		return "PRIM"
	default:
		return fmt.Sprintf("ExecKind(%d)", uint8(e))
	}
}

// KernelKind names a concrete micro-kernel variant. The same type is used
// for the main accumulating kernel and for the first-touch/last-touch
// kernels; UndefinedKernel on first-touch or last-touch means "no kernel",
// i.e. that bracketing stage is skipped entirely.
type KernelKind uint8

const (
	UndefinedKernel KernelKind = iota

	// Main-kernel variants. Exactly one of these is chosen per plan; each
	// fixes how many trailing PRIM axes precede M,N,K and what kind they
	// must be (see Planner).
	MADD           // plain tiled multiply-add: C[m,n] += sum_k A[m,k]*B[k,n]
	BRMADD         // batch-reduce: C[m,n] += sum_{br,k} A[br,m,k]*B[br,k,n]
	PackedMADD     // packed/channel-first: operands carry a leading C axis
	CPXMADD        // complex multiply via paired real kernels
	CPXPackedMADD  // complex and packed combined

	// First-touch / last-touch element-wise kernel variants.
	Zero    // unary: out = 0
	Copy    // unary: out = outAux
	Add     // binary: out += outAux
	ReLU    // unary: out = max(out, 0)
	GELU    // unary: out = gelu(out)
	BiasAdd // binary: out += broadcast(outAux) along N
)

func (k KernelKind) String() string {
	switch k {
	case MADD:
		return "MADD"
	case BRMADD:
		return "BR_MADD"
	case PackedMADD:
		return "PACKED_MADD"
	case CPXMADD:
		return "CPX_MADD"
	case CPXPackedMADD:
		return "CPX_PACKED_MADD"
	case Zero:
		return "ZERO"
	case Copy:
		return "COPY"
	case Add:
		return "ADD"
	case ReLU:
		return "RELU"
	case GELU:
		return "GELU"
	case BiasAdd:
		return "BIAS_ADD"
	default:
		return "undefined"
	}
}

// Dtypes bundles the per-role scalar types supplied to Init.
type Dtypes struct {
	Left  Dtype
	Right Dtype
	Comp  Dtype // accumulation/compute datatype
	Out   Dtype
}

// Kinds bundles the three kernel slots supplied to Init.
type Kinds struct {
	FirstTouch KernelKind
	Main       KernelKind
	LastTouch  KernelKind
}
