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

// AxisDescriptor is a single entry of the ordered axis list that describes
// a contraction's iteration space, in array-of-structs form.
//
// Strides are element counts when passed to Init; Compile multiplies them
// by the relevant tensor's Dtype.ByteSize and stores them in byte units
// from that point on.
type AxisDescriptor struct {
	Kind          DimKind
	Exec          ExecKind
	Size          int64
	StrideLeft    int64
	StrideRight   int64
	StrideOut     int64
	StrideOutAux  int64
}

// IterationSpace is the struct-of-arrays equivalent of []AxisDescriptor.
// Both forms are accepted by Init/InitSoA and are equivalent; IterationSpace
// exists because it is the shape a contraction-tree builder naturally
// produces (one parallel slice per field, built incrementally per tensor).
type IterationSpace struct {
	Kind         []DimKind
	Exec         []ExecKind
	Size         []int64
	StrideLeft   []int64
	StrideRight  []int64
	StrideOut    []int64
	StrideOutAux []int64
}

// Len returns the number of axes.
func (s IterationSpace) Len() int {
	return len(s.Kind)
}

// ToAoS converts an IterationSpace into an equivalent []AxisDescriptor.
func (s IterationSpace) ToAoS() []AxisDescriptor {
	n := s.Len()
	axes := make([]AxisDescriptor, n)
	for i := range axes {
		axes[i] = AxisDescriptor{
			Kind:         s.Kind[i],
			Exec:         s.Exec[i],
			Size:         s.Size[i],
			StrideLeft:   s.StrideLeft[i],
			StrideRight:  s.StrideRight[i],
			StrideOut:    s.StrideOut[i],
			StrideOutAux: s.StrideOutAux[i],
		}
	}
	return axes
}

// FromAoS converts []AxisDescriptor into the equivalent IterationSpace.
func FromAoS(axes []AxisDescriptor) IterationSpace {
	s := IterationSpace{
		Kind:         make([]DimKind, len(axes)),
		Exec:         make([]ExecKind, len(axes)),
		Size:         make([]int64, len(axes)),
		StrideLeft:   make([]int64, len(axes)),
		StrideRight:  make([]int64, len(axes)),
		StrideOut:    make([]int64, len(axes)),
		StrideOutAux: make([]int64, len(axes)),
	}
	for i, a := range axes {
		s.Kind[i] = a.Kind
		s.Exec[i] = a.Exec
		s.Size[i] = a.Size
		s.StrideLeft[i] = a.StrideLeft
		s.StrideRight[i] = a.StrideRight
		s.StrideOut[i] = a.StrideOut
		s.StrideOutAux[i] = a.StrideOutAux
	}
	return s
}

// ThreadInfo carries one worker's starting offsets (in bytes, after
// Compile) into the four tensor buffers plus, for SFC-partitioned plans,
// the encoded move sequence that walks its assigned output tiles.
type ThreadInfo struct {
	OffsetLeft   int64
	OffsetRight  int64
	OffsetOut    int64
	OffsetOutAux int64

	// MovementIDs is nil/empty whenever the parallel block collapses to a
	// single axis (the common case); the driver then falls through to a
	// plain counted loop using ParallelCount in place of that axis'
	// global Size. When more than one axis is classified OMP/SFC within
	// the same contiguous parallel block, MovementIDs carries the
	// Gray-code-like move sequence described in spec.md §4.C4: each entry
	// encodes one step, bit 0 is direction (0 => +1, 1 => -1), the
	// remaining bits are the index of the parallel axis (relative to the
	// first parallel axis) whose stride should be applied at that step.
	MovementIDs []uint8

	// ParallelCount is this thread's trip count along the first parallel
	// axis when the parallel block is exactly one axis wide and
	// MovementIDs is therefore empty. Unused (zero) otherwise.
	ParallelCount int64
}

func decodeMove(move uint8) (axisOffset int, direction int64) {
	sign := move & 1
	direction = 1 - int64(sign)<<1
	axisOffset = int(move >> 1)
	return
}

func encodeMove(axisOffset int, direction int64) uint8 {
	var sign uint8
	if direction < 0 {
		sign = 1
	}
	return uint8(axisOffset)<<1 | sign
}
