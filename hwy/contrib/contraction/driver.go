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

// compiledPlan is the immutable, byte-stride data the loop driver walks.
// It is read-only during Contract; every worker reads the same copy.
type compiledPlan struct {
	dimType  []DimKind
	execType []ExecKind
	sizes    []int64

	strideLeft   []int64
	strideRight  []int64
	strideOut    []int64
	strideOutAux []int64

	firstParallelAxis int // -1 if none
	numParallelAxes   int
	firstPrimAxis     int

	hasFirstTouch bool
	hasLastTouch  bool

	firstTouch FirstTouchKernel
	main       MainKernel
	lastTouch  LastTouchKernel
}

// runDriver walks the outer loop nest for one worker thread, starting at
// axis 0 with the thread's pre-offset base pointers. It is the Go
// equivalent of ContractionBackend::contract_iter, expressed recursively.
func runDriver(plan *compiledPlan, thread *ThreadInfo, ptrLeft, ptrRight, ptrOutAux, ptrOut unsafe.Pointer) {
	driveAxis(plan, thread, 0, ptrLeft, ptrRight, ptrOutAux, ptrOut, true, true)
}

func driveAxis(
	plan *compiledPlan,
	thread *ThreadInfo,
	axis int,
	ptrLeft, ptrRight, ptrOutAux, ptrOut unsafe.Pointer,
	firstAccess, lastAccess bool,
) {
	size := plan.sizes[axis]
	nextAxis := axis + 1
	usingMoves := false

	if axis == plan.firstParallelAxis {
		if len(thread.MovementIDs) > 0 {
			usingMoves = true
			size = int64(len(thread.MovementIDs))
			nextAxis = axis + plan.numParallelAxes
		} else if thread.ParallelCount > 0 {
			size = thread.ParallelCount
		}
	}

	nonKLoop := plan.dimType[axis] != K
	currentAxis := axis
	var direction int64 = 1

	for t := int64(0); t < size; t++ {
		first := firstAccess && (nonKLoop || t == 0)
		last := lastAccess && (nonKLoop || t == size-1)

		if usingMoves {
			move := thread.MovementIDs[t]
			axisOffset, dir := decodeMove(move)
			currentAxis = plan.firstParallelAxis + axisOffset
			direction = dir
		}

		if nextAxis < plan.firstPrimAxis {
			driveAxis(plan, thread, nextAxis, ptrLeft, ptrRight, ptrOutAux, ptrOut, first, last)
		} else {
			if first && plan.hasFirstTouch {
				plan.firstTouch(ptrOutAux, ptrOut)
			}
			plan.main(ptrLeft, ptrRight, ptrOut)
			if last && plan.hasLastTouch {
				plan.lastTouch(ptrOutAux, ptrOut)
			}
		}

		ptrLeft = addOffset(ptrLeft, direction*plan.strideLeft[currentAxis])
		ptrRight = addOffset(ptrRight, direction*plan.strideRight[currentAxis])
		ptrOutAux = addOffset(ptrOutAux, direction*plan.strideOutAux[currentAxis])
		ptrOut = addOffset(ptrOut, direction*plan.strideOut[currentAxis])
	}
}

// addOffset advances a possibly-nil pointer by a byte offset that may be
// negative (SFC moves can step backward). nil (no auxiliary tensor) stays
// nil regardless of offset.
func addOffset(p unsafe.Pointer, byteOffset int64) unsafe.Pointer {
	if p == nil {
		return nil
	}
	if byteOffset >= 0 {
		return unsafe.Add(p, uintptr(byteOffset))
	}
	return unsafe.Add(p, -uintptr(-byteOffset))
}
