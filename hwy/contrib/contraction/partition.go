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

// partitionThreads distributes the parallel (OMP/SFC-classified) portion of
// the axis list, axes[firstParallel:firstParallel+numParallel], across
// numThreads workers, producing one ThreadInfo per thread.
//
// Strides in axes must already be in byte units (partitionThreads runs
// after Backend.Compile's element-to-byte stride conversion).
//
// Two strategies, chosen by block width:
//
//   - A single parallel axis collapses to a block-cyclic count: each
//     thread gets a contiguous sub-range of that axis (same chunking
//     formula as hwy/contrib/workerpool.Pool.ParallelFor), expressed as a
//     starting offset plus ParallelCount. MovementIDs stays empty, matching
//     spec.md's "OMP-only" description directly.
//   - Two or more parallel axes are flattened into their Cartesian product
//     and walked in Gray-code order (generateGraySequence), guaranteeing
//     every consecutive tile differs in exactly one axis by exactly one
//     step (spec.md §8 property 5). Each thread is assigned a contiguous
//     run of that global sequence, which is also what SFC mode always
//     does — SFC and multi-axis OMP partitioning are the same mechanism
//     here, differing only in that SFC is specifically chosen so that
//     consecutive *parallel* work units land on adjacent cache lines,
//     which falls out naturally from contiguous runs of the same
//     Gray-code sequence.
func partitionThreads(axes []AxisDescriptor, firstParallel, numParallel int, numThreads int) []ThreadInfo {
	if firstParallel < 0 || numParallel == 0 {
		return []ThreadInfo{{}}
	}

	if numParallel == 1 {
		return partitionSingleAxis(axes[firstParallel], numThreads)
	}
	return partitionMultiAxis(axes[firstParallel:firstParallel+numParallel], numThreads)
}

func partitionSingleAxis(axis AxisDescriptor, numThreads int) []ThreadInfo {
	size := axis.Size
	if size <= 0 {
		return []ThreadInfo{{}}
	}

	workers := numThreads
	if workers > int(size) {
		workers = int(size)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (size + int64(workers) - 1) / int64(workers)
	// Drop workers the rounded-up chunk leaves with no index at all.
	workers = int((size + chunk - 1) / chunk)

	infos := make([]ThreadInfo, workers)
	for t := 0; t < workers; t++ {
		start := int64(t) * chunk
		end := min64(start+chunk, size)
		if start >= size {
			start, end = size, size
		}
		count := end - start
		infos[t] = ThreadInfo{
			OffsetLeft:    start * axis.StrideLeft,
			OffsetRight:   start * axis.StrideRight,
			OffsetOut:     start * axis.StrideOut,
			OffsetOutAux:  start * axis.StrideOutAux,
			ParallelCount: count,
		}
	}
	return infos
}

// graySequence is one entry of the global Gray-code-like traversal over a
// block of parallel axes: Index is the multi-index (one value per axis in
// the block) at this step, and Move is the (axisOffset, direction) that
// reaches it from the previous entry (zero value for the first entry).
type graySequence struct {
	Index []int64
	Move  uint8 // only meaningful for entries after the first
}

// generateGraySequence enumerates the Cartesian product of sizes using the
// reflected, mixed-radix Gray-code order described in spec.md §4.C4:
// processing axes from innermost to outermost, each axis alternates
// direction every time it would overflow, and the overflow "carries" to the
// next-outer axis exactly like a mixed-radix odometer — except each
// individual carry step is itself single-axis, since the outer axis moves
// by exactly one and the inner axis's direction flips without moving.
func generateGraySequence(sizes []int64) []graySequence {
	n := len(sizes)
	total := int64(1)
	for _, s := range sizes {
		total *= s
	}
	if total <= 0 {
		return nil
	}

	idx := make([]int64, n)
	dir := make([]int64, n)
	for i := range dir {
		dir[i] = 1
	}

	seq := make([]graySequence, 0, total)
	seq = append(seq, graySequence{Index: append([]int64(nil), idx...)})

	for int64(len(seq)) < total {
		moved := false
		for level := n - 1; level >= 0; level-- {
			next := idx[level] + dir[level]
			if next >= 0 && next < sizes[level] {
				idx[level] = next
				move := encodeMove(level, dir[level])
				seq = append(seq, graySequence{Index: append([]int64(nil), idx...), Move: move})
				moved = true
				break
			}
			dir[level] = -dir[level]
		}
		if !moved {
			break
		}
	}
	return seq
}

func partitionMultiAxis(axes []AxisDescriptor, numThreads int) []ThreadInfo {
	seq := generateGraySequence(sizesOf(axes))
	total := len(seq)
	if total == 0 {
		return []ThreadInfo{{}}
	}

	workers := numThreads
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (total + workers - 1) / workers
	// Drop workers the rounded-up chunk leaves with no entry at all.
	workers = (total + chunk - 1) / chunk

	infos := make([]ThreadInfo, workers)
	for t := 0; t < workers; t++ {
		start := t * chunk
		end := min(start+chunk, total)
		if start >= total {
			start, end = total, total
		}
		count := end - start
		info := ThreadInfo{}
		if count > 0 {
			first := seq[start].Index
			for k, ax := range axes {
				info.OffsetLeft += first[k] * ax.StrideLeft
				info.OffsetRight += first[k] * ax.StrideRight
				info.OffsetOut += first[k] * ax.StrideOut
				info.OffsetOutAux += first[k] * ax.StrideOutAux
			}
			moves := make([]uint8, count)
			for i := 0; i < count; i++ {
				if start+i+1 < total {
					moves[i] = seq[start+i+1].Move
				} else if count > 1 {
					// Trailing entry: its resulting pointer advance is
					// never read again once this thread's loop ends, but
					// must decode to a valid axis.
					moves[i] = moves[i-1]
				}
			}
			info.MovementIDs = moves
		}
		infos[t] = info
	}
	return infos
}

func sizesOf(axes []AxisDescriptor) []int64 {
	sizes := make([]int64, len(axes))
	for i, a := range axes {
		sizes[i] = a.Size
	}
	return sizes
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
