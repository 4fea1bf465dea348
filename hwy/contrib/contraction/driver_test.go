package contraction

import (
	"testing"
	"unsafe"
)

// TestRunDriverFirstLastTouchBracketing builds a tiny 1x1 output with a
// K-reduction axis of depth 3 and checks that first-touch fires exactly
// once (before the first K step), the main kernel fires once per K step,
// and last-touch fires exactly once (after the last K step).
func TestRunDriverFirstLastTouchBracketing(t *testing.T) {
	var mainCalls, firstCalls, lastCalls int

	plan := &compiledPlan{
		dimType:           []DimKind{M, N, K, K},
		execType:          []ExecKind{SEQ, SEQ, SEQ, PRIM},
		sizes:             []int64{1, 1, 3, 1},
		strideLeft:        []int64{0, 0, 8, 0},
		strideRight:       []int64{0, 0, 8, 0},
		strideOut:         []int64{0, 0, 0, 0},
		strideOutAux:      []int64{0, 0, 0, 0},
		firstParallelAxis: -1,
		numParallelAxes:   0,
		firstPrimAxis:     3,
		hasFirstTouch:     true,
		hasLastTouch:      true,
		firstTouch: func(outAux, out unsafe.Pointer) {
			firstCalls++
		},
		main: func(left, right, out unsafe.Pointer) {
			mainCalls++
		},
		lastTouch: func(outAux, out unsafe.Pointer) {
			lastCalls++
		},
	}

	buf := make([]byte, 64)
	base := unsafe.Pointer(&buf[0])
	runDriver(plan, &ThreadInfo{}, base, base, nil, base)

	if mainCalls != 3 {
		t.Errorf("mainCalls = %d, want 3 (once per K step)", mainCalls)
	}
	if firstCalls != 1 {
		t.Errorf("firstCalls = %d, want 1", firstCalls)
	}
	if lastCalls != 1 {
		t.Errorf("lastCalls = %d, want 1", lastCalls)
	}
}

// TestRunDriverNonKLoopBracketsEveryIteration checks that for a non-K outer
// loop (e.g. an M axis with no parallel block), first/last touch fire once
// per outer iteration rather than once total, since each iteration reaches
// a distinct output tile.
func TestRunDriverNonKLoopBracketsEveryIteration(t *testing.T) {
	var mainCalls, firstCalls, lastCalls int

	plan := &compiledPlan{
		dimType:           []DimKind{M, N, K, K},
		execType:          []ExecKind{SEQ, SEQ, SEQ, PRIM},
		sizes:             []int64{4, 1, 2, 1},
		strideLeft:        []int64{16, 0, 8, 0},
		strideRight:       []int64{0, 0, 8, 0},
		strideOut:         []int64{8, 0, 0, 0},
		strideOutAux:      []int64{0, 0, 0, 0},
		firstParallelAxis: -1,
		numParallelAxes:   0,
		firstPrimAxis:     3,
		hasFirstTouch:     true,
		hasLastTouch:      true,
		firstTouch: func(outAux, out unsafe.Pointer) {
			firstCalls++
		},
		main: func(left, right, out unsafe.Pointer) {
			mainCalls++
		},
		lastTouch: func(outAux, out unsafe.Pointer) {
			lastCalls++
		},
	}

	buf := make([]byte, 256)
	base := unsafe.Pointer(&buf[0])
	runDriver(plan, &ThreadInfo{}, base, base, nil, base)

	if mainCalls != 8 {
		t.Errorf("mainCalls = %d, want 8 (4 M steps * 2 K steps)", mainCalls)
	}
	if firstCalls != 4 {
		t.Errorf("firstCalls = %d, want 4 (once per M step)", firstCalls)
	}
	if lastCalls != 4 {
		t.Errorf("lastCalls = %d, want 4 (once per M step)", lastCalls)
	}
}

func TestAddOffsetNilStaysNil(t *testing.T) {
	if got := addOffset(nil, 42); got != nil {
		t.Errorf("addOffset(nil, 42) = %v, want nil", got)
	}
	if got := addOffset(nil, -42); got != nil {
		t.Errorf("addOffset(nil, -42) = %v, want nil", got)
	}
}

func TestAddOffsetRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	base := unsafe.Pointer(&buf[0])

	forward := addOffset(base, 8)
	back := addOffset(forward, -8)
	if back != base {
		t.Errorf("addOffset round trip: got %v, want %v", back, base)
	}
}
