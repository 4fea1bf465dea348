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

import (
	"context"
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/example/einsum-ir-go/hwy/contrib/workerpool"
)

// Backend owns a single contraction plan from Init through Compile to
// Contract. It is not safe for concurrent use by multiple goroutines
// calling Init/Compile; Contract itself is the parallel entry point and
// may be called repeatedly once compiled.
type Backend struct {
	axes []AxisDescriptor
	dt   Dtypes
	kind Kinds

	numThreads int
	compiled   bool

	logger *slog.Logger

	shape KernelShape
	plan  compiledPlan

	threads []ThreadInfo
	pool    *workerpool.Pool
}

// New returns an uncompiled Backend.
func New() *Backend {
	return &Backend{}
}

// SetLogger injects an optional structured logger. Compile emits one Debug
// record describing the derived kernel shape when a non-nil logger is set;
// Contract never logs (see SPEC_FULL.md §9).
func (b *Backend) SetLogger(logger *slog.Logger) {
	b.logger = logger
}

// SetThreadHint retargets the thread count for the next Compile. It marks
// the backend uncompiled, so Contract returns ErrUndefined until Compile
// runs again and partitions with the new count. Mirrors the original
// BinaryContractionTpp::threading entry point (SPEC_FULL.md §11.3).
func (b *Backend) SetThreadHint(numThreads int) {
	b.numThreads = numThreads
	b.compiled = false
}

// Init stores the axis-of-structs iteration space and datatypes/kernel
// kinds, and marks the backend uncompiled. Equivalent to InitSoA called
// with FromAoS-converted axes.
func (b *Backend) Init(axes []AxisDescriptor, dt Dtypes, kind Kinds, numThreads int) error {
	b.axes = append([]AxisDescriptor(nil), axes...)
	b.dt = dt
	b.kind = kind
	b.numThreads = numThreads
	b.compiled = false
	return nil
}

// InitSoA is the struct-of-arrays equivalent of Init.
func (b *Backend) InitSoA(space IterationSpace, dt Dtypes, kind Kinds, numThreads int) error {
	return b.Init(space.ToAoS(), dt, kind, numThreads)
}

// Compile derives the kernel shape (Planner), asks provider for the three
// kernel closures, prepends a size-1 SEQ axis if the axis list starts with
// a PRIM axis, locates the parallel/PRIM boundaries, converts strides from
// element to byte units, and partitions the parallel axes across threads.
// Idempotent: calling Compile again on an already-compiled Backend is a
// no-op that returns nil without re-deriving anything.
func (b *Backend) Compile(provider KernelProvider) error {
	if b.compiled {
		return nil
	}
	if len(b.axes) == 0 {
		return fmt.Errorf("%w: Init was not called", ErrUndefined)
	}

	shape, err := planKernelShape(b.axes, b.kind.Main, b.dt)
	if err != nil {
		return err
	}

	mainKernel, err := provider.CompileMain(shape, b.kind.Main, b.dt)
	if err != nil {
		return fmt.Errorf("%w: main kernel: %v", ErrCompilationFailed, err)
	}
	firstTouch, err := provider.CompileFirstTouch(shape, b.kind.FirstTouch, b.dt)
	if err != nil {
		return fmt.Errorf("%w: first-touch kernel: %v", ErrCompilationFailed, err)
	}
	lastTouch, err := provider.CompileLastTouch(shape, b.kind.LastTouch, b.dt)
	if err != nil {
		return fmt.Errorf("%w: last-touch kernel: %v", ErrCompilationFailed, err)
	}

	axes := append([]AxisDescriptor(nil), b.axes...)
	if axes[0].Exec == PRIM {
		axes = append([]AxisDescriptor{{Kind: UndefinedDim, Exec: SEQ, Size: 1}}, axes...)
	}

	firstParallel, numParallel, firstPrim := -1, 0, -1
	for i := range axes {
		if axes[i].Exec == OMP || axes[i].Exec == SFC {
			if firstParallel == -1 {
				firstParallel = i
			}
			numParallel++
		}
		if axes[i].Exec == PRIM {
			firstPrim = i
			break
		}
	}

	numThreads := b.numThreads
	if numParallel == 0 {
		numThreads = 1
	}
	if numThreads < 1 {
		numThreads = 1
	}

	for i := range axes {
		axes[i].StrideLeft *= b.dt.Left.ByteSize()
		axes[i].StrideRight *= b.dt.Right.ByteSize()
		axes[i].StrideOut *= b.dt.Out.ByteSize()
		axes[i].StrideOutAux *= b.dt.Out.ByteSize()
	}

	threads := partitionThreads(axes, firstParallel, numParallel, numThreads)

	plan := compiledPlan{
		dimType:           make([]DimKind, len(axes)),
		execType:          make([]ExecKind, len(axes)),
		sizes:             make([]int64, len(axes)),
		strideLeft:        make([]int64, len(axes)),
		strideRight:       make([]int64, len(axes)),
		strideOut:         make([]int64, len(axes)),
		strideOutAux:      make([]int64, len(axes)),
		firstParallelAxis: firstParallel,
		numParallelAxes:   numParallel,
		firstPrimAxis:     firstPrim,
		hasFirstTouch:     b.kind.FirstTouch != UndefinedKernel,
		hasLastTouch:      b.kind.LastTouch != UndefinedKernel,
		firstTouch:        firstTouch,
		main:              mainKernel,
		lastTouch:         lastTouch,
	}
	for i, a := range axes {
		plan.dimType[i] = a.Kind
		plan.execType[i] = a.Exec
		plan.sizes[i] = a.Size
		plan.strideLeft[i] = a.StrideLeft
		plan.strideRight[i] = a.StrideRight
		plan.strideOut[i] = a.StrideOut
		plan.strideOutAux[i] = a.StrideOutAux
	}

	if b.pool == nil || b.pool.NumWorkers() != len(threads) {
		if b.pool != nil {
			b.pool.Close()
		}
		b.pool = workerpool.New(len(threads))
	}

	b.shape = shape
	b.plan = plan
	b.threads = threads
	b.numThreads = len(threads)
	b.compiled = true

	if b.logger != nil {
		b.logger.Debug("contraction plan compiled",
			"kind", b.kind.Main.String(),
			"m", shape.M, "n", shape.N, "k", shape.K, "br", shape.Br, "r", shape.R,
			"lda", shape.LDA, "ldb", shape.LDB, "ldc", shape.LDC,
			"numThreads", b.numThreads, "numAxes", len(axes))
	}

	return nil
}

// Contract launches one worker per thread partition and runs the loop
// driver over each worker's assigned region. left, right, out must be
// non-nil and point to buffers large enough for the Cartesian extent
// implied by the plan's axes and strides; outAux may be nil.
func (b *Backend) Contract(left, right, outAux, out unsafe.Pointer) error {
	if !b.compiled {
		return ErrUndefined
	}

	b.pool.ParallelForAtomic(len(b.threads), func(i int) {
		th := &b.threads[i]
		runDriver(&b.plan,
			th,
			addOffset(left, th.OffsetLeft),
			addOffset(right, th.OffsetRight),
			addOffset(outAux, th.OffsetOutAux),
			addOffset(out, th.OffsetOut),
		)
	})
	return nil
}

// ContractNoAux is the three-argument form, equivalent to Contract with a
// nil outAux.
func (b *Backend) ContractNoAux(left, right, out unsafe.Pointer) error {
	return b.Contract(left, right, nil, out)
}

// ContractContext is Contract with cooperative cancellation: if ctx is
// canceled before dispatch, it returns ctx.Err() without doing any work.
// Workers themselves are not preemptible mid-tile (the loop driver has no
// suspension points, per spec.md §5), so cancellation only takes effect
// between Contract calls, not within one — this binds the previously
// dependency-graph-only golang.org/x/sync/errgroup into the fan-out
// described in SPEC_FULL.md §5/§10.
func (b *Backend) ContractContext(ctx context.Context, left, right, outAux, out unsafe.Pointer) error {
	if !b.compiled {
		return ErrUndefined
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	for i := range b.threads {
		th := &b.threads[i]
		g.Go(func() error {
			runDriver(&b.plan,
				th,
				addOffset(left, th.OffsetLeft),
				addOffset(right, th.OffsetRight),
				addOffset(outAux, th.OffsetOutAux),
				addOffset(out, th.OffsetOut),
			)
			return nil
		})
	}
	return g.Wait()
}

// NumThreads returns the thread count the current (or most recently
// compiled) plan uses.
func (b *Backend) NumThreads() int {
	return b.numThreads
}

// Shape returns the derived KernelShape. Valid only after a successful
// Compile.
func (b *Backend) Shape() KernelShape {
	return b.shape
}
