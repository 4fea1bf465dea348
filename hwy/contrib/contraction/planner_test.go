package contraction

import (
	"errors"
	"testing"
)

// matmulAxes builds a minimal column-major MxK * KxN = MxN axis list (three
// trailing PRIM axes: M, N, K) with no outer loops, matching the classic
// BLAS sgemm stride convention: the M axis is the contiguous/unit-stride
// dimension of A and C, the K axis is the contiguous dimension of B.
func matmulAxes(m, n, k int64) []AxisDescriptor {
	return []AxisDescriptor{
		{Kind: M, Exec: PRIM, Size: m, StrideLeft: 1, StrideOut: 1},
		{Kind: N, Exec: PRIM, Size: n, StrideRight: k, StrideOut: m},
		{Kind: K, Exec: PRIM, Size: k, StrideLeft: m, StrideRight: 1},
	}
}

func TestPlanKernelShapeMADD(t *testing.T) {
	axes := matmulAxes(4, 3, 5)
	shape, err := planKernelShape(axes, MADD, Dtypes{Left: FP32, Right: FP32, Out: FP32})
	if err != nil {
		t.Fatalf("planKernelShape: %v", err)
	}
	if shape.M != 4 || shape.N != 3 || shape.K != 5 {
		t.Fatalf("shape M/N/K = %d/%d/%d, want 4/3/5", shape.M, shape.N, shape.K)
	}
	if shape.TransA || shape.TransB {
		t.Fatalf("TransA=%v TransB=%v, want both false for column-major inputs", shape.TransA, shape.TransB)
	}
	if shape.LDA != 4 || shape.LDB != 5 || shape.LDC != 4 {
		t.Fatalf("LDA/LDB/LDC = %d/%d/%d, want 4/5/4", shape.LDA, shape.LDB, shape.LDC)
	}
	if shape.Br != 1 || shape.R != 1 {
		t.Fatalf("Br/R = %d/%d, want 1/1 for plain MADD", shape.Br, shape.R)
	}
}

func TestPlanKernelShapeTooFewAxes(t *testing.T) {
	_, err := planKernelShape(matmulAxes(1, 1, 1)[:2], MADD, Dtypes{})
	if !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed", err)
	}
}

func TestPlanKernelShapeWrongPrimCount(t *testing.T) {
	axes := matmulAxes(4, 3, 5)
	axes[0].Exec = SEQ // only 2 trailing PRIM axes now, MADD needs 3
	_, err := planKernelShape(axes, MADD, Dtypes{})
	if !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed", err)
	}
}

func TestPlanKernelShapeWrongTrailingKinds(t *testing.T) {
	axes := matmulAxes(4, 3, 5)
	axes[1].Kind = K // corrupt the required N slot
	_, err := planKernelShape(axes, MADD, Dtypes{})
	if !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed", err)
	}
}

func TestPlanKernelShapeBRMADD(t *testing.T) {
	base := matmulAxes(4, 3, 5)
	axes := append([]AxisDescriptor{
		{Kind: K, Exec: PRIM, Size: 2, StrideLeft: 20, StrideRight: 15},
	}, base...)

	shape, err := planKernelShape(axes, BRMADD, Dtypes{Left: FP32, Right: FP32, Out: FP32})
	if err != nil {
		t.Fatalf("planKernelShape: %v", err)
	}
	if shape.Br != 2 {
		t.Fatalf("Br = %d, want 2", shape.Br)
	}
	if shape.BrStrideA != 20 || shape.BrStrideB != 15 {
		t.Fatalf("BrStrideA/B = %d/%d, want 20/15", shape.BrStrideA, shape.BrStrideB)
	}

	axes[0].Kind = M // BR_MADD requires the L-4 axis to be K
	if _, err := planKernelShape(axes, BRMADD, Dtypes{}); !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed when L-4 is not K", err)
	}
}

func TestPlanKernelShapePackedMADD(t *testing.T) {
	base := matmulAxes(4, 3, 5)
	base[0].StrideLeft, base[0].StrideOut = 8, 8 // packed layout: stride[M] == r
	axes := append([]AxisDescriptor{
		{Kind: C, Exec: PRIM, Size: 8},
	}, base...)

	shape, err := planKernelShape(axes, PackedMADD, Dtypes{Left: FP32, Right: FP32, Out: FP32})
	if err != nil {
		t.Fatalf("planKernelShape: %v", err)
	}
	if shape.R != 8 {
		t.Fatalf("R = %d, want 8", shape.R)
	}

	axes[0].Kind = N
	if _, err := planKernelShape(axes, PackedMADD, Dtypes{}); !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed when L-4 is not C", err)
	}
}

func TestPlanKernelShapeCPXPackedMADDChecksBothAxesIndependently(t *testing.T) {
	const m, n, k, r = int64(4), int64(3), int64(5), int64(8)
	good := []AxisDescriptor{
		{Kind: CPX, Exec: PRIM, Size: 2, StrideLeft: 1, StrideRight: 1, StrideOut: 1},
		{Kind: C, Exec: PRIM, Size: r},
		{Kind: M, Exec: PRIM, Size: m, StrideLeft: r, StrideOut: r},
		{Kind: N, Exec: PRIM, Size: n, StrideRight: k * r, StrideOut: m * r},
		{Kind: K, Exec: PRIM, Size: k, StrideLeft: m * r, StrideRight: r},
	}

	if _, err := planKernelShape(good, CPXPackedMADD, Dtypes{Left: CFP32, Right: CFP32, Out: CFP32}); err != nil {
		t.Fatalf("planKernelShape with correct L-4=C, L-5=CPX: %v", err)
	}

	// Swap the two roles: L-4 is now CPX and L-5 is C, which must be
	// rejected even though the spec's original source describes the check
	// by comparing one index twice rather than two independent indices.
	swapped := append([]AxisDescriptor{}, good...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if _, err := planKernelShape(swapped, CPXPackedMADD, Dtypes{}); !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed when L-4/L-5 roles are swapped", err)
	}

	// Only L-4 wrong.
	onlyL4Wrong := append([]AxisDescriptor{}, good...)
	onlyL4Wrong[1].Kind = N
	if _, err := planKernelShape(onlyL4Wrong, CPXPackedMADD, Dtypes{}); !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed when only L-4 is wrong", err)
	}

	// Only L-5 wrong.
	onlyL5Wrong := append([]AxisDescriptor{}, good...)
	onlyL5Wrong[0].Kind = N
	if _, err := planKernelShape(onlyL5Wrong, CPXPackedMADD, Dtypes{}); !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed when only L-5 is wrong", err)
	}
}

func TestFixupDegenerateLeadingDimsNEqualsOne(t *testing.T) {
	axes := matmulAxes(4, 1, 5)
	axes[1].StrideOut = 4 // m*r; the n==1 fixup sets LDC to M*R whatever this is

	shape, err := planKernelShape(axes, MADD, Dtypes{Left: FP32, Right: FP32, Out: FP32})
	if err != nil {
		t.Fatalf("planKernelShape: %v", err)
	}
	if shape.LDC != shape.M*shape.R {
		t.Errorf("LDC = %d, want M*R = %d", shape.LDC, shape.M*shape.R)
	}
	if shape.StrideNOutAux != shape.M*shape.R {
		t.Errorf("StrideNOutAux = %d, want M*R = %d", shape.StrideNOutAux, shape.M*shape.R)
	}
}

func TestPlanComplexStridesByteConversion(t *testing.T) {
	base := matmulAxes(4, 3, 5)
	axes := append([]AxisDescriptor{
		{Kind: CPX, Exec: PRIM, Size: 2, StrideLeft: 20, StrideRight: 15, StrideOut: 12, StrideOutAux: 0},
	}, base...)

	shape, err := planKernelShape(axes, CPXMADD, Dtypes{Left: FP64, Right: FP64, Comp: FP64, Out: FP64})
	if err != nil {
		t.Fatalf("planKernelShape: %v", err)
	}
	if want := int64(20 * 8); shape.CpxStrideLeftBytes != want {
		t.Errorf("CpxStrideLeftBytes = %d, want %d", shape.CpxStrideLeftBytes, want)
	}
	if want := int64(15 * 8); shape.CpxStrideRightBytes != want {
		t.Errorf("CpxStrideRightBytes = %d, want %d", shape.CpxStrideRightBytes, want)
	}
	if want := int64(12 * 8); shape.CpxStrideOutBytes != want {
		t.Errorf("CpxStrideOutBytes = %d, want %d", shape.CpxStrideOutBytes, want)
	}
}

func TestPlanKernelShapeCPXAxisMustHaveSizeTwo(t *testing.T) {
	base := matmulAxes(4, 3, 5)
	axes := append([]AxisDescriptor{
		{Kind: CPX, Exec: PRIM, Size: 3},
	}, base...)
	if _, err := planKernelShape(axes, CPXMADD, Dtypes{Left: FP32, Right: FP32, Out: FP32}); !errors.Is(err, ErrCompilationFailed) {
		t.Fatalf("err = %v, want wrapping ErrCompilationFailed for CPX axis size != 2", err)
	}
}
