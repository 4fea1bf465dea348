package contraction

import "testing"

func TestDtypeByteSize(t *testing.T) {
	tests := []struct {
		d    Dtype
		want int64
	}{
		{FP32, 4},
		{FP64, 8},
		{BF16, 2},
		{FP16, 2},
		{CFP32, 4},
		{CFP64, 8},
		{UndefinedDtype, 0},
	}
	for _, tt := range tests {
		if got := tt.d.ByteSize(); got != tt.want {
			t.Errorf("%v.ByteSize() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestIterationSpaceRoundTrip(t *testing.T) {
	axes := []AxisDescriptor{
		{Kind: M, Exec: OMP, Size: 4, StrideLeft: 8, StrideRight: 0, StrideOut: 8, StrideOutAux: 0},
		{Kind: N, Exec: SEQ, Size: 6, StrideLeft: 0, StrideRight: 1, StrideOut: 1, StrideOutAux: 1},
		{Kind: K, Exec: PRIM, Size: 1},
	}
	space := FromAoS(axes)
	if space.Len() != len(axes) {
		t.Fatalf("Len() = %d, want %d", space.Len(), len(axes))
	}

	back := space.ToAoS()
	if len(back) != len(axes) {
		t.Fatalf("ToAoS() len = %d, want %d", len(back), len(axes))
	}
	for i := range axes {
		if back[i] != axes[i] {
			t.Errorf("axis %d: got %+v, want %+v", i, back[i], axes[i])
		}
	}
}

func TestMovementIDEncodeDecode(t *testing.T) {
	tests := []struct {
		axisOffset int
		direction  int64
	}{
		{0, 1}, {0, -1}, {1, 1}, {1, -1}, {5, 1}, {5, -1}, {63, 1}, {63, -1},
	}
	for _, tt := range tests {
		move := encodeMove(tt.axisOffset, tt.direction)
		gotOffset, gotDir := decodeMove(move)
		if gotOffset != tt.axisOffset || gotDir != tt.direction {
			t.Errorf("encodeMove(%d,%d) -> decodeMove = (%d,%d), want (%d,%d)",
				tt.axisOffset, tt.direction, gotOffset, gotDir, tt.axisOffset, tt.direction)
		}
	}
}
