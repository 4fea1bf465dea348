package dot

import "github.com/example/einsum-ir-go/hwy"

// Dot computes the dot product of a and b, summing a[i]*b[i] for i in
// 0..min(len(a),len(b)). Uses SIMD acceleration via the hwy package
// primitives: vectorized load/multiply-add over full lanes, scalar tail
// for the remainder.
func Dot(a, b []float32) float32 {
	return baseDot(a, b)
}

// DotFloat64 is the float64 equivalent of Dot.
func DotFloat64(a, b []float64) float64 {
	return baseDot(a, b)
}

func baseDot[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))

	sum := hwy.Zero[T]()
	lanes := sum.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := hwy.Load(a[i:])
		vb := hwy.Load(b[i:])
		sum = hwy.MulAdd(va, vb, sum)
	}

	acc := hwy.ReduceSum(sum)
	for ; i < n; i++ {
		acc += a[i] * b[i]
	}
	return acc
}
