package parity

// Fixture holds the three operands of sum(A·B + D).
type Fixture struct {
	A [][]float64 // 2x3
	B [][]float64 // 3x4
	D [][]float64 // 2x4
}

// DefaultFixture returns the matrices the comparison is normally run on.
func DefaultFixture() Fixture {
	return Fixture{
		A: [][]float64{
			{0.2606, 0.0398, 0.2312},
			{0.4034, 0.8265, 0.7248},
		},
		B: [][]float64{
			{0.2026, 0.4692, 0.6961, 0.0221},
			{0.7270, 0.7451, 0.8819, 0.2733},
			{0.8547, 0.2478, 0.0153, 0.8785},
		},
		D: [][]float64{
			{0.0315, 0.0230, 0.0625, 0.9245},
			{0.6002, 0.0274, 0.2519, 0.3179},
		},
	}
}
