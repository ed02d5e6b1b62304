// Package bonusmalus maps the 0-17 driver risk classes onto their premium
// coefficients. Class 7 is the neutral class with coefficient 1.0.
package bonusmalus

// NeutralClass is the reference class quotes are published at.
const NeutralClass = 7

var coefficients = map[int]float64{
	0:  2.5,
	1:  2.2,
	2:  1.9,
	3:  1.6,
	4:  1.45,
	5:  1.3,
	6:  1.15,
	7:  1.0,
	8:  0.95,
	9:  0.9,
	10: 0.85,
	11: 0.8,
	12: 0.75,
	13: 0.7,
	14: 0.65,
	15: 0.6,
	16: 0.55,
	17: 0.5,
}

// Coefficient returns the multiplier for class, or ok=false for classes
// outside the regulated 0-17 range.
func Coefficient(class int) (float64, bool) {
	c, ok := coefficients[class]
	return c, ok
}
