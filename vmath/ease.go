package vmath

// Lerp moves from a toward b by fraction t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// --- Easing ---
// Input and output are progress fractions in [0, 1]

func Linear(t float64) float64 {
	return t
}

func QuadraticOut(t float64) float64 {
	return t * (2 - t)
}

// QuadraticInOut accelerates through the first half and decelerates through the second
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	t = 2*t - 1
	return -0.5 * (t*(t-2) - 1)
}
