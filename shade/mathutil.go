package shade

import "math"

func powf(base, exp float32) float32 {
	if base <= 0 {
		return 0
	}
	return float32(math.Pow(float64(base), float64(exp)))
}

func sqrtf(x float32) float32 {
	if x < 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}
