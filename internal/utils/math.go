// internal/utils/math.go
package utils

import "math"

// Distance — евклидово расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize приводит вектор к единичной длине; нулевой вектор остаётся нулевым.
func Normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// Lerp — линейная интерполяция между a и b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp ограничивает v диапазоном [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RectsIntersect сообщает, пересекаются ли два прямоугольника,
// заданных углом и габаритами. Касание по границе не считается.
func RectsIntersect(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
