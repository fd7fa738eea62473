// internal/component/position.go
package component

// Position — мировые координаты сущности.
type Position struct {
	X, Y float64
}

// Velocity — текущая скорость в мировых единицах в секунду.
type Velocity struct {
	X, Y float64
}
