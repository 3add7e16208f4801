package engine

import "github.com/chewxy/math32"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // No value set
	UnitPoint                 // Absolute points
	UnitPercent               // Percentage of the owner's size
	UnitAuto                  // Size determined by content/flex
)

// Value represents a dimension that can be a point value, a percentage,
// auto, or undefined. Undefined and auto values carry NaN amounts, matching
// the engine-wide NaN-as-unset convention.
type Value struct {
	Amount float32
	Unit   Unit
}

// Undefined returns an unset Value.
func Undefined() Value {
	return Value{Amount: math32.NaN(), Unit: UnitUndefined}
}

// Point returns a Value of v absolute points.
func Point(v float32) Value {
	return Value{Amount: v, Unit: UnitPoint}
}

// Percent returns a Value of p percent of the owner's size (0-100 scale).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Auto returns a Value that is computed from content/flex.
func Auto() Value {
	return Value{Amount: math32.NaN(), Unit: UnitAuto}
}

// IsUndefined returns true if no value has been set.
func (v Value) IsUndefined() bool {
	return v.Unit == UnitUndefined
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve computes the value in points against the owner's size.
// Returns NaN for undefined and auto values, and for percentages of an
// undefined owner size.
func (v Value) Resolve(ownerSize float32) float32 {
	switch v.Unit {
	case UnitPoint:
		return v.Amount
	case UnitPercent:
		return v.Amount * ownerSize / 100
	default:
		return math32.NaN()
	}
}

// ResolveOr is Resolve with a fallback for values that resolve to NaN.
func (v Value) ResolveOr(ownerSize, fallback float32) float32 {
	if r := v.Resolve(ownerSize); !math32.IsNaN(r) {
		return r
	}
	return fallback
}

// Equal reports whether two values are the same logical value.
// NaN amounts compare equal when units match.
func (v Value) Equal(o Value) bool {
	if v.Unit != o.Unit {
		return false
	}
	if math32.IsNaN(v.Amount) && math32.IsNaN(o.Amount) {
		return true
	}
	return v.Amount == o.Amount
}
