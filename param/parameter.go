// Package param provides bounds-checked numeric parameters for
// scientific models.
package param

import (
	"fmt"
	"log"
	"math"
	"strconv"
)

// Bounds is an inclusive [Lower, Upper] range that constrains a
// parameter's value.
type Bounds struct {
	Lower float64
	Upper float64
}

// NewBounds creates a Bounds. The lower bound must not exceed the upper
// bound.
func NewBounds(lower, upper float64) *Bounds {
	if lower > upper {
		log.Panic("bounds must be ordered")
	}

	return &Bounds{Lower: lower, Upper: upper}
}

// Contains reports whether v falls within the bounds, inclusively.
func (b *Bounds) Contains(v float64) bool {
	return b.Lower <= v && v <= b.Upper
}

func (b *Bounds) String() string {
	if b == nil {
		return "nil"
	}

	return fmt.Sprintf("[%g, %g]", b.Lower, b.Upper)
}

// A Parameter wraps a single numeric value and enforces inclusive bounds
// on every mutation. Numeric operations forward to the wrapped value and
// never mutate the Parameter.
type Parameter struct {
	value    float64
	integral bool
	bounds   *Bounds
}

// New creates a Parameter wrapping the given value, unbounded.
func New(value any) (*Parameter, error) {
	p := &Parameter{}
	if err := p.SetValue(value); err != nil {
		return nil, err
	}

	return p, nil
}

// NewWithBounds creates a Parameter whose value must lie within
// [lower, upper]. The initial value is validated against the bounds.
func NewWithBounds(value any, lower, upper float64) (*Parameter, error) {
	p := &Parameter{}
	if err := p.Set(value, NewBounds(lower, upper)); err != nil {
		return nil, err
	}

	return p, nil
}

// MustNew is like New, but panics on error. It is intended for
// parameter-table declarations.
func MustNew(value any) *Parameter {
	p, err := New(value)
	if err != nil {
		panic(err)
	}

	return p
}

// MustNewWithBounds is like NewWithBounds, but panics on error.
func MustNewWithBounds(value any, lower, upper float64) *Parameter {
	p, err := NewWithBounds(value, lower, upper)
	if err != nil {
		panic(err)
	}

	return p
}

// Value returns the wrapped scalar.
func (p *Parameter) Value() float64 {
	return p.value
}

// Integral reports whether the wrapped value was last set from an
// integer.
func (p *Parameter) Integral() bool {
	return p.integral
}

// BoundsOrNil returns the bounds, or nil if the parameter is unbounded.
func (p *Parameter) BoundsOrNil() *Bounds {
	return p.bounds
}

// SetBounds replaces the bounds. A nil argument is a no-op; the existing
// bounds are left unchanged, not cleared. The current value is not
// re-validated.
func (p *Parameter) SetBounds(b *Bounds) {
	if b == nil {
		return
	}

	p.bounds = b
}

// SetValue validates the value against the current bounds and stores it.
// The value may be a Go integer or float, or another Parameter, whose
// inner value is then copied.
func (p *Parameter) SetValue(value any) error {
	v, integral, err := asScalar(value)
	if err != nil {
		return err
	}

	if err := p.checkBounds(v); err != nil {
		return err
	}

	p.value = v
	p.integral = integral

	return nil
}

// Set replaces the bounds first and then the value, so the new bounds
// apply to the incoming value.
func (p *Parameter) Set(value any, b *Bounds) error {
	p.SetBounds(b)
	return p.SetValue(value)
}

// Clone returns an independent copy of the parameter.
func (p *Parameter) Clone() *Parameter {
	c := *p
	if p.bounds != nil {
		b := *p.bounds
		c.bounds = &b
	}

	return &c
}

func (p *Parameter) checkBounds(v float64) error {
	if p.bounds == nil {
		return nil
	}

	if !p.bounds.Contains(v) {
		return fmt.Errorf("%w: %.2g [%.2g,%.2g]",
			ErrOutOfBounds, v, p.bounds.Lower, p.bounds.Upper)
	}

	return nil
}

func asScalar(value any) (v float64, integral bool, err error) {
	switch x := value.(type) {
	case int:
		return float64(x), true, nil
	case int8:
		return float64(x), true, nil
	case int16:
		return float64(x), true, nil
	case int32:
		return float64(x), true, nil
	case int64:
		return float64(x), true, nil
	case uint:
		return float64(x), true, nil
	case uint8:
		return float64(x), true, nil
	case uint16:
		return float64(x), true, nil
	case uint32:
		return float64(x), true, nil
	case uint64:
		return float64(x), true, nil
	case float32:
		return float64(x), false, nil
	case float64:
		return x, false, nil
	case *Parameter:
		return x.value, x.integral, nil
	case Parameter:
		return x.value, x.integral, nil
	}

	return 0, false, fmt.Errorf("%w: %T", ErrNotNumeric, value)
}

// Comparison operations.

// Eq reports whether the wrapped value equals x.
func (p *Parameter) Eq(x float64) bool { return p.value == x }

// Ne reports whether the wrapped value differs from x.
func (p *Parameter) Ne(x float64) bool { return p.value != x }

// Lt reports whether the wrapped value is less than x.
func (p *Parameter) Lt(x float64) bool { return p.value < x }

// Gt reports whether the wrapped value is greater than x.
func (p *Parameter) Gt(x float64) bool { return p.value > x }

// Le reports whether the wrapped value is at most x.
func (p *Parameter) Le(x float64) bool { return p.value <= x }

// Ge reports whether the wrapped value is at least x.
func (p *Parameter) Ge(x float64) bool { return p.value >= x }

// Cmp returns 0 if the wrapped value equals x, 1 if it is greater, and
// -1 if it is smaller.
func (p *Parameter) Cmp(x float64) int {
	switch {
	case p.value == x:
		return 0
	case p.value > x:
		return 1
	}

	return -1
}

// Unary operations.

// Pos returns the wrapped value unchanged.
func (p *Parameter) Pos() float64 { return p.value }

// Neg returns the negated wrapped value.
func (p *Parameter) Neg() float64 { return -p.value }

// Abs returns the absolute wrapped value.
func (p *Parameter) Abs() float64 { return math.Abs(p.value) }

// Arithmetic operations. Each applies the native operation to the
// wrapped value and the operand and returns a plain number.

// Add returns value + x.
func (p *Parameter) Add(x float64) float64 { return p.value + x }

// Sub returns value - x.
func (p *Parameter) Sub(x float64) float64 { return p.value - x }

// Mul returns value * x.
func (p *Parameter) Mul(x float64) float64 { return p.value * x }

// Div returns value / x.
func (p *Parameter) Div(x float64) float64 { return p.value / x }

// Mod returns the remainder of value / x.
func (p *Parameter) Mod(x float64) float64 { return math.Mod(p.value, x) }

// Pow returns value raised to the power x.
func (p *Parameter) Pow(x float64) float64 { return math.Pow(p.value, x) }

// FloorDiv returns value / x rounded toward negative infinity.
func (p *Parameter) FloorDiv(x float64) float64 {
	return math.Floor(p.value / x)
}

// DivMod returns the floored quotient of value / x and the matching
// remainder, so q always agrees with FloorDiv.
func (p *Parameter) DivMod(x float64) (q, r float64) {
	q = math.Floor(p.value / x)
	return q, p.value - q*x
}

// Reflected arithmetic operations, for the non-commutative operators.

// RSub returns x - value.
func (p *Parameter) RSub(x float64) float64 { return x - p.value }

// RDiv returns x / value.
func (p *Parameter) RDiv(x float64) float64 { return x / p.value }

// RMod returns the remainder of x / value.
func (p *Parameter) RMod(x float64) float64 { return math.Mod(x, p.value) }

// RPow returns x raised to the power value.
func (p *Parameter) RPow(x float64) float64 { return math.Pow(x, p.value) }

// RFloorDiv returns x / value rounded toward negative infinity.
func (p *Parameter) RFloorDiv(x float64) float64 {
	return math.Floor(x / p.value)
}

// RDivMod returns the floored quotient of x / value and the matching
// remainder, so q always agrees with RFloorDiv.
func (p *Parameter) RDivMod(x float64) (q, r float64) {
	q = math.Floor(x / p.value)
	return q, x - q*p.value
}

// Bitwise operations. They operate on the integer representation of the
// wrapped value and panic if the value is not integral.

// Invert returns the bitwise complement of the wrapped value.
func (p *Parameter) Invert() int64 { return ^p.intValue() }

// And returns value & x.
func (p *Parameter) And(x int64) int64 { return p.intValue() & x }

// Or returns value | x.
func (p *Parameter) Or(x int64) int64 { return p.intValue() | x }

// Xor returns value ^ x.
func (p *Parameter) Xor(x int64) int64 { return p.intValue() ^ x }

// Lshift returns value << x.
func (p *Parameter) Lshift(x uint) int64 { return p.intValue() << x }

// Rshift returns value >> x.
func (p *Parameter) Rshift(x uint) int64 { return p.intValue() >> x }

// RLshift returns x << value.
func (p *Parameter) RLshift(x int64) int64 {
	return x << uint(p.intValue())
}

// RRshift returns x >> value.
func (p *Parameter) RRshift(x int64) int64 {
	return x >> uint(p.intValue())
}

func (p *Parameter) intValue() int64 {
	if !p.integral {
		log.Panic("bitwise operation requires an integral value")
	}

	return int64(p.value)
}

// Conversions delegate to the wrapped value.

// Int returns the wrapped value truncated to an integer.
func (p *Parameter) Int() int64 { return int64(p.value) }

// Float returns the wrapped value as a float64.
func (p *Parameter) Float() float64 { return p.value }

// String returns the representation "Parameter(<value>, <bounds>)".
func (p *Parameter) String() string {
	return fmt.Sprintf("Parameter(%s, %s)", p.valueString(), p.bounds)
}

func (p *Parameter) valueString() string {
	if p.integral {
		return strconv.FormatInt(int64(p.value), 10)
	}

	return strconv.FormatFloat(p.value, 'g', -1, 64)
}
