package pool

import "math"

// MinInt32 and MaxInt32 bound the integer range this dialect's Integer
// data type can hold.
const (
	MinInt32 = math.MinInt32
	MaxInt32 = math.MaxInt32
)

// ConstNumPool interns numeric-literal constants, keyed by their exact
// source text (so "1" and "1.0" get distinct entries even though they
// compare equal as numbers, matching how the source recreates back
// verbatim). Text interning is delegated to a Dictionary; the pool adds
// only the parallel double-value array the dictionary itself has no use
// for (§4.2: "three parallel arrays indexed by operand").
type ConstNumPool struct {
	dict   *Dictionary
	values []float64
}

// NewConstNumPool returns an empty numeric constant pool.
func NewConstNumPool() *ConstNumPool {
	return &ConstNumPool{dict: NewDictionary()}
}

// Add interns a numeric literal given its exact text and parsed double
// value, returning its operand index. Re-adding identical text returns
// the same index (§4.2's idempotence requirement) without touching
// values, since the value for a given text never changes.
func (p *ConstNumPool) Add(text string, value float64) int {
	if i, ok := p.dict.Find(text); ok {
		return i
	}
	i := p.dict.Add(text)
	p.values = append(p.values, value)
	return i
}

// Text returns the original source text of the constant at index i.
func (p *ConstNumPool) Text(i int) string {
	return p.dict.At(i)
}

// Value returns the double value of the constant at index i.
func (p *ConstNumPool) Value(i int) float64 {
	return p.values[i]
}

// IntValue returns the int32 value of the constant at index i, truncating
// the stored double. Callers that need to know whether this truncation is
// lossless must check ConvertibleToInteger(Value(i)) themselves.
func (p *ConstNumPool) IntValue(i int) int32 {
	return int32(p.values[i])
}

// ConvertibleToInteger reports whether value has no fractional part and
// fits in the Integer data type's range. The compiler's convertToInteger
// (see package compiler) uses this to decide whether a constant push can
// be rewritten in place to const_int rather than needing a runtime cvtint
// opcode.
func ConvertibleToInteger(value float64) bool {
	if value != math.Trunc(value) {
		return false
	}
	return value >= MinInt32 && value <= MaxInt32
}
