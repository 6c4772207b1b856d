package css

import (
	"math/big"
	"strconv"
	"strings"
)

// Unit is a CSS unit like "px" or "em". Attaching a number to it produces
// a Quantity that supports exact arithmetic.
type Unit string

// Units creates several units at once. A single argument is split on
// whitespace.
func Units(names ...string) []Unit {
	if len(names) == 1 {
		names = strings.Fields(names[0])
	}
	out := make([]Unit, len(names))
	for i, name := range names {
		out[i] = Unit(name)
	}
	return out
}

// Q attaches a numeric value to the unit. Accepted values are Go integer
// and float types, *big.Rat and decimal strings; anything else counts as 0.
func (u Unit) Q(value any) Quantity {
	r, ok := toRat(value)
	if !ok {
		r, ok = ratFromString(stringify(value))
		if !ok {
			r = new(big.Rat)
		}
	}
	return Quantity{value: r, unit: u}
}

// Value is any arithmetic result: a Quantity, a Sum or a Var fallback.
type Value interface {
	String() string
}

// Quantity is an exact rational number with a unit.
type Quantity struct {
	value *big.Rat
	unit  Unit
}

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit { return q.unit }

// Rat returns a copy of the quantity's numeric value.
func (q Quantity) Rat() *big.Rat { return new(big.Rat).Set(q.rat()) }

func (q Quantity) rat() *big.Rat {
	if q.value == nil {
		return new(big.Rat)
	}
	return q.value
}

func (q Quantity) String() string { return formatRat(q.rat()) + string(q.unit) }

// Neg returns the quantity with its sign flipped.
func (q Quantity) Neg() Quantity {
	return Quantity{value: new(big.Rat).Neg(q.rat()), unit: q.unit}
}

func (q Quantity) Add(other any) Value { return Add(q, other) }
func (q Quantity) Sub(other any) Value { return Sub(q, other) }
func (q Quantity) Mul(other any) Value { return Mul(q, other) }
func (q Quantity) Div(other any) Value { return Div(q, other) }

// Sum is an addition of quantities with different units, rendered as a CSS
// calc() expression. Parts with the same unit are folded together and zero
// parts dropped at construction.
type Sum struct {
	parts []Quantity
}

// Parts returns a copy of the reduced parts.
func (s Sum) Parts() []Quantity { return append([]Quantity(nil), s.parts...) }

func newSum(parts []Quantity) Value {
	idx := make(map[Unit]int)
	var folded []Quantity
	for _, p := range parts {
		if i, ok := idx[p.unit]; ok {
			folded[i].value = new(big.Rat).Add(folded[i].rat(), p.rat())
			continue
		}
		idx[p.unit] = len(folded)
		folded = append(folded, Quantity{value: new(big.Rat).Set(p.rat()), unit: p.unit})
	}
	var nonzero []Quantity
	for _, p := range folded {
		if p.rat().Sign() != 0 {
			nonzero = append(nonzero, p)
		}
	}
	return Sum{parts: nonzero}
}

func (s Sum) String() string {
	ops := s.operations()
	switch {
	case len(ops) == 0:
		return "0"
	case len(ops) == 1 && !strings.Contains(ops[0], "/"):
		return ops[0]
	default:
		return "calc(" + strings.Join(ops, " ") + ")"
	}
}

// operations renders each part as "Nunit" or the fraction "Nunit / D",
// prefixed with "+ " or "- " from the second part on.
func (s Sum) operations() []string {
	out := make([]string, 0, len(s.parts))
	for i, p := range s.parts {
		q := p
		negated := i > 0 && p.rat().Sign() < 0
		if negated {
			q = p.Neg()
		}
		r := q.rat()
		str := r.Num().String() + string(q.unit)
		if !r.IsInt() {
			str += " / " + r.Denom().String()
		}
		switch {
		case i == 0:
			out = append(out, str)
		case negated:
			out = append(out, "- "+str)
		default:
			out = append(out, "+ "+str)
		}
	}
	return out
}

// Neg returns the sum with every part's sign flipped.
func (s Sum) Neg() Sum {
	parts := make([]Quantity, len(s.parts))
	for i, p := range s.parts {
		parts[i] = p.Neg()
	}
	return Sum{parts: parts}
}

func (s Sum) Add(other any) Value { return Add(s, other) }
func (s Sum) Sub(other any) Value { return Sub(s, other) }
func (s Sum) Mul(other any) Value { return Mul(s, other) }
func (s Sum) Div(other any) Value { return Div(s, other) }

// additionParts returns the quantity parts of a Quantity or Sum operand.
func additionParts(v any) ([]Quantity, bool) {
	switch t := v.(type) {
	case Quantity:
		return []Quantity{t}, true
	case Sum:
		return t.parts, true
	}
	return nil, false
}

// Add adds two arithmetic values. Same-unit quantities fold into one
// quantity, mixed units build a Sum, and anything non-numeric degrades to
// textual concatenation with "+".
func Add(a, b any) Value {
	if qa, ok := a.(Quantity); ok {
		if qb, ok := b.(Quantity); ok && qa.unit == qb.unit {
			return Quantity{value: new(big.Rat).Add(qa.rat(), qb.rat()), unit: qa.unit}
		}
	}
	pa, aok := additionParts(a)
	pb, bok := additionParts(b)
	if aok && bok {
		return newSum(append(append([]Quantity(nil), pa...), pb...))
	}
	return Var(stringify(a) + "+" + stringify(b))
}

// Sub subtracts b from a with the same rules as Add.
func Sub(a, b any) Value {
	if qa, ok := a.(Quantity); ok {
		if qb, ok := b.(Quantity); ok && qa.unit == qb.unit {
			return Quantity{value: new(big.Rat).Sub(qa.rat(), qb.rat()), unit: qa.unit}
		}
	}
	pa, aok := additionParts(a)
	pb, bok := additionParts(b)
	if aok && bok {
		parts := append([]Quantity(nil), pa...)
		for _, p := range pb {
			parts = append(parts, p.Neg())
		}
		return newSum(parts)
	}
	return Var(stringify(a) + "-" + stringify(b))
}

// Mul multiplies. A number times a unit produces a quantity; a number
// scales a quantity or sum; everything else degrades to concatenation
// with "*".
func Mul(a, b any) Value {
	if u, ok := a.(Unit); ok {
		if r, ok := toRat(b); ok {
			return Quantity{value: r, unit: u}
		}
		return Var(string(u) + "*" + stringify(b))
	}
	if u, ok := b.(Unit); ok {
		if r, ok := toRat(a); ok {
			return Quantity{value: r, unit: u}
		}
	}
	if q, ok := a.(Quantity); ok {
		if r, ok := toRat(b); ok {
			return Quantity{value: new(big.Rat).Mul(q.rat(), r), unit: q.unit}
		}
		return Var(q.String() + "*" + stringify(b))
	}
	if s, ok := a.(Sum); ok {
		if r, ok := toRat(b); ok {
			return scaleSum(s, r)
		}
		return Var(s.String() + "*" + stringify(b))
	}
	if r, ok := toRat(a); ok {
		if q, ok := b.(Quantity); ok {
			return Quantity{value: new(big.Rat).Mul(r, q.rat()), unit: q.unit}
		}
		if s, ok := b.(Sum); ok {
			return scaleSum(s, r)
		}
	}
	return Var(stringify(a) + "*" + stringify(b))
}

// Div divides. A quantity or sum divided by a number stays exact; anything
// else degrades to concatenation with "/".
func Div(a, b any) Value {
	if q, ok := a.(Quantity); ok {
		if r, ok := toRat(b); ok && r.Sign() != 0 {
			return Quantity{value: new(big.Rat).Quo(q.rat(), r), unit: q.unit}
		}
		return Var(q.String() + "/" + stringify(b))
	}
	if s, ok := a.(Sum); ok {
		if r, ok := toRat(b); ok && r.Sign() != 0 {
			return scaleSum(s, new(big.Rat).Inv(r))
		}
		return Var(s.String() + "/" + stringify(b))
	}
	return Var(stringify(a) + "/" + stringify(b))
}

// Neg negates an arithmetic value.
func Neg(a any) Value {
	switch t := a.(type) {
	case Quantity:
		return t.Neg()
	case Sum:
		return t.Neg()
	case Var:
		return t.Neg()
	default:
		return Var(stringify(a)).Neg()
	}
}

func scaleSum(s Sum, r *big.Rat) Value {
	parts := make([]Quantity, len(s.parts))
	for i, p := range s.parts {
		parts[i] = Quantity{value: new(big.Rat).Mul(p.rat(), r), unit: p.unit}
	}
	return newSum(parts)
}

// toRat converts a plain Go number to an exact rational. Floats go through
// their shortest decimal representation so 1.1 stays 11/10.
func toRat(value any) (*big.Rat, bool) {
	switch t := value.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(t)), true
	case int8:
		return new(big.Rat).SetInt64(int64(t)), true
	case int16:
		return new(big.Rat).SetInt64(int64(t)), true
	case int32:
		return new(big.Rat).SetInt64(int64(t)), true
	case int64:
		return new(big.Rat).SetInt64(t), true
	case uint:
		return new(big.Rat).SetUint64(uint64(t)), true
	case uint64:
		return new(big.Rat).SetUint64(t), true
	case float32:
		return ratFromString(strconv.FormatFloat(float64(t), 'f', -1, 32))
	case float64:
		return ratFromString(strconv.FormatFloat(t, 'f', -1, 64))
	case *big.Rat:
		return new(big.Rat).Set(t), true
	}
	return nil, false
}

func ratFromString(s string) (*big.Rat, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false
	}
	return r, true
}

// formatRat renders a rational the way CSS numbers are written: whole
// numbers without a point, others as a trimmed decimal.
func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	s := strings.TrimRight(r.FloatString(12), "0")
	return strings.TrimSuffix(s, ".")
}

// UnitNames are the standard CSS units preloaded into the keyword registry.
var UnitNames = strings.Fields(
	"cap ch em ex ic lh rem rlh vh vw vi vb vmin vmax " +
		"px cm mm Q in pt " +
		"deg grad rad turn fr Hz KHz dpi dpcm dppx s ms")

// Percent is the "%" unit. Its registry name is "pc" since "%" cannot be an
// identifier.
var Percent = Unit("%")
