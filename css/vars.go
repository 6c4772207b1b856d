package css

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Var is a CSS fragment that knows how to combine itself with other
// fragments. It is a plain string underneath, so it can be used anywhere a
// selector, property name or value is expected.
type Var string

func (v Var) String() string { return string(v) }

// Vars creates several vars at once. A single argument is split on
// whitespace, so Vars("foo bar") and Vars("foo", "bar") are equivalent.
func Vars(names ...string) []Var {
	if len(names) == 1 {
		names = strings.Fields(names[0])
	}
	out := make([]Var, len(names))
	for i, name := range names {
		out[i] = Var(name)
	}
	return out
}

// stringify renders any supported value to its textual CSS form.
func stringify(value any) string {
	switch t := value.(type) {
	case nil:
		return ""
	case string:
		return t
	case Var:
		return string(t)
	case Unit:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// toVar converts a value to a Var. Dicts become the parenthesized
// "(key: value, ...)" form used in media queries, sets become "(a, b)".
func toVar(value any) Var {
	switch t := value.(type) {
	case Var:
		return t
	case Unit:
		return Var(t)
	case Dict:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, stringify(e.Key)+": "+stringify(e.Value))
		}
		return Var("(" + strings.Join(parts, ", ") + ")")
	case Set:
		parts := make([]string, 0, len(t))
		for _, v := range t {
			parts = append(parts, stringify(v))
		}
		return Var("(" + strings.Join(parts, ", ") + ")")
	default:
		return Var(stringify(value))
	}
}

// Neg prefixes the var with a dash. An empty var stays empty.
func (v Var) Neg() Var {
	if v == "" {
		return v
	}
	return "-" + v
}

// Dash joins the var and the other value with a dash. An empty operand
// is absorbed so chains like foo.Dash(bar).Dash(empty) stay clean.
func (v Var) Dash(other any) Var { return v.joinOp("-", other) }

// Plus joins the var and the other value with a plus sign.
func (v Var) Plus(other any) Var { return v.joinOp("+", other) }

// Slash joins the var and the other value with a slash.
func (v Var) Slash(other any) Var { return v.joinOp("/", other) }

func (v Var) joinOp(op string, other any) Var {
	o := toVar(other)
	if o == "" {
		return v
	}
	return v + Var(op) + o
}

// And combines two media query terms with " and ". A bare "not " prefix on
// the left side attaches directly to the right side, so Var("").Not().And(x)
// yields "not x".
func (v Var) And(other any) Var { return v.boolOp(" and ", other) }

// Or combines two media query terms with " or ".
func (v Var) Or(other any) Var { return v.boolOp(" or ", other) }

func (v Var) boolOp(op string, other any) Var {
	self := v
	if v == "" || v == "not " {
		self = ""
	}
	o := toVar(other)
	switch {
	case self != "" && o != "":
		return v + Var(op) + o
	case v != "" && o != "":
		return v + o
	case o != "":
		return o
	default:
		return v
	}
}

// Not prefixes the var with "not ".
func (v Var) Not() Var { return "not " + v }

// Call renders the var as a function call with comma separated arguments.
// The "only" var is special cased to the media query form "only args".
func (v Var) Call(args ...any) Var { return v.CallSep(", ", args...) }

// CallSep is Call with an explicit argument separator.
func (v Var) CallSep(sep string, args ...any) Var {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		switch t := arg.(type) {
		case Tuple:
			parts = append(parts, string(Join(t...)))
		case List:
			parts = append(parts, string(Many(t...)))
		default:
			parts = append(parts, stringify(arg))
		}
	}
	joined := Var(strings.Join(parts, sep))
	if v == "only" {
		return v + " " + joined
	}
	return v + "(" + joined + ")"
}

// Join space-joins values into one. Lists nested inside are comma-joined.
func Join(values ...any) Var {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if l, ok := value.(List); ok {
			parts = append(parts, string(Many(l...)))
			continue
		}
		parts = append(parts, stringify(value))
	}
	return Var(strings.Join(parts, " "))
}

// Many comma-joins values into one. Tuples nested inside are space-joined.
func Many(values ...any) Var {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if t, ok := value.(Tuple); ok {
			parts = append(parts, string(Join(t...)))
			continue
		}
		parts = append(parts, stringify(value))
	}
	return Var(strings.Join(parts, ", "))
}

// Str renders a value as a single quoted CSS string.
func Str(value any) Var { return Var("'" + stringify(value) + "'") }

// Not negates media query terms. Several terms are "or"-joined and
// parenthesized before negation.
func Not(args ...any) Var {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if o := toVar(arg); o != "" {
			parts = append(parts, string(o))
		}
	}
	joined := strings.Join(parts, " or ")
	if len(args) > 1 {
		return Var("not (" + joined + ")")
	}
	return Var("not " + joined)
}

// OverrideSpec holds several values for a single property. Each value is
// emitted as its own declaration, in order, so later ones win in browsers
// that understand them.
type OverrideSpec struct {
	Declarations []any
}

// Override declares several fallback values for one property.
func Override(declarations ...any) *OverrideSpec {
	return &OverrideSpec{Declarations: declarations}
}

// ExtendSpec marks a selector as extending one or more previously declared
// extends, with optional CSS of its own.
type ExtendSpec struct {
	Extends []any
	CSS     any
}

// Extend references one or more extends by name, document or nested spec.
func Extend(extends ...any) *ExtendSpec {
	return &ExtendSpec{Extends: extends}
}

// With attaches the selector's own CSS to the extend reference.
func (e *ExtendSpec) With(css any) *ExtendSpec {
	return &ExtendSpec{Extends: e.Extends, CSS: css}
}

const (
	rawPrefix     = ":raw:"
	commentPrefix = "/*"
)

var (
	rawCounter     atomic.Uint64
	commentCounter atomic.Uint64
)

// RawKey returns a fresh unique key for a raw CSS block, so several raw
// blocks can live in the same document.
func RawKey() Var {
	return Var(rawPrefix + strconv.FormatUint(rawCounter.Add(1), 10))
}

// CommentKey returns a fresh unique key for a comment entry.
func CommentKey() Var {
	return Var(commentPrefix + strconv.FormatUint(commentCounter.Add(1), 10))
}
