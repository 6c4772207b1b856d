package css

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VarKind selects what a registry name resolves to.
type VarKind int

const (
	// KindVar manufactures a Var from the name.
	KindVar VarKind = iota
	// KindUnit manufactures a Unit from the name.
	KindUnit
	// KindValue stores the given value untouched.
	KindValue
)

type addOptions struct {
	kind    VarKind
	value   any
	aliases []string
}

// AddOption configures VarTable.Add.
type AddOption func(*addOptions)

// AsUnit registers the name as a Unit instead of a Var.
func AsUnit() AddOption { return func(o *addOptions) { o.kind = KindUnit } }

// WithValue registers an explicit value instead of one derived from the
// name. Combined with the default kind the value is coerced to a Var, with
// AsUnit to a Unit, and with AsValue it is stored as given.
func WithValue(value any) AddOption { return func(o *addOptions) { o.value = value } }

// AsValue stores the registered value untouched (at-rules, helpers).
func AsValue() AddOption { return func(o *addOptions) { o.kind = KindValue } }

// WithAliases registers the same value under additional names, each with
// its own case variants.
func WithAliases(names ...string) AddOption {
	return func(o *addOptions) { o.aliases = append(o.aliases, names...) }
}

// VarTable maps names to CSS values and manufactures a Var for any unknown
// name on Get, so keywords never need declaring up front.
type VarTable struct {
	mu     sync.Mutex
	vars   map[string]any
	values map[valueKey]any
}

type valueKey struct {
	kind VarKind
	text string
}

// NewVarTable creates an empty registry.
func NewVarTable() *VarTable {
	return &VarTable{
		vars:   make(map[string]any),
		values: make(map[valueKey]any),
	}
}

// Get returns the value registered under name, creating and registering a
// Var (with the usual case variants) when the name is unknown.
func (t *VarTable) Get(name string) any {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.vars[name]; ok {
		return v
	}
	t.add(name, addOptions{kind: KindVar})
	if v, ok := t.vars[name]; ok {
		return v
	}
	// the normalized registration may not cover the exact spelling asked for
	v := Var(strings.ToLower(strings.ReplaceAll(name, "_", "-")))
	t.vars[name] = v
	return v
}

// Var is Get coerced to a Var.
func (t *VarTable) Var(name string) Var {
	switch v := t.Get(name).(type) {
	case Var:
		return v
	case Unit:
		return Var(v)
	default:
		return Var(stringify(v))
	}
}

// Unit is Get coerced to a Unit.
func (t *VarTable) Unit(name string) Unit {
	switch v := t.Get(name).(type) {
	case Unit:
		return v
	case Var:
		return Unit(v)
	default:
		return Unit(stringify(v))
	}
}

// Has reports whether the exact name is registered.
func (t *VarTable) Has(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.vars[name]
	return ok
}

// Names returns every registered name.
func (t *VarTable) Names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.vars))
	for name := range t.vars {
		out = append(out, name)
	}
	return out
}

// Add registers a name, deriving lowercase, snake_case, camelCase and
// PascalCase variants, plus each dash-separated part on its own. All
// variants of one spelling share a single value.
func (t *VarTable) Add(name string, opts ...AddOption) {
	o := addOptions{kind: KindVar}
	for _, opt := range opts {
		opt(&o)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(name, o)
}

func (t *VarTable) add(name string, o addOptions) {
	derive := func(n string) any {
		if o.value != nil {
			switch o.kind {
			case KindUnit:
				return Unit(stringify(o.value))
			case KindValue:
				return o.value
			default:
				return Var(stringify(o.value))
			}
		}
		text := strings.ToLower(strings.ReplaceAll(n, "_", "-"))
		switch o.kind {
		case KindUnit:
			return Unit(text)
		case KindValue:
			return text
		default:
			return Var(text)
		}
	}

	register := func(value any, names ...string) {
		vk := valueKey{kind: o.kind, text: stringify(value)}
		shared, ok := t.values[vk]
		if !ok {
			shared = value
			t.values[vk] = shared
		}
		for _, n := range names {
			if n == "" {
				continue
			}
			t.vars[n] = shared
		}
	}

	for _, n := range append([]string{name}, o.aliases...) {
		if strings.Count(n, "_") != len(n) {
			n = strings.Trim(strings.ReplaceAll(n, "_", "-"), "-")
		}
		if strings.Contains(n, "-") {
			parts := strings.Split(n, "-")
			if o.value == nil {
				for _, part := range parts {
					if part == "" {
						continue
					}
					register(derive(part), part, capitalize(part))
				}
			}
			snake := strings.Join(parts, "_")
			pascal := ""
			for _, part := range parts {
				pascal += capitalize(part)
			}
			camel := lowerFirst(pascal)
			register(derive(snake), snake, pascal, camel)
		} else {
			register(derive(n), n, capitalize(n))
		}
	}
}

func capitalize(s string) string {
	return cases.Title(language.Und).String(s)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Keywords is the process-wide registry, preloaded with the standard
// helpers, at-rules and units.
var Keywords = NewVarTable()

func init() {
	LoadDefaults(Keywords)
	LoadUnits(Keywords)
}

// LoadDefaults registers the standard at-rules and the neutral "_" starter
// used to begin media query chains.
func LoadDefaults(t *VarTable) {
	t.Add("_", AsValue(), WithValue(Var("")))
	for _, rule := range AtRules {
		t.Add(rule.Name, AsValue(), WithValue(rule))
	}
}

// LoadUnits registers the standard CSS units, plus "pc" for the "%" unit
// (aliased as "percent").
func LoadUnits(t *VarTable) {
	for _, name := range UnitNames {
		t.Add(name, AsUnit())
	}
	t.Add("pc", AsUnit(), WithValue("%"), WithAliases("percent"))
}
