package css

import (
	"fmt"
	"hash/fnv"
	"io"
	"strconv"
	"strings"
)

// Entry is a single key/value pair of an ordered document.
type Entry struct {
	Key   any
	Value any
}

// Dict is an ordered CSS document: a slice of entries whose order is the
// emission order. Unlike a Go map it allows duplicate keys and keeps them.
type Dict []Entry

// Tuple groups values that are space-joined when used as a declaration
// value, or treated as independent selectors when used as a key.
type Tuple []any

// List groups values that are comma-joined when used as a declaration value.
type List []any

// Set groups media query feature names, rendered as "(a, b)".
type Set []any

// Get returns the value of the first entry matching key.
func (d Dict) Get(key any) (any, bool) {
	want := keyText(key)
	for _, e := range d {
		if keyText(e.Key) == want {
			return e.Value, true
		}
	}
	return nil, false
}

// Combine is a group of documents rendered one after another. It is
// produced by CombineOf when the documents share keys and a plain merged
// Dict would lose entries.
type Combine struct {
	Dicts []Dict
}

// Entries returns the entries of all grouped documents in order.
func (c *Combine) Entries() []Entry {
	var out []Entry
	for _, d := range c.Dicts {
		out = append(out, d...)
	}
	return out
}

// entriesOf extracts the ordered entries of a document value.
func entriesOf(doc any) ([]Entry, bool) {
	switch t := doc.(type) {
	case Dict:
		return t, true
	case *Combine:
		return t.Entries(), true
	default:
		return nil, false
	}
}

// CombineOf groups documents together. When no keys collide the result is a
// single flat Dict; otherwise a *Combine keeping every document intact.
// A plain string argument becomes a raw CSS block.
func CombineOf(docs ...any) (any, error) {
	var dicts []Dict
	for _, doc := range docs {
		switch t := doc.(type) {
		case nil:
		case *Combine:
			dicts = append(dicts, t.Dicts...)
		case Dict:
			dicts = append(dicts, t)
		case string:
			dicts = append(dicts, Dict{{Key: RawKey(), Value: t}})
		case Var:
			dicts = append(dicts, Dict{{Key: RawKey(), Value: string(t)}})
		default:
			return nil, fmt.Errorf("cannot combine %T into a stylesheet document", doc)
		}
	}
	switch len(dicts) {
	case 0:
		return Dict{}, nil
	case 1:
		return append(Dict(nil), dicts[0]...), nil
	}
	seen := make(map[string]struct{})
	collision := false
	for _, d := range dicts {
		for _, e := range d {
			kt := keyText(e.Key)
			if _, ok := seen[kt]; ok {
				collision = true
			}
			seen[kt] = struct{}{}
		}
	}
	if collision {
		return &Combine{Dicts: dicts}, nil
	}
	var merged Dict
	for _, d := range dicts {
		merged = append(merged, d...)
	}
	return merged, nil
}

// Merge deep-merges documents left to right. Matching keys holding nested
// documents merge recursively, scalar values are replaced in place, and a
// nil value removes the key.
func Merge(docs ...any) (Dict, error) {
	result := Dict{}
	for _, doc := range docs {
		var parts []Dict
		switch t := doc.(type) {
		case Dict:
			parts = []Dict{t}
		case *Combine:
			parts = t.Dicts
		default:
			return nil, fmt.Errorf("cannot merge %T into a stylesheet document", doc)
		}
		for _, p := range parts {
			result = mergeDict(result, p)
		}
	}
	return result, nil
}

func mergeDict(dst, src Dict) Dict {
	out := append(Dict(nil), dst...)
	for _, e := range src {
		idx := -1
		want := keyText(e.Key)
		for i := range out {
			if keyText(out[i].Key) == want {
				idx = i
				break
			}
		}
		if idx >= 0 {
			if dstSub, ok := out[idx].Value.(Dict); ok {
				if srcSub, ok := e.Value.(Dict); ok {
					out[idx].Value = mergeDict(dstSub, srcSub)
					continue
				}
			}
		}
		if e.Value == nil {
			if idx >= 0 {
				out = append(out[:idx], out[idx+1:]...)
			}
			continue
		}
		if idx >= 0 {
			out[idx].Value = e.Value
		} else {
			out = append(out, e)
		}
	}
	return out
}

// keyText is the canonical text of a document key, used for key matching
// and hashing.
func keyText(key any) string {
	if t, ok := key.(Tuple); ok {
		parts := make([]string, 0, len(t))
		for _, p := range t {
			parts = append(parts, stringify(p))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return stringify(key)
}

// dictHash is a content hash of a document, insensitive to entry order, so
// structurally identical extend documents collapse to one record.
func dictHash(doc any) string {
	return strconv.FormatUint(hashValue(doc), 10)
}

func hashValue(value any) uint64 {
	switch t := value.(type) {
	case Dict:
		var sum uint64
		for _, e := range t {
			h := fnv.New64a()
			io.WriteString(h, keyText(e.Key))
			h.Write([]byte{0})
			io.WriteString(h, strconv.FormatUint(hashValue(e.Value), 16))
			sum += h.Sum64()
		}
		return sum
	case *Combine:
		var sum uint64
		for _, d := range t.Dicts {
			sum += hashValue(d)
		}
		return sum
	case Tuple:
		return hashSequence("tuple", t)
	case List:
		return hashSequence("list", t)
	default:
		h := fnv.New64a()
		fmt.Fprintf(h, "%T\x00%v", value, value)
		return h.Sum64()
	}
}

func hashSequence(kind string, values []any) uint64 {
	h := fnv.New64a()
	io.WriteString(h, kind)
	for _, v := range values {
		h.Write([]byte{0})
		io.WriteString(h, strconv.FormatUint(hashValue(v), 16))
	}
	return h.Sum64()
}
