package css

import (
	"fmt"
	"strings"
)

// rawBlockKey marks declarations emitted verbatim, without "key: value"
// formatting: raw blocks and comments.
const rawBlockKey = "::RAW::"

type declaration struct {
	key      string
	value    string
	hasValue bool
}

// Render turns a stylesheet document into CSS text, using the given mode
// or the process-wide default.
func Render(doc any, mode ...Mode) (string, error) {
	conf := DefaultMode()
	if len(mode) > 0 {
		conf = mode[0]
	}
	return renderDoc("", doc, conf, -1, "", 0, nil)
}

// renderingExtend is one known extend: its content, the selectors that use
// it so far and, when declared with "%name", that name. The selectors
// slice is shared between the name and content-hash entries of the table.
type renderingExtend struct {
	name      string
	css       any
	selectors *[]string
}

type extendTable struct {
	order []string
	m     map[string]*renderingExtend
}

func newExtendTable() *extendTable {
	return &extendTable{m: make(map[string]*renderingExtend)}
}

func (t *extendTable) set(key string, rec *renderingExtend) {
	if _, ok := t.m[key]; !ok {
		t.order = append(t.order, key)
	}
	t.m[key] = rec
}

// repeatIndent is strings.Repeat tolerating the negative counts produced
// by extreme IndentClosingIncr values.
func repeatIndent(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	return strings.Repeat(s, n)
}

// renderSelector renders one ruleset: the buffered declarations of a
// selector, or a bare raw block when selector is rawBlockKey.
func renderSelector(selector string, declarations []declaration, conf Mode, level int, forceIndent string) string {
	if len(declarations) == 0 {
		return ""
	}
	selector = strings.TrimSpace(selector)
	if selector == "" || (selector == rawBlockKey && !conf.IndentChildren) {
		level--
	}
	last := len(declarations) - 1
	parts := make([]string, 0, len(declarations))
	for i, d := range declarations {
		indent := ""
		if strings.Contains(conf.DeclEndline, "\n") || i == 0 {
			if i > 0 {
				indent = forceIndent
			}
			indent += repeatIndent(conf.Indent, level+conf.DeclIncr)
		}
		semi := ""
		if i != last || conf.LastSemi {
			semi = ";"
		}
		switch {
		case d.key == rawBlockKey:
			parts = append(parts, indent+d.value)
		case !d.hasValue:
			parts = append(parts, indent+d.key+semi)
		default:
			parts = append(parts, indent+d.key+":"+conf.Space+d.value+semi)
		}
	}
	decls := strings.Join(parts, conf.DeclEndline)

	closingEndline := conf.ClosingEndline
	if declarations[last].key == rawBlockKey && closingEndline == " " {
		closingEndline = "\n"
	}
	switch {
	case selector == rawBlockKey:
		return decls + conf.SelAfterEndline
	case selector != "":
		indentEnd := ""
		if strings.Contains(closingEndline, "\n") {
			indentEnd = repeatIndent(conf.Indent, level+conf.IndentClosingIncr)
		}
		return forceIndent + repeatIndent(conf.Indent, level) + selector + conf.Space + "{" +
			conf.OpeningEndline + decls + closingEndline + indentEnd + "}" + conf.SelAfterEndline
	default:
		return decls + closingEndline
	}
}

// composeSelector combines a parent selector with a child key. Comma lists
// on either side multiply out, and "&" in a child part is replaced by the
// parent (otherwise the parent is prepended as an ancestor).
func composeSelector(parent string, child any) string {
	var childParts []string
	if t, ok := child.(Tuple); ok {
		for _, p := range t {
			childParts = append(childParts, stringify(p))
		}
	} else {
		childParts = strings.Split(stringify(child), ",")
	}

	if parent == "" {
		out := make([]string, 0, len(childParts))
		for _, p := range childParts {
			out = append(out, strings.ReplaceAll(strings.TrimSpace(p), "&", ""))
		}
		return strings.Join(out, ", ")
	}

	parentParts := strings.Split(parent, ",")
	for i := range parentParts {
		parentParts[i] = strings.TrimSpace(parentParts[i])
	}
	prepared := make([]string, 0, len(childParts))
	for _, p := range childParts {
		p = strings.TrimSpace(p)
		switch {
		case strings.Contains(p, "&"):
			prepared = append(prepared, p)
		case p == "":
			prepared = append(prepared, "&")
		default:
			prepared = append(prepared, "& "+p)
		}
	}
	out := make([]string, 0, len(parentParts)*len(prepared))
	for _, pp := range parentParts {
		for _, cp := range prepared {
			out = append(out, strings.ReplaceAll(cp, "&", pp))
		}
	}
	return strings.Join(out, ", ")
}

// containsProperties reports whether a document has at least one direct
// declaration, as opposed to only nested rulesets.
func containsProperties(doc any) bool {
	entries, _ := entriesOf(doc)
	for _, e := range entries {
		switch e.Value.(type) {
		case Dict, *Combine, *ExtendSpec:
		default:
			return true
		}
	}
	return false
}

func isEmptyDoc(doc any) bool {
	entries, ok := entriesOf(doc)
	return ok && len(entries) == 0
}

// dictKeyString normalizes a key of a nested-document entry. Quantities
// (keyframe percentages) count as plain string keys.
func dictKeyString(key any) (string, bool) {
	switch t := key.(type) {
	case string:
		return t, true
	case Var:
		return string(t), true
	case Quantity:
		return t.String(), true
	}
	return "", false
}

func tupleHasPrefix(key any, prefix string) bool {
	t, ok := key.(Tuple)
	if !ok {
		return false
	}
	for _, p := range t {
		if strings.HasPrefix(stringify(p), prefix) {
			return true
		}
	}
	return false
}

func renderDoc(selector string, doc any, conf Mode, level int, forceIndent string, noIndentMinLevel int, extends *extendTable) (string, error) {
	entries, ok := entriesOf(doc)
	if !ok {
		return "", fmt.Errorf("cannot render %T as a stylesheet document", doc)
	}

	selector = strings.TrimSpace(selector)

	nextLevel := noIndentMinLevel
	renderLevel := noIndentMinLevel
	if conf.IndentChildren {
		nextLevel = level + 1
		renderLevel = level
	}

	table := extends
	if table == nil {
		table = newExtendTable()
	}

	var (
		result       string
		declarations []declaration
		comments     []declaration
		newExtends   []string
	)

	// registerExtend records a document under its content hash (emitting a
	// placeholder resolved at the end of this pass) and, when declared with
	// "%name", under that name too.
	registerExtend := func(dct any, name string) (string, error) {
		if name != "" {
			name = strings.TrimSpace(name)
			if name[1:] == "" {
				return "", fmt.Errorf("An extend must have a name: it cannot be `%%` alone")
			}
			if _, ok := table.m[name]; ok {
				return "", fmt.Errorf("The extend `%s` already exists", name)
			}
		}
		h := dictHash(dct)
		if _, ok := table.m[h]; !ok {
			selectors := []string{}
			table.set(h, &renderingExtend{css: dct, selectors: &selectors})
			result += "<extend:" + h + ">"
			newExtends = append(newExtends, h)
		}
		if name != "" {
			rec := &renderingExtend{name: name, css: dct, selectors: table.m[h].selectors}
			table.set(name, rec)
			table.m[h] = rec
		}
		return h, nil
	}

	var useExtend func(selector string, ext any) error
	useExtend = func(selector string, ext any) error {
		switch t := ext.(type) {
		case Dict, *Combine:
			h, err := registerExtend(t, "")
			if err != nil {
				return err
			}
			rec := table.m[h]
			*rec.selectors = append(*rec.selectors, selector)
		case *ExtendSpec:
			for _, sub := range t.Extends {
				if err := useExtend(selector, sub); err != nil {
					return err
				}
			}
			if t.CSS != nil && !isEmptyDoc(t.CSS) {
				return useExtend(selector, t.CSS)
			}
		default:
			key := "%" + stringify(ext)
			rec, ok := table.m[key]
			if !ok {
				return fmt.Errorf("Cannot extend `%s` with undefined/not yet defined `%s`", selector, key)
			}
			*rec.selectors = append(*rec.selectors, selector)
		}
		return nil
	}

	// flush renders the buffered declarations for the current selector,
	// then any comments that did not attach to a declaration.
	flush := func(mergeComments bool) {
		if len(declarations) > 0 {
			if mergeComments {
				declarations = append(declarations, comments...)
				comments = comments[:0]
			}
			result += renderSelector(selector, declarations, conf, renderLevel, forceIndent)
			declarations = declarations[:0]
		}
		if len(comments) > 0 {
			c := conf
			c.DeclIncr = 1
			result += renderSelector(rawBlockKey, comments, c, renderLevel, "")
			comments = comments[:0]
		}
	}

	stack := append([]Entry(nil), entries...)
	for len(stack) > 0 {
		entry := stack[0]
		stack = stack[1:]
		key, value := entry.Key, entry.Value

		switch v := value.(type) {
		case Dict, *Combine:
			flush(false)
			keyStr, isStr := dictKeyString(key)
			switch {
			case isStr && strings.HasPrefix(keyStr, "%"):
				if _, err := registerExtend(v, keyStr); err != nil {
					return "", err
				}
			case isStr && strings.HasPrefix(keyStr, "@"):
				// at-rules render into their own scope: known extends are
				// copied in so the nested content can reuse them, and the
				// nested pass resolves its own placeholders.
				ruleValue := value
				if len(table.m) > 0 {
					known := Dict{}
					for _, k := range table.order {
						if strings.HasPrefix(k, "%") {
							continue
						}
						rec, ok := table.m[k]
						if !ok {
							continue
						}
						name := rec.name
						if name == "" {
							name = "%" + k
						}
						known = append(known, Entry{Key: name, Value: rec.css})
					}
					combined, err := CombineOf(known, value)
					if err != nil {
						return "", err
					}
					ruleValue = combined
				}
				inner, err := renderDoc(selector, ruleValue, conf, nextLevel,
					forceIndent+conf.ForceIndentRuleChildren, noIndentMinLevel+1, nil)
				if err != nil {
					return "", err
				}
				inner = strings.TrimRight(inner, conf.Endline)
				result += repeatIndent(conf.Indent, nextLevel) + keyStr + conf.Space + "{" +
					conf.SelAfterEndline + inner + conf.ClosingEndline +
					repeatIndent(conf.Indent, nextLevel+conf.IndentClosingIncr) + "}" + conf.SelAfterEndline
			case !isStr && tupleHasPrefix(key, "@"):
				return "", fmt.Errorf("A CSS @ rule must be a string, not a %T: %v", key, key)
			case !isStr && tupleHasPrefix(key, "%"):
				return "", fmt.Errorf("An extend must be a string, not a %T: %v", key, key)
			default:
				subLevel := nextLevel
				if !containsProperties(v) {
					if conf.IndentChildren {
						subLevel = level
					} else {
						subLevel = noIndentMinLevel
					}
				}
				sub, err := renderDoc(composeSelector(selector, key), v, conf, subLevel, forceIndent, noIndentMinLevel, table)
				if err != nil {
					return "", err
				}
				result += sub
			}

		case *ExtendSpec:
			child := composeSelector(selector, key)
			for _, ext := range v.Extends {
				if err := useExtend(child, ext); err != nil {
					return "", err
				}
			}
			own := v.CSS
			if own == nil {
				own = Dict{}
			}
			stack = append([]Entry{{Key: key, Value: own}}, stack...)

		default:
			keyStr, isStr := dictKeyString(key)
			if _, isQuantity := key.(Quantity); !isStr || isQuantity {
				return "", fmt.Errorf("A CSS property must be a string, not a %T: %v", key, key)
			}
			if strings.HasPrefix(keyStr, "%") {
				return "", fmt.Errorf("A CSS property cannot start with %%: %s", keyStr)
			}

			if strings.HasPrefix(keyStr, commentPrefix) {
				if conf.DisplayComments {
					lines := strings.Split(stringify(value), "\n")
					for i, line := range lines {
						text := strings.TrimSpace(line)
						if i == 0 {
							text = "/* " + text
						} else {
							text = "   " + text
						}
						if i == len(lines)-1 {
							text += " */"
						}
						comments = append(comments, declaration{key: rawBlockKey, value: text, hasValue: true})
					}
				}
				continue
			}

			// comments attach to the next entry, raw blocks included
			if len(comments) > 0 {
				declarations = append(declarations, comments...)
				comments = comments[:0]
			}

			if strings.HasPrefix(keyStr, rawPrefix) {
				flush(true)
				var contents []string
				switch t := value.(type) {
				case string:
					contents = []string{t}
				case Var:
					contents = []string{string(t)}
				case []string:
					contents = t
				case List:
					for _, c := range t {
						contents = append(contents, stringify(c))
					}
				case Tuple:
					for _, c := range t {
						contents = append(contents, stringify(c))
					}
				default:
					contents = []string{stringify(value)}
				}
				for _, content := range contents {
					for _, line := range strings.Split(content, "\n") {
						declarations = append(declarations, declaration{key: rawBlockKey, value: strings.TrimSpace(line), hasValue: true})
					}
				}
				c := conf
				c.DeclIncr = 1
				result += renderSelector(rawBlockKey, declarations, c, renderLevel, "")
				declarations = declarations[:0]
				continue
			}

			if value == nil {
				declarations = append(declarations, declaration{key: keyStr})
				continue
			}

			values := []any{value}
			if o, ok := value.(*OverrideSpec); ok {
				values = o.Declarations
			}
			for _, one := range values {
				var text string
				switch t := one.(type) {
				case Tuple:
					text = string(Join(t...))
				case List:
					text = string(Many(t...))
				default:
					text = stringify(one)
				}
				declarations = append(declarations, declaration{key: keyStr, value: text, hasValue: true})
			}
		}
	}

	flush(true)

	// resolve the placeholders emitted by this pass: each extend renders
	// once, in front of its first user, addressing every selector that
	// used it.
	var expandSelectors func(sels []string) []string
	expandSelectors = func(sels []string) []string {
		var out []string
		for _, s := range sels {
			if !strings.HasPrefix(s, "%") {
				out = append(out, s)
				continue
			}
			if rec, ok := table.m[s]; ok {
				out = append(out, expandSelectors(*rec.selectors)...)
			}
		}
		return out
	}

	for _, h := range newExtends {
		rec := table.m[h]
		delete(table.m, h)
		if rec != nil && rec.name != "" {
			delete(table.m, rec.name)
		}
		rendered := ""
		if rec != nil && !isEmptyDoc(rec.css) && len(*rec.selectors) > 0 {
			sels := dedupe(expandSelectors(*rec.selectors))
			if len(sels) > 0 {
				sub, err := renderDoc(strings.Join(sels, ", "), rec.css, conf, nextLevel, forceIndent, noIndentMinLevel, table)
				if err != nil {
					return "", err
				}
				rendered = sub
			}
		}
		placeholder := "<extend:" + h + ">"
		result = strings.Replace(result, placeholder, rendered, 1)
		result = strings.ReplaceAll(result, placeholder, "")
	}

	return result, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
