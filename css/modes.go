package css

import (
	"strings"
	"sync"
)

// Mode bundles every formatting knob of the renderer. Modes are plain
// values: copy one and tweak fields to get a custom style.
type Mode struct {
	Name string

	// Indent is the indentation unit, repeated per nesting level.
	Indent string
	// Endline terminates logical output lines and is what gets stripped
	// from nested at-rule content before the closing brace.
	Endline string
	// SelAfterEndline follows a closed ruleset.
	SelAfterEndline string
	// DeclEndline separates declarations.
	DeclEndline string
	// IndentClosingIncr adjusts the indentation level of closing braces.
	IndentClosingIncr int
	// DeclIncr adjusts the indentation level of declarations relative to
	// their selector.
	DeclIncr int
	// Space follows property colons and precedes opening braces.
	Space string
	// OpeningEndline follows an opening brace.
	OpeningEndline string
	// ClosingEndline precedes a closing brace.
	ClosingEndline string
	// IndentChildren nests rulesets visually instead of flattening them.
	IndentChildren bool
	// ForceIndentRuleChildren is prepended to lines inside at-rules when
	// rulesets are flattened.
	ForceIndentRuleChildren string
	// LastSemi keeps the semicolon after the last declaration.
	LastSemi bool
	// DisplayComments emits comment entries instead of dropping them.
	DisplayComments bool
}

// The six standard rendering modes, from most compact to most indented.
var (
	Compressed = Mode{
		Name: "compressed",
	}
	Compact = Mode{
		Name:                    "compact",
		SelAfterEndline:         "\n",
		DeclEndline:             " ",
		Space:                   " ",
		ForceIndentRuleChildren: " ",
	}
	Normal = Mode{
		Name:            "normal",
		Indent:          "  ",
		Endline:         "\n",
		SelAfterEndline: "\n",
		DeclEndline:     "\n",
		DeclIncr:        1,
		Space:           " ",
		OpeningEndline:  "\n",
		ClosingEndline:  "\n",
		LastSemi:        true,
		DisplayComments: true,
	}
	Indented = Mode{
		Name:            "indent",
		Indent:          "    ",
		Endline:         "\n",
		SelAfterEndline: "\n\n",
		DeclEndline:     "\n",
		DeclIncr:        1,
		Space:           " ",
		OpeningEndline:  "\n",
		ClosingEndline:  "\n",
		IndentChildren:  true,
		LastSemi:        true,
		DisplayComments: true,
	}
	Indented2 = Mode{
		Name:              "indent2",
		Indent:            "    ",
		Endline:           "\n",
		SelAfterEndline:   "\n\n",
		DeclEndline:       "\n",
		IndentClosingIncr: 1,
		DeclIncr:          2,
		Space:             " ",
		OpeningEndline:    "\n",
		ClosingEndline:    "\n",
		IndentChildren:    true,
		LastSemi:          true,
		DisplayComments:   true,
	}
	Indented3 = Mode{
		Name:              "indent3",
		Indent:            "    ",
		Endline:           "\n",
		SelAfterEndline:   "\n\n",
		DeclEndline:       "\n",
		IndentClosingIncr: -100,
		DeclIncr:          1,
		Space:             " ",
		OpeningEndline:    "\n",
		ClosingEndline:    " ",
		IndentChildren:    true,
		DisplayComments:   true,
	}
)

// Modes lists the standard modes in order.
var Modes = []Mode{Compressed, Compact, Normal, Indented, Indented2, Indented3}

// ModeByName finds a standard mode by its (case insensitive) name.
func ModeByName(name string) (Mode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Modes {
		if m.Name == name {
			return m, true
		}
	}
	return Mode{}, false
}

var (
	defaultModeMu sync.RWMutex
	defaultMode   = Normal
)

// DefaultMode returns the process-wide mode used when Render is called
// without an explicit one.
func DefaultMode() Mode {
	defaultModeMu.RLock()
	defer defaultModeMu.RUnlock()
	return defaultMode
}

// SetDefaultMode replaces the process-wide default mode.
func SetDefaultMode(m Mode) {
	defaultModeMu.Lock()
	defaultMode = m
	defaultModeMu.Unlock()
}

// OverrideDefaultMode replaces the default mode and returns a function
// restoring the previous one, for scoped overrides:
//
//	defer css.OverrideDefaultMode(css.Compressed)()
func OverrideDefaultMode(m Mode) func() {
	defaultModeMu.Lock()
	prev := defaultMode
	defaultMode = m
	defaultModeMu.Unlock()
	return func() { SetDefaultMode(prev) }
}
