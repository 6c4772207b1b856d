package config

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"mixt/css"
)

// Specification of requested stylesheet formatting preset.
type RenderMode int

const (
	RenderModeCompressed RenderMode = iota
	RenderModeCompact
	RenderModeNormal
	RenderModeIndent
	RenderModeIndent2
	RenderModeIndent3
)

// names follow css.Modes order
var renderModeNames = []string{"compressed", "compact", "normal", "indent", "indent2", "indent3"}

func (m RenderMode) IsValid() bool {
	return m >= 0 && int(m) < len(renderModeNames)
}

func (m RenderMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return renderModeNames[m]
}

// Mode returns the formatting preset for the stylesheet renderer.
func (m RenderMode) Mode() css.Mode {
	if !m.IsValid() {
		// this should never happen
		panic("unsupported rendering mode requested")
	}
	return css.Modes[m]
}

func ParseRenderMode(name string) (RenderMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range renderModeNames {
		if n == name {
			return RenderMode(i), nil
		}
	}
	return RenderMode(0), fmt.Errorf("%q is not a valid rendering mode, try one of [%s]", name, strings.Join(renderModeNames, ", "))
}

func MustParseRenderMode(name string) RenderMode {
	m, err := ParseRenderMode(name)
	if err != nil {
		panic(err)
	}
	return m
}

func RenderModeNames() []string {
	return append([]string(nil), renderModeNames...)
}

func (m RenderMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid rendering mode: %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *RenderMode) UnmarshalText(text []byte) error {
	v, err := ParseRenderMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m RenderMode) MarshalYAML() (any, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid rendering mode: %d", int(m))
	}
	return m.String(), nil
}

func (m *RenderMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseRenderMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
