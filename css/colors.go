package css

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// Color normalizes any CSS color notation (named, #hex, rgb()/hsl()
// functional) to its canonical hex form.
func Color(s string) (Var, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Var(c.HexString()), nil
}

// MustColor is Color panicking on invalid input, for package-level
// palettes built from literals.
func MustColor(s string) Var {
	v, err := Color(s)
	if err != nil {
		panic(err)
	}
	return v
}
