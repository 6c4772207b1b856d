package css

import "strings"

// AtRule builds "@name ..." headers. The zero separator means " or ", the
// CSS media query default; a different separator also rewrites " or "
// sequences produced by Var.Or, so `screen | landscape` inside an @import
// becomes a comma list.
type AtRule struct {
	Name      string
	IfEmpty   any
	Separator string
	QuoteArgs bool
}

func (r AtRule) sep() string {
	if r.Separator == "" {
		return " or "
	}
	return r.Separator
}

func (r AtRule) format(arg any) string {
	if r.QuoteArgs {
		return string(Str(arg))
	}
	return string(toVar(arg))
}

func emptyArg(arg any) bool {
	switch t := arg.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case Var:
		return t == ""
	case Dict:
		return len(t) == 0
	case Set:
		return len(t) == 0
	case Tuple:
		return len(t) == 0
	case List:
		return len(t) == 0
	}
	return false
}

// Rule renders the at-rule header with the given arguments. Empty
// arguments are skipped; with no argument left the IfEmpty default is
// used. @import keeps its first argument (the location) separate from the
// media list that follows it.
func (r AtRule) Rule(args ...any) Var {
	sep := r.sep()
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if emptyArg(arg) {
			continue
		}
		parts = append(parts, r.format(arg))
	}
	var joined string
	if len(parts) > 0 {
		if r.Name == "import" && len(parts) > 1 {
			joined = parts[0] + " " + strings.Join(parts[1:], sep)
		} else {
			joined = strings.Join(parts, sep)
		}
		if sep != " or " {
			joined = strings.ReplaceAll(joined, " or ", sep)
		}
	} else if !emptyArg(r.IfEmpty) {
		joined = r.format(r.IfEmpty)
	}
	if joined == "" {
		return Var("@" + r.Name)
	}
	return Var("@" + r.Name + " " + joined)
}

// The standard at-rules.
var (
	Charset           = AtRule{Name: "charset", IfEmpty: "UTF-8", QuoteArgs: true}
	Import            = AtRule{Name: "import", Separator: ", "}
	Namespace         = AtRule{Name: "namespace", Separator: " "}
	Media             = AtRule{Name: "media", IfEmpty: "all", Separator: ", "}
	Supports          = AtRule{Name: "supports"}
	Document          = AtRule{Name: "document", Separator: ", "}
	Page              = AtRule{Name: "page"}
	FontFace          = AtRule{Name: "font-face"}
	Keyframes         = AtRule{Name: "keyframes"}
	Viewport          = AtRule{Name: "viewport"}
	CounterStyle      = AtRule{Name: "counter-style"}
	FontFeatureValues = AtRule{Name: "font-feature-values"}
	Swash             = AtRule{Name: "swash"}
	Annotation        = AtRule{Name: "annotation"}
	Ornaments         = AtRule{Name: "ornaments"}
	Stylistic         = AtRule{Name: "stylistic"}
	Styleset          = AtRule{Name: "styleset"}
	CharacterVariant  = AtRule{Name: "character-variant"}
)

// AtRules lists the standard at-rules in declaration order.
var AtRules = []AtRule{
	Charset, Import, Namespace, Media, Supports, Document, Page, FontFace,
	Keyframes, Viewport, CounterStyle, FontFeatureValues, Swash, Annotation,
	Ornaments, Stylistic, Styleset, CharacterVariant,
}
