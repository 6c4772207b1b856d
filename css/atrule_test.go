package css_test

import (
	"testing"

	"mixt/css"
)

func TestSupports(t *testing.T) {
	underscore := css.Var("")
	tests := []struct {
		got  css.Var
		want css.Var
	}{
		{
			css.Supports.Rule(css.Dict{{Key: "transform-origin", Value: "5% 5%"}}),
			"@supports (transform-origin: 5% 5%)",
		},
		{
			css.Supports.Rule(css.Not(css.Dict{{Key: "transform-origin", Value: "10em 10em 10em"}})),
			"@supports not (transform-origin: 10em 10em 10em)",
		},
		{
			css.Supports.Rule(underscore.
				And(css.Dict{{Key: "display", Value: "grid"}}).
				And(css.Not(css.Dict{{Key: "display", Value: "inline-grid"}}))),
			"@supports (display: grid) and not (display: inline-grid)",
		},
		{
			css.Supports.Rule(underscore.
				And(css.Dict{{Key: "display", Value: "table-cell"}}).
				And(css.Dict{{Key: "display", Value: "list-item"}}).
				And(css.Dict{{Key: "display", Value: "run-in"}})),
			"@supports (display: table-cell) and (display: list-item) and (display: run-in)",
		},
		{
			css.Supports.Rule(underscore.
				Or(css.Dict{{Key: "transform-style", Value: "preserve"}}).
				Or(css.Dict{{Key: "-moz-transform-style", Value: "preserve"}})),
			"@supports (transform-style: preserve) or (-moz-transform-style: preserve)",
		},
		{
			css.Supports.Rule(
				css.Dict{{Key: "transform-style", Value: "preserve"}},
				css.Dict{{Key: "-moz-transform-style", Value: "preserve"}}),
			"@supports (transform-style: preserve) or (-moz-transform-style: preserve)",
		},
		{
			css.Supports.Rule(css.Not(
				css.Dict{{Key: "text-align-last", Value: "justify"}},
				css.Dict{{Key: "-moz-text-align-last", Value: "justify"}})),
			"@supports not ((text-align-last: justify) or (-moz-text-align-last: justify))",
		},
		{
			css.Supports.Rule(css.Dict{{Key: css.Var("foo").Neg().Neg(), Value: "green"}}),
			"@supports (--foo: green)",
		},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestDocument(t *testing.T) {
	url := css.Var("url")
	prefix := css.Var("prefix")
	domain := css.Var("domain")
	regexp := css.Var("regexp")

	got := css.Document.Rule(url.Call(css.Str("https://www.example.com/")))
	if got != "@document url('https://www.example.com/')" {
		t.Errorf("got %q", got)
	}

	got = css.Document.Rule(
		url.Call("http://www.w3.org/"),
		url.Dash(prefix).Call("http://www.w3.org/Style/"),
		domain.Call("mozilla.org"),
		regexp.Call(css.Str("https:.*")),
	)
	want := css.Var("@document url(http://www.w3.org/), url-prefix(http://www.w3.org/Style/), domain(mozilla.org), regexp('https:.*')")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPage(t *testing.T) {
	if got := css.Page.Rule(); got != "@page" {
		t.Errorf("got %q", got)
	}
	if got := css.Page.Rule(":first"); got != "@page :first" {
		t.Errorf("got %q", got)
	}
}

func TestFontFaceBlock(t *testing.T) {
	if got := css.FontFace.Rule(); got != "@font-face" {
		t.Errorf("got %q", got)
	}

	url := css.Var("url")
	format := css.Var("format")
	doc := css.Dict{{Key: css.FontFace.Rule(), Value: css.Dict{
		{Key: "font-family", Value: css.Str("Open Sans")},
		{Key: "src", Value: css.List{
			css.Tuple{
				url.Call(css.Str("/fonts/OpenSans-Regular-webfont.woff2")),
				format.Call(css.Str("woff2")),
			},
			css.Tuple{
				url.Call(css.Str("/fonts/OpenSans-Regular-webfont.woff")),
				format.Call(css.Str("woff")),
			},
		}},
	}}}
	want := `@font-face {
  font-family: 'Open Sans';
  src: url('/fonts/OpenSans-Regular-webfont.woff2') format('woff2'), url('/fonts/OpenSans-Regular-webfont.woff') format('woff');
}
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestKeyframesBlock(t *testing.T) {
	if got := css.Keyframes.Rule("foo"); got != "@keyframes foo" {
		t.Errorf("got %q", got)
	}

	pc := css.Percent
	s := css.Unit("s")
	doc := css.Dict{
		{Key: css.Keyframes.Rule("slidein"), Value: css.Dict{
			{Key: "from", Value: css.Dict{
				{Key: "margin-left", Value: pc.Q(100)},
				{Key: "width", Value: pc.Q(300)},
			}},
			{Key: pc.Q(75), Value: css.Dict{
				{Key: "font-size", Value: pc.Q(300)},
				{Key: "margin-left", Value: pc.Q(25)},
				{Key: "width", Value: pc.Q(150)},
			}},
			{Key: "to", Value: css.Dict{
				{Key: "margin-left", Value: pc.Q(0)},
				{Key: "width", Value: pc.Q(100)},
			}},
		}},
		{Key: "p", Value: css.Dict{
			{Key: "animation-duration", Value: s.Q(3)},
			{Key: "animation-name", Value: "slidein"},
		}},
	}
	want := `@keyframes slidein {
  from {
    margin-left: 100%;
    width: 300%;
  }
  75% {
    font-size: 300%;
    margin-left: 25%;
    width: 150%;
  }
  to {
    margin-left: 0%;
    width: 100%;
  }
}
p {
  animation-duration: 3s;
  animation-name: slidein;
}
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestViewportBlock(t *testing.T) {
	if got := css.Viewport.Rule(); got != "@viewport" {
		t.Errorf("got %q", got)
	}
	doc := css.Dict{{Key: css.Viewport.Rule(), Value: css.Dict{
		{Key: "width", Value: "device-width"},
	}}}
	want := "@viewport {\n  width: device-width;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCounterStyleBlock(t *testing.T) {
	if got := css.CounterStyle.Rule("foo"); got != "@counter-style foo" {
		t.Errorf("got %q", got)
	}
	doc := css.Dict{{Key: css.CounterStyle.Rule("circled-alpha"), Value: css.Dict{
		{Key: "system", Value: "fixed"},
		{Key: "symbols", Value: "Ⓐ Ⓑ Ⓒ"},
		{Key: "suffix", Value: css.Str(" ")},
	}}}
	want := "@counter-style circled-alpha {\n  system: fixed;\n  symbols: Ⓐ Ⓑ Ⓒ;\n  suffix: ' ';\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFontFeatureValuesBlock(t *testing.T) {
	if got := css.FontFeatureValues.Rule("Font One"); got != "@font-feature-values Font One" {
		t.Errorf("got %q", got)
	}
	doc := css.Dict{{Key: css.FontFeatureValues.Rule("Font One"), Value: css.Dict{
		{Key: css.Styleset.Rule(), Value: css.Dict{
			{Key: "nice-style", Value: 12},
		}},
	}}}
	want := `@font-feature-values Font One {
  @styleset {
    nice-style: 12;
  }
}
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCharset(t *testing.T) {
	if got := css.Charset.Rule("UTF-8"); got != "@charset 'UTF-8'" {
		t.Errorf("got %q", got)
	}
	if got := css.Charset.Rule(); got != "@charset 'UTF-8'" {
		t.Errorf("default: %q", got)
	}
	if got := css.Charset.Rule("latin1"); got != "@charset 'latin1'" {
		t.Errorf("got %q", got)
	}
	doc := css.Dict{{Key: css.Charset.Rule("UTF-8"), Value: nil}}
	if got := mustRender(t, doc, css.Normal); got != "@charset 'UTF-8';\n" {
		t.Errorf("got %q", got)
	}
}

func TestImport(t *testing.T) {
	if got := css.Import.Rule(css.Str("custom.css")); got != "@import 'custom.css'" {
		t.Errorf("got %q", got)
	}

	url := css.Var("url")
	screen := css.Var("screen")
	doc := css.Dict{
		{Key: css.Import.Rule(css.Str("custom.css")), Value: nil},
		{Key: css.Import.Rule(url.Call("fineprint.css"), "print"), Value: nil},
		{Key: css.Import.Rule(url.Call("landscape.css"), screen.And(css.Dict{{Key: "orientation", Value: "landscape"}})), Value: nil},
		{Key: css.Import.Rule(url.Call("landscape.css"), screen.Or(css.Dict{{Key: "orientation", Value: "landscape"}})), Value: nil},
	}
	want := `@import 'custom.css';
@import url(fineprint.css) print;
@import url(landscape.css) screen and (orientation: landscape);
@import url(landscape.css) screen, (orientation: landscape);
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestNamespaceRule(t *testing.T) {
	if got := css.Namespace.Rule("http://www.w3.org/1999/xhtml"); got != "@namespace http://www.w3.org/1999/xhtml" {
		t.Errorf("got %q", got)
	}
	url := css.Var("url")
	doc := css.Dict{{Key: css.Namespace.Rule("svg", url.Call("http://www.w3.org/2000/svg")), Value: nil}}
	if got := mustRender(t, doc, css.Normal); got != "@namespace svg url(http://www.w3.org/2000/svg);\n" {
		t.Errorf("got %q", got)
	}
}
