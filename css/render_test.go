package css_test

import (
	"strings"
	"testing"

	"mixt/css"
)

func TestExplicitJoin(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "margin", Value: css.Join("1px", "2px", "3px", "4px")},
	}}}
	want := ".foo {\n  margin: 1px 2px 3px 4px;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImplicitJoin(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "margin", Value: css.Tuple{"1px", "2px", "3px", "4px"}},
	}}}
	want := ".foo {\n  margin: 1px 2px 3px 4px;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExplicitMany(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "font-family", Value: css.Many("Gill", "Helvetica", "sans-serif")},
	}}}
	want := ".foo {\n  font-family: Gill, Helvetica, sans-serif;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImplicitMany(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "font-family", Value: css.List{"Gill", "Helvetica", "sans-serif"}},
	}}}
	want := ".foo {\n  font-family: Gill, Helvetica, sans-serif;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImplicitManyAndJoin(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "text-shadow", Value: css.List{
			css.Tuple{"1px", "1px", "2px", "red"},
			css.Tuple{0, 0, "1em", "blue"},
			css.Tuple{0, 0, "0.2em", "blue"},
		}},
	}}}
	want := ".foo {\n  text-shadow: 1px 1px 2px red, 0 0 1em blue, 0 0 0.2em blue;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOverride(t *testing.T) {
	vs := css.Vars("webkit moz ms o linear gradient")
	webkit, moz, ms, o, linear, gradient := vs[0], vs[1], vs[2], vs[3], vs[4], vs[5]
	grad := func(prefix css.Var) css.Var {
		return prefix.Dash(gradient).Call("left", "blue", "red", "blue")
	}
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "background", Value: css.Override(
			webkit.Neg().Dash(linear.Dash(gradient)).Call("left", "blue", "red", "blue"),
			moz.Neg().Dash(linear.Dash(gradient)).Call("left", "blue", "red", "blue"),
			ms.Neg().Dash(linear.Dash(gradient)).Call("left", "blue", "red", "blue"),
			o.Neg().Dash(linear.Dash(gradient)).Call("left", "blue", "red", "blue"),
			grad(linear),
		)},
	}}}
	want := `.foo {
  background: -webkit-linear-gradient(left, blue, red, blue);
  background: -moz-linear-gradient(left, blue, red, blue);
  background: -ms-linear-gradient(left, blue, red, blue);
  background: -o-linear-gradient(left, blue, red, blue);
  background: linear-gradient(left, blue, red, blue);
}
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestNestedSelectors(t *testing.T) {
	tests := []struct {
		name string
		doc  css.Dict
		want string
	}{
		{
			name: "explicit ampersand",
			doc: css.Dict{{Key: ".foo", Value: css.Dict{
				{Key: "padding", Value: "1px"},
				{Key: "& .bar", Value: css.Dict{{Key: "padding", Value: "none"}}},
			}}},
			want: ".foo {\n  padding: 1px;\n}\n.foo .bar {\n  padding: none;\n}\n",
		},
		{
			name: "implicit descendant",
			doc: css.Dict{{Key: ".foo", Value: css.Dict{
				{Key: "padding", Value: "1px"},
				{Key: ".bar", Value: css.Dict{{Key: "padding", Value: "none"}}},
			}}},
			want: ".foo {\n  padding: 1px;\n}\n.foo .bar {\n  padding: none;\n}\n",
		},
		{
			name: "ampersand in other positions",
			doc: css.Dict{{Key: ".foo", Value: css.Dict{
				{Key: "padding", Value: "1px"},
				{Key: ".bar &", Value: css.Dict{{Key: "padding", Value: "none"}}},
				{Key: "&-bar", Value: css.Dict{{Key: "padding", Value: "2px"}}},
			}}},
			want: ".foo {\n  padding: 1px;\n}\n.bar .foo {\n  padding: none;\n}\n.foo-bar {\n  padding: 2px;\n}\n",
		},
		{
			name: "ampersand repeated",
			doc: css.Dict{{Key: ".foo", Value: css.Dict{
				{Key: "padding", Value: "1px"},
				{Key: "&:hover, &:focus", Value: css.Dict{{Key: "padding", Value: "none"}}},
			}}},
			want: ".foo {\n  padding: 1px;\n}\n.foo:hover, .foo:focus {\n  padding: none;\n}\n",
		},
		{
			name: "implicit ampersand with several selectors",
			doc: css.Dict{{Key: ".foo", Value: css.Dict{
				{Key: "padding", Value: "1px"},
				{Key: ".bar, .baz", Value: css.Dict{{Key: "padding", Value: "none"}}},
			}}},
			want: ".foo {\n  padding: 1px;\n}\n.foo .bar, .foo .baz {\n  padding: none;\n}\n",
		},
		{
			name: "cartesian product of comma lists",
			doc: css.Dict{{Key: "p, div", Value: css.Dict{
				{Key: "em, strong, &:after", Value: css.Dict{{Key: "color", Value: "red"}}},
			}}},
			want: "p em, p strong, p:after, div em, div strong, div:after {\n  color: red;\n}\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustRender(t, tc.doc, css.Normal); got != tc.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestManySelectorForms(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "padding", Value: "1px"},
		{Key: css.Tuple{".bar", ".baz"}, Value: css.Dict{
			{Key: "padding", Value: "none"},
			{Key: "[data-foo], [data-bar]", Value: css.Dict{
				{Key: css.Tuple{"&:hover", "&:focus"}, Value: css.Dict{
					{Key: "padding", Value: "2px"},
				}},
			}},
		}},
	}}}
	want := `.foo {
  padding: 1px;
}
.foo .bar, .foo .baz {
  padding: none;
}
.foo .bar [data-foo]:hover, .foo .bar [data-foo]:focus, .foo .bar [data-bar]:hover, .foo .bar [data-bar]:focus, .foo .baz [data-foo]:hover, .foo .baz [data-foo]:focus, .foo .baz [data-bar]:hover, .foo .baz [data-bar]:focus {
  padding: 2px;
}
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTrailingSpaceRepeatsSelector(t *testing.T) {
	doc := css.Dict{
		{Key: ".foo", Value: css.Dict{{Key: "padding", Value: "1px"}}},
		{Key: ".bar .foo", Value: css.Dict{{Key: "padding", Value: "2px"}}},
		{Key: ".foo ", Value: css.Dict{{Key: "padding", Value: "3px"}}},
	}
	want := ".foo {\n  padding: 1px;\n}\n.bar .foo {\n  padding: 2px;\n}\n.foo {\n  padding: 3px;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestAtRuleNesting(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: "padding", Value: "1px"},
		{Key: css.Media.Rule(css.Dict{{Key: "max-width", Value: "1280px"}}), Value: css.Dict{
			{Key: "padding", Value: "2px"},
			{Key: "", Value: css.Dict{{Key: "padding", Value: "2.1px"}}},
			{Key: "&", Value: css.Dict{{Key: "padding", Value: "2.2px"}}},
			{Key: ".bar", Value: css.Dict{{Key: "padding", Value: "3px"}}},
		}},
		{Key: ".bar", Value: css.Dict{
			{Key: "padding", Value: "4px"},
			{Key: css.Media.Rule(css.Dict{{Key: "min-width", Value: "640px"}}), Value: css.Dict{
				{Key: "padding", Value: "5px"},
				{Key: css.Var(""), Value: css.Dict{{Key: "padding", Value: "5.1px"}}},
			}},
		}},
	}}}
	want := `.foo {
  padding: 1px;
}
@media (max-width: 1280px) {
  .foo {
    padding: 2px;
  }
  .foo {
    padding: 2.1px;
  }
  .foo {
    padding: 2.2px;
  }
  .foo .bar {
    padding: 3px;
  }
}
.foo .bar {
  padding: 4px;
}
@media (min-width: 640px) {
  .foo .bar {
    padding: 5px;
  }
  .foo .bar {
    padding: 5.1px;
  }
}
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestAtRuleAtFirstLevel(t *testing.T) {
	doc := css.Dict{{Key: "@media", Value: css.Dict{
		{Key: "should", Value: "work"},
		{Key: "should-work", Value: "too"},
		{Key: ".foo", Value: css.Dict{{Key: "padding", Value: "1px"}}},
	}}}
	want := `@media {
  should: work;
  should-work: too;
  .foo {
    padding: 1px;
  }
}
`
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDeclarationWithoutValue(t *testing.T) {
	doc := css.Dict{
		{Key: "@charset 'UTF-8'", Value: nil},
		{Key: ".bar", Value: css.Dict{{Key: "padding", Value: "1px"}}},
	}
	want := "@charset 'UTF-8';\n.bar {\n  padding: 1px;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestComments(t *testing.T) {
	doc := css.Dict{{Key: ".foo", Value: css.Dict{
		{Key: css.CommentKey(), Value: "a comment"},
		{Key: "color", Value: "blue"},
		{Key: css.CommentKey(), Value: "first line\nsecond line"},
		{Key: "background", Value: "green"},
	}}}

	got := mustRender(t, doc, css.Normal)
	for _, frag := range []string{"/* a comment */", "/* first line", "   second line */", "color: blue;", "background: green;"} {
		if !strings.Contains(got, frag) {
			t.Errorf("output missing %q:\n%s", frag, got)
		}
	}

	// compressed mode drops comments entirely
	got = mustRender(t, doc, css.Compressed)
	want := ".foo{color:blue;background:green}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRawBlock(t *testing.T) {
	doc := css.Dict{
		{Key: css.RawKey(), Value: ".foo-bar {color: black}"},
		{Key: ".foo", Value: css.Dict{{Key: "color", Value: "blue"}}},
	}
	want := ".foo-bar {color: black}\n.foo {\n  color: blue;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCommentBeforeRawBlock(t *testing.T) {
	// a pending comment flushes inside the current selector before the
	// raw content interrupts it
	doc := css.Dict{{Key: ".a", Value: css.Dict{
		{Key: css.CommentKey(), Value: "c"},
		{Key: css.RawKey(), Value: "x {y: z}"},
		{Key: "color", Value: "red"},
	}}}
	want := ".a {\n  /* c */\n}\nx {y: z}\n.a {\n  color: red;\n}\n"
	if got := mustRender(t, doc, css.Normal); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  css.Dict
		want string
	}{
		{
			name: "property starting with percent",
			doc:  css.Dict{{Key: ".foo", Value: css.Dict{{Key: "%margin", Value: "1px"}}}},
			want: "A CSS property cannot start with %: %margin",
		},
		{
			name: "non-string property key",
			doc:  css.Dict{{Key: ".foo", Value: css.Dict{{Key: 12, Value: "1px"}}}},
			want: "A CSS property must be a string",
		},
		{
			name: "non-string at-rule key",
			doc:  css.Dict{{Key: css.Tuple{"@media", "@media print"}, Value: css.Dict{}}},
			want: "A CSS @ rule must be a string",
		},
		{
			name: "non-string extend key",
			doc:  css.Dict{{Key: css.Tuple{"%foo", "%bar"}, Value: css.Dict{}}},
			want: "An extend must be a string",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := css.Render(tc.doc, css.Normal)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}
