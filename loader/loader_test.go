package loader_test

import (
	"strings"
	"testing"

	"mixt/css"
	"mixt/loader"
)

func TestLoadPreservesOrder(t *testing.T) {
	doc, err := loader.LoadString(`
".content":
  color: blue
  font-weight: bold
  background: green
  z-index: "1"
".baz":
  margin: 1px
`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := css.Render(doc, css.Compressed)
	if err != nil {
		t.Fatal(err)
	}
	want := ".content{color:blue;font-weight:bold;background:green;z-index:1}.baz{margin:1px}"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLoadNesting(t *testing.T) {
	doc, err := loader.LoadString(`
".foo":
  color: blue
  "&:hover":
    color: red
  ".bar &":
    color: green
`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := css.Render(doc, css.Compressed)
	if err != nil {
		t.Fatal(err)
	}
	want := ".foo{color:blue}.foo:hover{color:red}.bar .foo{color:green}"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLoadSequences(t *testing.T) {
	doc, err := loader.LoadString(`
".foo":
  font-family: [Gill, Helvetica, sans-serif]
  box-shadow:
    - [1px, 1px, 2px, red]
    - ["0", "0", 1em, blue]
`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := css.Render(doc, css.Compressed)
	if err != nil {
		t.Fatal(err)
	}
	want := ".foo{font-family:Gill, Helvetica, sans-serif;box-shadow:1px 1px 2px red, 0 0 1em blue}"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLoadValuelessAndAtRules(t *testing.T) {
	doc, err := loader.LoadString(`
"@charset 'UTF-8'":
"@media (max-width: 600px)":
  ".foo":
    display: none
`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := css.Render(doc, css.Normal)
	if err != nil {
		t.Fatal(err)
	}
	want := `@charset 'UTF-8';
@media (max-width: 600px) {
  .foo {
    display: none;
  }
}
`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLoadDuplicateKeys(t *testing.T) {
	doc, err := loader.LoadString(`
".foo":
  color: red
  color: blue
`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := css.Render(doc, css.Compressed)
	if err != nil {
		t.Fatal(err)
	}
	if out != ".foo{color:red;color:blue}" {
		t.Errorf("got %q", out)
	}
}

func TestLoadExtends(t *testing.T) {
	doc, err := loader.LoadString(`
"%box":
  margin: 1px
".foo": "%box"
".foo":
  color: red
".bar": "%box"
`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := css.Render(doc, css.Compressed)
	if err != nil {
		t.Fatal(err)
	}
	want := ".foo, .bar{margin:1px}.foo{color:red}"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestLoadMultipleDocuments(t *testing.T) {
	doc, err := loader.Load(strings.NewReader(`
".foo":
  color: red
---
".bar":
  color: blue
`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := css.Render(doc, css.Compressed)
	if err != nil {
		t.Fatal(err)
	}
	if out != ".foo{color:red}.bar{color:blue}" {
		t.Errorf("got %q", out)
	}
}

func TestLoadRejectsNonMapping(t *testing.T) {
	if _, err := loader.LoadString("- a\n- b\n"); err == nil {
		t.Error("sequence at top level should be rejected")
	}
	if _, err := loader.LoadString("just a scalar"); err == nil {
		t.Error("scalar at top level should be rejected")
	}
}
