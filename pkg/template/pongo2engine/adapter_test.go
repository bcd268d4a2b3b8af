package pongo2engine_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/neil-tan/utensor-cgen/pkg/template/pongo2engine"
	"github.com/neil-tan/utensor-cgen/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("macro", map[string]any{"name": "TENSOR_A", "index": 42}, w)
	})

	// Integer context values must render as integers, not a float encoding.
	want := "#define TENSOR_A 42\n"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_RenderTemplate_Conditional(t *testing.T) {
	engine := newEngine(t)

	cases := []struct {
		count int
		want  string
	}{
		{count: 256, want: "uchar\n"},
		{count: 257, want: "ushort\n"},
	}
	for _, tc := range cases {
		got, err := engine.RenderTemplate("width", map[string]any{"count": tc.count})
		if err != nil {
			t.Fatalf("render width count=%d: %v", tc.count, err)
		}
		if got != tc.want {
			t.Fatalf("width count=%d\nwant: %q\n got: %q", tc.count, tc.want, got)
		}
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("guard={{ guard }}", map[string]any{"guard": "MY_GUARD"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if want := "guard=MY_GUARD"; got != want {
		t.Fatalf("render string mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_RenderDispatch(t *testing.T) {
	engine := newEngine(t)

	// Inline markup renders as a string template, plain names resolve files.
	inline, err := engine.Render("{{ value }}", map[string]any{"value": 7})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "7" {
		t.Fatalf("expected inline render, got %q", inline)
	}

	fromFile, err := engine.Render("macro", map[string]any{"name": "TENSOR_B", "index": 1})
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if want := "#define TENSOR_B 1\n"; fromFile != want {
		t.Fatalf("expected file render\nwant: %q\n got: %q", want, fromFile)
	}
}

func TestEngine_Globals(t *testing.T) {
	engine := newEngine(t)
	if err := engine.Globals(map[string]any{"project": "utensor"}); err != nil {
		t.Fatalf("globals: %v", err)
	}

	got, err := engine.RenderString("{{ project }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "utensor" {
		t.Fatalf("expected global value, got %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)

	err := engine.RegisterFilter("upperhint", func(input any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(input)), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderString("{{ word|upperhint }}", map[string]any{"word": "uchar"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "UCHAR" {
		t.Fatalf("expected filtered value, got %q", got)
	}

	// Filter names are global, so re-registration must fail.
	if err := engine.RegisterFilter("upperhint", func(input any, _ any) (any, error) {
		return input, nil
	}); err == nil {
		t.Fatal("expected duplicate filter registration to fail")
	}
}

func TestEngine_UnsupportedContext(t *testing.T) {
	engine := newEngine(t)

	if _, err := engine.RenderString("{{ x }}", 42); err == nil {
		t.Fatal("expected unsupported context type error")
	}
}

func TestEngine_RequiresLoader(t *testing.T) {
	if _, err := pongo2engine.New(); err == nil {
		t.Fatal("expected construction without loaders to fail")
	}
}

func newEngine(t *testing.T) *pongo2engine.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := pongo2engine.New(pongo2engine.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
