package console

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

// traceTo redirects tracing into the test log. The returned teardown
// reinstalls a Go-log tracer restricted to errors.
func traceTo(t *testing.T, level tracing.TraceLevel) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(level)
	return func() {
		teardown()
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

func scenarioTree(t *testing.T) *btree.Tree[int] {
	t.Helper()
	tree, err := btree.New[int](btree.Config{Order: 3})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(k)
	}
	return tree
}

func TestFprintMatchesDumpWithoutColors(t *testing.T) {
	defer traceTo(t, tracing.LevelDebug)()
	//
	tree := scenarioTree(t)
	var out, dump strings.Builder
	err := Fprint(&out, tree, &Config{
		LineWidth: 80,
		Context:   uax11.LatinContext,
		Palette:   &Palette{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.Dump(&dump); err != nil {
		t.Fatal(err)
	}
	if out.String() != dump.String() {
		t.Errorf("expected uncolored rendering to match dump:\n%s\nvs.\n%s", out.String(), dump.String())
	}
}

func TestFprintWrapsLongNodes(t *testing.T) {
	tree := scenarioTree(t)
	var out strings.Builder
	err := Fprint(&out, tree, &Config{
		LineWidth: 12,
		Context:   uax11.LatinContext,
		Palette:   &Palette{},
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := "> 10\n|   x 5 6 7\n|   x 12 17\n|     20 30\n"
	if out.String() != expected {
		t.Errorf("unexpected wrapped rendering:\n%q\nexpected:\n%q", out.String(), expected)
	}
}

func TestFprintColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()
	//
	tree := scenarioTree(t)
	var out strings.Builder
	if err := Fprint(&out, tree, &Config{LineWidth: 80}); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out.String())
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected escape sequences in colored rendering")
	}
}

func TestFprintEmptyTree(t *testing.T) {
	tree := btree.MustNew[string](btree.Config{Order: 2})
	var out strings.Builder
	if err := Fprint(&out, tree, &Config{}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "tree is empty\n" {
		t.Errorf("unexpected rendering of empty tree: %q", out.String())
	}
}

func TestWidthOfWideKeys(t *testing.T) {
	setupGraphemes.Do(graphemeSetup)
	if w := width("世界", uax11.LatinContext); w != 4 {
		t.Errorf("expected width 4 for two wide characters, got %d", w)
	}
	if w := width("abc", uax11.LatinContext); w != 3 {
		t.Errorf("expected width 3, got %d", w)
	}
}
