package wavl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()
	//
	tree := buildTree(t, 10, 20, 30)
	var buf bytes.Buffer
	if err := ToDot(tree, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	if n := strings.Count(dot, "->"); n != 6 {
		t.Errorf("expected 6 edges, got %d", n)
	}
	if !strings.Contains(dot, `label="20\nr=1 s=3"`) {
		t.Errorf("expected root label for key 20")
	}
	buf.Reset()
	if err := ToDot(&Tree{}, &buf); err != nil || strings.Contains(buf.String(), "->") {
		t.Errorf("expected DOT without edges for empty tree, got %q", buf.String())
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()
	//
	tree := buildTree(t, 10, 20)
	var buf bytes.Buffer
	if err := Dump(tree, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	if strings.Contains(out, "\x1b[") {
		t.Errorf("dump to non-terminal contains escape sequences")
	}
	expected := "10 r=1 s=2 (2,1)\n├─ ·\n└─ 20 r=0 s=1 (1,1)\n"
	if out != expected {
		t.Errorf("expected dump\n%s\ngot\n%s", expected, out)
	}
	if s := (&Tree{}).String(); s != "(empty)\n" {
		t.Errorf("unexpected dump of empty tree: %q", s)
	}
}
