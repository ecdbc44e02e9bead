package wavl

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// palette colours nodes by their rank differences.
type palette struct {
	valid, twoTwo, invalid, external *color.Color
}

func makePalette(colored bool) palette {
	p := palette{
		valid:    color.New(color.FgGreen),
		twoTwo:   color.New(color.FgBlue),
		invalid:  color.New(color.FgRed, color.Bold),
		external: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.valid, p.twoTwo, p.invalid, p.external} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forDiff(d rankDiff) *color.Color {
	switch {
	case !d.valid():
		return p.invalid
	case d.l == 2 && d.r == 2:
		return p.twoTwo
	}
	return p.valid
}

// isTerminal checks whether w writes to a terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Dump writes an indented listing of the tree to w (for debugging purposes),
// one line per node, showing key, rank, subtree size and rank differences.
// If w is a terminal, nodes are coloured: (2,2) nodes blue, invalid nodes red,
// all other nodes green.
//
//	20 r=2 s=4 (1,2)
//	├─ 10 r=1 s=2 (1,2)
//	│  ├─ 5 r=0 s=1 (1,1)
//	│  └─ ·
//	└─ 30 r=0 s=1 (1,1)
func Dump(t *Tree, w io.Writer) error {
	p := makePalette(isTerminal(w))
	if t.IsEmpty() {
		_, err := p.external.Fprintln(w, "(empty)")
		return err
	}
	var dump func(r ref, prefix, branch, indent string) error
	dump = func(r ref, prefix, branch, indent string) error {
		if _, err := io.WriteString(w, prefix+branch); err != nil {
			return err
		}
		if r == ext {
			_, err := p.external.Fprintln(w, "·")
			return err
		}
		n, d := &t.nodes[r], t.diff(r)
		if _, err := p.forDiff(d).Fprintf(w, "%d r=%d s=%d (%d,%d)\n", n.key, n.rank, n.size, d.l, d.r); err != nil {
			return err
		}
		if t.isLeaf(r) {
			return nil
		}
		if err := dump(n.left, prefix+indent, "├─ ", "│  "); err != nil {
			return err
		}
		return dump(n.right, prefix+indent, "└─ ", "   ")
	}
	err := dump(t.root, "", "", "")
	if err != nil {
		tracer().Errorf("wavl dump: %s", err.Error())
	}
	return err
}

// String returns the uncoloured dump of the tree.
func (t *Tree) String() string {
	var sb strings.Builder
	_ = Dump(t, &sb)
	return sb.String()
}
