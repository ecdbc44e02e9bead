package wavl

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Real nodes are labelled with key, rank and subtree
// size, external leaves are drawn as small black circles.
func ToDot(t *Tree, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	nilid := 0
	var walk func(r ref)
	walk = func(r ref) {
		n := &t.nodes[r]
		label := fmt.Sprintf("%d\\nr=%d s=%d", n.key, n.rank, n.size)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", r, label, nodeDotStyles(t.diff(r)))
		for _, c := range [2]ref{n.left, n.right} {
			if c == ext {
				nilid++
				fmt.Fprintf(&nodelist, "\t\"x%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"x%d\";\n", r, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", r, c)
			walk(c)
		}
	}
	if !t.IsEmpty() {
		walk(t.root)
	}
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	if err != nil {
		tracer().Errorf("wavl DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,shape=circle,fixedsize=true,width=.1]"
}

func nodeDotStyles(d rankDiff) string {
	s := ",style=filled,shape=circle"
	switch {
	case !d.valid():
		s += ",color=black,fillcolor=\"#ff6600\""
	case d.l == 2 && d.r == 2:
		s += ",color=black,fillcolor=\"#88BBFF\""
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
