package segtree

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders node values, if it is nil values
// are rendered with fmt's %v verb.
func (t *Tree[M]) ToDot(w io.Writer, label func(M) string) error {
	if t == nil {
		return nil
	}
	if label == nil {
		label = func(v M) string { return fmt.Sprintf("%v", v) }
	}
	nodelist, edgelist := "", ""
	first := t.leaves - 1
	for k, v := range t.nodes {
		if k >= first {
			pos := k - first
			styles := nodeDotStyles(true, pos >= t.n)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\\n@%d\" %s];\n", k, label(v), pos, styles)
			continue
		}
		styles := nodeDotStyles(false, false)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", k, label(v), styles)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", k, 2*k+1)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", k, 2*k+2)
	}
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist,
		edgelist,
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("segtree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func nodeDotStyles(isleaf bool, padding bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
		if padding {
			s += ",color=gray,fontcolor=gray"
		}
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
