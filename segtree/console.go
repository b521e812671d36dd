package segtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors used by Fprint to tell node kinds apart.
type Palette struct {
	Inner   *color.Color
	Leaf    *color.Color
	Padding *color.Color
}

// DefaultPalette is the palette used if Fprint is called without one.
func DefaultPalette() *Palette {
	return &Palette{
		Inner:   color.New(color.FgBlue),
		Leaf:    color.New(color.FgRed),
		Padding: color.New(color.Faint),
	}
}

// Fprint writes the nodes of a tree to w, one level per line, starting with
// the root (for debugging purposes). If w is a terminal, long levels are
// wrapped to its width, otherwise to 65 columns. label renders node values;
// if it is nil values are rendered with fmt's %v verb.
func (t *Tree[M]) Fprint(w io.Writer, label func(M) string, palette *Palette) error {
	if t == nil {
		return nil
	}
	if label == nil {
		label = func(v M) string { return fmt.Sprintf("%v", v) }
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	linewidth := lineWidth(w)
	first := t.leaves - 1
	for level, lo := 0, 0; lo < len(t.nodes); level, lo = level+1, 2*lo+1 {
		prefix := fmt.Sprintf("%2d:", level)
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		col := len(prefix)
		for k := lo; k <= 2*lo && k < len(t.nodes); k++ {
			s := label(t.nodes[k])
			if col+len(s)+1 > linewidth && col > len(prefix) {
				if _, err := io.WriteString(w, "\n"+strings.Repeat(" ", len(prefix))); err != nil {
					return err
				}
				col = len(prefix)
			}
			c := palette.Inner
			if k >= first+t.n {
				c = palette.Padding
			} else if k >= first {
				c = palette.Leaf
			}
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
			if _, err := c.Fprint(w, s); err != nil {
				return err
			}
			col += len(s) + 1
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// lineWidth checks whether w is a terminal, and if so it derives the
// line width from the terminal's width.
func lineWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 65
	}
	width, _, err := term.GetSize(int(f.Fd()))
	switch {
	case err != nil:
		return 65
	case width > 65:
		return width - 10
	case width > 30:
		return width - 5
	case width > 10:
		return width
	}
	return 10
}
