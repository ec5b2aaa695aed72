package console

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bstree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing.
type Config struct {
	LineWidth int            // maximum display width of a line, in fixed width ‘en’s
	Colored   bool           // use the printer's palette
	Context   *uax11.Context // context for measuring key labels; may be nil
}

// Palette holds the colors used to visualize nodes.
type Palette struct {
	Inner *color.Color // keys of inner nodes
	Leaf  *color.Color // keys of leaves
	Edges *color.Color // connector lines
}

// Printer is a type for outputting trees to a console with a fixed width font.
type Printer struct {
	config  *Config
	palette Palette
}

// NewPrinter creates a new printer.
//
// The printer keeps a copy of config. If config is nil, ConfigFromTerminal
// is used. If palette is nil, a default palette is used. A palette with missing entries will print the respective
// parts without color.
func NewPrinter(config *Config, palette *Palette) *Printer {
	if config == nil {
		config = ConfigFromTerminal()
	}
	c := *config
	p := &Printer{config: &c}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if palette == nil {
		p.palette = makeDefaultPalette()
	} else {
		p.palette = *palette
	}
	return p
}

func makeDefaultPalette() Palette {
	return Palette{
		Inner: color.New(color.FgBlue, color.Bold),
		Leaf:  color.New(color.FgGreen),
		Edges: color.New(color.FgHiBlack),
	}
}

var setupGraphemes sync.Once

// Print outputs a tree to stdout, using a configuration derived from the
// current terminal.
func Print[K cmp.Ordered](root *bstree.Node[K]) error {
	return Fprint(NewPrinter(nil, nil), os.Stdout, root)
}

// Fprint outputs a tree to w, one key per line. An empty tree is printed
// as a single dash.
func Fprint[K cmp.Ordered](p *Printer, w io.Writer, root *bstree.Node[K]) error {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	out := &errWriter{w: w}
	if root == nil {
		out.write("-\n")
		return out.err
	}
	printNode(p, out, root, "", "")
	return out.err
}

const (
	rightEdge = "┌── "
	leftEdge  = "└── "
	throughV  = "│   "
	blank     = "    "
)

// printNode prints the subtree at node. prefix is the indentation common to
// all lines of the subtree, edge the connector leading to node itself.
func printNode[K cmp.Ordered](p *Printer, out *errWriter, node *bstree.Node[K], prefix, edge string) {
	if out.err != nil {
		return
	}
	if node.Right != nil {
		printNode(p, out, node.Right, indent(prefix, edge, leftEdge), rightEdge)
	}
	label := p.fit(prefix+edge, fmt.Sprintf("%v", node.Key))
	out.write(p.paint(p.palette.Edges, prefix+edge))
	if bstree.IsLeaf(node) {
		out.write(p.paint(p.palette.Leaf, label))
	} else {
		out.write(p.paint(p.palette.Inner, label))
	}
	out.write("\n")
	if node.Left != nil {
		printNode(p, out, node.Left, indent(prefix, edge, rightEdge), leftEdge)
	}
}

// indent returns the prefix for the children of a node reached by edge.
// A vertical line continues below edges of kind through.
func indent(prefix, edge, through string) string {
	switch edge {
	case "":
		return prefix
	case through:
		return prefix + throughV
	}
	return prefix + blank
}

// fit truncates label so that lead and label fit into the configured
// line width. Truncated labels end in an ellipsis.
func (p *Printer) fit(lead, label string) string {
	if p.config.LineWidth <= 0 || p.width(lead+label) <= p.config.LineWidth {
		return label
	}
	T().Debugf("console: truncating label %q", label)
	gstr := grapheme.StringFromString(label)
	clusters := make([]string, gstr.Len())
	for i := range clusters {
		clusters[i] = gstr.Nth(i)
	}
	for n := len(clusters) - 1; n > 0; n-- {
		short := strings.Join(clusters[:n], "") + ellipsis
		if p.width(lead+short) <= p.config.LineWidth {
			return short
		}
	}
	return ellipsis
}

const ellipsis = "…"

func (p *Printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

func (p *Printer) paint(c *color.Color, s string) string {
	if !p.config.Colored || c == nil || s == "" {
		return s
	}
	return c.Sprint(s)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets Config.LineWidth accordingly. Colors are switched on for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
		config.Context = uax11.ContextFromEnvironment()
	} else {
		config.Context = uax11.LatinContext
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
