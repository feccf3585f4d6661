package console

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

const (
	indent      = "|   "
	leafMarker  = "x"
	innerMarker = ">"
)

// Palette holds the colors used for the parts of a rendered tree.
// A nil color prints uncolored.
type Palette struct {
	Inner *color.Color // marker of internal nodes
	Leaf  *color.Color // marker of leaves
	Keys  *color.Color // keys of internal nodes
	Rules *color.Color // indentation rules
}

// DefaultPalette returns the palette used if Config.Palette is nil.
func DefaultPalette() *Palette {
	return &Palette{
		Inner: color.New(color.FgBlue, color.Bold),
		Leaf:  color.New(color.FgGreen),
		Keys:  color.New(color.FgBlue),
		Rules: color.New(color.FgHiBlack),
	}
}

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int            // wrap key lists longer than this, in “en”s
	Context   *uax11.Context // context for measuring key widths
	Palette   *Palette
}

var setupGraphemes sync.Once

func graphemeSetup() {
	grapheme.SetupGraphemeClasses()
}

// Fprint writes a colored rendering of tree to w.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties. It is safe to have config.Context set to nil. In this
// case, uax11.LatinContext is used.
func Fprint[K cmp.Ordered](w io.Writer, tree *btree.Tree[K], config *Config) error {
	if w == nil || tree == nil {
		return errors.New("illegal argument: nil")
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	setupGraphemes.Do(graphemeSetup)
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "tree is empty\n")
		return err
	}
	var err error
	tree.Walk(func(depth int, leaf bool, keys []K) bool {
		labels := make([]string, len(keys))
		for i, k := range keys {
			labels[i] = fmt.Sprint(k)
		}
		_, err = io.WriteString(w, renderNode(depth, leaf, labels, config.LineWidth, ctx, palette))
		return err == nil
	})
	return err
}

// Print writes a colored rendering of tree to stdout, configured from the
// terminal.
func Print[K cmp.Ordered](tree *btree.Tree[K]) error {
	return Fprint(os.Stdout, tree, nil)
}

// renderNode renders one node as one or more lines. Keys are placed
// first-fit, a line is broken before a key which would overshoot linewidth.
// A line always holds at least one key.
func renderNode(depth int, leaf bool, labels []string, linewidth int,
	ctx *uax11.Context, palette *Palette) string {
	//
	var b strings.Builder
	rules := strings.Repeat(indent, depth)
	marker, keyColor := innerMarker, palette.Keys
	markerColor := palette.Inner
	if leaf {
		marker, keyColor, markerColor = leafMarker, nil, palette.Leaf
	}
	b.WriteString(paint(palette.Rules, rules))
	b.WriteString(paint(markerColor, marker))
	prefixWidth := len(rules) + len(marker)
	used := prefixWidth
	for _, label := range labels {
		w := width(label, ctx) + 1 // one space as separator
		if linewidth > 0 && used+w > linewidth && used > prefixWidth {
			b.WriteByte('\n')
			b.WriteString(paint(palette.Rules, rules))
			b.WriteString(strings.Repeat(" ", len(marker)))
			used = prefixWidth
		}
		b.WriteByte(' ')
		b.WriteString(paint(keyColor, label))
		used += w
	}
	b.WriteByte('\n')
	return b.String()
}

func width(s string, ctx *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

func paint(c *color.Color, s string) string {
	if c == nil || s == "" {
		return s
	}
	return c.Sprint(s)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	btree.T().Debugf("console: setting line length to %d en", config.LineWidth)
	return config
}
