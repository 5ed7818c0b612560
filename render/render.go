// Package render paints one frame of a view onto a drawing surface: the
// thin, stateless layer of spec §4.7 that turns geometry decisions and
// flattened entries into capability calls. It holds no state of its own
// between frames.
package render

import (
	"github.com/arbortui/treeview/collapse"
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/geometry"
	"github.com/arbortui/treeview/view"
)

// DrawingSurface is the capability the renderer paints through. The core
// never opens, closes, or otherwise owns one; it is supplied fresh each
// frame by the external collaborator (spec §5, §6).
type DrawingSurface interface {
	SetBold(on bool)
	SetInvert(on bool)
	Draw(text string)
	DrawAt(x, y int, text string)
}

// Config is the per-frame display configuration: the connector glyphs and
// the column width of one indent level, both opaque to the renderer.
type Config struct {
	Connection  string
	Mid         string
	End         string
	IndentWidth int
}

// Renderer paints a view's current window onto a DrawingSurface using a
// fixed Config. It is safe to reuse across frames; it carries no
// per-frame state itself.
type Renderer struct {
	cfg Config
}

// New builds a Renderer against a fixed display configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Paint draws one frame of v's current window, in the order spec §4.7
// prescribes: off-screen ancestor columns, in-window vertical connectors,
// then per-row glyph and name.
func (r *Renderer) Paint(surface DrawingSurface, v *view.View, f *forest.Forest, c *collapse.Set) {
	frame := geometry.Compute(v.Flattened, v.Offset, v.Count, f)
	if frame.Visible == 0 {
		return
	}

	for _, col := range frame.OffScreenColumns {
		x := col * r.cfg.IndentWidth
		for row := 0; row < frame.Visible; row++ {
			surface.DrawAt(x, row, r.cfg.Connection)
		}
	}

	for row, rowGeom := range frame.Rows {
		for col := range rowGeom.Verticals {
			surface.DrawAt(col*r.cfg.IndentWidth, row, r.cfg.Connection)
		}
	}

	for row, rowGeom := range frame.Rows {
		entry := v.Flattened[v.Offset+row]
		glyph := r.cfg.Mid
		if rowGeom.End {
			glyph = r.cfg.End
		}
		x := rowGeom.Indent * r.cfg.IndentWidth
		surface.DrawAt(x, row, glyph)

		name := ""
		if node := f.Arena.Lookup(entry.Handle); node != nil {
			name = node.Name
		}
		surface.SetBold(c.Collapsed(entry.Handle))
		surface.SetInvert(v.Offset+row == v.Selected)
		surface.Draw(name)
	}
	surface.SetBold(false)
	surface.SetInvert(false)
}
