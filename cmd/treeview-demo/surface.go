package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/unilibs/uniwidth"
)

// cell is one styled terminal column.
type cell struct {
	ch    rune
	style lipgloss.Style
}

// screen is the render.DrawingSurface implementation this demo paints
// through: a fixed-size grid of styled cells, addressed either by an
// internal cursor (Draw) or directly (DrawAt), with multi-width runes
// advancing the cursor by their display width rather than their rune
// count.
type screen struct {
	width, height int
	rows          [][]cell
	cx, cy        int
	bold, invert  bool
}

func newScreen(width, height int) *screen {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	rows := make([][]cell, height)
	for y := range rows {
		rows[y] = make([]cell, width)
		for x := range rows[y] {
			rows[y][x] = cell{ch: ' '}
		}
	}
	return &screen{width: width, height: height, rows: rows}
}

func (s *screen) SetBold(on bool) {
	s.bold = on
}

func (s *screen) SetInvert(on bool) {
	s.invert = on
}

func (s *screen) Draw(text string) {
	s.writeAt(s.cx, s.cy, text)
	s.cx += uniwidth.StringWidth(text)
}

func (s *screen) DrawAt(x, y int, text string) {
	s.writeAt(x, y, text)
	s.cx = x + uniwidth.StringWidth(text)
	s.cy = y
}

func (s *screen) currentStyle() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.bold {
		st = st.Bold(true)
	}
	if s.invert {
		st = st.Reverse(true)
	}
	return st
}

func (s *screen) writeAt(x, y int, text string) {
	if y < 0 || y >= s.height {
		return
	}
	st := s.currentStyle()
	col := x
	for _, r := range text {
		w := uniwidth.RuneWidth(r)
		if col >= 0 && col < s.width {
			s.rows[y][col] = cell{ch: r, style: st}
		}
		col += w
	}
}

// Render flattens the grid into a single ANSI-styled string, one line per
// row, ready to hand back from a bubbletea View.
func (s *screen) Render() string {
	var b strings.Builder
	for y, row := range s.rows {
		for _, c := range row {
			ch := string(c.ch)
			if ch == "" {
				ch = " "
			}
			b.WriteString(c.style.Render(ch))
		}
		if y != len(s.rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
