//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import "math"

// Line is one rasterized segment, carried both in the pixel buffer and
// in the renderer-facing line list (spec §3).
type Line struct {
	X1, Y1, X2, Y2 float32
	Color          float32
	Width          float32
}

// CanvasModel is the interpreter-owned drawing surface: size, an 8-bit
// pixel buffer, the background colour, the object table with its single
// selection, the accumulated line list, and the image registry (spec
// §3/§4.5).
type CanvasModel struct {
	Width, Height int
	pixels        []uint8 // 0 == background
	BgColor       float32
	objects       map[string]*Object
	order         []string // insertion order, for "first created" selection rule
	Selected      string
	Lines         []Line
	images        map[string]bool // registered asset paths
}

// NewCanvasModel creates a canvas of the given size with an empty object
// table and an all-background pixel buffer.
func NewCanvasModel(w, h int) *CanvasModel {
	return &CanvasModel{
		Width:   w,
		Height:  h,
		pixels:  make([]uint8, w*h),
		objects: make(map[string]*Object),
		images:  make(map[string]bool),
	}
}

// Resize replaces the pixel buffer and clears all recorded lines,
// backing `newprojectsize`.
func (c *CanvasModel) Resize(w, h int) {
	c.Width, c.Height = w, h
	c.pixels = make([]uint8, w*h)
	c.Lines = nil
}

// Clean clears the pixel buffer and the line list without touching the
// object table, backing `clean`/`cg`'s drawing-surface half.
func (c *CanvasModel) Clean() {
	for i := range c.pixels {
		c.pixels[i] = 0
	}
	c.Lines = nil
}

// AddObject inserts obj into the table. If it is the first object ever
// created, it becomes selected (spec §4.5).
func (c *CanvasModel) AddObject(obj *Object) {
	c.objects[obj.Name] = obj
	c.order = append(c.order, obj.Name)
	if c.Selected == "" {
		c.Selected = obj.Name
	}
}

// Object looks up an object by name.
func (c *CanvasModel) Object(name string) (*Object, bool) {
	o, ok := c.objects[name]
	return o, ok
}

// ObjectNames returns every object name in creation order, backing the
// `turtlesown` default-initialisation sweep.
func (c *CanvasModel) ObjectNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// SelectedObject returns the currently selected object, if any.
func (c *CanvasModel) SelectedObject() (*Object, bool) {
	if c.Selected == "" {
		return nil, false
	}
	return c.Object(c.Selected)
}

// RemoveObject deletes the named object. If it was selected, selection
// transfers to an arbitrary remaining object, or to none.
func (c *CanvasModel) RemoveObject(name string) {
	delete(c.objects, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if c.Selected == name {
		c.Selected = ""
		for _, n := range c.order {
			if _, ok := c.objects[n]; ok {
				c.Selected = n
				break
			}
		}
	}
}

// Select changes the current selection to name.
func (c *CanvasModel) Select(name string) {
	c.Selected = name
}

// RegisterImage records that path has been loaded into the image
// registry (used by loadpict/loadshape/placepict/bg picture commands).
func (c *CanvasModel) RegisterImage(path string) {
	c.images[path] = true
}

// HasImage reports whether path is already registered.
func (c *CanvasModel) HasImage(path string) bool {
	return c.images[path]
}

// clampColorIndex converts a colour float into the 8-bit index stored in
// the pixel buffer (spec §4.5's colour model: any value in [0,256)).
func clampColorIndex(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(float64(v)))
}

// pixelOffset converts a canvas coordinate (centre origin, y up) to an
// index into the row-major, top-left-origin pixel buffer. Returns -1 for
// coordinates outside the buffer.
func (c *CanvasModel) pixelOffset(x, y float32) int {
	px := int(math.Round(float64(x))) + c.Width/2
	py := c.Height/2 - int(math.Round(float64(y)))
	if px < 0 || px >= c.Width || py < 0 || py >= c.Height {
		return -1
	}
	return py*c.Width + px
}

// paintPixel writes color into the buffer at (x,y), widened by width
// (a stroke of width s paints a (2s-1)x(2s-1) block centred on the
// sample, matching spec §4.5's "s-1 pixels on each side in both axes").
func (c *CanvasModel) paintPixel(x, y float32, color uint8, width float32) {
	spread := int(math.Round(float64(width))) - 1
	if spread < 0 {
		spread = 0
	}
	cx := int(math.Round(float64(x))) + c.Width/2
	cy := c.Height/2 - int(math.Round(float64(y)))
	for dy := -spread; dy <= spread; dy++ {
		for dx := -spread; dx <= spread; dx++ {
			px, py := cx+dx, cy+dy
			if px < 0 || px >= c.Width || py < 0 || py >= c.Height {
				continue
			}
			c.pixels[py*c.Width+px] = color
		}
	}
}

// ColorUnder returns the pixel colour index at (x,y), or the background
// colour if the pixel has never been painted (index 0), per spec §4.7.
func (c *CanvasModel) ColorUnder(x, y float32) float32 {
	off := c.pixelOffset(x, y)
	if off < 0 {
		return c.BgColor
	}
	v := c.pixels[off]
	if v == 0 {
		return c.BgColor
	}
	return float32(v)
}

// DrawLine rasterizes the segment from (x1,y1) to (x2,y2) into the pixel
// buffer and records it for the renderer. Spec §9 leaves the exact
// algorithm unspecified beyond "pixels along the segment at the given
// stroke width"; this uses an integer Bresenham walk (clean, correct for
// any slope) rather than the source's special-cased integer-slope
// approach, which the spec calls out as not producing correct pixels for
// non-axis-aligned lines.
func (c *CanvasModel) DrawLine(x1, y1, x2, y2, color, width float32) {
	c.Lines = append(c.Lines, Line{x1, y1, x2, y2, color, width})
	idx := clampColorIndex(color)

	x0, y0 := int(math.Round(float64(x1))), int(math.Round(float64(y1)))
	x1i, y1i := int(math.Round(float64(x2))), int(math.Round(float64(y2)))

	dx := abs(x1i - x0)
	dy := -abs(y1i - y0)
	sx := 1
	if x0 >= x1i {
		sx = -1
	}
	sy := 1
	if y0 >= y1i {
		sy = -1
	}
	err := dx + dy

	for {
		c.paintPixel(float32(x0), float32(y0), idx, width)
		if x0 == x1i && y0 == y1i {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
