//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

// clickPoint is one queued pointer click, in language coordinates.
type clickPoint struct {
	X, Y float32
}

// InputBuffer holds the key and click events collected since the
// program last consumed them, plus the set of keys currently held down
// (spec §3/§4.6).
type InputBuffer struct {
	keyQueue []string
	keysDown map[string]bool
	clicks   []clickPoint
}

// NewInputBuffer creates an empty buffer.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{keysDown: make(map[string]bool)}
}

// PressKey records a new key press: one entry in the FIFO (consumed by
// readchar) and a mark in the held-down set (consulted by keydown?).
func (b *InputBuffer) PressKey(name string) {
	b.keyQueue = append(b.keyQueue, name)
	b.keysDown[name] = true
}

// ReleaseKey clears a key from the held-down set.
func (b *InputBuffer) ReleaseKey(name string) {
	delete(b.keysDown, name)
}

// IsKeyDown reports whether name is currently held.
func (b *InputBuffer) IsKeyDown(name string) bool {
	return b.keysDown[name]
}

// NextKey pops the oldest queued key press, if any.
func (b *InputBuffer) NextKey() (string, bool) {
	if len(b.keyQueue) == 0 {
		return "", false
	}
	k := b.keyQueue[0]
	b.keyQueue = b.keyQueue[1:]
	return k, true
}

// Click appends a pointer click to the FIFO.
func (b *InputBuffer) Click(x, y float32) {
	b.clicks = append(b.clicks, clickPoint{x, y})
}

// NextClick pops the oldest queued click, if any.
func (b *InputBuffer) NextClick() (float32, float32, bool) {
	if len(b.clicks) == 0 {
		return 0, 0, false
	}
	c := b.clicks[0]
	b.clicks = b.clicks[1:]
	return c.X, c.Y, true
}

// HasClick reports whether a click is pending, without consuming it;
// backs `clicked?`.
func (b *InputBuffer) HasClick() bool {
	return len(b.clicks) > 0
}

// HasKey reports whether a key press is pending, without consuming it;
// backs `key?`.
func (b *InputBuffer) HasKey() bool {
	return len(b.keyQueue) > 0
}
