// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package display holds the display container a QR code is rendered into.
//
// The container is shared by the render-and-upload handler, the renderer
// and the front ends. It tracks visibility and at most one render surface;
// every mutation bumps a generation counter so views can tell that
// something changed.
package display

import (
	"image"
	"sync"
)

// Surface is a drawn QR code that can serialize itself to an encoded image.
type Surface interface {
	// Image returns the drawn pixels.
	Image() image.Image
	// Bitmap returns the module matrix, true meaning a dark module.
	Bitmap() [][]bool
	// EncodePNG returns the PNG encoding of Image.
	EncodePNG() ([]byte, error)
	// EncodeBase64 returns the standard base64 encoding of EncodePNG.
	EncodeBase64() (string, error)
	// DataURL returns a data:image/png;base64 URL of the surface.
	DataURL() (string, error)
}

// Container is the display area. The zero value is hidden and empty and
// ready to use.
type Container struct {
	mu         sync.RWMutex
	visible    bool
	surface    Surface
	generation uint64
	// epoch invalidates Targets handed out before the latest Clear or Hide.
	epoch uint64
}

// Target is a write slot into a container obtained from Clear. Only the
// Target of the most recent Clear can draw; older ones are stale.
type Target struct {
	c     *Container
	epoch uint64
}

// New returns a hidden, empty container.
func New() *Container {
	return &Container{}
}

// Show makes the container visible.
func (c *Container) Show() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visible = true
	c.generation++
}

// Hide makes the container invisible. Its contents are kept, but pending
// draws into it are invalidated.
func (c *Container) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visible = false
	c.epoch++
	c.generation++
}

// Visible reports whether the container is shown.
func (c *Container) Visible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.visible
}

// Clear drops the current surface and returns the Target the next render
// must draw into. Clearing an empty container leaves it unchanged.
func (c *Container) Clear() Target {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	if c.surface != nil {
		c.surface = nil
		c.generation++
	}

	return Target{c: c, epoch: c.epoch}
}

// Draw stores s in the container if t is still current. It reports false
// for a stale or zero Target.
func (t Target) Draw(s Surface) bool {
	if t.c == nil {
		return false
	}

	t.c.mu.Lock()
	defer t.c.mu.Unlock()

	if t.epoch != t.c.epoch {
		return false
	}
	t.c.surface = s
	t.c.generation++
	return true
}

// Surface returns what was drawn through t, provided t is still current.
func (t Target) Surface() (Surface, bool) {
	if t.c == nil {
		return nil, false
	}

	t.c.mu.RLock()
	defer t.c.mu.RUnlock()

	if t.epoch != t.c.epoch || t.c.surface == nil {
		return nil, false
	}
	return t.c.surface, true
}

// Surface locates the render surface. ok is false when nothing was drawn.
func (c *Container) Surface() (s Surface, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.surface, c.surface != nil
}

// Empty reports whether the container holds no surface.
func (c *Container) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.surface == nil
}

// Generation returns a counter that grows on every visible change.
func (c *Container) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generation
}
