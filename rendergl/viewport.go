package rendergl

import "github.com/go-gl/mathgl/mgl32"

// Viewport is the window area rendering maps to. It is stale after
// construction or UpdateSize until SetUsed applies it.
type Viewport struct {
	X, Y int32
	W, H int32

	applied bool
}

func ViewportForWindow(w, h int32) *Viewport {
	return &Viewport{W: w, H: h}
}

// UpdateSize records a new window size. The context is not touched.
func (v *Viewport) UpdateSize(w, h int32) {
	v.W = w
	v.H = h
	v.applied = false
}

// SetUsed writes the viewport to ctx.
func (v *Viewport) SetUsed(ctx Context) {
	ctx.Viewport(v.X, v.Y, v.W, v.H)
	v.applied = true
}

// Stale reports whether the viewport changed since it was last applied.
func (v *Viewport) Stale() bool { return !v.applied }

// ColorBuffer holds the clear colour.
type ColorBuffer struct {
	Color mgl32.Vec4
}

// ColorBufferFromColor makes an opaque clear colour from rgb.
func ColorBufferFromColor(rgb mgl32.Vec3) *ColorBuffer {
	return &ColorBuffer{Color: rgb.Vec4(1)}
}

func (c *ColorBuffer) UpdateColor(rgb mgl32.Vec3) {
	c.Color = rgb.Vec4(1)
}

// SetUsed makes the colour the context's clear colour.
func (c *ColorBuffer) SetUsed(ctx Context) {
	ctx.ClearColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
}

func (c *ColorBuffer) Clear(ctx Context) {
	ctx.Clear(COLOR_BUFFER_BIT)
}
