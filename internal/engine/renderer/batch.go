package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/internal/engine/shader"
	"github.com/Faultbox/paintbox/internal/engine/ui2d"
	"github.com/Faultbox/paintbox/pkg/math"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 uTransform;

out vec2 vUV;
out vec4 vColor;

void main() {
	gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
	vUV = aUV;
	vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec2 vUV;
in vec4 vColor;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vUV) * vColor;
}
`

type vertex struct {
	x, y    float32
	u, v    float32
	r, g, b float32
	a       float32
}

const (
	vertexStride = int32(unsafe.Sizeof(vertex{}))
	maxVertices  = 6 * 4096
)

// Batch accumulates textured triangles and draws them with one call per
// texture change. Untextured primitives sample a 1x1 white texture.
//
// Batch implements canvas.Painter for scene drawing under PushCamera and
// ui2d.Surface for the sidebar.
type Batch struct {
	program *shader.Program
	vao     uint32
	vbo     uint32

	white   *Texture
	font    *ui2d.Font
	fontTex *Texture

	verts   []vertex
	texture uint32

	projection math.Mat4
	view       math.Mat4
	height     int     // logical height of the target, for scissor
	scale      float32 // drawable pixels per logical pixel

	scissor   math.Rect
	scissorOn bool
}

var (
	_ canvas.Painter = (*Batch)(nil)
	_ ui2d.Surface   = (*Batch)(nil)
)

// NewBatch compiles the batch program and uploads the helper textures.
// A GL context must be current.
func NewBatch(font *ui2d.Font) (*Batch, error) {
	program, err := shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("batch shader: %w", err)
	}

	b := &Batch{
		program: program,
		font:    font,
		verts:   make([]vertex, 0, maxVertices),
		view:    math.Identity(),
		scale:   1,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxVertices*int(vertexStride), nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, vertexStride, gl.PtrOffset(4*4))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	b.white = newTexture(whitePixel())
	if font != nil {
		b.fontTex = newTexture(font.Atlas())
	}
	return b, nil
}

// Begin starts drawing to a target of width x height logical pixels.
// scale is the number of drawable pixels per logical pixel.
func (b *Batch) Begin(width, height int, scale float32) {
	b.verts = b.verts[:0]
	b.texture = 0
	b.projection = math.Screen2D(float32(width), float32(height))
	b.view = math.Identity()
	b.height = height
	b.scale = scale
	b.scissorOn = false

	gl.Viewport(0, 0, int32(float32(width)*scale), int32(float32(height)*scale))
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
}

// Clear fills the whole target with c.
func (b *Batch) Clear(c canvas.Color) {
	f := c.Floats()
	gl.ClearColor(f[0], f[1], f[2], f[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// End draws whatever is still pending.
func (b *Batch) End() {
	b.Flush()
	gl.Disable(gl.SCISSOR_TEST)
}

// PushCamera draws subsequent primitives in cam's world space. The returned
// func restores the previous transform.
func (b *Batch) PushCamera(cam camera.Camera2D) func() {
	b.Flush()
	prev := b.view
	b.view = cam.ViewMatrix()
	return func() {
		b.Flush()
		b.view = prev
	}
}

// PushScissor clips subsequent primitives to r in logical screen pixels.
// The returned func restores the previous clip.
func (b *Batch) PushScissor(r math.Rect) func() {
	b.Flush()
	prev, prevOn := b.scissor, b.scissorOn
	b.setScissor(r, true)
	return func() {
		b.Flush()
		b.setScissor(prev, prevOn)
	}
}

func (b *Batch) setScissor(r math.Rect, on bool) {
	b.scissor, b.scissorOn = r, on
	if !on {
		gl.Disable(gl.SCISSOR_TEST)
		return
	}
	gl.Enable(gl.SCISSOR_TEST)
	// GL scissor boxes start at the bottom-left corner.
	s := b.scale
	gl.Scissor(
		int32(r.X*s),
		int32((float32(b.height)-r.Y-r.H)*s),
		int32(r.W*s),
		int32(r.H*s),
	)
}

// PushTarget switches to a fresh target of width x height pixels, such as
// a bound framebuffer. The returned func flushes it and restores the
// previous projection, transform and clip.
func (b *Batch) PushTarget(width, height int) func() {
	b.Flush()
	projection, view := b.projection, b.view
	h, scale := b.height, b.scale
	scissor, scissorOn := b.scissor, b.scissorOn

	b.projection = math.Screen2D(float32(width), float32(height))
	b.view = math.Identity()
	b.height, b.scale = height, 1
	b.setScissor(math.Rect{}, false)

	return func() {
		b.Flush()
		b.projection, b.view = projection, view
		b.height, b.scale = h, scale
		b.setScissor(scissor, scissorOn)
	}
}

// Flush draws the pending triangles.
func (b *Batch) Flush() {
	if len(b.verts) == 0 {
		return
	}

	b.program.Use()
	b.program.SetMat4("uTransform", b.projection.Mul(b.view))
	b.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(b.verts)*int(vertexStride), unsafe.Pointer(&b.verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.verts)))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	b.verts = b.verts[:0]
}

// use prepares room for n vertices sampling tex.
func (b *Batch) use(tex uint32, n int) {
	if tex != b.texture || len(b.verts)+n > maxVertices {
		b.Flush()
		b.texture = tex
	}
}

// quad appends two triangles p0-p1-p2 and p0-p2-p3 with per-corner colors.
func (b *Batch) quad(p [4]math.Vec2, uv math.Rect, c [4]canvas.Color) {
	uvs := [4]math.Vec2{
		{X: uv.X, Y: uv.Y},
		{X: uv.X + uv.W, Y: uv.Y},
		{X: uv.X + uv.W, Y: uv.Y + uv.H},
		{X: uv.X, Y: uv.Y + uv.H},
	}
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		f := c[i].Floats()
		b.verts = append(b.verts, vertex{
			x: p[i].X, y: p[i].Y,
			u: uvs[i].X, v: uvs[i].Y,
			r: f[0], g: f[1], b: f[2], a: f[3],
		})
	}
}

func corners(r math.Rect) [4]math.Vec2 {
	return [4]math.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

func solid(c canvas.Color) [4]canvas.Color {
	return [4]canvas.Color{c, c, c, c}
}

var fullUV = math.Rect{W: 1, H: 1}

func (b *Batch) FillRect(r math.Rect, c canvas.Color) {
	b.use(b.white.id, 6)
	b.quad(corners(r), fullUV, solid(c))
}

// StrokeRect draws the outline inside r.
func (b *Batch) StrokeRect(r math.Rect, thickness float32, c canvas.Color) {
	t := thickness
	if t*2 >= r.W || t*2 >= r.H {
		b.FillRect(r, c)
		return
	}
	b.FillRect(math.Rect{X: r.X, Y: r.Y, W: r.W, H: t}, c)
	b.FillRect(math.Rect{X: r.X, Y: r.Y + r.H - t, W: r.W, H: t}, c)
	b.FillRect(math.Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t}, c)
	b.FillRect(math.Rect{X: r.X + r.W - t, Y: r.Y + t, W: t, H: r.H - 2*t}, c)
}

// Line draws a segment as a quad of the given width with flat ends.
func (b *Batch) Line(p, q math.Vec2, thickness float32, c canvas.Color) {
	d := q.Sub(p).Normalize()
	if d == (math.Vec2{}) {
		return
	}
	n := math.Vec2{X: -d.Y, Y: d.X}.Scale(thickness / 2)
	b.use(b.white.id, 6)
	b.quad([4]math.Vec2{p.Add(n), q.Add(n), q.Sub(n), p.Sub(n)}, fullUV, solid(c))
}

// Image draws t stretched over dst. Textures not created by this package
// are skipped.
func (b *Batch) Image(t canvas.Texture, dst math.Rect) {
	tex, ok := t.(*Texture)
	if !ok || tex.id == 0 {
		return
	}
	b.use(tex.id, 6)
	b.quad(corners(dst), fullUV, solid(canvas.White))
}

func (b *Batch) Gradient(r math.Rect, tl, tr, br, bl canvas.Color) {
	b.use(b.white.id, 6)
	b.quad(corners(r), fullUV, [4]canvas.Color{tl, tr, br, bl})
}

// Text draws s with its top-left corner at pos.
func (b *Batch) Text(pos math.Vec2, s string, scale float32, c canvas.Color) {
	if b.font == nil || s == "" {
		return
	}
	cell := b.font.CellSize().Scale(scale)
	x := pos.X
	for _, r := range s {
		if r == '\n' {
			x = pos.X
			pos.Y += cell.Y
			continue
		}
		b.use(b.fontTex.id, 6)
		b.quad(corners(math.Rect{X: x, Y: pos.Y, W: cell.X, H: cell.Y}), b.font.GlyphUV(r), solid(c))
		x += cell.X
	}
}

// Measure matches ui2d.MeasureFunc.
func (b *Batch) Measure(s string, scale float32) math.Vec2 {
	if b.font == nil {
		return math.Vec2{}
	}
	return b.font.Measure(s, scale)
}

// Close frees the GL objects.
func (b *Batch) Close() {
	b.white.Release()
	if b.fontTex != nil {
		b.fontTex.Release()
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	b.program.Delete()
}
