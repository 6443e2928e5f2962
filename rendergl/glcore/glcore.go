// Package glcore implements rendergl.Context on top of the native OpenGL 4.1
// core profile bindings. It is the only package that calls into the driver.
package glcore

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gekko3d/gekkogl/rendergl"
)

// Context forwards to the GL functions of the context current on the calling
// thread.
type Context struct{}

var _ rendergl.Context = (*Context)(nil)

// New loads the GL entry points. A context must already be current on the
// calling OS thread.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, &rendergl.ContextError{Op: "load gl functions", Err: err}
	}
	return &Context{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Renderer returns the GL_RENDERER string of the current context.
func (c *Context) Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

func (c *Context) CreateShader(kind rendergl.ShaderKind) uint32 {
	return gl.CreateShader(uint32(kind))
}

func (c *Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) GetShaderi(shader uint32, pname rendergl.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	n := c.GetShaderi(shader, rendergl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) GetProgrami(program uint32, pname rendergl.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	n := c.GetProgrami(program, rendergl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) CreateBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (c *Context) BindBuffer(target rendergl.Enum, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (c *Context) BufferData(target rendergl.Enum, data []byte, usage rendergl.Enum) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), ptr, uint32(usage))
}

func (c *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *Context) CreateVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (c *Context) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (c *Context) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (c *Context) VertexAttribPointer(location uint32, size int32, typ rendergl.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(location, size, uint32(typ), normalized, stride, uintptr(offset))
}

func (c *Context) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (c *Context) DrawArrays(mode rendergl.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask rendergl.Enum) {
	gl.Clear(uint32(mask))
}

func (c *Context) GetError() rendergl.Enum {
	return rendergl.Enum(gl.GetError())
}
