// Package gltest provides an in-memory rendergl.Context that records what
// callers do with it, for tests that have no GPU.
package gltest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gekko3d/gekkogl/rendergl"
)

// ObjectKind classifies live handles.
type ObjectKind string

const (
	KindShader      ObjectKind = "shader"
	KindProgram     ObjectKind = "program"
	KindBuffer      ObjectKind = "buffer"
	KindVertexArray ObjectKind = "vertex array"
)

// AttribPointer is one configured vertex attribute slot.
type AttribPointer struct {
	Location   uint32
	Size       int32
	Type       rendergl.Enum
	Normalized bool
	Stride     int32
	Offset     int
	Buffer     uint32
}

// DrawCall captures a draw together with the state it ran against.
type DrawCall struct {
	Mode        rendergl.Enum
	First       int32
	Count       int32
	Program     uint32
	VertexArray uint32
}

type shaderObject struct {
	kind     rendergl.ShaderKind
	source   string
	compiled bool
	log      string
}

type programObject struct {
	attached []uint32
	linked   bool
	log      string
}

type vertexArrayObject struct {
	enabled  map[uint32]bool
	pointers map[uint32]AttribPointer
}

// Context is a fake driver. Handles start at 1 and are never reused.
type Context struct {
	// CompileFunc decides whether a shader compiles. Nil uses
	// DefaultCompile.
	CompileFunc func(kind rendergl.ShaderKind, source string) (ok bool, log string)
	// FailCreate makes every Create* call return 0 and raise
	// OUT_OF_MEMORY.
	FailCreate bool

	next    uint32
	live    map[uint32]ObjectKind
	deletes map[uint32]int

	shaders      map[uint32]*shaderObject
	programs     map[uint32]*programObject
	buffers      map[uint32][]byte
	vertexArrays map[uint32]*vertexArrayObject

	currentProgram uint32
	boundArray     uint32
	boundVAO       uint32

	viewport   [4]int32
	clearColor [4]float32
	clears     int
	draws      []DrawCall
	errors     []rendergl.Enum
	calls      []string
}

var _ rendergl.Context = (*Context)(nil)

func New() *Context {
	return &Context{
		live:         make(map[uint32]ObjectKind),
		deletes:      make(map[uint32]int),
		shaders:      make(map[uint32]*shaderObject),
		programs:     make(map[uint32]*programObject),
		buffers:      make(map[uint32][]byte),
		vertexArrays: make(map[uint32]*vertexArrayObject),
	}
}

// DefaultCompile accepts sources that start with a #version line and define
// main.
func DefaultCompile(kind rendergl.ShaderKind, source string) (bool, string) {
	trimmed := strings.TrimSpace(source)
	if !strings.HasPrefix(trimmed, "#version") {
		return false, "0:1(1): error: syntax error, expected #version directive"
	}
	if !strings.Contains(trimmed, "void main") {
		return false, fmt.Sprintf("0:%d(1): error: %s shader does not define main()", strings.Count(trimmed, "\n")+1, kind)
	}
	return true, ""
}

func (c *Context) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *Context) create(kind ObjectKind) uint32 {
	if c.FailCreate {
		c.errors = append(c.errors, rendergl.OUT_OF_MEMORY)
		return 0
	}
	c.next++
	c.live[c.next] = kind
	return c.next
}

func (c *Context) release(id uint32, kind ObjectKind) {
	if id == 0 {
		return
	}
	c.deletes[id]++
	if c.live[id] != kind {
		c.errors = append(c.errors, rendergl.INVALID_VALUE)
		return
	}
	delete(c.live, id)
}

func (c *Context) CreateShader(kind rendergl.ShaderKind) uint32 {
	c.record("CreateShader(%s)", kind)
	id := c.create(KindShader)
	if id != 0 {
		c.shaders[id] = &shaderObject{kind: kind}
	}
	return id
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.record("ShaderSource(%d)", shader)
	if s, ok := c.shaders[shader]; ok {
		s.source = source
	}
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader(%d)", shader)
	s, ok := c.shaders[shader]
	if !ok {
		c.errors = append(c.errors, rendergl.INVALID_VALUE)
		return
	}
	compile := c.CompileFunc
	if compile == nil {
		compile = DefaultCompile
	}
	s.compiled, s.log = compile(s.kind, s.source)
}

func (c *Context) GetShaderi(shader uint32, pname rendergl.Enum) int32 {
	s, ok := c.shaders[shader]
	if !ok {
		return 0
	}
	switch pname {
	case rendergl.COMPILE_STATUS:
		if s.compiled {
			return rendergl.TRUE
		}
		return rendergl.FALSE
	case rendergl.INFO_LOG_LENGTH:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	return 0
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	if s, ok := c.shaders[shader]; ok {
		return s.log
	}
	return ""
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader(%d)", shader)
	c.release(shader, KindShader)
	delete(c.shaders, shader)
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram()")
	id := c.create(KindProgram)
	if id != 0 {
		c.programs[id] = &programObject{}
	}
	return id
}

func (c *Context) AttachShader(program, shader uint32) {
	c.record("AttachShader(%d, %d)", program, shader)
	p, ok := c.programs[program]
	if !ok || c.shaders[shader] == nil {
		c.errors = append(c.errors, rendergl.INVALID_VALUE)
		return
	}
	p.attached = append(p.attached, shader)
}

func (c *Context) DetachShader(program, shader uint32) {
	c.record("DetachShader(%d, %d)", program, shader)
	p, ok := c.programs[program]
	if !ok {
		c.errors = append(c.errors, rendergl.INVALID_VALUE)
		return
	}
	i := slices.Index(p.attached, shader)
	if i < 0 {
		c.errors = append(c.errors, rendergl.INVALID_OPERATION)
		return
	}
	p.attached = slices.Delete(p.attached, i, i+1)
}

// LinkProgram succeeds when every attached shader compiled and both a
// vertex and a fragment stage are present.
func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram(%d)", program)
	p, ok := c.programs[program]
	if !ok {
		c.errors = append(c.errors, rendergl.INVALID_VALUE)
		return
	}
	stages := make(map[rendergl.ShaderKind]bool)
	for _, id := range p.attached {
		s := c.shaders[id]
		if s == nil || !s.compiled {
			p.linked, p.log = false, fmt.Sprintf("error: linking with uncompiled shader %d", id)
			return
		}
		stages[s.kind] = true
	}
	switch {
	case !stages[rendergl.VertexShader]:
		p.linked, p.log = false, "error: program lacks a vertex shader"
	case !stages[rendergl.FragmentShader]:
		p.linked, p.log = false, "error: program lacks a fragment shader"
	default:
		p.linked, p.log = true, ""
	}
}

func (c *Context) GetProgrami(program uint32, pname rendergl.Enum) int32 {
	p, ok := c.programs[program]
	if !ok {
		return 0
	}
	switch pname {
	case rendergl.LINK_STATUS:
		if p.linked {
			return rendergl.TRUE
		}
		return rendergl.FALSE
	case rendergl.INFO_LOG_LENGTH:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	}
	return 0
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	if p, ok := c.programs[program]; ok {
		return p.log
	}
	return ""
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram(%d)", program)
	if program != 0 {
		if p, ok := c.programs[program]; !ok || !p.linked {
			c.errors = append(c.errors, rendergl.INVALID_OPERATION)
			return
		}
	}
	c.currentProgram = program
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram(%d)", program)
	c.release(program, KindProgram)
	delete(c.programs, program)
	if c.currentProgram == program {
		c.currentProgram = 0
	}
}

func (c *Context) CreateBuffer() uint32 {
	c.record("CreateBuffer()")
	id := c.create(KindBuffer)
	if id != 0 {
		c.buffers[id] = nil
	}
	return id
}

func (c *Context) BindBuffer(target rendergl.Enum, buffer uint32) {
	c.record("BindBuffer(0x%04X, %d)", uint32(target), buffer)
	if target == rendergl.ARRAY_BUFFER {
		c.boundArray = buffer
	}
}

func (c *Context) BufferData(target rendergl.Enum, data []byte, usage rendergl.Enum) {
	c.record("BufferData(0x%04X, %d bytes)", uint32(target), len(data))
	if target != rendergl.ARRAY_BUFFER || c.boundArray == 0 {
		c.errors = append(c.errors, rendergl.INVALID_OPERATION)
		return
	}
	c.buffers[c.boundArray] = slices.Clone(data)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("DeleteBuffer(%d)", buffer)
	c.release(buffer, KindBuffer)
	delete(c.buffers, buffer)
	if c.boundArray == buffer {
		c.boundArray = 0
	}
}

func (c *Context) CreateVertexArray() uint32 {
	c.record("CreateVertexArray()")
	id := c.create(KindVertexArray)
	if id != 0 {
		c.vertexArrays[id] = &vertexArrayObject{
			enabled:  make(map[uint32]bool),
			pointers: make(map[uint32]AttribPointer),
		}
	}
	return id
}

func (c *Context) BindVertexArray(array uint32) {
	c.record("BindVertexArray(%d)", array)
	c.boundVAO = array
}

func (c *Context) EnableVertexAttribArray(location uint32) {
	c.record("EnableVertexAttribArray(%d)", location)
	vao, ok := c.vertexArrays[c.boundVAO]
	if !ok {
		c.errors = append(c.errors, rendergl.INVALID_OPERATION)
		return
	}
	vao.enabled[location] = true
}

func (c *Context) VertexAttribPointer(location uint32, size int32, typ rendergl.Enum, normalized bool, stride int32, offset int) {
	c.record("VertexAttribPointer(%d, %d, 0x%04X, %t, %d, %d)", location, size, uint32(typ), normalized, stride, offset)
	vao, ok := c.vertexArrays[c.boundVAO]
	if !ok || c.boundArray == 0 {
		c.errors = append(c.errors, rendergl.INVALID_OPERATION)
		return
	}
	vao.pointers[location] = AttribPointer{
		Location:   location,
		Size:       size,
		Type:       typ,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
		Buffer:     c.boundArray,
	}
}

func (c *Context) DeleteVertexArray(array uint32) {
	c.record("DeleteVertexArray(%d)", array)
	c.release(array, KindVertexArray)
	delete(c.vertexArrays, array)
	if c.boundVAO == array {
		c.boundVAO = 0
	}
}

func (c *Context) DrawArrays(mode rendergl.Enum, first, count int32) {
	c.record("DrawArrays(0x%04X, %d, %d)", uint32(mode), first, count)
	c.draws = append(c.draws, DrawCall{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     c.currentProgram,
		VertexArray: c.boundVAO,
	})
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	c.viewport = [4]int32{x, y, width, height}
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
	c.clearColor = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask rendergl.Enum) {
	c.record("Clear(0x%04X)", uint32(mask))
	c.clears++
}

func (c *Context) GetError() rendergl.Enum {
	if len(c.errors) == 0 {
		return rendergl.NO_ERROR
	}
	e := c.errors[0]
	c.errors = c.errors[1:]
	return e
}

// PushError queues a driver error for the next GetError.
func (c *Context) PushError(code rendergl.Enum) {
	c.errors = append(c.errors, code)
}

// PendingErrors returns queued errors without consuming them.
func (c *Context) PendingErrors() []rendergl.Enum {
	return slices.Clone(c.errors)
}

// LiveHandles counts objects that were created and not yet deleted.
func (c *Context) LiveHandles() int { return len(c.live) }

// LiveOf counts live objects of one kind.
func (c *Context) LiveOf(kind ObjectKind) int {
	n := 0
	for _, k := range c.live {
		if k == kind {
			n++
		}
	}
	return n
}

// DeleteCount reports how many delete calls named id.
func (c *Context) DeleteCount(id uint32) int { return c.deletes[id] }

// Attached lists the shaders currently attached to program.
func (c *Context) Attached(program uint32) []uint32 {
	if p, ok := c.programs[program]; ok {
		return slices.Clone(p.attached)
	}
	return nil
}

// BufferContents returns the bytes last uploaded to buffer.
func (c *Context) BufferContents(buffer uint32) []byte {
	return slices.Clone(c.buffers[buffer])
}

// AttribPointers returns the configured slots of a vertex array, ordered by
// location.
func (c *Context) AttribPointers(array uint32) []AttribPointer {
	vao, ok := c.vertexArrays[array]
	if !ok {
		return nil
	}
	var out []AttribPointer
	for loc, p := range vao.pointers {
		if vao.enabled[loc] {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b AttribPointer) int { return int(a.Location) - int(b.Location) })
	return out
}

func (c *Context) CurrentProgram() uint32 { return c.currentProgram }

func (c *Context) BoundVertexArray() uint32 { return c.boundVAO }

func (c *Context) ViewportRect() [4]int32 { return c.viewport }

func (c *Context) ClearColorValue() [4]float32 { return c.clearColor }

func (c *Context) Clears() int { return c.clears }

func (c *Context) Draws() []DrawCall { return slices.Clone(c.draws) }

// Calls returns every recorded call in order.
func (c *Context) Calls() []string { return slices.Clone(c.calls) }
