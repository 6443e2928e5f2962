// Package rendergl wraps the OpenGL objects a renderer owns: shaders,
// programs, buffers and vertex arrays, together with the attribute codecs
// used to describe vertex records to the pipeline.
//
// Every wrapper is created against an explicit Context and keeps it for its
// whole lifetime. A Context belongs to the thread that made it current, so
// none of the types in this package are safe for concurrent use.
package rendergl

// Enum mirrors GLenum.
type Enum uint32

const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	TRIANGLES Enum = 0x0004

	ARRAY_BUFFER Enum = 0x8892
	STATIC_DRAW  Enum = 0x88E4

	FLOAT                       Enum = 0x1406
	UNSIGNED_INT_2_10_10_10_REV Enum = 0x8368
	INT_2_10_10_10_REV          Enum = 0x8D9F

	COLOR_BUFFER_BIT Enum = 0x4000

	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84
)

// Context is the set of driver entry points the wrappers need. The glcore
// package provides the native implementation; gltest provides a recording
// one.
type Context interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(buffer uint32)

	CreateVertexArray() uint32
	BindVertexArray(array uint32)
	EnableVertexAttribArray(location uint32)
	VertexAttribPointer(location uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	DeleteVertexArray(array uint32)

	DrawArrays(mode Enum, first, count int32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	GetError() Enum
}

// noCopy makes go vet's copylocks check flag copies of handle owners.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
