package rendergl

import (
	"fmt"
	"path"
	"strings"
)

// ShaderKind is the pipeline stage a shader is compiled for. Values match
// the GL enums.
type ShaderKind Enum

const (
	VertexShader   ShaderKind = 0x8B31
	FragmentShader ShaderKind = 0x8B30
	GeometryShader ShaderKind = 0x8DD9
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case GeometryShader:
		return "geometry"
	default:
		return fmt.Sprintf("ShaderKind(0x%04X)", uint32(k))
	}
}

// shaderExtensions maps resource file extensions to stages, in link order.
// Only the geometry stage may be left out of a program.
var shaderExtensions = []struct {
	ext      string
	kind     ShaderKind
	optional bool
}{
	{".vert", VertexShader, false},
	{".geom", GeometryShader, true},
	{".frag", FragmentShader, false},
}

// ShaderKindForName picks the stage from a resource name's extension.
func ShaderKindForName(name string) (ShaderKind, error) {
	ext := path.Ext(name)
	for _, e := range shaderExtensions {
		if e.ext == ext {
			return e.kind, nil
		}
	}
	return 0, fmt.Errorf("can not determine shader type for resource %q", name)
}

// Shader owns one compiled shader object.
type Shader struct {
	_ noCopy

	ctx  Context
	id   uint32
	kind ShaderKind
	name string
}

// CompileShader compiles source for the given stage. On failure the
// allocated shader object is deleted and a *CompileError carrying the
// driver's log is returned.
func CompileShader(ctx Context, source string, kind ShaderKind) (*Shader, error) {
	return compileNamed(ctx, "", source, kind)
}

// ShaderFromResources loads name through loader and compiles it for the
// stage implied by its extension.
func ShaderFromResources(ctx Context, loader Loader, name string) (*Shader, error) {
	kind, err := ShaderKindForName(name)
	if err != nil {
		return nil, err
	}
	source, err := loader.LoadBytes(name)
	if err != nil {
		return nil, fmt.Errorf("load shader %q: %w", name, err)
	}
	return compileNamed(ctx, name, string(source), kind)
}

func compileNamed(ctx Context, name, source string, kind ShaderKind) (*Shader, error) {
	id := ctx.CreateShader(kind)
	if id == 0 {
		if err := CheckError(ctx, "create "+kind.String()+" shader"); err != nil {
			return nil, err
		}
		return nil, &ContextError{Op: "create " + kind.String() + " shader", Message: "driver returned no shader object"}
	}

	ctx.ShaderSource(id, source)
	ctx.CompileShader(id)

	if ctx.GetShaderi(id, COMPILE_STATUS) == FALSE {
		log := strings.TrimRight(ctx.GetShaderInfoLog(id), "\x00")
		ctx.DeleteShader(id)
		return nil, &CompileError{Name: name, Kind: kind, Log: log}
	}

	return &Shader{ctx: ctx, id: id, kind: kind, name: name}, nil
}

// ID returns the driver handle, or 0 after Delete.
func (s *Shader) ID() uint32 { return s.id }

func (s *Shader) Kind() ShaderKind { return s.kind }

func (s *Shader) Name() string { return s.name }

// Delete releases the shader object. Calling it more than once is a no-op.
func (s *Shader) Delete() {
	if s == nil || s.id == 0 {
		return
	}
	s.ctx.DeleteShader(s.id)
	s.id = 0
}
