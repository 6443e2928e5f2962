package rendergl

import (
	"errors"
	"fmt"
	"strings"
)

// Loader is the asset boundary used to read shader sources.
type Loader interface {
	LoadBytes(name string) ([]byte, error)
}

// Program owns one linked program object.
type Program struct {
	_ noCopy

	ctx  Context
	id   uint32
	name string
}

// LinkProgram links the given shaders into a new program. A vertex and a
// fragment shader are required. The shaders stay owned by the caller: they are attached for the link and detached again
// once it succeeds. On failure the program object is deleted and a
// *LinkError carrying the driver's log is returned.
func LinkProgram(ctx Context, shaders ...*Shader) (*Program, error) {
	return linkNamed(ctx, "", shaders)
}

// ProgramFromResources compiles the stages stored for name (name.vert,
// name.geom, name.frag) and links them. The vertex and fragment sources must
// exist; the geometry stage is used when present. The intermediate shaders
// are deleted before returning.
func ProgramFromResources(ctx Context, loader Loader, name string) (*Program, error) {
	var shaders []*Shader
	defer func() {
		for _, s := range shaders {
			s.Delete()
		}
	}()

	for _, e := range shaderExtensions {
		resource := name + e.ext
		source, err := loader.LoadBytes(resource)
		if err != nil {
			if e.optional && isNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("load shader %q: %w", resource, err)
		}
		shader, err := compileNamed(ctx, resource, string(source), e.kind)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, shader)
	}

	return linkNamed(ctx, name, shaders)
}

func linkNamed(ctx Context, name string, shaders []*Shader) (*Program, error) {
	if len(shaders) == 0 {
		return nil, ErrNoShaders
	}
	stages := make(map[ShaderKind]bool, len(shaders))
	for i, s := range shaders {
		if s == nil || s.id == 0 {
			return nil, fmt.Errorf("link program: shader %d: %w", i, ErrInvalidShader)
		}
		stages[s.kind] = true
	}
	// Core profile drivers accept a program without one of these stages
	// and draw nothing useful with it.
	for _, kind := range []ShaderKind{VertexShader, FragmentShader} {
		if !stages[kind] {
			return nil, &LinkError{Name: name, Log: "program lacks a " + kind.String() + " shader"}
		}
	}

	id := ctx.CreateProgram()
	if id == 0 {
		if err := CheckError(ctx, "create program"); err != nil {
			return nil, err
		}
		return nil, &ContextError{Op: "create program", Message: "driver returned no program object"}
	}

	for _, s := range shaders {
		ctx.AttachShader(id, s.id)
	}
	ctx.LinkProgram(id)

	if ctx.GetProgrami(id, LINK_STATUS) == FALSE {
		log := strings.TrimRight(ctx.GetProgramInfoLog(id), "\x00")
		// deleting the program also detaches its shaders
		ctx.DeleteProgram(id)
		return nil, &LinkError{Name: name, Log: log}
	}

	for _, s := range shaders {
		ctx.DetachShader(id, s.id)
	}

	return &Program{ctx: ctx, id: id, name: name}, nil
}

// isNotFound reports whether err says the asset does not exist. Loaders
// signal this through an error exposing NotFound() bool.
func isNotFound(err error) bool {
	var nf interface{ NotFound() bool }
	return errors.As(err, &nf) && nf.NotFound()
}

// ID returns the driver handle, or 0 after Delete.
func (p *Program) ID() uint32 { return p.id }

func (p *Program) Name() string { return p.name }

// SetUsed makes p the context's current program.
func (p *Program) SetUsed() {
	p.ctx.UseProgram(p.id)
}

// Delete releases the program object. Calling it more than once is a no-op.
func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	p.ctx.DeleteProgram(p.id)
	p.id = 0
}
