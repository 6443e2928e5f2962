package rendergl

import (
	"errors"
	"fmt"
)

// ErrNoShaders is returned when a program is linked from an empty shader list.
var ErrNoShaders = errors.New("rendergl: program needs at least one shader")

// ErrInvalidShader is returned when a nil or deleted shader is passed to
// LinkProgram.
var ErrInvalidShader = errors.New("rendergl: shader is nil or deleted")

// CompileError carries the driver's compile log for a rejected shader.
type CompileError struct {
	Name string
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	log := e.Log
	if log == "" {
		log = "compiler produced no log"
	}
	if e.Name != "" {
		return fmt.Sprintf("compile %s shader %q: %s", e.Kind, e.Name, log)
	}
	return fmt.Sprintf("compile %s shader: %s", e.Kind, log)
}

// LinkError carries the driver's link log for a rejected program.
type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	log := e.Log
	if log == "" {
		log = "linker produced no log"
	}
	if e.Name != "" {
		return fmt.Sprintf("link program %q: %s", e.Name, log)
	}
	return fmt.Sprintf("link program: %s", log)
}

// ContextError reports a failed call into the graphics context or the
// window system that owns it.
type ContextError struct {
	Op      string
	Code    Enum
	Message string
	Err     error
}

func (e *ContextError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %s (0x%04X)", e.Op, errorName(e.Code), uint32(e.Code))
	}
}

func (e *ContextError) Unwrap() error { return e.Err }

// CheckError drains the driver error queue and reports the first error as a
// ContextError attributed to op. It returns nil when no error is pending.
func CheckError(ctx Context, op string) error {
	first := ctx.GetError()
	if first == NO_ERROR {
		return nil
	}
	// the queue may hold one flag per error kind; clear the rest
	for i := 0; i < 8 && ctx.GetError() != NO_ERROR; i++ {
	}
	return &ContextError{Op: op, Code: first}
}

func errorName(code Enum) string {
	switch code {
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "GL error"
	}
}
