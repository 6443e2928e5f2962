// Package triangle draws a single vertex-coloured triangle.
package triangle

import (
	"fmt"

	gekko "github.com/gekko3d/gekkogl"
	"github.com/gekko3d/gekkogl/rendergl"
)

// ProgramName is the shader pair the triangle is drawn with.
const ProgramName = "shaders/triangle"

type Vertex struct {
	Pos rendergl.Vector3             `location:"0"`
	Clr rendergl.U2U10U10U10RevFloat `location:"1"`
}

// Vertices is the triangle in clip space, one primary colour per corner.
func Vertices() []Vertex {
	return []Vertex{
		{Pos: rendergl.NewVector3(0.5, -0.5, 0.0), Clr: rendergl.NewU2U10U10U10RevFloat(1.0, 0.0, 0.0, 1.0)},
		{Pos: rendergl.NewVector3(-0.5, -0.5, 0.0), Clr: rendergl.NewU2U10U10U10RevFloat(0.0, 1.0, 0.0, 1.0)},
		{Pos: rendergl.NewVector3(0.0, 0.5, 0.0), Clr: rendergl.NewU2U10U10U10RevFloat(0.0, 0.0, 1.0, 1.0)},
	}
}

type Triangle struct {
	program     *rendergl.Program
	ownsProgram bool
	geometry    *rendergl.Geometry
}

// New builds the triangle program from loader and uploads the vertices. The
// triangle owns the program.
func New(loader rendergl.Loader, ctx rendergl.Context) (*Triangle, error) {
	program, err := rendergl.ProgramFromResources(ctx, loader, ProgramName)
	if err != nil {
		return nil, err
	}
	t, err := FromProgram(ctx, program)
	if err != nil {
		program.Delete()
		return nil, err
	}
	t.ownsProgram = true
	return t, nil
}

// FromProgram uploads the vertices and draws them with a program the
// caller keeps owning.
func FromProgram(ctx rendergl.Context, program *rendergl.Program) (*Triangle, error) {
	geometry, err := rendergl.UploadVertices(ctx, Vertices())
	if err != nil {
		return nil, fmt.Errorf("upload triangle: %w", err)
	}
	return &Triangle{program: program, geometry: geometry}, nil
}

func (t *Triangle) Render() {
	t.program.SetUsed()
	t.geometry.Render()
}

// Delete releases the geometry, and the program when the triangle built it.
func (t *Triangle) Delete() {
	t.geometry.Delete()
	if t.ownsProgram {
		t.program.Delete()
	}
}

// Module adds a triangle to the renderer's draw list, with its program
// taken from the asset server.
type Module struct{}

func (Module) Install(app *gekko.App, cmd *gekko.Commands) error {
	r, ok := gekko.Resource[gekko.GLRenderer](app)
	if !ok {
		return fmt.Errorf("triangle needs the OpenGL renderer")
	}
	assets, ok := gekko.Resource[gekko.AssetServer](app)
	if !ok {
		return fmt.Errorf("triangle needs the asset server")
	}

	_, program, err := assets.LoadProgram(r.Ctx, ProgramName)
	if err != nil {
		return err
	}
	t, err := FromProgram(r.Ctx, program)
	if err != nil {
		return err
	}
	r.Drawables.Add(t)
	app.Logger().Debugf("Triangle uploaded (%d vertices)", t.geometry.VertexCount())
	return nil
}
