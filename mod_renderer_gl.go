package gekko

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gekkogl/rendergl"
	"github.com/gekko3d/gekkogl/rendergl/glcore"
)

const RendererOpenGL = "opengl"

// GLRenderer is the renderer resource: the context every GL object is made
// with, the window-dependent state, and what gets drawn each frame.
type GLRenderer struct {
	Ctx         rendergl.Context
	Viewport    *rendergl.Viewport
	ColorBuffer *rendergl.ColorBuffer
	Drawables   *DrawList
}

// GLRendererModule installs the OpenGL renderer. Without Context it loads
// the native bindings for the window's context, which PlatformWindowModule
// must already have made current.
type GLRendererModule struct {
	ClearColor mgl32.Vec3
	Context    rendergl.Context
	// Width and Height size the viewport when there is no window.
	Width, Height int
}

func (mod GLRendererModule) Install(app *App, cmd *Commands) error {
	if err := ensureSingleRenderer(app, RendererOpenGL); err != nil {
		return err
	}
	if _, ok := Resource[GLRenderer](app); ok {
		return nil
	}

	width, height := mod.Width, mod.Height
	if ws, ok := Resource[WindowState](app); ok {
		width, height = ws.FramebufferSize()
	}

	ctx := mod.Context
	if ctx == nil {
		if _, ok := Resource[WindowState](app); !ok {
			return fmt.Errorf("the OpenGL renderer needs a window; install PlatformWindowModule first")
		}
		native, err := glcore.New()
		if err != nil {
			return err
		}
		app.namedLogger("gl").Infof("OpenGL %s on %s", native.Version(), native.Renderer())
		ctx = native
	}

	r := &GLRenderer{
		Ctx:         ctx,
		Viewport:    rendergl.ViewportForWindow(int32(width), int32(height)),
		ColorBuffer: rendergl.ColorBufferFromColor(mod.ClearColor),
		Drawables:   NewDrawList(),
	}
	r.Viewport.SetUsed(ctx)
	r.ColorBuffer.SetUsed(ctx)

	cmd.AddResources(r)
	cmd.Defer(r.Drawables.DeleteAll)

	if _, ok := Resource[WindowEvents](app); ok {
		app.UseSystem(System(viewportSystem).InStage(PreRender))
	}
	app.UseSystem(System(clearSystem).InStage(PreRender))
	app.UseSystem(System(drawSystem).InStage(Render))
	if app.Logger().DebugEnabled() {
		app.UseSystem(System(glErrorSystem).InStage(PostRender))
	}
	return nil
}

// viewportSystem re-applies the viewport after the framebuffer was resized.
func viewportSystem(events *WindowEvents, r *GLRenderer, cmd *Commands) {
	if !events.Resized {
		return
	}
	events.Resized = false
	r.Viewport.UpdateSize(int32(events.Width), int32(events.Height))
	r.Viewport.SetUsed(r.Ctx)
	cmd.app.Logger().Debugf("Viewport resized to %dx%d", events.Width, events.Height)
}

func clearSystem(r *GLRenderer) {
	r.ColorBuffer.Clear(r.Ctx)
}

func drawSystem(r *GLRenderer) {
	r.Drawables.RenderAll()
}

func glErrorSystem(r *GLRenderer) error {
	return rendergl.CheckError(r.Ctx, "render frame")
}
