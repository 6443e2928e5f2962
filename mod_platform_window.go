package gekko

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/draw"

	"github.com/gekko3d/gekkogl/rendergl"
)

// WindowState is the shared GLFW window. Its GL context is current on the
// main thread for the lifetime of the app.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (s *WindowState) FramebufferSize() (int, int) {
	return s.windowGlfw.GetFramebufferSize()
}

// WindowEvents collects what the window callbacks reported since the last
// frame. Systems that handle an event clear it.
type WindowEvents struct {
	Resized        bool
	Width, Height  int
	CloseRequested bool
}

// PlatformWindowModule creates the window and its OpenGL 4.1 core context.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// NewPlatformWindow creates a module that provides a shared WindowState resource.
// If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Gekko"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
		VSync:  true,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) error {
	if _, ok := Resource[WindowState](app); ok {
		// Already created; keep a single window.
		return nil
	}

	ws, err := createWindowState(m.Width, m.Height, m.Title)
	if err != nil {
		return err
	}
	cmd.Defer(func() {
		ws.windowGlfw.Destroy()
		glfw.Terminate()
	})

	if m.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	events := &WindowEvents{}
	ws.windowGlfw.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		events.Resized = true
		events.Width, events.Height = width, height
	})
	ws.windowGlfw.SetCloseCallback(func(w *glfw.Window) {
		events.CloseRequested = true
	})

	cmd.AddResources(ws, events)
	app.UseSystem(System(windowEventsSystem).InStage(Prelude))
	app.UseSystem(System(swapBuffersSystem).InStage(Finale))

	app.Logger().Infof("Created window %dx%d '%s'", m.Width, m.Height, m.Title)
	return nil
}

func createWindowState(width, height int, title string) (*WindowState, error) {
	// The GL context belongs to this thread from here on.
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, &rendergl.ContextError{Op: "init glfw", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &rendergl.ContextError{Op: "create window", Err: err}
	}
	win.MakeContextCurrent()

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  width,
		WindowHeight: height,
		windowTitle:  title,
	}, nil
}

func windowEventsSystem(s *WindowState) {
	glfw.PollEvents()
}

func swapBuffersSystem(s *WindowState) {
	s.windowGlfw.SwapBuffers()
}

var iconSizes = []int{16, 32, 48}

// WindowIconModule sets the window icon from a PNG asset. It needs both the
// window and the asset server. A missing or broken icon is only a warning.
type WindowIconModule struct {
	Name string
}

func (m WindowIconModule) Install(app *App, cmd *Commands) error {
	if m.Name == "" {
		return nil
	}
	ws, ok := Resource[WindowState](app)
	if !ok {
		return fmt.Errorf("window icon needs PlatformWindowModule")
	}
	assets, ok := Resource[AssetServer](app)
	if !ok {
		return fmt.Errorf("window icon needs AssetServerModule")
	}
	icons, err := loadIcon(assets, m.Name)
	if err != nil {
		app.Logger().Warnf("Window icon %q not used: %v", m.Name, err)
		return nil
	}
	ws.windowGlfw.SetIcon(icons)
	return nil
}

func loadIcon(loader rendergl.Loader, name string) ([]image.Image, error) {
	data, err := loader.LoadBytes(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	return scaleIcon(img, iconSizes), nil
}

// scaleIcon resamples src to each square size.
func scaleIcon(src image.Image, sizes []int) []image.Image {
	out := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		out = append(out, dst)
	}
	return out
}
