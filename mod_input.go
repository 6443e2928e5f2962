package gekko

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyEscape int = iota
	KeySpace
	KeyEnter
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF1
	KeyF2
	KeyQ
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	keyCount
)

type InputModule struct {
	// QuitOnEscape makes Escape end the app.
	QuitOnEscape bool
}

type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY float64
}

func (mod InputModule) Install(app *App, cmd *Commands) error {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
	if mod.QuitOnEscape {
		app.UseSystem(System(escapeQuitSystem).InStage(PostUpdate))
	}
	app.UseSystem(System(closeRequestSystem).InStage(PostUpdate))
	return nil
}

func inputSystem(s *WindowState, input *Input) {
	for key, glfwKey := range keyToGlfw {
		input.setState(key, s.windowGlfw.GetKey(glfwKey))
	}
	for btn, glfwBtn := range buttonToGlfw {
		input.setState(btn, s.windowGlfw.GetMouseButton(glfwBtn))
	}
	input.MouseX, input.MouseY = s.windowGlfw.GetCursorPos()
}

func (input *Input) setState(key int, action glfw.Action) {
	input.JustPressed[key] = false
	input.JustReleased[key] = false

	if glfw.Press == action {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	} else if glfw.Release == action {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
}

func escapeQuitSystem(input *Input, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Exit()
	}
}

func closeRequestSystem(events *WindowEvents, cmd *Commands) {
	if events.CloseRequested {
		events.CloseRequested = false
		cmd.Exit()
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyEscape: glfw.KeyEscape,
	KeySpace:  glfw.KeySpace,
	KeyEnter:  glfw.KeyEnter,
	KeyTab:    glfw.KeyTab,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyF1:     glfw.KeyF1,
	KeyF2:     glfw.KeyF2,
	KeyQ:      glfw.KeyQ,
}

var buttonToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}
