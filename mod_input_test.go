package gekko

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_setState(t *testing.T) {
	input := &Input{}

	input.setState(KeySpace, glfw.Press)
	assert.True(t, input.Pressed[KeySpace])
	assert.True(t, input.JustPressed[KeySpace])

	input.setState(KeySpace, glfw.Repeat)
	assert.True(t, input.Pressed[KeySpace])
	assert.False(t, input.JustPressed[KeySpace], "held keys are only just pressed once")

	input.setState(KeySpace, glfw.Release)
	assert.False(t, input.Pressed[KeySpace])
	assert.True(t, input.JustReleased[KeySpace])

	input.setState(KeySpace, glfw.Release)
	assert.False(t, input.JustReleased[KeySpace])
}

func TestInput_KeyMapsCoverEveryKey(t *testing.T) {
	for key := 0; key < keyCount; key++ {
		_, isKey := keyToGlfw[key]
		_, isButton := buttonToGlfw[key]
		assert.True(t, isKey != isButton, "key %d must map to exactly one glfw key or button", key)
	}
}

func TestEscapeQuitSystem(t *testing.T) {
	app := newApp()
	input := &Input{}
	app.addResources(input)
	app.UseSystem(System(escapeQuitSystem).InStage(PostUpdate))

	require.NoError(t, app.Step())
	assert.False(t, app.Exiting())

	input.setState(KeyEscape, glfw.Press)
	require.NoError(t, app.Step())
	assert.True(t, app.Exiting())
}

func TestCloseRequestSystem(t *testing.T) {
	app := newApp()
	events := &WindowEvents{}
	app.addResources(events)
	app.UseSystem(System(closeRequestSystem).InStage(PostUpdate))

	require.NoError(t, app.Step())
	assert.False(t, app.Exiting())

	events.CloseRequested = true
	require.NoError(t, app.Step())
	assert.True(t, app.Exiting())
	assert.False(t, events.CloseRequested)
}
