package gekko

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	got, ok := Resource[MockResource1](app)
	require.True(t, ok)
	assert.Same(t, resource1, got)

	_, ok = Resource[MockResource2](app)
	assert.False(t, ok)

	assert.Panics(t, func() {
		app.addResources(NewMockResource1("again"))
	}, "adding a second resource of the same type should panic")
}

func TestApp_callSystem_injectsResources(t *testing.T) {
	app := newApp()
	app.addResources(NewMockResource1("one"), NewMockResource2("two"))

	var seen []string
	err := app.callSystem(func(r1 *MockResource1, cmd *Commands, r2 *MockResource2) {
		require.NotNil(t, cmd)
		seen = append(seen, r1.name, r2.name)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestApp_callSystem_missingResource(t *testing.T) {
	app := newApp()

	err := app.callSystem(func(r *MockResource1) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to resolve system dependency")
	assert.Contains(t, err.Error(), "MockResource1")
}

func TestApp_callSystem_rejectsValueArguments(t *testing.T) {
	app := newApp()

	err := app.callSystem(func(r MockResource1) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a pointer")
}

func TestApp_callSystem_returnsSystemError(t *testing.T) {
	app := newApp()
	boom := errors.New("boom")

	err := app.callSystem(func() error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, app.callSystem(func() error { return nil }))
}

func TestApp_StepRunsStagesInOrder(t *testing.T) {
	app := newApp()
	var order []string
	record := func(name string) func() {
		return func() { order = append(order, name) }
	}

	app.UseSystem(System(record("finale")).InStage(Finale))
	app.UseSystem(System(record("update")))
	app.UseSystem(System(record("prelude")).InStage(Prelude))
	app.UseSystem(System(record("render")).InStage(Render))

	require.NoError(t, app.Step())
	assert.Equal(t, []string{"prelude", "update", "render", "finale"}, order)
}

func TestApp_RunUntilExit(t *testing.T) {
	app := newApp()
	frames := 0
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 3 {
			cmd.Exit()
		}
	}))

	require.NoError(t, app.Run())
	assert.Equal(t, 3, frames)
	assert.True(t, app.Exiting())
	assert.Equal(t, uint64(3), app.frame)
}

func TestApp_RunStopsOnSystemError(t *testing.T) {
	app := newApp()
	boom := errors.New("draw failed")
	cleaned := false
	app.Commands().Defer(func() { cleaned = true })
	app.UseSystem(System(func() error { return boom }).InStage(Render))

	err := app.Run()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage Render")
	assert.True(t, cleaned, "cleanups must run even when a system fails")
}

func TestApp_CleanupsRunNewestFirst(t *testing.T) {
	app := newApp()
	var order []int
	cmd := app.Commands()
	cmd.Defer(func() { order = append(order, 1) })
	cmd.Defer(func() { order = append(order, 2) })
	cmd.Defer(func() { order = append(order, 3) })
	cmd.Exit()

	require.NoError(t, app.Run())
	assert.Equal(t, []int{3, 2, 1}, order)

	// A second shutdown has nothing left to run.
	app.shutdown()
	assert.Len(t, order, 3)
}

func TestApp_UseStage(t *testing.T) {
	app := newApp()
	physics := Stage{Name: "Physics"}
	late := Stage{Name: "Late"}

	app.UseStage(physics, AfterStage(Update))
	app.UseStage(late, BeforeStage(Finale))

	var names []string
	for _, s := range app.stages {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Prelude", "PreUpdate", "Update", "Physics", "PostUpdate",
		"PreRender", "Render", "PostRender", "Late", "Finale",
	}, names)

	assert.Panics(t, func() { app.UseStage(physics, AfterStage(Update)) })
	assert.Panics(t, func() { app.UseStage(Stage{Name: "X"}, AfterStage(Stage{Name: "Nope"})) })
}

func TestApp_UseSystemValidates(t *testing.T) {
	app := newApp()

	assert.Panics(t, func() { app.UseSystem(System(42)) })
	assert.Panics(t, func() { app.UseSystem(System(func() int { return 0 })) })
	assert.Panics(t, func() { app.UseSystem(System(func() {}).InStage(Stage{Name: "Missing"})) })
	assert.NotPanics(t, func() { app.UseSystem(System(func() error { return nil })) })
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())

	app := newApp()
	assert.False(t, app.Logger().DebugEnabled())

	logger := NewDefaultLogger("test", true)
	app.addResources(logger)
	assert.Same(t, logger, app.Logger())
}
