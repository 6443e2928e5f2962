package gekko

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockModule struct {
	installed bool
	err       error
	log       *[]string
	name      string
}

func (m *MockModule) Install(app *App, commands *Commands) error {
	m.installed = true
	if m.log != nil {
		name := m.name
		*m.log = append(*m.log, "install "+name)
		commands.Defer(func() { *m.log = append(*m.log, "cleanup "+name) })
	}
	return m.err
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	builder.UseModule(&MockModule{}, &MockModule{})

	assert.Len(t, builder.modules, 2)
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	module1 := &MockModule{}
	module2 := &MockModule{}

	app, err := NewAppBuilder().UseModule(module1, module2).Build()
	require.NoError(t, err)
	require.NotNil(t, app)

	if !module1.installed || !module2.installed {
		t.Errorf("Expected Install to be called on every module")
	}
}

func TestAppBuilder_Build_DefaultStages(t *testing.T) {
	app, err := NewAppBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, defaultStages, app.stages)
	for _, s := range defaultStages {
		assert.Contains(t, app.systems, s.Name)
	}
}

func TestAppBuilder_Build_FailureReleasesEarlierModules(t *testing.T) {
	var log []string
	boom := errors.New("no display")
	first := &MockModule{log: &log, name: "first"}
	second := &MockModule{log: &log, name: "second"}
	failing := &MockModule{log: &log, name: "failing", err: boom}
	never := &MockModule{}

	app, err := NewAppBuilder().UseModule(first, second, failing, never).Build()
	require.ErrorIs(t, err, boom)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "install *gekko.MockModule")
	assert.False(t, never.installed)

	assert.Equal(t, []string{
		"install first",
		"install second",
		"install failing",
		"cleanup failing",
		"cleanup second",
		"cleanup first",
	}, log)
}
