package gekko

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := newLogger("app", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("hello %s", "world")
	l.Warnf("careful")
	l.Errorf("failed: %v", "boom")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[app] INFO: hello world")
	assert.Contains(t, errOut.String(), "[app] WARN: careful")
	assert.Contains(t, errOut.String(), "[app] ERROR: failed: boom")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	assert.Contains(t, out.String(), "[app] DEBUG: shown 2")
}

func TestDefaultLogger_NoPrefix(t *testing.T) {
	var out bytes.Buffer
	l := newLogger("", false, &out, &out)

	l.Infof("plain")
	assert.Contains(t, out.String(), "INFO: plain")
	assert.NotContains(t, out.String(), "[")
}

func TestDefaultLogger_Named(t *testing.T) {
	var out bytes.Buffer
	root := newLogger("app", false, &out, &out)
	child := root.Named("renderer")

	child.Infof("ready")
	assert.Contains(t, out.String(), "[app.renderer] INFO: ready")

	// The debug switch is shared.
	root.SetDebug(true)
	assert.True(t, child.DebugEnabled())

	orphan := newLogger("", false, &out, &out).Named("solo")
	orphan.Infof("x")
	assert.Contains(t, out.String(), "[solo] INFO: x")
}

func TestLoggingModule_Install(t *testing.T) {
	app, err := NewAppBuilder().UseModule(LoggingModule{Prefix: "test", Debug: true}).Build()
	assert.NoError(t, err)
	assert.True(t, app.Logger().DebugEnabled())

	_, ok := Resource[DefaultLogger](app)
	assert.True(t, ok)
}

func TestApp_namedLogger(t *testing.T) {
	app := newApp()
	_, isNop := app.namedLogger("assets").(*nopLogger)
	assert.True(t, isNop)

	var out bytes.Buffer
	app.addResources(newLogger("game", false, &out, &out))
	app.namedLogger("assets").Infof("loaded")
	assert.Contains(t, out.String(), "[game.assets] INFO: loaded")
}
