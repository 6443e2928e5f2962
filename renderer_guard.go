package gekko

import (
	"fmt"
)

// RendererTag marks that a renderer has been installed into the App.
// Only one renderer should be installed at a time.
type RendererTag struct {
	Name string
}

// ensureSingleRenderer enforces a single renderer invariant. Installing the
// same renderer twice is allowed; a different one is an error.
func ensureSingleRenderer(app *App, name string) error {
	if app == nil {
		return fmt.Errorf("ensureSingleRenderer: app is nil")
	}
	if tag, ok := Resource[RendererTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
			return fmt.Errorf("multiple renderers installed: %s and %s", tag.Name, name)
		}
		return nil
	}
	app.addResources(&RendererTag{Name: name})
	return nil
}
