package gekko

import "fmt"

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: newApp()}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs the modules in order. If one fails, everything the earlier
// modules deferred is released and the error is returned.
func (b *AppBuilder) Build() (*App, error) {
	app := b.app
	commands := &Commands{app: app}

	for _, module := range b.modules {
		if err := module.Install(app, commands); err != nil {
			app.shutdown()
			return nil, fmt.Errorf("install %T: %w", module, err)
		}
	}

	return app, nil
}
