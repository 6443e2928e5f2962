package gekko

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit stops the app after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exit()
}

// Defer registers fn to run when the app shuts down. Deferred functions run
// last-registered first, so resources are released before whatever they
// were created from.
func (cmd *Commands) Defer(fn func()) {
	cmd.app.addCleanup(fn)
}
