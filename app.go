package gekko

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands) error
}

type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any

	// cleanups run in reverse registration order once the loop ends
	cleanups []func()
	exiting  bool
	frame    uint64
}

func newApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Run executes frames until a system asks to exit or fails, then runs the
// registered cleanups. The returned error is the first system failure.
func (app *App) Run() error {
	defer app.shutdown()

	app.Logger().Debugf("Running %d stages", len(app.stages))
	for !app.exiting {
		if err := app.Step(); err != nil {
			return err
		}
	}
	app.Logger().Infof("Exiting after %d frames", app.frame)
	return nil
}

// Step runs every stage once.
func (app *App) Step() error {
	if err := app.callSystems(); err != nil {
		return err
	}
	app.frame++
	return nil
}

// Exiting reports whether a system requested exit.
func (app *App) Exiting() bool { return app.exiting }

func (app *App) callSystems() error {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			if err := app.callSystem(system); err != nil {
				return fmt.Errorf("stage %s: %w", stage.Name, err)
			}
		}
	}
	return nil
}

func (app *App) exit() {
	app.exiting = true
}

func (app *App) addCleanup(fn func()) {
	app.cleanups = append(app.cleanups, fn)
}

func (app *App) shutdown() {
	for i := len(app.cleanups) - 1; i >= 0; i-- {
		app.cleanups[i]()
	}
	app.cleanups = nil
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the resource of type T, if one was added.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfError    = reflect.TypeOf((*error)(nil)).Elem()
)

// callSystem resolves each pointer argument from the resources (or a fresh
// *Commands) and calls the system. A system may return a single error.
func (app *App) callSystem(system systemFn) error {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			return fmt.Errorf("system %s: argument %d (%s) is not a pointer", systemName(systemValue), i, argType)
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			return fmt.Errorf("unable to resolve system dependency: system %s needs %s", systemName(systemValue), argType)
		}
	}

	out := systemValue.Call(args)
	if len(out) == 1 && out[0].Type() == typeOfError && !out[0].IsNil() {
		return fmt.Errorf("system %s: %w", systemName(systemValue), out[0].Interface().(error))
	}
	return nil
}

func validateSystem(system systemFn) error {
	t := reflect.TypeOf(system)
	if t == nil || t.Kind() != reflect.Func {
		return errors.New("system must be a function")
	}
	switch {
	case t.NumOut() == 0:
	case t.NumOut() == 1 && t.Out(0) == typeOfError:
	default:
		return fmt.Errorf("system %s must return nothing or an error", systemName(reflect.ValueOf(system)))
	}
	return nil
}

func systemName(v reflect.Value) string {
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		return fn.Name()
	}
	return v.Type().String()
}
