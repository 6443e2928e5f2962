package gekko

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"

	"github.com/gekko3d/gekkogl/rendergl"
	"github.com/gekko3d/gekkogl/resources"
)

type AssetId string

// AssetServer loads assets through the resource loader and owns the GPU
// programs built from them.
type AssetServer struct {
	res      *resources.Resources
	programs map[AssetId]*rendergl.Program
	byName   map[string]AssetId
	log      Logger
}

// AssetServerModule roots the asset server at Dir next to the executable.
// When that directory is missing and Fallback is set, assets are served
// from Fallback instead.
type AssetServerModule struct {
	Dir      string
	Fallback fs.FS
}

func NewAssetServer(res *resources.Resources) *AssetServer {
	return &AssetServer{
		res:      res,
		programs: make(map[AssetId]*rendergl.Program),
		byName:   make(map[string]AssetId),
		log:      NewNopLogger(),
	}
}

func (mod AssetServerModule) Install(app *App, cmd *Commands) error {
	res, err := resources.FromExeRelativePath(mod.Dir)
	if err != nil {
		if !errors.Is(err, resources.ErrNotFound) || mod.Fallback == nil {
			return err
		}
		app.Logger().Warnf("Assets directory %q not found next to the executable, using embedded assets", mod.Dir)
		res = resources.FromFS(mod.Fallback)
	} else {
		app.Logger().Infof("Serving assets from %s", res.Root())
	}

	server := NewAssetServer(res)
	server.log = app.namedLogger("assets")
	cmd.AddResources(server)
	cmd.Defer(server.DeletePrograms)
	return nil
}

// LoadBytes makes the server a rendergl.Loader.
func (server *AssetServer) LoadBytes(name string) ([]byte, error) {
	return server.res.LoadBytes(name)
}

// LoadProgram builds the program called name (see
// rendergl.ProgramFromResources) or returns the one already built.
func (server *AssetServer) LoadProgram(ctx rendergl.Context, name string) (AssetId, *rendergl.Program, error) {
	if id, ok := server.byName[name]; ok {
		return id, server.programs[id], nil
	}

	program, err := rendergl.ProgramFromResources(ctx, server, name)
	if err != nil {
		return "", nil, fmt.Errorf("load program %q: %w", name, err)
	}

	id := makeAssetId()
	server.programs[id] = program
	server.byName[name] = id
	server.log.Debugf("Built program %q (id %d)", name, program.ID())
	return id, program, nil
}

func (server *AssetServer) Program(id AssetId) (*rendergl.Program, bool) {
	p, ok := server.programs[id]
	return p, ok
}

// DeletePrograms releases every program the server built.
func (server *AssetServer) DeletePrograms() {
	for id, p := range server.programs {
		p.Delete()
		delete(server.programs, id)
	}
	clear(server.byName)
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
