// Package resources resolves named assets under a root directory, usually
// one located next to the running executable.
package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound matches every NotFoundError with errors.Is.
var ErrNotFound = errors.New("resource not found")

// NotFoundError reports a resource that does not exist under the root.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource %q not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound lets consumers that do not import this package recognise the
// error.
func (e *NotFoundError) NotFound() bool { return true }

// Resources reads assets from a file system root.
type Resources struct {
	root string
	fsys fs.FS
}

// FromExeRelativePath roots the resources at rel, resolved against the
// directory of the running executable.
func FromExeRelativePath(rel string) (*Resources, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return FromDir(filepath.Join(filepath.Dir(exe), rel))
}

// FromDir roots the resources at dir, which must exist.
func FromDir(dir string) (*Resources, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: dir}
		}
		return nil, fmt.Errorf("open resource root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("resource root %q is not a directory", dir)
	}
	return &Resources{root: dir, fsys: os.DirFS(dir)}, nil
}

// FromFS serves resources from fsys, for embedded assets and tests.
func FromFS(fsys fs.FS) *Resources {
	return &Resources{root: ".", fsys: fsys}
}

// Root is the directory, or "." for FromFS.
func (r *Resources) Root() string { return r.root }

// LoadBytes reads the resource called name. Names use forward slashes and
// may not leave the root.
func (r *Resources) LoadBytes(name string) ([]byte, error) {
	p, err := resourcePath(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: name}
		}
		return nil, fmt.Errorf("read resource %q: %w", name, err)
	}
	return data, nil
}

func (r *Resources) LoadString(name string) (string, error) {
	data, err := r.LoadBytes(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func resourcePath(name string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "/"))
	if !fs.ValidPath(clean) || clean == "." {
		return "", fmt.Errorf("invalid resource name %q", name)
	}
	return clean, nil
}
